package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mkarvonen/placementtrack/internal/app/models"
	"github.com/mkarvonen/placementtrack/internal/app/models/dto"
)

// StudentStore is the student persistence the reference data flows need
type StudentStore interface {
	Create(ctx context.Context, student *models.Student) (int64, error)
	ListRefs(ctx context.Context) ([]*models.Student, error)
	ListFull(ctx context.Context, sortBy, sortOrder string) ([]*models.Student, error)
	Update(ctx context.Context, student *models.Student) error
}

// StudentService handles student reference data operations
type StudentService struct {
	studentStore StudentStore
	logger       zerolog.Logger
}

// NewStudentService creates a new StudentService
func NewStudentService(studentStore StudentStore, logger zerolog.Logger) *StudentService {
	return &StudentService{studentStore: studentStore, logger: logger}
}

// CreateStudent adds a new student row. Duplicate names are allowed.
func (s *StudentService) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (int64, error) {
	id, err := s.studentStore.Create(ctx, &models.Student{
		Name:    req.Name,
		Surname: req.Surname,
		Group:   req.Group,
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info().Int64("studentID", id).Msg("Student created")
	return id, nil
}

// ListRefs returns the minimal student rows for selection inputs
func (s *StudentService) ListRefs(ctx context.Context) ([]*dto.StudentRef, error) {
	students, err := s.studentStore.ListRefs(ctx)
	if err != nil {
		return nil, err
	}

	refs := make([]*dto.StudentRef, 0, len(students))
	for _, st := range students {
		refs = append(refs, &dto.StudentRef{ID: st.ID, Name: st.Name, Surname: st.Surname})
	}
	return refs, nil
}

// ListFull returns every student row for the management view. Unknown
// sort inputs fall back to name ascending.
func (s *StudentService) ListFull(ctx context.Context, sortBy, sortOrder string) ([]*models.Student, error) {
	return s.studentStore.ListFull(ctx, sortBy, sortOrder)
}

// UpdateStudent rewrites every editable column of a student row
func (s *StudentService) UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) error {
	return s.studentStore.Update(ctx, &models.Student{
		ID:      id,
		Name:    req.Name,
		Surname: req.Surname,
		Group:   req.Group,
	})
}
