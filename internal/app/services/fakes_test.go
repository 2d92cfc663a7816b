package services

import (
	"context"
	"time"

	"github.com/mkarvonen/placementtrack/internal/app/models"
	"github.com/mkarvonen/placementtrack/internal/app/models/dto"
	"github.com/mkarvonen/placementtrack/internal/pkg/apperrors"
)

// Handwritten fakes for the store interfaces. Error fields inject
// failures; the maps act as in-memory tables.

type fakeUserStore struct {
	users      map[int64]*models.User
	nextID     int64
	createErr  error
	lookupErr  error
	updatedPwd map[int64]string
	resetFlags map[int64]bool
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		users:      map[int64]*models.User{},
		nextID:     1,
		updatedPwd: map[int64]string{},
		resetFlags: map[int64]bool{},
	}
}

func (f *fakeUserStore) add(user *models.User) *models.User {
	if user.ID == 0 {
		user.ID = f.nextID
		f.nextID++
	}
	f.users[user.ID] = user
	return user
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	u, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserStore) EmailExists(_ context.Context, email string) (bool, error) {
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserStore) Create(_ context.Context, user *models.User) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	for _, u := range f.users {
		if u.Email == user.Email {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		if user.StudentID != nil && u.StudentID != nil && *u.StudentID == *user.StudentID {
			return 0, apperrors.ErrStudentAlreadyLinked
		}
	}
	return f.add(user).ID, nil
}

func (f *fakeUserStore) UpdatePassword(_ context.Context, userID int64, hashedPassword string, passwordReset bool) error {
	u, ok := f.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	u.Password = hashedPassword
	u.PasswordReset = passwordReset
	f.updatedPwd[userID] = hashedPassword
	return nil
}

func (f *fakeUserStore) UpdatePasswordByEmail(_ context.Context, email string, hashedPassword string) error {
	for _, u := range f.users {
		if u.Email == email {
			u.Password = hashedPassword
			f.updatedPwd[u.ID] = hashedPassword
			return nil
		}
	}
	return apperrors.ErrUserNotFound
}

func (f *fakeUserStore) SetPasswordReset(_ context.Context, userID int64, flag bool) error {
	u, ok := f.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	u.PasswordReset = flag
	f.resetFlags[userID] = flag
	return nil
}

func (f *fakeUserStore) ListNonAdmins(_ context.Context) ([]*dto.AdminUserRow, error) {
	rows := []*dto.AdminUserRow{}
	for _, u := range f.users {
		if u.Role == models.RoleAdmin {
			continue
		}
		rows = append(rows, &dto.AdminUserRow{
			UserID:        u.ID,
			Email:         u.Email,
			Role:          u.Role.Code(),
			Name:          u.Name,
			PasswordReset: u.PasswordReset,
		})
	}
	return rows, nil
}

type storedToken struct {
	userID  int64
	expiry  time.Time
	revoked bool
}

type fakeTokenStore struct {
	tokens    map[string]*storedToken
	createErr error
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{tokens: map[string]*storedToken{}}
}

func (f *fakeTokenStore) CreateToken(_ context.Context, token string, userID int64, expiryDate time.Time) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.tokens[token] = &storedToken{userID: userID, expiry: expiryDate}
	return nil
}

func (f *fakeTokenStore) GetTokenUser(_ context.Context, token string) (int64, error) {
	st, ok := f.tokens[token]
	if !ok {
		return 0, apperrors.ErrTokenNotFound
	}
	if st.revoked {
		return 0, apperrors.ErrTokenRevoked
	}
	if st.expiry.Before(time.Now()) {
		return 0, apperrors.ErrTokenExpired
	}
	return st.userID, nil
}

func (f *fakeTokenStore) RevokeToken(_ context.Context, token string) error {
	st, ok := f.tokens[token]
	if !ok {
		return apperrors.ErrTokenNotFound
	}
	st.revoked = true
	return nil
}

type fakeStudentLookup struct {
	students map[int64]*models.Student
}

func newFakeStudentLookup() *fakeStudentLookup {
	return &fakeStudentLookup{students: map[int64]*models.Student{}}
}

func (f *fakeStudentLookup) GetByID(_ context.Context, id int64) (*models.Student, error) {
	st, ok := f.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return st, nil
}

type fakePlacementStore struct {
	placements map[int64]*models.Placement
	nextID     int64
	listCalls  []listCall
	createErr  error
}

type listCall struct {
	owner *int64
	desc  bool
}

func newFakePlacementStore() *fakePlacementStore {
	return &fakePlacementStore{placements: map[int64]*models.Placement{}, nextID: 1}
}

func (f *fakePlacementStore) List(_ context.Context, ownerStudentID *int64, desc bool) ([]*dto.PlacementRow, error) {
	f.listCalls = append(f.listCalls, listCall{owner: ownerStudentID, desc: desc})

	rows := []*dto.PlacementRow{}
	for _, p := range f.placements {
		if ownerStudentID != nil && p.StudentID != *ownerStudentID {
			continue
		}
		rows = append(rows, &dto.PlacementRow{
			RowID:     p.RowID,
			StudentID: p.StudentID,
			CompanyID: p.CompanyID,
			Status:    string(p.Status),
		})
	}
	return rows, nil
}

func (f *fakePlacementStore) Create(_ context.Context, placement *models.Placement) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	placement.RowID = f.nextID
	f.nextID++
	f.placements[placement.RowID] = placement
	return placement.RowID, nil
}

func (f *fakePlacementStore) Update(_ context.Context, placement *models.Placement, ownerStudentID *int64) error {
	existing, ok := f.placements[placement.RowID]
	if !ok {
		return apperrors.ErrPlacementNotFound
	}
	if ownerStudentID != nil && existing.StudentID != *ownerStudentID {
		return apperrors.ErrPlacementNotFound
	}
	placement.StudentID = existing.StudentID
	f.placements[placement.RowID] = placement
	return nil
}

func (f *fakePlacementStore) DeleteByID(_ context.Context, rowID int64, ownerStudentID *int64) error {
	existing, ok := f.placements[rowID]
	if !ok {
		return apperrors.ErrPlacementNotFound
	}
	if ownerStudentID != nil && existing.StudentID != *ownerStudentID {
		return apperrors.ErrPlacementNotFound
	}
	delete(f.placements, rowID)
	return nil
}

type fakeReportStore struct {
	placementRows []*dto.PlacementReportRow
	companyRows   []*dto.CompanyReportRow
	lastOwner     *int64
}

func (f *fakeReportStore) PlacementReport(_ context.Context, ownerStudentID *int64) ([]*dto.PlacementReportRow, error) {
	f.lastOwner = ownerStudentID
	return f.placementRows, nil
}

func (f *fakeReportStore) CompanyReport(_ context.Context) ([]*dto.CompanyReportRow, error) {
	return f.companyRows, nil
}

type fakeStudentStore struct {
	nextID      int64
	students    map[int64]*models.Student
	lastSortBy  string
	lastSortDir string
}

func newFakeStudentStore() *fakeStudentStore {
	return &fakeStudentStore{students: map[int64]*models.Student{}}
}

func (f *fakeStudentStore) Create(_ context.Context, student *models.Student) (int64, error) {
	f.nextID++
	stored := *student
	stored.ID = f.nextID
	f.students[stored.ID] = &stored
	return stored.ID, nil
}

func (f *fakeStudentStore) ListRefs(_ context.Context) ([]*models.Student, error) {
	rows := make([]*models.Student, 0, len(f.students))
	for _, st := range f.students {
		rows = append(rows, st)
	}
	return rows, nil
}

func (f *fakeStudentStore) ListFull(_ context.Context, sortBy, sortOrder string) ([]*models.Student, error) {
	f.lastSortBy = sortBy
	f.lastSortDir = sortOrder
	return f.ListRefs(context.Background())
}

func (f *fakeStudentStore) Update(_ context.Context, student *models.Student) error {
	if _, ok := f.students[student.ID]; !ok {
		return apperrors.ErrStudentNotFound
	}
	stored := *student
	f.students[student.ID] = &stored
	return nil
}

type fakeCompanyStore struct {
	nextID    int64
	companies map[int64]*models.Company
}

func newFakeCompanyStore() *fakeCompanyStore {
	return &fakeCompanyStore{companies: map[int64]*models.Company{}}
}

func (f *fakeCompanyStore) Create(_ context.Context, company *models.Company) (int64, error) {
	f.nextID++
	stored := *company
	stored.ID = f.nextID
	f.companies[stored.ID] = &stored
	return stored.ID, nil
}

func (f *fakeCompanyStore) ListRefs(_ context.Context) ([]*models.Company, error) {
	rows := make([]*models.Company, 0, len(f.companies))
	for _, c := range f.companies {
		rows = append(rows, c)
	}
	return rows, nil
}

func (f *fakeCompanyStore) ListFull(_ context.Context) ([]*models.Company, error) {
	return f.ListRefs(context.Background())
}

func (f *fakeCompanyStore) Update(_ context.Context, company *models.Company) error {
	if _, ok := f.companies[company.ID]; !ok {
		return apperrors.ErrCompanyNotFound
	}
	stored := *company
	f.companies[company.ID] = &stored
	return nil
}
