package dto

// CreateStudentRequest carries the legacy add-student form fields
type CreateStudentRequest struct {
	Name    string  `json:"nimi" binding:"required"`
	Surname *string `json:"sukunimi"`
	Group   string  `json:"ryhma" binding:"required"`
}

// UpdateStudentRequest carries the inline-edit fields for a student row
type UpdateStudentRequest struct {
	Name    string  `json:"st_name" binding:"required"`
	Surname *string `json:"st_s_name"`
	Group   string  `json:"st_group" binding:"required"`
}

// StudentRef is the minimal student row used to populate selection inputs
type StudentRef struct {
	ID      int64   `json:"student_id"`
	Name    string  `json:"st_name"`
	Surname *string `json:"st_s_name"`
}
