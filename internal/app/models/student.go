package models

// Student defines the student model based on the 'students' table
type Student struct {
	ID      int64   `json:"student_id" db:"student_id"`
	Name    string  `json:"st_name" db:"st_name"`
	Surname *string `json:"st_s_name" db:"st_s_name"` // Pointer for potential NULL
	Group   string  `json:"st_group" db:"st_group"`
}
