package dto

// DateLayout is the wire format for placement dates
const DateLayout = "2006-01-02"

// CreatePlacementRequest carries the legacy add-workplace form fields.
// StudentID is advisory for student callers: the server overrides it
// with the session's own student id.
type CreatePlacementRequest struct {
	StudentID  int64  `json:"student_id" binding:"required,min=1"`
	CompanyID  int64  `json:"company_id" binding:"required,min=1"`
	BossName   string `json:"ohjaaja" binding:"required"`
	BossPhone  string `json:"puhelin" binding:"required"`
	BossEmail  string `json:"email" binding:"required,email"`
	BeginDate  string `json:"alku" binding:"required,datetime=2006-01-02"`
	EndDate    string `json:"loppu" binding:"required,datetime=2006-01-02"`
	LunchMoney bool   `json:"ruokaraha"`
	City       string `json:"kaupunki" binding:"required"`
	Status     string `json:"status" binding:"required,oneof=On Odottaa Ei"`
}

// UpdatePlacementRequest carries the inline-edit fields for a placement row
type UpdatePlacementRequest struct {
	RowID      int64  `json:"row_id" binding:"required,min=1"`
	CompanyID  int64  `json:"company_id" binding:"required,min=1"`
	BossName   string `json:"boss_name" binding:"required"`
	BossPhone  string `json:"boss_phone" binding:"required"`
	BossEmail  string `json:"boss_email" binding:"required,email"`
	BeginDate  string `json:"begin_date" binding:"required,datetime=2006-01-02"`
	EndDate    string `json:"end_date" binding:"required,datetime=2006-01-02"`
	LunchMoney bool   `json:"lunch_money"`
	City       string `json:"city" binding:"required"`
	Status     string `json:"status" binding:"required,oneof=On Odottaa Ei"`
}

// DeletePlacementRequest deletes by primary key. The legacy
// (student_id, company_id) pair key was ambiguous for students with
// several placements at one company and is not supported.
type DeletePlacementRequest struct {
	RowID int64 `json:"row_id" binding:"required,min=1"`
}

// PlacementRow is a placement joined with student and company display
// names, as the listing endpoint returns it.
type PlacementRow struct {
	RowID      int64   `json:"row_id"`
	StudentID  int64   `json:"student_id"`
	CompanyID  int64   `json:"company_id"`
	StName     string  `json:"st_name"`
	StSurname  *string `json:"st_s_name"`
	Company    string  `json:"company_name"`
	BossName   string  `json:"boss_name"`
	BossPhone  string  `json:"boss_phone"`
	BossEmail  string  `json:"boss_email"`
	BeginDate  string  `json:"begin_date"`
	EndDate    string  `json:"end_date"`
	LunchMoney bool    `json:"lunch_money"`
	City       string  `json:"city"`
	Status     string  `json:"status"`
}
