package models

import "time"

// Placement defines a work-placement record based on the 'workplace' table.
// It links exactly one student to one company for a dated period, with the
// host-side supervisor's contact details.
type Placement struct {
	RowID      int64           `json:"row_id" db:"row_id"`
	StudentID  int64           `json:"student_id" db:"student_id"`
	CompanyID  int64           `json:"company_id" db:"company_id"`
	BossName   string          `json:"boss_name" db:"boss_name"`
	BossPhone  string          `json:"boss_phone" db:"boss_phone"`
	BossEmail  string          `json:"boss_email" db:"boss_email"`
	BeginDate  time.Time       `json:"-" db:"begin_date"`
	EndDate    time.Time       `json:"-" db:"end_date"`
	LunchMoney bool            `json:"lunch_money" db:"lunch_money"` // Lunch benefit flag
	City       string          `json:"city" db:"city"`
	Status     PlacementStatus `json:"status" db:"status"`
}
