package dto

// PlacementReportRow is one line of the placement report: company,
// student and host supervisor contact, joined at read time.
type PlacementReportRow struct {
	CompanyName string  `json:"company_name"`
	Tunnus      string  `json:"tunnus"`
	Address     *string `json:"address"`
	StName      string  `json:"st_name"`
	StSurname   *string `json:"st_s_name"`
	StGroup     string  `json:"st_group"`
	BossName    string  `json:"boss_name"`
	BossPhone   string  `json:"boss_phone"`
	BossEmail   string  `json:"boss_email"`
}

// CompanyReportRow is one line of the company report with the count of
// associated placements.
type CompanyReportRow struct {
	CompanyName  string  `json:"company_name"`
	Tunnus       string  `json:"tunnus"`
	Address      *string `json:"address"`
	StudentCount int64   `json:"student_count"`
}
