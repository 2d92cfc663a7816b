package models

// Company defines the company model based on the 'companies' table.
// Tunnus is the Finnish business registration code (Y-tunnus).
type Company struct {
	ID       int64   `json:"company_id" db:"company_id"`
	Name     string  `json:"company_name" db:"company_name"`
	Capacity int     `json:"count_place" db:"count_place"` // Declared placement capacity
	Tunnus   string  `json:"tunnus" db:"tunnus"`
	Address  *string `json:"address" db:"address"`
}
