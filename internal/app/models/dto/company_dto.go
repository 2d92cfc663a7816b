package dto

// CreateCompanyRequest carries the legacy add-company form fields
type CreateCompanyRequest struct {
	Name     string  `json:"nimi" binding:"required"`
	Capacity int     `json:"count_place" binding:"required,min=1"`
	Tunnus   string  `json:"y_tunnus" binding:"required"`
	Address  *string `json:"address"`
}

// UpdateCompanyRequest carries the inline-edit fields for a company row
type UpdateCompanyRequest struct {
	Name     string  `json:"company_name" binding:"required"`
	Capacity int     `json:"count_place" binding:"required,min=1"`
	Tunnus   string  `json:"tunnus" binding:"required"`
	Address  *string `json:"address"`
}

// CompanyRef is the minimal company row used to populate selection inputs
type CompanyRef struct {
	ID   int64  `json:"company_id"`
	Name string `json:"company_name"`
}
