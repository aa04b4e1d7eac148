package dto

type CreateCountryDTO struct {
	Code string `json:"code" binding:"required,len=2"`
	Name string `json:"name" binding:"required"`
}

type CreateCategoryDTO struct {
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug"` // auto-generated from Name if empty
	Description string `json:"description"`
	IsActive    bool   `json:"isActive"`
}

type CreateBrandDTO struct {
	Name     string `json:"name" binding:"required"`
	Slug     string `json:"slug"` // auto-generated from Name if empty
	IsActive bool   `json:"isActive"`
}

type CreateCategoryAttributeDTO struct {
	Name   string   `json:"name" binding:"required"`
	Values []string `json:"values" binding:"required,min=1"`
}
