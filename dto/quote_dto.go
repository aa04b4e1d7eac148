package dto

// CreateQuoteRequestDTO is the body of POST /quote. RequestId is optional;
// when set it must be stable across retries of the same logical submission
// so the server can deduplicate redelivered requests.
type CreateQuoteRequestDTO struct {
	RequestID           string                 `json:"requestId"`
	CountryOfOrigin     string                 `json:"countryOfOrigin" binding:"required"`
	CustomerInformation CustomerInformationDTO `json:"customerInformation" binding:"required"`
	Items               []QuoteItemDTO         `json:"items" binding:"required,min=1,dive"`
}

type CustomerInformationDTO struct {
	ExternalSellerTier string `json:"externalSellerTier"`
	FirstName          string `json:"firstName" binding:"required"`
	LastName           string `json:"lastName" binding:"required"`
	Email              string `json:"email" binding:"required"`
}

type QuoteItemDTO struct {
	Attributes  []ItemAttributeDTO `json:"attributes"`
	CategoryID  string             `json:"categoryId" binding:"required"`
	BrandID     string             `json:"brandId" binding:"required"`
	Model       string             `json:"model" binding:"required"`
	Description string             `json:"description"`
	Files       []ItemFileDTO      `json:"files" binding:"required,min=1,dive"`
}

type ItemAttributeDTO struct {
	ID     string              `json:"id" binding:"required"`
	Values []AttributeValueDTO `json:"values" binding:"required,min=1,dive"`
}

type AttributeValueDTO struct {
	ID    string `json:"id" binding:"required"`
	Label string `json:"label" binding:"required"`
}

type ItemFileDTO struct {
	Type       string          `json:"type" binding:"required"`
	Provider   string          `json:"provider" binding:"required"`
	ExternalID string          `json:"externalId" binding:"required"`
	Location   string          `json:"location" binding:"required"`
	Metadata   FileMetadataDTO `json:"metadata" binding:"required"`
}

type FileMetadataDTO struct {
	PhotoType    string `json:"photoType" binding:"required"`
	PhotoSubtype string `json:"photoSubtype" binding:"required"`
	Description  string `json:"description"`
}
