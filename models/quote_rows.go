package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Collection names of the normalized quote graph. Parents are always
// inserted before children so the references below are never dangling.
const (
	QuotesCollection              = "quotes"
	QuoteCustomersCollection      = "quote_customers"
	QuoteItemsCollection          = "quote_items"
	QuoteItemAttributesCollection = "quote_item_attributes"
	QuoteItemAttributeValuesCol   = "quote_item_attribute_values"
	QuoteItemFilesCollection      = "quote_item_files"
	IntakeRequestsCollection      = "intake_requests"
)

type QuoteRow struct {
	ID              bson.ObjectID `bson:"_id" json:"id"`
	CountryOfOrigin string        `bson:"countryOfOrigin" json:"countryOfOrigin"`
	CreatedAt       time.Time     `bson:"createdAt" json:"createdAt"`
}

type QuoteCustomerRow struct {
	ID                 bson.ObjectID `bson:"_id" json:"id"`
	QuoteID            bson.ObjectID `bson:"quoteId" json:"quoteId"`
	ExternalSellerTier string        `bson:"externalSellerTier,omitempty" json:"externalSellerTier,omitempty"`
	FirstName          string        `bson:"firstName" json:"firstName"`
	LastName           string        `bson:"lastName" json:"lastName"`
	Email              string        `bson:"email" json:"email"`
}

type QuoteItemRow struct {
	ID          bson.ObjectID `bson:"_id" json:"id"`
	QuoteID     bson.ObjectID `bson:"quoteId" json:"quoteId"`
	CategoryID  string        `bson:"categoryId" json:"categoryId"`
	BrandID     string        `bson:"brandId" json:"brandId"`
	Model       string        `bson:"model" json:"model"`
	Description string        `bson:"description,omitempty" json:"description,omitempty"`
}

type QuoteItemAttributeRow struct {
	ID          bson.ObjectID `bson:"_id" json:"id"`
	ItemID      bson.ObjectID `bson:"itemId" json:"itemId"`
	AttributeID string        `bson:"attributeId" json:"attributeId"`
}

type QuoteItemAttributeValueRow struct {
	ID              bson.ObjectID `bson:"_id" json:"id"`
	ItemAttributeID bson.ObjectID `bson:"itemAttributeId" json:"itemAttributeId"`
	ValueID         string        `bson:"valueId" json:"valueId"`
	Label           string        `bson:"label" json:"label"`
}

type QuoteItemFileRow struct {
	ID           bson.ObjectID `bson:"_id" json:"id"`
	ItemID       bson.ObjectID `bson:"itemId" json:"itemId"`
	FileType     string        `bson:"fileType" json:"fileType"`
	Provider     string        `bson:"provider" json:"provider"`
	ExternalID   string        `bson:"externalId" json:"externalId"`
	Location     string        `bson:"location" json:"location"`
	PhotoType    string        `bson:"photoType" json:"photoType"`
	PhotoSubtype string        `bson:"photoSubtype" json:"photoSubtype"`
	Description  string        `bson:"description,omitempty" json:"description,omitempty"`
}

// IntakeRequestRow guards replayed submissions. It is written in the same
// transaction as the graph; a second write carrying the same request id finds
// it and short-circuits with the recorded quote id.
type IntakeRequestRow struct {
	ID        bson.ObjectID `bson:"_id"`
	RequestID string        `bson:"requestId"`
	QuoteID   bson.ObjectID `bson:"quoteId"`
	CreatedAt time.Time     `bson:"createdAt"`
}
