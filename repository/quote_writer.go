package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/patrick-campos/Accessories-Assessment-sub000/domain"
	"github.com/patrick-campos/Accessories-Assessment-sub000/models"
)

// QuoteWriter flattens one validated quote graph into the six row
// collections, parent before child, minting a fresh ObjectID for every row.
//
// Without a request id the writer is not idempotent: writing the same quote
// twice produces two full row sets with distinct ids. Callers that need
// replay protection pass a stable requestID; the writer then records it in
// intake_requests inside the same transaction and short-circuits when it has
// been applied before.
type QuoteWriter struct {
	store Store
}

func NewQuoteWriter(store Store) *QuoteWriter {
	return &QuoteWriter{store: store}
}

// Write persists the graph and returns the minted quote id. created is false
// when a requestID replay short-circuited and the returned id belongs to the
// earlier write.
func (w *QuoteWriter) Write(ctx context.Context, quote *domain.Quote, requestID string) (bson.ObjectID, bool, error) {
	if requestID != "" {
		prior, found, err := w.store.FindQuoteIDByRequestID(ctx, requestID)
		if err != nil {
			return bson.ObjectID{}, false, err
		}
		if found {
			return prior, false, nil
		}
	}

	quoteID := bson.NewObjectID()
	if err := w.store.InsertOne(ctx, models.QuotesCollection, models.QuoteRow{
		ID:              quoteID,
		CountryOfOrigin: quote.CountryOfOrigin(),
		CreatedAt:       quote.CreatedAt(),
	}); err != nil {
		return bson.ObjectID{}, false, err
	}

	customer := quote.Customer()
	if err := w.store.InsertOne(ctx, models.QuoteCustomersCollection, models.QuoteCustomerRow{
		ID:                 bson.NewObjectID(),
		QuoteID:            quoteID,
		ExternalSellerTier: customer.ExternalSellerTier(),
		FirstName:          customer.FirstName(),
		LastName:           customer.LastName(),
		Email:              customer.Email(),
	}); err != nil {
		return bson.ObjectID{}, false, err
	}

	for _, item := range quote.Items() {
		itemID := bson.NewObjectID()
		if err := w.store.InsertOne(ctx, models.QuoteItemsCollection, models.QuoteItemRow{
			ID:          itemID,
			QuoteID:     quoteID,
			CategoryID:  item.CategoryID(),
			BrandID:     item.BrandID(),
			Model:       item.Model(),
			Description: item.Description(),
		}); err != nil {
			return bson.ObjectID{}, false, err
		}

		for _, attr := range item.Attributes() {
			attrID := bson.NewObjectID()
			if err := w.store.InsertOne(ctx, models.QuoteItemAttributesCollection, models.QuoteItemAttributeRow{
				ID:          attrID,
				ItemID:      itemID,
				AttributeID: attr.AttributeID(),
			}); err != nil {
				return bson.ObjectID{}, false, err
			}

			for _, value := range attr.Values() {
				if err := w.store.InsertOne(ctx, models.QuoteItemAttributeValuesCol, models.QuoteItemAttributeValueRow{
					ID:              bson.NewObjectID(),
					ItemAttributeID: attrID,
					ValueID:         value.ValueID(),
					Label:           value.Label(),
				}); err != nil {
					return bson.ObjectID{}, false, err
				}
			}
		}

		for _, file := range item.Files() {
			meta := file.Metadata()
			if err := w.store.InsertOne(ctx, models.QuoteItemFilesCollection, models.QuoteItemFileRow{
				ID:           bson.NewObjectID(),
				ItemID:       itemID,
				FileType:     file.FileType(),
				Provider:     file.Provider(),
				ExternalID:   file.ExternalID(),
				Location:     file.Location(),
				PhotoType:    meta.PhotoType(),
				PhotoSubtype: meta.PhotoSubtype(),
				Description:  meta.Description(),
			}); err != nil {
				return bson.ObjectID{}, false, err
			}
		}
	}

	if requestID != "" {
		if err := w.store.InsertOne(ctx, models.IntakeRequestsCollection, models.IntakeRequestRow{
			ID:        bson.NewObjectID(),
			RequestID: requestID,
			QuoteID:   quoteID,
			CreatedAt: time.Now().UTC(),
		}); err != nil {
			return bson.ObjectID{}, false, fmt.Errorf("record intake request: %w", err)
		}
	}

	return quoteID, true, nil
}
