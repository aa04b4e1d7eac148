package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/patrick-campos/Accessories-Assessment-sub000/models"
)

// QuoteSummary is the admin list view: the quote row joined with its customer.
type QuoteSummary struct {
	Quote    models.QuoteRow         `json:"quote"`
	Customer models.QuoteCustomerRow `json:"customer"`
}

// ItemGraph is one item with its attribute selections and files re-attached.
type ItemGraph struct {
	Item       models.QuoteItemRow       `json:"item"`
	Attributes []AttributeGraph          `json:"attributes"`
	Files      []models.QuoteItemFileRow `json:"files"`
}

type AttributeGraph struct {
	Attribute models.QuoteItemAttributeRow        `json:"attribute"`
	Values    []models.QuoteItemAttributeValueRow `json:"values"`
}

// QuoteGraph is the fully re-assembled normalized graph of one quote.
type QuoteGraph struct {
	Quote    models.QuoteRow         `json:"quote"`
	Customer models.QuoteCustomerRow `json:"customer"`
	Items    []ItemGraph             `json:"items"`
}

// QuoteReader re-assembles persisted quote graphs for the admin views.
type QuoteReader struct {
	db *mongo.Database
}

func NewQuoteReader(db *mongo.Database) *QuoteReader {
	return &QuoteReader{db: db}
}

// List returns newest-first quote summaries plus the total count.
func (r *QuoteReader) List(ctx context.Context, skip, limit int64) ([]QuoteSummary, int64, error) {
	quotesCol := r.db.Collection(models.QuotesCollection)

	opts := options.Find().
		SetSkip(skip).
		SetLimit(limit).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := quotesCol.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list quotes: %w", err)
	}
	defer cursor.Close(ctx)

	var quotes []models.QuoteRow
	if err := cursor.All(ctx, &quotes); err != nil {
		return nil, 0, fmt.Errorf("decode quotes: %w", err)
	}

	ids := make([]bson.ObjectID, 0, len(quotes))
	for _, q := range quotes {
		ids = append(ids, q.ID)
	}

	customers := map[bson.ObjectID]models.QuoteCustomerRow{}
	if len(ids) > 0 {
		custCursor, err := r.db.Collection(models.QuoteCustomersCollection).
			Find(ctx, bson.M{"quoteId": bson.M{"$in": ids}})
		if err != nil {
			return nil, 0, fmt.Errorf("list customers: %w", err)
		}
		defer custCursor.Close(ctx)
		for custCursor.Next(ctx) {
			var row models.QuoteCustomerRow
			if err := custCursor.Decode(&row); err != nil {
				return nil, 0, fmt.Errorf("decode customer: %w", err)
			}
			customers[row.QuoteID] = row
		}
		if err := custCursor.Err(); err != nil {
			return nil, 0, err
		}
	}

	out := make([]QuoteSummary, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, QuoteSummary{Quote: q, Customer: customers[q.ID]})
	}

	total, err := quotesCol.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("count quotes: %w", err)
	}
	return out, total, nil
}

// Get loads one quote and stitches its items, attribute selections and files
// back together.
func (r *QuoteReader) Get(ctx context.Context, quoteID bson.ObjectID) (*QuoteGraph, error) {
	var graph QuoteGraph

	err := r.db.Collection(models.QuotesCollection).
		FindOne(ctx, bson.M{"_id": quoteID}).
		Decode(&graph.Quote)
	if err != nil {
		return nil, err
	}

	err = r.db.Collection(models.QuoteCustomersCollection).
		FindOne(ctx, bson.M{"quoteId": quoteID}).
		Decode(&graph.Customer)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("load customer: %w", err)
	}

	itemCursor, err := r.db.Collection(models.QuoteItemsCollection).
		Find(ctx, bson.M{"quoteId": quoteID})
	if err != nil {
		return nil, fmt.Errorf("load items: %w", err)
	}
	defer itemCursor.Close(ctx)

	var items []models.QuoteItemRow
	if err := itemCursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}

	graph.Items = make([]ItemGraph, 0, len(items))
	for _, item := range items {
		ig := ItemGraph{Item: item, Attributes: []AttributeGraph{}, Files: []models.QuoteItemFileRow{}}

		attrCursor, err := r.db.Collection(models.QuoteItemAttributesCollection).
			Find(ctx, bson.M{"itemId": item.ID})
		if err != nil {
			return nil, fmt.Errorf("load item attributes: %w", err)
		}
		var attrs []models.QuoteItemAttributeRow
		if err := attrCursor.All(ctx, &attrs); err != nil {
			return nil, fmt.Errorf("decode item attributes: %w", err)
		}

		for _, attr := range attrs {
			valCursor, err := r.db.Collection(models.QuoteItemAttributeValuesCol).
				Find(ctx, bson.M{"itemAttributeId": attr.ID})
			if err != nil {
				return nil, fmt.Errorf("load attribute values: %w", err)
			}
			var values []models.QuoteItemAttributeValueRow
			if err := valCursor.All(ctx, &values); err != nil {
				return nil, fmt.Errorf("decode attribute values: %w", err)
			}
			ig.Attributes = append(ig.Attributes, AttributeGraph{Attribute: attr, Values: values})
		}

		fileCursor, err := r.db.Collection(models.QuoteItemFilesCollection).
			Find(ctx, bson.M{"itemId": item.ID})
		if err != nil {
			return nil, fmt.Errorf("load item files: %w", err)
		}
		if err := fileCursor.All(ctx, &ig.Files); err != nil {
			return nil, fmt.Errorf("decode item files: %w", err)
		}

		graph.Items = append(graph.Items, ig)
	}

	return &graph, nil
}
