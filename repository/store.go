// Package repository turns validated domain graphs into rows and back.
package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/patrick-campos/Accessories-Assessment-sub000/models"
)

// Store is the narrow write surface the quote writer needs. The mongo
// implementation joins whatever session the ctx carries, so the same writer
// code runs inside a transaction in production and against the in-memory
// store in tests.
type Store interface {
	InsertOne(ctx context.Context, collection string, doc any) error
	// FindQuoteIDByRequestID returns the quote recorded for a previously
	// applied intake request, or found=false when the request id is new.
	FindQuoteIDByRequestID(ctx context.Context, requestID string) (bson.ObjectID, bool, error)
}

// MongoStore backs Store with the application database.
type MongoStore struct {
	db *mongo.Database
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db}
}

func (s *MongoStore) InsertOne(ctx context.Context, collection string, doc any) error {
	if _, err := s.db.Collection(collection).InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert into %s: %w", collection, err)
	}
	return nil
}

func (s *MongoStore) FindQuoteIDByRequestID(ctx context.Context, requestID string) (bson.ObjectID, bool, error) {
	var row models.IntakeRequestRow
	err := s.db.Collection(models.IntakeRequestsCollection).
		FindOne(ctx, bson.M{"requestId": requestID}).
		Decode(&row)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return bson.ObjectID{}, false, nil
	}
	if err != nil {
		return bson.ObjectID{}, false, fmt.Errorf("lookup intake request: %w", err)
	}
	return row.QuoteID, true, nil
}

var _ Store = (*MongoStore)(nil)
