package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// CountryGate answers the single reference-data question the intake flow
// needs before doing anything else: is this country code known.
type CountryGate struct {
	col *mongo.Collection
}

func NewCountryGate(col *mongo.Collection) *CountryGate {
	return &CountryGate{col: col}
}

// Exists expects an already upper-cased 2-letter code.
func (g *CountryGate) Exists(ctx context.Context, code string) (bool, error) {
	n, err := g.col.CountDocuments(ctx, bson.M{"code": code})
	if err != nil {
		return false, fmt.Errorf("country lookup: %w", err)
	}
	return n > 0, nil
}
