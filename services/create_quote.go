// Package services sequences the intake pipeline: precondition gate, domain
// construction, transactional persistence, ledger side effect.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/patrick-campos/Accessories-Assessment-sub000/database"
	"github.com/patrick-campos/Accessories-Assessment-sub000/domain"
	"github.com/patrick-campos/Accessories-Assessment-sub000/dto"
)

// ErrCountryNotFound means the referenced country code is well-formed but
// unknown. A precondition failure, not a validation one: the request was
// shaped fine, the reference data disagreed.
var ErrCountryNotFound = errors.New("country of origin not found")

// CountryGate is the single reference-data check run before construction.
type CountryGate interface {
	Exists(ctx context.Context, code string) (bool, error)
}

// QuoteWriter persists a validated graph. Implemented by repository.QuoteWriter.
type QuoteWriter interface {
	Write(ctx context.Context, quote *domain.Quote, requestID string) (bson.ObjectID, bool, error)
}

// LedgerPublisher appends the denormalized summary of a persisted quote to
// the external ledger.
type LedgerPublisher interface {
	Append(ctx context.Context, quoteID string, quote *domain.Quote) error
}

type QuoteService struct {
	gate   CountryGate
	scope  database.TransactionScope
	writer QuoteWriter
	ledger LedgerPublisher
}

func NewQuoteService(gate CountryGate, scope database.TransactionScope, writer QuoteWriter, ledger LedgerPublisher) *QuoteService {
	return &QuoteService{gate: gate, scope: scope, writer: writer, ledger: ledger}
}

// CreateQuote runs the whole intake operation and returns the generated
// quote id. Until the transaction commits nothing is observable externally;
// a ledger failure propagates through the scope and rolls the write back, so
// "recorded" and "ledgered" stay in lock-step.
func (s *QuoteService) CreateQuote(ctx context.Context, in dto.CreateQuoteRequestDTO) (string, error) {
	code := strings.ToUpper(strings.TrimSpace(in.CountryOfOrigin))
	if err := domain.ValidateCountryCode(code); err != nil {
		return "", err
	}

	exists, err := s.gate.Exists(ctx, code)
	if err != nil {
		return "", fmt.Errorf("country gate: %w", err)
	}
	if !exists {
		return "", ErrCountryNotFound
	}

	quote, err := buildQuote(code, in)
	if err != nil {
		return "", err
	}

	var quoteID bson.ObjectID
	err = s.scope.Execute(ctx, func(ctx context.Context) error {
		id, created, err := s.writer.Write(ctx, quote, in.RequestID)
		if err != nil {
			return err
		}
		quoteID = id
		if !created {
			// Replay of an applied request: already ledgered last time.
			return nil
		}
		if err := s.ledger.Append(ctx, id.Hex(), quote); err != nil {
			return fmt.Errorf("ledger append: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	return quoteID.Hex(), nil
}

// buildQuote assembles the domain graph bottom-up so the first structural
// violation is reported at the leaf where it occurred.
func buildQuote(countryCode string, in dto.CreateQuoteRequestDTO) (*domain.Quote, error) {
	customer, err := domain.NewCustomer(
		in.CustomerInformation.ExternalSellerTier,
		in.CustomerInformation.FirstName,
		in.CustomerInformation.LastName,
		in.CustomerInformation.Email,
	)
	if err != nil {
		return nil, err
	}

	items := make([]domain.Item, 0, len(in.Items))
	for _, itemIn := range in.Items {
		attributes := make([]domain.ItemAttribute, 0, len(itemIn.Attributes))
		for _, attrIn := range itemIn.Attributes {
			values := make([]domain.ItemAttributeValue, 0, len(attrIn.Values))
			for _, valueIn := range attrIn.Values {
				value, err := domain.NewItemAttributeValue(valueIn.ID, valueIn.Label)
				if err != nil {
					return nil, err
				}
				values = append(values, value)
			}
			attribute, err := domain.NewItemAttribute(attrIn.ID, values)
			if err != nil {
				return nil, err
			}
			attributes = append(attributes, attribute)
		}

		files := make([]domain.ItemFile, 0, len(itemIn.Files))
		for _, fileIn := range itemIn.Files {
			metadata, err := domain.NewFileMetadata(
				fileIn.Metadata.PhotoType,
				fileIn.Metadata.PhotoSubtype,
				fileIn.Metadata.Description,
			)
			if err != nil {
				return nil, err
			}
			file, err := domain.NewItemFile(fileIn.Type, fileIn.Provider, fileIn.ExternalID, fileIn.Location, metadata)
			if err != nil {
				return nil, err
			}
			files = append(files, file)
		}

		item, err := domain.NewItem(
			itemIn.CategoryID,
			itemIn.BrandID,
			itemIn.Model,
			itemIn.Description,
			attributes,
			files,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return domain.NewQuote(countryCode, customer, items)
}
