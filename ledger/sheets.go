// Package ledger appends a denormalized summary of every persisted quote to
// an external spreadsheet the purchasing team works from.
package ledger

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/patrick-campos/Accessories-Assessment-sub000/domain"
)

// SheetsLedger appends one row per quote to a Google Sheet. It is called
// inside the intake transaction, so an append failure aborts the whole
// operation; see the service layer for that trade-off.
type SheetsLedger struct {
	values        *sheets.SpreadsheetsValuesService
	spreadsheetID string
	appendRange   string
}

func NewSheetsLedger(ctx context.Context) (*SheetsLedger, error) {
	spreadsheetID := os.Getenv("LEDGER_SPREADSHEET_ID")
	if spreadsheetID == "" {
		return nil, fmt.Errorf("missing LEDGER_SPREADSHEET_ID env var")
	}

	appendRange := os.Getenv("LEDGER_SHEET_RANGE")
	if appendRange == "" {
		appendRange = "Quotes!A:H"
	}

	credentialsPath := os.Getenv("CREDENTIALS_FILE_LOCATION")
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	svc, err := sheets.NewService(ctx,
		option.WithAuthCredentialsFile(option.ServiceAccount, filepath.Join(wd, credentialsPath)))
	if err != nil {
		return nil, fmt.Errorf("sheets client: %w", err)
	}

	return &SheetsLedger{
		values:        svc.Spreadsheets.Values,
		spreadsheetID: spreadsheetID,
		appendRange:   appendRange,
	}, nil
}

// Append writes the quote summary row. One row per quote, columns:
// quote id, created at, country, customer name, email, seller tier,
// item count, item models.
func (l *SheetsLedger) Append(ctx context.Context, quoteID string, quote *domain.Quote) error {
	customer := quote.Customer()

	items := quote.Items()
	itemModels := make([]string, 0, len(items))
	for _, item := range items {
		itemModels = append(itemModels, item.Model())
	}

	row := []interface{}{
		quoteID,
		quote.CreatedAt().Format(time.RFC3339),
		quote.CountryOfOrigin(),
		customer.FirstName() + " " + customer.LastName(),
		customer.Email(),
		customer.ExternalSellerTier(),
		len(items),
		strings.Join(itemModels, "; "),
	}

	_, err := l.values.Append(l.spreadsheetID, l.appendRange, &sheets.ValueRange{
		Values: [][]interface{}{row},
	}).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("append quote %s to ledger: %w", quoteID, err)
	}
	return nil
}
