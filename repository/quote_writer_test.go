package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/patrick-campos/Accessories-Assessment-sub000/domain"
	"github.com/patrick-campos/Accessories-Assessment-sub000/models"
	"github.com/patrick-campos/Accessories-Assessment-sub000/repository"
)

func makeQuote(t *testing.T, withAttributes bool) *domain.Quote {
	t.Helper()

	files := make([]domain.ItemFile, 0, 4)
	for _, subtype := range domain.RequiredPhotoSubtypes {
		meta, err := domain.NewFileMetadata("Photo", subtype, "")
		if err != nil {
			t.Fatalf("metadata: %v", err)
		}
		file, err := domain.NewItemFile("image/jpeg", "r2", "ext-"+subtype, "https://files.example.com/"+subtype, meta)
		if err != nil {
			t.Fatalf("file: %v", err)
		}
		files = append(files, file)
	}

	var attrs []domain.ItemAttribute
	if withAttributes {
		value, err := domain.NewItemAttributeValue("val-1", "Leather")
		if err != nil {
			t.Fatalf("value: %v", err)
		}
		attr, err := domain.NewItemAttribute("attr-1", []domain.ItemAttributeValue{value})
		if err != nil {
			t.Fatalf("attribute: %v", err)
		}
		attrs = []domain.ItemAttribute{attr}
	}

	item, err := domain.NewItem("cat-1", "brand-1", "Speedy 30", "slightly worn", attrs, files)
	if err != nil {
		t.Fatalf("item: %v", err)
	}

	customer, err := domain.NewCustomer("", "Jane", "Doe", "jane@example.com")
	if err != nil {
		t.Fatalf("customer: %v", err)
	}

	quote, err := domain.NewQuote("US", customer, []domain.Item{item})
	if err != nil {
		t.Fatalf("quote: %v", err)
	}
	return quote
}

func TestQuoteWriter_WritesFullGraph(t *testing.T) {
	store := repository.NewMemoryStore()
	writer := repository.NewQuoteWriter(store)

	quoteID, created, err := writer.Write(context.Background(), makeQuote(t, false), "")
	if err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if !created {
		t.Error("expected created=true for a fresh write")
	}
	if quoteID.IsZero() {
		t.Error("expected a minted quote id")
	}

	counts := map[string]int{
		models.QuotesCollection:              1,
		models.QuoteCustomersCollection:      1,
		models.QuoteItemsCollection:          1,
		models.QuoteItemAttributesCollection: 0,
		models.QuoteItemAttributeValuesCol:   0,
		models.QuoteItemFilesCollection:      4,
	}
	for coll, want := range counts {
		if got := store.Count(coll); got != want {
			t.Errorf("collection %s: expected %d rows, got %d", coll, want, got)
		}
	}

	// children must reference the minted parents
	itemRow := store.Docs(models.QuoteItemsCollection)[0].(models.QuoteItemRow)
	if itemRow.QuoteID != quoteID {
		t.Error("item row does not reference the quote row")
	}
	for _, doc := range store.Docs(models.QuoteItemFilesCollection) {
		fileRow := doc.(models.QuoteItemFileRow)
		if fileRow.ItemID != itemRow.ID {
			t.Error("file row does not reference the item row")
		}
	}
}

func TestQuoteWriter_WritesAttributeRows(t *testing.T) {
	store := repository.NewMemoryStore()
	writer := repository.NewQuoteWriter(store)

	if _, _, err := writer.Write(context.Background(), makeQuote(t, true), ""); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	if got := store.Count(models.QuoteItemAttributesCollection); got != 1 {
		t.Fatalf("expected 1 attribute row, got %d", got)
	}
	if got := store.Count(models.QuoteItemAttributeValuesCol); got != 1 {
		t.Fatalf("expected 1 attribute value row, got %d", got)
	}

	attrRow := store.Docs(models.QuoteItemAttributesCollection)[0].(models.QuoteItemAttributeRow)
	valueRow := store.Docs(models.QuoteItemAttributeValuesCol)[0].(models.QuoteItemAttributeValueRow)
	if valueRow.ItemAttributeID != attrRow.ID {
		t.Error("value row does not reference the attribute row")
	}
}

func TestQuoteWriter_AllOrNothing(t *testing.T) {
	store := repository.NewMemoryStore()
	store.FailOn = models.QuoteItemFilesCollection
	store.FailOnErr = errors.New("disk full")

	writer := repository.NewQuoteWriter(store)
	scope := repository.NewMemoryTransactionScope(store)

	err := scope.Execute(context.Background(), func(ctx context.Context) error {
		_, _, err := writer.Write(ctx, makeQuote(t, false), "")
		return err
	})
	if err == nil {
		t.Fatal("expected the forced failure to surface")
	}

	for _, coll := range []string{
		models.QuotesCollection,
		models.QuoteCustomersCollection,
		models.QuoteItemsCollection,
		models.QuoteItemAttributesCollection,
		models.QuoteItemAttributeValuesCol,
		models.QuoteItemFilesCollection,
	} {
		if got := store.Count(coll); got != 0 {
			t.Errorf("collection %s: expected rollback to leave 0 rows, got %d", coll, got)
		}
	}
}

// Without a request id the writer stays deliberately non-idempotent: a
// second write of the same in-memory quote mints a second full row set.
// This pins the behavior so a change to it is made on purpose.
func TestQuoteWriter_SecondWriteMintsNewRows(t *testing.T) {
	store := repository.NewMemoryStore()
	writer := repository.NewQuoteWriter(store)
	quote := makeQuote(t, false)

	first, _, err := writer.Write(context.Background(), quote, "")
	if err != nil {
		t.Fatalf("first write: %v", err)
	}
	second, _, err := writer.Write(context.Background(), quote, "")
	if err != nil {
		t.Fatalf("second write: %v", err)
	}

	if first == second {
		t.Error("expected distinct quote ids for repeated writes")
	}
	if got := store.Count(models.QuotesCollection); got != 2 {
		t.Errorf("expected 2 quote rows, got %d", got)
	}
	if got := store.Count(models.QuoteItemFilesCollection); got != 8 {
		t.Errorf("expected 8 file rows, got %d", got)
	}
}

func TestQuoteWriter_RequestIDShortCircuitsReplay(t *testing.T) {
	store := repository.NewMemoryStore()
	writer := repository.NewQuoteWriter(store)
	quote := makeQuote(t, false)

	first, created, err := writer.Write(context.Background(), quote, "submit-42-0")
	if err != nil {
		t.Fatalf("first write: %v", err)
	}
	if !created {
		t.Fatal("expected first write to create")
	}

	second, created, err := writer.Write(context.Background(), quote, "submit-42-0")
	if err != nil {
		t.Fatalf("replay write: %v", err)
	}
	if created {
		t.Error("expected replay to short-circuit")
	}
	if first != second {
		t.Error("expected replay to return the original quote id")
	}
	if got := store.Count(models.QuotesCollection); got != 1 {
		t.Errorf("expected a single quote row after replay, got %d", got)
	}
}
