package domain_test

import (
	"strings"
	"testing"

	"github.com/patrick-campos/Accessories-Assessment-sub000/domain"
)

func makeFile(t *testing.T, subtype string) domain.ItemFile {
	t.Helper()
	meta, err := domain.NewFileMetadata("Photo", subtype, "")
	if err != nil {
		t.Fatalf("failed to create metadata: %v", err)
	}
	file, err := domain.NewItemFile("image/jpeg", "r2", "ext-"+subtype, "https://files.example.com/"+subtype, meta)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	return file
}

func makeItem(t *testing.T, subtypes ...string) domain.Item {
	t.Helper()
	files := make([]domain.ItemFile, 0, len(subtypes))
	for _, s := range subtypes {
		files = append(files, makeFile(t, s))
	}
	item, err := domain.NewItem("cat-1", "brand-1", "Speedy 30", "", nil, files)
	if err != nil {
		t.Fatalf("failed to create item: %v", err)
	}
	return item
}

func makeCustomer(t *testing.T) domain.Customer {
	t.Helper()
	customer, err := domain.NewCustomer("", "Jane", "Doe", "jane@example.com")
	if err != nil {
		t.Fatalf("failed to create customer: %v", err)
	}
	return customer
}

func TestNewQuote(t *testing.T) {
	item := makeItem(t, "Front", "Back", "Bottom", "Inside")

	quote, err := domain.NewQuote("us", makeCustomer(t), []domain.Item{item})
	if err != nil {
		t.Fatalf("failed to create quote: %v", err)
	}

	if quote.CountryOfOrigin() != "US" {
		t.Errorf("expected country 'US', got %q", quote.CountryOfOrigin())
	}
	if len(quote.Items()) != 1 {
		t.Errorf("expected 1 item, got %d", len(quote.Items()))
	}
	if quote.CreatedAt().IsZero() {
		t.Error("expected createdAt to be set")
	}
}

func TestNewQuote_PhotoSubtypesCaseInsensitive(t *testing.T) {
	item := makeItem(t, "front", "BACK", "bottom", "InSiDe")

	if _, err := domain.NewQuote("FR", makeCustomer(t), []domain.Item{item}); err != nil {
		t.Fatalf("expected case-insensitive subtype match, got %v", err)
	}
}

func TestNewQuote_MissingPhotoSubtype(t *testing.T) {
	item := makeItem(t, "Front", "Back", "Bottom")

	_, err := domain.NewQuote("US", makeCustomer(t), []domain.Item{item})
	if err == nil {
		t.Fatal("expected error for missing Inside photo")
	}

	if !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if !strings.Contains(err.Error(), "Inside") {
		t.Errorf("expected error to name the missing subtype, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "items[0].files") {
		t.Errorf("expected error to point at items[0].files, got %q", err.Error())
	}
}

func TestNewQuote_ThreeLetterCountry(t *testing.T) {
	item := makeItem(t, "Front", "Back", "Bottom", "Inside")

	_, err := domain.NewQuote("USA", makeCustomer(t), []domain.Item{item})
	if !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError for 3-letter country, got %v", err)
	}
}

func TestNewQuote_NoItems(t *testing.T) {
	_, err := domain.NewQuote("US", makeCustomer(t), nil)
	if !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError for empty items, got %v", err)
	}
}

func TestValidateCountryCode(t *testing.T) {
	for _, code := range []string{"US", "fr", " de "} {
		if err := domain.ValidateCountryCode(code); err != nil {
			t.Errorf("expected %q to be accepted, got %v", code, err)
		}
	}
	for _, code := range []string{"", "U", "USA", "U1", "12"} {
		if err := domain.ValidateCountryCode(code); err == nil {
			t.Errorf("expected %q to be rejected", code)
		}
	}
}

func TestNewCustomer(t *testing.T) {
	customer, err := domain.NewCustomer(" gold ", " Jane ", " Doe ", "jane@example.com")
	if err != nil {
		t.Fatalf("failed to create customer: %v", err)
	}
	if customer.ExternalSellerTier() != "gold" {
		t.Errorf("expected trimmed tier 'gold', got %q", customer.ExternalSellerTier())
	}
	if customer.FirstName() != "Jane" || customer.LastName() != "Doe" {
		t.Errorf("expected trimmed names, got %q %q", customer.FirstName(), customer.LastName())
	}
}

func TestNewCustomer_Invalid(t *testing.T) {
	cases := []struct {
		name      string
		firstName string
		lastName  string
		email     string
	}{
		{"blank first name", "  ", "Doe", "jane@example.com"},
		{"blank last name", "Jane", "", "jane@example.com"},
		{"blank email", "Jane", "Doe", ""},
		{"malformed email", "Jane", "Doe", "not-an-email"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := domain.NewCustomer("", tc.firstName, tc.lastName, tc.email)
			if !domain.IsValidation(err) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
		})
	}
}

func TestNewItem_Invalid(t *testing.T) {
	files := []domain.ItemFile{makeFile(t, "Front")}

	if _, err := domain.NewItem("", "brand-1", "Speedy", "", nil, files); !domain.IsValidation(err) {
		t.Errorf("expected ValidationError for blank category, got %v", err)
	}
	if _, err := domain.NewItem("cat-1", "brand-1", "   ", "", nil, files); !domain.IsValidation(err) {
		t.Errorf("expected ValidationError for blank model, got %v", err)
	}
	if _, err := domain.NewItem("cat-1", "brand-1", "Speedy", "", nil, nil); !domain.IsValidation(err) {
		t.Errorf("expected ValidationError for empty files, got %v", err)
	}
}

func TestNewItemAttribute_NoValues(t *testing.T) {
	if _, err := domain.NewItemAttribute("attr-1", nil); !domain.IsValidation(err) {
		t.Errorf("expected ValidationError for empty values, got %v", err)
	}
}

func TestNewFileMetadata_BlankSubtype(t *testing.T) {
	if _, err := domain.NewFileMetadata("Photo", "   ", ""); !domain.IsValidation(err) {
		t.Errorf("expected ValidationError for blank subtype, got %v", err)
	}
}
