// Package domain holds the validated quote intake graph. Every entity is
// built through its constructor and is immutable afterwards, so an instance
// that exists has already passed all of its invariants. The package does no
// I/O; storage identifiers are minted later by the repository layer.
package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

var countryCodeRegex = regexp.MustCompile(`^[A-Za-z]{2}$`)

// RequiredPhotoSubtypes are the photo angles every item must come with.
// Matching is case-insensitive.
var RequiredPhotoSubtypes = []string{"Front", "Back", "Bottom", "Inside"}

// Customer identifies the person submitting the quote.
type Customer struct {
	externalSellerTier string
	firstName          string
	lastName           string
	email              string
}

// NewCustomer validates and builds a Customer. The seller tier is optional;
// everything else is required.
func NewCustomer(externalSellerTier, firstName, lastName, email string) (Customer, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	email = strings.TrimSpace(email)

	if firstName == "" {
		return Customer{}, invalid("customerInformation.firstName", "first name is required")
	}
	if lastName == "" {
		return Customer{}, invalid("customerInformation.lastName", "last name is required")
	}
	if email == "" {
		return Customer{}, invalid("customerInformation.email", "email is required")
	}
	if !emailRegex.MatchString(email) {
		return Customer{}, invalid("customerInformation.email", "email format is invalid")
	}

	return Customer{
		externalSellerTier: strings.TrimSpace(externalSellerTier),
		firstName:          firstName,
		lastName:           lastName,
		email:              email,
	}, nil
}

func (c Customer) ExternalSellerTier() string { return c.externalSellerTier }
func (c Customer) FirstName() string          { return c.firstName }
func (c Customer) LastName() string           { return c.lastName }
func (c Customer) Email() string              { return c.email }

// Quote is the root of the intake graph. It exclusively owns its customer
// and items; nothing in the graph is shared across quotes.
type Quote struct {
	countryOfOrigin string
	customer        Customer
	items           []Item
	createdAt       time.Time
}

// ValidateCountryCode checks the shape of a country code without touching
// reference data, so a malformed code can be rejected before any lookup.
func ValidateCountryCode(code string) error {
	if !countryCodeRegex.MatchString(strings.TrimSpace(code)) {
		return invalid("countryOfOrigin", "must be a 2-letter country code")
	}
	return nil
}

// NewQuote builds the full quote after its sub-entities already validated
// themselves. On top of the field checks it enforces the cross-entity rule
// that every item's files cover all required photo subtypes.
func NewQuote(countryOfOrigin string, customer Customer, items []Item) (*Quote, error) {
	countryOfOrigin = strings.TrimSpace(countryOfOrigin)
	if err := ValidateCountryCode(countryOfOrigin); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, invalid("items", "at least one item is required")
	}

	for i, item := range items {
		if missing := item.missingPhotoSubtypes(); len(missing) > 0 {
			return nil, invalid(
				fmt.Sprintf("items[%d].files", i),
				"missing required photo subtypes: "+strings.Join(missing, ", "),
			)
		}
	}

	return &Quote{
		countryOfOrigin: strings.ToUpper(countryOfOrigin),
		customer:        customer,
		items:           items,
		createdAt:       time.Now().UTC(),
	}, nil
}

func (q *Quote) CountryOfOrigin() string { return q.countryOfOrigin }
func (q *Quote) Customer() Customer      { return q.customer }
func (q *Quote) Items() []Item           { return q.items }
func (q *Quote) CreatedAt() time.Time    { return q.createdAt }
