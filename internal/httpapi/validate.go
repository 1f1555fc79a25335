package httpapi

import (
	"strings"
	"unicode/utf8"

	"github.com/mkuznecov/northwind-api/internal/domain"
)

const (
	minFieldLen = 2
	maxFieldLen = 100
)

func trimCustomer(c *domain.NewCustomer) {
	c.CustomerName = strings.TrimSpace(c.CustomerName)
	c.ContactName = strings.TrimSpace(c.ContactName)
	c.Address = strings.TrimSpace(c.Address)
	c.City = strings.TrimSpace(c.City)
	c.PostalCode = strings.TrimSpace(c.PostalCode)
	c.Country = strings.TrimSpace(c.Country)
}

// validateNewCustomer checks presence and length only. Injection is
// handled by parameterized queries, not by inspecting values.
func validateNewCustomer(c domain.NewCustomer) error {
	fields := []struct {
		name  string
		value string
	}{
		{"customerName", c.CustomerName},
		{"contactName", c.ContactName},
		{"address", c.Address},
		{"city", c.City},
		{"postalCode", c.PostalCode},
		{"country", c.Country},
	}
	for _, f := range fields {
		if f.value == "" {
			return &domain.FieldError{Field: f.name, Reason: "is required"}
		}
		if n := utf8.RuneCountInString(f.value); n < minFieldLen || n > maxFieldLen {
			return &domain.FieldError{Field: f.name, Reason: "must be between 2 and 100 characters"}
		}
	}
	return nil
}
