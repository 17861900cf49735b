package fsdk

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/fintracklabs/fintrack/pkg/fsdk/ferr"
)

// validationError builds a client-side validation failure. These never
// reach the network: bad input fails fast with the same error shape the
// backend would use.
func validationError(field, problem string) error {
	return ferr.Validation(field, problem)
}

func validateRequired(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return validationError(field, "must not be empty")
	}
	return nil
}

func validateEmail(field, value string) error {
	if value == "" {
		return nil
	}
	if _, err := mail.ParseAddress(value); err != nil {
		return validationError(field, "is not a valid email address")
	}
	return nil
}

// validatePassword enforces the backend's minimum length locally so a
// too-short password fails before any credentials go over the wire.
func validatePassword(field, value string) error {
	if value == "" {
		return validationError(field, "must not be empty")
	}
	if len([]rune(value)) < 8 {
		return validationError(field, "must be at least 8 characters")
	}
	return nil
}

func validateLineItem(index int, item InvoiceItem) error {
	prefix := fmt.Sprintf("items[%d].", index)
	if strings.TrimSpace(item.Description) == "" {
		return validationError(prefix+"description", "must not be empty")
	}
	if item.Quantity <= 0 {
		return validationError(prefix+"quantity", "must be positive")
	}
	if item.UnitPrice < 0 {
		return validationError(prefix+"unit_price", "must not be negative")
	}
	if item.VATRate < 0 || item.VATRate > 100 {
		return validationError(prefix+"vat_rate", "must be between 0 and 100")
	}
	return nil
}
