package order

import "strings"

// Client-facing validation messages.
const (
	MsgMissingFields = "Missing required fields"
	MsgNoItems       = "Order must contain at least one item"
	MsgInvalidPhone  = "Invalid phone number format"
)

// ValidationError reports input that must be rejected before any order is stored.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Draft carries the customer input an order is created from.
type Draft struct {
	CustomerName    string
	CustomerAddress string
	CustomerPhone   string
	Items           []LineItem
}

// Validate checks the item list and the phone format.
// Presence of the customer fields is checked where the request is decoded.
func (d Draft) Validate() error {
	if len(d.Items) == 0 {
		return &ValidationError{Message: MsgNoItems}
	}
	if !ValidPhone(d.CustomerPhone) {
		return &ValidationError{Message: MsgInvalidPhone}
	}
	return nil
}

// ValidPhone reports whether phone, with spaces and hyphens removed,
// is a non-empty run of ASCII digits.
func ValidPhone(phone string) bool {
	digits := strings.NewReplacer(" ", "", "-", "").Replace(phone)
	if digits == "" {
		return false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
