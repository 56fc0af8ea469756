package booking

import (
	"fmt"
	"strings"
	"time"
)

// PaymentMethod is one of the fixed payment options accepted at creation.
type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "cash"
	PaymentCard         PaymentMethod = "card"
	PaymentMobileMoney  PaymentMethod = "mobile_money"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
)

// PaymentMethods lists the accepted options in display order.
var PaymentMethods = []PaymentMethod{PaymentCash, PaymentCard, PaymentMobileMoney, PaymentBankTransfer}

// Valid reports whether p is a known payment method.
func (p PaymentMethod) Valid() bool {
	switch p {
	case PaymentCash, PaymentCard, PaymentMobileMoney, PaymentBankTransfer:
		return true
	}
	return false
}

// DateLayout is the calendar-date wire format for preferred dates.
const DateLayout = "2006-01-02"

// ValidationError reports a single client-detected input problem. It blocks
// submission; validation failures never reach the backend.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// ValidationErrors aggregates every problem found in one validation pass so
// a form can show them all at once.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, v := range e {
		msgs[i] = v.Error()
	}
	return strings.Join(msgs, "; ")
}

// CreateRequest carries the fields required to create a booking.
type CreateRequest struct {
	ServiceID          int64         `json:"service"`
	ProblemDescription string        `json:"problem_description"`
	PreferredDate      string        `json:"preferred_date"`
	Address            string        `json:"address"`
	Phone              string        `json:"phone"`
	PaymentMethod      PaymentMethod `json:"payment_method"`
}

// Validate checks the request against the creation rules: an existing
// service selection, non-empty problem description, a preferred date in
// DateLayout that is not before today (relative to now), non-empty address
// and phone, and a known payment method. It returns nil or a
// ValidationErrors value listing every violation. The backend remains
// authoritative; this only prevents doomed requests.
func (r *CreateRequest) Validate(now time.Time) error {
	var errs ValidationErrors

	if r.ServiceID <= 0 {
		errs = append(errs, &ValidationError{Field: "service", Reason: "a service must be selected"})
	}
	if strings.TrimSpace(r.ProblemDescription) == "" {
		errs = append(errs, &ValidationError{Field: "problem_description", Reason: "must not be empty"})
	}
	if strings.TrimSpace(r.Address) == "" {
		errs = append(errs, &ValidationError{Field: "address", Reason: "must not be empty"})
	}
	if strings.TrimSpace(r.Phone) == "" {
		errs = append(errs, &ValidationError{Field: "phone", Reason: "must not be empty"})
	}
	if !r.PaymentMethod.Valid() {
		errs = append(errs, &ValidationError{Field: "payment_method", Reason: "unknown payment method"})
	}

	if d, err := time.Parse(DateLayout, r.PreferredDate); err != nil {
		errs = append(errs, &ValidationError{Field: "preferred_date", Reason: "must be a date in YYYY-MM-DD form"})
	} else {
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		if d.Before(today) {
			errs = append(errs, &ValidationError{Field: "preferred_date", Reason: "must be today or later"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
