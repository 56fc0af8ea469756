// Package models defines the client-side copies of the backend entities:
// the authenticated identity, the credential token pair, catalog services,
// and bookings. JSON tags follow the backend wire format; the client never
// persists any of these except the token pair.
package models

import "github.com/shopspring/decimal"

// Identity is the authenticated user's profile as known to the client.
// It is populated from login/registration responses or a current-user fetch
// and cleared on logout or session invalidation.
type Identity struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"is_admin"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
}

// TokenPair is the pair of credential tokens proving an identity to the
// backend. Invariant: both fields are set or both are empty.
type TokenPair struct {
	Access  string `json:"access_token"`
	Refresh string `json:"refresh_token"`
}

// Empty reports whether no credentials are held.
func (t TokenPair) Empty() bool {
	return t.Access == "" && t.Refresh == ""
}

// Service is a catalog item administrators manage.
type Service struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

// Booking is a user's request for a Service. ServiceName and ServicePrice
// are denormalized by the backend so lists render without extra lookups.
// PreferredDate is a calendar date in YYYY-MM-DD form.
type Booking struct {
	ID                 int64           `json:"id"`
	ServiceID          int64           `json:"service"`
	ServiceName        string          `json:"service_name"`
	ServicePrice       decimal.Decimal `json:"service_price"`
	ProblemDescription string          `json:"problem_description"`
	PreferredDate      string          `json:"preferred_date"`
	Address            string          `json:"address"`
	Phone              string          `json:"phone"`
	PaymentMethod      string          `json:"payment_method"`
	Status             string          `json:"status"`
	UserUsername       string          `json:"user_username,omitempty"`
	UserEmail          string          `json:"user_email,omitempty"`
}
