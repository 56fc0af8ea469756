// Package api contains the typed REST gateways the client uses to talk to
// the booking backend.
//
// # Overview
//
// The package provides:
//  1. A single HTTP core (see Client) that attaches the current access token
//     as a bearer credential, tags each request with an X-Request-Id, and
//     maps response codes to sentinel errors.
//  2. Three logical gateways on top of it: auth (login, register, logout,
//     current user, profile update), services (catalog CRUD), and bookings
//     (list, create, status update, cancel).
//
// # Error Handling
//
// Common conditions are exposed as values callers can match with errors.Is
// or errors.As: ErrUnauthorized (401/403-class responses), ErrUnavailable
// (transport failures and 5xx), and *BusinessError (backend-rejected input
// or workflow transitions, carrying the backend's detail message verbatim).
//
// No call is retried; a failed call surfaces its error and leaves client
// state unchanged.
package api
