package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/suleiman-ali/PC-MAINTANANCE-MANAGEMENT-SYSTEM/internal/client/booking"
	"github.com/suleiman-ali/PC-MAINTANANCE-MANAGEMENT-SYSTEM/internal/client/models"
)

// BookingsGateway talks to the backend's booking endpoints.
type BookingsGateway struct {
	c *Client
}

// Bookings returns the bookings gateway bound to c.
func (c *Client) Bookings() *BookingsGateway { return &BookingsGateway{c: c} }

// List fetches the caller's own bookings.
func (g *BookingsGateway) List(ctx context.Context) ([]models.Booking, error) {
	var out []models.Booking
	if err := g.c.do(ctx, http.MethodGet, "/api/bookings/", nil, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}

// ListAll fetches every booking in the system. Admin only; a non-admin
// token gets a rejection from the backend.
func (g *BookingsGateway) ListAll(ctx context.Context) ([]models.Booking, error) {
	var out []models.Booking
	if err := g.c.do(ctx, http.MethodGet, "/api/bookings/all/", nil, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}

// Create submits a new booking. The request must already have passed
// booking.CreateRequest.Validate; the backend re-validates and is
// authoritative.
func (g *BookingsGateway) Create(ctx context.Context, req *booking.CreateRequest) (*models.Booking, error) {
	var out models.Booking
	if err := g.c.do(ctx, http.MethodPost, "/api/bookings/", req, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateStatus moves a booking to a new status. The UI only offers legal
// transitions; an illegal one forced through anyway comes back as a
// *BusinessError.
func (g *BookingsGateway) UpdateStatus(ctx context.Context, id int64, status booking.Status) (*models.Booking, error) {
	in := struct {
		Status booking.Status `json:"status"`
	}{status}
	var out models.Booking
	if err := g.c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/bookings/%d/", id), in, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// Cancel cancels the caller's own booking.
func (g *BookingsGateway) Cancel(ctx context.Context, id int64) error {
	return g.c.do(ctx, http.MethodPost, fmt.Sprintf("/api/bookings/%d/cancel/", id), nil, nil, true)
}
