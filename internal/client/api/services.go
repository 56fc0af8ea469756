package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/suleiman-ali/PC-MAINTANANCE-MANAGEMENT-SYSTEM/internal/client/models"
)

// ServiceInput carries the editable fields of a catalog service.
type ServiceInput struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

// ServicesGateway talks to the backend's service-catalog endpoints.
// Create, Update, and Delete require an admin token; the backend enforces
// this and the client simply surfaces the rejection.
type ServicesGateway struct {
	c *Client
}

// Services returns the services gateway bound to c.
func (c *Client) Services() *ServicesGateway { return &ServicesGateway{c: c} }

// List fetches the full service catalog.
func (g *ServicesGateway) List(ctx context.Context) ([]models.Service, error) {
	var out []models.Service
	if err := g.c.do(ctx, http.MethodGet, "/api/services/", nil, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}

// Create adds a new catalog service.
func (g *ServicesGateway) Create(ctx context.Context, in *ServiceInput) (*models.Service, error) {
	var out models.Service
	if err := g.c.do(ctx, http.MethodPost, "/api/services/", in, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces the editable fields of an existing service. Last write
// wins; there is no concurrent-edit detection.
func (g *ServicesGateway) Update(ctx context.Context, id int64, in *ServiceInput) (*models.Service, error) {
	var out models.Service
	if err := g.c.do(ctx, http.MethodPut, fmt.Sprintf("/api/services/%d/", id), in, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a service from the catalog.
func (g *ServicesGateway) Delete(ctx context.Context, id int64) error {
	return g.c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/services/%d/", id), nil, nil, true)
}
