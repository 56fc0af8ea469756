package booking

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/suleiman-ali/PC-MAINTANANCE-MANAGEMENT-SYSTEM/internal/client/models"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func fixtureBookings() []models.Booking {
	return []models.Booking{
		{ID: 1, Status: "completed", ServicePrice: price("50000")},
		{ID: 2, Status: "pending", ServicePrice: price("30000")},
		{ID: 3, Status: "completed", ServicePrice: price("25000.50")},
		{ID: 4, Status: "cancelled", ServicePrice: price("99999")},
		{ID: 5, Status: "confirmed", ServicePrice: price("10000")},
		{ID: 6, Status: "pending", ServicePrice: price("15000")},
	}
}

func TestComputeStats_RevenueCountsOnlyCompleted(t *testing.T) {
	services := []models.Service{{ID: 1}, {ID: 2}, {ID: 3}}

	stats := ComputeStats(services, fixtureBookings())

	assert.Equal(t, 3, stats.TotalServices)
	assert.Equal(t, 6, stats.TotalBookings)
	assert.Equal(t, 2, stats.PendingBookings)
	assert.Equal(t, 2, stats.CompletedBookings)
	assert.True(t, stats.Revenue.Equal(price("75000.50")),
		"revenue = %s, want 75000.50", stats.Revenue)
}

func TestComputeStats_Empty(t *testing.T) {
	stats := ComputeStats(nil, nil)
	assert.Zero(t, stats.TotalBookings)
	assert.True(t, stats.Revenue.IsZero())
}

func TestFilterByStatus(t *testing.T) {
	bookings := fixtureBookings()

	all := FilterByStatus(bookings, FilterAll)
	assert.Len(t, all, len(bookings))

	pending := FilterByStatus(bookings, "pending")
	assert.Len(t, pending, 2)
	for _, b := range pending {
		assert.Equal(t, "pending", b.Status)
	}

	assert.Empty(t, FilterByStatus(bookings, "no-such-status"))
}
