package booking

import (
	"github.com/shopspring/decimal"

	"github.com/suleiman-ali/PC-MAINTANANCE-MANAGEMENT-SYSTEM/internal/client/models"
)

// FilterAll is the filter value that matches every status.
const FilterAll = "all"

// FilterByStatus returns the bookings from the snapshot matching the filter.
// The filter is FilterAll or a Status string; it is applied to the slice as
// fetched and never triggers a re-query.
func FilterByStatus(bookings []models.Booking, filter string) []models.Booking {
	if filter == FilterAll {
		return bookings
	}
	out := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.Status == filter {
			out = append(out, b)
		}
	}
	return out
}

// Stats are the dashboard aggregates derived from freshly fetched
// collections. Revenue is the sum of ServicePrice over completed bookings.
type Stats struct {
	TotalServices     int
	TotalBookings     int
	PendingBookings   int
	CompletedBookings int
	Revenue           decimal.Decimal
}

// ComputeStats derives Stats from the given snapshots. It is called on every
// dashboard load; nothing is cached or incrementally maintained.
func ComputeStats(services []models.Service, bookings []models.Booking) Stats {
	s := Stats{
		TotalServices: len(services),
		TotalBookings: len(bookings),
		Revenue:       decimal.Zero,
	}
	for _, b := range bookings {
		switch Status(b.Status) {
		case StatusPending:
			s.PendingBookings++
		case StatusCompleted:
			s.CompletedBookings++
			s.Revenue = s.Revenue.Add(b.ServicePrice)
		}
	}
	return s
}
