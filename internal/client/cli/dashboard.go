package cli

import (
	"context"
	"fmt"

	"github.com/suleiman-ali/PC-MAINTANANCE-MANAGEMENT-SYSTEM/internal/client/booking"
)

// userDashboardView shows the user's counts, derived fresh from the two
// fetched collections on every visit.
func (a *App) userDashboardView(ctx context.Context) error {
	services, err := a.services.List(ctx)
	if err != nil {
		a.fail(err)
		return nil
	}
	bookings, err := a.bookings.List(ctx)
	if err != nil {
		a.fail(err)
		return nil
	}

	stats := booking.ComputeStats(services, bookings)

	id := a.store.Identity()
	if id != nil {
		fmt.Fprintln(a.out, titleStyle.Render(fmt.Sprintf("Welcome, %s!", id.Username)))
	}
	fmt.Fprintf(a.out, "Services available: %d\n", stats.TotalServices)
	fmt.Fprintf(a.out, "Your bookings:      %d\n", stats.TotalBookings)
	fmt.Fprintf(a.out, "Pending:            %d\n", stats.PendingBookings)
	fmt.Fprintf(a.out, "Completed:          %d\n", stats.CompletedBookings)
	fmt.Fprintln(a.out, faintStyle.Render("Commands: services, book, my-bookings, profile"))
	return nil
}

// adminDashboardView adds the revenue aggregate: the sum of service prices
// over completed bookings, recomputed from the snapshot every time.
func (a *App) adminDashboardView(ctx context.Context) error {
	services, err := a.services.List(ctx)
	if err != nil {
		a.fail(err)
		return nil
	}
	bookings, err := a.bookings.ListAll(ctx)
	if err != nil {
		a.fail(err)
		return nil
	}

	stats := booking.ComputeStats(services, bookings)

	id := a.store.Identity()
	if id != nil {
		fmt.Fprintln(a.out, titleStyle.Render(fmt.Sprintf("Welcome, Admin %s!", id.Username)))
	}
	fmt.Fprintf(a.out, "Total services:    %d\n", stats.TotalServices)
	fmt.Fprintf(a.out, "Total bookings:    %d\n", stats.TotalBookings)
	fmt.Fprintf(a.out, "Pending bookings:  %d\n", stats.PendingBookings)
	fmt.Fprintf(a.out, "Completed:         %d\n", stats.CompletedBookings)
	fmt.Fprintf(a.out, "Total revenue:     %s\n", formatPrice(stats.Revenue))
	fmt.Fprintln(a.out, faintStyle.Render("Commands: bookings, manage-services"))
	return nil
}
