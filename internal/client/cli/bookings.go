package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/suleiman-ali/PC-MAINTANANCE-MANAGEMENT-SYSTEM/internal/client/booking"
	"github.com/suleiman-ali/PC-MAINTANANCE-MANAGEMENT-SYSTEM/internal/client/models"
)

// myBookingsView lists the user's bookings and offers cancellation for the
// ones the workflow still allows an owner to cancel. After a cancellation
// the collection is re-fetched rather than patched locally.
func (a *App) myBookingsView(ctx context.Context) error {
	for {
		bookings, err := a.bookings.List(ctx)
		if err != nil {
			a.fail(err)
			return nil
		}

		fmt.Fprintln(a.out, titleStyle.Render("My bookings"))
		if len(bookings) == 0 {
			fmt.Fprintln(a.out, "You have no bookings yet. Try 'services' to browse.")
			return nil
		}

		rows := make([][]string, 0, len(bookings))
		cancellable := map[int64]bool{}
		for _, b := range bookings {
			rows = append(rows, []string{
				strconv.FormatInt(b.ID, 10), b.ServiceName, b.PreferredDate,
				formatPrice(b.ServicePrice), statusBadge(b.Status),
			})
			cancellable[b.ID] = offers(booking.Status(b.Status), booking.ActorOwner, booking.StatusCancelled)
		}
		fmt.Fprint(a.out, renderTable([]string{"ID", "Service", "Date", "Price", "Status"}, rows))

		line, err := getSimpleText(a.reader, "Action: cancel <id>, or Enter to go back", a.out)
		if err != nil {
			return err
		}
		if line == "" {
			return nil
		}
		parts := strings.Fields(line)
		if len(parts) != 2 || parts[0] != "cancel" {
			fmt.Fprintln(a.out, "Unknown action.")
			continue
		}
		id, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			fmt.Fprintln(a.out, "Unknown action.")
			continue
		}
		if !cancellable[id] {
			fmt.Fprintln(a.out, errorStyle.Render("This booking cannot be cancelled."))
			continue
		}
		ok, err := Confirm(a.reader, fmt.Sprintf("Cancel booking #%d?", id), a.out)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		if err := a.bookings.Cancel(ctx, id); err != nil {
			a.fail(err)
			continue
		}
		fmt.Fprintln(a.out, successStyle.Render("Booking cancelled."))
	}
}

// allBookingsView is the admin list: every booking, a client-side status
// filter over the fetched snapshot, and exactly the status actions the
// workflow offers an admin for each row.
func (a *App) allBookingsView(ctx context.Context) error {
	filter := booking.FilterAll
	for {
		bookings, err := a.bookings.ListAll(ctx)
		if err != nil {
			a.fail(err)
			return nil
		}

		fmt.Fprintln(a.out, titleStyle.Render("All bookings"))
		visible := booking.FilterByStatus(bookings, filter)
		if filter != booking.FilterAll {
			fmt.Fprintln(a.out, faintStyle.Render("filter: "+filter))
		}

		if len(visible) == 0 {
			fmt.Fprintln(a.out, "No bookings match this filter.")
		} else {
			rows := make([][]string, 0, len(visible))
			for _, b := range visible {
				rows = append(rows, []string{
					strconv.FormatInt(b.ID, 10),
					fmt.Sprintf("%s <%s>", b.UserUsername, b.UserEmail),
					b.ServiceName, b.PreferredDate, formatPrice(b.ServicePrice),
					b.Phone, statusBadge(b.Status), actionsFor(b),
				})
			}
			fmt.Fprint(a.out, renderTable(
				[]string{"ID", "Customer", "Service", "Date", "Price", "Contact", "Status", "Actions"}, rows))
		}

		line, err := getSimpleText(a.reader,
			"Action: confirm|complete|cancel <id>, filter <all|pending|confirmed|completed|cancelled>, or Enter to go back", a.out)
		if err != nil {
			return err
		}
		if line == "" {
			return nil
		}
		parts := strings.Fields(line)
		if len(parts) != 2 {
			fmt.Fprintln(a.out, "Unknown action.")
			continue
		}

		switch parts[0] {
		case "filter":
			if parts[1] != booking.FilterAll && !booking.Status(parts[1]).Valid() {
				fmt.Fprintln(a.out, "Unknown filter.")
				continue
			}
			filter = parts[1]

		case "confirm", "complete", "cancel":
			id, err := strconv.ParseInt(parts[1], 10, 64)
			if err != nil {
				fmt.Fprintln(a.out, "Unknown action.")
				continue
			}
			target := map[string]booking.Status{
				"confirm":  booking.StatusConfirmed,
				"complete": booking.StatusCompleted,
				"cancel":   booking.StatusCancelled,
			}[parts[0]]

			b := findBooking(bookings, id)
			if b == nil {
				fmt.Fprintf(a.out, "No booking #%d.\n", id)
				continue
			}
			if !booking.CanTransition(booking.Status(b.Status), target, booking.ActorAdmin) {
				fmt.Fprintln(a.out, errorStyle.Render(
					fmt.Sprintf("A %s booking cannot be moved to %s.", b.Status, target)))
				continue
			}
			updated, err := a.bookings.UpdateStatus(ctx, id, target)
			if err != nil {
				a.fail(err)
				continue
			}
			fmt.Fprintln(a.out, successStyle.Render(
				fmt.Sprintf("Booking #%d is now %s.", updated.ID, updated.Status)))

		default:
			fmt.Fprintln(a.out, "Unknown action.")
		}
	}
}

// actionsFor renders the transitions an admin may trigger for a booking,
// matching the buttons the web client shows per row.
func actionsFor(b models.Booking) string {
	next := booking.NextStatuses(booking.Status(b.Status), booking.ActorAdmin)
	if len(next) == 0 {
		return "-"
	}
	verbs := make([]string, 0, len(next))
	for _, s := range next {
		switch s {
		case booking.StatusConfirmed:
			verbs = append(verbs, "confirm")
		case booking.StatusCompleted:
			verbs = append(verbs, "complete")
		case booking.StatusCancelled:
			verbs = append(verbs, "cancel")
		}
	}
	return strings.Join(verbs, "/")
}

// offers reports whether the workflow lets actor move a booking from its
// current status to target.
func offers(from booking.Status, actor booking.Actor, target booking.Status) bool {
	for _, s := range booking.NextStatuses(from, actor) {
		if s == target {
			return true
		}
	}
	return false
}

func findBooking(bookings []models.Booking, id int64) *models.Booking {
	for i := range bookings {
		if bookings[i].ID == id {
			return &bookings[i]
		}
	}
	return nil
}
