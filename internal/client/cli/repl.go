package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/suleiman-ali/PC-MAINTANANCE-MANAGEMENT-SYSTEM/internal/client/guard"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with
// a stub.
var printlnFn = fmt.Println

// navigator is the minimal surface the REPL needs. The real App satisfies
// it; tests provide a lightweight stub.
type navigator interface {
	Navigate(ctx context.Context, route guard.Route, args ...string) error
	Logout(ctx context.Context)
}

// runREPL starts the read-eval-print loop of the booking client.
//
// It reads a line from the scanner, parses the first token as the command,
// and dispatches the matching route through the navigator; the guard then
// decides what actually renders. The loop exits on scanner EOF or when the
// user types "exit" or "quit".
//
// Commands map to the pages of the web client:
//
//	Not logged in:
//	  - help            - show available commands
//	  - login           - authenticate
//	  - register        - create an account
//	  - exit | quit     - leave the program
//
//	Logged in:
//	  - dashboard       - role-appropriate dashboard
//	  - services        - browse the service catalog
//	  - book [id]       - create a booking, optionally pre-selecting a service
//	  - my-bookings     - list and cancel own bookings
//	  - profile         - view and edit the profile
//	  - bookings        - all bookings with status actions (admin)
//	  - manage-services - catalog CRUD (admin)
//	  - logout          - clear the session
//
// Handlers report their own errors; the loop stays resilient and focused
// on I/O.
func runREPL(ctx context.Context, nav navigator, statusFn, helpFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("pcmaint %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			printlnFn(helpFn())

		case "login":
			_ = nav.Navigate(ctx, guard.RouteLogin)

		case "register":
			_ = nav.Navigate(ctx, guard.RouteRegister)

		case "dashboard", "home":
			_ = nav.Navigate(ctx, guard.RouteDashboard)

		case "services":
			_ = nav.Navigate(ctx, guard.RouteServices)

		case "book":
			_ = nav.Navigate(ctx, guard.RouteBook, args...)

		case "my-bookings":
			_ = nav.Navigate(ctx, guard.RouteMyBookings)

		case "profile":
			_ = nav.Navigate(ctx, guard.RouteProfile)

		case "admin":
			_ = nav.Navigate(ctx, guard.RouteAdmin)

		case "bookings":
			_ = nav.Navigate(ctx, guard.RouteAdminBookings)

		case "manage-services":
			_ = nav.Navigate(ctx, guard.RouteAdminServices)

		case "logout":
			nav.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
