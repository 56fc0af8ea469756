package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/suleiman-ali/PC-MAINTANANCE-MANAGEMENT-SYSTEM/internal/client/api"
	"github.com/suleiman-ali/PC-MAINTANANCE-MANAGEMENT-SYSTEM/internal/client/booking"
	"github.com/suleiman-ali/PC-MAINTANANCE-MANAGEMENT-SYSTEM/internal/client/config"
	"github.com/suleiman-ali/PC-MAINTANANCE-MANAGEMENT-SYSTEM/internal/client/guard"
	"github.com/suleiman-ali/PC-MAINTANANCE-MANAGEMENT-SYSTEM/internal/client/models"
	"github.com/suleiman-ali/PC-MAINTANANCE-MANAGEMENT-SYSTEM/internal/client/session"
	"github.com/suleiman-ali/PC-MAINTANANCE-MANAGEMENT-SYSTEM/internal/logging"
)

// servicesAPI and bookingsAPI are the gateway surfaces the views need.
// The api gateways satisfy them; tests provide fakes.
type servicesAPI interface {
	List(ctx context.Context) ([]models.Service, error)
	Create(ctx context.Context, in *api.ServiceInput) (*models.Service, error)
	Update(ctx context.Context, id int64, in *api.ServiceInput) (*models.Service, error)
	Delete(ctx context.Context, id int64) error
}

type bookingsAPI interface {
	List(ctx context.Context) ([]models.Booking, error)
	ListAll(ctx context.Context) ([]models.Booking, error)
	Create(ctx context.Context, req *booking.CreateRequest) (*models.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status booking.Status) (*models.Booking, error)
	Cancel(ctx context.Context, id int64) error
}

// App is the interactive client. One instance drives one REPL.
type App struct {
	store    *session.Store
	services servicesAPI
	bookings bookingsAPI
	log      logging.Logger

	reader *bufio.Reader
	out    io.Writer
	now    func() time.Time
}

// NewApp wires the full client from configuration: token storage, the HTTP
// core with the session store as its token source, the gateways, and the
// unauthorized hook driving session invalidation.
func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	storage, err := session.NewFileStorage(cfg.TokenFile)
	if err != nil {
		return nil, fmt.Errorf("token storage: %w", err)
	}

	// The store is both the token source for outgoing requests and the
	// target of the 401 hook, so construction happens in two steps.
	var store *session.Store
	client := api.New(cfg.ServerURL, cfg.RequestTimeout, session.TokenSourceFunc(func() string {
		if store == nil {
			return ""
		}
		return store.AccessToken()
	}))
	store = session.NewStore(client.Auth(), storage, log)
	client.OnUnauthorized(store.Invalidate)

	return &App{
		store:    store,
		services: client.Services(),
		bookings: client.Bookings(),
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		now:      time.Now,
	}, nil
}

// Run restores the session once and enters the REPL. It returns when the
// user exits or the context is cancelled.
func (a *App) Run(ctx context.Context) {
	a.store.Restore(ctx)
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, a.help, scanner)
}

func (a *App) sessionState() session.State { return a.store.State() }

// status builds the prompt fragment showing who is logged in.
func (a *App) status() string {
	switch a.store.State() {
	case session.StateAuthenticated:
		id := a.store.Identity()
		if id == nil {
			return ""
		}
		if id.IsAdmin {
			return fmt.Sprintf("(%s admin)", id.Username)
		}
		return fmt.Sprintf("(%s)", id.Username)
	case session.StateUnknown:
		return "(...)"
	default:
		return ""
	}
}

func (a *App) help() string {
	if a.store.State() != session.StateAuthenticated {
		return "Available commands: login, register, exit"
	}
	id := a.store.Identity()
	if id != nil && id.IsAdmin {
		return "Available commands: dashboard, services, bookings, manage-services, profile, logout, exit"
	}
	return "Available commands: dashboard, services, book [service-id], my-bookings, profile, logout, exit"
}

// maxRedirects bounds guard-redirect chains; the route table is small and
// acyclic, so hitting the bound means a bug, not a legal navigation.
const maxRedirects = 8

// Navigate resolves the guard for the target route, following redirects the
// way the web client does, and renders the view that is finally allowed.
func (a *App) Navigate(ctx context.Context, route guard.Route, args ...string) error {
	for i := 0; i < maxRedirects; i++ {
		d := guard.Resolve(a.store.State(), a.store.Identity(), route)
		switch {
		case d.Pending:
			fmt.Fprintln(a.out, "Session is still being restored, try again in a moment.")
			return nil
		case d.Allow:
			return a.render(ctx, route, args)
		default:
			route, args = d.RedirectTo, nil
		}
	}
	return fmt.Errorf("navigation did not settle for route %s", route)
}

// render dispatches an allowed route to its view.
func (a *App) render(ctx context.Context, route guard.Route, args []string) error {
	switch route {
	case guard.RouteLogin:
		return a.loginView(ctx)
	case guard.RouteRegister:
		return a.registerView(ctx)
	case guard.RouteDashboard:
		return a.userDashboardView(ctx)
	case guard.RouteServices:
		return a.servicesView(ctx)
	case guard.RouteBook:
		return a.bookView(ctx, args)
	case guard.RouteMyBookings:
		return a.myBookingsView(ctx)
	case guard.RouteProfile:
		return a.profileView(ctx)
	case guard.RouteAdmin:
		return a.adminDashboardView(ctx)
	case guard.RouteAdminServices:
		return a.manageServicesView(ctx)
	case guard.RouteAdminBookings:
		return a.allBookingsView(ctx)
	}
	return fmt.Errorf("no view for route %s", route)
}

// Logout clears the session; server-side failures are logged inside the
// store and never surface here.
func (a *App) Logout(ctx context.Context) {
	a.store.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out.")
}

// fail renders an operation failure without changing any state.
func (a *App) fail(err error) {
	fmt.Fprintln(a.out, errorLine(err))
}
