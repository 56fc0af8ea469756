package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/suleiman-ali/PC-MAINTANANCE-MANAGEMENT-SYSTEM/internal/client/guard"
)

type fakeNav struct {
	routes  []guard.Route
	args    [][]string
	logouts int
}

func (f *fakeNav) Navigate(_ context.Context, route guard.Route, args ...string) error {
	f.routes = append(f.routes, route)
	f.args = append(f.args, args)
	return nil
}

func (f *fakeNav) Logout(context.Context) { f.logouts++ }

func silenceOutput(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}

func TestRunREPL_DispatchesRoutes(t *testing.T) {
	silenceOutput(t)

	input := strings.Join([]string{
		"help",
		"login",
		"dashboard",
		"services",
		"book 3",
		"my-bookings",
		"profile",
		"bookings",
		"manage-services",
		"logout",
		"exit",
	}, "\n")

	nav := &fakeNav{}
	sc := bufio.NewScanner(strings.NewReader(input))
	runREPL(context.Background(), nav, func() string { return "" }, func() string { return "help" }, sc)

	want := []guard.Route{
		guard.RouteLogin, guard.RouteDashboard, guard.RouteServices,
		guard.RouteBook, guard.RouteMyBookings, guard.RouteProfile,
		guard.RouteAdminBookings, guard.RouteAdminServices,
	}
	if len(nav.routes) != len(want) {
		t.Fatalf("routes = %v, want %v", nav.routes, want)
	}
	for i, r := range want {
		if nav.routes[i] != r {
			t.Fatalf("routes[%d] = %s, want %s", i, nav.routes[i], r)
		}
	}
	if nav.logouts != 1 {
		t.Fatalf("logouts = %d, want 1", nav.logouts)
	}
}

func TestRunREPL_PassesCommandArguments(t *testing.T) {
	silenceOutput(t)

	nav := &fakeNav{}
	sc := bufio.NewScanner(strings.NewReader("book 42\nexit\n"))
	runREPL(context.Background(), nav, func() string { return "" }, func() string { return "" }, sc)

	if len(nav.args) != 1 || len(nav.args[0]) != 1 || nav.args[0][0] != "42" {
		t.Fatalf("args = %v, want [[42]]", nav.args)
	}
}

func TestRunREPL_UnknownCommandAndBlankLinesAreHarmless(t *testing.T) {
	silenceOutput(t)

	nav := &fakeNav{}
	sc := bufio.NewScanner(strings.NewReader("\n\nfoobar\nquit\n"))
	runREPL(context.Background(), nav, func() string { return "" }, func() string { return "" }, sc)

	if len(nav.routes) != 0 {
		t.Fatalf("no routes should be dispatched, got %v", nav.routes)
	}
}

func TestRunREPL_ExitsOnEOF(t *testing.T) {
	silenceOutput(t)

	nav := &fakeNav{}
	sc := bufio.NewScanner(strings.NewReader("services\n"))
	runREPL(context.Background(), nav, func() string { return "" }, func() string { return "" }, sc)

	if len(nav.routes) != 1 {
		t.Fatalf("routes = %v", nav.routes)
	}
}
