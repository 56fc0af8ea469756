// Package guard decides, per navigation, whether the current identity may
// view a target route. It is a pure function of session state, identity,
// and route; callers re-evaluate it on every navigation and on every
// identity change, never caching the result.
package guard

import (
	"github.com/suleiman-ali/PC-MAINTANANCE-MANAGEMENT-SYSTEM/internal/client/models"
	"github.com/suleiman-ali/PC-MAINTANANCE-MANAGEMENT-SYSTEM/internal/client/session"
)

// Route names a navigable page of the client.
type Route string

const (
	RouteRoot          Route = "/"
	RouteLogin         Route = "/login"
	RouteRegister      Route = "/register"
	RouteDashboard     Route = "/dashboard"
	RouteServices      Route = "/services"
	RouteBook          Route = "/book"
	RouteMyBookings    Route = "/my-bookings"
	RouteProfile       Route = "/profile"
	RouteAdmin         Route = "/admin"
	RouteAdminServices Route = "/admin/services"
	RouteAdminBookings Route = "/admin/bookings"
)

// adminOnly marks the routes requiring the admin role. Every route except
// login, register, and root additionally requires authentication.
var adminOnly = map[Route]bool{
	RouteAdmin:         true,
	RouteAdminServices: true,
	RouteAdminBookings: true,
}

var known = map[Route]bool{
	RouteRoot: true, RouteLogin: true, RouteRegister: true,
	RouteDashboard: true, RouteServices: true, RouteBook: true,
	RouteMyBookings: true, RouteProfile: true,
	RouteAdmin: true, RouteAdminServices: true, RouteAdminBookings: true,
}

// Decision is the outcome of a guard evaluation: exactly one of Pending,
// Allow, or a redirect target is meaningful.
type Decision struct {
	// Pending means the session state is still Unknown; render a waiting
	// indicator and decide nothing yet.
	Pending bool
	// Allow means the identity may view the route.
	Allow bool
	// RedirectTo is the route to navigate to instead, when neither Pending
	// nor Allow is set.
	RedirectTo Route
}

func pending() Decision         { return Decision{Pending: true} }
func allow() Decision           { return Decision{Allow: true} }
func redirect(r Route) Decision { return Decision{RedirectTo: r} }

// Landing is the role-appropriate landing route for an identity.
func Landing(id *models.Identity) Route {
	if id != nil && id.IsAdmin {
		return RouteAdmin
	}
	return RouteDashboard
}

// Resolve evaluates the access rules in order:
//
//  1. Unknown session state: pending, no decision yet.
//  2. Login/register with an authenticated identity: redirect to its
//     landing route.
//  3. Root: redirect by role, or to login when anonymous.
//  4. Unknown routes: redirect to root.
//  5. Any other route while not authenticated: redirect to login.
//  6. Admin routes for a non-admin: redirect to the user dashboard.
//  7. The user dashboard for an admin: redirect to the admin dashboard.
//  8. Otherwise allow.
func Resolve(state session.State, id *models.Identity, route Route) Decision {
	if state == session.StateUnknown {
		return pending()
	}

	authenticated := state == session.StateAuthenticated

	switch route {
	case RouteLogin, RouteRegister:
		if authenticated {
			return redirect(Landing(id))
		}
		return allow()
	case RouteRoot:
		if authenticated {
			return redirect(Landing(id))
		}
		return redirect(RouteLogin)
	}

	if !known[route] {
		return redirect(RouteRoot)
	}
	if !authenticated {
		return redirect(RouteLogin)
	}
	if adminOnly[route] && (id == nil || !id.IsAdmin) {
		return redirect(RouteDashboard)
	}
	if route == RouteDashboard && id != nil && id.IsAdmin {
		return redirect(RouteAdmin)
	}
	return allow()
}
