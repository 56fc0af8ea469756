// Package cli provides the interactive terminal client for the PC
// maintenance booking platform.
//
// It wires configuration, the session store, and the REST gateways into an
// interactive REPL whose commands correspond to the pages of the web
// client: dashboards, the service catalog, booking creation, booking lists,
// profile management, and the admin views.
//
// Every command dispatch first consults the route guard with the current
// session state and identity; redirects are followed the same way the web
// client navigates. Views follow a single shape: fetch, render, optionally
// submit a mutation, re-fetch.
//
// The REPL is started via App.Run(ctx), which restores the session once and
// then blocks until the user exits.
package cli
