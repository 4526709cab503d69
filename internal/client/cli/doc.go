// Package cli provides the interactive terminal client of the account
// service.
//
// It wires configuration, local storage, the session store, localization, the
// API client and the path router, and runs a REPL in which typed commands
// stand in for link activations and form submissions. After every command
// the current view is rendered: the navigation bar followed by the view bound
// to the current path.
//
// Views are mounted when the path changes. Mounting creates a fresh flow
// controller; its initial request (page load, activation, profile fetch) is
// issued the first time the view is rendered.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
