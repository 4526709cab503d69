// Package flows contains the per-view state machines of the client.
//
// Each controller owns one view's inputs, validation, request lifecycle and
// outcome, and is safe for concurrent use: a mutex guards the state while the
// HTTP call runs outside it. A controller never has more than one request in
// flight; a second Submit while one is pending returns ErrInFlight without
// touching the network.
//
//   - Login: credentials form; on success writes the session and navigates home.
//   - SignUp: registration form with live password-repeat check and per-field
//     server validation errors.
//   - Activation: one activation request per instance, started on mount.
//   - UserList: paged user directory with last-response-wins fetching.
//   - UserProfile: single user loader.
//
// Submit-style methods return an error only when no request was issued; the
// outcome of an issued request is read from State.
package flows
