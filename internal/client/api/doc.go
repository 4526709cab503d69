// Package api is the client's facade over the account service's JSON API.
//
// Every operation returns a *Response for any HTTP answer, including 4xx and
// 5xx, so that flow controllers can look at the status and the server's
// message or validation payload themselves. Only transport failures (no
// response at all: refused connection, timeout, cancelled context) come back
// as an error, and those always match ErrUnavailable with errors.Is.
//
// Two headers are attached to every request:
//
//   - Accept-Language: the language last passed to SetLocale.
//   - Authorization: whatever the configured AuthSource reports, when non-empty.
//
// Endpoints (base path /api/1.0):
//
//	POST /users                 SignUp
//	POST /users/token/{token}   Activate
//	POST /auth                  Login
//	GET  /users?page=&size=     ListUsers
//	GET  /users/{id}            GetUser
package api
