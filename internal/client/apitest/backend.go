// Package apitest runs an in-process fake of the account service for tests.
//
// The default routes reproduce the service's documented behaviour on a fixed
// data set: seven users (user1..user7), activation token "5678" failing with
// "Activation failure", every login failing with 401 "Incorrect credentials"
// and every sign-up succeeding. Tests replace individual handlers with
// SetSignUp / SetLogin, inspect what was sent with Requests and Count, and
// use Hold / Release to keep requests in flight.
package apitest

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrijs2005/accountsclient/internal/client/api"
)

// Request is what the backend saw.
type Request struct {
	Method string
	Path   string
	Query  string
	Header http.Header
	Body   []byte
}

// Backend is a running fake service. URL is its base URL.
type Backend struct {
	URL string

	srv *httptest.Server

	mu       sync.Mutex
	requests []Request
	users    []api.User
	signUp   http.HandlerFunc
	login    http.HandlerFunc
	hold     chan struct{}
	arrived  chan string
}

// New starts a backend that is closed when t finishes.
func New(t testing.TB) *Backend {
	t.Helper()

	b := &Backend{
		users:   DefaultUsers(),
		signUp:  Status(http.StatusOK),
		login:   JSON(http.StatusUnauthorized, map[string]string{"message": "Incorrect credentials"}),
		arrived: make(chan string, 64),
	}

	r := chi.NewRouter()
	r.Use(b.record)
	r.Route(api.BasePath, func(r chi.Router) {
		r.Post("/users", b.dispatch(func() http.HandlerFunc { return b.signUp }))
		r.Post("/users/token/{token}", b.activate)
		r.Post("/auth", b.dispatch(func() http.HandlerFunc { return b.login }))
		r.Get("/users", b.listUsers)
		r.Get("/users/{id}", b.getUser)
	})

	b.srv = httptest.NewServer(r)
	b.URL = b.srv.URL
	t.Cleanup(func() {
		b.Release()
		b.srv.Close()
	})
	return b
}

// DefaultUsers returns user1..user7 with ids 1..7 and no image.
func DefaultUsers() []api.User {
	users := make([]api.User, 0, 7)
	for i := 1; i <= 7; i++ {
		users = append(users, api.User{
			ID:       int64(i),
			Username: "user" + strconv.Itoa(i),
			Email:    "user" + strconv.Itoa(i) + "@mail.com",
		})
	}
	return users
}

func (b *Backend) SetUsers(users []api.User) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.users = users
}

func (b *Backend) SetSignUp(h http.HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.signUp = h
}

func (b *Backend) SetLogin(h http.HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.login = h
}

// Hold makes every following request block after being recorded, until
// Release is called.
func (b *Backend) Hold() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.hold == nil {
		b.hold = make(chan struct{})
	}
}

// Release unblocks held requests. Safe to call when nothing is held.
func (b *Backend) Release() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.hold != nil {
		close(b.hold)
		b.hold = nil
	}
}

// WaitArrived blocks until a request for path has been recorded.
func (b *Backend) WaitArrived(t testing.TB, path string) {
	t.Helper()
	timeout := time.After(5 * time.Second)
	for {
		select {
		case p := <-b.arrived:
			if p == path {
				return
			}
		case <-timeout:
			t.Fatalf("no request for %s arrived", path)
		}
	}
}

// Requests returns the recorded requests for method and path.
func (b *Backend) Requests(method, path string) []Request {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []Request
	for _, r := range b.requests {
		if r.Method == method && r.Path == path {
			out = append(out, r)
		}
	}
	return out
}

// Count is len(Requests(method, path)).
func (b *Backend) Count(method, path string) int {
	return len(b.Requests(method, path))
}

// Total is the number of requests of any kind.
func (b *Backend) Total() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.requests)
}

func (b *Backend) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = r.Body.Close()

		b.mu.Lock()
		b.requests = append(b.requests, Request{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			Header: r.Header.Clone(),
			Body:   body,
		})
		hold := b.hold
		b.mu.Unlock()

		select {
		case b.arrived <- r.URL.Path:
		default:
		}

		if hold != nil {
			select {
			case <-hold:
			case <-r.Context().Done():
				return
			}
		}

		r.Body = io.NopCloser(bytes.NewReader(body))
		next.ServeHTTP(w, r)
	})
}

func (b *Backend) dispatch(pick func() http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		h := pick()
		b.mu.Unlock()
		h(w, r)
	}
}

func (b *Backend) activate(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "token") == "5678" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Activation failure"})
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (b *Backend) listUsers(w http.ResponseWriter, r *http.Request) {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 0 {
		page = 0
	}
	size, err := strconv.Atoi(r.URL.Query().Get("size"))
	if err != nil || size <= 0 {
		size = 5
	}

	b.mu.Lock()
	users := append([]api.User(nil), b.users...)
	b.mu.Unlock()

	writeJSON(w, http.StatusOK, Page(users, page, size))
}

func (b *Backend) getUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	b.mu.Lock()
	defer b.mu.Unlock()
	for _, u := range b.users {
		if strconv.FormatInt(u.ID, 10) == id {
			writeJSON(w, http.StatusOK, u)
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"message": "User not found"})
}

// Page slices users the way the service does.
func Page(users []api.User, page, size int) api.UserPage {
	start := page * size
	end := start + size
	if start > len(users) {
		start = len(users)
	}
	if end > len(users) {
		end = len(users)
	}
	return api.UserPage{
		Content:    append([]api.User{}, users[start:end]...),
		Page:       page,
		Size:       size,
		TotalPages: int(math.Ceil(float64(len(users)) / float64(size))),
	}
}

// Status answers with an empty body.
func Status(code int) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(code)
	}
}

// JSON answers with v encoded as JSON.
func JSON(code int, v any) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, code, v)
	}
}

// ValidationError answers 400 with a single field error.
func ValidationError(field, message string) http.HandlerFunc {
	return JSON(http.StatusBadRequest, map[string]any{
		"validationErrors": map[string]string{field: message},
	})
}

// LocalizedUsernameError answers 400 with the username error in the
// language asked for by Accept-Language.
func LocalizedUsernameError() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		msg := "Username cannot be null"
		if r.Header.Get("Accept-Language") == "tr" {
			msg = "Kullanıcı adı boş olamaz"
		}
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"validationErrors": map[string]string{"username": msg},
		})
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
