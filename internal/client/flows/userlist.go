package flows

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/accountsclient/internal/client/api"
	"github.com/dmitrijs2005/accountsclient/internal/client/i18n"
	"github.com/dmitrijs2005/accountsclient/internal/client/router"
	"github.com/dmitrijs2005/accountsclient/internal/logging"
)

// DefaultPageSize is the number of users per page.
const DefaultPageSize = 3

type UserListState struct {
	Users       []api.User
	PageIndex   int
	TotalPages  int
	Pending     bool
	HasNext     bool
	HasPrevious bool
	Message     string
}

// UserList pages through the user directory.
//
// Every fetch takes a new generation number and cancels the fetch it
// replaces; only the response carrying the latest generation is applied.
type UserList struct {
	api  UserListAPI
	nav  Navigator
	tr   Translator
	log  logging.Logger
	size int

	mu         sync.Mutex
	pageIndex  int
	page       api.UserPage
	generation uint64
	cancel     context.CancelFunc
	pending    bool
	message    string
}

// NewUserList returns a fetcher at page 0. A size below 1 means
// DefaultPageSize.
func NewUserList(client UserListAPI, nav Navigator, tr Translator, size int, log logging.Logger) *UserList {
	if size < 1 {
		size = DefaultPageSize
	}
	return &UserList{api: client, nav: nav, tr: tr, size: size, log: log.With("flow", "userlist")}
}

func (u *UserList) PageSize() int { return u.size }

// Load fetches the current page.
func (u *UserList) Load(ctx context.Context) error {
	u.mu.Lock()
	idx := u.pageIndex
	u.mu.Unlock()
	return u.fetch(ctx, idx)
}

// Next fetches the following page.
func (u *UserList) Next(ctx context.Context) error {
	u.mu.Lock()
	if !u.hasNext() {
		u.mu.Unlock()
		return ErrNoMorePages
	}
	u.pageIndex++
	idx := u.pageIndex
	u.mu.Unlock()
	return u.fetch(ctx, idx)
}

// Previous fetches the preceding page.
func (u *UserList) Previous(ctx context.Context) error {
	u.mu.Lock()
	if !u.hasPrevious() {
		u.mu.Unlock()
		return ErrNoMorePages
	}
	u.pageIndex--
	idx := u.pageIndex
	u.mu.Unlock()
	return u.fetch(ctx, idx)
}

func (u *UserList) HasNext() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.hasNext()
}

func (u *UserList) HasPrevious() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.hasPrevious()
}

func (u *UserList) hasNext() bool     { return u.pageIndex+1 < u.page.TotalPages }
func (u *UserList) hasPrevious() bool { return u.pageIndex > 0 }

// Select navigates to the profile of the i-th user on the shown page and
// returns its path.
func (u *UserList) Select(i int) (string, error) {
	u.mu.Lock()
	if i < 0 || i >= len(u.page.Content) {
		u.mu.Unlock()
		return "", ErrNoSuchEntry
	}
	path := router.UserPath(u.page.Content[i].ID)
	u.mu.Unlock()

	u.nav.Push(path)
	return path, nil
}

func (u *UserList) State() UserListState {
	u.mu.Lock()
	defer u.mu.Unlock()
	return UserListState{
		Users:       append([]api.User(nil), u.page.Content...),
		PageIndex:   u.pageIndex,
		TotalPages:  u.page.TotalPages,
		Pending:     u.pending,
		HasNext:     u.hasNext(),
		HasPrevious: u.hasPrevious(),
		Message:     u.message,
	}
}

func (u *UserList) fetch(ctx context.Context, idx int) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	u.mu.Lock()
	if u.cancel != nil {
		u.cancel()
	}
	u.generation++
	gen := u.generation
	u.cancel = cancel
	u.pending = true
	u.mu.Unlock()

	resp, err := u.api.ListUsers(ctx, idx, u.size)

	u.mu.Lock()
	defer u.mu.Unlock()

	if gen != u.generation {
		u.log.Debug(ctx, "discarding stale page", "page", idx)
		return nil
	}
	u.cancel = nil
	u.pending = false

	if err != nil {
		u.log.Warn(ctx, "user list request failed", "page", idx, "error", err)
		u.pageIndex = u.page.Page
		u.message = u.tr.T(i18n.ConnectionFailure)
		return nil
	}
	if !resp.OK() {
		u.pageIndex = u.page.Page
		u.message = resp.Message()
		return nil
	}

	var page api.UserPage
	if err := resp.DecodeJSON(&page); err != nil {
		u.log.Warn(ctx, "unusable user page", "error", err)
		u.pageIndex = u.page.Page
		u.message = u.tr.T(i18n.ConnectionFailure)
		return nil
	}
	u.page = page
	u.pageIndex = page.Page
	u.message = ""
	return nil
}
