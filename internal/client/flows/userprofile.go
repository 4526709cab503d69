package flows

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/accountsclient/internal/client/api"
	"github.com/dmitrijs2005/accountsclient/internal/client/i18n"
	"github.com/dmitrijs2005/accountsclient/internal/logging"
)

type UserProfileState struct {
	ID      string
	User    *api.User
	Pending bool
	Message string
}

// UserProfile loads one user. It is pending until the first Load resolves.
type UserProfile struct {
	api UserAPI
	tr  Translator
	log logging.Logger
	id  string

	mu      sync.Mutex
	loading bool
	pending bool
	user    *api.User
	message string
}

func NewUserProfile(client UserAPI, tr Translator, id string, log logging.Logger) *UserProfile {
	return &UserProfile{api: client, tr: tr, id: id, pending: true, log: log.With("flow", "profile")}
}

func (p *UserProfile) Load(ctx context.Context) error {
	p.mu.Lock()
	if p.loading {
		p.mu.Unlock()
		return ErrInFlight
	}
	p.loading = true
	p.pending = true
	p.mu.Unlock()

	resp, err := p.api.GetUser(ctx, p.id)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.loading = false
	p.pending = false

	if err != nil {
		p.log.Warn(ctx, "user request failed", "id", p.id, "error", err)
		p.user = nil
		p.message = p.tr.T(i18n.ConnectionFailure)
		return nil
	}

	if !resp.OK() {
		p.user = nil
		p.message = resp.Message()
		if p.message == "" && resp.NotFound() {
			p.message = p.tr.T(i18n.UserNotFound)
		}
		if p.message == "" {
			p.message = p.tr.T(i18n.ConnectionFailure)
		}
		return nil
	}

	var u api.User
	if err := resp.DecodeJSON(&u); err != nil {
		p.log.Warn(ctx, "unusable user body", "error", err)
		p.user = nil
		p.message = p.tr.T(i18n.ConnectionFailure)
		return nil
	}
	p.user = &u
	p.message = ""
	return nil
}

func (p *UserProfile) Pending() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pending
}

func (p *UserProfile) State() UserProfileState {
	p.mu.Lock()
	defer p.mu.Unlock()
	st := UserProfileState{ID: p.id, Pending: p.pending, Message: p.message}
	if p.user != nil {
		u := *p.user
		st.User = &u
	}
	return st
}
