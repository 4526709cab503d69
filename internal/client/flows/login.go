package flows

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/accountsclient/internal/client/api"
	"github.com/dmitrijs2005/accountsclient/internal/client/i18n"
	"github.com/dmitrijs2005/accountsclient/internal/logging"
)

// BearerPrefix is prepended to the login token to form the Authorization header.
const BearerPrefix = "Bearer "

type LoginState struct {
	Email    string
	Password string
	Pending  bool
	Outcome  Outcome
	Message  string
}

type Login struct {
	api     LoginAPI
	session SessionWriter
	nav     Navigator
	tr      Translator
	log     logging.Logger

	mu       sync.Mutex
	email    string
	password string
	pending  bool
	outcome  Outcome
	message  string
}

func NewLogin(client LoginAPI, session SessionWriter, nav Navigator, tr Translator, log logging.Logger) *Login {
	return &Login{api: client, session: session, nav: nav, tr: tr, log: log.With("flow", "login")}
}

// SetEmail edits the e-mail field. Any shown failure is cleared.
func (l *Login) SetEmail(v string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.email = v
	l.clearOutcome()
}

// SetPassword edits the password field. Any shown failure is cleared.
func (l *Login) SetPassword(v string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.password = v
	l.clearOutcome()
}

func (l *Login) clearOutcome() {
	l.outcome = OutcomeNone
	l.message = ""
}

// ButtonEnabled reports whether a submission would be accepted.
func (l *Login) ButtonEnabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.email != "" && l.password != "" && !l.pending
}

// Pending is the loading indicator.
func (l *Login) Pending() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.pending
}

func (l *Login) State() LoginState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return LoginState{
		Email:    l.email,
		Password: l.password,
		Pending:  l.pending,
		Outcome:  l.outcome,
		Message:  l.message,
	}
}

// Submit sends the credentials. On success the session is written and the
// navigator is sent home.
func (l *Login) Submit(ctx context.Context) error {
	l.mu.Lock()
	if l.pending {
		l.mu.Unlock()
		return ErrInFlight
	}
	if l.email == "" || l.password == "" {
		l.mu.Unlock()
		return ErrIncomplete
	}
	l.pending = true
	l.clearOutcome()
	email, password := l.email, l.password
	l.mu.Unlock()

	resp, err := l.api.Login(ctx, email, password)
	if err != nil {
		l.log.Warn(ctx, "login request failed", "error", err)
		l.finish(OutcomeFailure, l.tr.T(i18n.ConnectionFailure))
		return nil
	}

	if !resp.OK() {
		msg := resp.Message()
		if msg == "" {
			msg = l.tr.T(i18n.LoginFailure)
		}
		l.finish(OutcomeFailure, msg)
		return nil
	}

	var body api.LoginResponse
	if err := resp.DecodeJSON(&body); err != nil || body.Token == "" {
		l.log.Warn(ctx, "unusable login response", "error", err)
		l.finish(OutcomeFailure, l.tr.T(i18n.LoginFailure))
		return nil
	}

	image := ""
	if body.Image != nil {
		image = *body.Image
	}
	if err := l.session.SetLoggedIn(ctx, body.ID, body.Username, image, BearerPrefix+body.Token); err != nil {
		// the in-memory session is still logged in; only durability is lost
		l.log.Error(ctx, "session not persisted", "error", err)
	}

	l.finish(OutcomeSuccess, "")
	l.nav.Push("/")
	return nil
}

func (l *Login) finish(outcome Outcome, message string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.pending = false
	l.outcome = outcome
	l.message = message
}
