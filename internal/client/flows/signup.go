package flows

import (
	"context"
	"maps"
	"sync"

	"github.com/dmitrijs2005/accountsclient/internal/client/api"
	"github.com/dmitrijs2005/accountsclient/internal/client/i18n"
	"github.com/dmitrijs2005/accountsclient/internal/logging"
)

// Field names used by the service in validationErrors.
const (
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPassword = "password"
)

type SignUpState struct {
	Username       string
	Email          string
	Password       string
	PasswordRepeat string

	// FieldErrors holds the server's per-field messages of the last
	// validation failure, minus the fields edited since.
	FieldErrors map[string]string
	Mismatch    bool
	Pending     bool
	Completed   bool
	// Message is the activation notice after success, or a transport
	// failure notice.
	Message string
}

type SignUp struct {
	api SignUpAPI
	tr  Translator
	log logging.Logger

	mu             sync.Mutex
	username       string
	email          string
	password       string
	passwordRepeat string
	fieldErrors    map[string]string
	pending        bool
	completed      bool
	failure        string
}

func NewSignUp(client SignUpAPI, tr Translator, log logging.Logger) *SignUp {
	return &SignUp{
		api:         client,
		tr:          tr,
		log:         log.With("flow", "signup"),
		fieldErrors: map[string]string{},
	}
}

func (s *SignUp) SetUsername(v string) { s.edit(&s.username, FieldUsername, v) }
func (s *SignUp) SetEmail(v string)    { s.edit(&s.email, FieldEmail, v) }
func (s *SignUp) SetPassword(v string) { s.edit(&s.password, FieldPassword, v) }

func (s *SignUp) SetPasswordRepeat(v string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.passwordRepeat = v
}

// edit stores v and clears only that field's server error.
func (s *SignUp) edit(dst *string, field, v string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	*dst = v
	delete(s.fieldErrors, field)
}

func (s *SignUp) mismatch() bool {
	return s.password != "" && s.passwordRepeat != "" && s.password != s.passwordRepeat
}

// MismatchMessage is the password-repeat hint, or "" when not shown.
func (s *SignUp) MismatchMessage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.mismatch() {
		return ""
	}
	return s.tr.T(i18n.PasswordMismatchValidation)
}

// ButtonEnabled reports whether a submission would be accepted.
func (s *SignUp) ButtonEnabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ready() == nil
}

func (s *SignUp) ready() error {
	switch {
	case s.completed:
		return ErrCompleted
	case s.pending:
		return ErrInFlight
	case s.password == "":
		return ErrIncomplete
	case s.password != s.passwordRepeat:
		return ErrPasswordMismatch
	}
	return nil
}

func (s *SignUp) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// Completed reports whether the account was created; the form is replaced by
// the activation notice from then on.
func (s *SignUp) Completed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.completed
}

// FieldError returns the server message for field, or "".
func (s *SignUp) FieldError(field string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fieldErrors[field]
}

func (s *SignUp) State() SignUpState {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := SignUpState{
		Username:       s.username,
		Email:          s.email,
		Password:       s.password,
		PasswordRepeat: s.passwordRepeat,
		FieldErrors:    maps.Clone(s.fieldErrors),
		Mismatch:       s.mismatch(),
		Pending:        s.pending,
		Completed:      s.completed,
		Message:        s.failure,
	}
	if s.completed {
		st.Message = s.tr.T(i18n.AccountActivationNotification)
	}
	return st
}

// Submit sends username, email and password.
func (s *SignUp) Submit(ctx context.Context) error {
	s.mu.Lock()
	if err := s.ready(); err != nil {
		s.mu.Unlock()
		return err
	}
	s.pending = true
	s.failure = ""
	body := api.SignUpRequest{Username: s.username, Email: s.email, Password: s.password}
	s.mu.Unlock()

	resp, err := s.api.SignUp(ctx, body)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = false

	if err != nil {
		s.log.Warn(ctx, "sign up request failed", "error", err)
		s.failure = s.tr.T(i18n.ConnectionFailure)
		return nil
	}

	switch {
	case resp.OK():
		s.completed = true
		s.fieldErrors = map[string]string{}
	case resp.ValidationErrors() != nil:
		s.fieldErrors = resp.ValidationErrors()
	default:
		s.log.Info(ctx, "sign up rejected", "status", resp.Status)
	}
	return nil
}
