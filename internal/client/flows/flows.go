package flows

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/accountsclient/internal/client/api"
)

var (
	ErrInFlight         = errors.New("request already in flight")
	ErrIncomplete       = errors.New("required fields are empty")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrCompleted        = errors.New("form already submitted successfully")
	ErrAlreadyRun       = errors.New("activation already started")
	ErrNoMorePages      = errors.New("no page in that direction")
	ErrNoSuchEntry      = errors.New("no such directory entry")
)

// Outcome of the last submission of a form.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeSuccess
	OutcomeFailure
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeFailure:
		return "failure"
	default:
		return "none"
	}
}

// Translator looks up user-facing messages; *i18n.Locale implements it.
type Translator interface {
	T(key string) string
}

// Navigator is the part of the router the flows drive.
type Navigator interface {
	Push(path string)
}

// SessionWriter is the part of the session store written by Login.
type SessionWriter interface {
	SetLoggedIn(ctx context.Context, id int64, username, image, authorizationHeader string) error
}

type LoginAPI interface {
	Login(ctx context.Context, email, password string) (*api.Response, error)
}

type SignUpAPI interface {
	SignUp(ctx context.Context, body api.SignUpRequest) (*api.Response, error)
}

type ActivationAPI interface {
	Activate(ctx context.Context, token string) (*api.Response, error)
}

type UserListAPI interface {
	ListUsers(ctx context.Context, page, size int) (*api.Response, error)
}

type UserAPI interface {
	GetUser(ctx context.Context, id string) (*api.Response, error)
}
