package flows

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/accountsclient/internal/client/i18n"
	"github.com/dmitrijs2005/accountsclient/internal/logging"
)

type ActivationStatus int

const (
	Activating ActivationStatus = iota
	Activated
	ActivationFailed
)

func (s ActivationStatus) String() string {
	switch s {
	case Activated:
		return "activated"
	case ActivationFailed:
		return "failed"
	default:
		return "activating"
	}
}

type ActivationState struct {
	Token   string
	Status  ActivationStatus
	Message string
}

// Activation activates the account identified by the route token. It starts
// in Activating so the indicator is visible from mount.
type Activation struct {
	api   ActivationAPI
	tr    Translator
	log   logging.Logger
	token string

	mu      sync.Mutex
	started bool
	status  ActivationStatus
	message string
}

func NewActivation(client ActivationAPI, tr Translator, token string, log logging.Logger) *Activation {
	return &Activation{api: client, tr: tr, token: token, log: log.With("flow", "activation")}
}

func (a *Activation) Token() string { return a.token }

// Run issues the activation request. Only the first call does anything.
func (a *Activation) Run(ctx context.Context) error {
	a.mu.Lock()
	if a.started {
		a.mu.Unlock()
		return ErrAlreadyRun
	}
	a.started = true
	a.mu.Unlock()

	resp, err := a.api.Activate(ctx, a.token)

	a.mu.Lock()
	defer a.mu.Unlock()

	if err != nil {
		a.log.Warn(ctx, "activation request failed", "error", err)
		a.status = ActivationFailed
		a.message = a.tr.T(i18n.ConnectionFailure)
		return nil
	}

	if resp.OK() {
		a.status = Activated
		a.message = a.tr.T(i18n.AccountActivationSuccess)
		return nil
	}

	a.status = ActivationFailed
	a.message = resp.Message()
	if a.message == "" {
		a.message = a.tr.T(i18n.AccountActivationFailure)
	}
	return nil
}

func (a *Activation) Pending() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.status == Activating
}

func (a *Activation) State() ActivationState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return ActivationState{Token: a.token, Status: a.status, Message: a.message}
}
