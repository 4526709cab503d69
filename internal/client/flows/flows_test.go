package flows_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/accountsclient/internal/client/api"
	"github.com/dmitrijs2005/accountsclient/internal/client/apitest"
	"github.com/dmitrijs2005/accountsclient/internal/client/i18n"
	"github.com/dmitrijs2005/accountsclient/internal/client/router"
	"github.com/dmitrijs2005/accountsclient/internal/client/session"
	"github.com/dmitrijs2005/accountsclient/internal/client/storage"
	"github.com/dmitrijs2005/accountsclient/internal/logging"
)

type env struct {
	backend *apitest.Backend
	repo    *storage.MemoryRepository
	store   *session.Store
	locale  *i18n.Locale
	client  *api.Client
	nav     *router.Navigator
}

func newEnv(t *testing.T) *env {
	t.Helper()
	e := &env{backend: apitest.New(t), repo: storage.NewMemoryRepository()}
	e.wire(t, e.backend.URL)
	return e
}

// newOfflineEnv points the client at a server that is already closed.
func newOfflineEnv(t *testing.T) *env {
	t.Helper()
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	e := &env{repo: storage.NewMemoryRepository()}
	e.wire(t, url)
	return e
}

func (e *env) wire(t *testing.T, url string) {
	t.Helper()
	ctx := context.Background()

	e.store = session.NewStore(ctx, e.repo, logging.Nop())

	bundle, err := i18n.NewBundle()
	require.NoError(t, err)
	locale, err := i18n.NewLocale(bundle, "en")
	require.NoError(t, err)
	e.locale = locale

	e.client = api.New(url, api.WithAuthSource(e.store), api.WithLogger(logging.Nop()))
	e.locale.OnChange(e.client.SetLocale)
	e.nav = router.NewNavigator("/")
}
