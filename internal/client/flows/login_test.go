package flows_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/accountsclient/internal/client/apitest"
	"github.com/dmitrijs2005/accountsclient/internal/client/flows"
	"github.com/dmitrijs2005/accountsclient/internal/client/i18n"
	"github.com/dmitrijs2005/accountsclient/internal/client/router"
	"github.com/dmitrijs2005/accountsclient/internal/client/session"
	"github.com/dmitrijs2005/accountsclient/internal/client/storage"
	"github.com/dmitrijs2005/accountsclient/internal/logging"
)

const authPath = "/api/1.0/auth"

func newLogin(e *env) *flows.Login {
	return flows.NewLogin(e.client, e.store, e.nav, e.locale, logging.Nop())
}

func TestLogin_ButtonEnabled(t *testing.T) {
	l := newLogin(newEnv(t))
	assert.False(t, l.ButtonEnabled())

	l.SetEmail("user1@mail.com")
	assert.False(t, l.ButtonEnabled())

	l.SetPassword("P4ssword")
	assert.True(t, l.ButtonEnabled())
}

func TestLogin_SubmitIncomplete(t *testing.T) {
	e := newEnv(t)
	l := newLogin(e)
	l.SetEmail("user1@mail.com")

	err := l.Submit(context.Background())
	assert.ErrorIs(t, err, flows.ErrIncomplete)
	assert.Zero(t, e.backend.Total())
}

func TestLogin_Success(t *testing.T) {
	e := newEnv(t)
	e.backend.SetLogin(apitest.JSON(http.StatusOK, map[string]any{
		"id": 5, "username": "user5", "image": nil, "token": "abcdefgh",
	}))

	var notified []session.Session
	e.store.Subscribe(func(s session.Session) { notified = append(notified, s) })

	l := newLogin(e)
	l.SetEmail("user5@mail.com")
	l.SetPassword("P4ssword")
	e.nav.Replace("/login")

	require.NoError(t, l.Submit(context.Background()))

	st := l.State()
	assert.Equal(t, flows.OutcomeSuccess, st.Outcome)
	assert.False(t, st.Pending)
	assert.Empty(t, st.Message)

	reqs := e.backend.Requests(http.MethodPost, authPath)
	require.Len(t, reqs, 1)
	assert.JSONEq(t, `{"email":"user5@mail.com","password":"P4ssword"}`, string(reqs[0].Body))

	cur := e.store.Current()
	assert.True(t, cur.IsLoggedIn)
	assert.Equal(t, int64(5), cur.ID)
	assert.Equal(t, "user5", cur.Username)
	assert.Equal(t, "Bearer abcdefgh", cur.AuthorizationHeader)
	require.Len(t, notified, 1)

	// persisted before anyone was told
	var stored session.Session
	found, err := storage.GetJSON(context.Background(), e.repo, session.StorageKey, &stored)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Bearer abcdefgh", stored.AuthorizationHeader)

	route, ok := e.nav.Current()
	require.True(t, ok)
	assert.Equal(t, router.ViewHome, route.View)

	links := router.NavLinks(cur.IsLoggedIn, cur.ID)
	assert.Contains(t, links, router.Link{Label: i18n.MyProfile, Path: "/user/5"})
}

func TestLogin_SubsequentRequestsCarryAuthorization(t *testing.T) {
	e := newEnv(t)
	e.backend.SetLogin(apitest.JSON(http.StatusOK, map[string]any{
		"id": 5, "username": "user5", "token": "abcdefgh",
	}))
	l := newLogin(e)
	l.SetEmail("user5@mail.com")
	l.SetPassword("P4ssword")
	require.NoError(t, l.Submit(context.Background()))

	_, err := e.client.ListUsers(context.Background(), 0, 3)
	require.NoError(t, err)

	reqs := e.backend.Requests(http.MethodGet, "/api/1.0/users")
	require.Len(t, reqs, 1)
	assert.Equal(t, "Bearer abcdefgh", reqs[0].Header.Get("Authorization"))
}

func TestLogin_FailureShowsServerMessageAndClearsOnEdit(t *testing.T) {
	e := newEnv(t)
	l := newLogin(e)
	l.SetEmail("user1@mail.com")
	l.SetPassword("wrong")

	require.NoError(t, l.Submit(context.Background()))

	st := l.State()
	assert.Equal(t, flows.OutcomeFailure, st.Outcome)
	assert.Equal(t, "Incorrect credentials", st.Message)
	assert.False(t, e.store.IsLoggedIn())
	assert.Equal(t, "/", e.nav.Path())

	l.SetPassword("wrong2")
	st = l.State()
	assert.Equal(t, flows.OutcomeNone, st.Outcome)
	assert.Empty(t, st.Message)

	require.NoError(t, l.Submit(context.Background()))
	l.SetEmail("user2@mail.com")
	assert.Empty(t, l.State().Message)
}

func TestLogin_FailureWithoutMessageUsesGenericText(t *testing.T) {
	e := newEnv(t)
	e.backend.SetLogin(apitest.Status(http.StatusUnauthorized))
	l := newLogin(e)
	l.SetEmail("user1@mail.com")
	l.SetPassword("wrong")

	require.NoError(t, l.Submit(context.Background()))
	assert.Equal(t, "Login failed", l.State().Message)
}

func TestLogin_TransportFailure(t *testing.T) {
	e := newOfflineEnv(t)
	l := newLogin(e)
	l.SetEmail("user1@mail.com")
	l.SetPassword("P4ssword")

	require.NoError(t, l.Submit(context.Background()))

	st := l.State()
	assert.Equal(t, flows.OutcomeFailure, st.Outcome)
	assert.Equal(t, e.locale.T(i18n.ConnectionFailure), st.Message)
	assert.False(t, st.Pending)
	assert.True(t, l.ButtonEnabled())
}

func TestLogin_ClickStormSendsOneRequest(t *testing.T) {
	e := newEnv(t)
	e.backend.Hold()

	l := newLogin(e)
	l.SetEmail("user1@mail.com")
	l.SetPassword("P4ssword")

	done := make(chan error, 1)
	go func() { done <- l.Submit(context.Background()) }()
	e.backend.WaitArrived(t, authPath)

	assert.True(t, l.Pending())
	assert.False(t, l.ButtonEnabled())
	for i := 0; i < 5; i++ {
		assert.ErrorIs(t, l.Submit(context.Background()), flows.ErrInFlight)
	}

	e.backend.Release()
	require.NoError(t, <-done)

	assert.False(t, l.Pending())
	assert.Equal(t, 1, e.backend.Count(http.MethodPost, authPath))
}

func TestLogin_RestartKeepsSession(t *testing.T) {
	e := newEnv(t)
	e.backend.SetLogin(apitest.JSON(http.StatusOK, map[string]any{
		"id": 5, "username": "user5", "token": "abcdefgh",
	}))
	l := newLogin(e)
	l.SetEmail("user5@mail.com")
	l.SetPassword("P4ssword")
	require.NoError(t, l.Submit(context.Background()))
	before := e.backend.Total()

	restarted := session.NewStore(context.Background(), e.repo, logging.Nop())

	assert.True(t, restarted.IsLoggedIn())
	assert.Equal(t, "Bearer abcdefgh", restarted.Authorization())
	assert.Contains(t, router.NavLinks(true, restarted.Current().ID), router.Link{Label: i18n.MyProfile, Path: "/user/5"})
	assert.Equal(t, before, e.backend.Total())
}
