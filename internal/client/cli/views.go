package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/accountsclient/internal/client/flows"
	"github.com/dmitrijs2005/accountsclient/internal/client/i18n"
	"github.com/dmitrijs2005/accountsclient/internal/client/router"
)

// mount is the view bound to the current path and its controller.
type mount struct {
	route   router.Route
	matched bool
	loaded  bool

	login      *flows.Login
	signUp     *flows.SignUp
	activation *flows.Activation
	users      *flows.UserList
	profile    *flows.UserProfile
}

// mountRoute replaces the current view. It runs as a navigator listener, so
// it only builds controllers; requests start on the next Render.
func (a *App) mountRoute(route router.Route, matched bool) {
	m := &mount{route: route, matched: matched}
	if matched {
		switch route.View {
		case router.ViewHome:
			m.users = flows.NewUserList(a.client, a.nav, a.locale, a.config.PageSize, a.log)
		case router.ViewLogin:
			m.login = flows.NewLogin(a.client, a.store, a.nav, a.locale, a.log)
		case router.ViewSignUp:
			m.signUp = flows.NewSignUp(a.client, a.locale, a.log)
		case router.ViewActivation:
			m.activation = flows.NewActivation(a.client, a.locale, route.Param("token"), a.log)
		case router.ViewUserProfile:
			m.profile = flows.NewUserProfile(a.client, a.locale, route.Param("id"), a.log)
		}
	}
	a.view = m
}

// load issues the initial request of a freshly mounted view.
func (a *App) load(ctx context.Context) {
	m := a.view
	if m.loaded {
		return
	}
	m.loaded = true

	var err error
	switch {
	case m.users != nil:
		err = m.users.Load(ctx)
	case m.activation != nil:
		err = m.activation.Run(ctx)
	case m.profile != nil:
		err = m.profile.Load(ctx)
	}
	if err != nil {
		a.log.Warn(ctx, "view load failed", "view", m.route.View.String(), "error", err)
	}
}

// Render loads the current view if needed and prints it.
func (a *App) Render(ctx context.Context) {
	a.load(ctx)

	a.renderNav()
	m := a.view
	if !m.matched {
		return
	}

	switch {
	case m.users != nil:
		a.renderUsers(m.users.State())
	case m.login != nil:
		a.renderLogin(m.login.State())
	case m.signUp != nil:
		a.renderSignUp(m.signUp)
	case m.activation != nil:
		a.renderActivation(m.activation.State())
	case m.profile != nil:
		a.renderProfile(m.profile.State())
	}
}

func (a *App) renderNav() {
	cur := a.store.Current()
	links := router.NavLinks(cur.IsLoggedIn, cur.ID)

	items := make([]string, 0, len(links))
	for _, l := range links {
		label := a.locale.T(l.Label)
		if l.Path != "" {
			label = fmt.Sprintf("%s (%s)", label, l.Path)
		}
		items = append(items, label)
	}
	fmt.Fprintln(a.out, "| "+strings.Join(items, " | ")+" |")
}

func (a *App) renderUsers(st flows.UserListState) {
	fmt.Fprintln(a.out, a.locale.T(i18n.Users))
	if st.Pending {
		fmt.Fprintln(a.out, a.locale.T(i18n.Loading))
	}
	for i, u := range st.Users {
		fmt.Fprintf(a.out, "  %d. %s\n", i+1, u.Username)
	}

	var pager []string
	if st.HasPrevious {
		pager = append(pager, a.locale.T(i18n.PreviousPage))
	}
	if st.HasNext {
		pager = append(pager, a.locale.T(i18n.NextPage))
	}
	if len(pager) > 0 {
		fmt.Fprintln(a.out, "  "+strings.Join(pager, "  "))
	}
	if st.Message != "" {
		fmt.Fprintln(a.out, st.Message)
	}
}

func (a *App) renderLogin(st flows.LoginState) {
	fmt.Fprintln(a.out, a.locale.T(i18n.Login))
	if st.Pending {
		fmt.Fprintln(a.out, a.locale.T(i18n.Loading))
	}
	if st.Message != "" {
		fmt.Fprintln(a.out, st.Message)
	}
}

func (a *App) renderSignUp(s *flows.SignUp) {
	st := s.State()
	fmt.Fprintln(a.out, a.locale.T(i18n.SignUp))
	if st.Completed {
		fmt.Fprintln(a.out, st.Message)
		return
	}
	if st.Pending {
		fmt.Fprintln(a.out, a.locale.T(i18n.Loading))
	}

	fields := []struct{ key, label string }{
		{flows.FieldUsername, i18n.Username},
		{flows.FieldEmail, i18n.Email},
		{flows.FieldPassword, i18n.Password},
	}
	for _, f := range fields {
		if msg := st.FieldErrors[f.key]; msg != "" {
			fmt.Fprintf(a.out, "  %s: %s\n", a.locale.T(f.label), msg)
		}
	}
	if msg := s.MismatchMessage(); msg != "" {
		fmt.Fprintf(a.out, "  %s: %s\n", a.locale.T(i18n.PasswordRepeat), msg)
	}
	if st.Message != "" {
		fmt.Fprintln(a.out, st.Message)
	}
}

func (a *App) renderActivation(st flows.ActivationState) {
	if st.Status == flows.Activating {
		fmt.Fprintln(a.out, a.locale.T(i18n.Loading))
		return
	}
	fmt.Fprintln(a.out, st.Message)
}

func (a *App) renderProfile(st flows.UserProfileState) {
	if st.Pending {
		fmt.Fprintln(a.out, a.locale.T(i18n.Loading))
		return
	}
	if st.User == nil {
		fmt.Fprintln(a.out, st.Message)
		return
	}
	fmt.Fprintf(a.out, "%s: %s\n", a.locale.T(i18n.Username), st.User.Username)
	fmt.Fprintf(a.out, "%s: %s\n", a.locale.T(i18n.Email), st.User.Email)
}
