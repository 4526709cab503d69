package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/accountsclient/internal/client/flows"
	"github.com/dmitrijs2005/accountsclient/internal/client/i18n"
	"github.com/dmitrijs2005/accountsclient/internal/client/router"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

var errNotOnHome = errors.New("paging is only available on the home view")

// Go navigates to path as if a link to it was activated.
func (a *App) Go(_ context.Context, path string) error {
	a.nav.Push(path)
	return nil
}

// Login opens the login view, prompts for the credentials and submits them.
// On success the login flow has already navigated home.
func (a *App) Login(ctx context.Context) error {
	if a.view.login == nil {
		a.nav.Push("/login")
	}
	l := a.view.login

	email, err := getSimpleText(a.reader, a.locale.T(i18n.Email), a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.locale.T(i18n.Password), a.out)
	if err != nil {
		return err
	}
	defer wipe(password)

	l.SetEmail(email)
	l.SetPassword(string(password))

	if err := l.Submit(ctx); err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}
	return nil
}

// SignUp opens a fresh sign-up form, prompts for every field and submits.
func (a *App) SignUp(ctx context.Context) error {
	if a.view.signUp == nil || a.view.signUp.Completed() {
		a.nav.Push("/signup")
	}
	s := a.view.signUp

	username, err := getSimpleText(a.reader, a.locale.T(i18n.Username), a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, a.locale.T(i18n.Email), a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.locale.T(i18n.Password), a.out)
	if err != nil {
		return err
	}
	defer wipe(password)
	repeat, err := getPassword(a.reader, a.locale.T(i18n.PasswordRepeat), a.out)
	if err != nil {
		return err
	}
	defer wipe(repeat)

	s.SetUsername(username)
	s.SetEmail(email)
	s.SetPassword(string(password))
	s.SetPasswordRepeat(string(repeat))

	err = s.Submit(ctx)
	// a mismatch is shown by the view itself
	if err != nil && !errors.Is(err, flows.ErrPasswordMismatch) {
		fmt.Fprintln(a.out, err)
	}
	return err
}

// Logout forgets the session and returns home.
func (a *App) Logout(ctx context.Context) error {
	if err := a.store.Logout(ctx); err != nil {
		a.log.Error(ctx, "logout failed", "error", err)
		return err
	}
	a.nav.Push("/")
	return nil
}

func (a *App) Next(ctx context.Context) error {
	if a.view.users == nil {
		fmt.Fprintln(a.out, errNotOnHome)
		return errNotOnHome
	}
	a.load(ctx)
	return a.page(a.view.users.Next(ctx))
}

func (a *App) Prev(ctx context.Context) error {
	if a.view.users == nil {
		fmt.Fprintln(a.out, errNotOnHome)
		return errNotOnHome
	}
	a.load(ctx)
	return a.page(a.view.users.Previous(ctx))
}

func (a *App) page(err error) error {
	if errors.Is(err, flows.ErrNoMorePages) {
		fmt.Fprintln(a.out, err)
	}
	return err
}

// Open shows the profile of the n-th (1-based) user on the current page.
func (a *App) Open(ctx context.Context, n int) error {
	if a.view.users == nil {
		fmt.Fprintln(a.out, errNotOnHome)
		return errNotOnHome
	}
	a.load(ctx)
	if _, err := a.view.users.Select(n - 1); err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}
	return nil
}

// Profile shows the logged-in user's own profile.
func (a *App) Profile(_ context.Context) error {
	cur := a.store.Current()
	if !cur.IsLoggedIn {
		fmt.Fprintln(a.out, a.locale.T(i18n.NotLoggedIn))
		return nil
	}
	a.nav.Push(router.UserPath(cur.ID))
	return nil
}

// Lang switches the interface language and the Accept-Language header.
func (a *App) Lang(_ context.Context, lang string) error {
	if err := a.locale.Set(lang); err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}
	return nil
}

func (a *App) Back(_ context.Context) error {
	a.nav.Back()
	return nil
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
