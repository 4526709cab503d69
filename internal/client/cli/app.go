package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/accountsclient/internal/client/api"
	"github.com/dmitrijs2005/accountsclient/internal/client/config"
	"github.com/dmitrijs2005/accountsclient/internal/client/i18n"
	"github.com/dmitrijs2005/accountsclient/internal/client/router"
	"github.com/dmitrijs2005/accountsclient/internal/client/session"
	"github.com/dmitrijs2005/accountsclient/internal/client/storage"
	"github.com/dmitrijs2005/accountsclient/internal/filex"
	"github.com/dmitrijs2005/accountsclient/internal/logging"
)

type App struct {
	config *config.Config
	log    logging.Logger

	store  *session.Store
	locale *i18n.Locale
	client *api.Client
	nav    *router.Navigator

	reader *bufio.Reader
	out    io.Writer

	view     *mount
	userName string

	closeFn func() error
}

// NewApp opens the storage file named by c and wires the client around it.
// Commands are read from stdin and views printed to stdout.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log := logging.New(os.Stderr, c.LogLevel)

	if err := filex.EnsureParentDir(c.StoragePath); err != nil {
		return nil, err
	}
	db, err := storage.Open(ctx, c.StoragePath)
	if err != nil {
		log.Error(ctx, "error initializing storage", "path", c.StoragePath, "error", err)
		return nil, err
	}

	app, err := newApp(ctx, c, db, log, os.Stdin, os.Stdout)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	app.closeFn = db.Close
	return app, nil
}

func newApp(ctx context.Context, c *config.Config, repo storage.Repository, log logging.Logger, in io.Reader, out io.Writer) (*App, error) {
	bundle, err := i18n.NewBundle()
	if err != nil {
		return nil, err
	}
	locale, err := i18n.NewLocale(bundle, c.Language)
	if err != nil {
		return nil, fmt.Errorf("language %q: %w", c.Language, err)
	}

	store := session.NewStore(ctx, repo, log)

	client := api.New(c.APIBaseURL,
		api.WithTimeout(c.RequestTimeout),
		api.WithAuthSource(store),
		api.WithLogger(log),
	)

	a := &App{
		config: c,
		log:    log,
		store:  store,
		locale: locale,
		client: client,
		nav:    router.NewNavigator("/"),
		reader: bufio.NewReader(in),
		out:    out,
	}

	locale.OnChange(func(lang string) {
		client.SetLocale(lang)
		a.log.Debug(context.Background(), "language changed", "lang", lang)
	})
	a.userName = store.Current().Username
	store.Subscribe(a.onSession)
	a.nav.OnChange(a.mountRoute)
	a.mountRoute(a.nav.Current())

	return a, nil
}

func (a *App) onSession(s session.Session) {
	if s.IsLoggedIn {
		a.userName = s.Username
	} else {
		a.userName = ""
	}
}

// Run starts the REPL and blocks until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	a.log.Info(ctx, "account client started", "api", a.config.APIBaseURL, "storage", a.config.StoragePath)
	printlnFn(a.locale.T(i18n.Welcome))
	a.Render(ctx)

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) Close() error {
	if a.closeFn == nil {
		return nil
	}
	err := a.closeFn()
	a.closeFn = nil
	return err
}

func (a *App) isLoggedIn() bool {
	return a.store.IsLoggedIn()
}

func (a *App) getStatus() string {
	s := a.locale.Language()
	if a.userName != "" {
		s = a.userName + " " + s
	}
	return fmt.Sprintf("(%s)", s)
}
