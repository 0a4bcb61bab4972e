package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/genfit/internal/client/api"
	"github.com/dmitrijs2005/genfit/internal/client/config"
	"github.com/dmitrijs2005/genfit/internal/client/navigation"
	"github.com/dmitrijs2005/genfit/internal/client/session"
	"github.com/dmitrijs2005/genfit/internal/client/storage"
	"github.com/dmitrijs2005/genfit/internal/client/validation"
	"github.com/dmitrijs2005/genfit/internal/client/viewmodel"
	"github.com/dmitrijs2005/genfit/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// backend is everything the app needs from the API client.
type backend interface {
	viewmodel.UserFetcher
	viewmodel.Authenticator
	viewmodel.DetailSubmitter
	Ping(ctx context.Context) error
}

type App struct {
	config  *config.Config
	log     logging.Logger
	db      *sql.DB
	session viewmodel.Session
	api     backend
	nav     *navigation.Navigator

	home       *viewmodel.Home
	profile    *viewmodel.Profile
	login      *viewmodel.Login
	register   *viewmodel.Register
	userDetail *viewmodel.UserDetail
	logout     *viewmodel.Logout
	calculator viewmodel.BMICalculator
	links      viewmodel.Links

	mu   sync.Mutex
	mode Mode

	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens the local store and wires the session, API client, navigator
// and view models. The caller owns the returned App and must Close it.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
		return nil, err
	}

	sess := session.New(db)
	client := api.NewClient(c.ServerBaseURL, c.RequestTimeout, sess, log)

	a := newApp(c, log, sess, client, os.Stdin, os.Stdout)
	a.db = db
	return a, nil
}

func newApp(c *config.Config, log logging.Logger, sess viewmodel.Session, client backend, in io.Reader, out io.Writer) *App {
	if log == nil {
		log = logging.Nop()
	}
	nav := navigation.NewNavigator(sess, log)
	val := validation.New(nil)

	return &App{
		config:     c,
		log:        log,
		session:    sess,
		api:        client,
		nav:        nav,
		home:       viewmodel.NewHome(client, nav, log),
		profile:    viewmodel.NewProfile(client, log),
		login:      viewmodel.NewLogin(client, sess, nav, log),
		register:   viewmodel.NewRegister(client, sess, nav, val, log),
		userDetail: viewmodel.NewUserDetail(client, sess, nav, val, nil, log),
		logout:     viewmodel.NewLogout(sess, nav, log),
		links:      viewmodel.Links{Terms: c.TermsURL, Privacy: c.PrivacyURL},
		mode:       ModeOffline,
		reader:     bufio.NewReader(in),
		out:        out,
	}
}

// Close releases the local store.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func (a *App) Mode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.log.Info(ctx, "connectivity changed", "mode", string(mode))
	}
}

func (a *App) isLoggedIn() bool {
	return a.nav.State() == navigation.Authenticated
}

// Run bootstraps navigation, starts the connectivity watcher and blocks in
// the REPL until the user exits or ctx is done.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	route, state := a.nav.Start(ctx)
	a.log.Debug(ctx, "started", "route", route.String(), "state", state.String())

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	printlnFn("Selamat datang di Genfit (ketik 'help' untuk daftar perintah)")
	a.renderCurrent(ctx)
	runREPL(ctx, a, a.getStatus, a.reader)
}

// StartOnlineStatusWatcher pings the backend every interval and flips Mode
// accordingly until ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	check := func() {
		pctx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		if err := a.api.Ping(pctx); err != nil {
			a.setMode(ctx, ModeOffline)
			return
		}
		a.setMode(ctx, ModeOnline)
	}

	check()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			check()
		case <-ctx.Done():
			return
		}
	}
}
