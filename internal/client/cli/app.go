package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/moodscreen/internal/client/api"
	"github.com/dmitrijs2005/moodscreen/internal/client/config"
	"github.com/dmitrijs2005/moodscreen/internal/client/metrics"
	"github.com/dmitrijs2005/moodscreen/internal/client/resultstore"
	"github.com/dmitrijs2005/moodscreen/internal/client/router"
	"github.com/dmitrijs2005/moodscreen/internal/client/session"
	"github.com/dmitrijs2005/moodscreen/internal/client/storage"
	"github.com/dmitrijs2005/moodscreen/internal/filex"
	"github.com/dmitrijs2005/moodscreen/internal/logging"
)

// Backend is the part of *api.Client the screens use.
type Backend interface {
	Login(ctx context.Context, req api.LoginRequest) (*api.Envelope[api.AuthData], error)
	Register(ctx context.Context, req api.RegisterRequest) (*api.Envelope[api.AuthData], error)
	UploadFaceImage(ctx context.Context, filename string, image io.Reader) (*api.Envelope[api.FaceDetection], error)
	GetQuestions(ctx context.Context) (*api.Envelope[[]api.Question], error)
	SubmitAnswers(ctx context.Context, req api.SubmitAnswersRequest) (*api.Envelope[api.SubmitResult], error)
	GetResult(ctx context.Context) (*api.Envelope[api.CombinedResult], error)
	GetFaceHistory(ctx context.Context, page, pageSize int) (*api.Envelope[api.Page[api.FaceDetection]], error)
	GetAssessmentTotal(ctx context.Context) (*api.Envelope[api.CombinedResult], error)
}

type App struct {
	db      *sql.DB
	backend Backend
	session *session.Session
	results *resultstore.Store[resultstore.Assessment]
	router  *router.Router
	nav     *router.Navigator
	metrics *metrics.Metrics
	log     logging.Logger
	reader  *bufio.Reader
	out     io.Writer
}

// NewApp opens the local storage and wires the session, API client, result
// store and router together.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	if c.StoragePath != ":memory:" {
		if _, err := filex.EnsureParentDir(c.StoragePath); err != nil {
			return nil, err
		}
	}

	db, err := storage.Open(ctx, c.StoragePath)
	if err != nil {
		log.Error(ctx, "error initializing storage", "path", c.StoragePath, "error", err)
		return nil, err
	}

	m := metrics.New()
	sess := session.New(storage.NewSQLiteRepository(db))
	client := api.NewSessionClient(c.BaseURL, c.Timeout, sess, m.Step(), api.LogExchanges(log))

	a, err := newApp(db, sess, client, m, log, os.Stdin, os.Stdout)
	if err != nil {
		db.Close()
		return nil, err
	}
	return a, nil
}

func newApp(db *sql.DB, sess *session.Session, backend Backend, m *metrics.Metrics, log logging.Logger, in io.Reader, out io.Writer) (*App, error) {
	a := &App{
		db:      db,
		backend: backend,
		session: sess,
		results: resultstore.New[resultstore.Assessment](storage.NewSQLiteRepository(db)),
		metrics: m,
		log:     log,
		reader:  bufio.NewReader(in),
		out:     out,
	}

	r, err := router.New(router.DefaultRoutes(a.views()))
	if err != nil {
		return nil, err
	}
	a.router = r
	a.nav = router.NewNavigator(r, a.session)

	a.results.Subscribe(func(v resultstore.Assessment) {
		a.log.Debug(context.Background(), "assessment result updated", "kind", v.Kind, "score", v.Score(), "level", v.Level())
	})

	return a, nil
}

func (a *App) Close() error {
	return a.db.Close()
}

// Run rehydrates the result store, opens the home screen (the guard sends an
// anonymous user to login) and then serves the REPL until exit or EOF.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	fmt.Fprintln(a.out, "Welcome to moodscreen (type 'help' for commands)")

	switch err := a.results.LoadFromStorage(ctx); {
	case errors.Is(err, resultstore.ErrMalformedResult):
		a.log.Warn(ctx, "saved result is unreadable, ignoring it", "error", err)
	case err != nil:
		a.log.Error(ctx, "error loading saved result", "error", err)
	}

	if err := a.Open(ctx, router.HomePath); err != nil {
		a.log.Error(ctx, "command failed", "error", err)
	}

	runREPL(ctx, a, func() string { return a.status(ctx) }, a.reader, a.log)
}

// Open navigates to path and runs the views of the route it lands on.
func (a *App) Open(ctx context.Context, path string) error {
	nav, err := a.nav.Navigate(ctx, path)
	if err != nil {
		return err
	}
	if nav.Redirected {
		a.log.Debug(ctx, "navigation redirected", "from", nav.Requested, "to", nav.Path)
	}

	for _, view := range nav.Views {
		if view == nil {
			continue
		}
		if err := view(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) hasCredential(ctx context.Context) bool {
	ok, err := a.session.HasCredential(ctx)
	if err != nil {
		a.log.Error(ctx, "error reading credential", "error", err)
		return false
	}
	return ok
}

// requireCredential applies the navigation guard to commands that are not
// routes. It reports whether the caller may proceed; when not, the user is
// taken to wherever the guard points.
func (a *App) requireCredential(ctx context.Context) (bool, error) {
	ok, err := a.session.HasCredential(ctx)
	if err != nil {
		return false, err
	}
	d := router.Guard(router.HomePath, ok)
	if d.Allowed {
		return true, nil
	}
	return false, a.Open(ctx, d.Redirect)
}

func (a *App) status(ctx context.Context) string {
	s := ""
	if name := a.session.Username(ctx); name != "" {
		s = name + " "
	} else if a.hasCredential(ctx) {
		s = "signed-in "
	}
	s += a.nav.Current()
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}
