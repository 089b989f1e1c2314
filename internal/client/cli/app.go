package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/nutritrack/internal/client/client"
	"github.com/dmitrijs2005/nutritrack/internal/client/config"
	"github.com/dmitrijs2005/nutritrack/internal/client/services"
	"github.com/dmitrijs2005/nutritrack/internal/client/session"
	"github.com/dmitrijs2005/nutritrack/internal/common"
	"github.com/dmitrijs2005/nutritrack/internal/filex"
	"github.com/dmitrijs2005/nutritrack/internal/logging"
	"github.com/dmitrijs2005/nutritrack/internal/models"
)

type App struct {
	config    *config.Config
	logger    logging.Logger
	db        *sql.DB
	api       client.Client
	sessions  *session.Store
	gateway   *services.AuthGateway
	profiles  *services.ProfileResolver
	dashboard *services.Dashboard
	reader    *bufio.Reader
	out       io.Writer
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.New(c.LogLevel, os.Stderr)

	if err := filex.EnsureParentDir(c.DatabasePath); err != nil {
		return nil, fmt.Errorf("error preparing database directory: %w", err)
	}

	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	api := client.NewHTTPClient(c.ServerURL, c.RequestTimeout)
	return newApp(c, logger, db, api, bufio.NewReader(os.Stdin), os.Stdout), nil
}

func newApp(c *config.Config, logger logging.Logger, db *sql.DB, api client.Client, in *bufio.Reader, out io.Writer) *App {
	store := session.NewStore(db)
	profiles := services.DefaultProfileResolver(api, logger)

	return &App{
		config:    c,
		logger:    logger,
		db:        db,
		api:       api,
		sessions:  store,
		gateway:   services.NewAuthGateway(api, store, logger),
		profiles:  profiles,
		dashboard: services.NewDashboard(api, profiles, logger),
		reader:    in,
		out:       out,
	}
}

// Run blocks in the REPL until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	fmt.Fprintln(a.out, "Welcome to nutritrack (type 'help' for commands)")
	if err := a.api.Ping(ctx); err != nil {
		fmt.Fprintf(a.out, "Server %s is not reachable, commands will fail until it is\n", a.config.ServerURL)
	}

	runREPL(ctx, a, a.status, a.reader)
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.sessions.IsAuthenticated(ctx)
}

// status is the prompt suffix: the signed-in email, if any.
func (a *App) status(ctx context.Context) string {
	sess, err := a.sessions.Current(ctx)
	if err != nil || sess == nil {
		return ""
	}
	if sess.Profile != nil && sess.Profile.Email != "" {
		return "(" + sess.Profile.Email + ")"
	}
	return "(" + sess.PrincipalID + ")"
}

// withSession runs fn with the stored session. An expired access token is
// refreshed once and fn retried with the new session.
func (a *App) withSession(ctx context.Context, fn func(sess *models.Session) error) error {
	sess, err := a.sessions.Current(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnexpected, err)
	}
	if sess == nil {
		return common.ErrNoSession
	}

	err = fn(sess)
	if !errors.Is(err, common.ErrTokenExpired) {
		return err
	}

	a.logger.Debug(ctx, "access token expired, refreshing", "principal_id", sess.PrincipalID)
	sess, err = a.gateway.Refresh(ctx, sess)
	if err != nil {
		return err
	}
	return fn(sess)
}

// report prints err in user terms. Nil errors print nothing.
func (a *App) report(err error) {
	if err != nil {
		fmt.Fprintln(a.out, "Error:", userMessage(err))
	}
}

func userMessage(err error) string {
	var verr *common.ValidationError
	var aerr *common.AuthError
	switch {
	case errors.As(err, &verr):
		return verr.Message
	case errors.As(err, &aerr):
		// The cause, network included, stays in the gateway's debug log.
		return aerr.Message
	case errors.Is(err, common.ErrNoSession):
		return "not logged in, use 'login' or 'register'"
	case errors.Is(err, common.ErrorUnauthorized), errors.Is(err, common.ErrTokenExpired):
		return "session expired, please log in again"
	case errors.Is(err, common.ErrorNotFound):
		return "profile not found"
	case errors.Is(err, common.ErrNetwork):
		return "server unreachable"
	}
	return "unexpected error"
}
