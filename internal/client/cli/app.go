package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/bizadmin/internal/client/client"
	"github.com/dmitrijs2005/bizadmin/internal/client/config"
	"github.com/dmitrijs2005/bizadmin/internal/client/models"
	"github.com/dmitrijs2005/bizadmin/internal/client/repositories/storage"
	"github.com/dmitrijs2005/bizadmin/internal/client/services"
	"github.com/dmitrijs2005/bizadmin/internal/client/session"
	"github.com/dmitrijs2005/bizadmin/internal/logging"
	"github.com/prometheus/client_golang/prometheus"
)

type App struct {
	config           *config.Config
	log              logging.Logger
	db               *sql.DB
	registry         *prometheus.Registry
	authService      services.AuthService
	quotationService services.QuotationService
	taskService      services.TaskService
	feedbackService  services.FeedbackService

	// Items as last listed or updated, keyed by id. Status changes start
	// from these so an illegal move is caught without a request.
	seenQuotes map[string]models.Quotation
	seenTasks  map[string]models.Task

	reader           *bufio.Reader
	out              io.Writer
}

// NewApp opens the session database and builds the service graph. Logs go
// to stderr so they do not mix with command output.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log := logging.New(os.Stderr, c.LogLevel, c.LogFormat)

	db, err := storage.InitDatabase(ctx, c.SessionDSN)
	if err != nil {
		log.Error(ctx, "error initializing session database", "dsn", c.SessionDSN, "error", err)
		return nil, err
	}

	a := &App{
		config:   c,
		log:      log,
		db:       db,
		registry: prometheus.NewRegistry(),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}

	store := session.NewStore(storage.NewSQLiteRepository(db), log)
	apiClient := client.NewHTTPClient(c.APIBaseURL, store,
		client.WithLogger(log),
		client.WithTimeout(c.RequestTimeout),
		client.WithMetrics(client.NewMetrics(a.registry)),
		client.WithSessionEnded(a.onSessionEnded),
	)
	a.wire(apiClient, store)

	return a, nil
}

func (a *App) wire(c client.Client, store services.SessionStore) {
	a.authService = services.NewAuthService(c, store)
	a.quotationService = services.NewQuotationService(c)
	a.taskService = services.NewTaskService(c)
	a.feedbackService = services.NewFeedbackService(c)
}

// Run starts the REPL on stdin and closes the database when it returns.
// Command lines and prompt answers share a.reader.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	printlnFn("Welcome to bizadmin CLI (type 'help' for commands)")
	runREPL(ctx, a, func() string { return a.getStatus(ctx) }, a.reader)
}

func (a *App) Close() {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.log.Warn(context.Background(), "error closing session database", "error", err)
		}
	}
}

func (a *App) onSessionEnded(_ context.Context, reason client.Reason) {
	printlnFn(fmt.Sprintf("Session ended (%s). Please sign in again: %s", reason, client.SignInPath(reason)))
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	_, err := a.authService.Whoami(ctx)
	return err == nil
}

func (a *App) getStatus(ctx context.Context) string {
	id, err := a.authService.Whoami(ctx)
	if err != nil {
		return "(signed out)"
	}
	name := id.Email
	if name == "" {
		name = id.Name
	}
	return fmt.Sprintf("(%s %s)", name, id.Role.RoleOrDefault())
}
