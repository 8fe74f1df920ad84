package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/Sharnika-sree/autoscribe/internal/client/accessibility"
	"github.com/Sharnika-sree/autoscribe/internal/client/client"
	"github.com/Sharnika-sree/autoscribe/internal/client/config"
	"github.com/Sharnika-sree/autoscribe/internal/client/notify"
	"github.com/Sharnika-sree/autoscribe/internal/client/services"
	"github.com/Sharnika-sree/autoscribe/internal/client/speech"
	"github.com/Sharnika-sree/autoscribe/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires the Autoscribe client together: storage, session, auth flow,
// speech, toasts and the accessibility preferences.
type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	api     client.Client
	session *services.SessionService
	flow    *services.FlowService
	prefs   *accessibility.Prefs
	nav     *consoleNavigator
	reader  *bufio.Reader
}

// NewApp builds the application from config. The sqlite storage is migrated
// on startup; speech output degrades to a no-op when disabled.
func NewApp(ctx context.Context, cfg *config.Config, logger logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, cfg.StorageDSN)
	if err != nil {
		logger.Error(ctx, "database init failed", "dsn", cfg.StorageDSN, "error", err)
		return nil, err
	}

	api := client.NewHTTPClient(cfg.ServerBaseURL, nil)
	session := services.NewSessionService(db)
	reader := bufio.NewReader(os.Stdin)

	// Speech off means neither synthesis nor recognition; the flow treats a
	// nil recognizer as an absent capability.
	var speaker speech.Synthesizer = speech.Noop{}
	var recognizer speech.Recognizer
	if cfg.SpeechEnabled {
		speaker = speech.NewWriterSynthesizer(os.Stdout, nil)
		recognizer = speech.NewReaderRecognizer(reader)
	}

	nav := &consoleNavigator{w: os.Stdout}

	flow, err := services.NewFlowService(services.FlowDeps{
		Session:             session,
		Remote:              api,
		Notifier:            notify.NewToaster(&consoleSink{w: os.Stdout}),
		Speaker:             speaker,
		Recognizer:          recognizer,
		Navigator:           nav,
		Logger:              logger,
		LocalRedirectDelay:  cfg.LocalRedirectDelay,
		RemoteRedirectDelay: cfg.RemoteRedirectDelay,
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &App{
		config:  cfg,
		logger:  logger,
		db:      db,
		api:     api,
		session: session,
		flow:    flow,
		prefs:   accessibility.NewPrefs(),
		nav:     nav,
		reader:  reader,
	}, nil
}

// AnnouncePageLoad speaks the welcome prompt.
func (a *App) AnnouncePageLoad(ctx context.Context) {
	a.flow.AnnouncePageLoad(ctx)
}

func (a *App) getStatus() string {
	s := string(a.flow.State())
	if page := a.nav.Current(); page != "" {
		s = s + " @ " + page
	}
	return fmt.Sprintf("(%s)", s)
}

// Run starts the REPL and blocks until the user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	defer func() {
		_ = a.api.Close()
		_ = a.db.Close()
	}()

	printlnFn("Autoscribe client (type 'help' for commands)")

	scanner := bufio.NewScanner(os.Stdin)
	done := make(chan struct{})
	go func() {
		defer close(done)
		runREPL(ctx, a, a.getStatus, scanner)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		return nil
	}
}
