package cmd

import (
	"fmt"
	"io"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/CrestNiraj12/terminalconfess/app/account"
	"github.com/CrestNiraj12/terminalconfess/app/feed"
	"github.com/CrestNiraj12/terminalconfess/app/guard"
	"github.com/CrestNiraj12/terminalconfess/infra/api"
	"github.com/CrestNiraj12/terminalconfess/infra/config"
	"github.com/CrestNiraj12/terminalconfess/infra/editor"
	"github.com/CrestNiraj12/terminalconfess/infra/logging"
	"github.com/CrestNiraj12/terminalconfess/infra/store"
	"github.com/CrestNiraj12/terminalconfess/tui"
)

var startRoute string

// RootCmd opens the confession feed when called without a subcommand.
var RootCmd = &cobra.Command{
	Use:           "terminalconfess",
	Short:         "TerminalConfess: anonymous confessions in your terminal",
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE:          run,
}

func init() {
	RootCmd.Flags().StringVar(&startRoute, "route", "", "screen to open first, e.g. /profile (default: last visited)")
}

// Execute runs the command tree. Called once by main.main().
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		outputErrorAndExit(err)
	}
}

// env is the infrastructure shared by every subcommand.
type env struct {
	cfg     config.Config
	log     *zap.Logger
	closer  io.Closer
	session *store.Session
}

func setup() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	logCfg := logging.DefaultConfig(cfg.LogPath())
	logCfg.Level = cfg.LogLevel
	logCfg.Format = cfg.LogFormat
	log, closer := logging.New(logCfg)

	return &env{
		cfg:     cfg,
		log:     log,
		closer:  closer,
		session: store.NewSession(cfg.StateDir, log),
	}, nil
}

func (e *env) close() {
	_ = e.log.Sync()
	_ = e.closer.Close()
}

func run(cmd *cobra.Command, args []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer e.close()
	log := e.log
	log.Info("starting", zap.String("version", Version), zap.String("api", e.cfg.APIURL))

	// 1. Build infrastructure.
	likes := store.OpenLikes(filepath.Join(e.cfg.StateDir, store.LikesFile), log)
	client := api.NewClient(e.cfg.APIURL, e.session,
		api.WithTimeout(e.cfg.HTTPTimeout),
		api.WithLogger(log),
	)

	// 2. Build services.
	aggregator := feed.New(api.NewFeedService(client), e.session, likes, feed.WithLogger(log))
	accounts := account.New(account.Deps{
		Auth:       api.NewAuthService(client),
		Onboarding: api.NewOnboardingService(client),
		Posts:      api.NewPostService(client),
		Profiles:   api.NewProfileService(client),
		Sessions:   e.session,
		Feed:       aggregator,
		Log:        log,
	})

	// 3. Wire root TUI model.
	start := startRoute
	if start == "" {
		st, err := config.LoadUIState(e.cfg.UIStatePath())
		if err != nil {
			log.Warn("ignoring ui state", zap.Error(err))
		}
		start = st.LastRoute
	}
	rootModel := tui.NewApp(tui.Deps{
		Account:   accounts,
		Feed:      aggregator,
		Guard:     guard.New(log),
		Editor:    editor.NewEnvEditor(),
		StatePath: e.cfg.UIStatePath(),
		StartPath: start,
		Log:       log,
	})

	// 4. Run.
	p := tea.NewProgram(rootModel, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Error("program exited", zap.Error(err))
		return fmt.Errorf("terminalconfess: %w", err)
	}
	log.Info("exited")
	return nil
}
