package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/CrestNiraj12/terminalconfess/app/guard"
	"github.com/CrestNiraj12/terminalconfess/domain"
	"github.com/CrestNiraj12/terminalconfess/infra/config"
	"github.com/CrestNiraj12/terminalconfess/infra/editor"
	"github.com/CrestNiraj12/terminalconfess/tui/auth"
	"github.com/CrestNiraj12/terminalconfess/tui/common"
	"github.com/CrestNiraj12/terminalconfess/tui/compose"
	"github.com/CrestNiraj12/terminalconfess/tui/feed"
	"github.com/CrestNiraj12/terminalconfess/tui/onboarding"
	"github.com/CrestNiraj12/terminalconfess/tui/profile"
)

// AccountService is everything the screens need from the account layer.
type AccountService interface {
	auth.Authenticator
	onboarding.Onboarder
	profile.Loader
	Session() (domain.Session, error)
	Publish(ctx context.Context, content string) error
	SignOut() error
}

// Deps holds all dependencies the TUI needs. Plain struct, not a DI container.
type Deps struct {
	Account   AccountService
	Feed      feed.Source
	Guard     *guard.Guard
	Editor    *editor.EnvEditor
	StatePath string // Where the last visited route is remembered; empty disables
	StartPath string
	Log       *zap.Logger
}

// publishedMsg is sent after a confession is submitted.
type publishedMsg struct {
	err error
}

// App is the root Bubble Tea model. Every screen change goes through the
// route guard, which decides the screen actually shown and its chrome.
type App struct {
	deps   Deps
	log    *zap.Logger
	ctx    context.Context
	cancel context.CancelFunc

	route   guard.Route
	chrome  guard.Chrome
	initCmd tea.Cmd

	feed       feed.Model
	feedLive   bool
	compose    compose.Model
	inline     bool
	publishing bool
	auth       auth.Model
	onboarding onboarding.Model
	profile    profile.Model

	keys   common.KeyMap
	status string // Transient status message (e.g. "Confession posted!")
	width  int
	height int
}

// NewApp creates the root model and resolves the start route.
func NewApp(deps Deps) App {
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}
	if deps.Guard == nil {
		deps.Guard = guard.New(log)
	}
	ctx, cancel := context.WithCancel(context.Background())
	a := App{
		deps:   deps,
		log:    log.Named("tui"),
		ctx:    ctx,
		cancel: cancel,
		keys:   common.DefaultKeyMap(),
	}
	start := deps.StartPath
	if start == "" {
		start = string(guard.Home)
	}
	a.initCmd = a.navigate(start)
	return a
}

// Init runs the start screen's initial command.
func (a App) Init() tea.Cmd {
	return a.initCmd
}

// Route returns the screen currently shown.
func (a App) Route() guard.Route {
	return a.route
}

func (a *App) session() domain.Session {
	sess, err := a.deps.Account.Session()
	if err != nil {
		a.log.Warn("reading session", zap.Error(err))
		return domain.Session{}
	}
	return sess
}

// navigate asks the guard where path leads and mounts that screen.
func (a *App) navigate(path string) tea.Cmd {
	sess := a.session()
	d := a.deps.Guard.Navigate(path, sess)

	if a.feedLive && d.Target != guard.Home {
		a.feed.Stop()
		a.feedLive = false
	}
	a.route, a.chrome = d.Target, d.Chrome
	a.publishing = false

	var cmd tea.Cmd
	switch d.Target {
	case guard.Home:
		if !a.feedLive {
			userID := ""
			if sess.User != nil {
				userID = sess.User.ID
			}
			a.feed = feed.New(a.ctx, a.deps.Feed, userID)
			a.feedLive = true
			cmd = a.feed.Init()
		}
	case guard.Create:
		if a.inline || a.deps.Editor == nil {
			a.compose = compose.NewInline()
		} else {
			a.compose = compose.NewEditor(a.deps.Editor)
		}
		cmd = a.compose.Init()
	case guard.Auth:
		var from guard.Route
		if d.Redirect {
			from = d.Requested
		}
		a.auth = auth.New(a.ctx, a.deps.Account, from)
		cmd = a.auth.Init()
	case guard.Onboarding:
		a.onboarding = onboarding.New(a.ctx, a.deps.Account)
		cmd = a.onboarding.Init()
	case guard.Profile:
		a.profile = profile.New(a.ctx, a.deps.Account)
		cmd = a.profile.Init()
	}
	a.resize()
	a.saveRoute(d.Target)
	return cmd
}

func (a *App) openCreate(inline bool) tea.Cmd {
	a.inline = inline
	a.status = ""
	return a.navigate(string(guard.Create))
}

func (a *App) saveRoute(r guard.Route) {
	if a.deps.StatePath == "" || !r.IsProtected() || r == guard.Create {
		return
	}
	if err := config.SaveUIState(a.deps.StatePath, config.UIState{LastRoute: string(r)}); err != nil {
		a.log.Warn("saving ui state", zap.Error(err))
	}
}

func (a *App) resize() {
	w, h := a.bodySize()
	a.feed = a.feed.SetSize(w, h)
	a.profile = a.profile.SetWidth(w)
	a.compose = a.compose.SetWidth(w - 4)
}

func (a App) quit() (tea.Model, tea.Cmd) {
	a.cancel()
	return a, tea.Quit
}

// typing reports whether the active screen captures free text.
func (a App) typing() bool {
	switch a.route {
	case guard.Create, guard.Auth, guard.Onboarding:
		return true
	}
	return false
}

// Update handles messages and routes to the active screen.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.resize()
		return a, nil

	case tea.KeyMsg:
		if key.Matches(msg, a.keys.ForceQuit) {
			return a.quit()
		}
		if !a.typing() {
			switch {
			case key.Matches(msg, a.keys.Quit):
				return a.quit()
			case key.Matches(msg, a.keys.Home):
				a.status = ""
				cmd := a.navigate(string(guard.Home))
				return a, cmd
			case key.Matches(msg, a.keys.Messages):
				a.status = ""
				cmd := a.navigate(string(guard.Messages))
				return a, cmd
			case key.Matches(msg, a.keys.Create):
				cmd := a.openCreate(true)
				return a, cmd
			case key.Matches(msg, a.keys.CreateEditor):
				cmd := a.openCreate(false)
				return a, cmd
			case key.Matches(msg, a.keys.Profile):
				a.status = ""
				cmd := a.navigate(string(guard.Profile))
				return a, cmd
			}
		}

	case feed.LoadedMsg:
		if a.route == guard.Home && errors.Is(msg.Err, domain.ErrUnauthorized) {
			cmd := a.expireSession()
			return a, cmd
		}

	case auth.DoneMsg:
		a.status = ""
		cmd := a.navigate(string(msg.Next))
		return a, cmd

	case onboarding.DoneMsg:
		a.status = common.SuccessStyle.Render("You're all set.")
		cmd := a.navigate(string(guard.Home))
		return a, cmd

	case profile.SignOutMsg:
		if err := a.deps.Account.SignOut(); err != nil {
			a.log.Error("sign out", zap.Error(err))
			a.status = common.ErrorStyle.Render("Couldn't sign out: " + err.Error())
			return a, nil
		}
		a.status = ""
		cmd := a.navigate(string(guard.Auth))
		return a, cmd

	case compose.DoneMsg:
		cmd := a.handleComposeDone(msg)
		return a, cmd

	case publishedMsg:
		a.publishing = false
		if msg.err != nil {
			a.log.Warn("publish failed", zap.Error(msg.err))
			if errors.Is(msg.err, domain.ErrUnauthorized) {
				cmd := a.expireSession()
				return a, cmd
			}
			text := common.ErrorText(msg.err, "Couldn't post your confession. Please try again.")
			if a.route == guard.Create && a.inline {
				a.compose = a.compose.SetStatus(text)
				return a, nil
			}
			a.status = common.ErrorStyle.Render(text)
			cmd := a.navigate(string(guard.Home))
			return a, cmd
		}
		a.status = common.SuccessStyle.Render("🤫 Confession posted!")
		cmd := a.navigate(string(guard.Home))
		return a, cmd
	}

	return a.delegate(msg)
}

func (a *App) handleComposeDone(msg compose.DoneMsg) tea.Cmd {
	switch {
	case msg.Err != nil:
		a.status = common.ErrorStyle.Render("Error: " + msg.Err.Error())
		return a.navigate(string(guard.Home))
	case msg.Content == "":
		a.status = "Cancelled."
		return a.navigate(string(guard.Home))
	case a.publishing:
		return nil
	}
	a.publishing = true
	svc, ctx, content := a.deps.Account, a.ctx, msg.Content
	return func() tea.Msg {
		return publishedMsg{err: svc.Publish(ctx, content)}
	}
}

func (a *App) expireSession() tea.Cmd {
	if err := a.deps.Account.SignOut(); err != nil {
		a.log.Error("clearing expired session", zap.Error(err))
	}
	a.status = common.ErrorStyle.Render("Your session has expired. Please sign in again.")
	return a.navigate(string(guard.Auth))
}

func (a App) delegate(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.route {
	case guard.Home:
		a.feed, cmd = a.feed.Update(msg)
	case guard.Create:
		a.compose, cmd = a.compose.Update(msg)
	case guard.Auth:
		a.auth, cmd = a.auth.Update(msg)
	case guard.Onboarding:
		a.onboarding, cmd = a.onboarding.Update(msg)
	case guard.Profile:
		a.profile, cmd = a.profile.Update(msg)
	default:
		if _, ok := msg.(spinner.TickMsg); ok {
			return a, nil
		}
	}
	return a, cmd
}
