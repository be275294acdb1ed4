// Package terminal implements the portfolio's interactive terminal: a fixed
// command table gated behind a scripted "sb install", keyword Q&A, and
// read-only views of a GitHub account.
//
// A Terminal is safe for concurrent use. Commands run one at a time; the
// auto-refresh goroutine is the only background actor.
package terminal

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"portfolio-backend/internal/github"
)

type LineType string

const (
	LineCommand LineType = "command"
	LineOutput  LineType = "output"
	LineError   LineType = "error"
)

type Line struct {
	Type LineType `json:"type"`
	Text string   `json:"text"`
}

type EventType string

const (
	EventLine  EventType = "line"
	EventClear EventType = "clear"
	EventTheme EventType = "theme"
)

// Event is pushed to Options.OnEvent for every change of visible state.
type Event struct {
	Type  EventType `json:"type"`
	Line  *Line     `json:"line,omitempty"`
	Theme *Theme    `json:"theme,omitempty"`
}

type GitHub interface {
	Contributions(ctx context.Context, username string) (*github.Contributions, error)
	User(ctx context.Context, username string) (*github.User, error)
	Repos(ctx context.Context, username string, limit int) ([]github.Repo, error)
}

const (
	DefaultAutoRefreshInterval = 5 * time.Minute
	DefaultRepoLimit           = 5
)

type Options struct {
	Username string
	GitHub   GitHub
	Library  *Library

	// OnEvent is called with the terminal lock held; it must not call back
	// into the terminal.
	OnEvent func(Event)

	AutoRefreshInterval time.Duration
	RepoLimit           int
	Sleep               func(ctx context.Context, d time.Duration) error
	Now                 func() time.Time
	Logger              zerolog.Logger
}

type Terminal struct {
	opts Options

	mu        sync.Mutex
	installed bool
	output    []Line
	history   []string
	theme     Theme

	contributions *github.Contributions
	profile       *github.User
	repos         []github.Repo

	autoCancel context.CancelFunc
	closed     bool
	wg         sync.WaitGroup
}

func New(opts Options) *Terminal {
	if opts.Library == nil {
		opts.Library = NewLibrary(DefaultQnA)
	}
	if opts.AutoRefreshInterval <= 0 {
		opts.AutoRefreshInterval = DefaultAutoRefreshInterval
	}
	if opts.RepoLimit <= 0 {
		opts.RepoLimit = DefaultRepoLimit
	}
	if opts.Sleep == nil {
		opts.Sleep = sleepContext
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Terminal{opts: opts, theme: Themes[0]}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Greet writes the first prompt shown to a new visitor.
func (t *Terminal) Greet() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.emit(LineOutput, "Welcome! Type 'sb install' to set up the terminal.")
}

// Execute runs one line of input and returns the lines it appended, starting
// with the echoed command. Blank input is ignored. A command that clears the
// log returns nothing.
func (t *Terminal) Execute(ctx context.Context, input string) []Line {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	start := len(t.output)
	t.history = append(t.history, trimmed)
	t.emit(LineCommand, "$ "+trimmed)

	fields := strings.Fields(trimmed)
	name, args := fields[0], fields[1:]

	isInstall := name == "sb" && len(args) > 0 && args[0] == "install"
	switch {
	case !t.installed && !isInstall:
		t.emit(LineError, name+": please run sb install first")
	case isInstall:
		t.install(ctx)
	default:
		t.dispatch(ctx, name, args)
	}

	if len(t.output) <= start {
		return nil
	}
	return append([]Line(nil), t.output[start:]...)
}

func (t *Terminal) dispatch(ctx context.Context, name string, args []string) {
	switch name {
	case "github":
		if t.ensureContributions(ctx) {
			t.emit(LineOutput, RenderContributionGrid(t.contributions, t.opts.Now()))
		}
	case "profile":
		if t.profile != nil || t.fetchProfile(ctx) {
			t.emit(LineOutput, RenderProfile(t.profile))
		}
	case "repos":
		if t.repos != nil || t.fetchRepos(ctx) {
			t.emit(LineOutput, RenderRepos(t.repos))
		}
	case "stats":
		if t.ensureContributions(ctx) {
			t.emit(LineOutput, RenderStats(t.opts.Username, t.contributions, t.opts.Now()))
		}
	case "summary":
		if t.ensureContributions(ctx) {
			t.emit(LineOutput, RenderSummary(t.contributions, t.opts.Now()))
		}
	case "refresh":
		t.refresh(ctx)
	case "auto":
		t.toggleAutoRefresh()
	case "theme":
		t.themeCommand(args)
	case "ask":
		t.ask(args)
	case "echo":
		t.emit(LineOutput, strings.Join(args, " "))
	case "clear":
		t.clear()
	case "history":
		t.showHistory()
	case "help":
		t.help(args)
	default:
		t.emit(LineError, "Command not found: "+name)
	}
}

func (t *Terminal) emit(typ LineType, text string) {
	line := Line{Type: typ, Text: text}
	t.output = append(t.output, line)
	if t.opts.OnEvent != nil {
		t.opts.OnEvent(Event{Type: EventLine, Line: &line})
	}
}

func (t *Terminal) clear() {
	t.output = nil
	if t.opts.OnEvent != nil {
		t.opts.OnEvent(Event{Type: EventClear})
	}
}

func (t *Terminal) install(ctx context.Context) {
	if t.installed {
		t.emit(LineOutput, "Terminal is already installed. Type 'help' to see available commands.")
		return
	}

	t.emit(LineOutput, "Installing portfolio terminal...")
	for i, step := range InstallSteps {
		t.emit(LineOutput, fmt.Sprintf("→ %s...", step.Name))
		if err := t.opts.Sleep(ctx, step.Duration); err != nil {
			t.emit(LineError, "Installation cancelled: "+err.Error())
			return
		}
		for _, detail := range step.Details {
			t.emit(LineOutput, "  ✓ "+detail)
		}
		t.emit(LineOutput, ProgressBar((i+1)*100/len(InstallSteps)))
	}

	t.installed = true
	t.emit(LineOutput, "Installation complete! Type 'help' to see available commands.")
}

func (t *Terminal) ensureContributions(ctx context.Context) bool {
	return t.contributions != nil || t.fetchContributions(ctx)
}

func (t *Terminal) fetchContributions(ctx context.Context) bool {
	data, err := t.opts.GitHub.Contributions(ctx, t.opts.Username)
	if err != nil {
		t.fetchFailed("contributions", err)
		return false
	}
	t.contributions = data
	return true
}

func (t *Terminal) fetchProfile(ctx context.Context) bool {
	user, err := t.opts.GitHub.User(ctx, t.opts.Username)
	if err != nil {
		t.fetchFailed("profile", err)
		return false
	}
	t.profile = user
	return true
}

func (t *Terminal) fetchRepos(ctx context.Context) bool {
	repos, err := t.opts.GitHub.Repos(ctx, t.opts.Username, t.opts.RepoLimit)
	if err != nil {
		t.fetchFailed("repositories", err)
		return false
	}
	if repos == nil {
		repos = []github.Repo{}
	}
	t.repos = repos
	return true
}

func (t *Terminal) fetchFailed(what string, err error) {
	t.opts.Logger.Warn().Err(err).Str("username", t.opts.Username).Msgf("failed to fetch %s", what)
	t.emit(LineError, fmt.Sprintf("Error fetching %s: %v", what, err))
}

func (t *Terminal) refresh(ctx context.Context) {
	t.emit(LineOutput, "Refreshing GitHub data...")
	updated := 0
	for _, fetch := range []func(context.Context) bool{t.fetchContributions, t.fetchProfile, t.fetchRepos} {
		if fetch(ctx) {
			updated++
		}
	}
	t.emit(LineOutput, fmt.Sprintf("Refresh complete: %d/3 sources updated at %s", updated, t.opts.Now().Format("15:04:05")))
}

func (t *Terminal) toggleAutoRefresh() {
	if t.autoCancel != nil {
		t.autoCancel()
		t.autoCancel = nil
		t.emit(LineOutput, "Auto-refresh disabled")
		return
	}
	if t.closed {
		t.emit(LineError, "Terminal is closed")
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.autoCancel = cancel
	t.wg.Add(1)
	go t.autoRefreshLoop(ctx)
	t.emit(LineOutput, fmt.Sprintf("Auto-refresh enabled (every %s)", formatInterval(t.opts.AutoRefreshInterval)))
}

func (t *Terminal) autoRefreshLoop(ctx context.Context) {
	defer t.wg.Done()
	ticker := time.NewTicker(t.opts.AutoRefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.mu.Lock()
			if ctx.Err() == nil {
				t.emit(LineOutput, "Auto-refreshing GitHub data...")
				t.refresh(ctx)
			}
			t.mu.Unlock()
		}
	}
}

func formatInterval(d time.Duration) string {
	if d >= time.Minute && d%time.Minute == 0 {
		return plural(int(d/time.Minute), "minute")
	}
	return d.String()
}

func (t *Terminal) themeCommand(args []string) {
	switch {
	case len(args) == 0:
		t.emit(LineOutput, fmt.Sprintf("Current theme: %s\nUse 'theme list' to see themes or 'theme set <theme-name>' to change.", t.theme.Name))
	case args[0] == "list" && len(args) == 1:
		var b strings.Builder
		b.WriteString("Available themes:")
		for _, th := range Themes {
			marker := "  "
			if th.Name == t.theme.Name {
				marker = "* "
			}
			b.WriteString("\n" + marker + th.Name)
		}
		t.emit(LineOutput, b.String())
	case args[0] == "set" && len(args) == 2:
		th, ok := FindTheme(args[1])
		if !ok {
			t.emit(LineError, fmt.Sprintf("Unknown theme: %s. Run 'theme list' to see available themes.", args[1]))
			return
		}
		t.theme = th
		if t.opts.OnEvent != nil {
			t.opts.OnEvent(Event{Type: EventTheme, Theme: &th})
		}
		t.emit(LineOutput, "Theme set to "+th.Name)
	default:
		cmd, _ := LookupCommand("theme")
		t.emit(LineError, "Usage: "+cmd.Usage)
	}
}

func (t *Terminal) ask(args []string) {
	items := t.opts.Library.Items()
	question := strings.Join(args, " ")
	if question == "" {
		var b strings.Builder
		b.WriteString("Available questions:")
		for i, item := range items {
			fmt.Fprintf(&b, "\n  %d. %s", i+1, item.Question)
		}
		b.WriteString("\nType 'ask <question>' to get an answer.")
		t.emit(LineOutput, b.String())
		return
	}
	t.emit(LineOutput, Answer(items, question))
}

func (t *Terminal) showHistory() {
	var b strings.Builder
	for i, entry := range t.history {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%4d  %s", i+1, entry)
	}
	t.emit(LineOutput, b.String())
}

func (t *Terminal) help(args []string) {
	if len(args) > 0 {
		cmd, ok := LookupCommand(args[0])
		if !ok {
			t.emit(LineError, "Command not found: "+args[0])
			return
		}
		var b strings.Builder
		fmt.Fprintf(&b, "%s - %s\nUsage: %s", cmd.Name, cmd.Description, cmd.Usage)
		if len(cmd.Examples) > 0 {
			b.WriteString("\nExamples:")
			for _, ex := range cmd.Examples {
				b.WriteString("\n  " + ex)
			}
		}
		t.emit(LineOutput, b.String())
		return
	}

	var b strings.Builder
	b.WriteString("Available commands:")
	for _, group := range categoryTitles {
		b.WriteString("\n\n" + group.Title + ":")
		for _, cmd := range Commands {
			if cmd.Category == group.Category {
				fmt.Fprintf(&b, "\n  %-10s %s", cmd.Name, cmd.Description)
			}
		}
	}
	b.WriteString("\n\nType 'help <command>' for usage and examples.")
	t.emit(LineOutput, b.String())
}

// Output returns a copy of the visible log.
func (t *Terminal) Output() []Line {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Line(nil), t.output...)
}

func (t *Terminal) History() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.history...)
}

func (t *Terminal) Installed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.installed
}

func (t *Terminal) Theme() Theme {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.theme
}

func (t *Terminal) AutoRefreshing() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.autoCancel != nil
}

// Close stops auto-refresh and waits for the background goroutine to exit.
func (t *Terminal) Close() {
	t.mu.Lock()
	t.closed = true
	if t.autoCancel != nil {
		t.autoCancel()
		t.autoCancel = nil
	}
	t.mu.Unlock()
	t.wg.Wait()
}
