package terminal_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"portfolio-backend/internal/github"
	"portfolio-backend/internal/terminal"
)

type fakeGitHub struct {
	mu            sync.Mutex
	contributions *github.Contributions
	user          *github.User
	repos         []github.Repo
	err           error
	calls         map[string]int
}

func (f *fakeGitHub) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = map[string]int{}
	}
	f.calls[name]++
}

func (f *fakeGitHub) Calls(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeGitHub) Contributions(_ context.Context, _ string) (*github.Contributions, error) {
	f.record("contributions")
	if f.err != nil {
		return nil, f.err
	}
	return f.contributions, nil
}

func (f *fakeGitHub) User(_ context.Context, _ string) (*github.User, error) {
	f.record("user")
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

func (f *fakeGitHub) Repos(_ context.Context, _ string, _ int) ([]github.Repo, error) {
	f.record("repos")
	if f.err != nil {
		return nil, f.err
	}
	return f.repos, nil
}

var fixedNow = time.Date(2024, 6, 12, 15, 0, 0, 0, time.UTC)

func noSleep(context.Context, time.Duration) error { return nil }

func newTerminal(t *testing.T, gh *fakeGitHub) *terminal.Terminal {
	t.Helper()
	if gh == nil {
		gh = &fakeGitHub{}
	}
	term := terminal.New(terminal.Options{
		Username: "octocat",
		GitHub:   gh,
		Sleep:    noSleep,
		Now:      func() time.Time { return fixedNow },
	})
	t.Cleanup(term.Close)
	return term
}

func installed(t *testing.T, gh *fakeGitHub) *terminal.Terminal {
	t.Helper()
	term := newTerminal(t, gh)
	term.Execute(context.Background(), "sb install")
	require.True(t, term.Installed())
	return term
}

func errorLines(lines []terminal.Line) []terminal.Line {
	var out []terminal.Line
	for _, l := range lines {
		if l.Type == terminal.LineError {
			out = append(out, l)
		}
	}
	return out
}

func lastText(lines []terminal.Line) string {
	if len(lines) == 0 {
		return ""
	}
	return lines[len(lines)-1].Text
}

func TestExecute_EmptyInputIgnored(t *testing.T) {
	term := newTerminal(t, nil)

	assert.Nil(t, term.Execute(context.Background(), "   "))
	assert.Empty(t, term.Output())
	assert.Empty(t, term.History())
}

func TestExecute_EchoesCommand(t *testing.T) {
	term := newTerminal(t, nil)

	lines := term.Execute(context.Background(), "  help  ")
	require.NotEmpty(t, lines)
	assert.Equal(t, terminal.Line{Type: terminal.LineCommand, Text: "$ help"}, lines[0])
	assert.Equal(t, []string{"help"}, term.History())
}

func TestInstallGate(t *testing.T) {
	for _, input := range []string{"frobnicate", "help", "github", "clear", "ask what technologies do you use", "sb", "sb update"} {
		t.Run(input, func(t *testing.T) {
			term := newTerminal(t, nil)
			lines := term.Execute(context.Background(), input)

			errs := errorLines(lines)
			require.Len(t, errs, 1)
			assert.Contains(t, errs[0].Text, "please run sb install")
			assert.Contains(t, errs[0].Text, strings.Fields(input)[0])
			assert.False(t, term.Installed())
		})
	}
}

func TestFrobnicate_BeforeAndAfterInstall(t *testing.T) {
	term := newTerminal(t, nil)

	before := term.Execute(context.Background(), "frobnicate")
	assert.Equal(t, "frobnicate: please run sb install first", lastText(before))

	term.Execute(context.Background(), "sb install")

	after := term.Execute(context.Background(), "frobnicate")
	errs := errorLines(after)
	require.Len(t, errs, 1)
	assert.Equal(t, "Command not found: frobnicate", errs[0].Text)
}

func TestUnknownCommands_ExactlyOneErrorLine(t *testing.T) {
	term := installed(t, nil)

	for _, input := range []string{"frobnicate", "ls -la", "sudo rm -rf /", "x"} {
		lines := term.Execute(context.Background(), input)
		errs := errorLines(lines)
		require.Len(t, errs, 1, input)
		assert.Contains(t, errs[0].Text, strings.Fields(input)[0])
	}
}

func TestInstall(t *testing.T) {
	var slept []time.Duration
	term := terminal.New(terminal.Options{
		Username: "octocat",
		GitHub:   &fakeGitHub{},
		Sleep: func(_ context.Context, d time.Duration) error {
			slept = append(slept, d)
			return nil
		},
	})
	defer term.Close()

	lines := term.Execute(context.Background(), "sb install")
	assert.True(t, term.Installed())
	assert.Empty(t, errorLines(lines))
	assert.Equal(t, []time.Duration{600 * time.Millisecond, 800 * time.Millisecond, 400 * time.Millisecond}, slept)

	var bars []string
	for _, l := range lines {
		if strings.HasPrefix(l.Text, "[") {
			bars = append(bars, l.Text)
		}
	}
	require.Len(t, bars, 3)
	assert.Equal(t, terminal.ProgressBar(100), bars[2])
	assert.Contains(t, strings.Join(textsOf(lines), "\n"), "Connecting to GitHub")

	again := term.Execute(context.Background(), "sb install")
	assert.Contains(t, lastText(again), "already installed")
}

func TestInstall_Cancelled(t *testing.T) {
	term := terminal.New(terminal.Options{GitHub: &fakeGitHub{}})
	defer term.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	lines := term.Execute(ctx, "sb install")
	assert.False(t, term.Installed())
	require.Len(t, errorLines(lines), 1)
	assert.Contains(t, errorLines(lines)[0].Text, "cancelled")
}

func textsOf(lines []terminal.Line) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Text
	}
	return out
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "["+strings.Repeat("-", 30)+"] 0%", terminal.ProgressBar(0))
	assert.Equal(t, "["+strings.Repeat("█", 15)+strings.Repeat("-", 15)+"] 50%", terminal.ProgressBar(50))
	assert.Equal(t, "["+strings.Repeat("█", 9)+strings.Repeat("-", 21)+"] 33%", terminal.ProgressBar(33))
	assert.Equal(t, "["+strings.Repeat("█", 30)+"] 100%", terminal.ProgressBar(140))
}

func TestClear_EmptiesOutput(t *testing.T) {
	var events []terminal.Event
	term := terminal.New(terminal.Options{
		GitHub:  &fakeGitHub{},
		Sleep:   noSleep,
		OnEvent: func(e terminal.Event) { events = append(events, e) },
	})
	defer term.Close()

	term.Execute(context.Background(), "sb install")
	term.Execute(context.Background(), "help")
	require.NotEmpty(t, term.Output())

	assert.Nil(t, term.Execute(context.Background(), "clear"))
	assert.Empty(t, term.Output())
	assert.Equal(t, terminal.EventClear, events[len(events)-1].Type)

	// history survives a clear
	assert.Equal(t, []string{"sb install", "help", "clear"}, term.History())
}

func TestAsk_TechStackVerbatim(t *testing.T) {
	term := installed(t, nil)

	lines := term.Execute(context.Background(), "ask what technologies do you use")
	assert.Equal(t, terminal.DefaultQnA[0].Answer, lastText(lines))
	assert.True(t, strings.HasPrefix(lastText(lines), "My tech stack includes:\n• Frontend: React, Next.js, TypeScript, TailwindCSS"))
}

func TestAsk_Fallback(t *testing.T) {
	term := installed(t, nil)

	lines := term.Execute(context.Background(), "ask do you like pizza")
	assert.Equal(t, terminal.FallbackAnswer, lastText(lines))
	assert.Empty(t, errorLines(lines))
}

func TestAsk_ListsQuestions(t *testing.T) {
	term := installed(t, nil)

	lines := term.Execute(context.Background(), "ask")
	out := lastText(lines)
	for _, item := range terminal.DefaultQnA {
		assert.Contains(t, out, item.Question)
	}
}

func TestHistory(t *testing.T) {
	term := installed(t, nil)
	term.Execute(context.Background(), "echo hi there")

	lines := term.Execute(context.Background(), "history")
	assert.Equal(t, "   1  sb install\n   2  echo hi there\n   3  history", lastText(lines))
}

func TestEcho(t *testing.T) {
	term := installed(t, nil)
	assert.Equal(t, "hi there", lastText(term.Execute(context.Background(), "echo hi   there")))
}

func TestHelp(t *testing.T) {
	term := installed(t, nil)

	all := lastText(term.Execute(context.Background(), "help"))
	for _, cmd := range terminal.Commands {
		assert.Contains(t, all, cmd.Name)
	}
	assert.Contains(t, all, "Real-time:")

	one := lastText(term.Execute(context.Background(), "help theme"))
	assert.Contains(t, one, "Usage: theme [list|set <theme-name>]")
	assert.Contains(t, one, "theme set matrix")

	missing := term.Execute(context.Background(), "help frobnicate")
	require.Len(t, errorLines(missing), 1)
}

func TestTheme(t *testing.T) {
	var themeEvents []terminal.Theme
	term := terminal.New(terminal.Options{
		GitHub: &fakeGitHub{},
		Sleep:  noSleep,
		OnEvent: func(e terminal.Event) {
			if e.Type == terminal.EventTheme {
				themeEvents = append(themeEvents, *e.Theme)
			}
		},
	})
	defer term.Close()
	ctx := context.Background()
	term.Execute(ctx, "sb install")

	assert.Contains(t, lastText(term.Execute(ctx, "theme")), "Current theme: default")
	assert.Contains(t, lastText(term.Execute(ctx, "theme list")), "* default")

	assert.Equal(t, "Theme set to matrix", lastText(term.Execute(ctx, "theme set matrix")))
	assert.Equal(t, "matrix", term.Theme().Name)
	require.Len(t, themeEvents, 1)
	assert.Equal(t, "matrix", themeEvents[0].Name)

	bad := term.Execute(ctx, "theme set neon")
	require.Len(t, errorLines(bad), 1)
	assert.Equal(t, "matrix", term.Theme().Name)

	usage := term.Execute(ctx, "theme frobnicate")
	require.Len(t, errorLines(usage), 1)
	assert.Contains(t, errorLines(usage)[0].Text, "Usage:")
}

func contributionFixture() *github.Contributions {
	return &github.Contributions{
		Total: map[string]int{"2023": 40, "2024": 17},
		Contributions: []github.ContributionDay{
			{Date: "2024-06-01", Count: 2, Level: 1},
			{Date: "2024-06-08", Count: 1, Level: 1},
			{Date: "2024-06-09", Count: 9, Level: 4},
			{Date: "2024-06-10", Count: 1, Level: 1},
			{Date: "2024-06-11", Count: 4, Level: 2},
			{Date: "2024-06-12", Count: 0, Level: 0},
			{Date: "2024-12-31", Count: 0, Level: 0},
		},
	}
}

func TestGitHub_FetchesOnceAndCaches(t *testing.T) {
	gh := &fakeGitHub{contributions: contributionFixture()}
	term := installed(t, gh)

	first := term.Execute(context.Background(), "github")
	assert.Contains(t, lastText(first), "17 contributions in the last year")
	term.Execute(context.Background(), "github")
	term.Execute(context.Background(), "stats")

	assert.Equal(t, 1, gh.Calls("contributions"))
}

func TestGitHub_ErrorLine(t *testing.T) {
	gh := &fakeGitHub{err: errors.New("HTTP error! status: 503")}
	term := installed(t, gh)

	lines := term.Execute(context.Background(), "github")
	errs := errorLines(lines)
	require.Len(t, errs, 1)
	assert.Equal(t, "Error fetching contributions: HTTP error! status: 503", errs[0].Text)

	// nothing cached, so the next call tries again
	term.Execute(context.Background(), "github")
	assert.Equal(t, 2, gh.Calls("contributions"))
}

func TestStatsAndSummary(t *testing.T) {
	term := installed(t, &fakeGitHub{contributions: contributionFixture()})

	stats := lastText(term.Execute(context.Background(), "stats"))
	assert.Contains(t, stats, "Total contributions: 57")
	assert.Contains(t, stats, "  2024: 17\n  2023: 40")
	assert.Contains(t, stats, "Best day: 2024-06-09 (9 contributions)")
	assert.Contains(t, stats, "Current streak: 4 days")
	assert.Contains(t, stats, "Longest streak: 4 days")

	summary := lastText(term.Execute(context.Background(), "summary"))
	assert.Contains(t, summary, "Last 30 days: 17 contributions")
	assert.Contains(t, summary, "Active days: 5/30")
	assert.Contains(t, summary, "Daily average: 0.6")
	assert.Contains(t, summary, "Today: 0 contributions")
}

func TestProfileAndRepos(t *testing.T) {
	gh := &fakeGitHub{
		user: &github.User{Login: "octocat", Name: "The Octocat", PublicRepos: 8, Followers: 10, Following: 1, HTMLURL: "https://github.com/octocat"},
		repos: []github.Repo{
			{Name: "hello-world", Language: "Go", StargazersCount: 42, Description: "My first repo"},
		},
	}
	term := installed(t, gh)

	profile := lastText(term.Execute(context.Background(), "profile"))
	assert.Contains(t, profile, "The Octocat (@octocat)")
	assert.Contains(t, profile, "Public repos: 8 | Followers: 10 | Following: 1")

	repos := lastText(term.Execute(context.Background(), "repos"))
	assert.Contains(t, repos, "hello-world [Go] ★ 42")
	assert.Contains(t, repos, "My first repo")
}

func TestRefresh_RefetchesEverything(t *testing.T) {
	gh := &fakeGitHub{contributions: contributionFixture(), user: &github.User{Login: "octocat"}}
	term := installed(t, gh)
	term.Execute(context.Background(), "github")

	lines := term.Execute(context.Background(), "refresh")
	assert.Contains(t, lastText(lines), "3/3 sources updated")
	assert.Equal(t, 2, gh.Calls("contributions"))
	assert.Equal(t, 1, gh.Calls("user"))
	assert.Equal(t, 1, gh.Calls("repos"))
}

func TestAutoRefresh(t *testing.T) {
	gh := &fakeGitHub{contributions: contributionFixture(), user: &github.User{Login: "octocat"}}
	term := terminal.New(terminal.Options{
		Username:            "octocat",
		GitHub:              gh,
		Sleep:               noSleep,
		AutoRefreshInterval: 10 * time.Millisecond,
	})
	defer term.Close()
	ctx := context.Background()
	term.Execute(ctx, "sb install")

	assert.Contains(t, lastText(term.Execute(ctx, "auto")), "Auto-refresh enabled")
	assert.True(t, term.AutoRefreshing())

	assert.Eventually(t, func() bool { return gh.Calls("repos") >= 2 }, 2*time.Second, 5*time.Millisecond)

	assert.Equal(t, "Auto-refresh disabled", lastText(term.Execute(ctx, "auto")))
	assert.False(t, term.AutoRefreshing())
}

func TestAutoRefresh_StoppedByClose(t *testing.T) {
	gh := &fakeGitHub{}
	term := terminal.New(terminal.Options{
		GitHub:              gh,
		Sleep:               noSleep,
		AutoRefreshInterval: time.Hour,
	})
	term.Execute(context.Background(), "sb install")
	term.Execute(context.Background(), "auto")

	term.Close()
	assert.False(t, term.AutoRefreshing())

	lines := term.Execute(context.Background(), "auto")
	require.Len(t, errorLines(lines), 1)
}

func TestGreet(t *testing.T) {
	term := newTerminal(t, nil)
	term.Greet()
	assert.Contains(t, lastText(term.Output()), "sb install")
}
