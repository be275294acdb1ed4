package main

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"portfolio-backend/internal/terminal"
)

func newTestTerminal() *terminal.Terminal {
	return terminal.New(terminal.Options{
		Username: "octocat",
		Sleep:    func(context.Context, time.Duration) error { return nil },
	})
}

func TestRepl_ReturnsOnInterruptWhileWaiting(t *testing.T) {
	term := newTestTerminal()
	defer term.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		repl(ctx, term, make(chan string))
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("repl kept waiting for input after cancel")
	}
}

func TestRepl_RunsLinesUntilExit(t *testing.T) {
	term := newTestTerminal()
	defer term.Close()

	lines := readLines(strings.NewReader("sb install\necho hi\nexit\necho never\n"))
	repl(context.Background(), term, lines)

	require.True(t, term.Installed())
	assert.Equal(t, []string{"sb install", "echo hi"}, term.History())
}

func TestReadLines_ClosesAtEOF(t *testing.T) {
	var got []string
	for line := range readLines(strings.NewReader("a\nb\n")) {
		got = append(got, line)
	}
	assert.Equal(t, []string{"a", "b"}, got)
}
