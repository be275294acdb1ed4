// Command terminal runs the portfolio terminal locally against the public
// GitHub endpoints.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"
	"portfolio-backend/internal/config"
	"portfolio-backend/internal/github"
	"portfolio-backend/internal/logger"
	"portfolio-backend/internal/terminal"
)

var (
	commandColor = color.New(color.FgCyan, color.Bold)
	errorColor   = color.New(color.FgRed)
	themeColor   = color.New(color.FgMagenta)
)

func main() {
	cfg := config.LoadTerminal()
	log := logger.New(cfg.Environment, "warn")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	library := terminal.NewLibrary(terminal.DefaultQnA)
	if cfg.QnAFile != "" {
		if items, err := terminal.LoadQnAFile(cfg.QnAFile); err != nil {
			log.Warn().Err(err).Str("file", cfg.QnAFile).Msg("using built-in Q&A")
		} else {
			library.Replace(items)
		}
	}

	term := terminal.New(terminal.Options{
		Username: cfg.GitHubUsername,
		GitHub:   github.NewClient(cfg.GitHubAPIURL, cfg.GitHubContributionURL, cfg.GitHubToken),
		Library:  library,
		OnEvent:  printEvent,
		Logger:   log,
	})
	defer term.Close()

	term.Greet()

	repl(ctx, term, readLines(os.Stdin))
}

// repl runs input lines until stdin closes, the user exits, or ctx is done.
func repl(ctx context.Context, term *terminal.Terminal, lines <-chan string) {
	for {
		commandColor.Print("$ ")
		select {
		case <-ctx.Done():
			fmt.Println()
			return
		case line, ok := <-lines:
			if !ok {
				fmt.Println()
				return
			}
			input := strings.TrimSpace(line)
			if input == "exit" || input == "quit" {
				return
			}
			term.Execute(ctx, input)
		}
	}
}

// readLines feeds stdin to a channel so the prompt can also wait on a signal.
func readLines(r io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()
	return lines
}

func printEvent(ev terminal.Event) {
	switch ev.Type {
	case terminal.EventClear:
		fmt.Print("\033[H\033[2J")
	case terminal.EventTheme:
		if ev.Theme != nil {
			themeColor.Printf("[theme: %s]\n", ev.Theme.Name)
		}
	case terminal.EventLine:
		if ev.Line == nil {
			return
		}
		switch ev.Line.Type {
		case terminal.LineCommand:
			// the prompt already echoed it
		case terminal.LineError:
			errorColor.Println(ev.Line.Text)
		default:
			fmt.Println(ev.Line.Text)
		}
	}
}
