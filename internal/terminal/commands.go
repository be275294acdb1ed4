package terminal

import (
	"strconv"
	"strings"
	"time"
)

type Category string

const (
	CategoryCore          Category = "core"
	CategoryRealtime      Category = "realtime"
	CategoryCustomization Category = "customization"
	CategoryUtility       Category = "utility"
)

var categoryTitles = []struct {
	Category Category
	Title    string
}{
	{CategoryCore, "Core"},
	{CategoryRealtime, "Real-time"},
	{CategoryCustomization, "Customization"},
	{CategoryUtility, "Utility"},
}

type Command struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	Usage       string   `json:"usage"`
	Examples    []string `json:"examples"`
}

var Commands = []Command{
	{Name: "github", Description: "Display GitHub contribution graph", Category: CategoryCore, Usage: "github", Examples: []string{"github"}},
	{Name: "profile", Description: "Show GitHub profile information", Category: CategoryCore, Usage: "profile", Examples: []string{"profile"}},
	{Name: "repos", Description: "List recent repositories", Category: CategoryCore, Usage: "repos", Examples: []string{"repos"}},
	{Name: "stats", Description: "Show detailed contribution statistics", Category: CategoryCore, Usage: "stats", Examples: []string{"stats"}},
	{Name: "summary", Description: "Quick overview of recent contributions", Category: CategoryCore, Usage: "summary", Examples: []string{"summary"}},
	{Name: "refresh", Description: "Manually refresh all GitHub data", Category: CategoryRealtime, Usage: "refresh", Examples: []string{"refresh"}},
	{Name: "auto", Description: "Toggle auto-refresh (every 5 minutes)", Category: CategoryRealtime, Usage: "auto", Examples: []string{"auto"}},
	{Name: "theme", Description: "Show/change current theme settings", Category: CategoryCustomization, Usage: "theme [list|set <theme-name>]", Examples: []string{"theme", "theme list", "theme set matrix"}},
	{Name: "ask", Description: "List available questions or ask specific ones", Category: CategoryUtility, Usage: "ask [question]", Examples: []string{"ask", "ask what are your features"}},
	{Name: "echo", Description: "Echo the provided text", Category: CategoryUtility, Usage: "echo <text>", Examples: []string{"echo hello"}},
	{Name: "clear", Description: "Clear the terminal output", Category: CategoryUtility, Usage: "clear", Examples: []string{"clear"}},
	{Name: "history", Description: "Show command history", Category: CategoryUtility, Usage: "history", Examples: []string{"history"}},
	{Name: "help", Description: "Show available commands and usage", Category: CategoryUtility, Usage: "help [command]", Examples: []string{"help", "help github"}},
}

func LookupCommand(name string) (Command, bool) {
	for _, c := range Commands {
		if c.Name == name {
			return c, true
		}
	}
	return Command{}, false
}

type InstallStep struct {
	Name     string
	Duration time.Duration
	Details  []string
}

var InstallSteps = []InstallStep{
	{Name: "Setting up terminal", Duration: 600 * time.Millisecond, Details: []string{"Initializing components", "Loading command system"}},
	{Name: "Connecting to GitHub", Duration: 800 * time.Millisecond, Details: []string{"Establishing API connection", "Testing data access"}},
	{Name: "Finalizing setup", Duration: 400 * time.Millisecond, Details: []string{"Enabling commands", "Ready to use"}},
}

const ProgressBarWidth = 30

// ProgressBar renders e.g. "[███---] 50%" with ProgressBarWidth cells.
func ProgressBar(progress int) string {
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}
	filled := ProgressBarWidth * progress / 100
	return "[" + strings.Repeat("█", filled) + strings.Repeat("-", ProgressBarWidth-filled) + "] " + strconv.Itoa(progress) + "%"
}

type Theme struct {
	Name       string `json:"name"`
	Background string `json:"background"`
	Foreground string `json:"foreground"`
	Accent     string `json:"accent"`
	Error      string `json:"error"`
}

var Themes = []Theme{
	{Name: "default", Background: "#111827", Foreground: "#4ade80", Accent: "#60a5fa", Error: "#f87171"},
	{Name: "matrix", Background: "#000000", Foreground: "#00ff41", Accent: "#008f11", Error: "#ff3333"},
	{Name: "dracula", Background: "#282a36", Foreground: "#f8f8f2", Accent: "#bd93f9", Error: "#ff5555"},
	{Name: "ocean", Background: "#0f172a", Foreground: "#7dd3fc", Accent: "#38bdf8", Error: "#fb7185"},
}

func FindTheme(name string) (Theme, bool) {
	for _, th := range Themes {
		if strings.EqualFold(th.Name, name) {
			return th, true
		}
	}
	return Theme{}, false
}
