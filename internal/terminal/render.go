package terminal

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"portfolio-backend/internal/github"
)

const dateLayout = "2006-01-02"

var levelGlyphs = []string{"·", "░", "▒", "▓", "█"}

func glyph(level int) string {
	if level < 0 {
		level = 0
	}
	if level >= len(levelGlyphs) {
		level = len(levelGlyphs) - 1
	}
	return levelGlyphs[level]
}

func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// pastDays indexes the calendar by date, dropping days after today. The API
// pads the current year with future zero-count days.
func pastDays(data *github.Contributions, today time.Time) map[string]github.ContributionDay {
	limit := today.Format(dateLayout)
	days := make(map[string]github.ContributionDay, len(data.Contributions))
	for _, d := range data.Contributions {
		if d.Date <= limit {
			days[d.Date] = d
		}
	}
	return days
}

// RenderContributionGrid draws the last 53 weeks as seven weekday rows,
// one column per week, shaded by contribution level.
func RenderContributionGrid(data *github.Contributions, now time.Time) string {
	today := day(now)
	days := pastDays(data, today)

	start := today.AddDate(0, 0, -(52*7 + int(today.Weekday())))
	const weeks = 53

	var rows [7][weeks]string
	total := 0
	for offset := 0; ; offset++ {
		d := start.AddDate(0, 0, offset)
		if d.After(today) {
			break
		}
		entry := days[d.Format(dateLayout)]
		total += entry.Count
		rows[offset%7][offset/7] = glyph(entry.Level)
	}

	labels := []string{"    ", "Mon ", "    ", "Wed ", "    ", "Fri ", "    "}
	var b strings.Builder
	fmt.Fprintf(&b, "%d contributions in the last year\n", total)
	for weekday, row := range rows {
		b.WriteString(labels[weekday])
		for _, cell := range row {
			if cell == "" {
				cell = " "
			}
			b.WriteString(cell)
		}
		b.WriteString("\n")
	}
	b.WriteString("    Less " + strings.Join(levelGlyphs, "") + " More")
	return b.String()
}

type contributionStats struct {
	Total         int
	Years         []string
	BestDate      string
	BestCount     int
	CurrentStreak int
	LongestStreak int
}

func computeStats(data *github.Contributions, now time.Time) contributionStats {
	today := day(now)
	days := pastDays(data, today)

	var s contributionStats
	for year, n := range data.Total {
		s.Total += n
		s.Years = append(s.Years, year)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(s.Years)))

	dates := make([]string, 0, len(days))
	for date := range days {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	run := 0
	var prev time.Time
	for _, date := range dates {
		d := days[date]
		if d.Count > s.BestCount {
			s.BestCount, s.BestDate = d.Count, date
		}
		if d.Count == 0 {
			run = 0
			continue
		}
		current, err := time.Parse(dateLayout, date)
		if err != nil {
			continue
		}
		if run > 0 && current.Sub(prev) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		prev = current
		if run > s.LongestStreak {
			s.LongestStreak = run
		}
	}

	// A streak is still current if today has no contributions yet.
	cursor := today
	if days[cursor.Format(dateLayout)].Count == 0 {
		cursor = cursor.AddDate(0, 0, -1)
	}
	for days[cursor.Format(dateLayout)].Count > 0 {
		s.CurrentStreak++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return s
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

func RenderStats(username string, data *github.Contributions, now time.Time) string {
	s := computeStats(data, now)

	var b strings.Builder
	fmt.Fprintf(&b, "GitHub statistics for %s\n", username)
	fmt.Fprintf(&b, "Total contributions: %d\n", s.Total)
	if len(s.Years) > 0 {
		b.WriteString("By year:\n")
		for _, year := range s.Years {
			fmt.Fprintf(&b, "  %s: %d\n", year, data.Total[year])
		}
	}
	if s.BestCount > 0 {
		fmt.Fprintf(&b, "Best day: %s (%s)\n", s.BestDate, plural(s.BestCount, "contribution"))
	}
	fmt.Fprintf(&b, "Current streak: %s\n", plural(s.CurrentStreak, "day"))
	fmt.Fprintf(&b, "Longest streak: %s", plural(s.LongestStreak, "day"))
	return b.String()
}

const summaryDays = 30

func RenderSummary(data *github.Contributions, now time.Time) string {
	today := day(now)
	days := pastDays(data, today)

	total, active := 0, 0
	for i := 0; i < summaryDays; i++ {
		d := days[today.AddDate(0, 0, -i).Format(dateLayout)]
		total += d.Count
		if d.Count > 0 {
			active++
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Last %d days: %s\n", summaryDays, plural(total, "contribution"))
	fmt.Fprintf(&b, "Active days: %d/%d\n", active, summaryDays)
	fmt.Fprintf(&b, "Daily average: %.1f\n", float64(total)/summaryDays)
	fmt.Fprintf(&b, "Today: %s", plural(days[today.Format(dateLayout)].Count, "contribution"))
	return b.String()
}

func RenderProfile(u *github.User) string {
	var b strings.Builder
	if u.Name != "" {
		fmt.Fprintf(&b, "%s (@%s)\n", u.Name, u.Login)
	} else {
		fmt.Fprintf(&b, "@%s\n", u.Login)
	}
	if u.Bio != "" {
		b.WriteString(u.Bio + "\n")
	}
	if u.Location != "" {
		fmt.Fprintf(&b, "Location: %s\n", u.Location)
	}
	fmt.Fprintf(&b, "Public repos: %d | Followers: %d | Following: %d\n", u.PublicRepos, u.Followers, u.Following)
	if !u.CreatedAt.IsZero() {
		fmt.Fprintf(&b, "Joined: %s\n", u.CreatedAt.Format("January 2006"))
	}
	b.WriteString(u.HTMLURL)
	return strings.TrimRight(b.String(), "\n")
}

func RenderRepos(repos []github.Repo) string {
	if len(repos) == 0 {
		return "No public repositories found."
	}

	var b strings.Builder
	b.WriteString("Recent repositories:")
	for _, r := range repos {
		b.WriteString("\n  " + r.Name)
		if r.Language != "" {
			fmt.Fprintf(&b, " [%s]", r.Language)
		}
		fmt.Fprintf(&b, " ★ %d", r.StargazersCount)
		if r.Description != "" {
			b.WriteString("\n    " + r.Description)
		}
	}
	return b.String()
}
