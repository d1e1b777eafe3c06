package ui

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/zhubert/dotide/internal/activity"
	"github.com/zhubert/dotide/internal/keys"
)

// CloseStatsMsg asks the shell to leave the dashboard.
type CloseStatsMsg struct{}

const (
	// StatsTimelineLimit is how many recent entries the timeline lists.
	StatsTimelineLimit = 20
	statsHeaderLines   = 2
)

// Stats is the productivity dashboard: totals, per-day bars, time per
// project and the recent activity timeline.
type Stats struct {
	width    int
	height   int
	logs     []activity.Entry
	backHint string
	viewport viewport.Model
}

// NewStats creates an empty dashboard
func NewStats() *Stats {
	return &Stats{
		viewport: viewport.New(viewport.WithWidth(1), viewport.WithHeight(1)),
		backHint: "Back to Editor",
	}
}

// SetSize sets the content area size
func (s *Stats) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.viewport.SetWidth(width)
	s.viewport.SetHeight(max(height-statsHeaderLines, 1))
	s.render()
}

// SetLogs replaces the activity log shown
func (s *Stats) SetLogs(logs []activity.Entry) {
	s.logs = logs
	s.render()
	s.viewport.GotoTop()
}

// SetBackTarget names where esc leads, e.g. "Editor" or "Welcome".
func (s *Stats) SetBackTarget(name string) {
	s.backHint = "Back to " + name
}

// Update handles scrolling and leaving
func (s *Stats) Update(msg tea.Msg) (*Stats, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok && keyMsg.String() == keys.Escape {
		return s, func() tea.Msg { return CloseStatsMsg{} }
	}
	switch msg.(type) {
	case tea.KeyPressMsg, tea.MouseWheelMsg:
		var cmd tea.Cmd
		s.viewport, cmd = s.viewport.Update(msg)
		return s, cmd
	}
	return s, nil
}

// Click handles a press relative to the content area; the header row
// leads back.
func (s *Stats) Click(_, y int) tea.Cmd {
	if y == 0 {
		return func() tea.Msg { return CloseStatsMsg{} }
	}
	return nil
}

func kindColor(k activity.Kind) color.Color {
	switch k {
	case activity.KindEditing:
		return ColorEditing
	case activity.KindBuilding:
		return ColorBuilding
	case activity.KindRunning:
		return ColorRunning
	case activity.KindDebugging:
		return ColorDebugging
	}
	return ColorTextMuted
}

func kindLabel(k activity.Kind) string {
	return strings.ToUpper(string(k[:1])) + string(k[1:])
}

func (s *Stats) render() {
	s.viewport.SetContent(RenderDashboard(s.logs, s.width))
}

// RenderDashboard renders the dashboard body for a log at width.
func RenderDashboard(logs []activity.Entry, width int) string {
	width = max(width, 40)
	sections := []string{
		renderStatCards(logs, width),
		renderDailyActivity(logs, width),
		renderProjectShares(logs, width),
		renderTimeline(logs, width),
	}
	return strings.Join(sections, "\n\n")
}

func renderStatCards(logs []activity.Entry, width int) string {
	totals := activity.Totals(logs)
	cards := []struct {
		title   string
		seconds int
	}{
		{"Total Coding Time", activity.TotalTime(logs)},
		{"Editing", totals[activity.KindEditing]},
		{"Running", totals[activity.KindRunning]},
		{"Debugging", totals[activity.KindDebugging]},
	}

	perRow := 4
	if width < 4*24 {
		perRow = 2
	}
	cardWidth := max((width-(perRow-1))/perRow, 16)

	var rows, row []string
	for i, c := range cards {
		body := MutedStyle.Render(c.title) + "\n" + CardValueStyle.Render(activity.FormatDuration(c.seconds))
		row = append(row, CardStyle.Width(cardWidth).Render(body))
		if len(row) == perRow || i == len(cards)-1 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	return strings.Join(rows, "\n")
}

func legend() string {
	var parts []string
	for _, k := range activity.Kinds {
		parts = append(parts, lipgloss.NewStyle().Foreground(kindColor(k)).Render("█")+" "+MutedStyle.Render(kindLabel(k)))
	}
	return strings.Join(parts, "  ")
}

func renderDailyActivity(logs []activity.Entry, width int) string {
	lines := []string{CardTitleStyle.Render("Daily Activity (Seconds)"), legend()}

	days := activity.DailyStatsFor(logs)
	if len(days) == 0 {
		return strings.Join(append(lines, MutedStyle.Render("No activity recorded yet")), "\n")
	}

	peak := 0
	for _, d := range days {
		peak = max(peak, d.Total())
	}

	// date, space, bar, space, total
	barWidth := max(width-10-1-1-8, 10)
	for _, d := range days {
		var bar strings.Builder
		used := 0
		for _, k := range activity.Kinds {
			n := 0
			if peak > 0 {
				n = d.Get(k) * barWidth / peak
			}
			if d.Get(k) > 0 && n == 0 {
				n = 1
			}
			n = min(n, barWidth-used)
			used += n
			bar.WriteString(lipgloss.NewStyle().Foreground(kindColor(k)).Render(strings.Repeat("█", n)))
		}
		bar.WriteString(strings.Repeat(" ", barWidth-used))
		lines = append(lines, fmt.Sprintf("%s %s %s", MutedStyle.Render(d.Date), bar.String(), fmt.Sprintf("%7ds", d.Total())))
	}
	return strings.Join(lines, "\n")
}

func renderProjectShares(logs []activity.Entry, width int) string {
	lines := []string{CardTitleStyle.Render("Time per Project")}

	shares := activity.ProjectDistribution(logs)
	if len(shares) == 0 {
		return strings.Join(append(lines, MutedStyle.Render("No project data available yet")), "\n")
	}

	total := 0
	nameWidth := 8
	for _, p := range shares {
		total += p.Seconds
		nameWidth = max(nameWidth, runewidth.StringWidth(p.Name))
	}
	nameWidth = min(nameWidth, width/3)
	barWidth := max(width-nameWidth-1-1-6, 10)

	for _, p := range shares {
		pct := 0
		n := 0
		if total > 0 {
			pct = p.Seconds * 100 / total
			n = p.Seconds * barWidth / total
		}
		name := runewidth.FillRight(runewidth.Truncate(p.Name, nameWidth, "…"), nameWidth)
		bar := lipgloss.NewStyle().Foreground(ColorAccent).Render(strings.Repeat("█", n)) +
			MutedStyle.Render(strings.Repeat("░", barWidth-n))
		lines = append(lines, fmt.Sprintf("%s %s %4d%%", name, bar, pct))
	}
	return strings.Join(lines, "\n")
}

func renderTimeline(logs []activity.Entry, width int) string {
	lines := []string{CardTitleStyle.Render("Activity Timeline")}

	var recent []activity.Entry
	for i := len(logs) - 1; i >= 0 && len(recent) < StatsTimelineLimit; i-- {
		if logs[i].Kind != activity.KindIdle {
			recent = append(recent, logs[i])
		}
	}
	if len(recent) == 0 {
		return strings.Join(append(lines, MutedStyle.Render("No activity recorded yet")), "\n")
	}

	for _, e := range recent {
		dot := lipgloss.NewStyle().Foreground(kindColor(e.Kind)).Render("●")
		line := fmt.Sprintf("%s %s %-9s %4ds  %s",
			MutedStyle.Render(e.Timestamp.Local().Format("Jan 02 15:04:05")),
			dot,
			string(e.Kind),
			e.DurationSeconds,
			e.ProjectName)
		lines = append(lines, ansi.Truncate(line, width, "…"))
	}
	return strings.Join(lines, "\n")
}

// View renders the dashboard
func (s *Stats) View() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(ColorText).Render("Developer Time Tracking")
	back := FooterKeyStyle.Render("esc") + MutedStyle.Render(" "+s.backHint)
	gap := max(s.width-lipgloss.Width(title)-lipgloss.Width(back), 1)
	header := title + strings.Repeat(" ", gap) + back

	return lipgloss.NewStyle().
		Width(s.width).
		Height(s.height).
		MaxHeight(s.height).
		Background(ColorEditorBg).
		Render(header + "\n\n" + s.viewport.View())
}
