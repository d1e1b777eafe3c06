package ui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// RunRequestedMsg asks the shell to build and run the open project.
type RunRequestedMsg struct{}

// Header is the top bar: branding, the open project and the run button.
type Header struct {
	width       int
	projectName string
	building    bool
	appearance  string
	compiler    string
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetProject sets the project name shown as a breadcrumb. Empty hides the
// breadcrumb and the run button.
func (h *Header) SetProject(name string) {
	h.projectName = name
}

// SetBuilding switches the run button to its busy state.
func (h *Header) SetBuilding(building bool) {
	h.building = building
}

// SetAppearance sets the theme and font size summary on the right.
func (h *Header) SetAppearance(themeName, fontLabel string) {
	h.appearance = themeName + " · " + fontLabel
}

// SetCompiler names the build backend, e.g. "offline".
func (h *Header) SetCompiler(name string) {
	h.compiler = name
}

// runLabel returns the run button text, or "" when no project is open.
func (h *Header) runLabel() string {
	switch {
	case h.projectName == "":
		return ""
	case h.building:
		return "⟳ Compiling"
	default:
		return "▶ Run"
	}
}

// rightParts returns the right aligned segments, run button first.
func (h *Header) rightParts() []string {
	var parts []string
	if label := h.runLabel(); label != "" {
		if h.building {
			parts = append(parts, HeaderBusyStyle.Render(label))
		} else {
			parts = append(parts, HeaderRunStyle.Render(label))
		}
	}
	if h.compiler != "" {
		parts = append(parts, HeaderStyle.Render(h.compiler))
	}
	if h.appearance != "" {
		parts = append(parts, HeaderStyle.Render(h.appearance))
	}
	return parts
}

// layout splits the bar into its rendered pieces. runX is the column the
// run button starts at, or -1.
func (h *Header) layout() (title, crumb, right string, leftPad, rightPad, runX int) {
	title = h.renderGradient(" dotide ")
	if h.projectName != "" {
		crumb = HeaderStyle.Render(h.projectName+" › ") + HeaderCrumbStyle.Render("Debug")
	}
	right = strings.Join(h.rightParts(), HeaderStyle.Render("  ")) + HeaderStyle.Render(" ")

	free := max(h.width-lipgloss.Width(title)-lipgloss.Width(crumb)-lipgloss.Width(right), 0)
	leftPad = free / 2
	rightPad = free - leftPad

	runX = -1
	if h.runLabel() != "" {
		runX = lipgloss.Width(title) + leftPad + lipgloss.Width(crumb) + rightPad
	}
	return
}

// Click handles a press at column x. Pressing the run button while idle
// requests a build.
func (h *Header) Click(x int) tea.Cmd {
	_, _, _, _, _, runX := h.layout()
	if runX < 0 || h.building {
		return nil
	}
	if x < runX || x >= runX+lipgloss.Width(h.rightParts()[0]) {
		return nil
	}
	return func() tea.Msg { return RunRequestedMsg{} }
}

// View renders the header
func (h *Header) View() string {
	title, crumb, right, leftPad, rightPad, _ := h.layout()
	return title +
		HeaderStyle.Render(strings.Repeat(" ", leftPad)) +
		crumb +
		HeaderStyle.Render(strings.Repeat(" ", rightPad)) +
		right
}

// parseHexColor parses a hex color string (e.g., "#0e639c") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient renders content on a background fading from the theme
// accent to the top bar color.
func (h *Header) renderGradient(content string) string {
	if len(content) == 0 {
		return ""
	}

	theme := CurrentTheme()
	startR, startG, startB := parseHexColor(theme.Accent)
	endR, endG, endB := parseHexColor(theme.TopBarBg)
	textColor := lipgloss.Color("#ffffff")

	runes := []rune(content)
	width := len(runes)
	var result strings.Builder

	for i, r := range runes {
		t := float64(i) / float64(width)

		cr := int(float64(startR)*(1-t) + float64(endR)*t)
		cg := int(float64(startG)*(1-t) + float64(endG)*t)
		cb := int(float64(startB)*(1-t) + float64(endB)*t)

		style := lipgloss.NewStyle().
			Background(lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb))).
			Foreground(textColor).
			Bold(true)

		result.WriteString(style.Render(string(r)))
	}

	return result.String()
}
