package ui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/dotide/internal/keys"
	"github.com/zhubert/dotide/internal/project"
)

// CreateProjectMsg asks the shell to create a project from a template.
type CreateProjectMsg struct {
	Kind project.TemplateKind
}

// OpenStatsMsg asks the shell to show the stats dashboard.
type OpenStatsMsg struct{}

const (
	welcomeCardHeight = 6
	welcomeCardGap    = 2
	// Rows above the cards: title, tagline, blank, section, prompt.
	welcomeCardsTop = 5
)

// Welcome is the start screen: template cards and a link to the stats
// dashboard.
type Welcome struct {
	width  int
	height int
	cursor int
}

// NewWelcome creates the start screen
func NewWelcome() *Welcome {
	return &Welcome{}
}

// SetSize sets the content area size
func (w *Welcome) SetSize(width, height int) {
	w.width = width
	w.height = height
}

// Cursor returns the highlighted template index
func (w *Welcome) Cursor() int {
	return w.cursor
}

// Selected returns the highlighted template
func (w *Welcome) Selected() *project.Template {
	return project.Templates[w.cursor]
}

func (w *Welcome) create(i int) tea.Cmd {
	w.cursor = i
	kind := project.Templates[i].Kind
	return func() tea.Msg { return CreateProjectMsg{Kind: kind} }
}

// Update handles template navigation
func (w *Welcome) Update(msg tea.Msg) (*Welcome, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return w, nil
	}
	n := len(project.Templates)
	switch keyMsg.String() {
	case keys.Left, "h", keys.ShiftTab:
		w.cursor = (w.cursor - 1 + n) % n
	case keys.Right, "l", keys.Tab:
		w.cursor = (w.cursor + 1) % n
	case "1", "2", "3":
		if i := int(keyMsg.String()[0] - '1'); i < n {
			return w, w.create(i)
		}
	case keys.Enter:
		return w, w.create(w.cursor)
	case "s":
		return w, func() tea.Msg { return OpenStatsMsg{} }
	}
	return w, nil
}

// welcomeGeometry is where the block of content sits in the screen.
type welcomeGeometry struct {
	left, top  int
	cardWidth  int
	blockWidth int
	height     int
}

func (w *Welcome) geometry() welcomeGeometry {
	n := len(project.Templates)
	cardWidth := min(max((w.width-8)/n, 18), 30)
	blockWidth := n*cardWidth + (n-1)*welcomeCardGap
	height := welcomeCardsTop + welcomeCardHeight + 2
	return welcomeGeometry{
		left:       max((w.width-blockWidth)/2, 0),
		top:        max((w.height-height)/2, 0),
		cardWidth:  cardWidth,
		blockWidth: blockWidth,
		height:     height,
	}
}

// Click handles a press at (x, y) relative to the content area.
func (w *Welcome) Click(x, y int) tea.Cmd {
	g := w.geometry()
	cardsY := g.top + welcomeCardsTop
	if y >= cardsY && y < cardsY+welcomeCardHeight {
		for i := range project.Templates {
			cx := g.left + i*(g.cardWidth+welcomeCardGap)
			if x >= cx && x < cx+g.cardWidth {
				return w.create(i)
			}
		}
		return nil
	}
	if y == g.top+g.height-1 && x >= g.left && x < g.left+g.blockWidth {
		return func() tea.Msg { return OpenStatsMsg{} }
	}
	return nil
}

func (w *Welcome) renderCard(i, width int) string {
	t := project.Templates[i]
	style := CardStyle
	if i == w.cursor {
		style = CardSelectedStyle
	}
	inner := width - 4

	kind := "CONSOLE"
	if t.IsWeb {
		kind = "WEB"
	}
	desc := lipgloss.NewStyle().Width(inner).MaxHeight(2).Foreground(ColorTextMuted).Render(t.Description)
	body := lipgloss.JoinVertical(lipgloss.Left,
		CardTitleStyle.Render(t.Name),
		desc,
		MutedStyle.Render(kind),
	)
	return style.Width(width).Height(welcomeCardHeight).MaxHeight(welcomeCardHeight).Render(body)
}

// View renders the start screen
func (w *Welcome) View() string {
	g := w.geometry()
	center := func(s string) string {
		return lipgloss.PlaceHorizontal(g.blockWidth, lipgloss.Center, s)
	}

	var cards []string
	for i := range project.Templates {
		if i > 0 {
			cards = append(cards, strings.Repeat(" ", welcomeCardGap))
		}
		cards = append(cards, w.renderCard(i, g.cardWidth))
	}

	block := []string{
		center(lipgloss.NewStyle().Bold(true).Foreground(ColorAccent).Render("DotNetWeb")),
		center(MutedStyle.Render("Enterprise C# Development in your terminal.")),
		"",
		PanelTitleStyle.Render("START"),
		MutedStyle.Render("Create a new project"),
		lipgloss.JoinHorizontal(lipgloss.Top, cards...),
		"",
		center(FooterKeyStyle.Render("s") + MutedStyle.Render("  View Productivity Dashboard")),
	}

	pad := strings.Repeat(" ", g.left)
	var lines []string
	for range g.top {
		lines = append(lines, "")
	}
	for _, l := range strings.Split(strings.Join(block, "\n"), "\n") {
		lines = append(lines, pad+l)
	}

	return lipgloss.NewStyle().
		Width(w.width).
		Height(w.height).
		MaxHeight(w.height).
		Background(ColorEditorBg).
		Render(strings.Join(lines, "\n"))
}
