package ui

import (
	"regexp"
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"golang.org/x/net/html"
)

// Preview panel text.
const (
	PreviewTitle        = "App Preview"
	PreviewReadyTitle   = "Runtime Initialized"
	PreviewReadyText    = "The sandbox environment is waiting for your source code. Run the project to inject the ASP.NET pipeline."
	PreviewReadyAction  = "Initialize Host"
	PreviewLoadingText  = "Deploying to Local Cluster..."
	PreviewLoadingBadge = "ASP.NET 7.0 RUNTIME"
	PreviewFooterText   = "Secure Host 127.0.0.1:5001 · DotNetWeb Engine"
	PreviewRefreshGlyph = "↻"
)

// maxHTMLDepth bounds recursion over generated markup.
const maxHTMLDepth = 64

// Preview shows what the last successful build of a web project served.
type Preview struct {
	width   int
	height  int
	loading bool

	viewport viewport.Model
	raw      string
	rendered string
}

// NewPreview creates an empty preview panel
func NewPreview() *Preview {
	return &Preview{
		viewport: viewport.New(viewport.WithWidth(1), viewport.WithHeight(1)),
	}
}

// SetSize sets the panel size including borders
func (p *Preview) SetSize(width, height int) {
	p.width = width
	p.height = height
	vc := GetViewContext()
	// Title above, host line below.
	p.viewport.SetWidth(vc.InnerWidth(width))
	p.viewport.SetHeight(max(vc.InnerHeight(height)-2, 1))
	p.render()
}

// SetLoading shows the deploy placeholder while a build runs
func (p *Preview) SetLoading(loading bool) {
	p.loading = loading
}

// SetContent replaces the served page. Empty content shows the idle
// placeholder.
func (p *Preview) SetContent(content string) {
	p.raw = content
	p.render()
	p.viewport.GotoTop()
}

// Content returns the raw page content
func (p *Preview) Content() string {
	return p.raw
}

// Rendered returns the page as shown, without styling
func (p *Preview) Rendered() string {
	return p.rendered
}

// RefreshTheme re-renders highlighted content after a theme change.
func (p *Preview) RefreshTheme() {
	p.render()
}

func (p *Preview) render() {
	p.rendered = renderPreviewContent(p.raw)
	width := p.viewport.Width()
	body := p.rendered
	if looksLikeJSON(p.raw) {
		body = highlightCode(p.rendered, "json", CurrentTheme().ChromaStyle)
	}
	p.viewport.SetContent(ansi.Wrap(body, max(width, 1), ""))
}

// Update scrolls the page
func (p *Preview) Update(msg tea.Msg) (*Preview, tea.Cmd) {
	switch msg.(type) {
	case tea.MouseWheelMsg, tea.KeyPressMsg:
		var cmd tea.Cmd
		p.viewport, cmd = p.viewport.Update(msg)
		return p, cmd
	}
	return p, nil
}

// Click handles a press at (x, y) relative to the panel's top-left corner.
// The reload glyph, or anywhere on the idle placeholder, requests a build.
func (p *Preview) Click(x, y int) tea.Cmd {
	if p.loading {
		return nil
	}
	run := func() tea.Msg { return RunRequestedMsg{} }
	// Row 0 is the border; the title is row 1 and starts after the border.
	if y == 1 && x >= 1 && x <= 2 {
		return run
	}
	if p.raw == "" && y >= 2 && y < 2+p.viewport.Height() {
		return run
	}
	return nil
}

// View renders the preview panel
func (p *Preview) View() string {
	vc := GetViewContext()
	innerWidth := vc.InnerWidth(p.width)
	bodyHeight := p.viewport.Height()

	title := lipgloss.NewStyle().Foreground(ColorAccent).Bold(true).Render(PreviewRefreshGlyph) + " " +
		PanelTitleStyle.Render(strings.ToUpper(PreviewTitle)) + MutedStyle.Render("  localhost:5001")

	var body string
	switch {
	case p.loading:
		body = lipgloss.Place(innerWidth, bodyHeight, lipgloss.Center, lipgloss.Center,
			lipgloss.JoinVertical(lipgloss.Center,
				StatusLoadingStyle.Render(PreviewLoadingText),
				MutedStyle.Render(PreviewLoadingBadge)))
	case p.raw == "":
		text := lipgloss.NewStyle().Width(max(innerWidth-4, 10)).Align(lipgloss.Center).
			Foreground(ColorTextMuted).Render(PreviewReadyText)
		body = lipgloss.Place(innerWidth, bodyHeight, lipgloss.Center, lipgloss.Center,
			lipgloss.JoinVertical(lipgloss.Center,
				CardTitleStyle.Render(PreviewReadyTitle),
				"",
				text,
				"",
				HeaderRunStyle.Render(" "+PreviewReadyAction+" ")))
	default:
		body = p.viewport.View()
	}

	footer := ansi.Truncate(MutedStyle.Render("🔒 "+PreviewFooterText), innerWidth, "…")

	return PanelStyle.
		Width(p.width).
		Height(p.height).
		MaxHeight(p.height).
		Render(title + "\n" + body + "\n" + footer)
}

func looksLikeJSON(s string) bool {
	s = strings.TrimSpace(s)
	return strings.HasPrefix(s, "{") || strings.HasPrefix(s, "[")
}

func looksLikeHTML(s string) bool {
	s = strings.TrimSpace(s)
	return strings.HasPrefix(s, "<")
}

var blankRuns = regexp.MustCompile(`\n{3,}`)

// renderPreviewContent turns served content into terminal text: markup is
// flattened to its text, JSON and plain text pass through.
func renderPreviewContent(content string) string {
	content = ansi.Strip(content)
	if !looksLikeHTML(content) {
		return strings.TrimSpace(content)
	}

	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return strings.TrimSpace(content)
	}
	var sb strings.Builder
	extractText(doc, &sb, 0)
	return strings.TrimSpace(blankRuns.ReplaceAllString(sb.String(), "\n\n"))
}

func extractText(n *html.Node, sb *strings.Builder, depth int) {
	if depth > maxHTMLDepth {
		return
	}

	switch n.Type {
	case html.TextNode:
		if text := strings.Join(strings.Fields(n.Data), " "); text != "" {
			sb.WriteString(text)
			sb.WriteString(" ")
		}
	case html.ElementNode:
		switch n.Data {
		case "script", "style", "noscript", "head":
			return
		case "h1", "h2", "h3", "h4", "h5", "h6":
			sb.WriteString("\n\n")
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				var h strings.Builder
				extractText(c, &h, depth+1)
				sb.WriteString(strings.ToUpper(h.String()))
			}
			sb.WriteString("\n\n")
			return
		case "p", "div", "section", "main", "table", "ul", "ol":
			sb.WriteString("\n\n")
		case "br", "tr":
			sb.WriteString("\n")
		case "li":
			sb.WriteString("\n• ")
		case "td", "th":
			sb.WriteString(" | ")
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		extractText(c, sb, depth+1)
	}
}
