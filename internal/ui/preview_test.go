package ui

import (
	"strings"
	"testing"
)

func newTestPreview() *Preview {
	p := NewPreview()
	p.SetSize(50, 20)
	return p
}

func TestPreview_Idle(t *testing.T) {
	p := newTestPreview()

	view := stripANSI(p.View())
	for _, want := range []string{"APP PREVIEW", PreviewReadyTitle, PreviewReadyAction, "127.0.0.1:5001"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected idle view to contain %q", want)
		}
	}
}

func TestPreview_Loading(t *testing.T) {
	p := newTestPreview()
	p.SetContent(`{"ok":true}`)
	p.SetLoading(true)

	view := stripANSI(p.View())
	if !strings.Contains(view, PreviewLoadingText) {
		t.Error("expected the deploy placeholder while loading")
	}
	if strings.Contains(view, `"ok"`) {
		t.Error("old content should be hidden while loading")
	}
}

func TestPreview_JSON(t *testing.T) {
	p := newTestPreview()
	p.SetContent(`[{"id":1,"name":"Widget"}]`)

	if p.Content() != `[{"id":1,"name":"Widget"}]` {
		t.Errorf("unexpected raw content %q", p.Content())
	}
	if !strings.Contains(stripANSI(p.View()), `"Widget"`) {
		t.Error("expected JSON in the view")
	}
}

func TestPreview_HTML(t *testing.T) {
	p := newTestPreview()
	p.SetContent(`<!DOCTYPE html><html><head><title>Home</title><style>body{}</style></head>
<body><h1>Welcome</h1><p>Learn about <a href="#">ASP.NET</a>.</p>
<script>alert(1)</script><ul><li>One</li><li>Two</li></ul></body></html>`)

	got := p.Rendered()
	for _, want := range []string{"WELCOME", "Learn about ASP.NET", "• One", "• Two"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in %q", want, got)
		}
	}
	for _, unwanted := range []string{"alert", "body{}", "<p>", "Home"} {
		if strings.Contains(got, unwanted) {
			t.Errorf("did not expect %q in %q", unwanted, got)
		}
	}
}

func TestRenderPreviewContent_PlainText(t *testing.T) {
	if got := renderPreviewContent("  Hello World!  \n"); got != "Hello World!" {
		t.Errorf("expected trimmed text, got %q", got)
	}
	if got := renderPreviewContent("\x1b[31mred\x1b[0m"); got != "red" {
		t.Errorf("expected escapes stripped, got %q", got)
	}
}

func TestRenderPreviewContent_CollapsesBlankLines(t *testing.T) {
	got := renderPreviewContent("<div><p>a</p><p></p><p></p><p>b</p></div>")
	if strings.Contains(got, "\n\n\n") {
		t.Errorf("expected blank runs collapsed, got %q", got)
	}
}

func TestPreview_WrapsToWidth(t *testing.T) {
	p := newTestPreview()
	p.SetContent(strings.Repeat("word ", 40))

	if lines := strings.Count(p.View(), "\n") + 1; lines != 20 {
		t.Errorf("expected 20 lines, got %d", lines)
	}
}

func TestPreview_Scrolls(t *testing.T) {
	p := newTestPreview()
	var lines []string
	for range 60 {
		lines = append(lines, "row")
	}
	p.SetContent(strings.Join(lines, "\n") + "\nlast")

	if strings.Contains(stripANSI(p.View()), "last") {
		t.Fatal("last line should start off screen")
	}
	for range 5 {
		p.Update(keyPress("pgdown"))
	}
	if !strings.Contains(stripANSI(p.View()), "last") {
		t.Error("expected paging to reach the end")
	}
}

func TestPreview_Click(t *testing.T) {
	p := newTestPreview()

	tests := []struct {
		name    string
		content string
		loading bool
		x, y    int
		run     bool
	}{
		{"reload glyph", `{"ok":true}`, false, 1, 1, true},
		{"title text", `{"ok":true}`, false, 10, 1, false},
		{"idle placeholder", "", false, 20, 8, true},
		{"page body", `{"ok":true}`, false, 20, 8, false},
		{"border", "", false, 20, 0, false},
		{"while loading", "", true, 1, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p.SetContent(tt.content)
			p.SetLoading(tt.loading)
			cmd := p.Click(tt.x, tt.y)
			if (cmd != nil) != tt.run {
				t.Fatalf("Click(%d, %d) returned cmd=%v, want run=%v", tt.x, tt.y, cmd != nil, tt.run)
			}
			if cmd != nil {
				if _, ok := cmd().(RunRequestedMsg); !ok {
					t.Errorf("expected RunRequestedMsg, got %T", cmd())
				}
			}
		})
	}
}
