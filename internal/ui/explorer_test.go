package ui

import (
	"strings"
	"testing"

	"github.com/zhubert/dotide/internal/project"
)

func newTestProject(t *testing.T, kind project.TemplateKind) *project.Project {
	t.Helper()
	p, err := project.New(kind)
	if err != nil {
		t.Fatalf("project.New(%q): %v", kind, err)
	}
	return p
}

func newTestExplorer(t *testing.T, kind project.TemplateKind) *Explorer {
	t.Helper()
	e := NewExplorer()
	e.SetSize(30, 20)
	e.SetFocused(true)
	e.SetProject(newTestProject(t, kind))
	return e
}

func rowNames(e *Explorer) []string {
	var names []string
	for _, r := range e.Rows() {
		names = append(names, r.Node.Name)
	}
	return names
}

func TestExplorer_OnlyRootOpenInitially(t *testing.T) {
	e := newTestExplorer(t, project.WebAPI)

	got := strings.Join(rowNames(e), ",")
	if got != "MyWebApi,Program.cs,Controllers" {
		t.Errorf("unexpected rows %q", got)
	}
	if e.IsOpen("controller-dir") {
		t.Error("Controllers should start closed")
	}
}

func TestExplorer_ToggleFolder(t *testing.T) {
	e := newTestExplorer(t, project.WebAPI)

	e.Toggle("controller-dir")
	if got := len(e.Rows()); got != 4 {
		t.Fatalf("expected 4 rows after opening Controllers, got %d", got)
	}

	e.Toggle("controller-dir")
	if got := len(e.Rows()); got != 3 {
		t.Errorf("expected 3 rows after closing Controllers, got %d", got)
	}
}

func TestExplorer_ToggleFileIsNoop(t *testing.T) {
	e := newTestExplorer(t, project.Console)

	e.Toggle("prog")
	if e.IsOpen("prog") {
		t.Error("files cannot be opened as folders")
	}
}

func TestExplorer_EnterOnFileSelects(t *testing.T) {
	e := newTestExplorer(t, project.Console)

	e.Update(keyPress("down"))
	_, cmd := e.Update(keyPress("enter"))
	if cmd == nil {
		t.Fatal("expected a selection command")
	}
	msg, ok := cmd().(FileSelectedMsg)
	if !ok {
		t.Fatalf("expected FileSelectedMsg, got %T", cmd())
	}
	if msg.ID != "prog" {
		t.Errorf("expected prog, got %q", msg.ID)
	}
}

func TestExplorer_EnterOnFolderToggles(t *testing.T) {
	e := newTestExplorer(t, project.MVC)

	// root, Program.cs, Controllers, Views
	e.Update(keyPress("down"))
	e.Update(keyPress("down"))
	_, cmd := e.Update(keyPress("space"))
	if cmd != nil {
		t.Error("activating a folder should not select anything")
	}
	if !e.IsOpen("controllers") {
		t.Error("expected Controllers to open")
	}
}

func TestExplorer_LeftJumpsToParent(t *testing.T) {
	e := newTestExplorer(t, project.Console)

	e.Update(keyPress("down"))
	e.Update(keyPress("left"))
	if e.Cursor() != 0 {
		t.Errorf("expected cursor on the root, got %d", e.Cursor())
	}

	// Left on the open root collapses it
	e.Update(keyPress("left"))
	if e.IsOpen(project.RootID) {
		t.Error("expected root to collapse")
	}
}

func TestExplorer_IgnoresKeysWhenBlurred(t *testing.T) {
	e := newTestExplorer(t, project.Console)
	e.SetFocused(false)

	e.Update(keyPress("down"))
	if e.Cursor() != 0 {
		t.Error("blurred explorer should ignore keys")
	}
}

func TestExplorer_Click(t *testing.T) {
	e := newTestExplorer(t, project.Console)

	// Border, title and root name sit above the first row
	if e.RowAt(0) != -1 || e.RowAt(1) != -1 || e.RowAt(2) != -1 {
		t.Error("header rows should not map to tree rows")
	}
	if e.RowAt(3) != 0 {
		t.Errorf("expected first row at y=3, got %d", e.RowAt(3))
	}

	cmd := e.Click(4)
	if cmd == nil {
		t.Fatal("expected click on Program.cs to select it")
	}
	if msg := cmd().(FileSelectedMsg); msg.ID != "prog" {
		t.Errorf("expected prog, got %q", msg.ID)
	}

	if e.Click(15) != nil {
		t.Error("click below the rows should do nothing")
	}
}

func TestExplorer_SetProjectKeepsOpenFoldersForSameProject(t *testing.T) {
	e := newTestExplorer(t, project.WebAPI)
	p := e.project

	e.Toggle("controller-dir")
	e.SetProject(p.Edit("prog", "// edited"))
	if !e.IsOpen("controller-dir") {
		t.Error("editing a file should not collapse folders")
	}

	e.SetProject(newTestProject(t, project.WebAPI))
	if e.IsOpen("controller-dir") {
		t.Error("a new project should reset open folders")
	}
}

func TestExplorer_SetActive(t *testing.T) {
	e := newTestExplorer(t, project.Console)

	e.SetActive("csproj")
	if e.ActiveID() != "csproj" {
		t.Errorf("expected csproj active, got %q", e.ActiveID())
	}
	if e.Cursor() != 2 {
		t.Errorf("expected cursor on row 2, got %d", e.Cursor())
	}
}

func TestExplorer_View(t *testing.T) {
	e := newTestExplorer(t, project.Console)

	view := stripANSI(e.View())
	for _, want := range []string{"EXPLORER", "MYCONSOLEAPP", "Program.cs", "MAIN BRANCH"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
	if lines := strings.Count(e.View(), "\n") + 1; lines != 20 {
		t.Errorf("expected 20 lines, got %d", lines)
	}
}

func TestExplorer_NilProject(t *testing.T) {
	e := NewExplorer()
	e.SetSize(30, 10)
	e.SetProject(nil)

	if len(e.Rows()) != 0 {
		t.Error("expected no rows without a project")
	}
	if _, cmd := e.Update(keyPress("enter")); cmd != nil {
		t.Error("expected no command without a project")
	}
}
