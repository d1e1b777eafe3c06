package ui

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"

	"github.com/zhubert/dotide/internal/ui/modals"
)

func TestNewModal(t *testing.T) {
	modal := NewModal()

	if modal == nil {
		t.Fatal("NewModal() returned nil")
	}

	if modal.IsVisible() {
		t.Error("New modal should not be visible")
	}

	if modal.State != nil {
		t.Error("New modal should have nil state")
	}
}

func TestModal_ShowHide(t *testing.T) {
	modal := NewModal()

	modal.Show(modals.NewConfirmCloseState("MyConsoleApp"))

	if !modal.IsVisible() {
		t.Error("Modal should be visible after Show")
	}

	modal.Hide()

	if modal.IsVisible() {
		t.Error("Modal should not be visible after Hide")
	}
}

func TestModal_Error(t *testing.T) {
	modal := NewModal()
	modal.Show(modals.NewConfirmCloseState("MyConsoleApp"))

	modal.SetError("could not save")
	if modal.GetError() != "could not save" {
		t.Errorf("Expected error to be set, got %q", modal.GetError())
	}

	if !strings.Contains(modal.View(100, 30), "could not save") {
		t.Error("Expected error in modal view")
	}

	// Show clears the error
	modal.Show(modals.NewConfirmCloseState("MyConsoleApp"))
	if modal.GetError() != "" {
		t.Error("Show should clear the error")
	}
}

func TestModal_View(t *testing.T) {
	modal := NewModal()

	if modal.View(100, 30) != "" {
		t.Error("Hidden modal should render nothing")
	}

	modal.Show(modals.NewConfirmCloseState("MyWebApiApp"))
	view := modal.View(100, 30)

	if !strings.Contains(view, "Close Project?") {
		t.Error("Expected modal title in view")
	}
	if w := lipgloss.Width(view); w != 100 {
		t.Errorf("Expected modal to be placed across the screen width, got %d", w)
	}
}

func TestModal_UpdateDelegates(t *testing.T) {
	modal := NewModal()
	state := modals.NewConfirmCloseState("MyConsoleApp")
	modal.Show(state)

	modal.Update(keyPress("up"))

	if !state.Confirmed() {
		t.Error("Expected key to reach the modal state")
	}
}

func TestRefreshModalStyles(t *testing.T) {
	defer SetTheme(DefaultTheme)

	SetTheme(ThemeDracula)

	if modals.ModalWidth != ModalWidth {
		t.Errorf("Expected modal width %d, got %d", ModalWidth, modals.ModalWidth)
	}
	if modals.ColorPrimary != ColorAccent {
		t.Error("Expected modal primary color to follow the theme accent")
	}
}
