package notification

import (
	"errors"
	"testing"
)

// mockNotification records calls to the notification function
type mockNotification struct {
	calls []struct {
		title   string
		message string
		icon    any
	}
	err error
}

func (m *mockNotification) notify(title, message string, icon any) error {
	m.calls = append(m.calls, struct {
		title   string
		message string
		icon    any
	}{title, message, icon})
	return m.err
}

// stubNotify swaps the backend and returns a func restoring it.
func stubNotify(fn notifyFunc) func() {
	prev := notify
	notify = fn
	return func() { notify = prev }
}

func TestSendNotification(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		message     string
		mockErr     error
		expectError bool
	}{
		{name: "successful notification", title: "Build", message: "done"},
		{name: "notification error", title: "Build", message: "done", mockErr: errors.New("dbus unavailable"), expectError: true},
		{name: "empty title", title: "", message: "Message with empty title"},
		{name: "unicode content", title: "ビルド", message: "完了 ✓"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockNotification{err: tt.mockErr}
			defer stubNotify(mock.notify)()

			err := send(tt.title, tt.message)

			if tt.expectError && err == nil {
				t.Error("expected error but got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if len(mock.calls) != 1 {
				t.Fatalf("expected 1 call, got %d", len(mock.calls))
			}
			call := mock.calls[0]
			if call.title != tt.title {
				t.Errorf("title = %q, want %q", call.title, tt.title)
			}
			if call.message != tt.message {
				t.Errorf("message = %q, want %q", call.message, tt.message)
			}
		})
	}
}

func TestBuildFinished(t *testing.T) {
	tests := []struct {
		name    string
		project string
		success bool
		want    string
	}{
		{"success", "MyConsoleApp", true, "MyConsoleApp: build succeeded"},
		{"failure", "MyMvcApp", false, "MyMvcApp: build failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockNotification{}
			defer stubNotify(mock.notify)()

			if err := BuildFinished(tt.project, tt.success); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(mock.calls) != 1 {
				t.Fatalf("expected 1 call, got %d", len(mock.calls))
			}
			if mock.calls[0].title != AppName {
				t.Errorf("title = %q, want %q", mock.calls[0].title, AppName)
			}
			if mock.calls[0].message != tt.want {
				t.Errorf("message = %q, want %q", mock.calls[0].message, tt.want)
			}
		})
	}
}
