package demo

import (
	"testing"
	"time"

	"github.com/zhubert/dotide/internal/build"
	"github.com/zhubert/dotide/internal/project"
	"github.com/zhubert/dotide/internal/ui"
)

func TestScenarioValidate(t *testing.T) {
	tests := []struct {
		name      string
		scenario  *Scenario
		wantErr   bool
		errField  string
		wantWidth int
	}{
		{
			name: "valid scenario",
			scenario: &Scenario{
				Name:   "test",
				Width:  100,
				Height: 30,
				Setup:  DefaultSetup(),
			},
			wantWidth: 100,
		},
		{
			name:     "missing name",
			scenario: &Scenario{Description: "Test scenario"},
			wantErr:  true,
			errField: "Name",
		},
		{
			name:      "default width and height",
			scenario:  &Scenario{Name: "test"},
			wantWidth: 120,
		},
		{
			name: "unknown template",
			scenario: &Scenario{
				Name:  "test",
				Setup: &ScenarioSetup{Template: "blazor"},
			},
			wantErr:  true,
			errField: "Setup.Template",
		},
		{
			name: "key step without key",
			scenario: &Scenario{
				Name:  "test",
				Steps: []Step{{Type: StepKey}},
			},
			wantErr:  true,
			errField: "Steps",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.scenario.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				verr, ok := err.(*ValidationError)
				if !ok {
					t.Fatalf("expected *ValidationError, got %T", err)
				}
				if verr.Field != tt.errField {
					t.Errorf("error field = %q, want %q", verr.Field, tt.errField)
				}
				return
			}
			if tt.wantWidth != 0 && tt.scenario.Width != tt.wantWidth {
				t.Errorf("Width = %d, want %d", tt.scenario.Width, tt.wantWidth)
			}
			if tt.scenario.Setup == nil || tt.scenario.Setup.Start.IsZero() {
				t.Error("expected setup defaults to be filled in")
			}
		})
	}
}

func TestStepBuilders(t *testing.T) {
	tests := []struct {
		name string
		step Step
		want StepType
	}{
		{"wait", Wait(time.Second), StepWait},
		{"key", Key("enter"), StepKey},
		{"key with desc", KeyWithDesc("tab", "next panel"), StepKey},
		{"type", Type("hi"), StepTypeText},
		{"type with desc", TypeWithDesc("hi", "greeting"), StepTypeText},
		{"click", Click(3, 4), StepClick},
		{"drag", Drag(1, 2, 3, 4), StepDrag},
		{"build", Build(), StepBuild},
		{"build result", BuildResult(build.FailedResult()), StepBuild},
		{"annotate", Annotate("note"), StepAnnotate},
		{"capture", Capture(), StepCapture},
		{"flash", Flash("saved", ui.FlashSuccess), StepFlash},
	}
	for _, tt := range tests {
		if tt.step.Type != tt.want {
			t.Errorf("%s: Type = %v, want %v", tt.name, tt.step.Type, tt.want)
		}
	}

	if d := Drag(1, 2, 3, 4); d.X != 1 || d.Y != 2 || d.ToX != 3 || d.ToY != 4 {
		t.Errorf("Drag coordinates = %+v", d)
	}
	if r := BuildResult(build.FailedResult()); r.Result == nil || r.Result.Success {
		t.Error("expected BuildResult to carry the failed result")
	}
	if Build().Result != nil {
		t.Error("expected Build to use the canned run")
	}
}

func TestDefaultSetup(t *testing.T) {
	s := DefaultSetup()
	if s.Template != "" {
		t.Errorf("expected welcome screen start, got template %q", s.Template)
	}
	if !s.Start.Equal(DefaultStart) {
		t.Errorf("Start = %v, want %v", s.Start, DefaultStart)
	}

	withProject := &Scenario{Name: "x", Setup: &ScenarioSetup{Template: project.Console}}
	if err := withProject.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
