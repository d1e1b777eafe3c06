// Package scenarios contains the built-in demo scenarios.
package scenarios

import (
	"slices"
	"time"

	"github.com/zhubert/dotide/internal/activity"
	"github.com/zhubert/dotide/internal/build"
	"github.com/zhubert/dotide/internal/demo"
	"github.com/zhubert/dotide/internal/project"
)

// All returns every built-in scenario in listing order.
func All() []*demo.Scenario {
	return []*demo.Scenario{Overview(), WebAPI(), Layout()}
}

// Get returns a fresh copy of the named scenario, or nil.
func Get(name string) *demo.Scenario {
	i := slices.IndexFunc(All(), func(s *demo.Scenario) bool { return s.Name == name })
	if i < 0 {
		return nil
	}
	return All()[i]
}

// Overview walks from the welcome screen through editing, a failing build,
// a fix and the stats dashboard.
func Overview() *demo.Scenario {
	return &demo.Scenario{
		Name:        "overview",
		Description: "Create a console app, break and fix the build, view stats",
		Width:       120,
		Height:      40,
		Setup:       &demo.ScenarioSetup{Logs: pastWeek()},
		Steps: []demo.Step{
			demo.Annotate("Pick a project template"),
			demo.Wait(1500 * time.Millisecond),
			demo.Key("right"),
			demo.Key("left"),
			demo.KeyWithDesc("enter", "Create the console app"),
			demo.Wait(time.Second),

			demo.Annotate("Edit Program.cs"),
			demo.TypeWithDesc("// greet the user\n", "Add a comment"),
			demo.Wait(500 * time.Millisecond),

			demo.Annotate("A build with a mistake"),
			demo.BuildResult(build.Result{
				Success: false,
				Output:  "Build FAILED.",
				Errors: []build.Diagnostic{{
					Line:    10,
					Column:  46,
					Message: "; expected",
					Code:    "CS1002",
					File:    "Program.cs",
				}},
			}),
			demo.Wait(1500 * time.Millisecond),

			demo.Annotate("Fixed and running"),
			demo.BuildResult(build.Result{
				Success: true,
				Output:  "Hello, World!\nCurrent Time: 3/14/2025 9:31:02 AM",
			}),
			demo.Wait(1500 * time.Millisecond),

			demo.Annotate("Where the time went"),
			demo.KeyWithDesc("ctrl+g", "Open the dashboard"),
			demo.Wait(2 * time.Second),
			demo.Key("esc"),
			demo.Wait(500 * time.Millisecond),
		},
	}
}

// WebAPI builds a web project so the preview column shows the response.
func WebAPI() *demo.Scenario {
	return &demo.Scenario{
		Name:        "webapi",
		Description: "Build a Web API project and inspect the preview",
		Width:       140,
		Height:      40,
		Setup:       &demo.ScenarioSetup{Template: project.WebAPI},
		Steps: []demo.Step{
			demo.Wait(time.Second),
			demo.KeyWithDesc("ctrl+e", "Focus the explorer"),
			demo.Key("down"),
			demo.Key("right"),
			demo.Key("down"),
			demo.KeyWithDesc("enter", "Open WeatherController.cs"),
			demo.Wait(time.Second),

			demo.Annotate("The preview shows the endpoint's response"),
			demo.BuildResult(build.Result{
				Success:        true,
				Output:         "info: Microsoft.Hosting.Lifetime[14]\n      Now listening on: http://localhost:5000",
				PreviewContent: `{"message":"Hello from Gemini .NET Sandbox!","temp":25}`,
			}),
			demo.Wait(2 * time.Second),
		},
	}
}

// Layout resizes each split by dragging its boundary.
func Layout() *demo.Scenario {
	return &demo.Scenario{
		Name:        "layout",
		Description: "Resize the explorer, output and preview panels",
		Width:       140,
		Height:      40,
		Setup:       &demo.ScenarioSetup{Template: project.MVC},
		Steps: []demo.Step{
			demo.Wait(time.Second),
			demo.Annotate("Drag the explorer border"),
			demo.Drag(29, 12, 40, 12),
			demo.Annotate("Drag the output panel up"),
			demo.Drag(60, 29, 60, 20),
			demo.Annotate("Drag the preview border"),
			demo.Drag(100, 12, 80, 12),
			demo.Wait(time.Second),
		},
	}
}

// pastWeek is a seeded activity log so the dashboard is not empty.
func pastWeek() []activity.Entry {
	var logs []activity.Entry
	for day := 6; day >= 1; day-- {
		at := demo.DefaultStart.AddDate(0, 0, -day)
		logs = append(logs,
			activity.Entry{Timestamp: at, Kind: activity.KindEditing, DurationSeconds: 600 + day*120, ProjectName: "MyConsoleApp"},
			activity.Entry{Timestamp: at.Add(time.Hour), Kind: activity.KindBuilding, DurationSeconds: 2 * day, ProjectName: "MyConsoleApp"},
			activity.Entry{Timestamp: at.Add(2 * time.Hour), Kind: activity.KindRunning, DurationSeconds: 5 * day, ProjectName: "MyWebApi"},
		)
	}
	return logs
}
