package build

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/zhubert/dotide/internal/project"
)

// MockCompiler is an offline Compiler. It returns queued results in order and
// falls back to a canned successful run once the queue is empty.
//
// It backs --demo mode and the app tests.
type MockCompiler struct {
	mu sync.Mutex

	queue []Result
	calls int
	last  *project.Project

	// Delay simulates network latency.
	Delay time.Duration

	// Gate, when set, blocks Build until a value is received or ctx ends.
	Gate chan struct{}
}

// NewMockCompiler returns a mock that will return results in order.
func NewMockCompiler(results ...Result) *MockCompiler {
	return &MockCompiler{queue: results}
}

func (m *MockCompiler) Name() string { return "offline" }

// Queue appends results to return from later builds.
func (m *MockCompiler) Queue(results ...Result) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, results...)
}

// Calls returns how many builds were requested.
func (m *MockCompiler) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// LastProject returns the snapshot passed to the most recent build.
func (m *MockCompiler) LastProject() *project.Project {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last
}

func (m *MockCompiler) Build(ctx context.Context, p *project.Project) Result {
	m.mu.Lock()
	m.calls++
	m.last = p
	var res *Result
	if len(m.queue) > 0 {
		r := m.queue[0]
		m.queue = m.queue[1:]
		res = &r
	}
	gate, delay := m.Gate, m.Delay
	m.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return FailedResult()
		}
	}
	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return FailedResult()
		}
	}

	if res != nil {
		return *res
	}
	return cannedResult(p)
}

// cannedResult fakes a plausible run without any remote call.
func cannedResult(p *project.Project) Result {
	var out strings.Builder
	fmt.Fprintf(&out, "Determining projects to restore...\n")
	fmt.Fprintf(&out, "  %s -> bin/Debug/net7.0/%s.dll\n", p.Name, p.Name)
	fmt.Fprintf(&out, "Build succeeded.\n    0 Warning(s)\n    0 Error(s)\n\n")

	res := Result{Success: true, Errors: []Diagnostic{}}
	switch p.Template {
	case project.WebAPI:
		out.WriteString("info: Microsoft.Hosting.Lifetime[14]\n      Now listening on: http://localhost:5000\n")
		res.PreviewContent = `{"message":"Hello from Gemini .NET Sandbox!","temp":25}`
	case project.MVC:
		out.WriteString("info: Microsoft.Hosting.Lifetime[14]\n      Now listening on: http://localhost:5000\n")
		res.PreviewContent = "<h1 class=\"display-4\">Welcome to .NET Web IDE</h1>"
	default:
		out.WriteString("Hello, World!\n")
		fmt.Fprintf(&out, "Current Time: %s\n", time.Now().Format("1/2/2006 3:04:05 PM"))
	}
	res.Output = out.String()
	return res
}
