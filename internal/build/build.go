// Package build turns a project snapshot into a build result by asking a
// remote text-generation service to play compiler and runtime.
package build

import (
	"context"
	"fmt"
	"strings"

	"github.com/zhubert/dotide/internal/project"
)

// Diagnostic is one compiler error.
type Diagnostic struct {
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Message string `json:"message"`
	Code    string `json:"code"`
	File    string `json:"file"`
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s(%d,%d): error %s: %s", d.File, d.Line, d.Column, d.Code, d.Message)
}

// Result is the outcome of one build. It is never mutated; the next build
// replaces it.
type Result struct {
	Success        bool
	Output         string
	Errors         []Diagnostic
	PreviewContent string
}

// Failure constants used when the remote call cannot produce a result.
const (
	FailureOutput  = "Internal Compiler Error: Could not connect to sandbox runtime."
	FailureMessage = "Sandbox communication failure"
	FailureCode    = "IDE001"
	FailureFile    = "System"
)

// FailedResult is returned for every transport, timeout or schema failure.
func FailedResult() Result {
	return Result{
		Success: false,
		Output:  FailureOutput,
		Errors: []Diagnostic{{
			Line:    0,
			Column:  0,
			Message: FailureMessage,
			Code:    FailureCode,
			File:    FailureFile,
		}},
	}
}

// Compiler builds a project. Implementations never return an error: every
// failure is folded into the Result.
type Compiler interface {
	Build(ctx context.Context, p *project.Project) Result
	Name() string
}

// Request is the serialized form of a project sent to the compiler.
type Request struct {
	Template project.TemplateKind
	Files    []project.SourceFile
}

// NewRequest captures every file of p with its full path.
func NewRequest(p *project.Project) Request {
	return Request{Template: p.Template, Files: p.SourceFiles()}
}

// Sources renders the files as "--- FILE: <path> ---" blocks.
func (r Request) Sources() string {
	blocks := make([]string, 0, len(r.Files))
	for _, f := range r.Files {
		blocks = append(blocks, fmt.Sprintf("--- FILE: %s ---\n%s", f.Path, f.Content))
	}
	return strings.Join(blocks, "\n\n")
}

// Prompt is the full instruction sent to the model.
func (r Request) Prompt() string {
	var b strings.Builder
	b.WriteString("You are a high-performance .NET 7 Compiler and Runtime Simulator.\n")
	b.WriteString("Given the following C# / ASP.NET project files, \"compile\" them and provide the output of 'dotnet run'.\n\n")
	b.WriteString("If it's a Console App, provide the standard output.\n")
	b.WriteString("If it's an ASP.NET app (Web API or MVC), simulate a basic HTML or JSON response as if visiting the root URL.\n\n")
	fmt.Fprintf(&b, "Project Type: %s\n\n", r.Template)
	b.WriteString("Files:\n")
	b.WriteString(r.Sources())
	b.WriteString("\n\nRespond in JSON format.\n")
	return b.String()
}
