package build

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"

	"github.com/zhubert/dotide/internal/errors"
	"github.com/zhubert/dotide/internal/logger"
	"github.com/zhubert/dotide/internal/project"
)

// contentGenerator is the subset of *genai.Models the compiler uses.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiCompiler asks a Gemini model to simulate dotnet build and run.
type GeminiCompiler struct {
	models  contentGenerator
	model   string
	timeout time.Duration
}

// NewGeminiCompiler creates a compiler backed by the Gemini API.
func NewGeminiCompiler(ctx context.Context, apiKey, model string, timeout time.Duration) (*GeminiCompiler, error) {
	if apiKey == "" {
		return nil, errors.E(errors.Op("build.NewGeminiCompiler"), errors.KindConfig, "no API key")
	}
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errors.E(errors.Op("build.NewGeminiCompiler"), errors.KindTransport, err)
	}
	return newGeminiCompiler(cli.Models, model, timeout), nil
}

func newGeminiCompiler(models contentGenerator, model string, timeout time.Duration) *GeminiCompiler {
	return &GeminiCompiler{models: models, model: model, timeout: timeout}
}

func (g *GeminiCompiler) Name() string { return "Gemini:" + g.model }

// responseSchema constrains the reply to the Result shape.
func responseSchema() *genai.Schema {
	str := func(desc string) *genai.Schema {
		return &genai.Schema{Type: genai.TypeString, Description: desc}
	}
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"success":           {Type: genai.TypeBoolean},
			"output":            str("Console output or build logs"),
			"previewUrlContent": str("If web app, the HTML/JSON response content"),
			"errors": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"line":    {Type: genai.TypeInteger},
						"column":  {Type: genai.TypeInteger},
						"message": {Type: genai.TypeString},
						"code":    {Type: genai.TypeString},
						"file":    {Type: genai.TypeString},
					},
				},
			},
		},
		Required: []string{"success", "output"},
	}
}

// Build sends the project and maps the reply. Every failure yields FailedResult.
func (g *GeminiCompiler) Build(ctx context.Context, p *project.Project) Result {
	log := logger.WithComponent("build").With("model", g.model, "project", p.Name)

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	req := NewRequest(p)
	prompt := req.Prompt()
	log.Debug("sending build request", "files", len(req.Files), "bytes", len(prompt))

	start := time.Now()
	raw, err := g.generate(ctx, prompt)
	if err != nil {
		log.Warn("build request failed", "error", err, "kind", errors.GetKind(err), "elapsed", time.Since(start))
		return FailedResult()
	}

	res, err := ParseResponse(raw)
	if err != nil {
		log.Warn("malformed build response", "error", err, "bytes", len(raw))
		return FailedResult()
	}
	log.Info("build completed", "success", res.Success, "errors", len(res.Errors), "elapsed", time.Since(start))
	return res
}

func (g *GeminiCompiler) generate(ctx context.Context, prompt string) ([]byte, error) {
	const op errors.Op = "build.GeminiCompiler.generate"

	resp, err := g.models.GenerateContent(ctx, g.model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: prompt}}}},
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   responseSchema(),
		},
	)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, errors.E(op, errors.KindTimeout, err)
		}
		return nil, errors.E(op, errors.KindTransport, err)
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, errors.E(op, errors.KindSchema, fmt.Errorf("no candidates"))
	}
	return []byte(resp.Candidates[0].Content.Parts[0].Text), nil
}
