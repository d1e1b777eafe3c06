package build

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/zhubert/dotide/internal/errors"
)

type wireDiagnostic struct {
	Line    *int    `json:"line"`
	Column  *int    `json:"column"`
	Message *string `json:"message"`
	Code    *string `json:"code"`
	File    *string `json:"file"`
}

type wireResult struct {
	Success           *bool            `json:"success"`
	Output            *string          `json:"output"`
	PreviewURLContent string           `json:"previewUrlContent"`
	Errors            []wireDiagnostic `json:"errors"`
}

// ParseResponse decodes the model's JSON reply. success and output are
// required; a missing errors array means no errors. Any violation returns a
// KindSchema error.
func ParseResponse(data []byte) (Result, error) {
	const op errors.Op = "build.ParseResponse"

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return Result{}, errors.E(op, errors.KindSchema, "empty response")
	}

	var w wireResult
	if err := json.Unmarshal(data, &w); err != nil {
		return Result{}, errors.E(op, errors.KindSchema, err)
	}
	if w.Success == nil {
		return Result{}, errors.E(op, errors.KindSchema, "missing required field \"success\"")
	}
	if w.Output == nil {
		return Result{}, errors.E(op, errors.KindSchema, "missing required field \"output\"")
	}

	res := Result{
		Success:        *w.Success,
		Output:         *w.Output,
		PreviewContent: w.PreviewURLContent,
		Errors:         []Diagnostic{},
	}
	for i, d := range w.Errors {
		if d.Message == nil {
			return Result{}, errors.E(op, errors.KindSchema, fmt.Errorf("errors[%d]: missing message", i))
		}
		res.Errors = append(res.Errors, Diagnostic{
			Line:    deref(d.Line),
			Column:  deref(d.Column),
			Message: *d.Message,
			Code:    deref(d.Code),
			File:    deref(d.File),
		})
	}
	return res, nil
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
