package ui

import (
	"bytes"
	"path"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// LanguageFor maps a file name to its editor language.
func LanguageFor(name string) string {
	switch strings.ToLower(path.Ext(name)) {
	case ".cs":
		return "csharp"
	case ".json":
		return "json"
	case ".cshtml":
		return "razor"
	case ".csproj", ".xml":
		return "xml"
	default:
		return "plaintext"
	}
}

// lexerName maps an editor language to a chroma lexer.
func lexerName(language string) string {
	switch language {
	case "razor":
		// chroma has no Razor lexer; the markup is HTML
		return "html"
	case "csharp":
		return "c#"
	default:
		return language
	}
}

// highlightCode applies syntax highlighting to code using chroma
func highlightCode(code, language, styleName string) string {
	lexer := lexers.Get(lexerName(language))
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}

	return buf.String()
}
