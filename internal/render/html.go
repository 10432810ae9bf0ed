package render

import (
	"bytes"
	_ "embed"
	"html/template"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

//go:embed template.html
var pageTemplateHTML string

var pageTemplate = template.Must(template.New("page").Parse(pageTemplateHTML))

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// htmlEscaper escapes the three characters that break embedding raw text
// in HTML. Each occurrence is replaced exactly once.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// markupExtensions are the file extensions handed to the markdown
// converter instead of the escaped <pre> fallback.
var markupExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
	".mdown":    true,
}

type page struct {
	Title string
	Body  template.HTML
}

// HTML renders content as a standalone HTML document titled after the
// file. Markdown files are converted with goldmark; everything else is
// escaped and wrapped in a preformatted block.
func HTML(content, path string) string {
	body := htmlBody(content, path)
	var b bytes.Buffer
	if err := pageTemplate.Execute(&b, page{
		Title: filepath.Base(path),
		Body:  template.HTML(body),
	}); err != nil {
		// The template is static and the data plain; execution cannot
		// fail at runtime, but fall back to the bare body regardless.
		return body
	}
	return b.String()
}

func htmlBody(content, path string) string {
	if markupExtensions[strings.ToLower(filepath.Ext(path))] {
		var buf bytes.Buffer
		if err := markdown.Convert([]byte(content), &buf); err == nil {
			return buf.String()
		}
	}
	return "<pre>" + htmlEscaper.Replace(content) + "</pre>"
}
