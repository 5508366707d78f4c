package render

import (
	"bytes"
	"fmt"
	"html"
	"html/template"

	"github.com/de-tools/report-relay/pkg/models/domain"
)

// htmlShell wraps the assembled HTML body with the fixed stylesheet the
// table and chart fragments reference.
var htmlShell = template.Must(template.New("shell").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
.rr-table { border-collapse: collapse; }
.rr-table th, .rr-table td { border: 1px solid #ccc; padding: 4px 8px; text-align: left; }
.rr-img { max-width: 100%; }
</style>
</head>
<body>
{{.}}
</body>
</html>
`))

// markup supplies the per-format text primitives the document walk is
// written against.
type markup struct {
	format domain.Format
}

func newMarkup(format domain.Format) markup {
	return markup{format: format}
}

func (m markup) title1(title string) string {
	switch m.format {
	case domain.FormatHTML:
		return fmt.Sprintf("<h1>%s</h1>\n", html.EscapeString(title))
	case domain.FormatMarkdown:
		return fmt.Sprintf("\n# %s\n\n", title)
	default:
		return fmt.Sprintf("\n%s\n\n", title)
	}
}

func (m markup) title2(title string) string {
	switch m.format {
	case domain.FormatHTML:
		return fmt.Sprintf("<h3>%s</h3>\n", html.EscapeString(title))
	case domain.FormatMarkdown:
		return fmt.Sprintf("## %s\n\n", title)
	default:
		return fmt.Sprintf("%s\n\n", title)
	}
}

func (m markup) simple(content string) string {
	return content + "\n"
}

func (m markup) breakLine() string {
	if m.format == domain.FormatHTML {
		return "<br>\n"
	}
	return "\n"
}

func (m markup) body(content string) ([]byte, error) {
	if m.format != domain.FormatHTML {
		return []byte(content), nil
	}

	var buf bytes.Buffer
	if err := htmlShell.Execute(&buf, template.HTML(content)); err != nil {
		return nil, fmt.Errorf("failed to assemble html body: %w", err)
	}
	return buf.Bytes(), nil
}
