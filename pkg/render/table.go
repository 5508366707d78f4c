package render

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/de-tools/report-relay/pkg/models/domain"
)

// renderTable serializes one table section: a fixed-width ASCII grid for
// txt, a pipe-delimited grid for markdown, a class-tagged <table> for html.
// Field titles are kept verbatim as the header row.
func renderTable(section domain.TableSection, format domain.Format) string {
	w := table.NewWriter()
	w.Style().Format.Header = text.FormatDefault
	w.Style().HTML.CSSClass = "rr-table"

	header := make(table.Row, 0, len(section.Fields))
	for _, f := range section.Fields {
		header = append(header, f.Title)
	}
	w.AppendHeader(header)

	for _, row := range section.Rows {
		cells := make(table.Row, 0, len(row))
		for _, v := range row {
			cells = append(cells, v.String())
		}
		w.AppendRow(cells)
	}

	switch format {
	case domain.FormatHTML:
		return w.RenderHTML()
	case domain.FormatMarkdown:
		return w.RenderMarkdown()
	default:
		return w.Render()
	}
}

// renderChartSummary lays a chart section out as a category x series grid,
// used where the output format cannot embed images.
func renderChartSummary(section domain.ChartSection) string {
	w := table.NewWriter()
	w.Style().Format.Header = text.FormatDefault

	header := table.Row{"Category"}
	for _, s := range section.Series {
		header = append(header, s.Name)
	}
	w.AppendHeader(header)

	for i, category := range section.Categories {
		row := table.Row{category}
		for _, s := range section.Series {
			row = append(row, s.Values[i])
		}
		w.AppendRow(row)
	}

	return w.Render()
}
