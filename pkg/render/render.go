// Package render serializes assembled documents into their output formats.
package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/de-tools/report-relay/pkg/models/domain"
)

// Image is one chart raster referenced from the rendered body by its
// content id.
type Image struct {
	CID  string
	MIME string
	Data []byte
}

// RenderedReport is a rendered document: the payload body plus the inline
// images it references. Rendering the same document twice produces
// byte-identical output; content ids are assigned deterministically in
// document order.
type RenderedReport struct {
	Format domain.Format
	Body   []byte
	Images []Image
}

type Renderer struct {
	rasterize ChartRasterizer
}

type Option func(*Renderer)

func WithChartRasterizer(rasterize ChartRasterizer) Option {
	return func(r *Renderer) {
		r.rasterize = rasterize
	}
}

func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{rasterize: RasterizePNG}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Renderer) Render(doc domain.Document, format domain.Format) (*RenderedReport, error) {
	m := newMarkup(format)
	report := &RenderedReport{Format: format}

	var buf strings.Builder
	buf.WriteString(m.title1(fmt.Sprintf("The %s results are here!", doc.Title)))

	lastQuery := -1
	chartNum := 0
	for _, section := range doc.Sections {
		if section.Index != lastQuery {
			buf.WriteString(m.breakLine())
			buf.WriteString(m.title2(fmt.Sprintf("Query: %s", section.Query)))
			lastQuery = section.Index
		}

		switch content := section.Content.(type) {
		case domain.TableSection:
			if len(content.Rows) == 0 {
				buf.WriteString(m.simple("Empty result"))
			} else {
				buf.WriteString(m.simple(renderTable(content, format)))
			}
		case domain.ChartSection:
			if format == domain.FormatTxt {
				buf.WriteString(m.simple(renderChartSummary(content)))
				break
			}

			chartNum++
			img, err := r.renderChart(content, section.Query, chartNum, format)
			if err != nil {
				return nil, &domain.RenderError{Format: format, Err: err}
			}
			buf.WriteString(m.simple(img.reference))
			report.Images = append(report.Images, img.image)
		default:
			return nil, &domain.RenderError{
				Format: format,
				Err:    fmt.Errorf("unknown section type %T", content),
			}
		}

		buf.WriteString(m.breakLine())
	}

	body, err := m.body(buf.String())
	if err != nil {
		return nil, &domain.RenderError{Format: format, Err: err}
	}
	report.Body = body

	return report, nil
}

type renderedChart struct {
	reference string
	image     Image
}

func (r *Renderer) renderChart(
	section domain.ChartSection,
	title string,
	number int,
	format domain.Format,
) (*renderedChart, error) {
	data, err := r.rasterize(section, title)
	if err != nil {
		return nil, err
	}

	cid := fmt.Sprintf("chart-%d", number)

	var reference string
	if format == domain.FormatHTML {
		reference = fmt.Sprintf(`<img class="rr-img" title="%s" src="cid:%s">`, html.EscapeString(title), cid)
	} else {
		reference = fmt.Sprintf("![%s](cid:%s)", title, cid)
	}

	return &renderedChart{
		reference: reference,
		image: Image{
			CID:  cid,
			MIME: "image/png",
			Data: data,
		},
	}, nil
}
