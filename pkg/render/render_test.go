package render

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/report-relay/pkg/models/domain"
)

func stubRasterizer(_ domain.ChartSection, _ string) ([]byte, error) {
	return []byte{0x89, 'P', 'N', 'G'}, nil
}

func sampleDocument() domain.Document {
	fields := []domain.FieldSpec{
		{Field: "name", Title: "Seller", Kind: domain.KindString},
		{Field: "qt", Title: "Sold", Kind: domain.KindInteger},
	}

	return domain.Document{
		Title: "Weekly sales",
		Sections: []domain.DocumentSection{
			{
				Query: "Sales",
				Content: domain.TableSection{
					Fields: fields,
					Rows: [][]domain.Value{
						{domain.NewString("x"), domain.NewInteger(1)},
						{domain.NewString("y"), domain.NewInteger(2)},
					},
				},
			},
			{
				Query: "Sales",
				Content: domain.ChartSection{
					Kind:       domain.ChartBar,
					Categories: []string{"x", "y"},
					Series:     []domain.ChartSeries{{Name: "Sold", Values: []float64{1, 2}}},
				},
			},
		},
	}
}

func TestRenderer_Deterministic(t *testing.T) {
	r := NewRenderer(WithChartRasterizer(stubRasterizer))
	doc := sampleDocument()

	for _, format := range []domain.Format{domain.FormatHTML, domain.FormatMarkdown, domain.FormatTxt} {
		t.Run(string(format), func(t *testing.T) {
			first, err := r.Render(doc, format)
			require.NoError(t, err)
			second, err := r.Render(doc, format)
			require.NoError(t, err)

			assert.Equal(t, first.Body, second.Body)
			assert.Equal(t, first.Images, second.Images)
		})
	}
}

func TestRenderer_HTML(t *testing.T) {
	r := NewRenderer(WithChartRasterizer(stubRasterizer))

	report, err := r.Render(sampleDocument(), domain.FormatHTML)
	require.NoError(t, err)

	body := string(report.Body)
	assert.Contains(t, body, "<h1>The Weekly sales results are here!</h1>")
	assert.Contains(t, body, "<h3>Query: Sales</h3>")
	assert.Contains(t, body, `class="rr-table"`)
	assert.Contains(t, body, `<img class="rr-img" title="Sales" src="cid:chart-1">`)

	require.Len(t, report.Images, 1)
	assert.Equal(t, "chart-1", report.Images[0].CID)
	assert.Equal(t, "image/png", report.Images[0].MIME)
}

func TestRenderer_Markdown(t *testing.T) {
	r := NewRenderer(WithChartRasterizer(stubRasterizer))

	report, err := r.Render(sampleDocument(), domain.FormatMarkdown)
	require.NoError(t, err)

	body := string(report.Body)
	assert.Contains(t, body, "# The Weekly sales results are here!")
	assert.Contains(t, body, "## Query: Sales")
	assert.Contains(t, body, "| Seller | Sold |")
	assert.Contains(t, body, "![Sales](cid:chart-1)")
	require.Len(t, report.Images, 1)
}

func TestRenderer_Txt(t *testing.T) {
	r := NewRenderer(WithChartRasterizer(stubRasterizer))

	report, err := r.Render(sampleDocument(), domain.FormatTxt)
	require.NoError(t, err)

	body := string(report.Body)
	assert.Contains(t, body, "The Weekly sales results are here!")
	assert.Contains(t, body, "Seller")
	// charts degrade to a category x series listing
	assert.Contains(t, body, "Category")
	assert.Contains(t, body, "Sold")
	assert.NotContains(t, body, "cid:")
	assert.Empty(t, report.Images)
}

func TestRenderer_EmptyResultParagraph(t *testing.T) {
	r := NewRenderer(WithChartRasterizer(stubRasterizer))
	doc := domain.Document{
		Title: "Weekly sales",
		Sections: []domain.DocumentSection{
			{
				Query: "Sales",
				Content: domain.TableSection{
					Fields: []domain.FieldSpec{{Field: "name", Title: "Seller", Kind: domain.KindString}},
				},
			},
		},
	}

	report, err := r.Render(doc, domain.FormatTxt)
	require.NoError(t, err)
	assert.Contains(t, string(report.Body), "Empty result")
}

func TestRenderer_RasterizerFailureIsRenderError(t *testing.T) {
	r := NewRenderer(WithChartRasterizer(
		func(_ domain.ChartSection, _ string) ([]byte, error) {
			return nil, fmt.Errorf("corrupt chart data")
		},
	))

	_, err := r.Render(sampleDocument(), domain.FormatHTML)

	var renderErr *domain.RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, domain.FormatHTML, renderErr.Format)
}

func TestRenderer_SameTitleQueriesKeepSeparateHeadings(t *testing.T) {
	r := NewRenderer(WithChartRasterizer(stubRasterizer))
	fields := []domain.FieldSpec{{Field: "name", Title: "Seller", Kind: domain.KindString}}
	doc := domain.Document{
		Title: "Weekly sales",
		Sections: []domain.DocumentSection{
			{
				Index: 0, Query: "Sales",
				Content: domain.TableSection{
					Fields: fields,
					Rows:   [][]domain.Value{{domain.NewString("x")}},
				},
			},
			{
				Index: 1, Query: "Sales",
				Content: domain.TableSection{
					Fields: fields,
					Rows:   [][]domain.Value{{domain.NewString("y")}},
				},
			},
		},
	}

	report, err := r.Render(doc, domain.FormatMarkdown)
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(string(report.Body), "Query: Sales"))
}

func TestRenderer_ChartNumbersFollowDocumentOrder(t *testing.T) {
	r := NewRenderer(WithChartRasterizer(stubRasterizer))
	doc := sampleDocument()
	doc.Sections = append(doc.Sections, domain.DocumentSection{
		Index: 1,
		Query: "Totals",
		Content: domain.ChartSection{
			Kind:       domain.ChartPizza,
			Categories: []string{"Won", "Lost"},
			Series:     []domain.ChartSeries{{Name: "Totals", Values: []float64{7, 3}}},
		},
	})

	report, err := r.Render(doc, domain.FormatHTML)
	require.NoError(t, err)

	require.Len(t, report.Images, 2)
	assert.Equal(t, "chart-1", report.Images[0].CID)
	assert.Equal(t, "chart-2", report.Images[1].CID)
}
