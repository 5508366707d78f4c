package render

import (
	"fmt"

	charts "github.com/vicanso/go-charts/v2"

	"github.com/de-tools/report-relay/pkg/models/domain"
)

// ChartRasterizer turns chart-ready data into an image. The renderer takes
// it as a function value so tests can substitute a fixed payload.
type ChartRasterizer func(section domain.ChartSection, title string) ([]byte, error)

// RasterizePNG is the default rasterizer, producing a PNG via go-charts.
func RasterizePNG(section domain.ChartSection, title string) ([]byte, error) {
	opts := []charts.OptionFunc{
		charts.PNGTypeOption(),
		charts.TitleTextOptionFunc(title),
	}

	var (
		p   *charts.Painter
		err error
	)

	switch section.Kind {
	case domain.ChartBar:
		opts = append(opts, chartAxes(section)...)
		p, err = charts.BarRender(seriesValues(section), opts...)
	case domain.ChartLine:
		opts = append(opts, chartAxes(section)...)
		p, err = charts.LineRender(seriesValues(section), opts...)
	case domain.ChartPizza:
		labels, values := pieSegments(section)
		opts = append(opts, charts.LegendLabelsOptionFunc(labels))
		p, err = charts.PieRender(values, opts...)
	default:
		return nil, fmt.Errorf("unknown chart kind %q", section.Kind)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to draw %s chart: %w", section.Kind, err)
	}

	buf, err := p.Bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s chart: %w", section.Kind, err)
	}
	return buf, nil
}

func chartAxes(section domain.ChartSection) []charts.OptionFunc {
	names := make([]string, 0, len(section.Series))
	for _, s := range section.Series {
		names = append(names, s.Name)
	}
	return []charts.OptionFunc{
		charts.XAxisDataOptionFunc(section.Categories),
		charts.LegendLabelsOptionFunc(names),
	}
}

func seriesValues(section domain.ChartSection) [][]float64 {
	values := make([][]float64, 0, len(section.Series))
	for _, s := range section.Series {
		values = append(values, s.Values)
	}
	return values
}

// pieSegments flattens a chart section into pie slices. A single series
// yields one slice per category; several series yield one slice per series,
// weighted by its first value.
func pieSegments(section domain.ChartSection) ([]string, []float64) {
	if len(section.Series) == 1 {
		return section.Categories, section.Series[0].Values
	}

	labels := make([]string, 0, len(section.Series))
	values := make([]float64, 0, len(section.Series))
	for _, s := range section.Series {
		labels = append(labels, s.Name)
		if len(s.Values) > 0 {
			values = append(values, s.Values[0])
		} else {
			values = append(values, 0)
		}
	}
	return labels, values
}
