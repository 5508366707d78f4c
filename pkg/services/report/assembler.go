package report

import (
	"fmt"

	"github.com/de-tools/report-relay/pkg/models/domain"
)

// Assemble turns a typed result set into document sections. A table section
// mirroring the result set is always emitted; when the query declares a
// chart and produced at least one row, a chart section follows it.
func Assemble(q domain.QuerySpec, rs *domain.ResultSet) ([]domain.Section, error) {
	sections := []domain.Section{domain.TableSection{Fields: rs.Fields, Rows: rs.Rows}}

	if q.Chart == nil || len(rs.Rows) == 0 {
		return sections, nil
	}

	chart, err := assembleChart(q, rs)
	if err != nil {
		return nil, err
	}

	return append(sections, *chart), nil
}

func assembleChart(q domain.QuerySpec, rs *domain.ResultSet) (*domain.ChartSection, error) {
	if q.Chart.KeysBy == "" {
		return assembleUnkeyedChart(q, rs)
	}

	keyIdx, err := columnIndex(rs, q.Chart.KeysBy)
	if err != nil {
		return nil, err
	}

	// Categories keep the first-seen order of distinct key values; a null
	// key stringifies to "".
	var categories []string
	catIdx := make(map[string]int)
	for _, row := range rs.Rows {
		key := row[keyIdx].String()
		if _, seen := catIdx[key]; !seen {
			catIdx[key] = len(categories)
			categories = append(categories, key)
		}
	}

	section := &domain.ChartSection{
		Kind:       q.Chart.Kind,
		Categories: categories,
	}

	if q.Chart.SeriesBy != nil {
		series, err := assemblePivotedSeries(q, rs, catIdx, keyIdx, len(categories))
		if err != nil {
			return nil, err
		}
		section.Series = series
		return section, nil
	}

	for _, name := range q.Chart.Series {
		field, _ := q.FieldByName(name)
		idx, err := columnIndex(rs, name)
		if err != nil {
			return nil, err
		}

		// A repeated key overwrites the earlier value: last write wins.
		values := make([]float64, len(categories))
		for i, row := range rs.Rows {
			v, err := magnitude(q, field, i, row[idx])
			if err != nil {
				return nil, err
			}
			values[catIdx[row[keyIdx].String()]] = v
		}

		section.Series = append(section.Series, domain.ChartSeries{
			Name:   field.Title,
			Values: values,
		})
	}

	return section, nil
}

// assemblePivotedSeries turns one column's distinct values into series
// names and a second numeric column into per-(key, series) magnitudes. The
// category grid of every series is fully populated; combinations absent
// from the rows keep the zero sentinel.
func assemblePivotedSeries(
	q domain.QuerySpec,
	rs *domain.ResultSet,
	catIdx map[string]int,
	keyIdx int,
	categories int,
) ([]domain.ChartSeries, error) {
	by := q.Chart.SeriesBy

	nameIdx, err := columnIndex(rs, by.Key)
	if err != nil {
		return nil, err
	}
	valueIdx, err := columnIndex(rs, by.Values)
	if err != nil {
		return nil, err
	}
	valueField, _ := q.FieldByName(by.Values)

	var series []domain.ChartSeries
	seriesIdx := make(map[string]int)
	for i, row := range rs.Rows {
		name := row[nameIdx].String()
		pos, seen := seriesIdx[name]
		if !seen {
			pos = len(series)
			seriesIdx[name] = pos
			series = append(series, domain.ChartSeries{
				Name:   name,
				Values: make([]float64, categories),
			})
		}

		v, err := magnitude(q, valueField, i, row[valueIdx])
		if err != nil {
			return nil, err
		}
		series[pos].Values[catIdx[row[keyIdx].String()]] = v
	}

	return series, nil
}

// assembleUnkeyedChart covers pizza charts without keys_by: the declared
// series fields become the segments, weighted by the first row's values.
func assembleUnkeyedChart(q domain.QuerySpec, rs *domain.ResultSet) (*domain.ChartSection, error) {
	section := &domain.ChartSection{Kind: q.Chart.Kind}
	values := domain.ChartSeries{Name: q.Title}

	for _, name := range q.Chart.Series {
		field, _ := q.FieldByName(name)
		idx, err := columnIndex(rs, name)
		if err != nil {
			return nil, err
		}

		v, err := magnitude(q, field, 0, rs.Rows[0][idx])
		if err != nil {
			return nil, err
		}

		section.Categories = append(section.Categories, field.Title)
		values.Values = append(values.Values, v)
	}

	section.Series = []domain.ChartSeries{values}
	return section, nil
}

func columnIndex(rs *domain.ResultSet, name string) (int, error) {
	for i, f := range rs.Fields {
		if f.Field == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("field %q not found", name)
}

func magnitude(q domain.QuerySpec, field domain.FieldSpec, row int, v domain.Value) (float64, error) {
	f, err := v.Float64()
	if err != nil {
		return 0, &domain.TypeMismatchError{
			Query: q.Title,
			Field: field.Field,
			Row:   row,
			Kind:  field.Kind,
			Raw:   v.String(),
			Err:   err,
		}
	}
	return f, nil
}
