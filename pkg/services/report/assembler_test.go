package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/report-relay/pkg/models/domain"
)

func chartQuery(chart *domain.ChartSpec) domain.QuerySpec {
	return domain.QuerySpec{
		Title: "Sales",
		SQL:   "select name, qt from sales",
		Fields: []domain.FieldSpec{
			{Field: "name", Title: "Seller", Kind: domain.KindString},
			{Field: "qt", Title: "Sold", Kind: domain.KindInteger},
		},
		Chart: chart,
	}
}

func resultSet(q domain.QuerySpec, rows ...[]domain.Value) *domain.ResultSet {
	return &domain.ResultSet{Fields: q.Fields, Rows: rows}
}

func TestAssemble_AlwaysEmitsTableMirroringResultSet(t *testing.T) {
	q := chartQuery(nil)
	rs := resultSet(q,
		[]domain.Value{domain.NewString("x"), domain.NewInteger(1)},
	)

	sections, err := Assemble(q, rs)
	require.NoError(t, err)

	require.Len(t, sections, 1)
	table, ok := sections[0].(domain.TableSection)
	require.True(t, ok)
	assert.Equal(t, rs.Fields, table.Fields)
	assert.Equal(t, rs.Rows, table.Rows)
}

func TestAssemble_BarChart(t *testing.T) {
	q := chartQuery(&domain.ChartSpec{
		Kind:   domain.ChartBar,
		KeysBy: "name",
		Series: []string{"qt"},
	})
	rs := resultSet(q,
		[]domain.Value{domain.NewString("x"), domain.NewInteger(1)},
		[]domain.Value{domain.NewString("y"), domain.NewInteger(2)},
	)

	sections, err := Assemble(q, rs)
	require.NoError(t, err)
	require.Len(t, sections, 2)

	chart, ok := sections[1].(domain.ChartSection)
	require.True(t, ok)
	assert.Equal(t, domain.ChartBar, chart.Kind)
	assert.Equal(t, []string{"x", "y"}, chart.Categories)
	require.Len(t, chart.Series, 1)
	assert.Equal(t, "Sold", chart.Series[0].Name)
	assert.Equal(t, []float64{1, 2}, chart.Series[0].Values)
}

func TestAssemble_RepeatedKeyLastWriteWins(t *testing.T) {
	q := chartQuery(&domain.ChartSpec{
		Kind:   domain.ChartBar,
		KeysBy: "name",
		Series: []string{"qt"},
	})
	rs := resultSet(q,
		[]domain.Value{domain.NewString("A"), domain.NewInteger(1)},
		[]domain.Value{domain.NewString("A"), domain.NewInteger(2)},
	)

	sections, err := Assemble(q, rs)
	require.NoError(t, err)

	chart := sections[1].(domain.ChartSection)
	assert.Equal(t, []string{"A"}, chart.Categories)
	assert.Equal(t, []float64{2}, chart.Series[0].Values)
}

func TestAssemble_SeriesByFillsAbsentCombinationsWithZero(t *testing.T) {
	q := domain.QuerySpec{
		Title: "Sales by region",
		Fields: []domain.FieldSpec{
			{Field: "month", Title: "Month", Kind: domain.KindString},
			{Field: "region", Title: "Region", Kind: domain.KindString},
			{Field: "qt", Title: "Sold", Kind: domain.KindInteger},
		},
		Chart: &domain.ChartSpec{
			Kind:     domain.ChartLine,
			KeysBy:   "month",
			SeriesBy: &domain.SeriesBySpec{Key: "region", Values: "qt"},
		},
	}
	rs := resultSet(q,
		[]domain.Value{domain.NewString("jan"), domain.NewString("north"), domain.NewInteger(10)},
		[]domain.Value{domain.NewString("feb"), domain.NewString("north"), domain.NewInteger(20)},
		[]domain.Value{domain.NewString("jan"), domain.NewString("south"), domain.NewInteger(5)},
		// no (feb, south) row
	)

	sections, err := Assemble(q, rs)
	require.NoError(t, err)

	chart := sections[1].(domain.ChartSection)
	assert.Equal(t, []string{"jan", "feb"}, chart.Categories)
	require.Len(t, chart.Series, 2)

	assert.Equal(t, "north", chart.Series[0].Name)
	assert.Equal(t, []float64{10, 20}, chart.Series[0].Values)
	assert.Equal(t, "south", chart.Series[1].Name)
	assert.Equal(t, []float64{5, 0}, chart.Series[1].Values)
}

func TestAssemble_NonNumericSeriesIsTypeMismatch(t *testing.T) {
	q := domain.QuerySpec{
		Title: "Broken",
		Fields: []domain.FieldSpec{
			{Field: "name", Title: "Seller", Kind: domain.KindString},
			{Field: "label", Title: "Label", Kind: domain.KindString},
		},
		Chart: &domain.ChartSpec{
			Kind:   domain.ChartBar,
			KeysBy: "name",
			Series: []string{"label"},
		},
	}
	rs := resultSet(q,
		[]domain.Value{domain.NewString("x"), domain.NewString("oops")},
	)

	_, err := Assemble(q, rs)

	var mismatch *domain.TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "label", mismatch.Field)
	assert.Equal(t, 0, mismatch.Row)
}

func TestAssemble_NullKeyStringifiesToEmptyCategory(t *testing.T) {
	q := chartQuery(&domain.ChartSpec{
		Kind:   domain.ChartBar,
		KeysBy: "name",
		Series: []string{"qt"},
	})
	rs := resultSet(q,
		[]domain.Value{domain.NewNull(domain.KindString), domain.NewInteger(7)},
	)

	sections, err := Assemble(q, rs)
	require.NoError(t, err)

	chart := sections[1].(domain.ChartSection)
	assert.Equal(t, []string{""}, chart.Categories)
	assert.Equal(t, []float64{7}, chart.Series[0].Values)
}

func TestAssemble_EmptyResultSkipsChart(t *testing.T) {
	q := chartQuery(&domain.ChartSpec{
		Kind:   domain.ChartBar,
		KeysBy: "name",
		Series: []string{"qt"},
	})

	sections, err := Assemble(q, resultSet(q))
	require.NoError(t, err)
	require.Len(t, sections, 1)
	assert.IsType(t, domain.TableSection{}, sections[0])
}

func TestAssemble_UnkeyedPizzaUsesSeriesTitlesAsSegments(t *testing.T) {
	q := domain.QuerySpec{
		Title: "Totals",
		Fields: []domain.FieldSpec{
			{Field: "won", Title: "Won", Kind: domain.KindInteger},
			{Field: "lost", Title: "Lost", Kind: domain.KindInteger},
		},
		Chart: &domain.ChartSpec{
			Kind:   domain.ChartPizza,
			Series: []string{"won", "lost"},
		},
	}
	rs := resultSet(q,
		[]domain.Value{domain.NewInteger(7), domain.NewInteger(3)},
	)

	sections, err := Assemble(q, rs)
	require.NoError(t, err)

	chart := sections[1].(domain.ChartSection)
	assert.Equal(t, []string{"Won", "Lost"}, chart.Categories)
	require.Len(t, chart.Series, 1)
	assert.Equal(t, []float64{7, 3}, chart.Series[0].Values)
}
