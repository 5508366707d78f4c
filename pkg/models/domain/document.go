package domain

// ResultSet is the typed, uniform output of one executed query. Every row
// has exactly one Value per field, in field order. It is read-only after
// production and consumed by exactly one Assemble call.
type ResultSet struct {
	Fields []FieldSpec
	Rows   [][]Value
}

// Section is one renderable unit of a document, either a TableSection or a
// ChartSection.
type Section interface {
	section()
}

// TableSection mirrors a result set verbatim.
type TableSection struct {
	Fields []FieldSpec
	Rows   [][]Value
}

// ChartSection holds chart-ready data: ordered categories and one or more
// series aligned by category index. Every series has exactly one value per
// category.
type ChartSection struct {
	Kind       ChartKind
	Categories []string
	Series     []ChartSeries
}

// ChartSeries is one named series of magnitudes, one per category.
type ChartSeries struct {
	Name   string
	Values []float64
}

func (TableSection) section() {}
func (ChartSection) section() {}

// Document is the full ordered collection of sections for one report run.
// It is immutable once handed to the renderer.
type Document struct {
	Title    string
	Sections []DocumentSection
}

// DocumentSection pairs a section with the query it came from. Index is
// the query's ordinal within the run; sections of the same query share it,
// so renderers can group by query even when two queries repeat a title.
type DocumentSection struct {
	Index   int
	Query   string
	Content Section
}
