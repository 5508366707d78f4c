package domain

// SourceKind identifies a supported SQL backend.
type SourceKind string

const (
	SourcePostgres SourceKind = "postgres"
	SourceSqlite   SourceKind = "sqlite"
)

// Format identifies a rendering output format.
type Format string

const (
	FormatHTML     Format = "html"
	FormatMarkdown Format = "markdown"
	FormatTxt      Format = "txt"
)

// ChartKind identifies a chart flavor.
type ChartKind string

const (
	ChartBar   ChartKind = "bar"
	ChartLine  ChartKind = "line"
	ChartPizza ChartKind = "pizza"
)

// ReportSpec is a fully validated report definition, ready to run.
type ReportSpec struct {
	Title   string
	Source  SourceSpec
	Send    SendSpec
	Queries []QuerySpec
}

// SourceSpec describes the database a report reads from.
type SourceSpec struct {
	Kind SourceKind
	Conn string
}

// SendSpec describes where the rendered report goes.
type SendSpec struct {
	Stdout bool
	Format Format
	Mail   *MailSpec
}

// MailSpec is the SMTP envelope for mail delivery.
type MailSpec struct {
	Host    string
	Port    int
	From    string
	To      []string
	User    string
	Pass    string
	Subject string
}

// QuerySpec is one declared query with its typed output fields and an
// optional chart.
type QuerySpec struct {
	Title  string
	SQL    string
	Fields []FieldSpec
	Chart  *ChartSpec
}

// FieldSpec maps one result column to a display title and a declared kind.
// Field matches the column alias in the SQL, case-sensitive.
type FieldSpec struct {
	Field string
	Title string
	Kind  Kind
}

// ChartSpec declares how query rows map onto a chart. Exactly one of Series
// and SeriesBy is set. KeysBy is required for every kind but pizza.
type ChartSpec struct {
	Kind     ChartKind
	KeysBy   string
	Series   []string
	SeriesBy *SeriesBySpec
}

// SeriesBySpec pivots one column's distinct values into series names, with a
// second numeric column supplying the per-(key, series) magnitudes.
type SeriesBySpec struct {
	Key    string
	Values string
}

// FieldByName returns the declared field with the given column name.
func (q QuerySpec) FieldByName(name string) (FieldSpec, bool) {
	for _, f := range q.Fields {
		if f.Field == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}
