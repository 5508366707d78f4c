package config

// Report is the on-disk shape of a report definition. The original tool's
// key spellings are kept, including "querys".
type Report struct {
	Title   string  `mapstructure:"title" validate:"required"`
	Source  Source  `mapstructure:"source"`
	Send    Send    `mapstructure:"send"`
	Queries []Query `mapstructure:"querys" validate:"required,min=1,dive"`
}

type Source struct {
	Kind string `mapstructure:"kind" validate:"required,oneof=postgres sqlite"`
	Conn string `mapstructure:"conn" validate:"required"`
}

type Send struct {
	Stdout bool   `mapstructure:"stdout"`
	Format string `mapstructure:"format" validate:"omitempty,oneof=html markdown txt"`
	Mail   *Mail  `mapstructure:"mail"`
}

// Mail is the SMTP envelope. Host, port, user and pass may come from a
// profile instead of the file itself; they are checked after the profile
// merge, not here.
type Mail struct {
	Host    string `mapstructure:"host"`
	Port    int    `mapstructure:"port" validate:"omitempty,min=1,max=65535"`
	To      string `mapstructure:"to" validate:"required"`
	From    string `mapstructure:"from" validate:"required"`
	User    string `mapstructure:"user"`
	Pass    string `mapstructure:"pass"`
	Subject string `mapstructure:"subject"`
	Profile string `mapstructure:"profile"`
}

type Query struct {
	Title  string  `mapstructure:"title" validate:"required"`
	SQL    string  `mapstructure:"sql" validate:"required"`
	Fields []Field `mapstructure:"fields" validate:"required,min=1,dive"`
	Chart  *Chart  `mapstructure:"chart"`
}

type Field struct {
	Field string `mapstructure:"field" validate:"required"`
	Title string `mapstructure:"title" validate:"required"`
	Kind  string `mapstructure:"kind" validate:"required,oneof=string integer decimal date boolean identifier"`
}

type Chart struct {
	Kind     string    `mapstructure:"kind" validate:"required,oneof=bar line pizza"`
	KeysBy   string    `mapstructure:"keys_by"`
	Series   []string  `mapstructure:"series"`
	SeriesBy *SeriesBy `mapstructure:"series_by"`
}

type SeriesBy struct {
	Key    string `mapstructure:"key" validate:"required"`
	Values string `mapstructure:"values" validate:"required"`
}
