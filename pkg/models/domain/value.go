package domain

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind is the user-declared type of one report field.
type Kind string

const (
	KindString     Kind = "string"
	KindInteger    Kind = "integer"
	KindDecimal    Kind = "decimal"
	KindDate       Kind = "date"
	KindBoolean    Kind = "boolean"
	KindIdentifier Kind = "identifier"
)

// Value is one typed cell of a result set. Every Value produced for a field
// carries that field's declared kind; a SQL NULL keeps the kind but reports
// IsNull.
type Value struct {
	Kind Kind
	Null bool

	str  string
	num  int64
	dec  decimal.Decimal
	ts   time.Time
	flag bool
	id   uuid.UUID
}

func NewString(v string) Value {
	return Value{Kind: KindString, str: v}
}

func NewInteger(v int64) Value {
	return Value{Kind: KindInteger, num: v}
}

func NewDecimal(v decimal.Decimal) Value {
	return Value{Kind: KindDecimal, dec: v}
}

func NewDate(v time.Time) Value {
	return Value{Kind: KindDate, ts: v}
}

func NewBoolean(v bool) Value {
	return Value{Kind: KindBoolean, flag: v}
}

func NewIdentifier(v uuid.UUID) Value {
	return Value{Kind: KindIdentifier, id: v}
}

// NewNull returns the null Value of the given kind.
func NewNull(kind Kind) Value {
	return Value{Kind: kind, Null: true}
}

func (v Value) IsNull() bool {
	return v.Null
}

// String renders the cell for tabular display. Null renders as an empty
// string. Date-only timestamps (midnight UTC) print as 2006-01-02,
// time-only ones as 15:04:05, everything else as RFC 3339.
func (v Value) String() string {
	if v.Null {
		return ""
	}

	switch v.Kind {
	case KindString:
		return v.str
	case KindInteger:
		return strconv.FormatInt(v.num, 10)
	case KindDecimal:
		return v.dec.String()
	case KindDate:
		return formatTime(v.ts)
	case KindBoolean:
		return strconv.FormatBool(v.flag)
	case KindIdentifier:
		return v.id.String()
	default:
		return ""
	}
}

// Float64 projects the value onto a chart magnitude. Only numeric kinds
// project; null projects to the zero sentinel.
func (v Value) Float64() (float64, error) {
	if v.Null {
		return 0, nil
	}

	switch v.Kind {
	case KindInteger:
		return float64(v.num), nil
	case KindDecimal:
		return v.dec.InexactFloat64(), nil
	default:
		return 0, fmt.Errorf("kind %s is not numeric", v.Kind)
	}
}

// Int64 returns the integer payload. Valid only for KindInteger.
func (v Value) Int64() int64 {
	return v.num
}

// Decimal returns the decimal payload. Valid only for KindDecimal.
func (v Value) Decimal() decimal.Decimal {
	return v.dec
}

// Time returns the timestamp payload. Valid only for KindDate.
func (v Value) Time() time.Time {
	return v.ts
}

// Bool returns the boolean payload. Valid only for KindBoolean.
func (v Value) Bool() bool {
	return v.flag
}

// UUID returns the identifier payload. Valid only for KindIdentifier.
func (v Value) UUID() uuid.UUID {
	return v.id
}

func formatTime(t time.Time) string {
	utc := t.UTC()
	if utc.Year() == 0 {
		return utc.Format("15:04:05")
	}
	if h, m, s := utc.Clock(); h == 0 && m == 0 && s == 0 && utc.Nanosecond() == 0 {
		return utc.Format("2006-01-02")
	}
	return t.Format(time.RFC3339)
}
