package domain

import "fmt"

// ConnectionError means the backend was unreachable or rejected the
// credentials. It aborts the run before any query executes.
type ConnectionError struct {
	Kind SourceKind
	Err  error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("%s connection failed: %v", e.Kind, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// QueryError means a query could not be executed or its columns did not
// match the declared fields. It is fatal for the run.
type QueryError struct {
	Query string
	Err   error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query %q failed: %v", e.Query, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }

// TypeMismatchError means the data disagreed with a field's declared kind,
// either while casting a raw cell or while projecting a chart series. The
// message names the field and row index.
type TypeMismatchError struct {
	Query string
	Field string
	Row   int
	Kind  Kind
	Raw   any
	Err   error
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("query %q: field %q row %d: %v", e.Query, e.Field, e.Row, e.Err)
}

func (e *TypeMismatchError) Unwrap() error { return e.Err }

// RenderError wraps a format-specific serialization failure.
type RenderError struct {
	Format Format
	Err    error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("rendering as %s failed: %v", e.Format, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// DeliveryError wraps a failure to hand the rendered report to a
// destination. For mail it is surfaced but does not fail an otherwise
// successful run.
type DeliveryError struct {
	Target string
	Err    error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("delivery to %s failed: %v", e.Target, e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }
