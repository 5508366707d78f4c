package report

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/de-tools/report-relay/pkg/models/domain"
	"github.com/de-tools/report-relay/pkg/services/source"
)

// Execute runs one declared query and casts its raw rows into a typed
// result set. Result columns are matched to declared fields by exact name;
// a declared field with no matching column fails before any row is cast,
// extra columns are ignored and row order is preserved.
func Execute(ctx context.Context, conn source.Connection, q domain.QuerySpec) (*domain.ResultSet, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("query", q.Title).Msg("executing query")

	raw, err := conn.Query(ctx, q.SQL)
	if err != nil {
		return nil, &domain.QueryError{Query: q.Title, Err: err}
	}

	columns := make(map[string]struct{}, len(raw.Columns))
	for _, name := range raw.Columns {
		columns[name] = struct{}{}
	}
	for _, f := range q.Fields {
		if _, ok := columns[f.Field]; !ok {
			return nil, &domain.QueryError{
				Query: q.Title,
				Err:   fmt.Errorf("column %q not found", f.Field),
			}
		}
	}

	result := &domain.ResultSet{Fields: q.Fields}
	for i, rawRow := range raw.Rows {
		row := make([]domain.Value, 0, len(q.Fields))
		for _, f := range q.Fields {
			value, err := Cast(rawRow[f.Field], f.Kind)
			if err != nil {
				return nil, &domain.TypeMismatchError{
					Query: q.Title,
					Field: f.Field,
					Row:   i,
					Kind:  f.Kind,
					Raw:   rawRow[f.Field],
					Err:   err,
				}
			}
			row = append(row, value)
		}
		result.Rows = append(result.Rows, row)
	}

	logger.Debug().Str("query", q.Title).Int("rows", len(result.Rows)).Msg("query executed")
	return result, nil
}
