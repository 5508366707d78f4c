package report

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/de-tools/report-relay/pkg/models/domain"
)

// timeLayouts are tried in order when a date field arrives as text.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"15:04:05",
}

// Cast maps one backend-native cell onto the declared kind. A raw SQL NULL
// casts to the null Value of any kind; everything else either matches the
// kind's accepted representations or fails.
func Cast(raw any, kind domain.Kind) (domain.Value, error) {
	if raw == nil {
		return domain.NewNull(kind), nil
	}

	switch kind {
	case domain.KindString:
		return castString(raw)
	case domain.KindInteger:
		return castInteger(raw)
	case domain.KindDecimal:
		return castDecimal(raw)
	case domain.KindDate:
		return castDate(raw)
	case domain.KindBoolean:
		return castBoolean(raw)
	case domain.KindIdentifier:
		return castIdentifier(raw)
	default:
		return domain.Value{}, fmt.Errorf("unknown kind %q", kind)
	}
}

func castString(raw any) (domain.Value, error) {
	switch v := raw.(type) {
	case string:
		return domain.NewString(v), nil
	case []byte:
		return domain.NewString(string(v)), nil
	case int64:
		return domain.NewString(strconv.FormatInt(v, 10)), nil
	case float64:
		return domain.NewString(strconv.FormatFloat(v, 'f', -1, 64)), nil
	case bool:
		return domain.NewString(strconv.FormatBool(v)), nil
	case time.Time:
		return domain.NewString(v.Format(time.RFC3339)), nil
	default:
		return domain.NewString(fmt.Sprintf("%v", v)), nil
	}
}

func castInteger(raw any) (domain.Value, error) {
	switch v := raw.(type) {
	case int64:
		return domain.NewInteger(v), nil
	case int32:
		return domain.NewInteger(int64(v)), nil
	case int:
		return domain.NewInteger(int64(v)), nil
	case float64:
		if v != math.Trunc(v) {
			return domain.Value{}, castFailure(raw, domain.KindInteger)
		}
		return domain.NewInteger(int64(v)), nil
	case []byte:
		return parseInteger(string(v))
	case string:
		return parseInteger(v)
	default:
		return domain.Value{}, castFailure(raw, domain.KindInteger)
	}
}

func parseInteger(s string) (domain.Value, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return domain.Value{}, castFailure(s, domain.KindInteger)
	}
	return domain.NewInteger(n), nil
}

func castDecimal(raw any) (domain.Value, error) {
	switch v := raw.(type) {
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return domain.Value{}, castFailure(raw, domain.KindDecimal)
		}
		return domain.NewDecimal(d), nil
	case []byte:
		d, err := decimal.NewFromString(string(v))
		if err != nil {
			return domain.Value{}, castFailure(raw, domain.KindDecimal)
		}
		return domain.NewDecimal(d), nil
	case int64:
		return domain.NewDecimal(decimal.NewFromInt(v)), nil
	case int32:
		return domain.NewDecimal(decimal.NewFromInt(int64(v))), nil
	case int:
		return domain.NewDecimal(decimal.NewFromInt(int64(v))), nil
	case float64:
		return domain.NewDecimal(decimal.NewFromFloat(v)), nil
	default:
		return domain.Value{}, castFailure(raw, domain.KindDecimal)
	}
}

func castDate(raw any) (domain.Value, error) {
	switch v := raw.(type) {
	case time.Time:
		return domain.NewDate(v), nil
	case string:
		return parseDate(v)
	case []byte:
		return parseDate(string(v))
	case int64:
		// Unix seconds
		return domain.NewDate(time.Unix(v, 0).UTC()), nil
	default:
		return domain.Value{}, castFailure(raw, domain.KindDate)
	}
}

func parseDate(s string) (domain.Value, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return domain.NewDate(t), nil
		}
	}
	return domain.Value{}, castFailure(s, domain.KindDate)
}

func castBoolean(raw any) (domain.Value, error) {
	switch v := raw.(type) {
	case bool:
		return domain.NewBoolean(v), nil
	case int64:
		return booleanFromInt(v)
	case int32:
		return booleanFromInt(int64(v))
	case int:
		return booleanFromInt(int64(v))
	case float64:
		if v != math.Trunc(v) {
			return domain.Value{}, castFailure(raw, domain.KindBoolean)
		}
		return booleanFromInt(int64(v))
	case string:
		return parseBoolean(v)
	case []byte:
		return parseBoolean(string(v))
	default:
		return domain.Value{}, castFailure(raw, domain.KindBoolean)
	}
}

func booleanFromInt(v int64) (domain.Value, error) {
	switch v {
	case 0:
		return domain.NewBoolean(false), nil
	case 1:
		return domain.NewBoolean(true), nil
	default:
		return domain.Value{}, castFailure(v, domain.KindBoolean)
	}
}

func parseBoolean(s string) (domain.Value, error) {
	switch s {
	case "0", "false":
		return domain.NewBoolean(false), nil
	case "1", "true":
		return domain.NewBoolean(true), nil
	default:
		return domain.Value{}, castFailure(s, domain.KindBoolean)
	}
}

func castIdentifier(raw any) (domain.Value, error) {
	switch v := raw.(type) {
	case string:
		id, err := uuid.Parse(v)
		if err != nil {
			return domain.Value{}, castFailure(raw, domain.KindIdentifier)
		}
		return domain.NewIdentifier(id), nil
	case []byte:
		if len(v) == 16 {
			id, err := uuid.FromBytes(v)
			if err != nil {
				return domain.Value{}, castFailure(raw, domain.KindIdentifier)
			}
			return domain.NewIdentifier(id), nil
		}
		id, err := uuid.Parse(string(v))
		if err != nil {
			return domain.Value{}, castFailure(raw, domain.KindIdentifier)
		}
		return domain.NewIdentifier(id), nil
	case [16]byte:
		return domain.NewIdentifier(uuid.UUID(v)), nil
	default:
		return domain.Value{}, castFailure(raw, domain.KindIdentifier)
	}
}

func castFailure(raw any, kind domain.Kind) error {
	return fmt.Errorf("cannot cast %v (%T) to %s", raw, raw, kind)
}
