package document

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// ErrFormat is returned when a formatter gets a value shape it cannot render.
var ErrFormat = errors.New("cannot format value")

// Formatter renders a cell value as text.
type Formatter func(v any) (string, error)

const (
	DateTimeLayout  = "2006-01-02 15:04:05"
	TimeOfDayLayout = "15:04:05"
)

// Money formats an amount as "$12.50".
func Money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// Currency renders decimals, floats and integers with two decimals and a
// dollar prefix. nil renders as $0.00.
func Currency(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return Money(decimal.Zero), nil
	case decimal.Decimal:
		return Money(x), nil
	case *decimal.Decimal:
		if x == nil {
			return Money(decimal.Zero), nil
		}
		return Money(*x), nil
	case decimal.NullDecimal:
		if !x.Valid {
			return Money(decimal.Zero), nil
		}
		return Money(x.Decimal), nil
	case float64:
		return Money(decimal.NewFromFloat(x)), nil
	case float32:
		return Money(decimal.NewFromFloat32(x)), nil
	case int:
		return Money(decimal.NewFromInt(int64(x))), nil
	case int64:
		return Money(decimal.NewFromInt(x)), nil
	}
	return "", fmt.Errorf("%w: currency from %T", ErrFormat, v)
}

// Number renders an amount with two decimals and no prefix.
func Number(v any) (string, error) {
	s, err := Currency(v)
	if err != nil {
		return "", err
	}
	return s[1:], nil
}

func timeFormatter(layout string) Formatter {
	return func(v any) (string, error) {
		switch x := v.(type) {
		case nil:
			return "", nil
		case time.Time:
			if x.IsZero() {
				return "", nil
			}
			return x.Format(layout), nil
		case *time.Time:
			if x == nil || x.IsZero() {
				return "", nil
			}
			return x.Format(layout), nil
		}
		return "", fmt.Errorf("%w: time from %T", ErrFormat, v)
	}
}

// DateTime renders "2006-01-02 15:04:05". Zero and nil times render empty.
var DateTime Formatter = timeFormatter(DateTimeLayout)

// TimeOfDay renders "15:04:05".
var TimeOfDay Formatter = timeFormatter(TimeOfDayLayout)

// YesNo renders booleans, and integers as flags.
func YesNo(v any) (string, error) {
	var b bool
	switch x := v.(type) {
	case nil:
	case bool:
		b = x
	case *bool:
		b = x != nil && *x
	case int:
		b = x != 0
	case int64:
		b = x != 0
	default:
		return "", fmt.Errorf("%w: flag from %T", ErrFormat, v)
	}
	if b {
		return "Yes", nil
	}
	return "No", nil
}

// Integer renders whole numbers. nil renders as 0.
func Integer(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "0", nil
	case int:
		return strconv.Itoa(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case *int64:
		if x == nil {
			return "0", nil
		}
		return strconv.FormatInt(*x, 10), nil
	case int32:
		return strconv.FormatInt(int64(x), 10), nil
	}
	return "", fmt.Errorf("%w: integer from %T", ErrFormat, v)
}

// Plain renders strings, string pointers, numbers and Stringers as is.
func Plain(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "", nil
	case string:
		return x, nil
	case *string:
		if x == nil {
			return "", nil
		}
		return *x, nil
	case int, int64, int32, *int64:
		return Integer(x)
	case decimal.Decimal:
		return x.String(), nil
	case fmt.Stringer:
		return x.String(), nil
	}
	return "", fmt.Errorf("%w: text from %T", ErrFormat, v)
}
