package inputprompt

import (
	"strconv"
	"time"
)

// Converter turns prompt text into a value of type T and back.
//
// A Converter is supplied per target type, so new types can be prompted for
// without touching the prompt itself. Use one of the built-in converters or
// Func for custom types.
type Converter[T any] interface {
	// Nullable reports whether T has an empty representation. Nullable types
	// accept an empty line even when no default is configured.
	Nullable() bool
	// Convert parses text. It returns a *ConversionError when text is not a valid T.
	Convert(text string) (T, error)
	// Format returns the textual form of value. The boolean is false when
	// value is the empty/absent value of T, in which case no answer is shown.
	Format(value T) (string, bool)
}

type funcConverter[T any] struct {
	nullable bool
	parse    func(string) (T, error)
	format   func(T) (string, bool)
}

func (c funcConverter[T]) Nullable() bool                 { return c.nullable }
func (c funcConverter[T]) Convert(text string) (T, error) { return c.parse(text) }
func (c funcConverter[T]) Format(value T) (string, bool)  { return c.format(value) }

// Func builds a Converter from plain functions.
//
// Example:
//
//	ip := inputprompt.Func(false,
//		func(s string) (netip.Addr, error) { return netip.ParseAddr(s) },
//		func(a netip.Addr) (string, bool) { return a.String(), a.IsValid() },
//	)
func Func[T any](nullable bool, parse func(string) (T, error), format func(T) (string, bool)) Converter[T] {
	return funcConverter[T]{nullable: nullable, parse: parse, format: format}
}

// String returns the converter for plain text. The empty string is the empty value.
func String() Converter[string] {
	return funcConverter[string]{
		nullable: true,
		parse:    func(s string) (string, error) { return s, nil },
		format:   func(s string) (string, bool) { return s, s != "" },
	}
}

type signedInteger interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type unsignedInteger interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

func signed[T signedInteger](typeName string) Converter[T] {
	return funcConverter[T]{
		parse: func(s string) (T, error) {
			n, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				return 0, &ConversionError{Input: s, Type: typeName, Err: err}
			}
			v := T(n)
			if int64(v) != n {
				return 0, &ConversionError{Input: s, Type: typeName, Err: strconv.ErrRange}
			}
			return v, nil
		},
		format: func(v T) (string, bool) { return strconv.FormatInt(int64(v), 10), true },
	}
}

func unsigned[T unsignedInteger](typeName string) Converter[T] {
	return funcConverter[T]{
		parse: func(s string) (T, error) {
			n, err := strconv.ParseUint(s, 10, 64)
			if err != nil {
				return 0, &ConversionError{Input: s, Type: typeName, Err: err}
			}
			v := T(n)
			if uint64(v) != n {
				return 0, &ConversionError{Input: s, Type: typeName, Err: strconv.ErrRange}
			}
			return v, nil
		},
		format: func(v T) (string, bool) { return strconv.FormatUint(uint64(v), 10), true },
	}
}

// Int returns the converter for int.
func Int() Converter[int] { return signed[int]("integer") }

// Int64 returns the converter for int64.
func Int64() Converter[int64] { return signed[int64]("integer") }

// Uint returns the converter for uint.
func Uint() Converter[uint] { return unsigned[uint]("non-negative integer") }

// Float returns the converter for float64.
func Float() Converter[float64] {
	return funcConverter[float64]{
		parse: func(s string) (float64, error) {
			f, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return 0, &ConversionError{Input: s, Type: "number", Err: err}
			}
			return f, nil
		},
		format: func(f float64) (string, bool) { return strconv.FormatFloat(f, 'g', -1, 64), true },
	}
}

// Bool returns the converter for bool. It accepts the forms understood by strconv.ParseBool.
func Bool() Converter[bool] {
	return funcConverter[bool]{
		parse: func(s string) (bool, error) {
			b, err := strconv.ParseBool(s)
			if err != nil {
				return false, &ConversionError{Input: s, Type: "boolean", Err: err}
			}
			return b, nil
		},
		format: func(b bool) (string, bool) { return strconv.FormatBool(b), true },
	}
}

// Duration returns the converter for time.Duration, e.g. "1h30m".
func Duration() Converter[time.Duration] {
	return funcConverter[time.Duration]{
		parse: func(s string) (time.Duration, error) {
			d, err := time.ParseDuration(s)
			if err != nil {
				return 0, &ConversionError{Input: s, Type: "duration", Err: err}
			}
			return d, nil
		},
		format: func(d time.Duration) (string, bool) { return d.String(), true },
	}
}

// Pointer makes any converter nullable: an empty line resolves to nil
// instead of failing with ErrRequired.
func Pointer[T any](inner Converter[T]) Converter[*T] {
	return funcConverter[*T]{
		nullable: true,
		parse: func(s string) (*T, error) {
			v, err := inner.Convert(s)
			if err != nil {
				return nil, err
			}
			return &v, nil
		},
		format: func(p *T) (string, bool) {
			if p == nil {
				return "", false
			}
			return inner.Format(*p)
		},
	}
}
