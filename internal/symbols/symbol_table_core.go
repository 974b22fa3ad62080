package symbols

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind is the numeric kind a variable is declared with. It never changes
// for the lifetime of the variable.
type Kind int

const (
	Integer Kind = iota
	Float
)

func (k Kind) String() string {
	if k == Float {
		return "double"
	}
	return "int"
}

// KindOf maps a declaration keyword to its kind.
func KindOf(keyword string) (Kind, bool) {
	switch keyword {
	case "int":
		return Integer, true
	case "double":
		return Float, true
	}
	return Integer, false
}

var (
	ErrUndeclared     = errors.New("variable not declared")
	ErrKindMismatch   = errors.New("kind mismatch")
	ErrInvalidLiteral = errors.New("invalid literal")
)

// Value is a tagged numeric value. Only the field selected by Kind is
// meaningful.
type Value struct {
	Kind  Kind
	Int   int64
	Float float64
}

func IntValue(i int64) Value     { return Value{Kind: Integer, Int: i} }
func FloatValue(f float64) Value { return Value{Kind: Float, Float: f} }

// Zero returns the value a declaration without initializer gets.
func Zero(k Kind) Value {
	return Value{Kind: k}
}

// AsFloat widens the value to float64.
func (v Value) AsFloat() float64 {
	if v.Kind == Integer {
		return float64(v.Int)
	}
	return v.Float
}

func (v Value) String() string {
	if v.Kind == Integer {
		return strconv.FormatInt(v.Int, 10)
	}
	return FormatFloat(v.Float)
}

// ParseLiteral converts literal text to a value of kind k. Integer literals
// must not have a fractional part.
func ParseLiteral(k Kind, text string) (Value, error) {
	switch k {
	case Integer:
		i, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %s literal %q", ErrInvalidLiteral, k, text)
		}
		return IntValue(i), nil
	default:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %s literal %q", ErrInvalidLiteral, k, text)
		}
		return FloatValue(f), nil
	}
}

// FormatFloat renders f with full precision and always with a fractional
// part or exponent: 5.0, 2.5, 1.0E10, 1.0E-4. Magnitudes in [1e-3, 1e7)
// use plain notation, everything else scientific notation.
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		if math.Signbit(f) {
			return "-0.0"
		}
		return "0.0"
	}

	abs := math.Abs(f)
	if abs >= 1e-3 && abs < 1e7 {
		s := strconv.FormatFloat(f, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}

	s := strconv.FormatFloat(f, 'E', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "E")
	if !strings.Contains(mantissa, ".") {
		mantissa += ".0"
	}
	negative := strings.HasPrefix(exp, "-")
	exp = strings.TrimLeft(strings.TrimLeft(exp, "+-"), "0")
	if negative {
		exp = "-" + exp
	}
	return mantissa + "E" + exp
}
