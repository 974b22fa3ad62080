package evaluator

import (
	"errors"
	"math"
	"strconv"

	"github.com/funvibe/numlang/internal/symbols"
)

var errDivisionByZero = errors.New("division by zero")

// Result is the value of a print expression.
type Result struct {
	Value     float64
	IsInteger bool
}

// Format renders the result the way print shows it. Integer results are
// truncated toward zero and saturate at the int64 bounds; a non-finite
// integer result can only come from a division by zero and is an error.
func (r Result) Format() (string, error) {
	if !r.IsInteger {
		return symbols.FormatFloat(r.Value), nil
	}
	if math.IsNaN(r.Value) || math.IsInf(r.Value, 0) {
		return "", errDivisionByZero
	}
	t := math.Trunc(r.Value)
	switch {
	case t >= math.MaxInt64:
		return strconv.FormatInt(math.MaxInt64, 10), nil
	case t <= math.MinInt64:
		return strconv.FormatInt(math.MinInt64, 10), nil
	}
	return strconv.FormatInt(int64(t), 10), nil
}
