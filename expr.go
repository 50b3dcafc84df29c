package sunflower

import (
	"fmt"
	"math"
	"strings"

	"github.com/expr-lang/expr"
)

// rotationEnv exposes the named constants to rotation expressions.
var rotationEnv = map[string]any{
	"phi": Phi,
	"pi":  math.Pi,
	"e":   math.E,
}

// EvalRotation evaluates an arithmetic expression such as "1/3+1/5" to a
// rotation value. The identifiers phi, pi and e are available. The result is
// returned as is, not reduced to its fractional part.
func EvalRotation(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("sunflower: empty rotation expression")
	}
	out, err := expr.Eval(s, rotationEnv)
	if err != nil {
		return 0, fmt.Errorf("sunflower: evaluate %q: %w", s, err)
	}
	v, ok := toFloat(out)
	if !ok {
		return 0, fmt.Errorf("sunflower: evaluate %q: result %v (%T) is not a number", s, out, out)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("sunflower: evaluate %q: result %v is not finite", s, v)
	}
	return v, nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}
