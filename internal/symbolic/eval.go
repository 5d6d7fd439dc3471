package symbolic

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

// ErrUnbound is returned when an expression still has free symbols after
// binding.
var ErrUnbound = errors.New("symbolic: unbound symbols")

func Diff(e Expr, name string) Expr { return e.Diff(name).Simplify() }

// DiffN differentiates e n times with respect to name.
func DiffN(e Expr, name string, n int) Expr {
	for i := 0; i < n; i++ {
		e = Diff(e, name)
	}
	return e
}

// Bind substitutes every name of env by its value. Values must be finite.
func Bind(e Expr, env map[string]float64) Expr {
	names := make([]string, 0, len(env))
	for name := range env {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		e = e.Sub(name, Float(env[name]))
	}
	return e.Simplify()
}

// Value evaluates e at env.
func Value(e Expr, env map[string]float64) (float64, error) {
	for name, v := range env {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("symbolic: %s = %v is not finite", name, v)
		}
	}
	bound := Bind(e, env)
	n, ok := bound.Eval()
	if !ok {
		if free := FreeSymbols(bound); len(free) > 0 {
			return 0, fmt.Errorf("%w: %s", ErrUnbound, strings.Join(free, ", "))
		}
		return 0, fmt.Errorf("symbolic: %s is not finite at %v", e, env)
	}
	return n.Float64(), nil
}

// FreeSymbols returns the sorted names of the symbols in e.
func FreeSymbols(e Expr) []string {
	seen := map[string]struct{}{}
	collectSymbols(e, seen)
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func collectSymbols(e Expr, out map[string]struct{}) {
	switch v := e.(type) {
	case *Sym:
		out[v.name] = struct{}{}
	case *Add:
		for _, t := range v.terms {
			collectSymbols(t, out)
		}
	case *Mul:
		for _, f := range v.factors {
			collectSymbols(f, out)
		}
	case *Pow:
		collectSymbols(v.base, out)
		collectSymbols(v.exp, out)
	case *Func:
		collectSymbols(v.arg, out)
	}
}
