package symbolic_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"

	"github.com/njchilds90/bridgman/internal/symbolic"
)

// ============================================================
// Num tests
// ============================================================

func TestNum_String(t *testing.T) {
	assert.Equal(t, "42", symbolic.N(42).String())
	assert.Equal(t, "1/3", symbolic.F(1, 3).String())
	assert.Equal(t, "1/2", symbolic.Float(0.5).String())
	assert.Equal(t, "-2", symbolic.F(4, -2).String())
}

func TestNum_Float(t *testing.T) {
	assert.Equal(t, 0.1, symbolic.Float(0.1).Float64())
	assert.Panics(t, func() { symbolic.Float(math.NaN()) })
	assert.Panics(t, func() { symbolic.F(1, 0) })
}

// ============================================================
// Simplification
// ============================================================

func TestAdd_CollectsLikeTerms(t *testing.T) {
	x := symbolic.S("x")
	e := symbolic.AddOf(x, x, x, symbolic.N(2))
	assert.Equal(t, "3*x + 2", e.String())

	zero := symbolic.MinusOf(symbolic.MulOf(symbolic.N(2), x), symbolic.AddOf(x, x))
	assert.True(t, symbolic.N(0).Equal(zero), zero.String())
}

func TestMul_MergesPowers(t *testing.T) {
	x := symbolic.S("x")
	e := symbolic.MulOf(x, x, symbolic.PowOf(x, symbolic.N(-2)))
	assert.True(t, symbolic.N(1).Equal(e), e.String())

	sq := symbolic.MulOf(symbolic.N(3), x, x)
	assert.Equal(t, "3*x^(2)", sq.String())

	assert.True(t, symbolic.N(0).Equal(symbolic.MulOf(symbolic.N(0), x)))
}

func TestPow_Numeric(t *testing.T) {
	assert.True(t, symbolic.F(1, 8).Equal(symbolic.PowOf(symbolic.N(2), symbolic.N(-3))))
	assert.True(t, symbolic.N(1).Equal(symbolic.PowOf(symbolic.S("x"), symbolic.N(0))))

	nested := symbolic.PowOf(symbolic.PowOf(symbolic.S("x"), symbolic.N(2)), symbolic.N(3))
	assert.Equal(t, "x^(6)", nested.String())
}

func TestFunc_Inverses(t *testing.T) {
	x := symbolic.S("x")
	assert.True(t, x.Equal(symbolic.ExpOf(symbolic.LnOf(x))))
	assert.True(t, x.Equal(symbolic.LnOf(symbolic.ExpOf(x))))
	assert.True(t, symbolic.N(0).Equal(symbolic.LnOf(symbolic.N(1))))
	assert.True(t, symbolic.N(1).Equal(symbolic.ExpOf(symbolic.N(0))))
}

// ============================================================
// Differentiation
// ============================================================

func TestDiff_Rules(t *testing.T) {
	x, y := symbolic.S("x"), symbolic.S("y")
	tests := []struct {
		name string
		expr symbolic.Expr
		want string
	}{
		{"constant", symbolic.N(5), "0"},
		{"other symbol", y, "0"},
		{"power", symbolic.PowOf(x, symbolic.N(3)), "3*x^(2)"},
		{"log", symbolic.LnOf(x), "x^(-1)"},
		{"exp", symbolic.ExpOf(x), "exp(x)"},
		{"x ln x", symbolic.MulOf(x, symbolic.LnOf(x)), "ln(x) + 1"},
		{"product with constant symbol", symbolic.MulOf(x, y), "y"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, symbolic.Diff(tt.expr, "x").String())
		})
	}
}

func TestDiffN(t *testing.T) {
	x := symbolic.S("x")
	d := symbolic.DiffN(symbolic.PowOf(x, symbolic.N(4)), "x", 4)
	assert.True(t, symbolic.N(24).Equal(d), d.String())
}

func TestDiff_MatchesFiniteDifference(t *testing.T) {
	x := symbolic.S("x")
	// f(x) = x·ln(x) − 3/(x − 1/2) + exp(x/4)
	f := symbolic.AddOf(
		symbolic.MulOf(x, symbolic.LnOf(x)),
		symbolic.NegOf(symbolic.QuoOf(symbolic.N(3), symbolic.MinusOf(x, symbolic.F(1, 2)))),
		symbolic.ExpOf(symbolic.MulOf(symbolic.F(1, 4), x)),
	)
	df := symbolic.Diff(f, "x")

	eval := func(e symbolic.Expr) func(float64) float64 {
		return func(v float64) float64 {
			val, err := symbolic.Value(e, map[string]float64{"x": v})
			require.NoError(t, err)
			return val
		}
	}
	for _, at := range []float64{0.9, 2, 7.5} {
		want := fd.Derivative(eval(f), at, &fd.Settings{Formula: fd.Central, Step: 1e-6})
		got := eval(df)(at)
		assert.InEpsilon(t, want, got, 1e-7, "x=%g", at)
	}
}

// ============================================================
// Evaluation
// ============================================================

func TestValue(t *testing.T) {
	x, y := symbolic.S("x"), symbolic.S("y")
	e := symbolic.AddOf(symbolic.MulOf(x, y), symbolic.N(1))

	v, err := symbolic.Value(e, map[string]float64{"x": 2, "y": 3})
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)

	_, err = symbolic.Value(e, map[string]float64{"x": 2})
	require.ErrorIs(t, err, symbolic.ErrUnbound)
	assert.Contains(t, err.Error(), "y")

	_, err = symbolic.Value(e, map[string]float64{"x": math.Inf(1), "y": 1})
	assert.Error(t, err)
}

func TestValue_OutsideDomain(t *testing.T) {
	x := symbolic.S("x")

	_, err := symbolic.Value(symbolic.LnOf(x), map[string]float64{"x": -1})
	require.Error(t, err)
	assert.NotErrorIs(t, err, symbolic.ErrUnbound)

	_, err = symbolic.Value(symbolic.QuoOf(symbolic.N(1), x), map[string]float64{"x": 0})
	assert.Error(t, err)
}

func TestBind_Partial(t *testing.T) {
	x, y := symbolic.S("x"), symbolic.S("y")
	e := symbolic.Bind(symbolic.MulOf(x, y), map[string]float64{"x": 2})
	assert.Equal(t, "2*y", e.String())
	assert.Equal(t, []string{"y"}, symbolic.FreeSymbols(e))
}

func TestFreeSymbols(t *testing.T) {
	e := symbolic.AddOf(
		symbolic.S("z"),
		symbolic.MulOf(symbolic.S("x"), symbolic.LnOf(symbolic.S("y"))),
		symbolic.PowOf(symbolic.S("x"), symbolic.S("w")),
	)
	assert.Equal(t, []string{"w", "x", "y", "z"}, symbolic.FreeSymbols(e))
	assert.Empty(t, symbolic.FreeSymbols(symbolic.N(3)))
}
