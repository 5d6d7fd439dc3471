package bridgman_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/njchilds90/bridgman"
	"github.com/njchilds90/bridgman/internal/refluid"
)

// literal returns the liquid-water point used in the package docs. The
// coefficients are illustrative, not mutually consistent.
func literal() (bridgman.Point, *bridgman.Properties) {
	return bridgman.Point{T: 300, P: 1}, &bridgman.Properties{
		V:     bridgman.Known(0.001003),
		Rho:   bridgman.Known(997.047),
		Cv:    bridgman.Known(4130),
		S:     bridgman.Known(0.3931),
		Alfap: bridgman.Known(0.0002656),
		Betap: bridgman.Known(1.405e9),
	}
}

type refState struct {
	name  string
	t, v  float64
	point bridgman.Point
	props *bridgman.Properties
}

// refStates returns consistent states of the van der Waals water model: a
// dilute vapour and a dense supercritical fluid.
func refStates(t *testing.T) (*refluid.Fluid, []refState) {
	t.Helper()
	fluid := refluid.Water()
	states := []refState{
		{name: "vapour", t: 500, v: 0.5},
		{name: "dense", t: 700, v: 0.004},
	}
	for i := range states {
		pt, props, err := fluid.State(states[i].t, states[i].v)
		require.NoError(t, err, states[i].name)
		states[i].point, states[i].props = pt, props
	}
	return fluid, states
}

// basis lists the symbols that are functionally independent pairwise; Rho
// is covered separately since it is a function of v alone.
var basis = []bridgman.Symbol{
	bridgman.P, bridgman.T, bridgman.V, bridgman.U,
	bridgman.H, bridgman.S, bridgman.G, bridgman.A,
}

func engines() map[string]bridgman.Engine {
	return map[string]bridgman.Engine{"helmholtz": bridgman.DerivH, "gibbs": bridgman.DerivG}
}

func assertClose(t *testing.T, want, got, rel float64, label string) {
	t.Helper()
	if !scalar.EqualWithinAbsOrRel(want, got, 1e-12, rel) {
		require.Failf(t, "values differ", "%s: want %.15g, got %.15g (rel %g)", label, want, got, rel)
	}
}

func mustDeriv(t *testing.T, eng bridgman.Engine, st bridgman.State, z, x, y bridgman.Symbol, p *bridgman.Properties) float64 {
	t.Helper()
	d, err := eng(st, z, x, y, p)
	require.NoError(t, err, "∂%s/∂%s|%s", z, x, y)
	return d
}
