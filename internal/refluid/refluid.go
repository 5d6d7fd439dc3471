// Package refluid provides a van der Waals reference fluid whose Helmholtz
// free energy is written in closed form. Every coefficient it reports comes
// from exact differentiation of that one function, so its Helmholtz-side
// and Gibbs-side inputs describe the same state.
package refluid

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"

	"github.com/njchilds90/bridgman"
	"github.com/njchilds90/bridgman/internal/symbolic"
)

// ErrUnstable is returned for states with P ≤ 0 or ∂P/∂v|T ≥ 0, where the
// van der Waals surface has no physical meaning.
var ErrUnstable = errors.New("refluid: state is not mechanically stable")

var validate = validator.New()

// Params of a van der Waals fluid with constant ideal-gas heat capacity.
type Params struct {
	R   float64 `validate:"gt=0"`  // specific gas constant, kJ/kgK
	A   float64 `validate:"gte=0"` // attraction parameter, kPa·m⁶/kg²
	B   float64 `validate:"gte=0"` // covolume, m³/kg
	Cv0 float64 `validate:"gt=0"`  // ideal-gas isochoric heat capacity, kJ/kgK
	T0  float64 `validate:"gt=0"`  // entropy reference temperature, K
}

// Fluid evaluates the state functions of a van der Waals fluid at (T, v).
type Fluid struct {
	params Params
	a      symbolic.Expr
	funcs  map[bridgman.Symbol]symbolic.Expr
	cv     symbolic.Expr
	dPdT   symbolic.Expr
	dPdv   symbolic.Expr
}

// New builds the fluid
//
//	a(T, v) = cv0·(T − T·ln(T/T0)) − R·T·ln(v − b) − A/v
//
// and its derivatives.
func New(p Params) (*Fluid, error) {
	if err := validate.Struct(p); err != nil {
		return nil, fmt.Errorf("refluid: invalid params: %w", err)
	}
	t, v := symbolic.S("T"), symbolic.S("v")
	r := symbolic.Float(p.R)

	lnT := symbolic.MinusOf(symbolic.LnOf(t), symbolic.Float(math.Log(p.T0)))
	a := symbolic.AddOf(
		symbolic.MulOf(symbolic.Float(p.Cv0), symbolic.MinusOf(t, symbolic.MulOf(t, lnT))),
		symbolic.NegOf(symbolic.MulOf(r, t, symbolic.LnOf(symbolic.MinusOf(v, symbolic.Float(p.B))))),
		symbolic.NegOf(symbolic.QuoOf(symbolic.Float(p.A), v)),
	)

	s := symbolic.NegOf(symbolic.Diff(a, "T"))
	pk := symbolic.NegOf(symbolic.Diff(a, "v"))
	u := symbolic.AddOf(a, symbolic.MulOf(t, s))
	pv := symbolic.MulOf(pk, v)

	return &Fluid{
		params: p,
		a:      a,
		funcs: map[bridgman.Symbol]symbolic.Expr{
			bridgman.P:   pk,
			bridgman.T:   t,
			bridgman.V:   v,
			bridgman.Rho: symbolic.PowOf(v, symbolic.N(-1)),
			bridgman.U:   u,
			bridgman.H:   symbolic.AddOf(u, pv),
			bridgman.S:   s,
			bridgman.G:   symbolic.AddOf(a, pv),
			bridgman.A:   a,
		},
		cv:   symbolic.MulOf(t, symbolic.Diff(s, "T")),
		dPdT: symbolic.Diff(pk, "T"),
		dPdv: symbolic.Diff(pk, "v"),
	}, nil
}

// Water returns a van der Waals fluid fitted to the critical point of water
// (647.096 K, 22.064 MPa) with cv0 = 3R.
func Water() *Fluid {
	const (
		r  = 0.46151805 // kJ/kgK
		tc = 647.096    // K
		pc = 22064.0    // kPa
	)
	f, err := New(Params{
		R:   r,
		A:   27 * r * r * tc * tc / (64 * pc),
		B:   r * tc / (8 * pc),
		Cv0: 3 * r,
		T0:  273.16,
	})
	if err != nil {
		panic(err)
	}
	return f
}

func (f *Fluid) Params() Params { return f.params }

// Helmholtz returns a(T, v) in kJ/kg.
func (f *Fluid) Helmholtz() symbolic.Expr { return f.a }

// Func returns the closed form of sym as a function of T and v. Pressure is
// in kPa.
func (f *Fluid) Func(sym bridgman.Symbol) (symbolic.Expr, error) {
	e, ok := f.funcs[sym]
	if !ok {
		return nil, &bridgman.InvalidSymbolError{Name: sym.String()}
	}
	return e, nil
}

// Eval returns the value of sym at (t [K], v [m³/kg]). Pressure is in kPa.
func (f *Fluid) Eval(sym bridgman.Symbol, t, v float64) (float64, error) {
	e, err := f.Func(sym)
	if err != nil {
		return 0, err
	}
	return symbolic.Value(e, map[string]float64{"T": t, "v": v})
}

// State returns the point and the fully populated coefficient record at
// (t [K], v [m³/kg]): v, rho, u, h, s, a, g, cv, cp, Z plus the
// Helmholtz-side (alfap, betap) and Gibbs-side (alfav, kappa) couplings.
func (f *Fluid) State(t, v float64) (bridgman.Point, *bridgman.Properties, error) {
	env := map[string]float64{"T": t, "v": v}
	vals := map[bridgman.Symbol]float64{}
	for _, sym := range []bridgman.Symbol{bridgman.P, bridgman.U, bridgman.H, bridgman.S, bridgman.G, bridgman.A} {
		x, err := symbolic.Value(f.funcs[sym], env)
		if err != nil {
			return bridgman.Point{}, nil, fmt.Errorf("refluid: %s: %w", sym, err)
		}
		vals[sym] = x
	}
	cv, err := symbolic.Value(f.cv, env)
	if err != nil {
		return bridgman.Point{}, nil, fmt.Errorf("refluid: cv: %w", err)
	}
	dPdT, err := symbolic.Value(f.dPdT, env)
	if err != nil {
		return bridgman.Point{}, nil, fmt.Errorf("refluid: dP/dT: %w", err)
	}
	dPdv, err := symbolic.Value(f.dPdv, env)
	if err != nil {
		return bridgman.Point{}, nil, fmt.Errorf("refluid: dP/dv: %w", err)
	}

	pk := vals[bridgman.P]
	if pk <= 0 || dPdv >= 0 {
		return bridgman.Point{}, nil, fmt.Errorf("%w: T=%g K, v=%g m³/kg", ErrUnstable, t, v)
	}

	props := &bridgman.Properties{
		V:     bridgman.Known(v),
		Rho:   bridgman.Known(1 / v),
		U:     bridgman.Known(vals[bridgman.U]),
		H:     bridgman.Known(vals[bridgman.H]),
		S:     bridgman.Known(vals[bridgman.S]),
		A:     bridgman.Known(vals[bridgman.A]),
		G:     bridgman.Known(vals[bridgman.G]),
		Cv:    bridgman.Known(cv),
		Cp:    bridgman.Known(cv - t*dPdT*dPdT/dPdv),
		Z:     bridgman.Known(pk * v / (f.params.R * t)),
		Alfap: bridgman.Known(dPdT / pk),
		Betap: bridgman.Known(-dPdv / pk),
		Alfav: bridgman.Known(-dPdT / (v * dPdv)),
		Kappa: bridgman.Known(-1 / (v * dPdv)),
	}
	return bridgman.Point{T: t, P: pk / 1000}, props, nil
}
