package bridgman

// table holds one basis row per symbol; the Rho slot is never read.
type table [A + 1]float64

// helmholtzBasis returns ∂·/∂T|v and ∂·/∂v|T for every symbol.
func helmholtzBasis(st State, p *Properties) (dT, dv table, err error) {
	var v, cv, s, alfap, betap float64
	for _, f := range []struct {
		dst   *float64
		q     Quantity
		field string
	}{
		{&v, p.V, "v"},
		{&cv, p.Cv, "cv"},
		{&s, p.S, "s"},
		{&alfap, p.Alfap, "alfap"},
		{&betap, p.Betap, "betap"},
	} {
		if *f.dst, err = need(f.q, f.field); err != nil {
			return dT, dv, err
		}
	}

	t := st.Temperature()
	pk := st.Pressure() * 1000

	dT[P], dv[P] = pk*alfap, -pk*betap
	dT[T], dv[T] = 1, 0
	dT[V], dv[V] = 0, 1
	dT[U], dv[U] = cv, pk*(t*alfap-1)
	dT[H], dv[H] = cv+pk*v*alfap, pk*(t*alfap-v*betap)
	dT[S], dv[S] = cv/t, pk*alfap
	dT[G], dv[G] = pk*v*alfap-s, -pk*v*betap
	dT[A], dv[A] = -s, -pk
	return dT, dv, nil
}

// DerivH returns ∂z/∂x|y from a fundamental Helmholtz free energy equation
// of state, whose natural variables are (T, v).
//
// p must carry v, cv, s, alfap and betap, plus rho when Rho is an operand.
// x and y must differ.
func DerivH(st State, z, x, y Symbol, p *Properties) (float64, error) {
	if err := checkOperands(operand{"z", z}, operand{"x", x}, operand{"y", y}); err != nil {
		return 0, err
	}
	// ∂ρ/∂b|c = −ρ²·∂v/∂b|c and ∂a/∂ρ|c = −1/ρ²·∂a/∂v|c
	z, x, y, mul, err := rhoScale(z, x, y, p)
	if err != nil {
		return 0, err
	}
	dT, dv, err := helmholtzBasis(st, p)
	if err != nil {
		return 0, err
	}
	deriv := (dv[z]*dT[y] - dT[z]*dv[y]) / (dv[x]*dT[y] - dT[x]*dv[y])
	return mul * deriv, nil
}
