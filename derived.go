package bridgman

import (
	"fmt"
	"math"
)

// Complete fills the derived coefficients of p that are still unknown,
// evaluating every derivative with eng. Fields the caller already set are
// left untouched, so a Gibbs-side record completed with DerivG gains the
// Helmholtz-side inputs (cv, alfap, betap) and vice versa.
//
// The first failing derivative aborts; its error is wrapped with the field
// name.
func Complete(eng Engine, st State, p *Properties) error {
	if v, ok := p.V.Value(); ok && !p.Rho.IsKnown() {
		p.Rho = Known(1 / v)
	}
	if rho, ok := p.Rho.Value(); ok && !p.V.IsKnown() {
		p.V = Known(1 / rho)
	}
	completePotentials(st, p)

	t := st.Temperature()
	pk := st.Pressure() * 1000
	d := func(z, x, y Symbol) (float64, error) { return eng(st, z, x, y, p) }

	steps := []struct {
		field string
		dst   *Quantity
		eval  func() (float64, error)
	}{
		{"cp", &p.Cp, func() (float64, error) { return d(H, T, P) }},
		{"cv", &p.Cv, func() (float64, error) { return d(U, T, V) }},
		{"cp_cv", &p.CpCv, func() (float64, error) {
			return ratio(p.Cp, "cp", p.Cv, "cv")
		}},
		{"alfap", &p.Alfap, func() (float64, error) {
			dpdt, err := d(P, T, V)
			return dpdt / pk, err
		}},
		{"betap", &p.Betap, func() (float64, error) {
			dpdv, err := d(P, V, T)
			return -dpdv / pk, err
		}},
		{"alfav", &p.Alfav, func() (float64, error) {
			dvdt, err := d(V, T, P)
			return perVolume(dvdt, err, p)
		}},
		{"kappa", &p.Kappa, func() (float64, error) {
			dvdp, err := d(V, P, T)
			return perVolume(-dvdp, err, p)
		}},
		{"joule", &p.Joule, func() (float64, error) { return d(T, P, H) }},
		{"betas", &p.Betas, func() (float64, error) { return d(T, P, S) }},
		{"Gruneisen", &p.Gruneisen, func() (float64, error) {
			dpdt, err := d(P, T, V)
			if err != nil {
				return 0, err
			}
			vcv, err := ratio(p.V, "v", p.Cv, "cv")
			return vcv * dpdt, err
		}},
		{"Kt", &p.BulkModulusT, func() (float64, error) {
			dpdv, err := d(P, V, T)
			return byVolume(-dpdv, err, p)
		}},
		{"Ks", &p.BulkModulusS, func() (float64, error) {
			dpdv, err := d(P, V, S)
			return byVolume(-dpdv, err, p)
		}},
		{"kt", &p.ExpansionT, func() (float64, error) {
			kt, err := need(p.BulkModulusT, "Kt")
			return kt / pk, err
		}},
		{"gamma", &p.Gamma, func() (float64, error) {
			ks, err := need(p.BulkModulusS, "Ks")
			return ks / pk, err
		}},
		{"ks", &p.CompressibilityS, func() (float64, error) {
			dvdp, err := d(V, P, S)
			return perVolume(-dvdp, err, p)
		}},
		{"w", &p.W, func() (float64, error) {
			ks, err := need(p.BulkModulusS, "Ks")
			if err != nil {
				return 0, err
			}
			vks, err := byVolume(ks, nil, p)
			// kPa·m³/kg = kJ/kg = 1000 m²/s²
			return math.Sqrt(1000 * vks), err
		}},
		{"IntP", &p.IntP, func() (float64, error) {
			dpdt, err := d(P, T, V)
			return t*dpdt - pk, err
		}},
		{"dpdT_rho", &p.DpdTRho, func() (float64, error) { return d(P, T, Rho) }},
		{"dpdrho_T", &p.DpdRhoT, func() (float64, error) { return d(P, Rho, T) }},
		{"drhodT_P", &p.DrhodTP, func() (float64, error) { return d(Rho, T, P) }},
		{"drhodP_T", &p.DrhodPT, func() (float64, error) { return d(Rho, P, T) }},
		{"dhdT_rho", &p.DhdTRho, func() (float64, error) { return d(H, T, Rho) }},
		{"dhdT_P", &p.DhdTP, func() (float64, error) { return d(H, T, P) }},
		{"dhdrho_T", &p.DhdRhoT, func() (float64, error) { return d(H, Rho, T) }},
		{"dhdrho_P", &p.DhdRhoP, func() (float64, error) { return d(H, Rho, P) }},
		{"dhdP_T", &p.DhdPT, func() (float64, error) { return d(H, P, T) }},
		{"dhdP_rho", &p.DhdPRho, func() (float64, error) { return d(H, P, Rho) }},
	}
	for _, step := range steps {
		if step.dst.IsKnown() {
			continue
		}
		val, err := step.eval()
		if err != nil {
			return fmt.Errorf("bridgman: complete %s: %w", step.field, err)
		}
		*step.dst = Known(val)
	}
	return nil
}

// completePotentials closes u, h, a and g over h = u + Pv, a = u − Ts and
// g = h − Ts when v, s and at least one potential are known.
func completePotentials(st State, p *Properties) {
	v, okV := p.V.Value()
	s, okS := p.S.Value()
	if !okV || !okS {
		return
	}
	t := st.Temperature()
	pv := st.Pressure() * 1000 * v

	var u float64
	switch {
	case p.U.IsKnown():
		u = p.U.Or(0)
	case p.H.IsKnown():
		u = p.H.Or(0) - pv
	case p.A.IsKnown():
		u = p.A.Or(0) + t*s
	case p.G.IsKnown():
		u = p.G.Or(0) - pv + t*s
	default:
		return
	}
	for _, f := range []struct {
		dst *Quantity
		val float64
	}{
		{&p.U, u},
		{&p.H, u + pv},
		{&p.A, u - t*s},
		{&p.G, u + pv - t*s},
	} {
		if !f.dst.IsKnown() {
			*f.dst = Known(f.val)
		}
	}
}

func ratio(num Quantity, numField string, den Quantity, denField string) (float64, error) {
	n, err := need(num, numField)
	if err != nil {
		return 0, err
	}
	d, err := need(den, denField)
	if err != nil {
		return 0, err
	}
	return n / d, nil
}

// perVolume divides val by v, passing err through.
func perVolume(val float64, err error, p *Properties) (float64, error) {
	if err != nil {
		return 0, err
	}
	v, err := need(p.V, "v")
	return val / v, err
}

// byVolume multiplies val by v, passing err through.
func byVolume(val float64, err error, p *Properties) (float64, error) {
	if err != nil {
		return 0, err
	}
	v, err := need(p.V, "v")
	return val * v, err
}
