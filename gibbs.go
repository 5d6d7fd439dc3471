package bridgman

// gibbsRow returns (∂·/∂P|T, ∂·/∂T|P) for s, reading only the coefficients
// that row uses. s is valid and never Rho.
func gibbsRow(st State, s Symbol, p *Properties) (dP, dT float64, err error) {
	switch s {
	case P:
		return 1, 0, nil
	case T:
		return 0, 1, nil
	}

	t := st.Temperature()
	pk := st.Pressure() * 1000

	// Every remaining row needs v.
	v, err := need(p.V, "v")
	if err != nil {
		return 0, 0, err
	}
	switch s {
	case V:
		kappa, alfav, err := kappaAlfav(p)
		if err != nil {
			return 0, 0, err
		}
		return -v * kappa, v * alfav, nil
	case U:
		kappa, alfav, err := kappaAlfav(p)
		if err != nil {
			return 0, 0, err
		}
		cp, err := need(p.Cp, "cp")
		if err != nil {
			return 0, 0, err
		}
		return v * (pk*kappa - t*alfav), cp - pk*v*alfav, nil
	case H:
		alfav, err := need(p.Alfav, "alfav")
		if err != nil {
			return 0, 0, err
		}
		cp, err := need(p.Cp, "cp")
		if err != nil {
			return 0, 0, err
		}
		return v * (1 - t*alfav), cp, nil
	case S:
		alfav, err := need(p.Alfav, "alfav")
		if err != nil {
			return 0, 0, err
		}
		cp, err := need(p.Cp, "cp")
		if err != nil {
			return 0, 0, err
		}
		return -v * alfav, cp / t, nil
	case G:
		entropy, err := need(p.S, "s")
		if err != nil {
			return 0, 0, err
		}
		return v, -entropy, nil
	default: // A
		kappa, alfav, err := kappaAlfav(p)
		if err != nil {
			return 0, 0, err
		}
		entropy, err := need(p.S, "s")
		if err != nil {
			return 0, 0, err
		}
		return pk * v * kappa, -pk*v*alfav - entropy, nil
	}
}

func kappaAlfav(p *Properties) (kappa, alfav float64, err error) {
	if kappa, err = need(p.Kappa, "kappa"); err != nil {
		return 0, 0, err
	}
	if alfav, err = need(p.Alfav, "alfav"); err != nil {
		return 0, 0, err
	}
	return kappa, alfav, nil
}

// DerivG returns ∂z/∂x|y from a fundamental Gibbs free energy equation of
// state, whose natural variables are (T, P).
//
// Depending on the operands p must carry v, s, cp, alfav and kappa (per
// kPa), plus rho when Rho is an operand. x and y must differ.
func DerivG(st State, z, x, y Symbol, p *Properties) (float64, error) {
	if err := checkOperands(operand{"x", x}, operand{"y", y}, operand{"z", z}); err != nil {
		return 0, err
	}
	z, x, y, mul, err := rhoScale(z, x, y, p)
	if err != nil {
		return 0, err
	}

	dPdx, dTdx, err := gibbsRow(st, x, p)
	if err != nil {
		return 0, err
	}
	dPdy, dTdy, err := gibbsRow(st, y, p)
	if err != nil {
		return 0, err
	}
	dPdz, dTdz, err := gibbsRow(st, z, p)
	if err != nil {
		return 0, err
	}

	deriv := (dPdz*dTdy - dTdz*dPdy) / (dPdx*dTdy - dTdx*dPdy)
	return mul * deriv, nil
}
