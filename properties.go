package bridgman

import (
	"encoding/json"
	"math"
	"strconv"
)

// ============================================================
// Quantity — optional physical value
// ============================================================

// Quantity is a float64 that may be unknown. The zero value is Unknown, so
// reading an unpopulated field can never yield a silent zero.
type Quantity struct {
	v     float64
	known bool
}

// Unknown is the "not available" marker.
var Unknown Quantity

// Known wraps v. NaN and ±Inf carry no valid physical value and produce
// Unknown.
func Known(v float64) Quantity {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Unknown
	}
	return Quantity{v: v, known: true}
}

func (q Quantity) Value() (float64, bool) { return q.v, q.known }
func (q Quantity) IsKnown() bool          { return q.known }

// Or returns the value, or fallback when q is unknown.
func (q Quantity) Or(fallback float64) float64 {
	if q.known {
		return q.v
	}
	return fallback
}

func (q Quantity) String() string {
	if !q.known {
		return "unknown"
	}
	return strconv.FormatFloat(q.v, 'g', -1, 64)
}

func (q Quantity) MarshalJSON() ([]byte, error) {
	if !q.known {
		return []byte("null"), nil
	}
	return json.Marshal(q.v)
}

func (q *Quantity) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*q = Unknown
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*q = Known(v)
	return nil
}

// ============================================================
// Properties — the null phase
// ============================================================

// Properties holds the phase-specific coefficients an equation-of-state
// evaluator produces. Every field starts Unknown; &Properties{} is the null
// phase. Pressure derivatives are per kPa.
type Properties struct {
	V   Quantity `json:"v"`   // specific volume, m³/kg
	Rho Quantity `json:"rho"` // density, kg/m³

	H Quantity `json:"h"` // enthalpy, kJ/kg
	S Quantity `json:"s"` // entropy, kJ/kgK
	U Quantity `json:"u"` // internal energy, kJ/kg
	A Quantity `json:"a"` // Helmholtz free energy, kJ/kg
	G Quantity `json:"g"` // Gibbs free energy, kJ/kg

	Cp   Quantity `json:"cp"`    // isobaric heat capacity, kJ/kgK
	Cv   Quantity `json:"cv"`    // isochoric heat capacity, kJ/kgK
	CpCv Quantity `json:"cp_cv"` // heat capacity ratio
	W    Quantity `json:"w"`     // speed of sound, m/s
	Z    Quantity `json:"Z"`     // compressibility factor
	Fi   Quantity `json:"fi"`    // fugacity coefficient
	F    Quantity `json:"f"`     // fugacity, MPa

	Mu      Quantity `json:"mu"`      // dynamic viscosity, Pa·s
	K       Quantity `json:"k"`       // thermal conductivity, W/mK
	Nu      Quantity `json:"nu"`      // kinematic viscosity, m²/s
	Prandtl Quantity `json:"Prandt"`  // Prandtl number
	Epsilon Quantity `json:"epsilon"` // dielectric constant
	Alfa    Quantity `json:"alfa"`    // thermal diffusivity, m²/s
	N       Quantity `json:"n"`       // refractive index

	Alfap            Quantity `json:"alfap"`     // relative pressure coefficient (1/P)·∂P/∂T|v, 1/K
	Betap            Quantity `json:"betap"`     // isothermal stress coefficient −(1/P)·∂P/∂v|T, kg/m³
	Joule            Quantity `json:"joule"`     // Joule-Thomson coefficient ∂T/∂P|h, K/kPa
	Gruneisen        Quantity `json:"Gruneisen"` // Grüneisen parameter
	Alfav            Quantity `json:"alfav"`     // cubic expansion coefficient, 1/K
	Kappa            Quantity `json:"kappa"`     // isothermal compressibility, 1/kPa
	Betas            Quantity `json:"betas"`     // isentropic temperature-pressure coefficient ∂T/∂P|s, K/kPa
	Gamma            Quantity `json:"gamma"`     // isentropic exponent
	BulkModulusT     Quantity `json:"Kt"`        // isothermal bulk modulus, kPa
	BulkModulusS     Quantity `json:"Ks"`        // isentropic bulk modulus, kPa
	ExpansionT       Quantity `json:"kt"`        // isothermal expansion coefficient
	CompressibilityS Quantity `json:"ks"`        // isentropic compressibility, 1/kPa

	DpdTRho Quantity `json:"dpdT_rho"` // kPa/K
	DpdRhoT Quantity `json:"dpdrho_T"` // kPa·m³/kg
	DrhodTP Quantity `json:"drhodT_P"` // kg/m³K
	DrhodPT Quantity `json:"drhodP_T"` // kg/m³kPa
	DhdTRho Quantity `json:"dhdT_rho"` // kJ/kgK
	DhdTP   Quantity `json:"dhdT_P"`   // kJ/kgK
	DhdRhoT Quantity `json:"dhdrho_T"` // kJ·m³/kg²
	DhdRhoP Quantity `json:"dhdrho_P"` // kJ·m³/kg²
	DhdPT   Quantity `json:"dhdP_T"`   // kJ/kg·kPa
	DhdPRho Quantity `json:"dhdP_rho"` // kJ/kg·kPa

	ZRho   Quantity `json:"Z_rho"`  // ∂Z/∂ρ|T, m³/kg
	IntP   Quantity `json:"IntP"`   // internal pressure, kPa
	HInput Quantity `json:"hInput"` // input enthalpy, kJ/kg
}

// need returns the value of q, or a *MissingPropertyError naming field.
func need(q Quantity, field string) (float64, error) {
	v, ok := q.Value()
	if !ok {
		return 0, &MissingPropertyError{Field: field}
	}
	return v, nil
}

// rhoScale applies the ρ ↔ v substitution to z, x and y. The returned factor
// is the Jacobian product −ρ² (for z) · −1/ρ² (for x); y carries no factor
// since it cancels between numerator and denominator.
func rhoScale(z, x, y Symbol, p *Properties) (Symbol, Symbol, Symbol, float64, error) {
	mul := 1.0
	if z == Rho || x == Rho {
		rho, err := need(p.Rho, "rho")
		if err != nil {
			return z, x, y, 0, err
		}
		if z == Rho {
			mul *= -rho * rho
			z = V
		}
		if x == Rho {
			mul *= -1 / (rho * rho)
			x = V
		}
	}
	if y == Rho {
		y = V
	}
	return z, x, y, mul, nil
}
