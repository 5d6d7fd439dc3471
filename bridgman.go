// Package bridgman computes partial derivatives of thermodynamic state
// functions from a fundamental equation of state.
//
// Any derivative ∂z/∂x|y is the ratio of two 2×2 determinants built from a
// pair of basis rows, following the general relation of IAPWS Advisory
// Note 3 (Bridgman's tables). Two reference pairs are supported:
//   - (T, v) for Helmholtz-form equations, see DerivH
//   - (T, P) for Gibbs-form equations, see DerivG
//
// Design goals:
//   - Pure functions, no state kept between calls
//   - Closed set of operand symbols checked before any arithmetic
//   - Optional coefficients that cannot be read as zero by accident
//
// Units follow the IAPWS conventions: T in K, P in MPa, v in m³/kg, energies
// in kJ/kg and entropies in kJ/kgK. The basis tables scale P by 1000, so every
// derivative taken with respect to or of pressure is per kPa.
package bridgman

import "fmt"

// ============================================================
// Symbol — operand of a partial derivative
// ============================================================

// Symbol names a thermodynamic quantity that may appear as numerator,
// denominator or held-constant operand of a derivative. The zero value is
// not a valid symbol.
type Symbol uint8

const (
	P   Symbol = iota + 1 // pressure
	T                     // temperature
	V                     // specific volume
	Rho                   // density, rewritten to V before table lookup
	U                     // internal energy
	H                     // enthalpy
	S                     // entropy
	G                     // Gibbs free energy
	A                     // Helmholtz free energy
)

var symbolNames = [...]string{
	P:   "P",
	T:   "T",
	V:   "v",
	Rho: "rho",
	U:   "u",
	H:   "h",
	S:   "s",
	G:   "g",
	A:   "a",
}

// Symbols lists every valid symbol in declaration order.
func Symbols() []Symbol { return []Symbol{P, T, V, Rho, U, H, S, G, A} }

// Valid reports whether s is one of the declared symbols.
func (s Symbol) Valid() bool { return s >= P && s <= A }

func (s Symbol) String() string {
	if s.Valid() {
		return symbolNames[s]
	}
	return fmt.Sprintf("Symbol(%d)", uint8(s))
}

// ParseSymbol maps an operand name ("P", "T", "v", "rho", "u", "h", "s",
// "g", "a") to its Symbol. Names are case-sensitive.
func ParseSymbol(name string) (Symbol, error) {
	for _, s := range Symbols() {
		if symbolNames[s] == name {
			return s, nil
		}
	}
	return 0, &InvalidSymbolError{Name: name}
}

// ============================================================
// State — the evaluation point
// ============================================================

// State supplies the non phase-specific facts of the evaluation point.
type State interface {
	Temperature() float64 // K
	Pressure() float64    // MPa
}

// Point is the plain State value.
type Point struct {
	T float64 // K
	P float64 // MPa
}

func (p Point) Temperature() float64 { return p.T }
func (p Point) Pressure() float64    { return p.P }

// ============================================================
// Request — a derivative ∂Z/∂X|Y
// ============================================================

// Engine evaluates ∂z/∂x|y at st from the coefficients in p. DerivH and
// DerivG are engines.
type Engine func(st State, z, x, y Symbol, p *Properties) (float64, error)

// Request is the ordered operand triple of ∂Z/∂X|Y. X and Y must differ.
type Request struct {
	Z, X, Y Symbol
}

// ParseRequest builds a Request from operand names. The returned
// *InvalidSymbolError names the offending operand.
func ParseRequest(z, x, y string) (Request, error) {
	var req Request
	for _, op := range []struct {
		operand string
		name    string
		dst     *Symbol
	}{
		{"z", z, &req.Z},
		{"x", x, &req.X},
		{"y", y, &req.Y},
	} {
		s, err := ParseSymbol(op.name)
		if err != nil {
			return Request{}, &InvalidSymbolError{Operand: op.operand, Name: op.name}
		}
		*op.dst = s
	}
	return req, nil
}

func (r Request) String() string {
	return fmt.Sprintf("∂%s/∂%s|%s", r.Z, r.X, r.Y)
}

// Eval evaluates the request with eng.
func (r Request) Eval(eng Engine, st State, p *Properties) (float64, error) {
	return eng(st, r.Z, r.X, r.Y, p)
}

// DerivH evaluates the request from Helmholtz-side coefficients.
func (r Request) DerivH(st State, p *Properties) (float64, error) { return r.Eval(DerivH, st, p) }

// DerivG evaluates the request from Gibbs-side coefficients.
func (r Request) DerivG(st State, p *Properties) (float64, error) { return r.Eval(DerivG, st, p) }
