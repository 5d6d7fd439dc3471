package bridgman

import "gonum.org/v1/gonum/floats/scalar"

// Phase is a human-readable phase label.
type Phase string

const (
	SupercriticalFluid Phase = "Supercritical fluid"
	Gas                Phase = "Gas"
	CompressibleLiquid Phase = "Compressible liquid"
	CriticalPoint      Phase = "Critical point"
	SaturatedVapor     Phase = "Saturated vapor"
	SaturatedLiquid    Phase = "Saturated liquid"
	TwoPhases          Phase = "Two phases"
	Vapour             Phase = "Vapour"
	Liquid             Phase = "Liquid"

	// Unclassified is returned when no rule of ClassifyPhase matches.
	Unclassified Phase = "Unclassified"
)

// SaturationRegion is the IAPWS-IF97 region number of the two-phase dome.
const SaturationRegion = 4

// PhaseRoundDigits is the number of decimals T and P are rounded to before
// they are compared with the critical point.
const PhaseRoundDigits = 8

// Known reports whether ph is one of the classified labels.
func (ph Phase) Known() bool {
	switch ph {
	case SupercriticalFluid, Gas, CompressibleLiquid, CriticalPoint,
		SaturatedVapor, SaturatedLiquid, TwoPhases, Vapour, Liquid:
		return true
	}
	return false
}

func (ph Phase) String() string { return string(ph) }

// ClassifyPhase returns the phase label of the state (t [K], p [MPa]) for a
// fluid with critical point (tc, pc). x is the vapour quality, NaN when not
// defined; region is the IAPWS-IF97 region number, 0 when not applicable.
// The first matching rule wins.
func ClassifyPhase(tc, pc, t, p, x float64, region int) Phase {
	p = scalar.RoundEven(p, PhaseRoundDigits)
	t = scalar.RoundEven(t, PhaseRoundDigits)
	switch {
	case p > pc && t > tc:
		return SupercriticalFluid
	case t > tc:
		return Gas
	case p > pc:
		return CompressibleLiquid
	case p == pc && t == tc:
		return CriticalPoint
	case region == SaturationRegion && x == 1:
		return SaturatedVapor
	case region == SaturationRegion && x == 0:
		return SaturatedLiquid
	case region == SaturationRegion:
		return TwoPhases
	case x == 1:
		return Vapour
	case x == 0:
		return Liquid
	}
	return Unclassified
}
