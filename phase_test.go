package bridgman_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/njchilds90/bridgman"
)

func TestClassifyPhase(t *testing.T) {
	const tc, pc = 647.096, 22.064
	nan := math.NaN()
	tests := []struct {
		name   string
		t, p   float64
		x      float64
		region int
		want   bridgman.Phase
	}{
		{"supercritical", 700, 25, nan, 3, bridgman.SupercriticalFluid},
		{"gas", 650, 1, nan, 2, bridgman.Gas},
		{"compressible liquid", 600, 30, nan, 1, bridgman.CompressibleLiquid},
		{"critical point", tc, pc, nan, 3, bridgman.CriticalPoint},
		{"critical point after rounding", tc, 22.064000000001, nan, 3, bridgman.CriticalPoint},
		{"saturated vapor", 300, 0.1, 1, bridgman.SaturationRegion, bridgman.SaturatedVapor},
		{"saturated liquid", 300, 0.0035, 0, bridgman.SaturationRegion, bridgman.SaturatedLiquid},
		{"two phases", 300, 0.0035, 0.4, bridgman.SaturationRegion, bridgman.TwoPhases},
		{"vapour outside the dome", 400, 0.1, 1, 2, bridgman.Vapour},
		{"liquid outside the dome", 300, 1, 0, 1, bridgman.Liquid},
		{"unclassified", 300, 1, nan, 0, bridgman.Unclassified},
		{"temperature wins over quality", 650, 1, 0, bridgman.SaturationRegion, bridgman.Gas},
		{"pressure at pc below tc", 600, pc, nan, 1, bridgman.Unclassified},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := bridgman.ClassifyPhase(tc, pc, tt.t, tt.p, tt.x, tt.region)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPhase_Known(t *testing.T) {
	for _, ph := range []bridgman.Phase{
		bridgman.SupercriticalFluid, bridgman.Gas, bridgman.CompressibleLiquid,
		bridgman.CriticalPoint, bridgman.SaturatedVapor, bridgman.SaturatedLiquid,
		bridgman.TwoPhases, bridgman.Vapour, bridgman.Liquid,
	} {
		assert.True(t, ph.Known(), ph.String())
	}
	assert.False(t, bridgman.Unclassified.Known())
	assert.False(t, bridgman.Phase("").Known())
	assert.Equal(t, "Critical point", bridgman.CriticalPoint.String())
}
