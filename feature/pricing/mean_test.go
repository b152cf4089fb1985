package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPowerMean(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		assert.Nil(t, PowerMean(nil))
		assert.Nil(t, PowerMean([]float64{}))
	})

	t.Run("Single value is exact", func(t *testing.T) {
		for _, v := range []float64{0.03, 1, 12.345, 98765.4321} {
			got := PowerMean([]float64{v})
			require.NotNil(t, got)
			assert.Equal(t, v, *got)
		}
	})

	t.Run("Equal values", func(t *testing.T) {
		got := PowerMean([]float64{10, 10, 10})
		require.NotNil(t, got)
		assert.InDelta(t, 10, *got, 1e-9)
	})

	t.Run("Dominated by the smallest quote", func(t *testing.T) {
		got := PowerMean([]float64{1, 1e6})
		require.NotNil(t, got)
		assert.InDelta(t, 1.26, *got, 0.01)
	})

	t.Run("Between min and max", func(t *testing.T) {
		values := []float64{3.2, 4.1, 5.9, 2.8}
		got := PowerMean(values)
		require.NotNil(t, got)
		assert.GreaterOrEqual(t, *got, 2.8)
		assert.LessOrEqual(t, *got, 5.9)
	})

	t.Run("Extreme magnitudes stay finite and bounded", func(t *testing.T) {
		tests := []struct {
			name   string
			values []float64
		}{
			{"Huge", []float64{1e200, 1e200}},
			{"HugeSpread", []float64{1e200, 3e250}},
			{"Tiny", []float64{1e-110, 5}},
			{"Subnormal", []float64{5e-320, 1e-300, 2}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				got := PowerMean(tt.values)
				require.NotNil(t, got)
				lo, hi := tt.values[0], tt.values[0]
				for _, v := range tt.values {
					lo, hi = math.Min(lo, v), math.Max(hi, v)
				}
				assert.False(t, math.IsInf(*got, 0) || math.IsNaN(*got))
				assert.Greater(t, *got, 0.0)
				assert.GreaterOrEqual(t, *got, lo)
				assert.LessOrEqual(t, *got, hi)
			})
		}
	})

	t.Run("Equal huge values are exact", func(t *testing.T) {
		got := PowerMean([]float64{1e200, 1e200})
		require.NotNil(t, got)
		assert.Equal(t, 1e200, *got)
	})
}
