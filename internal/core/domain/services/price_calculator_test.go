package services_test

import (
	"fmt"
	"testing"

	"moving/internal/core/domain/model/mover"
	"moving/internal/core/domain/services"
	"moving/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceCalculator_Calculate(t *testing.T) {
	calculator := services.NewPriceCalculator()
	rateCard, err := mover.NewRateCard(50, 120)
	require.NoError(t, err)

	t.Run("should produce an itemized breakdown", func(t *testing.T) {
		breakdown, err := calculator.Calculate(15, 12, rateCard)

		require.NoError(t, err)
		assert.InDelta(t, 750.0, breakdown.BasePrice(), 0.001)             // 15 × 50
		assert.InDelta(t, 1440.0, breakdown.VolumePrice(), 0.001)          // 12 × 120
		assert.InDelta(t, 3000.0, breakdown.LaborCost(), 0.001)            // >10 m³ tier
		assert.InDelta(t, 1200.0, breakdown.PackingMaterialsCost(), 0.001) // 12 × 100
		assert.InDelta(t, 0.0, breakdown.ServiceFee(), 0.001)
		assert.InDelta(t, 6390.0, breakdown.TotalPrice(), 0.001)
	})

	t.Run("should be deterministic for equal inputs", func(t *testing.T) {
		first, err := calculator.Calculate(7.3, 4.2, rateCard)
		require.NoError(t, err)
		second, err := calculator.Calculate(7.3, 4.2, rateCard)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("should pick labor tiers by volume with inclusive boundaries", func(t *testing.T) {
		testCases := []struct {
			volume   float64
			expected float64
		}{
			{0.1, 1000},
			{4.99, 1000},
			{5.0, 1000},  // boundary stays in the small tier
			{5.01, 2000},
			{10.0, 2000}, // boundary stays in the medium tier
			{10.01, 3000},
			{50, 3000},
		}

		for _, tc := range testCases {
			t.Run(fmt.Sprintf("volume %.2f", tc.volume), func(t *testing.T) {
				breakdown, err := calculator.Calculate(10, tc.volume, rateCard)

				require.NoError(t, err)
				assert.InDelta(t, tc.expected, breakdown.LaborCost(), 0.001)
			})
		}
	})

	t.Run("should price packing materials at 100 per cubic meter", func(t *testing.T) {
		breakdown, err := calculator.Calculate(10, 3.5, rateCard)

		require.NoError(t, err)
		assert.InDelta(t, 350.0, breakdown.PackingMaterialsCost(), 0.001)
	})

	t.Run("should round components half up to 2 decimal places", func(t *testing.T) {
		// 0.0625 × 50 = 3.125 → 3.13
		breakdown, err := calculator.Calculate(0.0625, 1, rateCard)

		require.NoError(t, err)
		assert.InDelta(t, 3.13, breakdown.BasePrice(), 0.0001)
	})

	t.Run("should keep the total equal to the sum of rounded components", func(t *testing.T) {
		breakdown, err := calculator.Calculate(1.234, 5.678, rateCard)

		require.NoError(t, err)
		sum := breakdown.BasePrice() +
			breakdown.VolumePrice() +
			breakdown.LaborCost() +
			breakdown.PackingMaterialsCost() +
			breakdown.ServiceFee()
		assert.InDelta(t, sum, breakdown.TotalPrice(), 0.0001)
	})

	t.Run("should reject non-positive distance", func(t *testing.T) {
		for _, distance := range []float64{0, -1} {
			_, err := calculator.Calculate(distance, 5, rateCard)

			require.Error(t, err)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			assert.Contains(t, err.Error(), "distance")
		}
	})

	t.Run("should reject non-positive volume", func(t *testing.T) {
		for _, volume := range []float64{0, -2.5} {
			_, err := calculator.Calculate(10, volume, rateCard)

			require.Error(t, err)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			assert.Contains(t, err.Error(), "total volume")
		}
	})

	t.Run("should reject a zero value rate card", func(t *testing.T) {
		var zeroCard mover.RateCard

		_, err := calculator.Calculate(10, 5, zeroCard)

		require.Error(t, err)
	})
}
