package mover_test

import (
	"testing"

	"moving/internal/core/domain/model/kernel"
	"moving/internal/core/domain/model/mover"
	"moving/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRateCard(t *testing.T) mover.RateCard {
	t.Helper()
	rateCard, err := mover.NewRateCard(50, 120)
	require.NoError(t, err)
	return rateCard
}

func TestNewRateCard(t *testing.T) {
	t.Run("should create a valid rate card", func(t *testing.T) {
		rateCard, err := mover.NewRateCard(50, 120)

		require.NoError(t, err)
		assert.InDelta(t, 50.0, rateCard.BasePricePerKm(), 0.001)
		assert.InDelta(t, 120.0, rateCard.PricePerCubicMeter(), 0.001)
		require.NoError(t, rateCard.Validate())
	})

	t.Run("should reject non-positive rates", func(t *testing.T) {
		testCases := []struct {
			name      string
			perKm     float64
			perCbm    float64
			paramName string
		}{
			{"zero per km rate", 0, 120, "base price per km"},
			{"negative per km rate", -10, 120, "base price per km"},
			{"zero per cbm rate", 50, 0, "price per cubic meter"},
			{"negative per cbm rate", 50, -5, "price per cubic meter"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := mover.NewRateCard(tc.perKm, tc.perCbm)

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), tc.paramName)
			})
		}
	})

	t.Run("should fail validation for zero value", func(t *testing.T) {
		var rateCard mover.RateCard

		require.Error(t, rateCard.Validate())
	})

	t.Run("should compare by value", func(t *testing.T) {
		card1, _ := mover.NewRateCard(50, 120)
		card2, _ := mover.NewRateCard(50, 120)
		card3, _ := mover.NewRateCard(60, 120)

		assert.True(t, card1.IsEqual(card2))
		assert.False(t, card1.IsEqual(card3))
	})
}

func TestNewMover(t *testing.T) {
	t.Run("should create an unapproved available mover with zero statistics", func(t *testing.T) {
		id := kernel.NewUUID()

		m, err := mover.NewMover(id, "Swift Movers Ltd", "3-ton truck", 25, validRateCard(t))

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.True(t, m.ID().IsEqual(id))
		assert.Equal(t, "Swift Movers Ltd", m.CompanyName())
		assert.Equal(t, "3-ton truck", m.VehicleType())
		assert.InDelta(t, 25.0, m.VehicleCapacity(), 0.001)
		assert.False(t, m.Approved())
		assert.True(t, m.Available())
		assert.InDelta(t, 0.0, m.Rating(), 0.001)
		assert.Equal(t, 0, m.TotalJobsCompleted())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		m, err := mover.NewMover(invalidID, "Swift Movers Ltd", "3-ton truck", 25, validRateCard(t))

		require.Error(t, err)
		assert.Nil(t, m)
	})

	t.Run("should fail with empty company name", func(t *testing.T) {
		m, err := mover.NewMover(kernel.NewUUID(), "", "3-ton truck", 25, validRateCard(t))

		require.Error(t, err)
		assert.Nil(t, m)
		assert.Contains(t, err.Error(), "company name")
	})

	t.Run("should fail with non-positive vehicle capacity", func(t *testing.T) {
		m, err := mover.NewMover(kernel.NewUUID(), "Swift Movers Ltd", "3-ton truck", 0, validRateCard(t))

		require.Error(t, err)
		assert.Nil(t, m)
		assert.Contains(t, err.Error(), "vehicle capacity")
	})

	t.Run("should fail with zero value rate card", func(t *testing.T) {
		var rateCard mover.RateCard

		m, err := mover.NewMover(kernel.NewUUID(), "Swift Movers Ltd", "3-ton truck", 25, rateCard)

		require.Error(t, err)
		assert.Nil(t, m)
	})
}

func TestMover_Validate(t *testing.T) {
	t.Run("should fail for nil mover", func(t *testing.T) {
		var m *mover.Mover

		err := m.Validate()

		require.Error(t, err)
		assert.Equal(t, mover.ErrMoverIsNotConstructed, err)
	})

	t.Run("should fail for zero value mover", func(t *testing.T) {
		var m mover.Mover

		err := m.Validate()

		require.Error(t, err)
		assert.Equal(t, mover.ErrMoverIsNotConstructed, err)
	})
}

func TestMover_IsBookable(t *testing.T) {
	t.Run("should require both approval and availability", func(t *testing.T) {
		m, err := mover.NewMover(kernel.NewUUID(), "Swift Movers Ltd", "3-ton truck", 25, validRateCard(t))
		require.NoError(t, err)

		assert.False(t, m.IsBookable()) // unapproved

		m.Approve()
		assert.True(t, m.IsBookable())

		m.SetAvailability(false)
		assert.False(t, m.IsBookable())

		m.SetAvailability(true)
		assert.True(t, m.IsBookable())
	})
}

func TestMover_RecordCompletion(t *testing.T) {
	t.Run("should increment job counter and replace the rating together", func(t *testing.T) {
		m, err := mover.NewMover(kernel.NewUUID(), "Swift Movers Ltd", "3-ton truck", 25, validRateCard(t))
		require.NoError(t, err)

		require.NoError(t, m.RecordCompletion(4.5))
		assert.Equal(t, 1, m.TotalJobsCompleted())
		assert.InDelta(t, 4.5, m.Rating(), 0.001)

		require.NoError(t, m.RecordCompletion(4.2))
		assert.Equal(t, 2, m.TotalJobsCompleted())
		assert.InDelta(t, 4.2, m.Rating(), 0.001)
	})

	t.Run("should accept the unrated value 0.0", func(t *testing.T) {
		m, err := mover.NewMover(kernel.NewUUID(), "Swift Movers Ltd", "3-ton truck", 25, validRateCard(t))
		require.NoError(t, err)

		require.NoError(t, m.RecordCompletion(0.0))
		assert.Equal(t, 1, m.TotalJobsCompleted())
		assert.InDelta(t, 0.0, m.Rating(), 0.001)
	})

	t.Run("should reject an out of range rating and leave the counter alone", func(t *testing.T) {
		m, err := mover.NewMover(kernel.NewUUID(), "Swift Movers Ltd", "3-ton truck", 25, validRateCard(t))
		require.NoError(t, err)

		err = m.RecordCompletion(5.1)

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsOutOfRangeError{}, err)
		assert.Equal(t, 0, m.TotalJobsCompleted())
	})
}

func TestMover_UpdateRating(t *testing.T) {
	t.Run("should replace the rating without touching the counter", func(t *testing.T) {
		m, err := mover.NewMover(kernel.NewUUID(), "Swift Movers Ltd", "3-ton truck", 25, validRateCard(t))
		require.NoError(t, err)
		require.NoError(t, m.RecordCompletion(4.0))

		require.NoError(t, m.UpdateRating(4.5))

		assert.InDelta(t, 4.5, m.Rating(), 0.001)
		assert.Equal(t, 1, m.TotalJobsCompleted())
	})

	t.Run("should reject out of range ratings", func(t *testing.T) {
		m, err := mover.NewMover(kernel.NewUUID(), "Swift Movers Ltd", "3-ton truck", 25, validRateCard(t))
		require.NoError(t, err)

		require.Error(t, m.UpdateRating(-0.1))
		require.Error(t, m.UpdateRating(5.01))
	})
}

func TestRestoreMover(t *testing.T) {
	t.Run("should reconstruct a persisted mover", func(t *testing.T) {
		id := kernel.NewUUID()

		m, err := mover.RestoreMover(id, "Swift Movers Ltd", "3-ton truck", 25, validRateCard(t), true, false, 4.7, 132)

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.True(t, m.Approved())
		assert.False(t, m.Available())
		assert.InDelta(t, 4.7, m.Rating(), 0.001)
		assert.Equal(t, 132, m.TotalJobsCompleted())
		assert.False(t, m.IsBookable())
	})

	t.Run("should reject a negative persisted job counter", func(t *testing.T) {
		_, err := mover.RestoreMover(kernel.NewUUID(), "Swift Movers Ltd", "3-ton truck", 25, validRateCard(t), true, true, 4.7, -1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "total jobs completed")
	})
}
