package kernel_test

import (
	"testing"

	"moving/internal/core/domain/model/kernel"
	"moving/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	tests := []struct {
		name      string
		latitude  float64
		longitude float64
		wantErr   bool
	}{
		{"nairobi", -1.286389, 36.817223, false},
		{"lat_min_boundary", -90, 0, false},
		{"lat_max_boundary", 90, 0, false},
		{"lon_min_boundary", 0, -180, false},
		{"lon_max_boundary", 0, 180, false},
		{"lat_too_small", -90.01, 0, true},
		{"lat_too_large", 90.01, 0, true},
		{"lon_too_small", 0, -180.01, true},
		{"lon_too_large", 0, 180.01, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := kernel.NewGeoPoint(tt.latitude, tt.longitude)

			if tt.wantErr {
				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.latitude, p.Latitude())
			assert.Equal(t, tt.longitude, p.Longitude())
		})
	}
}

func TestNewAddress(t *testing.T) {
	t.Run("requires_street", func(t *testing.T) {
		_, err := kernel.NewAddress("", nil, "", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("optional_fields_are_optional", func(t *testing.T) {
		addr, err := kernel.NewAddress("12 Riverside Drive", nil, "", "")

		require.NoError(t, err)
		assert.Equal(t, "12 Riverside Drive", addr.Street())
		assert.Nil(t, addr.Geo())
	})

	t.Run("carries_all_details", func(t *testing.T) {
		geo, err := kernel.NewGeoPoint(-1.3, 36.8)
		require.NoError(t, err)

		addr, err := kernel.NewAddress("12 Riverside Drive", &geo, "4th", "lift available")

		require.NoError(t, err)
		require.NotNil(t, addr.Geo())
		assert.True(t, addr.Geo().IsEqual(geo))
		assert.Equal(t, "4th", addr.Floor())
		assert.Equal(t, "lift available", addr.Details())
		require.NoError(t, addr.Validate())
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var addr kernel.Address
		require.Error(t, addr.Validate())
	})
}
