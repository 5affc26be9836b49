package kernel_test

import (
	"testing"

	"moving/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
)

func TestRoundMoney(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   float64
	}{
		{"already_two_decimals", 1234.56, 1234.56},
		{"rounds_down", 10.123, 10.12},
		{"rounds_up", 10.126, 10.13},
		{"half_rounds_up", 10.125, 10.13},
		{"whole_number", 3000, 3000},
		{"zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, kernel.RoundMoney(tt.amount), 1e-9)
		})
	}
}
