package inventory

import (
	"fmt"

	"moving/internal/pkg/errs"
)

// EstimateLine is one ad-hoc item submitted for a volume estimate. Unlike a
// saved Item it has no identity: estimates are pure computations over the
// submitted values.
type EstimateLine struct {
	Name     string
	Quantity int
	Volume   float64
}

// AggregateVolume computes Σ(quantity × per-unit volume) over ad-hoc lines.
// Negative quantities and volumes are rejected; zero-quantity lines
// contribute nothing. An empty list yields 0.
func AggregateVolume(lines []EstimateLine) (float64, error) {
	var total float64
	for i, line := range lines {
		if line.Quantity < 0 {
			return 0, errs.NewValueIsInvalidErrorWithCause(
				"quantity", fmt.Errorf("line %d: %d is negative", i, line.Quantity))
		}
		if line.Volume < 0 {
			return 0, errs.NewValueIsInvalidErrorWithCause(
				"volume", fmt.Errorf("line %d: %f is negative", i, line.Volume))
		}
		total += float64(line.Quantity) * line.Volume
	}
	return total, nil
}
