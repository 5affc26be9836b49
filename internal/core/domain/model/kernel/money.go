package kernel

import "math"

// RoundMoney rounds a monetary amount to 2 decimal places using half-up
// rounding. All prices in the system are non-negative, so the half-up rule is
// implemented as floor(x*100 + 0.5) / 100.
func RoundMoney(amount float64) float64 {
	return math.Floor(amount*100+0.5) / 100
}
