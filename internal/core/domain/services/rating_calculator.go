package services

// RatingCalculator is a domain service that aggregates review ratings into a
// mover's displayed rating.
type RatingCalculator struct{}

// NewRatingCalculator creates a new RatingCalculator instance.
func NewRatingCalculator() RatingCalculator {
	return RatingCalculator{}
}

// Mean returns the exact arithmetic mean of the given ratings, or 0.0 when
// there are none. The mean is stored unrounded; rounding is a presentation
// concern. A mover with no reviews is unrated, not poorly rated; presentation
// layers distinguish the two by the review count.
func (c RatingCalculator) Mean(ratings []int) float64 {
	if len(ratings) == 0 {
		return 0.0
	}

	var sum int
	for _, r := range ratings {
		sum += r
	}
	return float64(sum) / float64(len(ratings))
}
