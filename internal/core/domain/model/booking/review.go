package booking

import (
	"time"

	"moving/internal/core/domain/model/kernel"
	"moving/internal/pkg/errs"
)

const (
	// MinRating is the lowest permitted review rating.
	MinRating = 1
	// MaxRating is the highest permitted review rating.
	MaxRating = 5
)

// Review is the client's one-time rating of a completed move. A booking owns
// at most one review, and a review can only be attached while the booking is
// in the completed status. The mover may record a single textual response.
type Review struct {
	id        kernel.UUID
	clientID  kernel.UUID
	rating    int
	comment   string
	response  string
	createdAt time.Time
}

// NewReview creates a validated review. Rating must be within [1, 5].
func NewReview(
	id kernel.UUID,
	clientID kernel.UUID,
	rating int,
	comment string,
	createdAt time.Time,
) (*Review, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := clientID.Validate(); err != nil {
		return nil, err
	}
	if rating < MinRating || rating > MaxRating {
		return nil, errs.NewValueIsOutOfRangeError("rating", rating, MinRating, MaxRating)
	}
	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("createdAt")
	}

	return &Review{
		id:        id,
		clientID:  clientID,
		rating:    rating,
		comment:   comment,
		createdAt: createdAt,
	}, nil
}

// RestoreReview reconstructs a review from persistence, including the
// optional mover response.
func RestoreReview(
	id kernel.UUID,
	clientID kernel.UUID,
	rating int,
	comment string,
	response string,
	createdAt time.Time,
) (*Review, error) {
	review, err := NewReview(id, clientID, rating, comment, createdAt)
	if err != nil {
		return nil, err
	}
	review.response = response
	return review, nil
}

// ID returns the review's unique identifier.
func (r *Review) ID() kernel.UUID {
	return r.id
}

// ClientID returns the reviewing client's identifier.
func (r *Review) ClientID() kernel.UUID {
	return r.clientID
}

// Rating returns the 1-5 star rating.
func (r *Review) Rating() int {
	return r.rating
}

// Comment returns the optional review text.
func (r *Review) Comment() string {
	return r.comment
}

// Response returns the mover's optional response.
func (r *Review) Response() string {
	return r.response
}

// CreatedAt returns the time the review was attached.
func (r *Review) CreatedAt() time.Time {
	return r.createdAt
}
