package booking

import (
	"time"

	"moving/internal/core/domain/model/kernel"
	"moving/internal/pkg/errs"
)

// StatusUpdate is one immutable audit event in a booking's history: the
// status label that was recorded, optional crew coordinates and notes, the
// acting user, and the time of recording. Updates are append-only; they are
// never mutated, reordered, or deleted after creation.
type StatusUpdate struct {
	id        kernel.UUID
	label     string
	geo       *kernel.GeoPoint
	notes     string
	updatedBy kernel.UUID
	createdAt time.Time
}

// NewStatusUpdate creates a validated status update event.
func NewStatusUpdate(
	id kernel.UUID,
	label string,
	geo *kernel.GeoPoint,
	notes string,
	updatedBy kernel.UUID,
	createdAt time.Time,
) (*StatusUpdate, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if label == "" {
		return nil, errs.NewValueIsRequiredError("status label")
	}
	if err := updatedBy.Validate(); err != nil {
		return nil, err
	}
	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("createdAt")
	}

	return &StatusUpdate{
		id:        id,
		label:     label,
		geo:       geo,
		notes:     notes,
		updatedBy: updatedBy,
		createdAt: createdAt,
	}, nil
}

// ID returns the update's unique identifier.
func (u *StatusUpdate) ID() kernel.UUID {
	return u.id
}

// Label returns the recorded status label.
func (u *StatusUpdate) Label() string {
	return u.label
}

// Geo returns the optional crew coordinates, or nil.
func (u *StatusUpdate) Geo() *kernel.GeoPoint {
	return u.geo
}

// Notes returns the optional free-text notes.
func (u *StatusUpdate) Notes() string {
	return u.notes
}

// UpdatedBy returns the acting user's identifier.
func (u *StatusUpdate) UpdatedBy() kernel.UUID {
	return u.updatedBy
}

// CreatedAt returns the time the update was recorded.
func (u *StatusUpdate) CreatedAt() time.Time {
	return u.createdAt
}
