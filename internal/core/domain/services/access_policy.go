package services

import (
	"moving/internal/core/domain/model/actor"
	"moving/internal/core/domain/model/booking"
	"moving/internal/core/domain/model/kernel"
)

// AccessPolicy is a pure domain service deciding who may do what to a
// booking. It owns no state and performs no I/O; handlers load the booking
// and ask the policy before acting.
//
// Rules:
//   - The owning client can read the booking and review it.
//   - The assigned mover can read the booking and drive its lifecycle;
//     status transitions are the mover's alone.
//   - Admins can read any booking and create or manage on a client's behalf.
//   - Everyone else is denied.
type AccessPolicy struct{}

// NewAccessPolicy creates a new AccessPolicy instance.
func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// CanViewBooking reports whether the actor may read the booking, including
// its tracking history.
func (p AccessPolicy) CanViewBooking(a actor.Actor, b *booking.Booking) bool {
	return p.CanViewBookingOf(a, b.ClientID(), b.MoverID())
}

// CanViewBookingOf is CanViewBooking for callers that only hold the booking's
// party identifiers, such as read-side queries working from raw rows.
func (p AccessPolicy) CanViewBookingOf(a actor.Actor, clientID, moverID kernel.UUID) bool {
	if a.IsAdmin() {
		return true
	}
	switch a.Role() {
	case actor.Client:
		return clientID.IsEqual(a.ID())
	case actor.Mover:
		return moverID.IsEqual(a.ID())
	default:
		return false
	}
}

// CanUpdateStatus reports whether the actor may transition the booking's
// status. Only the assigned mover may; clients and admins are denied, the
// crew on the ground owns the lifecycle.
func (p AccessPolicy) CanUpdateStatus(a actor.Actor, b *booking.Booking) bool {
	return a.Role() == actor.Mover && b.MoverID().IsEqual(a.ID())
}

// CanCreateBookingFor reports whether the actor may create a booking on
// behalf of the given client.
func (p AccessPolicy) CanCreateBookingFor(a actor.Actor, clientID kernel.UUID) bool {
	if a.IsAdmin() {
		return true
	}
	return a.Role() == actor.Client && a.ID().IsEqual(clientID)
}

// CanReview reports whether the actor may attach a review to the booking.
// Only the owning client reviews; admins cannot review on a client's behalf.
func (p AccessPolicy) CanReview(a actor.Actor, b *booking.Booking) bool {
	return a.Role() == actor.Client && b.ClientID().IsEqual(a.ID())
}

// CanManageInventoryOf reports whether the actor may create or modify the
// given client's inventories.
func (p AccessPolicy) CanManageInventoryOf(a actor.Actor, clientID kernel.UUID) bool {
	if a.IsAdmin() {
		return true
	}
	return a.Role() == actor.Client && a.ID().IsEqual(clientID)
}
