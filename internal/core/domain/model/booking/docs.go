// Package booking contains the Booking aggregate root and its owned entities.
//
// A Booking is a contracted move between a client and a mover. It owns an
// append-only history of StatusUpdate records and at most one Review. The
// lifecycle is a closed state machine:
//
//	confirmed ──> in_progress ──> completed
//	    │              │
//	    └──────────────┴──> cancelled (from in_progress only by policy)
//
// Bookings are created directly in the confirmed status: creation requires an
// approved, available mover, so there is no accept step. The pending status
// remains a valid value for forward compatibility but no code path produces
// it. Completed and cancelled are terminal.
//
// The pricing snapshot is computed once at creation and never recomputed;
// display-only estimates go through the read side instead.
package booking
