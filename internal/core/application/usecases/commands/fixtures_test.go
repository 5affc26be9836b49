package commands_test

import (
	"testing"
	"time"

	"moving/internal/core/domain/model/actor"
	"moving/internal/core/domain/model/booking"
	"moving/internal/core/domain/model/kernel"
	"moving/internal/core/domain/model/mover"

	"github.com/stretchr/testify/require"
)

func testActor(t *testing.T, id kernel.UUID, role actor.Role) actor.Actor {
	t.Helper()
	a, err := actor.NewActor(id, role)
	require.NoError(t, err)
	return a
}

func testAddress(t *testing.T, street string) kernel.Address {
	t.Helper()
	address, err := kernel.NewAddress(street, nil, "", "")
	require.NoError(t, err)
	return address
}

func testMover(t *testing.T, id kernel.UUID) *mover.Mover {
	t.Helper()
	rateCard, err := mover.NewRateCard(50, 120)
	require.NoError(t, err)
	m, err := mover.NewMover(id, "Swift Movers Ltd", "3-ton truck", 25, rateCard)
	require.NoError(t, err)
	m.Approve()
	return m
}

func testBooking(t *testing.T, clientID, moverID kernel.UUID) *booking.Booking {
	t.Helper()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	pricing, err := booking.NewPriceBreakdown(500, 720, 2000, 600, 0)
	require.NoError(t, err)
	b, err := booking.NewBooking(
		kernel.NewUUID(), booking.NewReference(now), clientID, moverID,
		testAddress(t, "12 Riverside Drive"), testAddress(t, "45 Ngong Road"),
		now.AddDate(0, 0, 7), time.Date(0, 1, 1, 9, 0, 0, 0, time.UTC),
		10, 6, pricing, "", now,
	)
	require.NoError(t, err)
	return b
}
