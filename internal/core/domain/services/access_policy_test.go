package services_test

import (
	"testing"
	"time"

	"moving/internal/core/domain/model/actor"
	"moving/internal/core/domain/model/booking"
	"moving/internal/core/domain/model/kernel"
	"moving/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type policyFixture struct {
	policy   services.AccessPolicy
	booking  *booking.Booking
	client   actor.Actor
	mover    actor.Actor
	admin    actor.Actor
	stranger actor.Actor
}

func newPolicyFixture(t *testing.T) policyFixture {
	t.Helper()

	clientID := kernel.NewUUID()
	moverID := kernel.NewUUID()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	pickup, err := kernel.NewAddress("12 Riverside Drive", nil, "", "")
	require.NoError(t, err)
	dropoff, err := kernel.NewAddress("45 Ngong Road", nil, "", "")
	require.NoError(t, err)
	pricing, err := booking.NewPriceBreakdown(500, 600, 1000, 300, 0)
	require.NoError(t, err)

	b, err := booking.NewBooking(
		kernel.NewUUID(), booking.NewReference(now), clientID, moverID,
		pickup, dropoff,
		now.AddDate(0, 0, 7), time.Date(0, 1, 1, 9, 0, 0, 0, time.UTC),
		10, 6, pricing, "", now,
	)
	require.NoError(t, err)

	client, err := actor.NewActor(clientID, actor.Client)
	require.NoError(t, err)
	moverActor, err := actor.NewActor(moverID, actor.Mover)
	require.NoError(t, err)
	admin, err := actor.NewActor(kernel.NewUUID(), actor.Admin)
	require.NoError(t, err)
	stranger, err := actor.NewActor(kernel.NewUUID(), actor.Client)
	require.NoError(t, err)

	return policyFixture{
		policy:   services.NewAccessPolicy(),
		booking:  b,
		client:   client,
		mover:    moverActor,
		admin:    admin,
		stranger: stranger,
	}
}

func TestAccessPolicy_CanViewBooking(t *testing.T) {
	f := newPolicyFixture(t)

	t.Run("should allow the owning client", func(t *testing.T) {
		assert.True(t, f.policy.CanViewBooking(f.client, f.booking))
	})

	t.Run("should allow the assigned mover", func(t *testing.T) {
		assert.True(t, f.policy.CanViewBooking(f.mover, f.booking))
	})

	t.Run("should allow admins", func(t *testing.T) {
		assert.True(t, f.policy.CanViewBooking(f.admin, f.booking))
	})

	t.Run("should deny an unrelated client", func(t *testing.T) {
		assert.False(t, f.policy.CanViewBooking(f.stranger, f.booking))
	})

	t.Run("should deny an unrelated mover", func(t *testing.T) {
		otherMover, err := actor.NewActor(kernel.NewUUID(), actor.Mover)
		require.NoError(t, err)

		assert.False(t, f.policy.CanViewBooking(otherMover, f.booking))
	})
}

func TestAccessPolicy_CanUpdateStatus(t *testing.T) {
	f := newPolicyFixture(t)

	t.Run("should allow the assigned mover", func(t *testing.T) {
		assert.True(t, f.policy.CanUpdateStatus(f.mover, f.booking))
	})

	t.Run("should deny the owning client", func(t *testing.T) {
		assert.False(t, f.policy.CanUpdateStatus(f.client, f.booking))
	})

	t.Run("should deny admins", func(t *testing.T) {
		assert.False(t, f.policy.CanUpdateStatus(f.admin, f.booking))
	})

	t.Run("should deny unrelated actors", func(t *testing.T) {
		assert.False(t, f.policy.CanUpdateStatus(f.stranger, f.booking))

		otherMover, err := actor.NewActor(kernel.NewUUID(), actor.Mover)
		require.NoError(t, err)
		assert.False(t, f.policy.CanUpdateStatus(otherMover, f.booking))
	})
}

func TestAccessPolicy_CanCreateBookingFor(t *testing.T) {
	f := newPolicyFixture(t)

	t.Run("should allow a client to book for themselves", func(t *testing.T) {
		assert.True(t, f.policy.CanCreateBookingFor(f.client, f.client.ID()))
	})

	t.Run("should deny a client booking for someone else", func(t *testing.T) {
		assert.False(t, f.policy.CanCreateBookingFor(f.client, f.stranger.ID()))
	})

	t.Run("should deny movers", func(t *testing.T) {
		assert.False(t, f.policy.CanCreateBookingFor(f.mover, f.mover.ID()))
	})

	t.Run("should allow admins for anyone", func(t *testing.T) {
		assert.True(t, f.policy.CanCreateBookingFor(f.admin, f.client.ID()))
	})
}

func TestAccessPolicy_CanReview(t *testing.T) {
	f := newPolicyFixture(t)

	t.Run("should allow only the owning client", func(t *testing.T) {
		assert.True(t, f.policy.CanReview(f.client, f.booking))
		assert.False(t, f.policy.CanReview(f.stranger, f.booking))
		assert.False(t, f.policy.CanReview(f.mover, f.booking))
	})

	t.Run("should deny admins", func(t *testing.T) {
		assert.False(t, f.policy.CanReview(f.admin, f.booking))
	})
}

func TestAccessPolicy_CanManageInventoryOf(t *testing.T) {
	f := newPolicyFixture(t)

	t.Run("should allow the owner and admins", func(t *testing.T) {
		assert.True(t, f.policy.CanManageInventoryOf(f.client, f.client.ID()))
		assert.True(t, f.policy.CanManageInventoryOf(f.admin, f.client.ID()))
	})

	t.Run("should deny other actors", func(t *testing.T) {
		assert.False(t, f.policy.CanManageInventoryOf(f.stranger, f.client.ID()))
		assert.False(t, f.policy.CanManageInventoryOf(f.mover, f.client.ID()))
	})
}

func TestTransitionPolicy(t *testing.T) {
	t.Run("should default to refusing cancellation of started moves", func(t *testing.T) {
		policy := services.NewTransitionPolicy(false)
		assert.False(t, policy.AllowCancelFromInProgress())
	})

	t.Run("should expose the configured flag", func(t *testing.T) {
		policy := services.NewTransitionPolicy(true)
		assert.True(t, policy.AllowCancelFromInProgress())
	})
}
