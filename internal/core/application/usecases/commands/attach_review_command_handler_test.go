package commands_test

import (
	"testing"
	"time"

	"moving/internal/core/application/usecases/commands"
	"moving/internal/core/domain/model/actor"
	"moving/internal/core/domain/model/booking"
	"moving/internal/core/domain/model/kernel"
	"moving/internal/core/domain/services"
	"moving/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func completedTestBooking(t *testing.T, clientID, moverID kernel.UUID) *booking.Booking {
	t.Helper()
	b := testBooking(t, clientID, moverID)
	require.NoError(t, b.ChangeStatus(booking.InProgress, moverID, "", nil, "", false,
		time.Date(2024, 6, 2, 9, 0, 0, 0, time.UTC)))
	require.NoError(t, b.ChangeStatus(booking.Completed, moverID, "", nil, "", false,
		time.Date(2024, 6, 2, 16, 0, 0, 0, time.UTC)))
	return b
}

func newAttachReviewHandler(factory commands.BookingMoverUoWFactory) commands.AttachReviewCommandHandler {
	return commands.NewAttachReviewCommandHandler(
		factory, services.NewAccessPolicy(), services.NewRatingCalculator())
}

func TestNewAttachReviewCommand(t *testing.T) {
	bookingID := kernel.NewUUID()
	clientActor := testActor(t, kernel.NewUUID(), actor.Client)

	t.Run("should create a valid command", func(t *testing.T) {
		cmd, err := commands.NewAttachReviewCommand(bookingID, clientActor, 5, "great crew")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, 5, cmd.Rating())
		assert.Equal(t, "great crew", cmd.Comment())
	})

	t.Run("should reject out of range ratings", func(t *testing.T) {
		for _, rating := range []int{0, 6, -1} {
			_, err := commands.NewAttachReviewCommand(bookingID, clientActor, rating, "")

			require.Error(t, err, "rating %d", rating)
			assert.IsType(t, &errs.ValueIsOutOfRangeError{}, err)
		}
	})

	t.Run("should fail validation when not constructed", func(t *testing.T) {
		var cmd commands.AttachReviewCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrAttachReviewCommandIsNotConstructed)
	})
}

func TestAttachReviewCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	clientID := kernel.NewUUID()
	moverID := kernel.NewUUID()
	b := completedTestBooking(t, clientID, moverID)
	moverAggregate := testMover(t, moverID)
	require.NoError(t, moverAggregate.RecordCompletion(0.0))

	cmd, err := commands.NewAttachReviewCommand(
		b.ID(), testActor(t, clientID, actor.Client), 5, "great crew")
	require.NoError(t, err)

	bookingRepo := new(MockBookingRepository)
	moverRepo := new(MockMoverRepository)
	uow := new(MockBookingMoverUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BookingRepository").Return(bookingRepo).Once(),
		bookingRepo.On("Get", ctx, b.ID()).Return(b, nil).Once(),
		bookingRepo.On("Update", ctx, mock.AnythingOfType("*booking.Booking")).Return(nil).Once(),
		uow.On("MoverRepository").Return(moverRepo).Once(),
		moverRepo.On("GetForUpdate", ctx, moverID).Return(moverAggregate, nil).Once(),
		bookingRepo.On("RatingsByMover", ctx, moverID).Return([]int{5}, nil).Once(),
		moverRepo.On("Update", ctx, mock.AnythingOfType("*mover.Mover")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBookingMoverUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newAttachReviewHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, b.Review())
	assert.Equal(t, 5, b.Review().Rating())
	assert.InDelta(t, 5.0, moverAggregate.Rating(), 0.001)
	assert.Equal(t, 1, moverAggregate.TotalJobsCompleted()) // counter untouched
	bookingRepo.AssertExpectations(t)
	moverRepo.AssertExpectations(t)
}

func TestAttachReviewCommandHandler_Handle_AccessDenied(t *testing.T) {
	ctx := t.Context()
	clientID := kernel.NewUUID()
	moverID := kernel.NewUUID()
	b := completedTestBooking(t, clientID, moverID)

	// The assigned mover tries to review their own job.
	cmd, err := commands.NewAttachReviewCommand(
		b.ID(), testActor(t, moverID, actor.Mover), 5, "")
	require.NoError(t, err)

	bookingRepo := new(MockBookingRepository)
	uow := new(MockBookingMoverUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BookingRepository").Return(bookingRepo).Once(),
		bookingRepo.On("Get", ctx, b.ID()).Return(b, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBookingMoverUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newAttachReviewHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrAccessDenied)
	assert.Nil(t, b.Review())
}

func TestAttachReviewCommandHandler_Handle_NotCompleted(t *testing.T) {
	ctx := t.Context()
	clientID := kernel.NewUUID()
	moverID := kernel.NewUUID()
	b := testBooking(t, clientID, moverID) // still confirmed

	cmd, err := commands.NewAttachReviewCommand(
		b.ID(), testActor(t, clientID, actor.Client), 4, "")
	require.NoError(t, err)

	bookingRepo := new(MockBookingRepository)
	uow := new(MockBookingMoverUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BookingRepository").Return(bookingRepo).Once(),
		bookingRepo.On("Get", ctx, b.ID()).Return(b, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBookingMoverUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newAttachReviewHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrConflict)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestAttachReviewCommandHandler_Handle_DuplicateReview(t *testing.T) {
	ctx := t.Context()
	clientID := kernel.NewUUID()
	moverID := kernel.NewUUID()
	b := completedTestBooking(t, clientID, moverID)
	existing, err := booking.NewReview(kernel.NewUUID(), clientID, 4, "",
		time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, b.AttachReview(existing))

	cmd, err := commands.NewAttachReviewCommand(
		b.ID(), testActor(t, clientID, actor.Client), 1, "changed my mind")
	require.NoError(t, err)

	bookingRepo := new(MockBookingRepository)
	uow := new(MockBookingMoverUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BookingRepository").Return(bookingRepo).Once(),
		bookingRepo.On("Get", ctx, b.ID()).Return(b, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBookingMoverUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newAttachReviewHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrConflict)
	assert.Equal(t, 4, b.Review().Rating())
}
