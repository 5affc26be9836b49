package commands_test

import (
	"testing"
	"time"

	"moving/internal/core/application/usecases/commands"
	"moving/internal/core/domain/model/actor"
	"moving/internal/core/domain/model/kernel"
	"moving/internal/core/domain/services"
	"moving/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validCreateBookingCommand(t *testing.T, clientID, moverID kernel.UUID) commands.CreateBookingCommand {
	t.Helper()
	cmd, err := commands.NewCreateBookingCommand(
		kernel.NewUUID(),
		testActor(t, clientID, actor.Client),
		clientID,
		moverID,
		testAddress(t, "12 Riverside Drive"),
		testAddress(t, "45 Ngong Road"),
		time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC),
		time.Date(0, 1, 1, 9, 30, 0, 0, time.UTC),
		15.5, 12.0, "fragile glassware",
	)
	require.NoError(t, err)
	return cmd
}

func newCreateBookingHandler(factory commands.BookingMoverUoWFactory) commands.CreateBookingCommandHandler {
	return commands.NewCreateBookingCommandHandler(
		factory, services.NewPriceCalculator(), services.NewAccessPolicy())
}

func TestNewCreateBookingCommand(t *testing.T) {
	clientID := kernel.NewUUID()
	moverID := kernel.NewUUID()

	t.Run("should create a valid command", func(t *testing.T) {
		cmd := validCreateBookingCommand(t, clientID, moverID)

		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.ClientID().IsEqual(clientID))
		assert.True(t, cmd.MoverID().IsEqual(moverID))
		assert.InDelta(t, 15.5, cmd.DistanceKm(), 0.001)
	})

	t.Run("should reject non-positive distance", func(t *testing.T) {
		_, err := commands.NewCreateBookingCommand(
			kernel.NewUUID(), testActor(t, clientID, actor.Client), clientID, moverID,
			testAddress(t, "a"), testAddress(t, "b"),
			time.Now(), time.Now(), 0, 12, "",
		)

		require.Error(t, err)
		require.ErrorIs(t, err, commands.ErrDistanceIsInvalid)
	})

	t.Run("should reject non-positive volume", func(t *testing.T) {
		_, err := commands.NewCreateBookingCommand(
			kernel.NewUUID(), testActor(t, clientID, actor.Client), clientID, moverID,
			testAddress(t, "a"), testAddress(t, "b"),
			time.Now(), time.Now(), 10, -1, "",
		)

		require.Error(t, err)
		require.ErrorIs(t, err, commands.ErrTotalVolumeIsInvalid)
	})

	t.Run("should reject a missing schedule", func(t *testing.T) {
		_, err := commands.NewCreateBookingCommand(
			kernel.NewUUID(), testActor(t, clientID, actor.Client), clientID, moverID,
			testAddress(t, "a"), testAddress(t, "b"),
			time.Time{}, time.Now(), 10, 12, "",
		)

		require.Error(t, err)
		require.ErrorIs(t, err, commands.ErrScheduleIsRequired)
	})

	t.Run("should fail validation when not constructed", func(t *testing.T) {
		var cmd commands.CreateBookingCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateBookingCommandIsNotConstructed)
	})
}

func TestCreateBookingCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	clientID := kernel.NewUUID()
	moverID := kernel.NewUUID()
	cmd := validCreateBookingCommand(t, clientID, moverID)
	bookableMover := testMover(t, moverID)

	bookingRepo := new(MockBookingRepository)
	moverRepo := new(MockMoverRepository)
	uow := new(MockBookingMoverUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MoverRepository").Return(moverRepo).Once(),
		moverRepo.On("Get", ctx, moverID).Return(bookableMover, nil).Once(),
		uow.On("BookingRepository").Return(bookingRepo).Once(),
		bookingRepo.On("ExistsByReference", ctx, mock.AnythingOfType("booking.Reference")).Return(false, nil).Once(),
		bookingRepo.On("Add", ctx, mock.AnythingOfType("*booking.Booking")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBookingMoverUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newCreateBookingHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	bookingRepo.AssertExpectations(t)
	moverRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateBookingCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateBookingCommand{} // not constructed properly

	factory := new(MockBookingMoverUoWFactory)
	handler := newCreateBookingHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateBookingCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateBookingCommandHandler_Handle_AccessDenied(t *testing.T) {
	ctx := t.Context()
	clientID := kernel.NewUUID()
	moverID := kernel.NewUUID()

	// A different client booking on someone else's behalf.
	cmd, err := commands.NewCreateBookingCommand(
		kernel.NewUUID(), testActor(t, kernel.NewUUID(), actor.Client), clientID, moverID,
		testAddress(t, "a"), testAddress(t, "b"),
		time.Now(), time.Now(), 10, 12, "",
	)
	require.NoError(t, err)

	factory := new(MockBookingMoverUoWFactory)
	handler := newCreateBookingHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrAccessDenied)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateBookingCommandHandler_Handle_MoverNotBookable(t *testing.T) {
	ctx := t.Context()
	clientID := kernel.NewUUID()
	moverID := kernel.NewUUID()
	cmd := validCreateBookingCommand(t, clientID, moverID)

	unavailableMover := testMover(t, moverID)
	unavailableMover.SetAvailability(false)

	moverRepo := new(MockMoverRepository)
	uow := new(MockBookingMoverUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MoverRepository").Return(moverRepo).Once(),
		moverRepo.On("Get", ctx, moverID).Return(unavailableMover, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBookingMoverUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newCreateBookingHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectUnavailable)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCreateBookingCommandHandler_Handle_MoverNotFound(t *testing.T) {
	ctx := t.Context()
	clientID := kernel.NewUUID()
	moverID := kernel.NewUUID()
	cmd := validCreateBookingCommand(t, clientID, moverID)

	moverRepo := new(MockMoverRepository)
	uow := new(MockBookingMoverUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MoverRepository").Return(moverRepo).Once(),
		moverRepo.On("Get", ctx, moverID).
			Return(nil, errs.NewObjectNotFoundError("moverID", moverID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBookingMoverUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newCreateBookingHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestCreateBookingCommandHandler_Handle_ReferenceCollisionRetries(t *testing.T) {
	ctx := t.Context()
	clientID := kernel.NewUUID()
	moverID := kernel.NewUUID()
	cmd := validCreateBookingCommand(t, clientID, moverID)
	bookableMover := testMover(t, moverID)

	bookingRepo := new(MockBookingRepository)
	moverRepo := new(MockMoverRepository)
	uow := new(MockBookingMoverUoW)

	// Each attempt runs in its own unit of work.
	uow.On("Begin", ctx).Return(nil).Times(3)
	uow.On("MoverRepository").Return(moverRepo).Times(3)
	moverRepo.On("Get", ctx, moverID).Return(bookableMover, nil).Times(3)
	uow.On("BookingRepository").Return(bookingRepo).Times(3)
	// First two draws collide, the third succeeds.
	bookingRepo.On("ExistsByReference", ctx, mock.AnythingOfType("booking.Reference")).
		Return(true, nil).Twice()
	bookingRepo.On("ExistsByReference", ctx, mock.AnythingOfType("booking.Reference")).
		Return(false, nil).Once()
	bookingRepo.On("Add", ctx, mock.AnythingOfType("*booking.Booking")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Times(3)

	factory := new(MockBookingMoverUoWFactory)
	factory.On("Create").Return(uow).Times(3)

	handler := newCreateBookingHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	bookingRepo.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateBookingCommandHandler_Handle_ReferenceSpaceExhausted(t *testing.T) {
	ctx := t.Context()
	clientID := kernel.NewUUID()
	moverID := kernel.NewUUID()
	cmd := validCreateBookingCommand(t, clientID, moverID)
	bookableMover := testMover(t, moverID)

	bookingRepo := new(MockBookingRepository)
	moverRepo := new(MockMoverRepository)
	uow := new(MockBookingMoverUoW)

	uow.On("Begin", ctx).Return(nil).Times(5)
	uow.On("MoverRepository").Return(moverRepo).Times(5)
	moverRepo.On("Get", ctx, moverID).Return(bookableMover, nil).Times(5)
	uow.On("BookingRepository").Return(bookingRepo).Times(5)
	// Every draw collides.
	bookingRepo.On("ExistsByReference", ctx, mock.AnythingOfType("booking.Reference")).
		Return(true, nil).Times(5)
	uow.On("Rollback", ctx).Return(nil).Times(5)

	factory := new(MockBookingMoverUoWFactory)
	factory.On("Create").Return(uow).Times(5)

	handler := newCreateBookingHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrConflict)
	bookingRepo.AssertExpectations(t)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCreateBookingCommandHandler_Handle_InsertConflictRetries(t *testing.T) {
	ctx := t.Context()
	clientID := kernel.NewUUID()
	moverID := kernel.NewUUID()
	cmd := validCreateBookingCommand(t, clientID, moverID)
	bookableMover := testMover(t, moverID)

	bookingRepo := new(MockBookingRepository)
	moverRepo := new(MockMoverRepository)
	uow := new(MockBookingMoverUoW)

	uow.On("Begin", ctx).Return(nil).Twice()
	uow.On("MoverRepository").Return(moverRepo).Twice()
	moverRepo.On("Get", ctx, moverID).Return(bookableMover, nil).Twice()
	uow.On("BookingRepository").Return(bookingRepo).Twice()
	bookingRepo.On("ExistsByReference", ctx, mock.AnythingOfType("booking.Reference")).
		Return(false, nil).Twice()
	// The pre-check passed but a concurrent insert won the reference. The
	// failed insert aborts that transaction, so the second attempt must run
	// in a fresh unit of work rather than continue on the first.
	bookingRepo.On("Add", ctx, mock.AnythingOfType("*booking.Booking")).
		Return(errs.NewConflictError("booking reference")).Once()
	bookingRepo.On("Add", ctx, mock.AnythingOfType("*booking.Booking")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Twice()

	factory := new(MockBookingMoverUoWFactory)
	factory.On("Create").Return(uow).Twice()

	handler := newCreateBookingHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	bookingRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}
