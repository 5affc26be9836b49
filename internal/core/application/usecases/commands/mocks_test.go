package commands_test

import (
	"context"

	"moving/internal/core/application/usecases/commands"
	"moving/internal/core/domain/model/booking"
	"moving/internal/core/domain/model/inventory"
	"moving/internal/core/domain/model/kernel"
	"moving/internal/core/domain/model/mover"
	"moving/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockBookingRepository struct{ mock.Mock }

func (m *MockBookingRepository) Add(ctx context.Context, b *booking.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) Get(ctx context.Context, id kernel.UUID) (*booking.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Booking), args.Error(1)
}

func (m *MockBookingRepository) ExistsByReference(ctx context.Context, reference booking.Reference) (bool, error) {
	args := m.Called(ctx, reference)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingRepository) RatingsByMover(ctx context.Context, moverID kernel.UUID) ([]int, error) {
	args := m.Called(ctx, moverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

type MockMoverRepository struct{ mock.Mock }

func (m *MockMoverRepository) Add(ctx context.Context, aggregate *mover.Mover) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockMoverRepository) Update(ctx context.Context, aggregate *mover.Mover) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockMoverRepository) Get(ctx context.Context, id kernel.UUID) (*mover.Mover, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mover.Mover), args.Error(1)
}

func (m *MockMoverRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*mover.Mover, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mover.Mover), args.Error(1)
}

func (m *MockMoverRepository) GetAllBookable(ctx context.Context) ([]*mover.Mover, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*mover.Mover), args.Error(1)
}

func (m *MockMoverRepository) GetAll(ctx context.Context) ([]*mover.Mover, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*mover.Mover), args.Error(1)
}

type MockInventoryRepository struct{ mock.Mock }

func (m *MockInventoryRepository) Add(ctx context.Context, aggregate *inventory.UserInventory) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockInventoryRepository) Update(ctx context.Context, aggregate *inventory.UserInventory) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockInventoryRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockInventoryRepository) Get(ctx context.Context, id kernel.UUID) (*inventory.UserInventory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.UserInventory), args.Error(1)
}

func (m *MockInventoryRepository) GetByClient(ctx context.Context, clientID kernel.UUID) ([]*inventory.UserInventory, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*inventory.UserInventory), args.Error(1)
}

type MockBookingMoverUoW struct{ mock.Mock }

func (m *MockBookingMoverUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockBookingMoverUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockBookingMoverUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockBookingMoverUoW) BookingRepository() ports.BookingRepository {
	args := m.Called()
	return args.Get(0).(ports.BookingRepository)
}

func (m *MockBookingMoverUoW) MoverRepository() ports.MoverRepository {
	args := m.Called()
	return args.Get(0).(ports.MoverRepository)
}

type MockBookingMoverUoWFactory struct{ mock.Mock }

func (m *MockBookingMoverUoWFactory) Create() commands.BookingMoverUoW {
	args := m.Called()
	return args.Get(0).(commands.BookingMoverUoW)
}

type MockInventoryUoW struct{ mock.Mock }

func (m *MockInventoryUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockInventoryUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockInventoryUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockInventoryUoW) InventoryRepository() ports.InventoryRepository {
	args := m.Called()
	return args.Get(0).(ports.InventoryRepository)
}

type MockInventoryUoWFactory struct{ mock.Mock }

func (m *MockInventoryUoWFactory) Create() commands.InventoryUoW {
	args := m.Called()
	return args.Get(0).(commands.InventoryUoW)
}
