package cmd

import (
	"moving/internal/adapters/out/postgres"
	"moving/internal/core/application/usecases/commands"
	"moving/internal/core/application/usecases/queries"
	"moving/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory

	priceCalculator  services.PriceCalculator
	ratingCalculator services.RatingCalculator
	accessPolicy     services.AccessPolicy
	transitionPolicy services.TransitionPolicy
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:           gormDB,
		uowFactory:       postgres.NewGormUnitOfWorkFactory(gormDB),
		priceCalculator:  services.NewPriceCalculator(),
		ratingCalculator: services.NewRatingCalculator(),
		accessPolicy:     services.NewAccessPolicy(),
		transitionPolicy: services.NewTransitionPolicy(config.AllowCancelFromInProgress),
	}
}

func (c *CompositionRoot) bookingMoverUoWFactory() commands.BookingMoverUoWFactory {
	return FuncBookingMoverUoWFactory(func() commands.BookingMoverUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) inventoryUoWFactory() commands.InventoryUoWFactory {
	return FuncInventoryUoWFactory(func() commands.InventoryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateBookingCommandHandler() commands.CreateBookingCommandHandler {
	return commands.NewCreateBookingCommandHandler(c.bookingMoverUoWFactory(), c.priceCalculator, c.accessPolicy)
}

func (c *CompositionRoot) CreateUpdateBookingStatusCommandHandler() commands.UpdateBookingStatusCommandHandler {
	return commands.NewUpdateBookingStatusCommandHandler(
		c.bookingMoverUoWFactory(), c.accessPolicy, c.ratingCalculator, c.transitionPolicy)
}

func (c *CompositionRoot) CreateAttachReviewCommandHandler() commands.AttachReviewCommandHandler {
	return commands.NewAttachReviewCommandHandler(c.bookingMoverUoWFactory(), c.accessPolicy, c.ratingCalculator)
}

func (c *CompositionRoot) CreateRecalculateRatingsCommandHandler() commands.RecalculateRatingsCommandHandler {
	return commands.NewRecalculateRatingsCommandHandler(c.bookingMoverUoWFactory(), c.ratingCalculator)
}

func (c *CompositionRoot) CreateCreateInventoryCommandHandler() commands.CreateInventoryCommandHandler {
	return commands.NewCreateInventoryCommandHandler(c.inventoryUoWFactory(), c.accessPolicy)
}

func (c *CompositionRoot) CreateUpdateInventoryCommandHandler() commands.UpdateInventoryCommandHandler {
	return commands.NewUpdateInventoryCommandHandler(c.inventoryUoWFactory(), c.accessPolicy)
}

func (c *CompositionRoot) CreateDeleteInventoryCommandHandler() commands.DeleteInventoryCommandHandler {
	return commands.NewDeleteInventoryCommandHandler(c.inventoryUoWFactory(), c.accessPolicy)
}

func (c *CompositionRoot) CreateEstimateQueryHandler() queries.EstimateQueryHandler {
	return queries.NewEstimateQueryHandler(c.gormDB, c.priceCalculator)
}

func (c *CompositionRoot) CreateGetBookingQueryHandler() queries.GetBookingQueryHandler {
	return queries.NewGetBookingQueryHandler(c.gormDB, c.accessPolicy)
}

func (c *CompositionRoot) CreateGetTrackingQueryHandler() queries.GetTrackingQueryHandler {
	return queries.NewGetTrackingQueryHandler(c.gormDB, c.accessPolicy)
}

func (c *CompositionRoot) CreateGetAvailableMoversQueryHandler() queries.GetAvailableMoversQueryHandler {
	return queries.NewGetAvailableMoversQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetInventoryQueryHandler() queries.GetInventoryQueryHandler {
	return queries.NewGetInventoryQueryHandler(c.gormDB, c.accessPolicy)
}

type FuncBookingMoverUoWFactory func() commands.BookingMoverUoW

func (f FuncBookingMoverUoWFactory) Create() commands.BookingMoverUoW {
	return f()
}

type FuncInventoryUoWFactory func() commands.InventoryUoW

func (f FuncInventoryUoWFactory) Create() commands.InventoryUoW {
	return f()
}
