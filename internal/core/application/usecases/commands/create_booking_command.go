package commands

import (
	"errors"
	"time"

	"moving/internal/core/domain/model/actor"
	"moving/internal/core/domain/model/kernel"
	"moving/internal/pkg/guard"
)

var (
	ErrCreateBookingCommandIsNotConstructed = errors.New(
		"CreateBookingCommand must be created via NewCreateBookingCommand constructor",
	)
	ErrDistanceIsInvalid    = errors.New("distance must be greater than 0")
	ErrTotalVolumeIsInvalid = errors.New("total volume must be greater than 0")
	ErrScheduleIsRequired   = errors.New("scheduled date and time are required")
)

// CreateBookingCommand represents a request to book a move with a specific
// mover. The price is not part of the command: it is computed from the
// mover's rate card inside the handler's transaction.
type CreateBookingCommand struct { //nolint:recvcheck //using for validation
	bookingID           kernel.UUID
	requestedBy         actor.Actor
	clientID            kernel.UUID
	moverID             kernel.UUID
	pickup              kernel.Address
	dropoff             kernel.Address
	scheduledDate       time.Time
	scheduledTime       time.Time
	distanceKm          float64
	totalVolume         float64
	specialInstructions string

	guard guard.ConstructorGuard
}

// NewCreateBookingCommand creates a command to book a move.
// Validates identifiers, addresses, schedule, and that distance and volume
// are positive. Returns an error if any validation fails.
func NewCreateBookingCommand(
	bookingID kernel.UUID,
	requestedBy actor.Actor,
	clientID kernel.UUID,
	moverID kernel.UUID,
	pickup kernel.Address,
	dropoff kernel.Address,
	scheduledDate time.Time,
	scheduledTime time.Time,
	distanceKm float64,
	totalVolume float64,
	specialInstructions string,
) (CreateBookingCommand, error) {
	cmd := CreateBookingCommand{
		specialInstructions: specialInstructions,
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setIDs(bookingID, clientID, moverID),
		cmd.setRequestedBy(requestedBy),
		cmd.setAddresses(pickup, dropoff),
		cmd.setSchedule(scheduledDate, scheduledTime),
		cmd.setLogistics(distanceKm, totalVolume),
	); err != nil {
		return CreateBookingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateBookingCommand) Validate() error {
	return c.guard.Validate(ErrCreateBookingCommandIsNotConstructed)
}

// BookingID returns the identifier the new booking will carry.
func (c CreateBookingCommand) BookingID() kernel.UUID {
	return c.bookingID
}

// RequestedBy returns the actor issuing the command.
func (c CreateBookingCommand) RequestedBy() actor.Actor {
	return c.requestedBy
}

// ClientID returns the client the booking is created for.
func (c CreateBookingCommand) ClientID() kernel.UUID {
	return c.clientID
}

// MoverID returns the mover the booking is placed with.
func (c CreateBookingCommand) MoverID() kernel.UUID {
	return c.moverID
}

// Pickup returns the pickup address.
func (c CreateBookingCommand) Pickup() kernel.Address {
	return c.pickup
}

// Dropoff returns the dropoff address.
func (c CreateBookingCommand) Dropoff() kernel.Address {
	return c.dropoff
}

// ScheduledDate returns the scheduled move date.
func (c CreateBookingCommand) ScheduledDate() time.Time {
	return c.scheduledDate
}

// ScheduledTime returns the scheduled time of day.
func (c CreateBookingCommand) ScheduledTime() time.Time {
	return c.scheduledTime
}

// DistanceKm returns the move distance in kilometers.
func (c CreateBookingCommand) DistanceKm() float64 {
	return c.distanceKm
}

// TotalVolume returns the shipment volume in cubic meters.
func (c CreateBookingCommand) TotalVolume() float64 {
	return c.totalVolume
}

// SpecialInstructions returns optional free-text instructions.
func (c CreateBookingCommand) SpecialInstructions() string {
	return c.specialInstructions
}

func (c *CreateBookingCommand) setIDs(bookingID, clientID, moverID kernel.UUID) error {
	if err := errors.Join(
		bookingID.Validate(),
		clientID.Validate(),
		moverID.Validate(),
	); err != nil {
		return err
	}

	c.bookingID = bookingID
	c.clientID = clientID
	c.moverID = moverID
	return nil
}

func (c *CreateBookingCommand) setRequestedBy(requestedBy actor.Actor) error {
	if err := requestedBy.Validate(); err != nil {
		return err
	}

	c.requestedBy = requestedBy
	return nil
}

func (c *CreateBookingCommand) setAddresses(pickup, dropoff kernel.Address) error {
	if err := errors.Join(pickup.Validate(), dropoff.Validate()); err != nil {
		return err
	}

	c.pickup = pickup
	c.dropoff = dropoff
	return nil
}

func (c *CreateBookingCommand) setSchedule(scheduledDate, scheduledTime time.Time) error {
	if scheduledDate.IsZero() || scheduledTime.IsZero() {
		return ErrScheduleIsRequired
	}

	c.scheduledDate = scheduledDate
	c.scheduledTime = scheduledTime
	return nil
}

func (c *CreateBookingCommand) setLogistics(distanceKm, totalVolume float64) error {
	if distanceKm <= 0 {
		return ErrDistanceIsInvalid
	}
	if totalVolume <= 0 {
		return ErrTotalVolumeIsInvalid
	}

	c.distanceKm = distanceKm
	c.totalVolume = totalVolume
	return nil
}
