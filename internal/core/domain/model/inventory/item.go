package inventory

import (
	"fmt"

	"moving/internal/core/domain/model/kernel"
	"moving/internal/pkg/errs"
)

// Item is one line of an inventory: a named household item with a quantity
// and a per-unit volume in cubic meters. Zero-quantity lines are permitted in
// memory and contribute nothing to the total; persistence skips them.
type Item struct {
	id       kernel.UUID
	name     string
	quantity int
	volume   float64
}

// NewItem creates a validated inventory line. Quantity and volume must be
// non-negative.
func NewItem(id kernel.UUID, name string, quantity int, volume float64) (*Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("item name")
	}
	if quantity < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is negative", quantity))
	}
	if volume < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"volume", fmt.Errorf("%f is negative", volume))
	}

	return &Item{
		id:       id,
		name:     name,
		quantity: quantity,
		volume:   volume,
	}, nil
}

// ID returns the line's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// Name returns the item name.
func (i *Item) Name() string {
	return i.name
}

// Quantity returns the number of units.
func (i *Item) Quantity() int {
	return i.quantity
}

// Volume returns the per-unit volume in cubic meters.
func (i *Item) Volume() float64 {
	return i.volume
}

// LineVolume returns quantity × per-unit volume.
func (i *Item) LineVolume() float64 {
	return float64(i.quantity) * i.volume
}
