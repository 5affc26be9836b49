package commands

import (
	"errors"

	"moving/internal/pkg/guard"
)

var ErrRecalculateRatingsCommandIsNotConstructed = errors.New(
	"RecalculateRatingsCommand must be created via NewRecalculateRatingsCommand constructor",
)

// RecalculateRatingsCommand represents a request to recompute every mover's
// mean rating from their reviews. The nightly reconciliation job issues it;
// it carries no parameters.
type RecalculateRatingsCommand struct {
	guard guard.ConstructorGuard
}

// NewRecalculateRatingsCommand creates a command to reconcile mover ratings.
func NewRecalculateRatingsCommand() RecalculateRatingsCommand {
	return RecalculateRatingsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c RecalculateRatingsCommand) Validate() error {
	return c.guard.Validate(ErrRecalculateRatingsCommandIsNotConstructed)
}
