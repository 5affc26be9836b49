package queries

import (
	"errors"
	"time"

	"moving/internal/core/domain/model/actor"
	"moving/internal/core/domain/model/kernel"
	"moving/internal/pkg/errs"
	"moving/internal/pkg/guard"
)

var (
	ErrGetInventoryQueryIsNotConstructed = errors.New(
		"GetInventoryQuery must be created via NewGetInventoryQuery constructor",
	)
)

// GetInventoryQuery retrieves all inventories of one client, including their
// items and aggregated volume. Only the client themselves or an admin may
// read a client's inventories.
type GetInventoryQuery struct {
	clientID    kernel.UUID
	requestedBy actor.Actor

	guard guard.ConstructorGuard
}

// NewGetInventoryQuery creates a validated inventory retrieval query.
func NewGetInventoryQuery(clientID kernel.UUID, requestedBy actor.Actor) (GetInventoryQuery, error) {
	if err := clientID.Validate(); err != nil {
		return GetInventoryQuery{}, errs.NewValueIsRequiredError("clientID")
	}
	if err := requestedBy.Validate(); err != nil {
		return GetInventoryQuery{}, err
	}

	return GetInventoryQuery{
		clientID:    clientID,
		requestedBy: requestedBy,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// ClientID returns the client whose inventories are requested.
func (q GetInventoryQuery) ClientID() kernel.UUID {
	return q.clientID
}

// RequestedBy returns the actor making the request.
func (q GetInventoryQuery) RequestedBy() actor.Actor {
	return q.requestedBy
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetInventoryQueryIsNotConstructed if validation fails.
func (q GetInventoryQuery) Validate() error {
	return q.guard.Validate(ErrGetInventoryQueryIsNotConstructed)
}

// InventoryItemResponse is one line of an inventory read model.
type InventoryItemResponse struct {
	ID       kernel.UUID
	Name     string
	Quantity int
	Volume   float64
}

// GetInventoryQueryResponse is one inventory of the client, with its items
// and the total volume they aggregate to.
type GetInventoryQueryResponse struct {
	ID          kernel.UUID
	ClientID    kernel.UUID
	RoomType    string
	Items       []InventoryItemResponse
	TotalVolume float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
