// Package http is the inbound HTTP adapter. It maps JSON requests onto
// commands and queries, extracts the acting identity from the
// pre-authenticated headers, and translates the domain error taxonomy to
// HTTP status codes.
package http

import (
	"net/http"

	"moving/internal/core/application/usecases/commands"
	"moving/internal/core/application/usecases/queries"
	"moving/internal/core/domain/model/booking"
	"moving/internal/core/domain/model/inventory"
	"moving/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createBookingHandler       commands.CreateBookingCommandHandler
	updateBookingStatusHandler commands.UpdateBookingStatusCommandHandler
	attachReviewHandler        commands.AttachReviewCommandHandler
	createInventoryHandler     commands.CreateInventoryCommandHandler
	updateInventoryHandler     commands.UpdateInventoryCommandHandler
	deleteInventoryHandler     commands.DeleteInventoryCommandHandler

	// Query handlers
	estimateHandler           queries.EstimateQueryHandler
	getBookingHandler         queries.GetBookingQueryHandler
	getTrackingHandler        queries.GetTrackingQueryHandler
	getAvailableMoversHandler queries.GetAvailableMoversQueryHandler
	getInventoryHandler       queries.GetInventoryQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createBookingHandler commands.CreateBookingCommandHandler,
	updateBookingStatusHandler commands.UpdateBookingStatusCommandHandler,
	attachReviewHandler commands.AttachReviewCommandHandler,
	createInventoryHandler commands.CreateInventoryCommandHandler,
	updateInventoryHandler commands.UpdateInventoryCommandHandler,
	deleteInventoryHandler commands.DeleteInventoryCommandHandler,
	estimateHandler queries.EstimateQueryHandler,
	getBookingHandler queries.GetBookingQueryHandler,
	getTrackingHandler queries.GetTrackingQueryHandler,
	getAvailableMoversHandler queries.GetAvailableMoversQueryHandler,
	getInventoryHandler queries.GetInventoryQueryHandler,
) *Server {
	return &Server{
		createBookingHandler:       createBookingHandler,
		updateBookingStatusHandler: updateBookingStatusHandler,
		attachReviewHandler:        attachReviewHandler,
		createInventoryHandler:     createInventoryHandler,
		updateInventoryHandler:     updateInventoryHandler,
		deleteInventoryHandler:     deleteInventoryHandler,
		estimateHandler:            estimateHandler,
		getBookingHandler:          getBookingHandler,
		getTrackingHandler:         getTrackingHandler,
		getAvailableMoversHandler:  getAvailableMoversHandler,
		getInventoryHandler:        getInventoryHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/bookings", s.CreateBooking)
	api.GET("/bookings/:bookingID", s.GetBooking)
	api.PATCH("/bookings/:bookingID/status", s.UpdateBookingStatus)
	api.GET("/bookings/:bookingID/tracking", s.GetTracking)
	api.POST("/bookings/:bookingID/review", s.AttachReview)

	api.POST("/estimates", s.Estimate)
	api.GET("/movers", s.GetAvailableMovers)

	api.POST("/inventories", s.CreateInventory)
	api.PUT("/inventories/:inventoryID", s.UpdateInventory)
	api.DELETE("/inventories/:inventoryID", s.DeleteInventory)
	api.GET("/clients/:clientID/inventories", s.GetInventories)
}

// CreateBooking handles POST /api/v1/bookings.
func (s *Server) CreateBooking(ctx echo.Context) error {
	requestedBy, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request CreateBookingRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	clientID, err := kernel.UUIDFromString(request.ClientID)
	if err != nil {
		return badRequest(ctx, "invalid client_id")
	}
	moverID, err := kernel.UUIDFromString(request.MoverID)
	if err != nil {
		return badRequest(ctx, "invalid mover_id")
	}

	pickup, err := addressFromPayload(request.Pickup)
	if err != nil {
		return badRequest(ctx, "invalid pickup: "+err.Error())
	}
	dropoff, err := addressFromPayload(request.Dropoff)
	if err != nil {
		return badRequest(ctx, "invalid dropoff: "+err.Error())
	}

	bookingID := kernel.NewUUID()
	cmd, err := commands.NewCreateBookingCommand(
		bookingID,
		requestedBy,
		clientID,
		moverID,
		pickup,
		dropoff,
		request.ScheduledDate,
		request.ScheduledTime,
		request.DistanceKm,
		request.TotalVolume,
		request.SpecialInstructions,
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.createBookingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateBookingResponse{ID: bookingID.String()})
}

// UpdateBookingStatus handles PATCH /api/v1/bookings/:bookingID/status.
func (s *Server) UpdateBookingStatus(ctx echo.Context) error {
	requestedBy, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	bookingID, err := kernel.UUIDFromString(ctx.Param("bookingID"))
	if err != nil {
		return badRequest(ctx, "invalid booking id")
	}

	var request UpdateBookingStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	target, err := booking.StatusFromString(request.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	geo, err := geoFromCoordinates(request.Latitude, request.Longitude)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateBookingStatusCommand(
		bookingID,
		requestedBy,
		target,
		request.Label,
		geo,
		request.Notes,
		request.OccurredAt,
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.updateBookingStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AttachReview handles POST /api/v1/bookings/:bookingID/review.
func (s *Server) AttachReview(ctx echo.Context) error {
	requestedBy, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	bookingID, err := kernel.UUIDFromString(ctx.Param("bookingID"))
	if err != nil {
		return badRequest(ctx, "invalid booking id")
	}

	var request AttachReviewRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewAttachReviewCommand(bookingID, requestedBy, request.Rating, request.Comment)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.attachReviewHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetBooking handles GET /api/v1/bookings/:bookingID.
func (s *Server) GetBooking(ctx echo.Context) error {
	requestedBy, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	bookingID, err := kernel.UUIDFromString(ctx.Param("bookingID"))
	if err != nil {
		return badRequest(ctx, "invalid booking id")
	}

	query, err := queries.NewGetBookingQuery(bookingID, requestedBy)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.getBookingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, BookingResponse{
		ID:        result.ID.String(),
		Reference: result.Reference,
		ClientID:  result.ClientID.String(),
		MoverID:   result.MoverID.String(),
		Status:    result.Status,
		Pickup: AddressPayload{
			Street:  result.PickupStreet,
			Floor:   result.PickupFloor,
			Details: result.PickupDetails,
		},
		Dropoff: AddressPayload{
			Street:  result.DropoffStreet,
			Floor:   result.DropoffFloor,
			Details: result.DropoffDetails,
		},
		ScheduledDate: result.ScheduledDate,
		ScheduledTime: result.ScheduledTime,
		DistanceKm:    result.DistanceKm,
		TotalVolume:   result.TotalVolume,
		Pricing: EstimateResponse{
			BasePrice:            result.BasePrice,
			VolumePrice:          result.VolumePrice,
			LaborCost:            result.LaborCost,
			PackingMaterialsCost: result.PackingMaterialsCost,
			ServiceFee:           result.ServiceFee,
			TotalPrice:           result.TotalPrice,
		},
		SpecialInstructions: result.SpecialInstructions,
		CreatedAt:           result.CreatedAt,
		UpdatedAt:           result.UpdatedAt,
	})
}

// GetTracking handles GET /api/v1/bookings/:bookingID/tracking.
func (s *Server) GetTracking(ctx echo.Context) error {
	requestedBy, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	bookingID, err := kernel.UUIDFromString(ctx.Param("bookingID"))
	if err != nil {
		return badRequest(ctx, "invalid booking id")
	}

	query, err := queries.NewGetTrackingQuery(bookingID, requestedBy)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.getTrackingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	history := make([]TrackingEvent, len(result.History))
	for i, event := range result.History {
		history[i] = TrackingEvent{
			ID:        event.ID.String(),
			Label:     event.Label,
			Latitude:  event.Latitude,
			Longitude: event.Longitude,
			Notes:     event.Notes,
			UpdatedBy: event.UpdatedBy.String(),
			CreatedAt: event.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, TrackingResponse{
		BookingID: result.BookingID.String(),
		Reference: result.Reference,
		Status:    result.Status,
		History:   history,
	})
}

// Estimate handles POST /api/v1/estimates. Estimates are not tied to the
// caller, but the request must still carry an authenticated identity.
func (s *Server) Estimate(ctx echo.Context) error {
	if _, err := actorFromRequest(ctx); err != nil {
		return respondError(ctx, err)
	}

	var request EstimateRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	moverID, err := kernel.UUIDFromString(request.MoverID)
	if err != nil {
		return badRequest(ctx, "invalid mover_id")
	}

	totalVolume := request.TotalVolume
	if totalVolume == 0 && len(request.Items) > 0 {
		totalVolume, err = aggregateItemVolume(request.Items)
		if err != nil {
			return respondError(ctx, err)
		}
	}

	query, err := queries.NewEstimateQuery(moverID, request.DistanceKm, totalVolume)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.estimateHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, EstimateResponse{
		BasePrice:            result.BasePrice,
		VolumePrice:          result.VolumePrice,
		LaborCost:            result.LaborCost,
		PackingMaterialsCost: result.PackingMaterialsCost,
		ServiceFee:           result.ServiceFee,
		TotalPrice:           result.TotalPrice,
	})
}

// GetAvailableMovers handles GET /api/v1/movers.
func (s *Server) GetAvailableMovers(ctx echo.Context) error {
	query := queries.NewGetAvailableMoversQuery()

	movers, err := s.getAvailableMoversHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]MoverResponse, len(movers))
	for i, m := range movers {
		response[i] = MoverResponse{
			ID:                 m.ID.String(),
			CompanyName:        m.CompanyName,
			VehicleType:        m.VehicleType,
			VehicleCapacity:    m.VehicleCapacity,
			BasePricePerKm:     m.BasePricePerKm,
			PricePerCubicMeter: m.PricePerCubicMeter,
			Rating:             m.Rating,
			TotalJobsCompleted: m.TotalJobsCompleted,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateInventory handles POST /api/v1/inventories.
func (s *Server) CreateInventory(ctx echo.Context) error {
	requestedBy, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request CreateInventoryRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	clientID, err := kernel.UUIDFromString(request.ClientID)
	if err != nil {
		return badRequest(ctx, "invalid client_id")
	}

	roomType, err := inventory.RoomTypeFromString(request.RoomType)
	if err != nil {
		return respondError(ctx, err)
	}

	inventoryID := kernel.NewUUID()
	cmd, err := commands.NewCreateInventoryCommand(
		inventoryID, requestedBy, clientID, roomType, itemInputsFromPayload(request.Items))
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.createInventoryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateInventoryResponse{ID: inventoryID.String()})
}

// UpdateInventory handles PUT /api/v1/inventories/:inventoryID.
func (s *Server) UpdateInventory(ctx echo.Context) error {
	requestedBy, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	inventoryID, err := kernel.UUIDFromString(ctx.Param("inventoryID"))
	if err != nil {
		return badRequest(ctx, "invalid inventory id")
	}

	var request UpdateInventoryRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	roomType, err := inventory.RoomTypeFromString(request.RoomType)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateInventoryCommand(
		inventoryID, requestedBy, roomType, itemInputsFromPayload(request.Items))
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.updateInventoryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteInventory handles DELETE /api/v1/inventories/:inventoryID.
func (s *Server) DeleteInventory(ctx echo.Context) error {
	requestedBy, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	inventoryID, err := kernel.UUIDFromString(ctx.Param("inventoryID"))
	if err != nil {
		return badRequest(ctx, "invalid inventory id")
	}

	cmd, err := commands.NewDeleteInventoryCommand(inventoryID, requestedBy)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.deleteInventoryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetInventories handles GET /api/v1/clients/:clientID/inventories.
func (s *Server) GetInventories(ctx echo.Context) error {
	requestedBy, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	clientID, err := kernel.UUIDFromString(ctx.Param("clientID"))
	if err != nil {
		return badRequest(ctx, "invalid client id")
	}

	query, err := queries.NewGetInventoryQuery(clientID, requestedBy)
	if err != nil {
		return respondError(ctx, err)
	}

	inventories, err := s.getInventoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]InventoryResponse, len(inventories))
	for i, inv := range inventories {
		items := make([]ItemPayload, len(inv.Items))
		for j, item := range inv.Items {
			items[j] = ItemPayload{
				Name:     item.Name,
				Quantity: item.Quantity,
				Volume:   item.Volume,
			}
		}
		response[i] = InventoryResponse{
			ID:          inv.ID.String(),
			ClientID:    inv.ClientID.String(),
			RoomType:    inv.RoomType,
			Items:       items,
			TotalVolume: inv.TotalVolume,
			CreatedAt:   inv.CreatedAt,
			UpdatedAt:   inv.UpdatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func addressFromPayload(payload AddressPayload) (kernel.Address, error) {
	geo, err := geoFromCoordinates(payload.Latitude, payload.Longitude)
	if err != nil {
		return kernel.Address{}, err
	}
	return kernel.NewAddress(payload.Street, geo, payload.Floor, payload.Details)
}

func geoFromCoordinates(latitude, longitude *float64) (*kernel.GeoPoint, error) {
	if latitude == nil || longitude == nil {
		return nil, nil
	}
	point, err := kernel.NewGeoPoint(*latitude, *longitude)
	if err != nil {
		return nil, err
	}
	return &point, nil
}

func aggregateItemVolume(items []ItemPayload) (float64, error) {
	lines := make([]inventory.EstimateLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, inventory.EstimateLine{
			Name:     item.Name,
			Quantity: item.Quantity,
			Volume:   item.Volume,
		})
	}
	return inventory.AggregateVolume(lines)
}

func itemInputsFromPayload(items []ItemPayload) []commands.ItemInput {
	inputs := make([]commands.ItemInput, 0, len(items))
	for _, item := range items {
		inputs = append(inputs, commands.ItemInput{
			Name:     item.Name,
			Quantity: item.Quantity,
			Volume:   item.Volume,
		})
	}
	return inputs
}
