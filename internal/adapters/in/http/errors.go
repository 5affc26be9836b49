package http

import (
	"errors"
	"net/http"

	"moving/internal/core/domain/model/actor"
	"moving/internal/core/domain/model/kernel"
	"moving/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Identity headers supplied by the upstream authentication layer. Callers
// arrive pre-authenticated; the service only maps the headers to an actor.
const (
	headerActorID   = "X-Actor-Id"
	headerActorRole = "X-Actor-Role"
)

// actorFromRequest builds the acting identity from the request headers.
func actorFromRequest(ctx echo.Context) (actor.Actor, error) {
	id, err := kernel.UUIDFromString(ctx.Request().Header.Get(headerActorID))
	if err != nil {
		return actor.Actor{}, errs.NewValueIsInvalidErrorWithCause(headerActorID, err)
	}

	role, err := actor.RoleFromString(ctx.Request().Header.Get(headerActorRole))
	if err != nil {
		return actor.Actor{}, errs.NewValueIsInvalidErrorWithCause(headerActorRole, err)
	}

	return actor.NewActor(id, role)
}

// statusFromError maps the domain error taxonomy to HTTP status codes.
// Anything outside the taxonomy is a storage or programming failure and
// surfaces as 500.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrAccessDenied):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrObjectUnavailable):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the JSON error body for err. Internal failures are not
// echoed back to the caller.
func respondError(ctx echo.Context, err error) error {
	code := statusFromError(err)

	message := err.Error()
	if code == http.StatusInternalServerError {
		message = "internal error"
	}

	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: message,
	})
}
