package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gigmate/gigmate/internal/service"
	"github.com/labstack/echo/v4"
)

// httpError translates service errors into the API's status-code contract:
// validation 400, missing entities 404, invariant conflicts 409.
func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, service.ErrVenueNotFound),
		errors.Is(err, service.ErrOrganiserNotFound),
		errors.Is(err, service.ErrEventNotFound),
		errors.Is(err, service.ErrShowNotFound),
		errors.Is(err, service.ErrBookingNotFound),
		errors.Is(err, service.ErrTicketHolderNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())

	case errors.Is(err, service.ErrInvalidPagination):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())

	case errors.Is(err, service.ErrSeatTaken),
		errors.Is(err, service.ErrCapacityExceeded),
		errors.Is(err, service.ErrAlreadyBooked),
		errors.Is(err, service.ErrShowCancelled),
		errors.Is(err, service.ErrEventCancelled),
		errors.Is(err, service.ErrInvalidTransition),
		errors.Is(err, service.ErrCancelViaCascade),
		errors.Is(err, service.ErrBookingActive),
		errors.Is(err, service.ErrDuplicateShow),
		errors.Is(err, service.ErrDuplicate),
		errors.Is(err, service.ErrHolderHasBookings),
		errors.Is(err, service.ErrHolderHasHistory),
		errors.Is(err, service.ErrConcurrentUpdate):
		return echo.NewHTTPError(http.StatusConflict, err.Error())

	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}
