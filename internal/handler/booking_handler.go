package handler

import (
	"net/http"
	"strconv"

	"github.com/gigmate/gigmate/internal/dto"
	"github.com/gigmate/gigmate/internal/service"
	"github.com/labstack/echo/v4"
)

const (
	defaultPage    = 1
	defaultPerPage = 10
)

type BookingHandler struct {
	svc service.BookingService
}

func NewBookingHandler(svc service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

func (h *BookingHandler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.CreateBooking)
	g.GET("", h.ListBookings)
	g.GET("/:id", h.GetBooking)
	g.POST("/:id/confirm", h.ConfirmBooking)
	g.POST("/:id/cancel", h.CancelBooking)
	g.DELETE("/:id", h.DeleteBooking)
}

func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req dto.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	booking, err := h.svc.CreateBooking(c.Request().Context(), service.CreateBookingInput{
		ShowID:         req.ShowID,
		TicketHolderID: req.TicketHolderID,
		Section:        req.Section,
		SeatNumber:     req.SeatNumber,
	})
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) ListBookings(c echo.Context) error {
	page, err := queryInt(c, "page", defaultPage)
	if err != nil {
		return err
	}
	perPage, err := queryInt(c, "per_page", defaultPerPage)
	if err != nil {
		return err
	}

	result, err := h.svc.ListBookings(c.Request().Context(), page, perPage)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, dto.ToBookingListResponse(result.Items, result.Total, result.Page, result.PerPage))
}

func (h *BookingHandler) GetBooking(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	booking, err := h.svc.GetBooking(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) ConfirmBooking(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	booking, err := h.svc.ConfirmBooking(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) CancelBooking(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	booking, err := h.svc.CancelBooking(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// DeleteBooking is the hard delete: the row is removed, unlike cancel which
// keeps the historical record.
func (h *BookingHandler) DeleteBooking(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.svc.DeleteBooking(c.Request().Context(), id); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "booking deleted"})
}

// queryInt parses a positive integer query parameter, falling back to the
// default when absent. Non-integer or non-positive values are a 400.
func queryInt(c echo.Context, name string, fallback int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" must be a positive integer")
	}
	return v, nil
}
