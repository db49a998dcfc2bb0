package handler

import (
	"net/http"

	"github.com/gigmate/gigmate/internal/dto"
	"github.com/gigmate/gigmate/internal/service"
	"github.com/labstack/echo/v4"
)

type EventHandler struct {
	svc     service.EventService
	cascade service.CascadeService
}

func NewEventHandler(svc service.EventService, cascade service.CascadeService) *EventHandler {
	return &EventHandler{svc: svc, cascade: cascade}
}

func (h *EventHandler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.CreateEvent)
	g.GET("", h.ListEvents)
	g.GET("/:id", h.GetEvent)
	g.PATCH("/:id", h.UpdateEvent)
	g.PUT("/:id", h.UpdateEvent)
	g.DELETE("/:id", h.CancelEvent)
}

func (h *EventHandler) CreateEvent(c echo.Context) error {
	var req dto.CreateEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	event, err := h.svc.CreateEvent(c.Request().Context(), service.CreateEventInput{
		Title:         req.Title,
		Description:   req.Description,
		DurationHours: req.DurationHours,
		OrganiserID:   req.OrganiserID,
		VenueID:       req.VenueID,
	})
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, event)
}

func (h *EventHandler) GetEvent(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	event, err := h.svc.GetEvent(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, event)
}

func (h *EventHandler) ListEvents(c echo.Context) error {
	events, err := h.svc.ListEvents(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, events)
}

func (h *EventHandler) UpdateEvent(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	event, err := h.svc.UpdateEvent(c.Request().Context(), id, service.UpdateEventInput{
		Title:         req.Title,
		Description:   req.Description,
		DurationHours: req.DurationHours,
		OrganiserID:   req.OrganiserID,
		VenueID:       req.VenueID,
	})
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, event)
}

// CancelEvent cascades through every show under the event and all their
// active bookings, as one atomic unit.
func (h *EventHandler) CancelEvent(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	result, err := h.cascade.CancelEvent(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, dto.CancelResponse{
		Message:           "event cancelled; all shows and bookings cancelled",
		ShowsCancelled:    result.ShowsCancelled,
		BookingsCancelled: result.BookingsCancelled,
	})
}
