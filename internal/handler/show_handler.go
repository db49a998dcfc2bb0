package handler

import (
	"net/http"

	"github.com/gigmate/gigmate/internal/dto"
	"github.com/gigmate/gigmate/internal/service"
	"github.com/labstack/echo/v4"
)

type ShowHandler struct {
	svc     service.ShowService
	cascade service.CascadeService
}

func NewShowHandler(svc service.ShowService, cascade service.CascadeService) *ShowHandler {
	return &ShowHandler{svc: svc, cascade: cascade}
}

func (h *ShowHandler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.CreateShow)
	g.GET("", h.ListShows)
	g.GET("/:id", h.GetShow)
	g.PATCH("/:id", h.UpdateShow)
	g.PUT("/:id", h.UpdateShow)
	g.DELETE("/:id", h.CancelShow)
}

func (h *ShowHandler) CreateShow(c echo.Context) error {
	var req dto.CreateShowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	show, err := h.svc.CreateShow(c.Request().Context(), req.EventID, req.DateTime)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, show)
}

func (h *ShowHandler) GetShow(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	show, err := h.svc.GetShow(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, show)
}

func (h *ShowHandler) ListShows(c echo.Context) error {
	shows, err := h.svc.ListShows(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, shows)
}

func (h *ShowHandler) UpdateShow(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateShowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	show, err := h.svc.UpdateShow(c.Request().Context(), id, service.UpdateShowInput{
		DateTime: req.DateTime,
		Status:   req.Status,
	})
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, show)
}

// CancelShow soft-cancels the show and cascades to its active bookings in
// one transaction. The show and booking rows stay in place for history.
func (h *ShowHandler) CancelShow(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	result, err := h.cascade.CancelShow(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, dto.CancelResponse{
		Message:           "show cancelled; all bookings for this show cancelled",
		ShowsCancelled:    result.ShowsCancelled,
		BookingsCancelled: result.BookingsCancelled,
	})
}
