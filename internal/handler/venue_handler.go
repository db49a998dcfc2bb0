package handler

import (
	"net/http"

	"github.com/gigmate/gigmate/internal/dto"
	"github.com/gigmate/gigmate/internal/models"
	"github.com/gigmate/gigmate/internal/service"
	"github.com/labstack/echo/v4"
)

type VenueHandler struct {
	svc service.VenueService
}

func NewVenueHandler(svc service.VenueService) *VenueHandler {
	return &VenueHandler{svc: svc}
}

func (h *VenueHandler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.CreateVenue)
	g.GET("", h.ListVenues)
	g.GET("/:id", h.GetVenue)
	g.PATCH("/:id", h.UpdateVenue)
	g.PUT("/:id", h.UpdateVenue)
	g.DELETE("/:id", h.DeleteVenue)
}

func (h *VenueHandler) CreateVenue(c echo.Context) error {
	var req dto.CreateVenueRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	venue := &models.Venue{
		Name:     req.Name,
		Location: req.Location,
		Capacity: req.Capacity,
	}
	if err := h.svc.CreateVenue(c.Request().Context(), venue); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, venue)
}

func (h *VenueHandler) GetVenue(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	venue, err := h.svc.GetVenue(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, venue)
}

func (h *VenueHandler) ListVenues(c echo.Context) error {
	venues, err := h.svc.ListVenues(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, venues)
}

func (h *VenueHandler) UpdateVenue(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateVenueRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	venue, err := h.svc.UpdateVenue(c.Request().Context(), id, service.UpdateVenueInput{
		Name:     req.Name,
		Location: req.Location,
		Capacity: req.Capacity,
	})
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, venue)
}

func (h *VenueHandler) DeleteVenue(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.svc.DeleteVenue(c.Request().Context(), id); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "venue deleted; its events now show venue to be announced"})
}
