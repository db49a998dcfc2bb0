package handler

import (
	"net/http"

	"github.com/gigmate/gigmate/internal/dto"
	"github.com/gigmate/gigmate/internal/models"
	"github.com/gigmate/gigmate/internal/service"
	"github.com/labstack/echo/v4"
)

type OrganiserHandler struct {
	svc service.OrganiserService
}

func NewOrganiserHandler(svc service.OrganiserService) *OrganiserHandler {
	return &OrganiserHandler{svc: svc}
}

func (h *OrganiserHandler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.CreateOrganiser)
	g.GET("", h.ListOrganisers)
	g.GET("/:id", h.GetOrganiser)
	g.PATCH("/:id", h.UpdateOrganiser)
	g.PUT("/:id", h.UpdateOrganiser)
	g.DELETE("/:id", h.DeleteOrganiser)
}

func (h *OrganiserHandler) CreateOrganiser(c echo.Context) error {
	var req dto.CreateOrganiserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	organiser := &models.Organiser{
		FullName:    req.FullName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	}
	if err := h.svc.CreateOrganiser(c.Request().Context(), organiser); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, organiser)
}

func (h *OrganiserHandler) GetOrganiser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	organiser, err := h.svc.GetOrganiser(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, organiser)
}

func (h *OrganiserHandler) ListOrganisers(c echo.Context) error {
	organisers, err := h.svc.ListOrganisers(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, organisers)
}

func (h *OrganiserHandler) UpdateOrganiser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateOrganiserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	organiser, err := h.svc.UpdateOrganiser(c.Request().Context(), id, service.UpdateOrganiserInput{
		FullName:    req.FullName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, organiser)
}

func (h *OrganiserHandler) DeleteOrganiser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.svc.DeleteOrganiser(c.Request().Context(), id); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "organiser deleted"})
}
