package handler

import (
	"net/http"

	"github.com/gigmate/gigmate/internal/dto"
	"github.com/gigmate/gigmate/internal/models"
	"github.com/gigmate/gigmate/internal/service"
	"github.com/labstack/echo/v4"
)

type TicketHolderHandler struct {
	svc service.TicketHolderService
}

func NewTicketHolderHandler(svc service.TicketHolderService) *TicketHolderHandler {
	return &TicketHolderHandler{svc: svc}
}

func (h *TicketHolderHandler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.CreateTicketHolder)
	g.GET("", h.ListTicketHolders)
	g.GET("/:id", h.GetTicketHolder)
	g.PATCH("/:id", h.UpdateTicketHolder)
	g.PUT("/:id", h.UpdateTicketHolder)
	g.DELETE("/:id", h.DeleteTicketHolder)
}

func (h *TicketHolderHandler) CreateTicketHolder(c echo.Context) error {
	var req dto.CreateTicketHolderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	holder := &models.TicketHolder{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	}
	if err := h.svc.CreateTicketHolder(c.Request().Context(), holder); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, holder)
}

func (h *TicketHolderHandler) GetTicketHolder(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	holder, err := h.svc.GetTicketHolder(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, holder)
}

func (h *TicketHolderHandler) ListTicketHolders(c echo.Context) error {
	holders, err := h.svc.ListTicketHolders(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, holders)
}

func (h *TicketHolderHandler) UpdateTicketHolder(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateTicketHolderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	holder, err := h.svc.UpdateTicketHolder(c.Request().Context(), id, service.UpdateTicketHolderInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, holder)
}

func (h *TicketHolderHandler) DeleteTicketHolder(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.svc.DeleteTicketHolder(c.Request().Context(), id); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "ticket holder deleted"})
}
