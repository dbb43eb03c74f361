package handler

import (
	"net/http"

	"github.com/Eursukkul/eventclub/internal/dto"
	"github.com/Eursukkul/eventclub/internal/models"
	"github.com/Eursukkul/eventclub/internal/service"
	"github.com/labstack/echo/v4"
)

type RegistrationHandler struct {
	svc service.RegistrationService
}

func NewRegistrationHandler(svc service.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{svc: svc}
}

// RegisterRoutes mounts on the /api group since the per-event listing lives
// under /events.
func (h *RegistrationHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/registrations", h.CreateRegistration)
	g.GET("/registrations/status", h.GetStatusByEmail)
	g.GET("/registrations/:id", h.GetRegistration)
	g.PATCH("/registrations/:id/status", h.UpdateStatus)
	g.GET("/events/:id/registrations", h.ListByEvent)
}

func (h *RegistrationHandler) CreateRegistration(c echo.Context) error {
	var req dto.CreateRegistrationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	reg, err := h.svc.CreateRegistration(c.Request().Context(), req.EventID, req.Name, req.Email)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, dto.ToRegistrationResponse(reg))
}

func (h *RegistrationHandler) GetRegistration(c echo.Context) error {
	id, err := parseID(c, "registration")
	if err != nil {
		return err
	}

	reg, err := h.svc.GetRegistration(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, dto.ToRegistrationResponse(reg))
}

func (h *RegistrationHandler) UpdateStatus(c echo.Context) error {
	id, err := parseID(c, "registration")
	if err != nil {
		return err
	}

	var req dto.UpdateRegistrationStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	reg, err := h.svc.UpdateRegistrationStatus(c.Request().Context(), id, models.RegistrationStatus(req.Status))
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, dto.ToRegistrationResponse(reg))
}

func (h *RegistrationHandler) GetStatusByEmail(c echo.Context) error {
	regs, err := h.svc.GetRegistrationsByEmail(c.Request().Context(), c.QueryParam("email"))
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, dto.ToRegistrationWithEventResponses(regs))
}

func (h *RegistrationHandler) ListByEvent(c echo.Context) error {
	id, err := parseID(c, "event")
	if err != nil {
		return err
	}

	regs, err := h.svc.GetRegistrationsByEvent(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, dto.ToRegistrationResponses(regs))
}
