package handler

import (
	"net/http"

	"github.com/Eursukkul/eventclub/internal/dto"
	"github.com/Eursukkul/eventclub/internal/models"
	"github.com/Eursukkul/eventclub/internal/service"
	"github.com/labstack/echo/v4"
)

type AnnouncementHandler struct {
	svc service.AnnouncementService
}

func NewAnnouncementHandler(svc service.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{svc: svc}
}

func (h *AnnouncementHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.ListAnnouncements)
	g.POST("", h.CreateAnnouncement)
}

func (h *AnnouncementHandler) CreateAnnouncement(c echo.Context) error {
	var req dto.CreateAnnouncementRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	a := &models.Announcement{
		EventID: req.EventID,
		Title:   req.Title,
		Message: req.Message,
	}
	if err := h.svc.CreateAnnouncement(c.Request().Context(), a); err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, dto.ToAnnouncementWithEventResponse(a))
}

func (h *AnnouncementHandler) ListAnnouncements(c echo.Context) error {
	items, err := h.svc.ListAnnouncements(c.Request().Context())
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, dto.ToAnnouncementWithEventResponses(items))
}
