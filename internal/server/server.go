// Package server assembles the HTTP surface.
package server

import (
	"net/http"

	"github.com/Eursukkul/eventclub/internal/handler"
	"github.com/Eursukkul/eventclub/internal/middleware"
	"github.com/Eursukkul/eventclub/internal/service"
	"github.com/Eursukkul/eventclub/internal/validation"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

const serviceName = "eventclub"

type Services struct {
	Events        service.EventService
	Registrations service.RegistrationService
	Announcements service.AnnouncementService
}

func New(svcs Services, logger *zap.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validation.New()
	e.HTTPErrorHandler = middleware.NewErrorHandler(logger)

	e.Use(echoMw.RequestIDWithConfig(echoMw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.RequestLogger(logger))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "service": serviceName})
	})

	api := e.Group("/api")
	handler.NewEventHandler(svcs.Events).RegisterRoutes(api.Group("/events"))
	handler.NewRegistrationHandler(svcs.Registrations).RegisterRoutes(api)
	handler.NewAnnouncementHandler(svcs.Announcements).RegisterRoutes(api.Group("/announcements"))

	return e
}
