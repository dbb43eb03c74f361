package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Eursukkul/eventclub/internal/dto"
	"github.com/Eursukkul/eventclub/internal/service"
	"github.com/Eursukkul/eventclub/internal/validation"
	"github.com/labstack/echo/v4"
)

func toHTTPError(err error) error {
	var ve *validation.Error
	switch {
	case errors.As(err, &ve):
		return echo.NewHTTPError(http.StatusBadRequest, dto.ErrorResponse{Message: ve.Message, Field: ve.Field})
	case errors.Is(err, service.ErrEventNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "event not found")
	case errors.Is(err, service.ErrRegistrationNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "registration not found")
	case errors.Is(err, service.ErrIllegalTransition):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error").SetInternal(err)
}

func parseID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name+" id")
	}
	return uint(id), nil
}

func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return toHTTPError(err)
	}
	return nil
}
