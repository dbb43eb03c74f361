package middleware

import (
	"errors"
	"net/http"

	"github.com/Eursukkul/eventclub/internal/dto"
	"github.com/Eursukkul/eventclub/internal/validation"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// NewErrorHandler renders every error as dto.ErrorResponse and logs 5xx.
func NewErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	logger = logger.Named("http")

	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		resp := dto.ErrorResponse{Message: http.StatusText(code)}

		var he *echo.HTTPError
		var ve *validation.Error
		switch {
		case errors.As(err, &he):
			code = he.Code
			switch m := he.Message.(type) {
			case string:
				resp.Message = m
			case dto.ErrorResponse:
				resp = m
			case error:
				resp.Message = m.Error()
			default:
				resp.Message = http.StatusText(code)
			}
		case errors.As(err, &ve):
			code = http.StatusBadRequest
			resp = dto.ErrorResponse{Message: ve.Message, Field: ve.Field}
		}

		if code >= http.StatusInternalServerError {
			logger.Error("request failed",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Int("status", code),
				zap.Error(err),
			)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, resp)
		}
		if err != nil {
			logger.Warn("write error response", zap.Error(err))
		}
	}
}
