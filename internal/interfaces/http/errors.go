package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/consola-admin/internal/application/dto"
	"github.com/jhoicas/consola-admin/internal/domain"
)

// writeError traduce los errores de casos de uso y adaptadores a la respuesta HTTP.
func writeError(c *fiber.Ctx, err error) error {
	status, body := errorResponse(err)
	return c.Status(status).JSON(body)
}

func errorResponse(err error) (int, dto.ErrorResponse) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		body := dto.ErrorResponse{Code: "VALIDATION", Message: verr.Message}
		if verr.Field != "" {
			body.FieldErrors = map[string]string{verr.Field: verr.Message}
		}
		return fiber.StatusBadRequest, body
	}

	var apiErr *domain.APIError
	if errors.As(err, &apiErr) {
		body := dto.ErrorResponse{Code: "BACKEND_ERROR", Message: apiErr.Error(), FieldErrors: apiErr.FieldErrors}
		switch {
		case apiErr.HasFieldErrors():
			body.Code = "BACKEND_VALIDATION"
			return fiber.StatusUnprocessableEntity, body
		case apiErr.Status == fiber.StatusNotFound:
			body.Code = "NOT_FOUND"
			return fiber.StatusNotFound, body
		case apiErr.Status >= 400 && apiErr.Status < 500:
			return apiErr.Status, body
		default:
			body.Code = "BAD_GATEWAY"
			return fiber.StatusBadGateway, body
		}
	}

	switch {
	case errors.Is(err, domain.ErrBusy):
		return fiber.StatusConflict, dto.ErrorResponse{Code: "BUSY", Message: err.Error()}
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()}
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"}
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, dto.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()}
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()}
	case errors.Is(err, context.DeadlineExceeded):
		return fiber.StatusGatewayTimeout, dto.ErrorResponse{Code: "TIMEOUT", Message: "el backend no respondió a tiempo"}
	}

	var ferr *fiber.Error
	if errors.As(err, &ferr) {
		return ferr.Code, dto.ErrorResponse{Code: "HTTP_ERROR", Message: ferr.Message}
	}
	return fiber.StatusInternalServerError, dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()}
}

// ErrorHandler handler de errores de la app Fiber con el mismo formato de cuerpo.
func ErrorHandler(c *fiber.Ctx, err error) error {
	return writeError(c, err)
}
