package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/consola-admin/internal/application/dto"
)

// writeGuard es el contrato mínimo que necesita el middleware; lo implementa *console.WriteGuard.
type writeGuard interface {
	Acquire(operator, resource string) (release func(), err error)
}

// RequireWriteSlot serializa las escrituras de un operador sobre un recurso.
// Debe usarse DESPUÉS de AuthMiddleware (necesita el operador).
//
// Comportamiento:
//   - 409 Conflict → ya hay una escritura del mismo operador en curso; no se llama al backend.
//   - La reserva se libera al terminar el handler, con éxito o con error.
func RequireWriteSlot(resource string, guard writeGuard) fiber.Handler {
	return func(c *fiber.Ctx) error {
		release, err := guard.Acquire(GetUsername(c), resource)
		if err != nil {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Code:    "BUSY",
				Message: err.Error(),
			})
		}
		defer release()
		return c.Next()
	}
}
