package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/stocktrack-api/internal/application/dto"
	"github.com/jhoicas/stocktrack-api/internal/domain"
)

// writeError traduce errores de aplicación a respuestas HTTP. Los errores
// tipados llevan su status y código; cualquier otro error es un 500 y se
// loggea con el detalle, sin filtrarlo al cliente.
func writeError(c *fiber.Ctx, err error) error {
	if appErr, ok := domain.AsAppError(err); ok {
		return c.Status(appErr.Status).JSON(dto.ErrorResponse{Code: appErr.Code, Message: appErr.Message})
	}
	log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error no manejado")
	return c.Status(fiber.StatusInternalServerError).
		JSON(dto.ErrorResponse{Code: domain.CodeInternal, Message: "error interno"})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).
		JSON(dto.ErrorResponse{Code: domain.CodeValidation, Message: "cuerpo inválido"})
}
