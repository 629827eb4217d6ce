package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stocktrack-api/internal/application/dto"
	"github.com/jhoicas/stocktrack-api/internal/application/usecase"
)

// LocationHandler maneja ubicaciones por equipo (protegido).
type LocationHandler struct {
	uc *usecase.LocationUseCase
}

// NewLocationHandler construye el handler.
func NewLocationHandler(uc *usecase.LocationUseCase) *LocationHandler {
	return &LocationHandler{uc: uc}
}

// Create godoc
// @Summary      Crear ubicación
// @Tags         locations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        teamId  path  string  true  "ID del equipo"
// @Param        body    body  dto.CreateLocationRequest  true  "name (único por equipo)"
// @Success      201  {object}  dto.LocationResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/teams/{teamId}/locations [post]
func (h *LocationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLocationRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	location, err := h.uc.Create(GetUserID(c), c.Params("teamId"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(location)
}

// List godoc
// @Summary      Listar ubicaciones del equipo
// @Tags         locations
// @Security     Bearer
// @Produce      json
// @Param        teamId  path  string  true  "ID del equipo"
// @Success      200  {object}  dto.LocationListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/teams/{teamId}/locations [get]
func (h *LocationHandler) List(c *fiber.Ctx) error {
	locations, err := h.uc.List(GetUserID(c), c.Params("teamId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(locations)
}

// Update godoc
// @Summary      Renombrar ubicación
// @Tags         locations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        teamId      path  string  true  "ID del equipo"
// @Param        locationId  path  string  true  "ID de la ubicación"
// @Param        body        body  dto.UpdateLocationRequest  true  "name"
// @Success      200  {object}  dto.LocationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/teams/{teamId}/locations/{locationId} [put]
func (h *LocationHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateLocationRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	location, err := h.uc.Update(GetUserID(c), c.Params("teamId"), c.Params("locationId"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(location)
}

// Delete godoc
// @Summary      Eliminar ubicación
// @Tags         locations
// @Security     Bearer
// @Param        teamId      path  string  true  "ID del equipo"
// @Param        locationId  path  string  true  "ID de la ubicación"
// @Success      204  "sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/teams/{teamId}/locations/{locationId} [delete]
func (h *LocationHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetUserID(c), c.Params("teamId"), c.Params("locationId")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
