package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stocktrack-api/internal/application/dto"
	"github.com/jhoicas/stocktrack-api/internal/application/usecase"
)

// ItemHandler maneja artículos de inventario por equipo (protegido).
type ItemHandler struct {
	uc *usecase.ItemUseCase
}

// NewItemHandler construye el handler.
func NewItemHandler(uc *usecase.ItemUseCase) *ItemHandler {
	return &ItemHandler{uc: uc}
}

// Create godoc
// @Summary      Crear artículo
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        teamId  path  string  true  "ID del equipo"
// @Param        body    body  dto.CreateItemRequest  true  "name, sku, barcode, location_id, initial_quantity"
// @Success      201  {object}  dto.ItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/teams/{teamId}/items [post]
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	item, err := h.uc.Create(GetUserID(c), c.Params("teamId"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// List godoc
// @Summary      Listar artículos del equipo
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        teamId  path   string  true   "ID del equipo"
// @Param        limit   query  int     false  "tamaño de página (default 20)"
// @Param        offset  query  int     false  "desplazamiento"
// @Success      200  {object}  dto.ItemListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/teams/{teamId}/items [get]
func (h *ItemHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return invalidBody(c)
	}
	items, err := h.uc.List(GetUserID(c), c.Params("teamId"), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(items)
}

// GetByID godoc
// @Summary      Detalle de artículo
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        teamId  path  string  true  "ID del equipo"
// @Param        itemId  path  string  true  "ID del artículo"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/teams/{teamId}/items/{itemId} [get]
func (h *ItemHandler) GetByID(c *fiber.Ctx) error {
	item, err := h.uc.GetByID(GetUserID(c), c.Params("teamId"), c.Params("itemId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(item)
}

// Update godoc
// @Summary      Actualizar artículo
// @Description  Campos descriptivos solamente; el stock se mueve vía transacciones.
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        teamId  path  string  true  "ID del equipo"
// @Param        itemId  path  string  true  "ID del artículo"
// @Param        body    body  dto.UpdateItemRequest  true  "name, sku, barcode, location_id"
// @Success      200  {object}  dto.ItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/teams/{teamId}/items/{itemId} [put]
func (h *ItemHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	item, err := h.uc.Update(GetUserID(c), c.Params("teamId"), c.Params("itemId"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(item)
}

// Delete godoc
// @Summary      Eliminar artículo
// @Description  Elimina el artículo y su historial de transacciones. No ajusta
//	stock de otros artículos ni revierte movimientos.
// @Tags         items
// @Security     Bearer
// @Param        teamId  path  string  true  "ID del equipo"
// @Param        itemId  path  string  true  "ID del artículo"
// @Success      204  "sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/teams/{teamId}/items/{itemId} [delete]
func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetUserID(c), c.Params("teamId"), c.Params("itemId")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
