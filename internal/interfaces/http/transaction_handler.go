package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stocktrack-api/internal/application/dto"
	"github.com/jhoicas/stocktrack-api/internal/application/usecase"
)

// TransactionHandler maneja el ledger de stock por equipo (protegido).
type TransactionHandler struct {
	uc *usecase.TransactionUseCase
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(uc *usecase.TransactionUseCase) *TransactionHandler {
	return &TransactionHandler{uc: uc}
}

// Apply godoc
// @Summary      Registrar transacción de stock
// @Description  Tipos: stock_in (suma), stock_out (resta, 409 si excede el
//	stock), adjust/count (fijan valor absoluto), move (solo cambia ubicación).
// @Tags         transactions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        teamId  path  string  true  "ID del equipo"
// @Param        body    body  dto.ApplyTransactionRequest  true  "item_id, transaction_type, quantity, ubicaciones, notes"
// @Success      201  {object}  dto.TransactionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/teams/{teamId}/transactions [post]
func (h *TransactionHandler) Apply(c *fiber.Ctx) error {
	var in dto.ApplyTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	txn, err := h.uc.Apply(c.Context(), GetUserID(c), c.Params("teamId"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(txn)
}

// List godoc
// @Summary      Listar transacciones del equipo
// @Description  Más recientes primero. El parámetro search filtra por nombre,
//	SKU o código de barras del artículo, email del usuario y ubicación,
//	sin distinguir mayúsculas ni tildes.
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        teamId  path   string  true   "ID del equipo"
// @Param        search  query  string  false  "texto libre"
// @Param        limit   query  int     false  "tamaño de página (default 20)"
// @Param        offset  query  int     false  "desplazamiento"
// @Success      200  {object}  dto.TransactionListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/teams/{teamId}/transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return invalidBody(c)
	}
	list, err := h.uc.List(GetUserID(c), c.Params("teamId"), c.Query("search"), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// Delete godoc
// @Summary      Eliminar transacción
// @Description  Corrección explícita del historial: borra la fila sin
//	recalcular el stock del artículo. Responde deleted=false si no existía.
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        teamId         path  string  true  "ID del equipo"
// @Param        transactionId  path  string  true  "ID de la transacción"
// @Success      200  {object}  dto.DeleteTransactionResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/teams/{teamId}/transactions/{transactionId} [delete]
func (h *TransactionHandler) Delete(c *fiber.Ctx) error {
	resp, err := h.uc.Delete(GetUserID(c), c.Params("teamId"), c.Params("transactionId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}
