package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stocktrack-api/internal/application/usecase"
)

// BillingHandler maneja la suscripción del equipo (protegido).
type BillingHandler struct {
	uc *usecase.BillingUseCase
}

// NewBillingHandler construye el handler.
func NewBillingHandler(uc *usecase.BillingUseCase) *BillingHandler {
	return &BillingHandler{uc: uc}
}

// GetSubscription godoc
// @Summary      Estado de suscripción del equipo
// @Tags         billing
// @Security     Bearer
// @Produce      json
// @Param        teamId  path  string  true  "ID del equipo"
// @Success      200  {object}  dto.SubscriptionResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/teams/{teamId}/billing/subscription [get]
func (h *BillingHandler) GetSubscription(c *fiber.Ctx) error {
	sub, err := h.uc.GetSubscription(GetUserID(c), c.Params("teamId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(sub)
}

// SyncSubscription godoc
// @Summary      Sincronizar suscripción con el proveedor
// @Tags         billing
// @Security     Bearer
// @Produce      json
// @Param        teamId  path  string  true  "ID del equipo"
// @Success      200  {object}  dto.SubscriptionResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/teams/{teamId}/billing/subscription/sync [post]
func (h *BillingHandler) SyncSubscription(c *fiber.Ctx) error {
	sub, err := h.uc.SyncSubscription(c.Context(), GetUserID(c), c.Params("teamId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(sub)
}

// CancelSubscription godoc
// @Summary      Cancelar suscripción del equipo
// @Tags         billing
// @Security     Bearer
// @Produce      json
// @Param        teamId  path  string  true  "ID del equipo"
// @Success      200  {object}  dto.SubscriptionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/teams/{teamId}/billing/subscription/cancel [post]
func (h *BillingHandler) CancelSubscription(c *fiber.Ctx) error {
	sub, err := h.uc.CancelSubscription(c.Context(), GetUserID(c), c.Params("teamId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(sub)
}
