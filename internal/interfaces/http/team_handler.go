package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stocktrack-api/internal/application/dto"
	"github.com/jhoicas/stocktrack-api/internal/application/usecase"
)

// TeamHandler maneja equipos y sus membresías (protegido).
type TeamHandler struct {
	uc *usecase.TeamUseCase
}

// NewTeamHandler construye el handler.
func NewTeamHandler(uc *usecase.TeamUseCase) *TeamHandler {
	return &TeamHandler{uc: uc}
}

// Create godoc
// @Summary      Crear equipo
// @Tags         teams
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTeamRequest  true  "name"
// @Success      201   {object}  dto.TeamResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/teams [post]
func (h *TeamHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTeamRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	team, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(team)
}

// List godoc
// @Summary      Listar equipos del usuario
// @Tags         teams
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.TeamListResponse
// @Router       /api/teams [get]
func (h *TeamHandler) List(c *fiber.Ctx) error {
	teams, err := h.uc.ListByUser(GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(teams)
}

// GetByID godoc
// @Summary      Detalle de equipo
// @Tags         teams
// @Security     Bearer
// @Produce      json
// @Param        teamId  path  string  true  "ID del equipo"
// @Success      200  {object}  dto.TeamResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/teams/{teamId} [get]
func (h *TeamHandler) GetByID(c *fiber.Ctx) error {
	team, err := h.uc.GetByID(GetUserID(c), c.Params("teamId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(team)
}

// Update godoc
// @Summary      Renombrar equipo
// @Description  Cambia el nombre del equipo y, si se envía, la etiqueta visible
//	de la empresa asociada. Ambas escrituras son una sola transacción.
// @Tags         teams
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        teamId  path  string  true  "ID del equipo"
// @Param        body    body  dto.UpdateTeamRequest  true  "name, company_display_label (opcional)"
// @Success      200  {object}  dto.TeamResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/teams/{teamId} [put]
func (h *TeamHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTeamRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	team, err := h.uc.Update(c.Context(), GetUserID(c), c.Params("teamId"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(team)
}

// Delete godoc
// @Summary      Eliminar equipo
// @Description  Rechaza con 409 si el equipo tiene una suscripción activa.
// @Tags         teams
// @Security     Bearer
// @Param        teamId  path  string  true  "ID del equipo"
// @Success      204  "sin contenido"
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/teams/{teamId} [delete]
func (h *TeamHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetUserID(c), c.Params("teamId")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListMembers godoc
// @Summary      Listar miembros del equipo
// @Tags         teams
// @Security     Bearer
// @Produce      json
// @Param        teamId  path  string  true  "ID del equipo"
// @Success      200  {array}   dto.TeamMemberResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/teams/{teamId}/members [get]
func (h *TeamHandler) ListMembers(c *fiber.Ctx) error {
	members, err := h.uc.ListMembers(GetUserID(c), c.Params("teamId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(members)
}

// UpdateMemberRole godoc
// @Summary      Cambiar rol de un miembro
// @Description  Rechaza degradar al último administrador activo del equipo.
// @Tags         teams
// @Security     Bearer
// @Accept       json
// @Param        teamId    path  string  true  "ID del equipo"
// @Param        memberId  path  string  true  "ID de la membresía"
// @Param        body      body  dto.UpdateMemberRoleRequest  true  "role: admin|operator|viewer"
// @Success      204  "sin contenido"
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/teams/{teamId}/members/{memberId} [put]
func (h *TeamHandler) UpdateMemberRole(c *fiber.Ctx) error {
	var in dto.UpdateMemberRoleRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	err := h.uc.UpdateMemberRole(c.Context(), GetUserID(c), c.Params("teamId"), c.Params("memberId"), in.Role)
	if err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RemoveMember godoc
// @Summary      Quitar un miembro del equipo
// @Description  Rechaza quitar al último administrador activo del equipo.
// @Tags         teams
// @Security     Bearer
// @Param        teamId    path  string  true  "ID del equipo"
// @Param        memberId  path  string  true  "ID de la membresía"
// @Success      204  "sin contenido"
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/teams/{teamId}/members/{memberId} [delete]
func (h *TeamHandler) RemoveMember(c *fiber.Ctx) error {
	err := h.uc.RemoveMember(c.Context(), GetUserID(c), c.Params("teamId"), c.Params("memberId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
