package dto

// CreateTeamRequest alta de equipo. El creador queda como admin activo.
type CreateTeamRequest struct {
	Name string `json:"name"`
}

// UpdateTeamRequest cambio de nombre del equipo y, opcionalmente, de la
// etiqueta visible de la empresa (misma transacción).
type UpdateTeamRequest struct {
	Name                string `json:"name"`
	CompanyDisplayLabel string `json:"companyDisplayLabel"`
}

// TeamResponse representación de un equipo.
type TeamResponse struct {
	ID                 string  `json:"id"`
	CompanyID          *string `json:"companyId,omitempty"`
	Name               string  `json:"name"`
	SubscriptionStatus string  `json:"subscriptionStatus,omitempty"`
	CreatedAt          string  `json:"createdAt"`
	UpdatedAt          string  `json:"updatedAt"`
}

// TeamListResponse listado de equipos del usuario.
type TeamListResponse struct {
	Items []TeamResponse `json:"items"`
}

// TeamMemberResponse membresía de equipo.
type TeamMemberResponse struct {
	ID        string `json:"id"`
	TeamID    string `json:"teamId"`
	UserID    string `json:"userId"`
	Role      string `json:"role"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// UpdateMemberRoleRequest cambio de rol de un miembro.
type UpdateMemberRoleRequest struct {
	Role string `json:"role"`
}
