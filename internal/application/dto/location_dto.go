package dto

// CreateLocationRequest alta de ubicación (nombre único por equipo).
type CreateLocationRequest struct {
	Name string `json:"name"`
}

// UpdateLocationRequest renombre de ubicación.
type UpdateLocationRequest struct {
	Name string `json:"name"`
}

// LocationResponse representación de una ubicación.
type LocationResponse struct {
	ID        string `json:"id"`
	TeamID    string `json:"teamId"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// LocationListResponse listado de ubicaciones del equipo.
type LocationListResponse struct {
	Items []LocationResponse `json:"items"`
}
