package dto

// CreateSedeRequest creates a campus.
type CreateSedeRequest struct {
	Nombre    string `json:"nombre"    binding:"required,min=2,max=100"`
	Direccion string `json:"direccion" binding:"omitempty,max=200"`
}

// UpdateSedeRequest partially updates a campus.
type UpdateSedeRequest struct {
	Nombre    *string `json:"nombre"    binding:"omitempty,min=2,max=100"`
	Direccion *string `json:"direccion" binding:"omitempty,max=200"`
	Activo    *bool   `json:"activo"`
}

// SedeResponse is the campus view returned by the API.
type SedeResponse struct {
	ID        string `json:"id"`
	Nombre    string `json:"nombre"`
	Direccion string `json:"direccion,omitempty"`
	Activo    bool   `json:"activo"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// SedeBrief embeds a campus reference in other responses.
type SedeBrief struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
}
