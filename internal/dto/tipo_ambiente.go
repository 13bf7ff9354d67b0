package dto

// CreateTipoAmbienteRequest creates a room type.
type CreateTipoAmbienteRequest struct {
	Nombre      string `json:"nombre"      binding:"required,min=2,max=50"`
	Descripcion string `json:"descripcion" binding:"omitempty,max=500"`
}

// UpdateTipoAmbienteRequest partially updates a room type.
type UpdateTipoAmbienteRequest struct {
	Nombre      *string `json:"nombre"      binding:"omitempty,min=2,max=50"`
	Descripcion *string `json:"descripcion" binding:"omitempty,max=500"`
	Activo      *bool   `json:"activo"`
}

// TipoAmbienteResponse is the room-type view returned by the API.
type TipoAmbienteResponse struct {
	ID          string `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion,omitempty"`
	Activo      bool   `json:"activo"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// TipoAmbienteBrief embeds a room-type reference in other responses.
type TipoAmbienteBrief struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
}
