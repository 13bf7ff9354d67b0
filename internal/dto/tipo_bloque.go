package dto

// CreateTipoBloqueRequest creates a block type.
type CreateTipoBloqueRequest struct {
	Nombre      string `json:"nombre"      binding:"required,min=2,max=50"`
	Descripcion string `json:"descripcion" binding:"omitempty,max=500"`
}

// UpdateTipoBloqueRequest partially updates a block type.
type UpdateTipoBloqueRequest struct {
	Nombre      *string `json:"nombre"      binding:"omitempty,min=2,max=50"`
	Descripcion *string `json:"descripcion" binding:"omitempty,max=500"`
	Activo      *bool   `json:"activo"`
}

// TipoBloqueResponse is the block-type view returned by the API.
type TipoBloqueResponse struct {
	ID          string `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion,omitempty"`
	Activo      bool   `json:"activo"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// TipoBloqueBrief embeds a block-type reference in other responses.
type TipoBloqueBrief struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
}
