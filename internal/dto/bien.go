package dto

// CreateBienRequest registers an asset in the catalog.
type CreateBienRequest struct {
	NIA         string `json:"nia"         binding:"required,min=3,max=30"`
	Descripcion string `json:"descripcion" binding:"required,min=3,max=200"`
}

// BienListRequest filters the asset catalog (combobox search backend).
type BienListRequest struct {
	ListRequest
	SinAsignar bool `form:"sin_asignar"` // only assets not yet placed in a room
}

// AsignarBienesRequest replaces the set of assets placed in a room.
type AsignarBienesRequest struct {
	NIAs []string `json:"nias" binding:"required,dive,min=3,max=30"`
}

// BienResponse is the asset view returned by the API.
type BienResponse struct {
	ID          string  `json:"id"`
	NIA         string  `json:"nia"`
	Descripcion string  `json:"descripcion"`
	AmbienteID  *string `json:"ambiente_id,omitempty"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}
