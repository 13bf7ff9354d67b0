package dto

// CreateBloqueRequest creates a building.
type CreateBloqueRequest struct {
	Nombre       string  `json:"nombre"         binding:"required,min=2,max=100"`
	Codigo       string  `json:"codigo"         binding:"required,min=2,max=20"`
	SedeID       string  `json:"sede_id"        binding:"required,uuid"`
	FacultadID   *string `json:"facultad_id"    binding:"omitempty,uuid"`
	TipoBloqueID string  `json:"tipo_bloque_id" binding:"required,uuid"`
	Pisos        int     `json:"pisos"          binding:"required,min=1,max=50"`
}

// UpdateBloqueRequest partially updates a building.
type UpdateBloqueRequest struct {
	Nombre       *string `json:"nombre"         binding:"omitempty,min=2,max=100"`
	Codigo       *string `json:"codigo"         binding:"omitempty,min=2,max=20"`
	SedeID       *string `json:"sede_id"        binding:"omitempty,uuid"`
	FacultadID   *string `json:"facultad_id"    binding:"omitempty,uuid"`
	TipoBloqueID *string `json:"tipo_bloque_id" binding:"omitempty,uuid"`
	Pisos        *int    `json:"pisos"          binding:"omitempty,min=1,max=50"`
	Activo       *bool   `json:"activo"`
}

// BloqueListRequest filters the building list.
type BloqueListRequest struct {
	ListRequest
	SedeID     string `form:"sede_id"     binding:"omitempty,uuid"`
	FacultadID string `form:"facultad_id" binding:"omitempty,uuid"`
}

// BloqueResponse is the building view returned by the API.
type BloqueResponse struct {
	ID         string           `json:"id"`
	Nombre     string           `json:"nombre"`
	Codigo     string           `json:"codigo"`
	Pisos      int              `json:"pisos"`
	Activo     bool             `json:"activo"`
	Sede       *SedeBrief       `json:"sede,omitempty"`
	Facultad   *FacultadBrief   `json:"facultad,omitempty"`
	TipoBloque *TipoBloqueBrief `json:"tipo_bloque,omitempty"`
	CreatedAt  string           `json:"created_at"`
	UpdatedAt  string           `json:"updated_at"`
}

// BloqueBrief embeds a building reference in other responses.
type BloqueBrief struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
	Codigo string `json:"codigo"`
}
