package dto

// CreateAmbienteRequest creates a room.
type CreateAmbienteRequest struct {
	Nombre         string `json:"nombre"           binding:"required,min=2,max=100"`
	Codigo         string `json:"codigo"           binding:"required,min=2,max=20"`
	BloqueID       string `json:"bloque_id"        binding:"required,uuid"`
	TipoAmbienteID string `json:"tipo_ambiente_id" binding:"required,uuid"`
	Piso           int    `json:"piso"             binding:"min=0,max=50"`
	Capacidad      int    `json:"capacidad"        binding:"min=0,max=10000"`
	HoraApertura   string `json:"hora_apertura"    binding:"omitempty,len=5"`
	HoraCierre     string `json:"hora_cierre"      binding:"omitempty,len=5"`
	Periodo        int    `json:"periodo"          binding:"omitempty,min=5,max=480"`
}

// UpdateAmbienteRequest partially updates a room.
type UpdateAmbienteRequest struct {
	Nombre         *string `json:"nombre"           binding:"omitempty,min=2,max=100"`
	Codigo         *string `json:"codigo"           binding:"omitempty,min=2,max=20"`
	BloqueID       *string `json:"bloque_id"        binding:"omitempty,uuid"`
	TipoAmbienteID *string `json:"tipo_ambiente_id" binding:"omitempty,uuid"`
	Piso           *int    `json:"piso"             binding:"omitempty,min=0,max=50"`
	Capacidad      *int    `json:"capacidad"        binding:"omitempty,min=0,max=10000"`
	Activo         *bool   `json:"activo"`
	HoraApertura   *string `json:"hora_apertura"    binding:"omitempty,len=5"`
	HoraCierre     *string `json:"hora_cierre"      binding:"omitempty,len=5"`
	Periodo        *int    `json:"periodo"          binding:"omitempty,min=5,max=480"`
}

// AmbienteListRequest filters the room list.
type AmbienteListRequest struct {
	ListRequest
	BloqueID       string `form:"bloque_id"        binding:"omitempty,uuid"`
	TipoAmbienteID string `form:"tipo_ambiente_id" binding:"omitempty,uuid"`
}

// AmbienteResponse is the room view returned by the API.
type AmbienteResponse struct {
	ID           string             `json:"id"`
	Nombre       string             `json:"nombre"`
	Codigo       string             `json:"codigo"`
	Piso         int                `json:"piso"`
	Capacidad    int                `json:"capacidad"`
	Activo       bool               `json:"activo"`
	HoraApertura string             `json:"hora_apertura"`
	HoraCierre   string             `json:"hora_cierre"`
	Periodo      int                `json:"periodo"`
	Bloque       *BloqueBrief       `json:"bloque,omitempty"`
	TipoAmbiente *TipoAmbienteBrief `json:"tipo_ambiente,omitempty"`
	CreatedAt    string             `json:"created_at"`
	UpdatedAt    string             `json:"updated_at"`
}
