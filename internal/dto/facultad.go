package dto

// CreateFacultadRequest creates a faculty.
type CreateFacultadRequest struct {
	Nombre string `json:"nombre" binding:"required,min=2,max=100"`
	Sigla  string `json:"sigla"  binding:"omitempty,max=20"`
}

// UpdateFacultadRequest partially updates a faculty.
type UpdateFacultadRequest struct {
	Nombre *string `json:"nombre" binding:"omitempty,min=2,max=100"`
	Sigla  *string `json:"sigla"  binding:"omitempty,max=20"`
	Activo *bool   `json:"activo"`
}

// FacultadResponse is the faculty view returned by the API.
type FacultadResponse struct {
	ID        string `json:"id"`
	Nombre    string `json:"nombre"`
	Sigla     string `json:"sigla,omitempty"`
	Activo    bool   `json:"activo"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// FacultadBrief embeds a faculty reference in other responses.
type FacultadBrief struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
	Sigla  string `json:"sigla,omitempty"`
}
