package dto

import "github.com/JosuePerezValenzuela/Web-infraestructura-sub000/internal/schedule"

// HorarioResponse is the payload of GET /ambientes/{id}/horarios: the
// room's grid configuration plus its stored weekly ranges.
type HorarioResponse struct {
	HoraApertura string            `json:"hora_apertura"`
	HoraCierre   string            `json:"hora_cierre"`
	Periodo      int               `json:"periodo"`
	Items        []schedule.Franja `json:"items"`
}

// ReplaceHorarioRequest is the payload of PUT /ambientes/{id}/horarios.
// Franja-level validation happens in the service against the room's grid.
type ReplaceHorarioRequest struct {
	Franjas []schedule.Franja `json:"franjas"` // empty clears the whole week
}
