package handler

import (
	"go.uber.org/zap"

	"github.com/JosuePerezValenzuela/Web-infraestructura-sub000/internal/service"
)

// Handler aggregates every HTTP handler.
type Handler struct {
	Sede         *SedeHandler
	Facultad     *FacultadHandler
	TipoBloque   *TipoBloqueHandler
	Bloque       *BloqueHandler
	TipoAmbiente *TipoAmbienteHandler
	Ambiente     *AmbienteHandler
	Bien         *BienHandler
	Horario      *HorarioHandler
	Export       *ExportHandler
}

// NewHandler wires every handler.
func NewHandler(svc *service.Service, logger *zap.Logger) *Handler {
	return &Handler{
		Sede:         NewSedeHandler(svc.Sede, logger),
		Facultad:     NewFacultadHandler(svc.Facultad, logger),
		TipoBloque:   NewTipoBloqueHandler(svc.TipoBloque, logger),
		Bloque:       NewBloqueHandler(svc.Bloque, logger),
		TipoAmbiente: NewTipoAmbienteHandler(svc.TipoAmbiente, logger),
		Ambiente:     NewAmbienteHandler(svc.Ambiente, logger),
		Bien:         NewBienHandler(svc.Bien, logger),
		Horario:      NewHorarioHandler(svc.Horario, logger),
		Export:       NewExportHandler(svc.Export, logger),
	}
}
