package service

import (
	"go.uber.org/zap"

	"github.com/JosuePerezValenzuela/Web-infraestructura-sub000/internal/repository"
	"github.com/JosuePerezValenzuela/Web-infraestructura-sub000/pkg/redis"
)

// Service aggregates every business-logic interface.
type Service struct {
	Sede         SedeService
	Facultad     FacultadService
	TipoBloque   TipoBloqueService
	Bloque       BloqueService
	TipoAmbiente TipoAmbienteService
	Ambiente     AmbienteService
	Bien         BienService
	Horario      HorarioService
	Export       ExportService
}

// NewService wires every service. rdb may be nil; caching degrades.
func NewService(repo *repository.Repository, rdb *redis.Client, logger *zap.Logger) *Service {
	return &Service{
		Sede:         NewSedeService(repo, logger),
		Facultad:     NewFacultadService(repo, logger),
		TipoBloque:   NewTipoBloqueService(repo, logger),
		Bloque:       NewBloqueService(repo, logger),
		TipoAmbiente: NewTipoAmbienteService(repo, logger),
		Ambiente:     NewAmbienteService(repo, logger),
		Bien:         NewBienService(repo, rdb, logger),
		Horario:      NewHorarioService(repo, logger),
		Export:       NewExportService(repo, logger),
	}
}
