package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/JosuePerezValenzuela/Web-infraestructura-sub000/internal/dto"
	"github.com/JosuePerezValenzuela/Web-infraestructura-sub000/internal/model"
	"github.com/JosuePerezValenzuela/Web-infraestructura-sub000/internal/repository"
	"github.com/JosuePerezValenzuela/Web-infraestructura-sub000/internal/schedule"
)

var (
	// ErrAmbienteNotFound means the requested room does not exist.
	ErrAmbienteNotFound = errors.New("el ambiente no existe")
	// ErrAmbienteConBienes blocks deleting a room that still holds assets.
	ErrAmbienteConBienes = errors.New("el ambiente todavia tiene bienes asignados")
	// ErrGrillaInvalida rejects a grid configuration that cannot produce slots.
	ErrGrillaInvalida = errors.New("la configuracion de horario del ambiente es invalida")
)

// AmbienteService manages the room catalog.
type AmbienteService interface {
	Create(ctx context.Context, req *dto.CreateAmbienteRequest) (*dto.AmbienteResponse, error)
	GetByID(ctx context.Context, id string) (*dto.AmbienteResponse, error)
	List(ctx context.Context, req *dto.AmbienteListRequest) ([]dto.AmbienteResponse, int64, error)
	Update(ctx context.Context, id string, req *dto.UpdateAmbienteRequest) (*dto.AmbienteResponse, error)
	Delete(ctx context.Context, id string) error
}

type ambienteService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAmbienteService builds an AmbienteService.
func NewAmbienteService(repo *repository.Repository, logger *zap.Logger) AmbienteService {
	return &ambienteService{repo: repo, logger: logger}
}

// validGrid checks that the room's opening window can produce at least
// one slot: valid times, apertura before cierre, positive period.
func validGrid(apertura, cierre string, periodo int) bool {
	if !schedule.IsValidTime(apertura) || !schedule.IsValidTime(cierre) {
		return false
	}
	if periodo <= 0 {
		return false
	}
	return schedule.ToMinutes(apertura) < schedule.ToMinutes(cierre)
}

func (s *ambienteService) Create(ctx context.Context, req *dto.CreateAmbienteRequest) (*dto.AmbienteResponse, error) {
	if _, err := s.repo.Bloque.GetByID(ctx, req.BloqueID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBloqueNotFound
		}
		return nil, err
	}
	if _, err := s.repo.TipoAmbiente.GetByID(ctx, req.TipoAmbienteID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTipoAmbienteNotFound
		}
		return nil, err
	}

	ambiente := &model.Ambiente{
		Nombre:         req.Nombre,
		Codigo:         req.Codigo,
		BloqueID:       req.BloqueID,
		TipoAmbienteID: req.TipoAmbienteID,
		Piso:           req.Piso,
		Capacidad:      req.Capacidad,
		Activo:         true,
		HoraApertura:   "07:00",
		HoraCierre:     "22:00",
		Periodo:        60,
	}
	if req.HoraApertura != "" {
		ambiente.HoraApertura = req.HoraApertura
	}
	if req.HoraCierre != "" {
		ambiente.HoraCierre = req.HoraCierre
	}
	if req.Periodo != 0 {
		ambiente.Periodo = req.Periodo
	}
	if !validGrid(ambiente.HoraApertura, ambiente.HoraCierre, ambiente.Periodo) {
		return nil, ErrGrillaInvalida
	}

	if err := s.repo.Ambiente.Create(ctx, ambiente); err != nil {
		s.logger.Error("no se pudo crear el ambiente", zap.Error(err))
		return nil, err
	}

	created, err := s.repo.Ambiente.GetByID(ctx, ambiente.AmbienteID)
	if err != nil {
		return nil, err
	}
	return toAmbienteResponse(created), nil
}

func (s *ambienteService) GetByID(ctx context.Context, id string) (*dto.AmbienteResponse, error) {
	ambiente, err := s.repo.Ambiente.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAmbienteNotFound
		}
		return nil, err
	}
	return toAmbienteResponse(ambiente), nil
}

func (s *ambienteService) List(ctx context.Context, req *dto.AmbienteListRequest) ([]dto.AmbienteResponse, int64, error) {
	ambientes, total, err := s.repo.Ambiente.List(ctx, repository.AmbienteFilter{
		Search:          req.Search,
		BloqueID:        req.BloqueID,
		TipoAmbienteID:  req.TipoAmbienteID,
		IncludeInactive: req.IncluirInactivos,
		Offset:          req.GetOffset(),
		Limit:           req.GetPageSize(),
	})
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.AmbienteResponse, 0, len(ambientes))
	for i := range ambientes {
		out = append(out, *toAmbienteResponse(&ambientes[i]))
	}
	return out, total, nil
}

func (s *ambienteService) Update(ctx context.Context, id string, req *dto.UpdateAmbienteRequest) (*dto.AmbienteResponse, error) {
	ambiente, err := s.repo.Ambiente.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAmbienteNotFound
		}
		return nil, err
	}

	if req.BloqueID != nil {
		if _, err := s.repo.Bloque.GetByID(ctx, *req.BloqueID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrBloqueNotFound
			}
			return nil, err
		}
		ambiente.BloqueID = *req.BloqueID
	}
	if req.TipoAmbienteID != nil {
		if _, err := s.repo.TipoAmbiente.GetByID(ctx, *req.TipoAmbienteID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrTipoAmbienteNotFound
			}
			return nil, err
		}
		ambiente.TipoAmbienteID = *req.TipoAmbienteID
	}

	if req.Nombre != nil {
		ambiente.Nombre = *req.Nombre
	}
	if req.Codigo != nil {
		ambiente.Codigo = *req.Codigo
	}
	if req.Piso != nil {
		ambiente.Piso = *req.Piso
	}
	if req.Capacidad != nil {
		ambiente.Capacidad = *req.Capacidad
	}
	if req.Activo != nil {
		ambiente.Activo = *req.Activo
	}

	gridChanged := req.HoraApertura != nil || req.HoraCierre != nil || req.Periodo != nil
	if req.HoraApertura != nil {
		ambiente.HoraApertura = *req.HoraApertura
	}
	if req.HoraCierre != nil {
		ambiente.HoraCierre = *req.HoraCierre
	}
	if req.Periodo != nil {
		ambiente.Periodo = *req.Periodo
	}
	if !validGrid(ambiente.HoraApertura, ambiente.HoraCierre, ambiente.Periodo) {
		return nil, ErrGrillaInvalida
	}

	ambiente.Bloque, ambiente.TipoAmbiente = nil, nil
	if err := s.repo.Ambiente.Update(ctx, ambiente); err != nil {
		s.logger.Error("no se pudo actualizar el ambiente", zap.String("ambiente_id", id), zap.Error(err))
		return nil, err
	}

	// A new grid invalidates ranges saved against the old one.
	if gridChanged {
		if err := s.repo.Franja.ReplaceForAmbiente(ctx, id, nil); err != nil {
			s.logger.Error("no se pudo limpiar el horario del ambiente", zap.String("ambiente_id", id), zap.Error(err))
			return nil, err
		}
	}

	updated, err := s.repo.Ambiente.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toAmbienteResponse(updated), nil
}

func (s *ambienteService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Ambiente.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAmbienteNotFound
		}
		return err
	}

	bienes, err := s.repo.Bien.ListByAmbiente(ctx, id)
	if err != nil {
		return err
	}
	if len(bienes) > 0 {
		return ErrAmbienteConBienes
	}

	if err := s.repo.Franja.ReplaceForAmbiente(ctx, id, nil); err != nil {
		return err
	}
	return s.repo.Ambiente.Delete(ctx, id)
}

func toAmbienteResponse(ambiente *model.Ambiente) *dto.AmbienteResponse {
	resp := &dto.AmbienteResponse{
		ID:           ambiente.AmbienteID,
		Nombre:       ambiente.Nombre,
		Codigo:       ambiente.Codigo,
		Piso:         ambiente.Piso,
		Capacidad:    ambiente.Capacidad,
		Activo:       ambiente.Activo,
		HoraApertura: ambiente.HoraApertura,
		HoraCierre:   ambiente.HoraCierre,
		Periodo:      ambiente.Periodo,
		CreatedAt:    ambiente.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    ambiente.UpdatedAt.Format(time.RFC3339),
	}
	if ambiente.Bloque != nil {
		resp.Bloque = &dto.BloqueBrief{ID: ambiente.Bloque.BloqueID, Nombre: ambiente.Bloque.Nombre, Codigo: ambiente.Bloque.Codigo}
	}
	if ambiente.TipoAmbiente != nil {
		resp.TipoAmbiente = &dto.TipoAmbienteBrief{ID: ambiente.TipoAmbiente.TipoAmbienteID, Nombre: ambiente.TipoAmbiente.Nombre}
	}
	return resp
}
