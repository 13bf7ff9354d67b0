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
)

var (
	// ErrTipoAmbienteNotFound means the requested room type does not exist.
	ErrTipoAmbienteNotFound = errors.New("el tipo de ambiente no existe")
	// ErrTipoAmbienteEnUso blocks deleting a type still referenced by rooms.
	ErrTipoAmbienteEnUso = errors.New("el tipo de ambiente esta en uso por uno o mas ambientes")
)

// TipoAmbienteService manages the room-type catalog.
type TipoAmbienteService interface {
	Create(ctx context.Context, req *dto.CreateTipoAmbienteRequest) (*dto.TipoAmbienteResponse, error)
	GetByID(ctx context.Context, id string) (*dto.TipoAmbienteResponse, error)
	List(ctx context.Context, req *dto.ListRequest) ([]dto.TipoAmbienteResponse, int64, error)
	Update(ctx context.Context, id string, req *dto.UpdateTipoAmbienteRequest) (*dto.TipoAmbienteResponse, error)
	Delete(ctx context.Context, id string) error
}

type tipoAmbienteService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTipoAmbienteService builds a TipoAmbienteService.
func NewTipoAmbienteService(repo *repository.Repository, logger *zap.Logger) TipoAmbienteService {
	return &tipoAmbienteService{repo: repo, logger: logger}
}

func (s *tipoAmbienteService) Create(ctx context.Context, req *dto.CreateTipoAmbienteRequest) (*dto.TipoAmbienteResponse, error) {
	tipo := &model.TipoAmbiente{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		Activo:      true,
	}
	if err := s.repo.TipoAmbiente.Create(ctx, tipo); err != nil {
		s.logger.Error("no se pudo crear el tipo de ambiente", zap.Error(err))
		return nil, err
	}
	return toTipoAmbienteResponse(tipo), nil
}

func (s *tipoAmbienteService) GetByID(ctx context.Context, id string) (*dto.TipoAmbienteResponse, error) {
	tipo, err := s.repo.TipoAmbiente.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTipoAmbienteNotFound
		}
		return nil, err
	}
	return toTipoAmbienteResponse(tipo), nil
}

func (s *tipoAmbienteService) List(ctx context.Context, req *dto.ListRequest) ([]dto.TipoAmbienteResponse, int64, error) {
	tipos, total, err := s.repo.TipoAmbiente.List(ctx, req.Search, req.IncluirInactivos, req.GetOffset(), req.GetPageSize())
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.TipoAmbienteResponse, 0, len(tipos))
	for i := range tipos {
		out = append(out, *toTipoAmbienteResponse(&tipos[i]))
	}
	return out, total, nil
}

func (s *tipoAmbienteService) Update(ctx context.Context, id string, req *dto.UpdateTipoAmbienteRequest) (*dto.TipoAmbienteResponse, error) {
	tipo, err := s.repo.TipoAmbiente.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTipoAmbienteNotFound
		}
		return nil, err
	}

	if req.Nombre != nil {
		tipo.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		tipo.Descripcion = *req.Descripcion
	}
	if req.Activo != nil {
		tipo.Activo = *req.Activo
	}

	if err := s.repo.TipoAmbiente.Update(ctx, tipo); err != nil {
		s.logger.Error("no se pudo actualizar el tipo de ambiente", zap.String("tipo_ambiente_id", id), zap.Error(err))
		return nil, err
	}
	return toTipoAmbienteResponse(tipo), nil
}

func (s *tipoAmbienteService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.TipoAmbiente.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTipoAmbienteNotFound
		}
		return err
	}

	n, err := s.repo.TipoAmbiente.CountAmbientes(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrTipoAmbienteEnUso
	}
	return s.repo.TipoAmbiente.Delete(ctx, id)
}

func toTipoAmbienteResponse(tipo *model.TipoAmbiente) *dto.TipoAmbienteResponse {
	return &dto.TipoAmbienteResponse{
		ID:          tipo.TipoAmbienteID,
		Nombre:      tipo.Nombre,
		Descripcion: tipo.Descripcion,
		Activo:      tipo.Activo,
		CreatedAt:   tipo.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   tipo.UpdatedAt.Format(time.RFC3339),
	}
}
