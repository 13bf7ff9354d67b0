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
	// ErrSedeNotFound means the requested campus does not exist.
	ErrSedeNotFound = errors.New("la sede no existe")
	// ErrSedeConBloques blocks deleting a campus that still has buildings.
	ErrSedeConBloques = errors.New("la sede todavia tiene bloques registrados")
)

// SedeService manages the campus catalog.
type SedeService interface {
	Create(ctx context.Context, req *dto.CreateSedeRequest) (*dto.SedeResponse, error)
	GetByID(ctx context.Context, id string) (*dto.SedeResponse, error)
	List(ctx context.Context, req *dto.ListRequest) ([]dto.SedeResponse, int64, error)
	Update(ctx context.Context, id string, req *dto.UpdateSedeRequest) (*dto.SedeResponse, error)
	Delete(ctx context.Context, id string) error
}

type sedeService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSedeService builds a SedeService.
func NewSedeService(repo *repository.Repository, logger *zap.Logger) SedeService {
	return &sedeService{repo: repo, logger: logger}
}

func (s *sedeService) Create(ctx context.Context, req *dto.CreateSedeRequest) (*dto.SedeResponse, error) {
	sede := &model.Sede{
		Nombre:    req.Nombre,
		Direccion: req.Direccion,
		Activo:    true,
	}
	if err := s.repo.Sede.Create(ctx, sede); err != nil {
		s.logger.Error("no se pudo crear la sede", zap.Error(err))
		return nil, err
	}
	return toSedeResponse(sede), nil
}

func (s *sedeService) GetByID(ctx context.Context, id string) (*dto.SedeResponse, error) {
	sede, err := s.repo.Sede.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSedeNotFound
		}
		return nil, err
	}
	return toSedeResponse(sede), nil
}

func (s *sedeService) List(ctx context.Context, req *dto.ListRequest) ([]dto.SedeResponse, int64, error) {
	sedes, total, err := s.repo.Sede.List(ctx, req.Search, req.IncluirInactivos, req.GetOffset(), req.GetPageSize())
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.SedeResponse, 0, len(sedes))
	for i := range sedes {
		out = append(out, *toSedeResponse(&sedes[i]))
	}
	return out, total, nil
}

func (s *sedeService) Update(ctx context.Context, id string, req *dto.UpdateSedeRequest) (*dto.SedeResponse, error) {
	sede, err := s.repo.Sede.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSedeNotFound
		}
		return nil, err
	}

	if req.Nombre != nil {
		sede.Nombre = *req.Nombre
	}
	if req.Direccion != nil {
		sede.Direccion = *req.Direccion
	}
	if req.Activo != nil {
		sede.Activo = *req.Activo
	}

	if err := s.repo.Sede.Update(ctx, sede); err != nil {
		s.logger.Error("no se pudo actualizar la sede", zap.String("sede_id", id), zap.Error(err))
		return nil, err
	}
	return toSedeResponse(sede), nil
}

func (s *sedeService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Sede.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSedeNotFound
		}
		return err
	}

	bloques, _, err := s.repo.Bloque.List(ctx, repository.BloqueFilter{SedeID: id, IncludeInactive: true, Limit: 1})
	if err != nil {
		return err
	}
	if len(bloques) > 0 {
		return ErrSedeConBloques
	}
	return s.repo.Sede.Delete(ctx, id)
}

func toSedeResponse(sede *model.Sede) *dto.SedeResponse {
	return &dto.SedeResponse{
		ID:        sede.SedeID,
		Nombre:    sede.Nombre,
		Direccion: sede.Direccion,
		Activo:    sede.Activo,
		CreatedAt: sede.CreatedAt.Format(time.RFC3339),
		UpdatedAt: sede.UpdatedAt.Format(time.RFC3339),
	}
}
