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
	// ErrFacultadNotFound means the requested faculty does not exist.
	ErrFacultadNotFound = errors.New("la facultad no existe")
	// ErrFacultadConBloques blocks deleting a faculty that still has buildings.
	ErrFacultadConBloques = errors.New("la facultad todavia tiene bloques registrados")
)

// FacultadService manages the faculty catalog.
type FacultadService interface {
	Create(ctx context.Context, req *dto.CreateFacultadRequest) (*dto.FacultadResponse, error)
	GetByID(ctx context.Context, id string) (*dto.FacultadResponse, error)
	List(ctx context.Context, req *dto.ListRequest) ([]dto.FacultadResponse, int64, error)
	Update(ctx context.Context, id string, req *dto.UpdateFacultadRequest) (*dto.FacultadResponse, error)
	Delete(ctx context.Context, id string) error
}

type facultadService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewFacultadService builds a FacultadService.
func NewFacultadService(repo *repository.Repository, logger *zap.Logger) FacultadService {
	return &facultadService{repo: repo, logger: logger}
}

func (s *facultadService) Create(ctx context.Context, req *dto.CreateFacultadRequest) (*dto.FacultadResponse, error) {
	facultad := &model.Facultad{
		Nombre: req.Nombre,
		Sigla:  req.Sigla,
		Activo: true,
	}
	if err := s.repo.Facultad.Create(ctx, facultad); err != nil {
		s.logger.Error("no se pudo crear la facultad", zap.Error(err))
		return nil, err
	}
	return toFacultadResponse(facultad), nil
}

func (s *facultadService) GetByID(ctx context.Context, id string) (*dto.FacultadResponse, error) {
	facultad, err := s.repo.Facultad.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFacultadNotFound
		}
		return nil, err
	}
	return toFacultadResponse(facultad), nil
}

func (s *facultadService) List(ctx context.Context, req *dto.ListRequest) ([]dto.FacultadResponse, int64, error) {
	facultades, total, err := s.repo.Facultad.List(ctx, req.Search, req.IncluirInactivos, req.GetOffset(), req.GetPageSize())
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.FacultadResponse, 0, len(facultades))
	for i := range facultades {
		out = append(out, *toFacultadResponse(&facultades[i]))
	}
	return out, total, nil
}

func (s *facultadService) Update(ctx context.Context, id string, req *dto.UpdateFacultadRequest) (*dto.FacultadResponse, error) {
	facultad, err := s.repo.Facultad.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFacultadNotFound
		}
		return nil, err
	}

	if req.Nombre != nil {
		facultad.Nombre = *req.Nombre
	}
	if req.Sigla != nil {
		facultad.Sigla = *req.Sigla
	}
	if req.Activo != nil {
		facultad.Activo = *req.Activo
	}

	if err := s.repo.Facultad.Update(ctx, facultad); err != nil {
		s.logger.Error("no se pudo actualizar la facultad", zap.String("facultad_id", id), zap.Error(err))
		return nil, err
	}
	return toFacultadResponse(facultad), nil
}

func (s *facultadService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Facultad.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFacultadNotFound
		}
		return err
	}

	bloques, _, err := s.repo.Bloque.List(ctx, repository.BloqueFilter{FacultadID: id, IncludeInactive: true, Limit: 1})
	if err != nil {
		return err
	}
	if len(bloques) > 0 {
		return ErrFacultadConBloques
	}
	return s.repo.Facultad.Delete(ctx, id)
}

func toFacultadResponse(facultad *model.Facultad) *dto.FacultadResponse {
	return &dto.FacultadResponse{
		ID:        facultad.FacultadID,
		Nombre:    facultad.Nombre,
		Sigla:     facultad.Sigla,
		Activo:    facultad.Activo,
		CreatedAt: facultad.CreatedAt.Format(time.RFC3339),
		UpdatedAt: facultad.UpdatedAt.Format(time.RFC3339),
	}
}
