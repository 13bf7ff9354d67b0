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
	// ErrTipoBloqueNotFound means the requested block type does not exist.
	ErrTipoBloqueNotFound = errors.New("el tipo de bloque no existe")
	// ErrTipoBloqueEnUso blocks deleting a type still referenced by buildings.
	ErrTipoBloqueEnUso = errors.New("el tipo de bloque esta en uso por uno o mas bloques")
)

// TipoBloqueService manages the block-type catalog.
type TipoBloqueService interface {
	Create(ctx context.Context, req *dto.CreateTipoBloqueRequest) (*dto.TipoBloqueResponse, error)
	GetByID(ctx context.Context, id string) (*dto.TipoBloqueResponse, error)
	List(ctx context.Context, req *dto.ListRequest) ([]dto.TipoBloqueResponse, int64, error)
	Update(ctx context.Context, id string, req *dto.UpdateTipoBloqueRequest) (*dto.TipoBloqueResponse, error)
	Delete(ctx context.Context, id string) error
}

type tipoBloqueService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTipoBloqueService builds a TipoBloqueService.
func NewTipoBloqueService(repo *repository.Repository, logger *zap.Logger) TipoBloqueService {
	return &tipoBloqueService{repo: repo, logger: logger}
}

func (s *tipoBloqueService) Create(ctx context.Context, req *dto.CreateTipoBloqueRequest) (*dto.TipoBloqueResponse, error) {
	tipo := &model.TipoBloque{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		Activo:      true,
	}
	if err := s.repo.TipoBloque.Create(ctx, tipo); err != nil {
		s.logger.Error("no se pudo crear el tipo de bloque", zap.Error(err))
		return nil, err
	}
	return toTipoBloqueResponse(tipo), nil
}

func (s *tipoBloqueService) GetByID(ctx context.Context, id string) (*dto.TipoBloqueResponse, error) {
	tipo, err := s.repo.TipoBloque.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTipoBloqueNotFound
		}
		return nil, err
	}
	return toTipoBloqueResponse(tipo), nil
}

func (s *tipoBloqueService) List(ctx context.Context, req *dto.ListRequest) ([]dto.TipoBloqueResponse, int64, error) {
	tipos, total, err := s.repo.TipoBloque.List(ctx, req.Search, req.IncluirInactivos, req.GetOffset(), req.GetPageSize())
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.TipoBloqueResponse, 0, len(tipos))
	for i := range tipos {
		out = append(out, *toTipoBloqueResponse(&tipos[i]))
	}
	return out, total, nil
}

func (s *tipoBloqueService) Update(ctx context.Context, id string, req *dto.UpdateTipoBloqueRequest) (*dto.TipoBloqueResponse, error) {
	tipo, err := s.repo.TipoBloque.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTipoBloqueNotFound
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

	if err := s.repo.TipoBloque.Update(ctx, tipo); err != nil {
		s.logger.Error("no se pudo actualizar el tipo de bloque", zap.String("tipo_bloque_id", id), zap.Error(err))
		return nil, err
	}
	return toTipoBloqueResponse(tipo), nil
}

func (s *tipoBloqueService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.TipoBloque.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTipoBloqueNotFound
		}
		return err
	}

	n, err := s.repo.TipoBloque.CountBloques(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrTipoBloqueEnUso
	}
	return s.repo.TipoBloque.Delete(ctx, id)
}

func toTipoBloqueResponse(tipo *model.TipoBloque) *dto.TipoBloqueResponse {
	return &dto.TipoBloqueResponse{
		ID:          tipo.TipoBloqueID,
		Nombre:      tipo.Nombre,
		Descripcion: tipo.Descripcion,
		Activo:      tipo.Activo,
		CreatedAt:   tipo.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   tipo.UpdatedAt.Format(time.RFC3339),
	}
}
