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
	// ErrBloqueNotFound means the requested building does not exist.
	ErrBloqueNotFound = errors.New("el bloque no existe")
	// ErrBloqueConAmbientes blocks deleting a building that still has rooms.
	ErrBloqueConAmbientes = errors.New("el bloque todavia tiene ambientes registrados")
)

// BloqueService manages the building catalog.
type BloqueService interface {
	Create(ctx context.Context, req *dto.CreateBloqueRequest) (*dto.BloqueResponse, error)
	GetByID(ctx context.Context, id string) (*dto.BloqueResponse, error)
	List(ctx context.Context, req *dto.BloqueListRequest) ([]dto.BloqueResponse, int64, error)
	Update(ctx context.Context, id string, req *dto.UpdateBloqueRequest) (*dto.BloqueResponse, error)
	Delete(ctx context.Context, id string) error
}

type bloqueService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewBloqueService builds a BloqueService.
func NewBloqueService(repo *repository.Repository, logger *zap.Logger) BloqueService {
	return &bloqueService{repo: repo, logger: logger}
}

// checkRefs validates that the campus, faculty and type a building points
// at all exist before writing.
func (s *bloqueService) checkRefs(ctx context.Context, sedeID string, facultadID *string, tipoBloqueID string) error {
	if sedeID != "" {
		if _, err := s.repo.Sede.GetByID(ctx, sedeID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSedeNotFound
			}
			return err
		}
	}
	if facultadID != nil && *facultadID != "" {
		if _, err := s.repo.Facultad.GetByID(ctx, *facultadID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrFacultadNotFound
			}
			return err
		}
	}
	if tipoBloqueID != "" {
		if _, err := s.repo.TipoBloque.GetByID(ctx, tipoBloqueID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTipoBloqueNotFound
			}
			return err
		}
	}
	return nil
}

func (s *bloqueService) Create(ctx context.Context, req *dto.CreateBloqueRequest) (*dto.BloqueResponse, error) {
	if err := s.checkRefs(ctx, req.SedeID, req.FacultadID, req.TipoBloqueID); err != nil {
		return nil, err
	}

	bloque := &model.Bloque{
		Nombre:       req.Nombre,
		Codigo:       req.Codigo,
		SedeID:       req.SedeID,
		FacultadID:   req.FacultadID,
		TipoBloqueID: req.TipoBloqueID,
		Pisos:        req.Pisos,
		Activo:       true,
	}
	if err := s.repo.Bloque.Create(ctx, bloque); err != nil {
		s.logger.Error("no se pudo crear el bloque", zap.Error(err))
		return nil, err
	}

	created, err := s.repo.Bloque.GetByID(ctx, bloque.BloqueID)
	if err != nil {
		return nil, err
	}
	return toBloqueResponse(created), nil
}

func (s *bloqueService) GetByID(ctx context.Context, id string) (*dto.BloqueResponse, error) {
	bloque, err := s.repo.Bloque.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBloqueNotFound
		}
		return nil, err
	}
	return toBloqueResponse(bloque), nil
}

func (s *bloqueService) List(ctx context.Context, req *dto.BloqueListRequest) ([]dto.BloqueResponse, int64, error) {
	bloques, total, err := s.repo.Bloque.List(ctx, repository.BloqueFilter{
		Search:          req.Search,
		SedeID:          req.SedeID,
		FacultadID:      req.FacultadID,
		IncludeInactive: req.IncluirInactivos,
		Offset:          req.GetOffset(),
		Limit:           req.GetPageSize(),
	})
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.BloqueResponse, 0, len(bloques))
	for i := range bloques {
		out = append(out, *toBloqueResponse(&bloques[i]))
	}
	return out, total, nil
}

func (s *bloqueService) Update(ctx context.Context, id string, req *dto.UpdateBloqueRequest) (*dto.BloqueResponse, error) {
	bloque, err := s.repo.Bloque.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBloqueNotFound
		}
		return nil, err
	}

	if req.SedeID != nil {
		bloque.SedeID = *req.SedeID
	}
	if req.FacultadID != nil {
		if *req.FacultadID == "" {
			bloque.FacultadID = nil
		} else {
			bloque.FacultadID = req.FacultadID
		}
	}
	if req.TipoBloqueID != nil {
		bloque.TipoBloqueID = *req.TipoBloqueID
	}
	if err := s.checkRefs(ctx, bloque.SedeID, bloque.FacultadID, bloque.TipoBloqueID); err != nil {
		return nil, err
	}

	if req.Nombre != nil {
		bloque.Nombre = *req.Nombre
	}
	if req.Codigo != nil {
		bloque.Codigo = *req.Codigo
	}
	if req.Pisos != nil {
		bloque.Pisos = *req.Pisos
	}
	if req.Activo != nil {
		bloque.Activo = *req.Activo
	}

	// Save with cleared relations so gorm does not upsert the preloads.
	bloque.Sede, bloque.Facultad, bloque.TipoBloque = nil, nil, nil
	if err := s.repo.Bloque.Update(ctx, bloque); err != nil {
		s.logger.Error("no se pudo actualizar el bloque", zap.String("bloque_id", id), zap.Error(err))
		return nil, err
	}

	updated, err := s.repo.Bloque.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toBloqueResponse(updated), nil
}

func (s *bloqueService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Bloque.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBloqueNotFound
		}
		return err
	}

	n, err := s.repo.Bloque.CountAmbientes(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrBloqueConAmbientes
	}
	return s.repo.Bloque.Delete(ctx, id)
}

func toBloqueResponse(bloque *model.Bloque) *dto.BloqueResponse {
	resp := &dto.BloqueResponse{
		ID:        bloque.BloqueID,
		Nombre:    bloque.Nombre,
		Codigo:    bloque.Codigo,
		Pisos:     bloque.Pisos,
		Activo:    bloque.Activo,
		CreatedAt: bloque.CreatedAt.Format(time.RFC3339),
		UpdatedAt: bloque.UpdatedAt.Format(time.RFC3339),
	}
	if bloque.Sede != nil {
		resp.Sede = &dto.SedeBrief{ID: bloque.Sede.SedeID, Nombre: bloque.Sede.Nombre}
	}
	if bloque.Facultad != nil {
		resp.Facultad = &dto.FacultadBrief{ID: bloque.Facultad.FacultadID, Nombre: bloque.Facultad.Nombre, Sigla: bloque.Facultad.Sigla}
	}
	if bloque.TipoBloque != nil {
		resp.TipoBloque = &dto.TipoBloqueBrief{ID: bloque.TipoBloque.TipoBloqueID, Nombre: bloque.TipoBloque.Nombre}
	}
	return resp
}
