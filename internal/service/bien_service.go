package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/JosuePerezValenzuela/Web-infraestructura-sub000/internal/dto"
	"github.com/JosuePerezValenzuela/Web-infraestructura-sub000/internal/model"
	"github.com/JosuePerezValenzuela/Web-infraestructura-sub000/internal/repository"
	"github.com/JosuePerezValenzuela/Web-infraestructura-sub000/pkg/redis"
)

var (
	// ErrNIADuplicado rejects registering an inventory tag twice.
	ErrNIADuplicado = errors.New("ya existe un bien con ese NIA")
	// ErrNIADesconocida means an assignment referenced a tag not in the catalog.
	ErrNIADesconocida = errors.New("el NIA no esta registrado en el catalogo")
	// ErrAmbienteInactivo blocks assigning assets to a deactivated room.
	ErrAmbienteInactivo = errors.New("solo se pueden asignar bienes a ambientes activos")
)

const (
	bienCachePrefix = "bienes:list:"
	bienCacheTTL    = 2 * time.Minute
)

// BienService manages the asset catalog and room assignments.
type BienService interface {
	Create(ctx context.Context, req *dto.CreateBienRequest) (*dto.BienResponse, error)
	List(ctx context.Context, req *dto.BienListRequest) ([]dto.BienResponse, int64, error)
	ListByAmbiente(ctx context.Context, ambienteID string) ([]dto.BienResponse, error)
	Asignar(ctx context.Context, ambienteID string, req *dto.AsignarBienesRequest) ([]dto.BienResponse, error)
}

type bienService struct {
	repo   *repository.Repository
	rdb    *redis.Client
	logger *zap.Logger
}

// NewBienService builds a BienService. rdb may be nil; search results
// are simply not cached.
func NewBienService(repo *repository.Repository, rdb *redis.Client, logger *zap.Logger) BienService {
	return &bienService{repo: repo, rdb: rdb, logger: logger}
}

func (s *bienService) Create(ctx context.Context, req *dto.CreateBienRequest) (*dto.BienResponse, error) {
	if _, err := s.repo.Bien.GetByNIA(ctx, req.NIA); err == nil {
		return nil, ErrNIADuplicado
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	bien := &model.Bien{
		NIA:         req.NIA,
		Descripcion: req.Descripcion,
	}
	if err := s.repo.Bien.Create(ctx, bien); err != nil {
		s.logger.Error("no se pudo registrar el bien", zap.String("nia", req.NIA), zap.Error(err))
		return nil, err
	}
	s.invalidateCache(ctx)
	return toBienResponse(bien), nil
}

func (s *bienService) List(ctx context.Context, req *dto.BienListRequest) ([]dto.BienResponse, int64, error) {
	type cached struct {
		Items []dto.BienResponse `json:"items"`
		Total int64              `json:"total"`
	}
	key := fmt.Sprintf("%ss=%s&sa=%t&p=%d&ps=%d", bienCachePrefix, req.Search, req.SinAsignar, req.GetPage(), req.GetPageSize())

	var hit cached
	if s.rdb != nil && s.rdb.GetJSON(ctx, key, &hit) {
		return hit.Items, hit.Total, nil
	}

	bienes, total, err := s.repo.Bien.List(ctx, repository.BienFilter{
		Search:     req.Search,
		SinAsignar: req.SinAsignar,
		Offset:     req.GetOffset(),
		Limit:      req.GetPageSize(),
	})
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.BienResponse, 0, len(bienes))
	for i := range bienes {
		out = append(out, *toBienResponse(&bienes[i]))
	}

	if s.rdb != nil {
		s.rdb.SetJSON(ctx, key, cached{Items: out, Total: total}, bienCacheTTL)
	}
	return out, total, nil
}

func (s *bienService) ListByAmbiente(ctx context.Context, ambienteID string) ([]dto.BienResponse, error) {
	if _, err := s.repo.Ambiente.GetByID(ctx, ambienteID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAmbienteNotFound
		}
		return nil, err
	}

	bienes, err := s.repo.Bien.ListByAmbiente(ctx, ambienteID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BienResponse, 0, len(bienes))
	for i := range bienes {
		out = append(out, *toBienResponse(&bienes[i]))
	}
	return out, nil
}

// Asignar replaces the room's asset set with exactly the given tags.
// Every tag must already exist in the catalog; the first unknown one
// aborts the whole operation.
func (s *bienService) Asignar(ctx context.Context, ambienteID string, req *dto.AsignarBienesRequest) ([]dto.BienResponse, error) {
	ambiente, err := s.repo.Ambiente.GetByID(ctx, ambienteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAmbienteNotFound
		}
		return nil, err
	}
	if !ambiente.Activo {
		return nil, ErrAmbienteInactivo
	}

	for _, nia := range req.NIAs {
		if _, err := s.repo.Bien.GetByNIA(ctx, nia); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: %s", ErrNIADesconocida, nia)
			}
			return nil, err
		}
	}

	if err := s.repo.Bien.ReplaceAmbienteAsignacion(ctx, ambienteID, req.NIAs); err != nil {
		s.logger.Error("no se pudo asignar los bienes", zap.String("ambiente_id", ambienteID), zap.Error(err))
		return nil, err
	}
	s.invalidateCache(ctx)
	s.logger.Info("bienes asignados",
		zap.String("ambiente_id", ambienteID),
		zap.Int("total", len(req.NIAs)))

	return s.ListByAmbiente(ctx, ambienteID)
}

func (s *bienService) invalidateCache(ctx context.Context) {
	if s.rdb != nil {
		s.rdb.DeletePrefix(ctx, bienCachePrefix)
	}
}

func toBienResponse(bien *model.Bien) *dto.BienResponse {
	return &dto.BienResponse{
		ID:          bien.BienID,
		NIA:         bien.NIA,
		Descripcion: bien.Descripcion,
		AmbienteID:  bien.AmbienteID,
		CreatedAt:   bien.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   bien.UpdatedAt.Format(time.RFC3339),
	}
}
