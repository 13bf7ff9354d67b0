package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/JosuePerezValenzuela/Web-infraestructura-sub000/internal/model"
)

// BloqueFilter narrows the building list.
type BloqueFilter struct {
	Search          string
	SedeID          string
	FacultadID      string
	IncludeInactive bool
	Offset          int
	Limit           int
}

// BloqueRepository is the building data-access interface.
type BloqueRepository interface {
	Create(ctx context.Context, bloque *model.Bloque) error
	GetByID(ctx context.Context, id string) (*model.Bloque, error)
	List(ctx context.Context, filter BloqueFilter) ([]model.Bloque, int64, error)
	Update(ctx context.Context, bloque *model.Bloque) error
	Delete(ctx context.Context, id string) error
	CountAmbientes(ctx context.Context, id string) (int64, error)
}

type bloqueRepo struct {
	db *gorm.DB
}

// NewBloqueRepo builds a BloqueRepository.
func NewBloqueRepo(db *gorm.DB) BloqueRepository {
	return &bloqueRepo{db: db}
}

func (r *bloqueRepo) Create(ctx context.Context, bloque *model.Bloque) error {
	return r.db.WithContext(ctx).Create(bloque).Error
}

func (r *bloqueRepo) GetByID(ctx context.Context, id string) (*model.Bloque, error) {
	var bloque model.Bloque
	err := r.db.WithContext(ctx).
		Preload("Sede").
		Preload("Facultad").
		Preload("TipoBloque").
		Where("bloque_id = ?", id).
		First(&bloque).Error
	if err != nil {
		return nil, err
	}
	return &bloque, nil
}

func (r *bloqueRepo) List(ctx context.Context, filter BloqueFilter) ([]model.Bloque, int64, error) {
	var bloques []model.Bloque
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Bloque{})
	if !filter.IncludeInactive {
		db = db.Where("activo = ?", true)
	}
	if filter.SedeID != "" {
		db = db.Where("sede_id = ?", filter.SedeID)
	}
	if filter.FacultadID != "" {
		db = db.Where("facultad_id = ?", filter.FacultadID)
	}
	if filter.Search != "" {
		db = db.Where("nombre ILIKE ? OR codigo ILIKE ?", "%"+filter.Search+"%", "%"+filter.Search+"%")
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := db.Preload("Sede").
		Preload("Facultad").
		Preload("TipoBloque").
		Order("codigo ASC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&bloques).Error
	return bloques, total, err
}

func (r *bloqueRepo) Update(ctx context.Context, bloque *model.Bloque) error {
	return r.db.WithContext(ctx).Save(bloque).Error
}

func (r *bloqueRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("bloque_id = ?", id).
		Delete(&model.Bloque{}).Error
}

// CountAmbientes counts the rooms still registered in this building.
func (r *bloqueRepo) CountAmbientes(ctx context.Context, id string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.Ambiente{}).
		Where("bloque_id = ?", id).
		Count(&n).Error
	return n, err
}
