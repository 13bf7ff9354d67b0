package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/JosuePerezValenzuela/Web-infraestructura-sub000/internal/model"
)

// AmbienteFilter narrows the room list.
type AmbienteFilter struct {
	Search          string
	BloqueID        string
	TipoAmbienteID  string
	IncludeInactive bool
	Offset          int
	Limit           int
}

// AmbienteRepository is the room data-access interface.
type AmbienteRepository interface {
	Create(ctx context.Context, ambiente *model.Ambiente) error
	GetByID(ctx context.Context, id string) (*model.Ambiente, error)
	List(ctx context.Context, filter AmbienteFilter) ([]model.Ambiente, int64, error)
	ListAll(ctx context.Context) ([]model.Ambiente, error)
	Update(ctx context.Context, ambiente *model.Ambiente) error
	Delete(ctx context.Context, id string) error
}

type ambienteRepo struct {
	db *gorm.DB
}

// NewAmbienteRepo builds an AmbienteRepository.
func NewAmbienteRepo(db *gorm.DB) AmbienteRepository {
	return &ambienteRepo{db: db}
}

func (r *ambienteRepo) Create(ctx context.Context, ambiente *model.Ambiente) error {
	return r.db.WithContext(ctx).Create(ambiente).Error
}

func (r *ambienteRepo) GetByID(ctx context.Context, id string) (*model.Ambiente, error) {
	var ambiente model.Ambiente
	err := r.db.WithContext(ctx).
		Preload("Bloque").
		Preload("TipoAmbiente").
		Where("ambiente_id = ?", id).
		First(&ambiente).Error
	if err != nil {
		return nil, err
	}
	return &ambiente, nil
}

func (r *ambienteRepo) List(ctx context.Context, filter AmbienteFilter) ([]model.Ambiente, int64, error) {
	var ambientes []model.Ambiente
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Ambiente{})
	if !filter.IncludeInactive {
		db = db.Where("activo = ?", true)
	}
	if filter.BloqueID != "" {
		db = db.Where("bloque_id = ?", filter.BloqueID)
	}
	if filter.TipoAmbienteID != "" {
		db = db.Where("tipo_ambiente_id = ?", filter.TipoAmbienteID)
	}
	if filter.Search != "" {
		db = db.Where("nombre ILIKE ? OR codigo ILIKE ?", "%"+filter.Search+"%", "%"+filter.Search+"%")
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := db.Preload("Bloque").
		Preload("TipoAmbiente").
		Order("codigo ASC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&ambientes).Error
	return ambientes, total, err
}

// ListAll returns every room, active or not, for the inventory export.
func (r *ambienteRepo) ListAll(ctx context.Context) ([]model.Ambiente, error) {
	var ambientes []model.Ambiente
	err := r.db.WithContext(ctx).
		Preload("Bloque").
		Preload("TipoAmbiente").
		Order("codigo ASC").
		Find(&ambientes).Error
	return ambientes, err
}

func (r *ambienteRepo) Update(ctx context.Context, ambiente *model.Ambiente) error {
	return r.db.WithContext(ctx).Save(ambiente).Error
}

func (r *ambienteRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("ambiente_id = ?", id).
		Delete(&model.Ambiente{}).Error
}
