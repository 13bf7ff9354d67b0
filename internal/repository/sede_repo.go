package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/JosuePerezValenzuela/Web-infraestructura-sub000/internal/model"
)

// SedeRepository is the campus data-access interface.
type SedeRepository interface {
	Create(ctx context.Context, sede *model.Sede) error
	GetByID(ctx context.Context, id string) (*model.Sede, error)
	List(ctx context.Context, search string, includeInactive bool, offset, limit int) ([]model.Sede, int64, error)
	Update(ctx context.Context, sede *model.Sede) error
	Delete(ctx context.Context, id string) error
}

type sedeRepo struct {
	db *gorm.DB
}

// NewSedeRepo builds a SedeRepository.
func NewSedeRepo(db *gorm.DB) SedeRepository {
	return &sedeRepo{db: db}
}

func (r *sedeRepo) Create(ctx context.Context, sede *model.Sede) error {
	return r.db.WithContext(ctx).Create(sede).Error
}

func (r *sedeRepo) GetByID(ctx context.Context, id string) (*model.Sede, error) {
	var sede model.Sede
	err := r.db.WithContext(ctx).
		Where("sede_id = ?", id).
		First(&sede).Error
	if err != nil {
		return nil, err
	}
	return &sede, nil
}

func (r *sedeRepo) List(ctx context.Context, search string, includeInactive bool, offset, limit int) ([]model.Sede, int64, error) {
	var sedes []model.Sede
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Sede{})
	if !includeInactive {
		db = db.Where("activo = ?", true)
	}
	if search != "" {
		db = db.Where("nombre ILIKE ?", "%"+search+"%")
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := db.Order("nombre ASC").Offset(offset).Limit(limit).Find(&sedes).Error
	return sedes, total, err
}

func (r *sedeRepo) Update(ctx context.Context, sede *model.Sede) error {
	return r.db.WithContext(ctx).Save(sede).Error
}

func (r *sedeRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("sede_id = ?", id).
		Delete(&model.Sede{}).Error
}
