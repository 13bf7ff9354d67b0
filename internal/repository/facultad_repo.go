package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/JosuePerezValenzuela/Web-infraestructura-sub000/internal/model"
)

// FacultadRepository is the faculty data-access interface.
type FacultadRepository interface {
	Create(ctx context.Context, facultad *model.Facultad) error
	GetByID(ctx context.Context, id string) (*model.Facultad, error)
	List(ctx context.Context, search string, includeInactive bool, offset, limit int) ([]model.Facultad, int64, error)
	Update(ctx context.Context, facultad *model.Facultad) error
	Delete(ctx context.Context, id string) error
}

type facultadRepo struct {
	db *gorm.DB
}

// NewFacultadRepo builds a FacultadRepository.
func NewFacultadRepo(db *gorm.DB) FacultadRepository {
	return &facultadRepo{db: db}
}

func (r *facultadRepo) Create(ctx context.Context, facultad *model.Facultad) error {
	return r.db.WithContext(ctx).Create(facultad).Error
}

func (r *facultadRepo) GetByID(ctx context.Context, id string) (*model.Facultad, error) {
	var facultad model.Facultad
	err := r.db.WithContext(ctx).
		Where("facultad_id = ?", id).
		First(&facultad).Error
	if err != nil {
		return nil, err
	}
	return &facultad, nil
}

func (r *facultadRepo) List(ctx context.Context, search string, includeInactive bool, offset, limit int) ([]model.Facultad, int64, error) {
	var facultades []model.Facultad
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Facultad{})
	if !includeInactive {
		db = db.Where("activo = ?", true)
	}
	if search != "" {
		db = db.Where("nombre ILIKE ? OR sigla ILIKE ?", "%"+search+"%", "%"+search+"%")
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := db.Order("nombre ASC").Offset(offset).Limit(limit).Find(&facultades).Error
	return facultades, total, err
}

func (r *facultadRepo) Update(ctx context.Context, facultad *model.Facultad) error {
	return r.db.WithContext(ctx).Save(facultad).Error
}

func (r *facultadRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("facultad_id = ?", id).
		Delete(&model.Facultad{}).Error
}
