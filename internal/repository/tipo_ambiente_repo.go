package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/JosuePerezValenzuela/Web-infraestructura-sub000/internal/model"
)

// TipoAmbienteRepository is the room-type data-access interface.
type TipoAmbienteRepository interface {
	Create(ctx context.Context, tipo *model.TipoAmbiente) error
	GetByID(ctx context.Context, id string) (*model.TipoAmbiente, error)
	List(ctx context.Context, search string, includeInactive bool, offset, limit int) ([]model.TipoAmbiente, int64, error)
	Update(ctx context.Context, tipo *model.TipoAmbiente) error
	Delete(ctx context.Context, id string) error
	CountAmbientes(ctx context.Context, id string) (int64, error)
}

type tipoAmbienteRepo struct {
	db *gorm.DB
}

// NewTipoAmbienteRepo builds a TipoAmbienteRepository.
func NewTipoAmbienteRepo(db *gorm.DB) TipoAmbienteRepository {
	return &tipoAmbienteRepo{db: db}
}

func (r *tipoAmbienteRepo) Create(ctx context.Context, tipo *model.TipoAmbiente) error {
	return r.db.WithContext(ctx).Create(tipo).Error
}

func (r *tipoAmbienteRepo) GetByID(ctx context.Context, id string) (*model.TipoAmbiente, error) {
	var tipo model.TipoAmbiente
	err := r.db.WithContext(ctx).
		Where("tipo_ambiente_id = ?", id).
		First(&tipo).Error
	if err != nil {
		return nil, err
	}
	return &tipo, nil
}

func (r *tipoAmbienteRepo) List(ctx context.Context, search string, includeInactive bool, offset, limit int) ([]model.TipoAmbiente, int64, error) {
	var tipos []model.TipoAmbiente
	var total int64

	db := r.db.WithContext(ctx).Model(&model.TipoAmbiente{})
	if !includeInactive {
		db = db.Where("activo = ?", true)
	}
	if search != "" {
		db = db.Where("nombre ILIKE ?", "%"+search+"%")
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := db.Order("nombre ASC").Offset(offset).Limit(limit).Find(&tipos).Error
	return tipos, total, err
}

func (r *tipoAmbienteRepo) Update(ctx context.Context, tipo *model.TipoAmbiente) error {
	return r.db.WithContext(ctx).Save(tipo).Error
}

func (r *tipoAmbienteRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("tipo_ambiente_id = ?", id).
		Delete(&model.TipoAmbiente{}).Error
}

// CountAmbientes counts the rooms still referencing this type.
func (r *tipoAmbienteRepo) CountAmbientes(ctx context.Context, id string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.Ambiente{}).
		Where("tipo_ambiente_id = ?", id).
		Count(&n).Error
	return n, err
}
