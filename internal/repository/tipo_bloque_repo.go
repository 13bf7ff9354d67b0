package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/JosuePerezValenzuela/Web-infraestructura-sub000/internal/model"
)

// TipoBloqueRepository is the block-type data-access interface.
type TipoBloqueRepository interface {
	Create(ctx context.Context, tipo *model.TipoBloque) error
	GetByID(ctx context.Context, id string) (*model.TipoBloque, error)
	List(ctx context.Context, search string, includeInactive bool, offset, limit int) ([]model.TipoBloque, int64, error)
	Update(ctx context.Context, tipo *model.TipoBloque) error
	Delete(ctx context.Context, id string) error
	CountBloques(ctx context.Context, id string) (int64, error)
}

type tipoBloqueRepo struct {
	db *gorm.DB
}

// NewTipoBloqueRepo builds a TipoBloqueRepository.
func NewTipoBloqueRepo(db *gorm.DB) TipoBloqueRepository {
	return &tipoBloqueRepo{db: db}
}

func (r *tipoBloqueRepo) Create(ctx context.Context, tipo *model.TipoBloque) error {
	return r.db.WithContext(ctx).Create(tipo).Error
}

func (r *tipoBloqueRepo) GetByID(ctx context.Context, id string) (*model.TipoBloque, error) {
	var tipo model.TipoBloque
	err := r.db.WithContext(ctx).
		Where("tipo_bloque_id = ?", id).
		First(&tipo).Error
	if err != nil {
		return nil, err
	}
	return &tipo, nil
}

func (r *tipoBloqueRepo) List(ctx context.Context, search string, includeInactive bool, offset, limit int) ([]model.TipoBloque, int64, error) {
	var tipos []model.TipoBloque
	var total int64

	db := r.db.WithContext(ctx).Model(&model.TipoBloque{})
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

func (r *tipoBloqueRepo) Update(ctx context.Context, tipo *model.TipoBloque) error {
	return r.db.WithContext(ctx).Save(tipo).Error
}

func (r *tipoBloqueRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("tipo_bloque_id = ?", id).
		Delete(&model.TipoBloque{}).Error
}

// CountBloques counts the buildings still referencing this type.
func (r *tipoBloqueRepo) CountBloques(ctx context.Context, id string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.Bloque{}).
		Where("tipo_bloque_id = ?", id).
		Count(&n).Error
	return n, err
}
