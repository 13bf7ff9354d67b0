package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/JosuePerezValenzuela/Web-infraestructura-sub000/internal/model"
)

// BienFilter narrows the asset catalog.
type BienFilter struct {
	Search     string
	SinAsignar bool
	Offset     int
	Limit      int
}

// BienRepository is the asset data-access interface.
type BienRepository interface {
	Create(ctx context.Context, bien *model.Bien) error
	GetByNIA(ctx context.Context, nia string) (*model.Bien, error)
	List(ctx context.Context, filter BienFilter) ([]model.Bien, int64, error)
	ListByAmbiente(ctx context.Context, ambienteID string) ([]model.Bien, error)
	ListAll(ctx context.Context) ([]model.Bien, error)
	ReplaceAmbienteAsignacion(ctx context.Context, ambienteID string, nias []string) error
}

type bienRepo struct {
	db *gorm.DB
}

// NewBienRepo builds a BienRepository.
func NewBienRepo(db *gorm.DB) BienRepository {
	return &bienRepo{db: db}
}

func (r *bienRepo) Create(ctx context.Context, bien *model.Bien) error {
	return r.db.WithContext(ctx).Create(bien).Error
}

func (r *bienRepo) GetByNIA(ctx context.Context, nia string) (*model.Bien, error) {
	var bien model.Bien
	err := r.db.WithContext(ctx).
		Where("nia = ?", nia).
		First(&bien).Error
	if err != nil {
		return nil, err
	}
	return &bien, nil
}

func (r *bienRepo) List(ctx context.Context, filter BienFilter) ([]model.Bien, int64, error) {
	var bienes []model.Bien
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Bien{})
	if filter.SinAsignar {
		db = db.Where("ambiente_id IS NULL")
	}
	if filter.Search != "" {
		db = db.Where("nia ILIKE ? OR descripcion ILIKE ?", "%"+filter.Search+"%", "%"+filter.Search+"%")
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := db.Order("nia ASC").Offset(filter.Offset).Limit(filter.Limit).Find(&bienes).Error
	return bienes, total, err
}

func (r *bienRepo) ListByAmbiente(ctx context.Context, ambienteID string) ([]model.Bien, error) {
	var bienes []model.Bien
	err := r.db.WithContext(ctx).
		Where("ambiente_id = ?", ambienteID).
		Order("nia ASC").
		Find(&bienes).Error
	return bienes, err
}

// ListAll returns the whole catalog for the inventory export.
func (r *bienRepo) ListAll(ctx context.Context) ([]model.Bien, error) {
	var bienes []model.Bien
	err := r.db.WithContext(ctx).
		Preload("Ambiente").
		Order("nia ASC").
		Find(&bienes).Error
	return bienes, err
}

// ReplaceAmbienteAsignacion atomically makes nias the exact set of assets
// placed in the room: currently assigned assets outside the set are
// released, assets in the set are claimed (even if held by another room).
func (r *bienRepo) ReplaceAmbienteAsignacion(ctx context.Context, ambienteID string, nias []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		release := tx.Model(&model.Bien{}).Where("ambiente_id = ?", ambienteID)
		if len(nias) > 0 {
			release = release.Where("nia NOT IN ?", nias)
		}
		if err := release.Update("ambiente_id", nil).Error; err != nil {
			return err
		}
		if len(nias) == 0 {
			return nil
		}
		return tx.Model(&model.Bien{}).
			Where("nia IN ?", nias).
			Update("ambiente_id", ambienteID).Error
	})
}
