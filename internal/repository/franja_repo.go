package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/JosuePerezValenzuela/Web-infraestructura-sub000/internal/model"
)

// FranjaRepository is the weekly-schedule data-access interface.
type FranjaRepository interface {
	ListByAmbiente(ctx context.Context, ambienteID string) ([]model.FranjaHoraria, error)
	ReplaceForAmbiente(ctx context.Context, ambienteID string, franjas []model.FranjaHoraria) error
}

type franjaRepo struct {
	db *gorm.DB
}

// NewFranjaRepo builds a FranjaRepository.
func NewFranjaRepo(db *gorm.DB) FranjaRepository {
	return &franjaRepo{db: db}
}

func (r *franjaRepo) ListByAmbiente(ctx context.Context, ambienteID string) ([]model.FranjaHoraria, error) {
	var franjas []model.FranjaHoraria
	err := r.db.WithContext(ctx).
		Where("ambiente_id = ?", ambienteID).
		Order("dia ASC, hora_inicio ASC").
		Find(&franjas).Error
	return franjas, err
}

// ReplaceForAmbiente swaps the room's whole week in one transaction.
func (r *franjaRepo) ReplaceForAmbiente(ctx context.Context, ambienteID string, franjas []model.FranjaHoraria) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("ambiente_id = ?", ambienteID).
			Delete(&model.FranjaHoraria{}).Error; err != nil {
			return err
		}
		if len(franjas) == 0 {
			return nil
		}
		return tx.Create(&franjas).Error
	})
}
