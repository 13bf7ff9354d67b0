package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/JosuePerezValenzuela/Web-infraestructura-sub000/internal/repository"
)

// ExportService renders the inventory as a downloadable spreadsheet.
type ExportService interface {
	Inventario(ctx context.Context) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService builds an ExportService.
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// Inventario builds a workbook with two sheets: Ambientes (every room
// with its building) and Bienes (every asset with its placement).
func (s *exportService) Inventario(ctx context.Context) (*bytes.Buffer, string, error) {
	ambientes, err := s.repo.Ambiente.ListAll(ctx)
	if err != nil {
		return nil, "", err
	}
	bienes, err := s.repo.Bien.ListAll(ctx)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheetAmbientes = "Ambientes"
	f.SetSheetName("Sheet1", sheetAmbientes)

	headerAmbientes := []string{"Codigo", "Nombre", "Bloque", "Tipo", "Piso", "Capacidad", "Activo", "Apertura", "Cierre", "Periodo (min)"}
	for i, h := range headerAmbientes {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetAmbientes, cell, h)
	}
	for row, a := range ambientes {
		bloque := ""
		if a.Bloque != nil {
			bloque = a.Bloque.Codigo
		}
		tipo := ""
		if a.TipoAmbiente != nil {
			tipo = a.TipoAmbiente.Nombre
		}
		activo := "no"
		if a.Activo {
			activo = "si"
		}
		values := []interface{}{a.Codigo, a.Nombre, bloque, tipo, a.Piso, a.Capacidad, activo, a.HoraApertura, a.HoraCierre, a.Periodo}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheetAmbientes, cell, v)
		}
	}

	const sheetBienes = "Bienes"
	if _, err := f.NewSheet(sheetBienes); err != nil {
		return nil, "", err
	}
	headerBienes := []string{"NIA", "Descripcion", "Ambiente"}
	for i, h := range headerBienes {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetBienes, cell, h)
	}
	for row, b := range bienes {
		ambiente := "sin asignar"
		if b.Ambiente != nil {
			ambiente = b.Ambiente.Codigo
		}
		values := []interface{}{b.NIA, b.Descripcion, ambiente}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheetBienes, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("no se pudo generar el archivo de inventario", zap.Error(err))
		return nil, "", err
	}

	nombre := fmt.Sprintf("inventario_%s.xlsx", time.Now().Format("2006-01-02"))
	return buf, nombre, nil
}
