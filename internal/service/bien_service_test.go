package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/JosuePerezValenzuela/Web-infraestructura-sub000/internal/dto"
	"github.com/JosuePerezValenzuela/Web-infraestructura-sub000/internal/repository"
)

func seedBienes(t *testing.T, repo *repository.Repository, nias ...string) {
	t.Helper()
	svc := NewBienService(repo, nil, zap.NewNop())
	for _, nia := range nias {
		if _, err := svc.Create(context.Background(), &dto.CreateBienRequest{
			NIA:         nia,
			Descripcion: "Equipo " + nia,
		}); err != nil {
			t.Fatalf("no se pudo sembrar el bien %s: %v", nia, err)
		}
	}
}

func TestBienCreateRechazaNIADuplicado(t *testing.T) {
	repo := newMockRepository()
	svc := NewBienService(repo, nil, zap.NewNop())
	seedBienes(t, repo, "NIA-001")

	_, err := svc.Create(context.Background(), &dto.CreateBienRequest{
		NIA:         "NIA-001",
		Descripcion: "Otro equipo",
	})
	if !errors.Is(err, ErrNIADuplicado) {
		t.Fatalf("error = %v, se esperaba ErrNIADuplicado", err)
	}
}

func TestBienListFiltraSinAsignar(t *testing.T) {
	repo := newMockRepository()
	svc := NewBienService(repo, nil, zap.NewNop())
	seedBienes(t, repo, "NIA-001", "NIA-002", "NIA-003")
	ambiente := seedAmbiente(t, repo, true)

	if _, err := svc.Asignar(context.Background(), ambiente.AmbienteID, &dto.AsignarBienesRequest{
		NIAs: []string{"NIA-002"},
	}); err != nil {
		t.Fatalf("Asignar devolvio error: %v", err)
	}

	libres, total, err := svc.List(context.Background(), &dto.BienListRequest{SinAsignar: true})
	if err != nil {
		t.Fatalf("List devolvio error: %v", err)
	}
	if total != 2 || len(libres) != 2 {
		t.Fatalf("libres = %v (total %d), se esperaban 2", libres, total)
	}
	for _, b := range libres {
		if b.NIA == "NIA-002" {
			t.Error("NIA-002 sigue apareciendo como libre")
		}
	}
}

func TestBienAsignarReemplazaElConjunto(t *testing.T) {
	repo := newMockRepository()
	svc := NewBienService(repo, nil, zap.NewNop())
	seedBienes(t, repo, "NIA-001", "NIA-002", "NIA-003")
	ambiente := seedAmbiente(t, repo, true)

	if _, err := svc.Asignar(context.Background(), ambiente.AmbienteID, &dto.AsignarBienesRequest{
		NIAs: []string{"NIA-001", "NIA-002"},
	}); err != nil {
		t.Fatalf("primera asignacion devolvio error: %v", err)
	}

	asignados, err := svc.Asignar(context.Background(), ambiente.AmbienteID, &dto.AsignarBienesRequest{
		NIAs: []string{"NIA-002", "NIA-003"},
	})
	if err != nil {
		t.Fatalf("segunda asignacion devolvio error: %v", err)
	}

	if len(asignados) != 2 {
		t.Fatalf("asignados = %v, se esperaban 2", asignados)
	}
	if asignados[0].NIA != "NIA-002" || asignados[1].NIA != "NIA-003" {
		t.Errorf("asignados = %q y %q", asignados[0].NIA, asignados[1].NIA)
	}

	// NIA-001 quedo liberado.
	bien, err := repo.Bien.GetByNIA(context.Background(), "NIA-001")
	if err != nil {
		t.Fatalf("GetByNIA devolvio error: %v", err)
	}
	if bien.AmbienteID != nil {
		t.Error("NIA-001 sigue asignado despues del reemplazo")
	}
}

func TestBienAsignarRechazaNIADesconocida(t *testing.T) {
	repo := newMockRepository()
	svc := NewBienService(repo, nil, zap.NewNop())
	seedBienes(t, repo, "NIA-001")
	ambiente := seedAmbiente(t, repo, true)

	_, err := svc.Asignar(context.Background(), ambiente.AmbienteID, &dto.AsignarBienesRequest{
		NIAs: []string{"NIA-001", "NIA-999"},
	})
	if !errors.Is(err, ErrNIADesconocida) {
		t.Fatalf("error = %v, se esperaba ErrNIADesconocida", err)
	}
	if !strings.Contains(err.Error(), "NIA-999") {
		t.Errorf("el mensaje no nombra el NIA ofensor: %v", err)
	}

	// Nada cambio: la operacion es todo o nada.
	bien, err := repo.Bien.GetByNIA(context.Background(), "NIA-001")
	if err != nil {
		t.Fatalf("GetByNIA devolvio error: %v", err)
	}
	if bien.AmbienteID != nil {
		t.Error("NIA-001 quedo asignado pese al fallo")
	}
}

func TestBienAsignarRechazaAmbienteInactivo(t *testing.T) {
	repo := newMockRepository()
	svc := NewBienService(repo, nil, zap.NewNop())
	seedBienes(t, repo, "NIA-001")
	ambiente := seedAmbiente(t, repo, false)

	_, err := svc.Asignar(context.Background(), ambiente.AmbienteID, &dto.AsignarBienesRequest{
		NIAs: []string{"NIA-001"},
	})
	if !errors.Is(err, ErrAmbienteInactivo) {
		t.Fatalf("error = %v, se esperaba ErrAmbienteInactivo", err)
	}
}

func TestBienAsignarAmbienteInexistente(t *testing.T) {
	repo := newMockRepository()
	svc := NewBienService(repo, nil, zap.NewNop())
	seedBienes(t, repo, "NIA-001")

	_, err := svc.Asignar(context.Background(), "no-existe", &dto.AsignarBienesRequest{
		NIAs: []string{"NIA-001"},
	})
	if !errors.Is(err, ErrAmbienteNotFound) {
		t.Fatalf("error = %v, se esperaba ErrAmbienteNotFound", err)
	}
}
