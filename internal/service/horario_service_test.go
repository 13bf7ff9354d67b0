package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/JosuePerezValenzuela/Web-infraestructura-sub000/internal/dto"
	"github.com/JosuePerezValenzuela/Web-infraestructura-sub000/internal/model"
	"github.com/JosuePerezValenzuela/Web-infraestructura-sub000/internal/repository"
	"github.com/JosuePerezValenzuela/Web-infraestructura-sub000/internal/schedule"
)

func seedAmbiente(t *testing.T, repo *repository.Repository, activo bool) *model.Ambiente {
	t.Helper()
	ambiente := &model.Ambiente{
		Nombre:       "Aula 101",
		Codigo:       "A-101",
		Activo:       activo,
		HoraApertura: "07:00",
		HoraCierre:   "12:00",
		Periodo:      60,
	}
	if err := repo.Ambiente.Create(context.Background(), ambiente); err != nil {
		t.Fatalf("no se pudo sembrar el ambiente: %v", err)
	}
	return ambiente
}

func TestHorarioReplaceNormalizaFranjas(t *testing.T) {
	repo := newMockRepository()
	svc := NewHorarioService(repo, zap.NewNop())
	ambiente := seedAmbiente(t, repo, true)

	// Adjacent and overlapping ranges on Monday must come back merged.
	resp, err := svc.Replace(context.Background(), ambiente.AmbienteID, &dto.ReplaceHorarioRequest{
		Franjas: []schedule.Franja{
			{Dia: 0, HoraInicio: "09:00", HoraFin: "10:00"},
			{Dia: 0, HoraInicio: "07:00", HoraFin: "09:00"},
			{Dia: 0, HoraInicio: "08:00", HoraFin: "10:00"},
			{Dia: 2, HoraInicio: "08:00", HoraFin: "09:00"},
		},
	})
	if err != nil {
		t.Fatalf("Replace devolvio error: %v", err)
	}

	want := []schedule.Franja{
		{Dia: 0, HoraInicio: "07:00", HoraFin: "10:00"},
		{Dia: 2, HoraInicio: "08:00", HoraFin: "09:00"},
	}
	if len(resp.Items) != len(want) {
		t.Fatalf("Items = %v, se esperaban %d franjas", resp.Items, len(want))
	}
	for i, f := range want {
		if resp.Items[i] != f {
			t.Errorf("Items[%d] = %v, se esperaba %v", i, resp.Items[i], f)
		}
	}
}

func TestHorarioReplaceVacioLimpiaLaSemana(t *testing.T) {
	repo := newMockRepository()
	svc := NewHorarioService(repo, zap.NewNop())
	ambiente := seedAmbiente(t, repo, true)

	_, err := svc.Replace(context.Background(), ambiente.AmbienteID, &dto.ReplaceHorarioRequest{
		Franjas: []schedule.Franja{{Dia: 4, HoraInicio: "07:00", HoraFin: "08:00"}},
	})
	if err != nil {
		t.Fatalf("Replace devolvio error: %v", err)
	}

	resp, err := svc.Replace(context.Background(), ambiente.AmbienteID, &dto.ReplaceHorarioRequest{})
	if err != nil {
		t.Fatalf("Replace vacio devolvio error: %v", err)
	}
	if len(resp.Items) != 0 {
		t.Errorf("Items = %v, se esperaba la semana vacia", resp.Items)
	}
}

func TestHorarioReplaceValidaCadaFranja(t *testing.T) {
	repo := newMockRepository()
	svc := NewHorarioService(repo, zap.NewNop())
	ambiente := seedAmbiente(t, repo, true) // 07:00-12:00, periodo 60

	cases := []struct {
		name   string
		franja schedule.Franja
		campo  string
	}{
		{"dia fuera de rango", schedule.Franja{Dia: 7, HoraInicio: "07:00", HoraFin: "08:00"}, "franjas[0].dia"},
		{"hora inicio invalida", schedule.Franja{Dia: 0, HoraInicio: "7:00", HoraFin: "08:00"}, "franjas[0].hora_inicio"},
		{"hora fin invalida", schedule.Franja{Dia: 0, HoraInicio: "07:00", HoraFin: "25:00"}, "franjas[0].hora_fin"},
		{"rango invertido", schedule.Franja{Dia: 0, HoraInicio: "09:00", HoraFin: "08:00"}, "franjas[0].hora_fin"},
		{"fuera del horario de atencion", schedule.Franja{Dia: 0, HoraInicio: "06:00", HoraFin: "08:00"}, "franjas[0].hora_inicio"},
		{"desalineada del periodo", schedule.Franja{Dia: 0, HoraInicio: "07:30", HoraFin: "08:30"}, "franjas[0].hora_inicio"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Replace(context.Background(), ambiente.AmbienteID, &dto.ReplaceHorarioRequest{
				Franjas: []schedule.Franja{tc.franja},
			})
			var inv *FranjasInvalidasError
			if !errors.As(err, &inv) {
				t.Fatalf("error = %v, se esperaba FranjasInvalidasError", err)
			}
			if len(inv.Detalles) != 1 || inv.Detalles[0].Campo != tc.campo {
				t.Errorf("Detalles = %v, se esperaba campo %q", inv.Detalles, tc.campo)
			}
		})
	}
}

func TestHorarioReplaceAcumulaErrores(t *testing.T) {
	repo := newMockRepository()
	svc := NewHorarioService(repo, zap.NewNop())
	ambiente := seedAmbiente(t, repo, true)

	_, err := svc.Replace(context.Background(), ambiente.AmbienteID, &dto.ReplaceHorarioRequest{
		Franjas: []schedule.Franja{
			{Dia: -1, HoraInicio: "07:00", HoraFin: "08:00"},
			{Dia: 0, HoraInicio: "07:00", HoraFin: "08:00"}, // valida
			{Dia: 1, HoraInicio: "99:00", HoraFin: "08:00"},
		},
	})
	var inv *FranjasInvalidasError
	if !errors.As(err, &inv) {
		t.Fatalf("error = %v, se esperaba FranjasInvalidasError", err)
	}
	if len(inv.Detalles) != 2 {
		t.Fatalf("Detalles = %v, se esperaban 2 fallas", inv.Detalles)
	}
	if inv.Detalles[0].Campo != "franjas[0].dia" || inv.Detalles[1].Campo != "franjas[2].hora_inicio" {
		t.Errorf("campos = %q y %q", inv.Detalles[0].Campo, inv.Detalles[1].Campo)
	}
}

func TestHorarioReplaceRechazaAmbienteInactivo(t *testing.T) {
	repo := newMockRepository()
	svc := NewHorarioService(repo, zap.NewNop())
	ambiente := seedAmbiente(t, repo, false)

	_, err := svc.Replace(context.Background(), ambiente.AmbienteID, &dto.ReplaceHorarioRequest{
		Franjas: []schedule.Franja{{Dia: 0, HoraInicio: "07:00", HoraFin: "08:00"}},
	})
	if !errors.Is(err, ErrAmbienteNoProgramable) {
		t.Fatalf("error = %v, se esperaba ErrAmbienteNoProgramable", err)
	}
}

func TestHorarioGetAmbienteInexistente(t *testing.T) {
	repo := newMockRepository()
	svc := NewHorarioService(repo, zap.NewNop())

	_, err := svc.Get(context.Background(), "no-existe")
	if !errors.Is(err, ErrAmbienteNotFound) {
		t.Fatalf("error = %v, se esperaba ErrAmbienteNotFound", err)
	}
}

func TestHorarioGetDevuelveGrillaYFranjas(t *testing.T) {
	repo := newMockRepository()
	svc := NewHorarioService(repo, zap.NewNop())
	ambiente := seedAmbiente(t, repo, true)

	if _, err := svc.Replace(context.Background(), ambiente.AmbienteID, &dto.ReplaceHorarioRequest{
		Franjas: []schedule.Franja{{Dia: 3, HoraInicio: "10:00", HoraFin: "12:00"}},
	}); err != nil {
		t.Fatalf("Replace devolvio error: %v", err)
	}

	resp, err := svc.Get(context.Background(), ambiente.AmbienteID)
	if err != nil {
		t.Fatalf("Get devolvio error: %v", err)
	}
	if resp.HoraApertura != "07:00" || resp.HoraCierre != "12:00" || resp.Periodo != 60 {
		t.Errorf("grilla = %s-%s/%d", resp.HoraApertura, resp.HoraCierre, resp.Periodo)
	}
	if len(resp.Items) != 1 || resp.Items[0].Dia != 3 {
		t.Errorf("Items = %v", resp.Items)
	}
}

func TestHorarioExportICal(t *testing.T) {
	repo := newMockRepository()
	svc := NewHorarioService(repo, zap.NewNop())
	ambiente := seedAmbiente(t, repo, true)

	if _, err := svc.Replace(context.Background(), ambiente.AmbienteID, &dto.ReplaceHorarioRequest{
		Franjas: []schedule.Franja{
			{Dia: 0, HoraInicio: "08:00", HoraFin: "10:00"},
			{Dia: 5, HoraInicio: "07:00", HoraFin: "09:00"},
		},
	}); err != nil {
		t.Fatalf("Replace devolvio error: %v", err)
	}

	data, nombre, err := svc.ExportICal(context.Background(), ambiente.AmbienteID)
	if err != nil {
		t.Fatalf("ExportICal devolvio error: %v", err)
	}
	if nombre != "horario_A-101.ics" {
		t.Errorf("nombre = %q", nombre)
	}
	contenido := string(data)
	if !strings.Contains(contenido, "BEGIN:VCALENDAR") {
		t.Error("falta el encabezado VCALENDAR")
	}
	if got := strings.Count(contenido, "BEGIN:VEVENT"); got != 2 {
		t.Errorf("eventos = %d, se esperaban 2", got)
	}
	if !strings.Contains(contenido, "FREQ=WEEKLY;BYDAY=MO") || !strings.Contains(contenido, "FREQ=WEEKLY;BYDAY=SA") {
		t.Error("faltan las reglas de recurrencia semanales")
	}
}
