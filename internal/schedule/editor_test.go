package schedule

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JosuePerezValenzuela/Web-infraestructura-sub000/pkg/apiclient"
)

// ── test doubles ──

type notice struct {
	kind  string
	title string
	desc  string
}

type recordingNotifier struct {
	notices []notice
}

func (n *recordingNotifier) Info(title, desc string) {
	n.notices = append(n.notices, notice{"info", title, desc})
}

func (n *recordingNotifier) Success(title, desc string) {
	n.notices = append(n.notices, notice{"success", title, desc})
}

func (n *recordingNotifier) Error(title, desc string) {
	n.notices = append(n.notices, notice{"error", title, desc})
}

func (n *recordingNotifier) last() notice {
	if len(n.notices) == 0 {
		return notice{}
	}
	return n.notices[len(n.notices)-1]
}

// newTestEditor wires an editor against an httptest backend and returns
// the editor, the notifier and a counter of PUT requests received.
func newTestEditor(t *testing.T, handler http.HandlerFunc) (*Editor, *recordingNotifier, *int) {
	t.Helper()

	puts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			puts++
		}
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	notifier := &recordingNotifier{}
	editor := NewEditor(apiclient.New(srv.URL), notifier, nil)
	return editor, notifier, &puts
}

func okEnvelope(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"code": 0, "message": "success", "data": data,
	})
}

// ── GenerateGrid validation chain ──

func TestEditor_GenerateGrid_ValidationOrder(t *testing.T) {
	cases := []struct {
		name   string
		start  string
		end    string
		period int
		notice string
		kind   string
	}{
		{"horas vacias", "", "09:00", 60, "define ambas horas", "info"},
		{"formato invalido", "7:00", "09:00", 60, "formato de hora invalido", "error"},
		{"periodo invalido", "07:00", "09:00", 0, "periodo invalido", "error"},
		{"rango invertido", "09:00", "07:00", 60, "rango de horas invalido", "error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			editor, notifier, _ := newTestEditor(t, func(w http.ResponseWriter, r *http.Request) {})
			editor.Open(&AmbienteRef{ID: "amb-1", Activo: true})

			err := editor.GenerateGrid(tc.start, tc.end, tc.period)
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("se esperaba ValidationError, se obtuvo %v", err)
			}
			got := notifier.last()
			if got.kind != tc.kind || got.desc != tc.notice {
				t.Errorf("aviso = %+v, se esperaba %s %q", got, tc.kind, tc.notice)
			}
			if len(editor.Slots()) != 0 {
				t.Error("una generacion fallida no debe dejar grilla")
			}
		})
	}
}

func TestEditor_GenerateGrid_ResetsSelection(t *testing.T) {
	editor, _, _ := newTestEditor(t, func(w http.ResponseWriter, r *http.Request) {})
	editor.Open(&AmbienteRef{ID: "amb-1", Activo: true})

	if err := editor.GenerateGrid("07:00", "09:00", 60); err != nil {
		t.Fatalf("GenerateGrid deberia funcionar: %v", err)
	}
	editor.Toggle(DiaLunes, "07:00")

	// reshaping the grid discards the previous selection
	if err := editor.GenerateGrid("07:00", "10:00", 30); err != nil {
		t.Fatalf("GenerateGrid deberia funcionar: %v", err)
	}
	if editor.Selection().Count() != 0 {
		t.Error("regenerar la grilla debe vaciar la seleccion")
	}
	if len(editor.Slots()) != 6 {
		t.Errorf("se esperaban 6 slots, hay %d", len(editor.Slots()))
	}
}

// ── Save guards ──

func TestEditor_Save_NoRoom(t *testing.T) {
	editor, notifier, puts := newTestEditor(t, func(w http.ResponseWriter, r *http.Request) {})

	err := editor.Save(context.Background())
	var pErr *PreconditionError
	if !errors.As(err, &pErr) {
		t.Fatalf("se esperaba PreconditionError, se obtuvo %v", err)
	}
	if *puts != 0 {
		t.Errorf("no debe emitirse PUT sin ambiente, se emitieron %d", *puts)
	}
	if notifier.last().kind != "info" {
		t.Errorf("se esperaba aviso info, se obtuvo %+v", notifier.last())
	}
}

func TestEditor_Save_InactiveRoomNeverIssuesPUT(t *testing.T) {
	editor, notifier, puts := newTestEditor(t, func(w http.ResponseWriter, r *http.Request) {})
	editor.Open(&AmbienteRef{ID: "amb-1", Activo: false})
	if err := editor.GenerateGrid("07:00", "09:00", 60); err != nil {
		t.Fatalf("GenerateGrid deberia funcionar: %v", err)
	}
	editor.Toggle(DiaLunes, "07:00")

	err := editor.Save(context.Background())
	var pErr *PreconditionError
	if !errors.As(err, &pErr) {
		t.Fatalf("se esperaba PreconditionError, se obtuvo %v", err)
	}
	if *puts != 0 {
		t.Errorf("ambiente inactivo: se emitieron %d PUT, se esperaban 0", *puts)
	}
	got := notifier.last()
	if got.kind != "info" || !strings.Contains(got.desc, "solo ambientes activos") {
		t.Errorf("se esperaba aviso de ambiente inactivo, se obtuvo %+v", got)
	}
	if len(editor.Slots()) == 0 {
		t.Error("el guardado abortado debe conservar la grilla")
	}
}

func TestEditor_Save_NoGrid(t *testing.T) {
	editor, notifier, puts := newTestEditor(t, func(w http.ResponseWriter, r *http.Request) {})
	editor.Open(&AmbienteRef{ID: "amb-1", Activo: true})

	if err := editor.Save(context.Background()); err == nil {
		t.Fatal("guardar sin grilla deberia fallar")
	}
	if *puts != 0 {
		t.Error("no debe emitirse PUT sin grilla")
	}
	if notifier.last().desc != "genera la grilla primero" {
		t.Errorf("aviso inesperado: %+v", notifier.last())
	}
}

func TestEditor_Save_EmptySelection(t *testing.T) {
	editor, notifier, puts := newTestEditor(t, func(w http.ResponseWriter, r *http.Request) {})
	editor.Open(&AmbienteRef{ID: "amb-1", Activo: true})
	if err := editor.GenerateGrid("07:00", "09:00", 60); err != nil {
		t.Fatalf("GenerateGrid deberia funcionar: %v", err)
	}

	if err := editor.Save(context.Background()); err == nil {
		t.Fatal("guardar sin seleccion deberia fallar")
	}
	if *puts != 0 {
		t.Error("no debe emitirse PUT con seleccion vacia")
	}
	if notifier.last().desc != "selecciona al menos una franja" {
		t.Errorf("aviso inesperado: %+v", notifier.last())
	}
}

// ── Save happy path ──

func TestEditor_Save_SendsCompressedWeek(t *testing.T) {
	var body saveRequest
	editor, notifier, puts := newTestEditor(t, func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("cuerpo ilegible: %v", err)
		}
		okEnvelope(w, nil)
	})

	saved := false
	editor.onSaved = func() { saved = true }

	editor.Open(&AmbienteRef{ID: "amb-1", Activo: true})
	if err := editor.GenerateGrid("07:00", "10:00", 60); err != nil {
		t.Fatalf("GenerateGrid deberia funcionar: %v", err)
	}
	editor.Toggle(DiaLunes, "07:00")
	editor.Toggle(DiaLunes, "08:00")
	editor.Toggle(DiaMiercoles, "09:00")

	if err := editor.Save(context.Background()); err != nil {
		t.Fatalf("Save deberia funcionar: %v", err)
	}

	if *puts != 1 {
		t.Errorf("se esperaba exactamente 1 PUT, hubo %d", *puts)
	}
	want := []Franja{
		{Dia: DiaLunes, HoraInicio: "07:00", HoraFin: "09:00"},
		{Dia: DiaMiercoles, HoraInicio: "09:00", HoraFin: "10:00"},
	}
	if len(body.Franjas) != len(want) {
		t.Fatalf("franjas enviadas = %v, se esperaban %v", body.Franjas, want)
	}
	for i := range want {
		if body.Franjas[i] != want[i] {
			t.Errorf("franja %d = %+v, se esperaba %+v", i, body.Franjas[i], want[i])
		}
	}
	got := notifier.last()
	if got.kind != "success" || !strings.Contains(got.desc, "2 franjas") {
		t.Errorf("aviso de exito inesperado: %+v", got)
	}
	if !saved {
		t.Error("el callback onSaved deberia invocarse tras el exito")
	}
}

// ── Save failure keeps state for retry ──

func TestEditor_Save_BackendErrorKeepsState(t *testing.T) {
	fail := true
	editor, notifier, puts := newTestEditor(t, func(w http.ResponseWriter, r *http.Request) {
		if fail {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"code": 42200, "message": "El backend fallo",
			})
			return
		}
		okEnvelope(w, nil)
	})

	editor.Open(&AmbienteRef{ID: "amb-1", Activo: true})
	if err := editor.GenerateGrid("07:00", "09:00", 60); err != nil {
		t.Fatalf("GenerateGrid deberia funcionar: %v", err)
	}
	editor.Toggle(DiaLunes, "07:00")

	if err := editor.Save(context.Background()); err == nil {
		t.Fatal("el rechazo del backend deberia propagarse")
	}
	got := notifier.last()
	if got.kind != "error" || got.desc != "El backend fallo" {
		t.Errorf("aviso = %+v, se esperaba el mensaje exacto del backend", got)
	}

	// the grid and selection survive, so an immediate retry works
	fail = false
	if err := editor.Save(context.Background()); err != nil {
		t.Fatalf("el reintento deberia funcionar: %v", err)
	}
	if *puts != 2 {
		t.Errorf("se esperaban 2 PUT (fallo + reintento), hubo %d", *puts)
	}
}

func TestEditor_Save_StructuredDetailsJoined(t *testing.T) {
	editor, notifier, _ := newTestEditor(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"code":    40001,
			"message": "franjas invalidas",
			"details": []map[string]string{
				{"field": "franjas[0]", "message": "fuera del horario de atencion"},
				{"field": "franjas[2]", "message": "no alineada al periodo"},
			},
		})
	})

	editor.Open(&AmbienteRef{ID: "amb-1", Activo: true})
	if err := editor.GenerateGrid("07:00", "09:00", 60); err != nil {
		t.Fatalf("GenerateGrid deberia funcionar: %v", err)
	}
	editor.Toggle(DiaLunes, "07:00")

	if err := editor.Save(context.Background()); err == nil {
		t.Fatal("se esperaba error")
	}
	desc := notifier.last().desc
	if !strings.Contains(desc, "fuera del horario") || !strings.Contains(desc, "no alineada") {
		t.Errorf("los detalles estructurados deberian unirse en el aviso, se obtuvo %q", desc)
	}
}

// ── double submission ──

func TestEditor_Save_RejectsWhileInFlight(t *testing.T) {
	editor, _, puts := newTestEditor(t, func(w http.ResponseWriter, r *http.Request) {
		okEnvelope(w, nil)
	})
	editor.Open(&AmbienteRef{ID: "amb-1", Activo: true})
	if err := editor.GenerateGrid("07:00", "09:00", 60); err != nil {
		t.Fatalf("GenerateGrid deberia funcionar: %v", err)
	}
	editor.Toggle(DiaLunes, "07:00")

	editor.saving = true
	if err := editor.Save(context.Background()); !errors.Is(err, ErrSaveInFlight) {
		t.Fatalf("se esperaba ErrSaveInFlight, se obtuvo %v", err)
	}
	if *puts != 0 {
		t.Error("un guardado en curso no debe emitir otro PUT")
	}
	editor.saving = false
}

// ── Load hydration ──

func TestEditor_Load_HydratesGridAndSelection(t *testing.T) {
	editor, _, _ := newTestEditor(t, func(w http.ResponseWriter, r *http.Request) {
		okEnvelope(w, HorarioConfig{
			HoraApertura: "07:00",
			HoraCierre:   "12:00",
			Periodo:      60,
			Items: []Franja{
				{Dia: DiaLunes, HoraInicio: "07:00", HoraFin: "09:00"},
				{Dia: DiaViernes, HoraInicio: "10:00", HoraFin: "11:00"},
			},
		})
	})
	editor.Open(&AmbienteRef{ID: "amb-1", Activo: true})

	if err := editor.Load(context.Background()); err != nil {
		t.Fatalf("Load deberia funcionar: %v", err)
	}
	if len(editor.Slots()) != 5 {
		t.Errorf("se esperaban 5 slots de grilla, hay %d", len(editor.Slots()))
	}
	sel := editor.Selection()
	for _, slot := range []string{"07:00", "08:00"} {
		if !sel.IsSelected(DiaLunes, slot) {
			t.Errorf("el slot %s del lunes deberia quedar seleccionado", slot)
		}
	}
	if sel.IsSelected(DiaLunes, "09:00") {
		t.Error("la expansion debe detenerse estrictamente antes de hora_fin")
	}
	if !sel.IsSelected(DiaViernes, "10:00") {
		t.Error("el slot del viernes deberia quedar seleccionado")
	}
	if sel.Count() != 3 {
		t.Errorf("se esperaban 3 slots seleccionados, hay %d", sel.Count())
	}
}

func TestEditor_Load_RejectsMalformedConfig(t *testing.T) {
	cases := []struct {
		name string
		cfg  HorarioConfig
	}{
		{"apertura vacia", HorarioConfig{HoraApertura: "", HoraCierre: "12:00", Periodo: 60}},
		{"cierre malformado", HorarioConfig{HoraApertura: "07:00", HoraCierre: "99:99", Periodo: 60}},
		{"periodo cero", HorarioConfig{HoraApertura: "07:00", HoraCierre: "12:00", Periodo: 0}},
		{"franja malformada", HorarioConfig{
			HoraApertura: "07:00", HoraCierre: "12:00", Periodo: 60,
			Items: []Franja{{Dia: DiaLunes, HoraInicio: "7h", HoraFin: "09:00"}},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			editor, notifier, _ := newTestEditor(t, func(w http.ResponseWriter, r *http.Request) {
				okEnvelope(w, tc.cfg)
			})
			editor.Open(&AmbienteRef{ID: "amb-1", Activo: true})

			err := editor.Load(context.Background())
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("se esperaba ValidationError, se obtuvo %v", err)
			}
			got := notifier.last()
			if got.kind != "error" || got.desc != "configuracion de horario invalida" {
				t.Errorf("aviso = %+v, se esperaba el error de configuracion", got)
			}
			if len(editor.Slots()) != 0 || editor.Selection().Count() != 0 {
				t.Error("una hidratacion rechazada no debe dejar grilla ni seleccion")
			}
		})
	}
}

// ── Close resets everything ──

func TestEditor_CloseDiscardsState(t *testing.T) {
	editor, _, _ := newTestEditor(t, func(w http.ResponseWriter, r *http.Request) {})
	editor.Open(&AmbienteRef{ID: "amb-1", Activo: true})
	if err := editor.GenerateGrid("07:00", "09:00", 60); err != nil {
		t.Fatalf("GenerateGrid deberia funcionar: %v", err)
	}
	editor.Toggle(DiaLunes, "07:00")

	editor.Close()
	if len(editor.Slots()) != 0 || editor.Selection().Count() != 0 {
		t.Error("Close debe descartar grilla y seleccion")
	}
	if editor.room != nil {
		t.Error("Close debe soltar la referencia al ambiente")
	}
}
