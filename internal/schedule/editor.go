package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/JosuePerezValenzuela/Web-infraestructura-sub000/pkg/apiclient"
)

// ErrSaveInFlight rejects a save issued while the previous one is still
// waiting on the backend. No request is sent for the rejected call.
var ErrSaveInFlight = errors.New("guardado en curso")

// ValidationError marks a locally detected problem with the grid inputs
// or the selection. It never reaches the backend.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// PreconditionError marks a state that forbids saving before the grid is
// even validated (no room selected, inactive room).
type PreconditionError struct {
	Reason string
}

func (e *PreconditionError) Error() string { return e.Reason }

// Client is the HTTP surface the editor needs from pkg/apiclient.
type Client interface {
	Get(ctx context.Context, path string, out interface{}) error
	Put(ctx context.Context, path string, body, out interface{}) error
}

// Notifier receives user-facing notices from the editor.
type Notifier interface {
	Info(title, description string)
	Success(title, description string)
	Error(title, description string)
}

// AmbienteRef is the slice of a room the editor needs: its identifier and
// whether it may be scheduled. The editor never mutates the room itself.
type AmbienteRef struct {
	ID     string
	Activo bool
}

// HorarioConfig is the payload of GET /ambientes/{id}/horarios.
type HorarioConfig struct {
	HoraApertura string   `json:"hora_apertura"`
	HoraCierre   string   `json:"hora_cierre"`
	Periodo      int      `json:"periodo"`
	Items        []Franja `json:"items"`
}

type saveRequest struct {
	Franjas []Franja `json:"franjas"`
}

const defaultPeriod = 60

// Editor drives the schedule-editing workflow for one room: grid
// generation, slot toggling, and persistence of the compressed week.
// All state lives in the Editor and is discarded on Close; a fresh
// Editor (or Open call) starts every editing session. Not safe for
// concurrent use.
type Editor struct {
	api     Client
	notify  Notifier
	onSaved func()

	room      *AmbienteRef
	startTime string
	endTime   string
	period    int
	slots     []string
	selection *Selection
	saving    bool
}

// NewEditor builds an editor over the given API client and notifier.
// onSaved, when non-nil, runs after every successful save.
func NewEditor(api Client, notify Notifier, onSaved func()) *Editor {
	return &Editor{
		api:       api,
		notify:    notify,
		onSaved:   onSaved,
		period:    defaultPeriod,
		selection: NewSelection(),
	}
}

// Open starts an editing session for the given room, discarding any
// previous session state.
func (e *Editor) Open(room *AmbienteRef) {
	e.reset()
	e.room = room
}

// Close ends the session. Nothing survives into the next open cycle.
func (e *Editor) Close() {
	e.reset()
}

func (e *Editor) reset() {
	e.room = nil
	e.startTime = ""
	e.endTime = ""
	e.period = defaultPeriod
	e.slots = nil
	e.selection.Clear()
	e.saving = false
}

// Slots returns the current grid's slot start times.
func (e *Editor) Slots() []string { return e.slots }

// Selection exposes the selection store for toggling from the view layer.
func (e *Editor) Selection() *Selection { return e.selection }

// Toggle flips one cell of the grid.
func (e *Editor) Toggle(dia int, slot string) {
	e.selection.Toggle(dia, slot)
}

// SelectAll selects the full grid on every day. No-op without a grid.
func (e *Editor) SelectAll() {
	e.selection.SelectAll(e.slots)
}

// ClearSelections empties the selection without touching the grid.
func (e *Editor) ClearSelections() {
	e.selection.Clear()
}

// GenerateGrid validates the start/end/period inputs and, on success,
// builds the slot sequence and resets the selection. Each failure is
// reported through the notifier and aborts generation; checks run in
// order and stop at the first problem.
func (e *Editor) GenerateGrid(start, end string, period int) error {
	if start == "" || end == "" {
		e.notify.Info("Horarios", "define ambas horas")
		return &ValidationError{Reason: "define ambas horas"}
	}
	if !IsValidTime(start) || !IsValidTime(end) {
		e.notify.Error("Horarios", "formato de hora invalido")
		return &ValidationError{Reason: "formato de hora invalido"}
	}
	if period <= 0 {
		e.notify.Error("Horarios", "periodo invalido")
		return &ValidationError{Reason: "periodo invalido"}
	}
	if ToMinutes(start) >= ToMinutes(end) {
		e.notify.Error("Horarios", "rango de horas invalido")
		return &ValidationError{Reason: "rango de horas invalido"}
	}
	slots := BuildSlots(start, end, period)
	if len(slots) == 0 {
		e.notify.Info("Horarios", "sin franjas generadas")
		return &ValidationError{Reason: "sin franjas generadas"}
	}

	e.startTime = start
	e.endTime = end
	e.period = period
	e.slots = slots
	// a reshaped grid invalidates every previous selection
	e.selection.Clear()
	return nil
}

// Load hydrates the grid and selection from the room's stored schedule.
// Each stored range is expanded back into its constituent slots.
func (e *Editor) Load(ctx context.Context) error {
	if e.room == nil {
		e.notify.Info("Horarios", "selecciona un ambiente")
		return &PreconditionError{Reason: "sin ambiente seleccionado"}
	}

	var cfg HorarioConfig
	if err := e.api.Get(ctx, fmt.Sprintf("/ambientes/%s/horarios", e.room.ID), &cfg); err != nil {
		e.notify.Error("Horarios", extractMessage(err))
		return err
	}
	// The backend is a collaborator, not a trusted source: a malformed
	// grid config or range must surface as a notice, never feed ToMinutes.
	if !IsValidTime(cfg.HoraApertura) || !IsValidTime(cfg.HoraCierre) || cfg.Periodo <= 0 {
		e.notify.Error("Horarios", "configuracion de horario invalida")
		return &ValidationError{Reason: "configuracion de horario invalida"}
	}
	for _, item := range cfg.Items {
		if !IsValidTime(item.HoraInicio) || !IsValidTime(item.HoraFin) {
			e.notify.Error("Horarios", "configuracion de horario invalida")
			return &ValidationError{Reason: "configuracion de horario invalida"}
		}
	}

	e.startTime = cfg.HoraApertura
	e.endTime = cfg.HoraCierre
	e.period = cfg.Periodo
	e.slots = BuildSlots(cfg.HoraApertura, cfg.HoraCierre, cfg.Periodo)
	e.selection.Clear()
	for _, item := range cfg.Items {
		for _, slot := range ExpandRange(item, cfg.Periodo) {
			e.selection.Add(item.Dia, slot)
		}
	}
	return nil
}

// Save compresses the week's selection and persists it. On failure the
// grid and selection survive untouched so the user can retry at once.
func (e *Editor) Save(ctx context.Context) error {
	if e.saving {
		return ErrSaveInFlight
	}

	if e.room == nil {
		e.notify.Info("Horarios", "selecciona un ambiente")
		e.Close()
		return &PreconditionError{Reason: "sin ambiente seleccionado"}
	}
	if !e.room.Activo {
		e.notify.Info("Horarios", "solo ambientes activos pueden programarse")
		return &PreconditionError{Reason: "ambiente inactivo"}
	}
	if len(e.slots) == 0 {
		e.notify.Info("Horarios", "genera la grilla primero")
		return &ValidationError{Reason: "grilla no generada"}
	}

	franjas := Compress(e.selection, e.period)
	if len(franjas) == 0 {
		e.notify.Info("Horarios", "selecciona al menos una franja")
		return &ValidationError{Reason: "seleccion vacia"}
	}

	e.saving = true
	defer func() { e.saving = false }()

	path := fmt.Sprintf("/ambientes/%s/horarios", e.room.ID)
	if err := e.api.Put(ctx, path, saveRequest{Franjas: franjas}, nil); err != nil {
		e.notify.Error("Horarios", extractMessage(err))
		return err
	}

	e.notify.Success("Horarios", fmt.Sprintf("%d franjas guardadas", len(franjas)))
	if e.onSaved != nil {
		e.onSaved()
	}
	return nil
}

// extractMessage pulls the most specific human-readable text out of an
// API failure: joined structured details, then the message, then a
// generic fallback.
func extractMessage(err error) string {
	var apiErr *apiclient.Error
	if errors.As(err, &apiErr) {
		return apiErr.DetailText()
	}
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return "no se pudo completar la operacion"
}
