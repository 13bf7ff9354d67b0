package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/JosuePerezValenzuela/Web-infraestructura-sub000/internal/dto"
	"github.com/JosuePerezValenzuela/Web-infraestructura-sub000/internal/model"
	"github.com/JosuePerezValenzuela/Web-infraestructura-sub000/internal/repository"
	"github.com/JosuePerezValenzuela/Web-infraestructura-sub000/internal/schedule"
)

// ErrAmbienteNoProgramable blocks scheduling a deactivated room.
var ErrAmbienteNoProgramable = errors.New("solo se pueden programar ambientes activos")

// FranjaInvalida points at one rejected range in a replace request.
type FranjaInvalida struct {
	Campo   string `json:"campo"`
	Mensaje string `json:"mensaje"`
}

// FranjasInvalidasError carries every validation failure of a replace
// request so the client can mark the offending rows.
type FranjasInvalidasError struct {
	Detalles []FranjaInvalida
}

func (e *FranjasInvalidasError) Error() string {
	return "una o mas franjas son invalidas"
}

// HorarioService manages the weekly schedule of a room.
type HorarioService interface {
	Get(ctx context.Context, ambienteID string) (*dto.HorarioResponse, error)
	Replace(ctx context.Context, ambienteID string, req *dto.ReplaceHorarioRequest) (*dto.HorarioResponse, error)
	ExportICal(ctx context.Context, ambienteID string) ([]byte, string, error)
}

type horarioService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewHorarioService builds a HorarioService.
func NewHorarioService(repo *repository.Repository, logger *zap.Logger) HorarioService {
	return &horarioService{repo: repo, logger: logger}
}

func (s *horarioService) getAmbiente(ctx context.Context, ambienteID string) (*model.Ambiente, error) {
	ambiente, err := s.repo.Ambiente.GetByID(ctx, ambienteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAmbienteNotFound
		}
		return nil, err
	}
	return ambiente, nil
}

func (s *horarioService) Get(ctx context.Context, ambienteID string) (*dto.HorarioResponse, error) {
	ambiente, err := s.getAmbiente(ctx, ambienteID)
	if err != nil {
		return nil, err
	}
	franjas, err := s.repo.Franja.ListByAmbiente(ctx, ambienteID)
	if err != nil {
		return nil, err
	}
	return toHorarioResponse(ambiente, franjas), nil
}

// Replace swaps the room's whole week for the given ranges. Ranges are
// validated against the room's grid, then normalized: expanded to slots,
// deduplicated, and recompressed so adjacent or overlapping input ranges
// come back merged and in canonical week order.
func (s *horarioService) Replace(ctx context.Context, ambienteID string, req *dto.ReplaceHorarioRequest) (*dto.HorarioResponse, error) {
	ambiente, err := s.getAmbiente(ctx, ambienteID)
	if err != nil {
		return nil, err
	}
	if !ambiente.Activo {
		return nil, ErrAmbienteNoProgramable
	}

	if err := validateFranjas(req.Franjas, ambiente); err != nil {
		return nil, err
	}

	sel := schedule.NewSelection()
	for _, f := range req.Franjas {
		for _, slot := range schedule.ExpandRange(f, ambiente.Periodo) {
			sel.Add(f.Dia, slot)
		}
	}
	normalizadas := schedule.Compress(sel, ambiente.Periodo)

	rows := make([]model.FranjaHoraria, 0, len(normalizadas))
	for _, f := range normalizadas {
		rows = append(rows, model.FranjaHoraria{
			AmbienteID: ambienteID,
			Dia:        f.Dia,
			HoraInicio: f.HoraInicio,
			HoraFin:    f.HoraFin,
		})
	}
	if err := s.repo.Franja.ReplaceForAmbiente(ctx, ambienteID, rows); err != nil {
		s.logger.Error("no se pudo guardar el horario", zap.String("ambiente_id", ambienteID), zap.Error(err))
		return nil, err
	}
	s.logger.Info("horario reemplazado",
		zap.String("ambiente_id", ambienteID),
		zap.Int("franjas", len(normalizadas)))

	return s.Get(ctx, ambienteID)
}

// validateFranjas checks every range against the room's grid and
// collects all failures instead of stopping at the first.
func validateFranjas(franjas []schedule.Franja, ambiente *model.Ambiente) error {
	apertura := schedule.ToMinutes(ambiente.HoraApertura)
	cierre := schedule.ToMinutes(ambiente.HoraCierre)

	var detalles []FranjaInvalida
	add := func(i int, campo, mensaje string) {
		detalles = append(detalles, FranjaInvalida{
			Campo:   fmt.Sprintf("franjas[%d].%s", i, campo),
			Mensaje: mensaje,
		})
	}

	for i, f := range franjas {
		if f.Dia < schedule.DiaLunes || f.Dia > schedule.DiaDomingo {
			add(i, "dia", "el dia debe estar entre 0 (lunes) y 6 (domingo)")
			continue
		}
		if !schedule.IsValidTime(f.HoraInicio) {
			add(i, "hora_inicio", "formato de hora invalido, se espera HH:MM")
			continue
		}
		if !schedule.IsValidTime(f.HoraFin) {
			add(i, "hora_fin", "formato de hora invalido, se espera HH:MM")
			continue
		}
		inicio := schedule.ToMinutes(f.HoraInicio)
		fin := schedule.ToMinutes(f.HoraFin)
		if inicio >= fin {
			add(i, "hora_fin", "la hora de fin debe ser mayor a la de inicio")
			continue
		}
		if inicio < apertura || fin > cierre {
			add(i, "hora_inicio", fmt.Sprintf("la franja debe estar dentro del horario de atencion (%s - %s)", ambiente.HoraApertura, ambiente.HoraCierre))
			continue
		}
		if (inicio-apertura)%ambiente.Periodo != 0 || (fin-inicio)%ambiente.Periodo != 0 {
			add(i, "hora_inicio", fmt.Sprintf("la franja debe alinearse a periodos de %d minutos", ambiente.Periodo))
		}
	}

	if len(detalles) > 0 {
		return &FranjasInvalidasError{Detalles: detalles}
	}
	return nil
}

// icalDays maps day index (0 = Monday) to the iCalendar BYDAY code.
var icalDays = [schedule.DiasSemana]string{"MO", "TU", "WE", "TH", "FR", "SA", "SU"}

// ExportICal renders the room's weekly schedule as an iCalendar feed
// with one weekly recurring event per stored range.
func (s *horarioService) ExportICal(ctx context.Context, ambienteID string) ([]byte, string, error) {
	ambiente, err := s.getAmbiente(ctx, ambienteID)
	if err != nil {
		return nil, "", err
	}
	franjas, err := s.repo.Franja.ListByAmbiente(ctx, ambienteID)
	if err != nil {
		return nil, "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//infraestructura//horarios//ES")

	now := time.Now()
	for _, f := range franjas {
		start := nextWeekday(now, f.Dia, f.HoraInicio)
		end := nextWeekday(now, f.Dia, f.HoraFin)

		ev := cal.AddEvent(uuid.NewString())
		ev.SetCreatedTime(now)
		ev.SetDtStampTime(now)
		ev.SetStartAt(start)
		ev.SetEndAt(end)
		ev.SetSummary(fmt.Sprintf("Ocupado - %s", ambiente.Nombre))
		ev.SetLocation(ambiente.Codigo)
		ev.AddRrule(fmt.Sprintf("FREQ=WEEKLY;BYDAY=%s", icalDays[f.Dia]))
	}

	nombre := fmt.Sprintf("horario_%s.ics", ambiente.Codigo)
	return []byte(cal.Serialize()), nombre, nil
}

// nextWeekday returns the next occurrence (today included) of the given
// day index at the given "HH:MM", in local time.
func nextWeekday(from time.Time, dia int, hora string) time.Time {
	target := time.Weekday((dia + 1) % 7) // 0 = Monday -> time.Monday
	offset := (int(target) - int(from.Weekday()) + 7) % 7
	day := from.AddDate(0, 0, offset)
	min := schedule.ToMinutes(hora)
	return time.Date(day.Year(), day.Month(), day.Day(), min/60, min%60, 0, 0, from.Location())
}

func toHorarioResponse(ambiente *model.Ambiente, franjas []model.FranjaHoraria) *dto.HorarioResponse {
	items := make([]schedule.Franja, 0, len(franjas))
	for _, f := range franjas {
		items = append(items, schedule.Franja{
			Dia:        f.Dia,
			HoraInicio: f.HoraInicio,
			HoraFin:    f.HoraFin,
		})
	}
	return &dto.HorarioResponse{
		HoraApertura: ambiente.HoraApertura,
		HoraCierre:   ambiente.HoraCierre,
		Periodo:      ambiente.Periodo,
		Items:        items,
	}
}
