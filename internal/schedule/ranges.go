package schedule

// Franja is one contiguous block of scheduled time on a single day.
// Invariants: HoraInicio < HoraFin, the duration is a multiple of the
// grid period, and no two franjas of the same day overlap or touch.
type Franja struct {
	Dia        int    `json:"dia"`
	HoraInicio string `json:"hora_inicio"`
	HoraFin    string `json:"hora_fin"`
}

// CompressDay folds a day's sorted selected slots into the minimal set of
// maximal contiguous ranges. Two slots are contiguous only when they are
// exactly period minutes apart; any larger gap closes the current range.
// A single isolated slot yields the one-period range [slot, slot+period).
func CompressDay(dia int, slots []string, period int) []Franja {
	if len(slots) == 0 {
		return nil
	}

	var franjas []Franja
	rangeStart := slots[0]
	previous := slots[0]

	for _, t := range slots[1:] {
		if ToMinutes(t)-ToMinutes(previous) == period {
			previous = t
			continue
		}
		// gap: close the current range and open a new one
		franjas = append(franjas, Franja{
			Dia:        dia,
			HoraInicio: rangeStart,
			HoraFin:    ToTimeString(ToMinutes(previous) + period),
		})
		rangeStart = t
		previous = t
	}

	franjas = append(franjas, Franja{
		Dia:        dia,
		HoraInicio: rangeStart,
		HoraFin:    ToTimeString(ToMinutes(previous) + period),
	})
	return franjas
}

// Compress folds the whole week's selection into franjas, days in order
// 0..6 and ranges within a day in chronological order.
func Compress(sel *Selection, period int) []Franja {
	var franjas []Franja
	for dia := 0; dia < DiasSemana; dia++ {
		franjas = append(franjas, CompressDay(dia, sel.Selected(dia), period)...)
	}
	return franjas
}

// ExpandRange is the inverse of CompressDay for one franja: the slot
// start times at period spacing from HoraInicio, strictly below HoraFin.
// Expanding and re-compressing a valid franja yields the franja back.
func ExpandRange(f Franja, period int) []string {
	return BuildSlots(f.HoraInicio, f.HoraFin, period)
}
