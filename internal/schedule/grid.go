package schedule

// Days of the week as used across the schedule subsystem.
// 0 is Monday, 6 is Sunday; the order is significant for iteration.
const (
	DiaLunes = iota
	DiaMartes
	DiaMiercoles
	DiaJueves
	DiaViernes
	DiaSabado
	DiaDomingo

	DiasSemana = 7
)

// BuildSlots generates the ordered slot start times covering [start, end)
// at period-minute intervals. The result is empty when start >= end or
// period is not positive. Pure and deterministic: the same inputs always
// produce the same sequence.
func BuildSlots(start, end string, period int) []string {
	if period <= 0 {
		return nil
	}
	startMin := ToMinutes(start)
	endMin := ToMinutes(end)
	if startMin >= endMin {
		return nil
	}

	slots := make([]string, 0, (endMin-startMin+period-1)/period)
	for m := startMin; m < endMin; m += period {
		slots = append(slots, ToTimeString(m))
	}
	return slots
}
