package schedule

import "sort"

// Selection holds the selected slot start times for each day of the week.
// Storage is unordered set semantics; reads come out sorted by time so
// iteration is deterministic regardless of toggle order.
type Selection struct {
	days [DiasSemana]map[string]struct{}
}

// NewSelection returns an empty selection for all seven days.
func NewSelection() *Selection {
	s := &Selection{}
	for d := range s.days {
		s.days[d] = make(map[string]struct{})
	}
	return s
}

// Toggle flips the membership of slot within the given day's set.
// Days outside 0..6 are ignored.
func (s *Selection) Toggle(dia int, slot string) {
	if dia < 0 || dia >= DiasSemana {
		return
	}
	if _, ok := s.days[dia][slot]; ok {
		delete(s.days[dia], slot)
	} else {
		s.days[dia][slot] = struct{}{}
	}
}

// Add marks a slot as selected without toggling.
func (s *Selection) Add(dia int, slot string) {
	if dia < 0 || dia >= DiasSemana {
		return
	}
	s.days[dia][slot] = struct{}{}
}

// IsSelected reports whether the slot is selected on the given day.
func (s *Selection) IsSelected(dia int, slot string) bool {
	if dia < 0 || dia >= DiasSemana {
		return false
	}
	_, ok := s.days[dia][slot]
	return ok
}

// Clear resets every day to the empty set.
func (s *Selection) Clear() {
	for d := range s.days {
		s.days[d] = make(map[string]struct{})
	}
}

// SelectAll sets every day's set to the full slot sequence.
// A nil or empty sequence leaves the selection untouched.
func (s *Selection) SelectAll(slots []string) {
	if len(slots) == 0 {
		return
	}
	for d := range s.days {
		day := make(map[string]struct{}, len(slots))
		for _, slot := range slots {
			day[slot] = struct{}{}
		}
		s.days[d] = day
	}
}

// Selected returns the day's selected slots in ascending time order.
func (s *Selection) Selected(dia int) []string {
	if dia < 0 || dia >= DiasSemana {
		return nil
	}
	out := make([]string, 0, len(s.days[dia]))
	for slot := range s.days[dia] {
		out = append(out, slot)
	}
	sort.Slice(out, func(i, j int) bool {
		return ToMinutes(out[i]) < ToMinutes(out[j])
	})
	return out
}

// Count returns the total number of selected slots across the week.
func (s *Selection) Count() int {
	n := 0
	for d := range s.days {
		n += len(s.days[d])
	}
	return n
}
