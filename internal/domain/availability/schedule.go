package availability

import "time"

// Slot is one declared (day-of-week, shift) opening in a babysitter's
// weekly schedule.
type Slot struct {
	weekday time.Weekday
	shift   Shift
}

func NewSlot(weekday time.Weekday, shift Shift) (Slot, error) {
	if weekday < time.Sunday || weekday > time.Saturday {
		return Slot{}, ErrInvalidWeekday
	}
	if !shift.IsValid() {
		return Slot{}, ErrInvalidShift
	}
	return Slot{weekday: weekday, shift: shift}, nil
}

func (s Slot) Weekday() time.Weekday { return s.weekday }
func (s Slot) Shift() Shift          { return s.shift }

// Schedule is the full weekly availability of one babysitter.
// Duplicate slots are harmless: matching is existence-based.
type Schedule struct {
	slots []Slot
}

func NewSchedule(slots []Slot) Schedule {
	return Schedule{slots: slots}
}

func (s Schedule) Slots() []Slot {
	return s.slots
}

func (s Schedule) IsEmpty() bool {
	return len(s.slots) == 0
}

// Covers reports whether the schedule has at least one slot matching
// the weekday of the given date and the given shift.
func (s Schedule) Covers(date time.Time, shift Shift) bool {
	weekday := date.Weekday()
	for _, slot := range s.slots {
		if slot.weekday == weekday && slot.shift == shift {
			return true
		}
	}
	return false
}
