package availability

import (
	"errors"

	"hisitter/internal/pkg/errs"
)

var (
	ErrInvalidShift   = errs.Mark(errors.New("invalid shift"), errs.ErrDomainValidation)
	ErrInvalidWeekday = errs.Mark(errors.New("invalid weekday"), errs.ErrDomainValidation)
)

// Shift is a coarse time-of-day booking slot. Bookings reserve a whole
// (date, shift) pair rather than a clock interval.
type Shift string

const (
	ShiftMorning   Shift = "morning"
	ShiftAfternoon Shift = "afternoon"
	ShiftEvening   Shift = "evening"
	ShiftNight     Shift = "night"
)

func (s Shift) String() string {
	return string(s)
}

func (s Shift) IsValid() bool {
	switch s {
	case ShiftMorning, ShiftAfternoon, ShiftEvening, ShiftNight:
		return true
	default:
		return false
	}
}

func NewShift(s string) (Shift, error) {
	shift := Shift(s)
	if !shift.IsValid() {
		return "", ErrInvalidShift
	}
	return shift, nil
}

func Shifts() []Shift {
	return []Shift{ShiftMorning, ShiftAfternoon, ShiftEvening, ShiftNight}
}
