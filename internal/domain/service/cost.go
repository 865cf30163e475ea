package service

import (
	"errors"
	"time"

	"hisitter/internal/pkg/errs"
)

var ErrEndBeforeStart = errs.Mark(errors.New("service end must be after its start"), errs.ErrInvalidInterval)

// BilledHours converts an actual duration into billable whole hours.
// Partial hours are dropped, never rounded up: 2h30m bills as 2 hours,
// anything under one hour bills as zero.
func BilledHours(d time.Duration) int64 {
	days := int64(d / (24 * time.Hour))
	remainder := d % (24 * time.Hour)
	return days*24 + int64(remainder/time.Hour)
}

// Cost prices a completed service from its real start and end instants
// and the babysitter's hourly rate. The rate is captured at billing
// time so later profile edits never rewrite past charges.
func Cost(startedAt, endedAt time.Time, hourlyRateCents int64) (Money, time.Duration, error) {
	if !endedAt.After(startedAt) {
		return Money{}, 0, ErrEndBeforeStart
	}
	duration := endedAt.Sub(startedAt)
	return NewMoney(BilledHours(duration) * hourlyRateCents), duration, nil
}
