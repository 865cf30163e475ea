package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"hisitter/internal/domain/availability"
	"hisitter/internal/domain/user"
	"hisitter/internal/pkg/errs"

	"github.com/google/uuid"
)

// OnMyWayWindow is how long before the scheduled start a babysitter may
// flag departure. There is no lower bound: flagging after the scheduled
// start is still meaningful when the babysitter is running late.
const OnMyWayWindow = 90 * time.Minute

const MaxCountChildren = 10

// Each sentinel carries the errs taxonomy mark the HTTP boundary falls
// back on when no handler case matches it explicitly.
var (
	ErrNotAssignedBabysitter = errs.Mark(errors.New("only the assigned babysitter can flag on-my-way"), errs.ErrPermissionDenied)
	ErrNotParticipant        = errs.Mark(errors.New("only the client or babysitter of the service can do this"), errs.ErrPermissionDenied)
	ErrAlreadyOnMyWay        = errs.Mark(errors.New("service is already flagged on-my-way"), errs.ErrInvalidState)
	ErrAlreadyStarted        = errs.Mark(errors.New("service has already started"), errs.ErrInvalidState)
	ErrAlreadyCompleted      = errs.Mark(errors.New("service is already completed"), errs.ErrInvalidState)
	ErrNoScheduledStart      = errs.Mark(errors.New("service has no scheduled start time"), errs.ErrPreconditionFailed)
	ErrNotStarted            = errs.Mark(errors.New("service has not started yet"), errs.ErrInvalidState)
	ErrStillActive           = errs.Mark(errors.New("service is on-the-way or in progress"), errs.ErrStillActive)
	ErrInvalidCountChildren  = errs.Mark(fmt.Errorf("count of children must be between 1 and %d", MaxCountChildren), errs.ErrDomainValidation)
	ErrEmptyAddress          = errs.Mark(errors.New("service address cannot be empty"), errs.ErrDomainValidation)
)

// TooEarlyError is returned when the babysitter flags on-my-way more
// than OnMyWayWindow before the scheduled start. It carries how far out
// the service still is so callers can tell the babysitter when to retry.
type TooEarlyError struct {
	MinutesUntilService int64
}

func (e *TooEarlyError) Error() string {
	return fmt.Sprintf("too early to flag on-my-way: service starts in %d minutes", e.MinutesUntilService)
}

// Service is one booked babysitting engagement. All lifecycle
// transitions go through MarkOnMyWay, Start and End; billing fields
// (duration, total cost) are derived inside End and never set directly.
type Service struct {
	id             uuid.UUID
	clientID       uuid.UUID
	babysitterID   uuid.UUID
	date           time.Time
	shift          availability.Shift
	address        string
	countChildren  int
	specialCares   string
	status         Status
	recordStatus   RecordStatus
	scheduledStart *time.Time
	onMyWayAt      *time.Time
	startedAt      *time.Time
	endedAt        *time.Time
	duration       *time.Duration
	totalCost      *Money
	createdAt      time.Time
	updatedAt      time.Time
}

func NewService(
	clientID, babysitterID uuid.UUID,
	date time.Time,
	shift availability.Shift,
	address string,
	countChildren int,
	specialCares string,
	scheduledStart *time.Time,
) (*Service, error) {
	if !shift.IsValid() {
		return nil, availability.ErrInvalidShift
	}
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, ErrEmptyAddress
	}
	if countChildren < 1 || countChildren > MaxCountChildren {
		return nil, ErrInvalidCountChildren
	}

	return &Service{
		id:             uuid.New(),
		clientID:       clientID,
		babysitterID:   babysitterID,
		date:           date,
		shift:          shift,
		address:        address,
		countChildren:  countChildren,
		specialCares:   strings.TrimSpace(specialCares),
		status:         StatusScheduled,
		recordStatus:   RecordActive,
		scheduledStart: scheduledStart,
	}, nil
}

func ReconstructService(
	id, clientID, babysitterID uuid.UUID,
	date time.Time,
	shift availability.Shift,
	address string,
	countChildren int,
	specialCares string,
	status Status,
	recordStatus RecordStatus,
	scheduledStart, onMyWayAt, startedAt, endedAt *time.Time,
	duration *time.Duration,
	totalCost *Money,
	createdAt, updatedAt time.Time,
) *Service {
	return &Service{
		id:             id,
		clientID:       clientID,
		babysitterID:   babysitterID,
		date:           date,
		shift:          shift,
		address:        address,
		countChildren:  countChildren,
		specialCares:   specialCares,
		status:         status,
		recordStatus:   recordStatus,
		scheduledStart: scheduledStart,
		onMyWayAt:      onMyWayAt,
		startedAt:      startedAt,
		endedAt:        endedAt,
		duration:       duration,
		totalCost:      totalCost,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// MarkOnMyWay records that the assigned babysitter has left for the
// service. It may happen at most once, requires a scheduled start, and
// is rejected while the service is still more than OnMyWayWindow away.
func (s *Service) MarkOnMyWay(actor user.Actor, now time.Time) error {
	if actor.ID != s.babysitterID {
		return ErrNotAssignedBabysitter
	}
	if s.status == StatusCompleted {
		return ErrAlreadyCompleted
	}
	if s.status == StatusInProgress {
		return ErrAlreadyStarted
	}
	if s.onMyWayAt != nil {
		return ErrAlreadyOnMyWay
	}
	if s.scheduledStart == nil {
		return ErrNoScheduledStart
	}
	if remaining := s.scheduledStart.Sub(now); remaining > OnMyWayWindow {
		return errs.Mark(&TooEarlyError{MinutesUntilService: int64(remaining / time.Minute)}, errs.ErrPreconditionFailed)
	}

	at := now
	s.onMyWayAt = &at
	s.status = StatusOnMyWay
	return nil
}

// Start records the real beginning of the service. Either participant
// may do it; flagging on-my-way first is not required.
func (s *Service) Start(actor user.Actor, now time.Time) error {
	if !s.isParticipant(actor) {
		return ErrNotParticipant
	}
	if s.status == StatusCompleted {
		return ErrAlreadyCompleted
	}
	if s.startedAt != nil {
		return ErrAlreadyStarted
	}

	at := now
	s.startedAt = &at
	s.status = StatusInProgress
	return nil
}

// End completes the service and derives its billing: real duration and
// total cost at the given hourly rate. Completed is terminal.
func (s *Service) End(actor user.Actor, now time.Time, hourlyRateCents int64) error {
	if !s.isParticipant(actor) {
		return ErrNotParticipant
	}
	if s.status == StatusCompleted {
		return ErrAlreadyCompleted
	}
	if s.startedAt == nil {
		return ErrNotStarted
	}

	cost, duration, err := Cost(*s.startedAt, now, hourlyRateCents)
	if err != nil {
		return err
	}

	at := now
	s.endedAt = &at
	s.duration = &duration
	s.totalCost = &cost
	s.status = StatusCompleted
	return nil
}

// SoftDelete tombstones the record. An engagement that is on-the-way or
// in progress must be ended first.
func (s *Service) SoftDelete() error {
	if s.status == StatusOnMyWay || s.status == StatusInProgress {
		return ErrStillActive
	}
	s.recordStatus = RecordSoftDeleted
	return nil
}

func (s *Service) isParticipant(actor user.Actor) bool {
	return actor.ID == s.clientID || actor.ID == s.babysitterID
}

func (s *Service) IsCompleted() bool {
	return s.status == StatusCompleted
}

func (s *Service) ID() uuid.UUID                 { return s.id }
func (s *Service) ClientID() uuid.UUID           { return s.clientID }
func (s *Service) BabysitterID() uuid.UUID       { return s.babysitterID }
func (s *Service) Date() time.Time               { return s.date }
func (s *Service) Shift() availability.Shift     { return s.shift }
func (s *Service) Address() string               { return s.address }
func (s *Service) CountChildren() int            { return s.countChildren }
func (s *Service) SpecialCares() string          { return s.specialCares }
func (s *Service) Status() Status                { return s.status }
func (s *Service) RecordStatus() RecordStatus    { return s.recordStatus }
func (s *Service) ScheduledStart() *time.Time    { return s.scheduledStart }
func (s *Service) OnMyWayAt() *time.Time         { return s.onMyWayAt }
func (s *Service) StartedAt() *time.Time         { return s.startedAt }
func (s *Service) EndedAt() *time.Time           { return s.endedAt }
func (s *Service) Duration() *time.Duration      { return s.duration }
func (s *Service) TotalCost() *Money             { return s.totalCost }
func (s *Service) CreatedAt() time.Time          { return s.createdAt }
func (s *Service) UpdatedAt() time.Time          { return s.updatedAt }
