//go:build unit || e2e

package builder

import (
	"time"

	"hisitter/internal/domain/availability"
	domservice "hisitter/internal/domain/service"
	reqdto "hisitter/internal/handler/dto/request"
	"hisitter/internal/pkg/ptr"
	"hisitter/internal/usecase/commands"
	"hisitter/internal/usecase/queries"

	"github.com/google/uuid"
)

type ServiceBuilder struct {
	ID             uuid.UUID
	ClientID       uuid.UUID
	BabysitterID   uuid.UUID
	Date           time.Time
	Shift          string
	Address        string
	CountChildren  int
	SpecialCares   string
	Status         domservice.Status
	RecordStatus   domservice.RecordStatus
	ScheduledStart *time.Time
	OnMyWayAt      *time.Time
	StartedAt      *time.Time
	EndedAt        *time.Time
	Duration       *time.Duration
	TotalCost      *domservice.Money
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func NewServiceBuilder() *ServiceBuilder {
	now := time.Now()
	start := time.Date(2026, time.June, 6, 18, 0, 0, 0, time.UTC)
	return &ServiceBuilder{
		ID:             uuid.New(),
		ClientID:       uuid.New(),
		BabysitterID:   uuid.New(),
		Date:           time.Date(2026, time.June, 6, 0, 0, 0, 0, time.UTC),
		Shift:          "evening",
		Address:        "123 Main St",
		CountChildren:  2,
		SpecialCares:   "",
		Status:         domservice.StatusScheduled,
		RecordStatus:   domservice.RecordActive,
		ScheduledStart: &start,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (s *ServiceBuilder) With(mutate func(*ServiceBuilder)) *ServiceBuilder {
	mutate(s)
	return s
}

// Build methods
func (s *ServiceBuilder) BuildDomain() (*domservice.Service, error) {
	shift, err := availability.NewShift(s.Shift)
	if err != nil {
		return nil, err
	}
	return domservice.NewService(
		s.ClientID, s.BabysitterID, s.Date, shift,
		s.Address, s.CountChildren, s.SpecialCares, s.ScheduledStart,
	)
}

// BuildReconstructed builds a service in an arbitrary lifecycle state,
// bypassing the transition rules the way a database load does.
func (s *ServiceBuilder) BuildReconstructed() *domservice.Service {
	shift, _ := availability.NewShift(s.Shift)
	return domservice.ReconstructService(
		s.ID, s.ClientID, s.BabysitterID, s.Date, shift,
		s.Address, s.CountChildren, s.SpecialCares,
		s.Status, s.RecordStatus,
		s.ScheduledStart, s.OnMyWayAt, s.StartedAt, s.EndedAt,
		s.Duration, s.TotalCost,
		s.CreatedAt, s.UpdatedAt,
	)
}

func (s *ServiceBuilder) BuildBookCommand() commands.BookServiceRequest {
	return commands.BookServiceRequest{
		BabysitterID:   s.BabysitterID,
		Date:           s.Date,
		Shift:          s.Shift,
		Address:        s.Address,
		CountChildren:  s.CountChildren,
		SpecialCares:   s.SpecialCares,
		ScheduledStart: s.ScheduledStart,
	}
}

func (s *ServiceBuilder) BuildBookRequestDTO() reqdto.BookServiceRequest {
	return reqdto.BookServiceRequest{
		BabysitterID:   s.BabysitterID,
		Date:           s.Date.Format("2006-01-02"),
		Shift:          s.Shift,
		Address:        s.Address,
		CountChildren:  s.CountChildren,
		SpecialCares:   s.SpecialCares,
		ScheduledStart: s.ScheduledStart,
	}
}

func (s *ServiceBuilder) BuildView() *queries.ServiceView {
	var durationSeconds, totalCostCents *int64
	if s.Duration != nil {
		durationSeconds = ptr.To(int64(s.Duration.Seconds()))
	}
	if s.TotalCost != nil {
		totalCostCents = ptr.To(s.TotalCost.Cents())
	}
	return &queries.ServiceView{
		ID:              s.ID,
		ClientID:        s.ClientID,
		BabysitterID:    s.BabysitterID,
		Date:            s.Date,
		Shift:           s.Shift,
		Address:         s.Address,
		CountChildren:   s.CountChildren,
		SpecialCares:    s.SpecialCares,
		Status:          s.Status.String(),
		ScheduledStart:  s.ScheduledStart,
		OnMyWayAt:       s.OnMyWayAt,
		StartedAt:       s.StartedAt,
		EndedAt:         s.EndedAt,
		DurationSeconds: durationSeconds,
		TotalCostCents:  totalCostCents,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// Fluent builder methods
func (s *ServiceBuilder) WithClientID(id uuid.UUID) *ServiceBuilder {
	s.ClientID = id
	return s
}

func (s *ServiceBuilder) WithBabysitterID(id uuid.UUID) *ServiceBuilder {
	s.BabysitterID = id
	return s
}

func (s *ServiceBuilder) WithShift(shift string) *ServiceBuilder {
	s.Shift = shift
	return s
}

func (s *ServiceBuilder) WithAddress(address string) *ServiceBuilder {
	s.Address = address
	return s
}

func (s *ServiceBuilder) WithCountChildren(n int) *ServiceBuilder {
	s.CountChildren = n
	return s
}

func (s *ServiceBuilder) WithScheduledStart(t *time.Time) *ServiceBuilder {
	s.ScheduledStart = t
	return s
}

func (s *ServiceBuilder) AsOnMyWay(at time.Time) *ServiceBuilder {
	s.Status = domservice.StatusOnMyWay
	s.OnMyWayAt = &at
	return s
}

func (s *ServiceBuilder) AsInProgress(startedAt time.Time) *ServiceBuilder {
	s.Status = domservice.StatusInProgress
	s.StartedAt = &startedAt
	return s
}

func (s *ServiceBuilder) AsCompleted(startedAt, endedAt time.Time, totalCostCents int64) *ServiceBuilder {
	s.Status = domservice.StatusCompleted
	s.StartedAt = &startedAt
	s.EndedAt = &endedAt
	d := endedAt.Sub(startedAt)
	s.Duration = &d
	cost := domservice.NewMoney(totalCostCents)
	s.TotalCost = &cost
	return s
}

func (s *ServiceBuilder) AsSoftDeleted() *ServiceBuilder {
	s.RecordStatus = domservice.RecordSoftDeleted
	return s
}
