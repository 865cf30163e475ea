package babysitter

import (
	"errors"
	"strings"
	"time"

	"hisitter/internal/domain/availability"
	"hisitter/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidHourlyRate    = errs.Mark(errors.New("hourly rate must be positive"), errs.ErrDomainValidation)
	ErrEmptyEducationDegree = errs.Mark(errors.New("education degree cannot be empty"), errs.ErrDomainValidation)
	ErrEmptyAbout           = errs.Mark(errors.New("about section cannot be empty"), errs.ErrDomainValidation)
)

// DefaultReputation is assigned at signup, before any review exists.
const DefaultReputation = 5.0

// Babysitter is the service-provider profile attached to a user
// account. Reputation is a derived projection over review ratings; it
// is only ever written by Recompute, never mutated ad hoc.
type Babysitter struct {
	userID          uuid.UUID
	educationDegree string
	about           string
	hourlyRateCents int64
	reputation      float64
	schedule        availability.Schedule
	createdAt       time.Time
	updatedAt       time.Time
}

func NewBabysitter(userID uuid.UUID, educationDegree, about string, hourlyRateCents int64, schedule availability.Schedule) (*Babysitter, error) {
	educationDegree = strings.TrimSpace(educationDegree)
	if educationDegree == "" {
		return nil, ErrEmptyEducationDegree
	}
	about = strings.TrimSpace(about)
	if about == "" {
		return nil, ErrEmptyAbout
	}
	if hourlyRateCents <= 0 {
		return nil, ErrInvalidHourlyRate
	}

	return &Babysitter{
		userID:          userID,
		educationDegree: educationDegree,
		about:           about,
		hourlyRateCents: hourlyRateCents,
		reputation:      DefaultReputation,
		schedule:        schedule,
	}, nil
}

func ReconstructBabysitter(
	userID uuid.UUID,
	educationDegree, about string,
	hourlyRateCents int64,
	reputation float64,
	schedule availability.Schedule,
	createdAt, updatedAt time.Time,
) *Babysitter {
	return &Babysitter{
		userID:          userID,
		educationDegree: educationDegree,
		about:           about,
		hourlyRateCents: hourlyRateCents,
		reputation:      reputation,
		schedule:        schedule,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (b *Babysitter) UserID() uuid.UUID               { return b.userID }
func (b *Babysitter) EducationDegree() string         { return b.educationDegree }
func (b *Babysitter) About() string                   { return b.about }
func (b *Babysitter) HourlyRateCents() int64          { return b.hourlyRateCents }
func (b *Babysitter) Reputation() float64             { return b.reputation }
func (b *Babysitter) Schedule() availability.Schedule { return b.schedule }
func (b *Babysitter) CreatedAt() time.Time            { return b.createdAt }
func (b *Babysitter) UpdatedAt() time.Time            { return b.updatedAt }
