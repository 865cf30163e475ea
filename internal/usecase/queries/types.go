package queries

import (
	"time"

	"hisitter/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidCursor = errs.Mark(errs.New("invalid cursor"), errs.ErrDomainValidation)

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID         uuid.UUID  `json:"id"`
	Email      string     `json:"email"`
	Username   string     `json:"username"`
	Role       string     `json:"role"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	IsVerified bool       `json:"is_verified"`
	LastLogin  *time.Time `json:"last_login,omitempty"`
}

// AvailabilitySlotView is one weekly opening in a babysitter's schedule.
type AvailabilitySlotView struct {
	Weekday int    `json:"weekday"`
	Shift   string `json:"shift"`
}

// BabysitterView is the full public profile of a babysitter.
type BabysitterView struct {
	UserID          uuid.UUID              `json:"user_id"`
	Username        string                 `json:"username"`
	FirstName       string                 `json:"first_name"`
	LastName        string                 `json:"last_name"`
	EducationDegree string                 `json:"education_degree"`
	About           string                 `json:"about"`
	HourlyRateCents int64                  `json:"hourly_rate_cents"`
	Reputation      float64                `json:"reputation"`
	Slots           []AvailabilitySlotView `json:"slots"`
	CreatedAt       time.Time              `json:"created_at"`
}

// BabysitterListItem is one row of an availability search result.
type BabysitterListItem struct {
	UserID          uuid.UUID `json:"user_id"`
	Username        string    `json:"username"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	EducationDegree string    `json:"education_degree"`
	HourlyRateCents int64     `json:"hourly_rate_cents"`
	Reputation      float64   `json:"reputation"`
}

// ServiceView is the full detail of one engagement, including billing
// once completed.
type ServiceView struct {
	ID              uuid.UUID  `json:"id"`
	ClientID        uuid.UUID  `json:"client_id"`
	BabysitterID    uuid.UUID  `json:"babysitter_id"`
	Date            time.Time  `json:"date"`
	Shift           string     `json:"shift"`
	Address         string     `json:"address"`
	CountChildren   int        `json:"count_children"`
	SpecialCares    string     `json:"special_cares,omitempty"`
	Status          string     `json:"status"`
	ScheduledStart  *time.Time `json:"scheduled_start,omitempty"`
	OnMyWayAt       *time.Time `json:"on_my_way_at,omitempty"`
	StartedAt       *time.Time `json:"started_at,omitempty"`
	EndedAt         *time.Time `json:"ended_at,omitempty"`
	DurationSeconds *int64     `json:"duration_seconds,omitempty"`
	TotalCostCents  *int64     `json:"total_cost_cents,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// ServiceListItem is one row of a participant's service history.
type ServiceListItem struct {
	ID             uuid.UUID `json:"id"`
	Date           time.Time `json:"date"`
	Shift          string    `json:"shift"`
	Status         string    `json:"status"`
	ClientName     string    `json:"client_name"`
	BabysitterName string    `json:"babysitter_name"`
	TotalCostCents *int64    `json:"total_cost_cents,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// ReviewView is one client verdict as shown on a babysitter's profile.
type ReviewView struct {
	ID             uuid.UUID `json:"id"`
	ServiceID      uuid.UUID `json:"service_id"`
	ClientID       uuid.UUID `json:"client_id"`
	ClientUsername string    `json:"client_username"`
	Rating         int       `json:"rating"`
	Comment        string    `json:"comment,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
