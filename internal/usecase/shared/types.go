package shared

import (
	"time"

	"github.com/google/uuid"
)

// Minimal snapshots for command-side validation reads.

type UserSnapshot struct {
	ID           uuid.UUID
	Email        string
	Username     string
	PasswordHash string
	Role         string
	IsVerified   bool
	LastLogin    *time.Time
}

type BabysitterSnapshot struct {
	UserID          uuid.UUID
	EducationDegree string
	About           string
	HourlyRateCents int64
	Reputation      float64
}
