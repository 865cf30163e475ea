package shared

import (
	"context"
	"time"

	"hisitter/internal/domain/availability"
	"hisitter/internal/domain/babysitter"
	"hisitter/internal/domain/review"
	"hisitter/internal/domain/service"
	"hisitter/internal/domain/user"
	"hisitter/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Users() UserRepository
	Babysitters() BabysitterRepository
	Services() ServiceRepository
	Reviews() ReviewRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	UserByEmail(ctx context.Context, email string) (*UserSnapshot, error)
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	BabysitterByUserID(ctx context.Context, userID uuid.UUID) (*BabysitterSnapshot, error)
	ScheduleForBabysitter(ctx context.Context, userID uuid.UUID) (availability.Schedule, error)
	// HasActiveBooking reports whether the babysitter already has a live
	// engagement for the given date and shift.
	HasActiveBooking(ctx context.Context, babysitterID uuid.UUID, date time.Time, shift availability.Shift) (bool, error)
	ServiceByID(ctx context.Context, id uuid.UUID) (*service.Service, error)
	ReviewExistsForService(ctx context.Context, serviceID uuid.UUID) (bool, error)
	RatingsForBabysitter(ctx context.Context, babysitterID uuid.UUID) ([]int, error)
}

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, u *user.User) (uuid.UUID, error)
	MarkVerified(ctx context.Context, tx db.DBTX, userID uuid.UUID) error
	UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error
}

type BabysitterRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *babysitter.Babysitter) error
	ReplaceSchedule(ctx context.Context, tx db.DBTX, userID uuid.UUID, schedule availability.Schedule) error
	UpdateReputation(ctx context.Context, tx db.DBTX, userID uuid.UUID, reputation float64) error
}

type ServiceRepository interface {
	Create(ctx context.Context, tx db.DBTX, svc *service.Service) (uuid.UUID, error)
	// UpdateTransition persists a lifecycle change, guarded by the status
	// the entity held when it was loaded. A lost race surfaces as CONFLICT.
	UpdateTransition(ctx context.Context, tx db.DBTX, svc *service.Service, priorStatus service.Status) error
	SoftDelete(ctx context.Context, tx db.DBTX, serviceID uuid.UUID) error
}

type ReviewRepository interface {
	Create(ctx context.Context, tx db.DBTX, rev *review.Review) (uuid.UUID, error)
}
