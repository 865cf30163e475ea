package repository

import (
	"context"
	"errors"
	"log/slog"

	"hisitter/internal/domain/availability"
	"hisitter/internal/domain/babysitter"
	"hisitter/internal/infra"
	"hisitter/internal/infra/db"
	"hisitter/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

type babysitterRepository struct{}

func NewBabysitterRepository() shared.BabysitterRepository {
	return &babysitterRepository{}
}

func (r *babysitterRepository) Create(ctx context.Context, tx db.DBTX, b *babysitter.Babysitter) error {
	const query = `
		INSERT INTO babysitter_profiles (
			user_id, education_degree, about, hourly_rate_cents, reputation
		)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := tx.Exec(ctx, query,
		b.UserID(),
		b.EducationDegree(),
		b.About(),
		b.HourlyRateCents(),
		b.Reputation(),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgErrCodeUniqueViolation:
				return infra.WrapRepoErr(slog.Default(), infra.KindDuplicateKey, "babysitter profile already exists", err)
			case pgErrCodeForeignKeyViolation:
				return infra.WrapRepoErr(slog.Default(), infra.KindForeignKeyViolated, "user does not exist", err)
			}
		}
		return infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to create babysitter profile", err)
	}

	return r.insertSlots(ctx, tx, b.UserID(), b.Schedule())
}

// ReplaceSchedule swaps the whole weekly schedule atomically. Partial
// edits are not supported; the client always submits the full set.
func (r *babysitterRepository) ReplaceSchedule(ctx context.Context, tx db.DBTX, userID uuid.UUID, schedule availability.Schedule) error {
	const deleteQuery = `DELETE FROM availabilities WHERE babysitter_id = $1`

	if _, err := tx.Exec(ctx, deleteQuery, userID); err != nil {
		return infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to clear schedule", err)
	}
	return r.insertSlots(ctx, tx, userID, schedule)
}

func (r *babysitterRepository) UpdateReputation(ctx context.Context, tx db.DBTX, userID uuid.UUID, reputation float64) error {
	const query = `
		UPDATE babysitter_profiles
		SET reputation = $2, updated_at = now()
		WHERE user_id = $1`

	tag, err := tx.Exec(ctx, query, userID, reputation)
	if err != nil {
		return infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to update reputation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "babysitter profile not found", nil)
	}
	return nil
}

func (r *babysitterRepository) insertSlots(ctx context.Context, tx db.DBTX, userID uuid.UUID, schedule availability.Schedule) error {
	const query = `
		INSERT INTO availabilities (babysitter_id, weekday, shift)
		VALUES ($1, $2, $3)
		ON CONFLICT (babysitter_id, weekday, shift) DO NOTHING`

	for _, slot := range schedule.Slots() {
		if _, err := tx.Exec(ctx, query, userID, int(slot.Weekday()), slot.Shift().String()); err != nil {
			return infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to insert availability slot", err)
		}
	}
	return nil
}
