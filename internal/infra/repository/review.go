package repository

import (
	"context"
	"errors"
	"log/slog"

	"hisitter/internal/domain/review"
	"hisitter/internal/infra"
	"hisitter/internal/infra/db"
	"hisitter/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

type reviewRepository struct{}

func NewReviewRepository() shared.ReviewRepository {
	return &reviewRepository{}
}

// Create relies on the unique index on service_id to enforce one
// review per service even when two requests race past the usecase
// existence check.
func (r *reviewRepository) Create(ctx context.Context, tx db.DBTX, rev *review.Review) (uuid.UUID, error) {
	const query = `
		INSERT INTO reviews (id, service_id, client_id, rating, comment)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		rev.ID(),
		rev.ServiceID(),
		rev.ClientID(),
		rev.Rating().Int(),
		rev.Comment().String(),
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgErrCodeUniqueViolation:
				return uuid.Nil, infra.WrapRepoErr(slog.Default(), infra.KindDuplicateKey, "service already reviewed", err)
			case pgErrCodeForeignKeyViolation:
				return uuid.Nil, infra.WrapRepoErr(slog.Default(), infra.KindForeignKeyViolated, "service does not exist", err)
			}
		}
		return uuid.Nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to create review", err)
	}
	return id, nil
}
