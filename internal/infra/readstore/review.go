package readstore

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"hisitter/internal/infra"
	"hisitter/internal/infra/db"
	"hisitter/internal/pkg/pgconv"
	"hisitter/internal/usecase/queries"
)

type ReviewReadStore struct {
	dbtx db.DBTX
}

func NewReviewReadStore(dbtx db.DBTX) *ReviewReadStore {
	return &ReviewReadStore{dbtx: dbtx}
}

const reviewColumns = `
	r.id, r.service_id, r.client_id, u.username, r.rating, r.comment, r.created_at`

func (r *ReviewReadStore) FindByServiceID(ctx context.Context, serviceID uuid.UUID) (*queries.ReviewView, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM reviews r
		JOIN users u ON u.id = r.client_id
		WHERE r.service_id = $1`

	var view queries.ReviewView
	err := r.dbtx.QueryRow(ctx, query, serviceID).Scan(
		&view.ID,
		&view.ServiceID,
		&view.ClientID,
		&view.ClientUsername,
		&view.Rating,
		&view.Comment,
		&view.CreatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "review not found", err)
		}
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to find review", err)
	}
	return &view, nil
}

func (r *ReviewReadStore) ExistsForService(ctx context.Context, serviceID uuid.UUID) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM reviews WHERE service_id = $1)`

	var exists bool
	if err := r.dbtx.QueryRow(ctx, query, serviceID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to check review existence", err)
	}
	return exists, nil
}

// RatingsForBabysitter feeds the reputation recompute. Reviews on
// soft-deleted services still count; the verdict was earned.
func (r *ReviewReadStore) RatingsForBabysitter(ctx context.Context, babysitterID uuid.UUID) ([]int, error) {
	const query = `
		SELECT r.rating
		FROM reviews r
		JOIN services s ON s.id = r.service_id
		WHERE s.babysitter_id = $1`

	rows, err := r.dbtx.Query(ctx, query, babysitterID)
	if err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to load ratings", err)
	}
	defer rows.Close()

	var ratings []int
	for rows.Next() {
		var rating int
		if err := rows.Scan(&rating); err != nil {
			return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to scan rating", err)
		}
		ratings = append(ratings, rating)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to read ratings", err)
	}
	return ratings, nil
}

func (r *ReviewReadStore) FindByBabysitterFirstPage(ctx context.Context, babysitterID uuid.UUID, limit int32) ([]*queries.ReviewView, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM reviews r
		JOIN services s ON s.id = r.service_id
		JOIN users u ON u.id = r.client_id
		WHERE s.babysitter_id = $1
		ORDER BY r.created_at DESC, r.id DESC
		LIMIT $2`

	return r.scanViews(ctx, query, babysitterID, limit)
}

func (r *ReviewReadStore) FindByBabysitterKeyset(ctx context.Context, babysitterID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ReviewView, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM reviews r
		JOIN services s ON s.id = r.service_id
		JOIN users u ON u.id = r.client_id
		WHERE s.babysitter_id = $1
		  AND (r.created_at, r.id) < ($2, $3)
		ORDER BY r.created_at DESC, r.id DESC
		LIMIT $4`

	return r.scanViews(ctx, query, babysitterID, pgconv.TimeToPgtype(lastCreatedAt), lastID, limit)
}

func (r *ReviewReadStore) scanViews(ctx context.Context, query string, args ...any) ([]*queries.ReviewView, error) {
	rows, err := r.dbtx.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to list reviews", err)
	}
	defer rows.Close()

	var views []*queries.ReviewView
	for rows.Next() {
		var view queries.ReviewView
		if err := rows.Scan(
			&view.ID,
			&view.ServiceID,
			&view.ClientID,
			&view.ClientUsername,
			&view.Rating,
			&view.Comment,
			&view.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to scan review row", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to read review rows", err)
	}
	return views, nil
}
