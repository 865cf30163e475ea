package readstore

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"hisitter/internal/domain/availability"
	"hisitter/internal/infra"
	"hisitter/internal/infra/db"
	"hisitter/internal/pkg/pgconv"
	"hisitter/internal/usecase/queries"
	"hisitter/internal/usecase/shared"
)

type BabysitterReadStore struct {
	dbtx db.DBTX
}

func NewBabysitterReadStore(dbtx db.DBTX) *BabysitterReadStore {
	return &BabysitterReadStore{dbtx: dbtx}
}

func (r *BabysitterReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) (*queries.BabysitterView, error) {
	const query = `
		SELECT b.user_id, u.username, u.first_name, u.last_name,
		       b.education_degree, b.about, b.hourly_rate_cents, b.reputation,
		       b.created_at
		FROM babysitter_profiles b
		JOIN users u ON u.id = b.user_id
		WHERE b.user_id = $1`

	var view queries.BabysitterView
	err := r.dbtx.QueryRow(ctx, query, userID).Scan(
		&view.UserID,
		&view.Username,
		&view.FirstName,
		&view.LastName,
		&view.EducationDegree,
		&view.About,
		&view.HourlyRateCents,
		&view.Reputation,
		&view.CreatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "babysitter not found", err)
		}
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to find babysitter", err)
	}

	slots, err := r.slotViews(ctx, userID)
	if err != nil {
		return nil, err
	}
	view.Slots = slots
	return &view, nil
}

func (r *BabysitterReadStore) SnapshotByUserID(ctx context.Context, userID uuid.UUID) (*shared.BabysitterSnapshot, error) {
	const query = `
		SELECT user_id, education_degree, about, hourly_rate_cents, reputation
		FROM babysitter_profiles
		WHERE user_id = $1`

	var snap shared.BabysitterSnapshot
	err := r.dbtx.QueryRow(ctx, query, userID).Scan(
		&snap.UserID,
		&snap.EducationDegree,
		&snap.About,
		&snap.HourlyRateCents,
		&snap.Reputation,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "babysitter not found", err)
		}
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to find babysitter", err)
	}
	return &snap, nil
}

func (r *BabysitterReadStore) ScheduleByUserID(ctx context.Context, userID uuid.UUID) (availability.Schedule, error) {
	const query = `
		SELECT weekday, shift
		FROM availabilities
		WHERE babysitter_id = $1`

	rows, err := r.dbtx.Query(ctx, query, userID)
	if err != nil {
		return availability.Schedule{}, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to load schedule", err)
	}
	defer rows.Close()

	var slots []availability.Slot
	for rows.Next() {
		var weekday int
		var shiftStr string
		if err := rows.Scan(&weekday, &shiftStr); err != nil {
			return availability.Schedule{}, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to scan schedule row", err)
		}
		shift, serr := availability.NewShift(shiftStr)
		if serr != nil {
			return availability.Schedule{}, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "invalid shift in storage", serr)
		}
		slot, serr := availability.NewSlot(time.Weekday(weekday), shift)
		if serr != nil {
			return availability.Schedule{}, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "invalid weekday in storage", serr)
		}
		slots = append(slots, slot)
	}
	if err := rows.Err(); err != nil {
		return availability.Schedule{}, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to read schedule rows", err)
	}

	return availability.NewSchedule(slots), nil
}

const availableListColumns = `
	b.user_id, u.username, u.first_name, u.last_name,
	b.education_degree, b.hourly_rate_cents, b.reputation`

func (r *BabysitterReadStore) FindAvailableFirstPage(ctx context.Context, weekday int, shift string, limit int32) ([]*queries.BabysitterListItem, error) {
	query := `
		SELECT ` + availableListColumns + `
		FROM babysitter_profiles b
		JOIN users u ON u.id = b.user_id
		WHERE EXISTS (
			SELECT 1 FROM availabilities a
			WHERE a.babysitter_id = b.user_id
			  AND a.weekday = $1
			  AND a.shift = $2
		)
		ORDER BY b.reputation DESC, b.user_id DESC
		LIMIT $3`

	return r.scanListItems(ctx, query, weekday, shift, limit)
}

func (r *BabysitterReadStore) FindAvailableKeyset(ctx context.Context, weekday int, shift string, lastReputation float64, lastID uuid.UUID, limit int32) ([]*queries.BabysitterListItem, error) {
	query := `
		SELECT ` + availableListColumns + `
		FROM babysitter_profiles b
		JOIN users u ON u.id = b.user_id
		WHERE EXISTS (
			SELECT 1 FROM availabilities a
			WHERE a.babysitter_id = b.user_id
			  AND a.weekday = $1
			  AND a.shift = $2
		)
		  AND (b.reputation, b.user_id) < ($3, $4)
		ORDER BY b.reputation DESC, b.user_id DESC
		LIMIT $5`

	return r.scanListItems(ctx, query, weekday, shift, lastReputation, lastID, limit)
}

func (r *BabysitterReadStore) scanListItems(ctx context.Context, query string, args ...any) ([]*queries.BabysitterListItem, error) {
	rows, err := r.dbtx.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to list babysitters", err)
	}
	defer rows.Close()

	var items []*queries.BabysitterListItem
	for rows.Next() {
		var item queries.BabysitterListItem
		if err := rows.Scan(
			&item.UserID,
			&item.Username,
			&item.FirstName,
			&item.LastName,
			&item.EducationDegree,
			&item.HourlyRateCents,
			&item.Reputation,
		); err != nil {
			return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to scan babysitter row", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to read babysitter rows", err)
	}
	return items, nil
}

func (r *BabysitterReadStore) slotViews(ctx context.Context, userID uuid.UUID) ([]queries.AvailabilitySlotView, error) {
	const query = `
		SELECT weekday, shift
		FROM availabilities
		WHERE babysitter_id = $1
		ORDER BY weekday, shift`

	rows, err := r.dbtx.Query(ctx, query, userID)
	if err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to load availability slots", err)
	}
	defer rows.Close()

	var slots []queries.AvailabilitySlotView
	for rows.Next() {
		var slot queries.AvailabilitySlotView
		if err := rows.Scan(&slot.Weekday, &slot.Shift); err != nil {
			return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to scan availability slot", err)
		}
		slots = append(slots, slot)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to read availability slots", err)
	}
	return slots, nil
}
