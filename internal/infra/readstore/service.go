package readstore

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"hisitter/internal/domain/availability"
	"hisitter/internal/domain/service"
	"hisitter/internal/infra"
	"hisitter/internal/infra/db"
	"hisitter/internal/pkg/pgconv"
	"hisitter/internal/usecase/queries"
)

type ServiceReadStore struct {
	dbtx db.DBTX
}

func NewServiceReadStore(dbtx db.DBTX) *ServiceReadStore {
	return &ServiceReadStore{dbtx: dbtx}
}

const serviceColumns = `
	id, client_id, babysitter_id, date, shift, address,
	count_children, special_cares, status, record_status,
	scheduled_start, on_my_way_at, started_at, ended_at,
	duration_seconds, total_cost_cents, created_at, updated_at`

type serviceRow struct {
	ID              uuid.UUID
	ClientID        uuid.UUID
	BabysitterID    uuid.UUID
	Date            pgtype.Date
	Shift           string
	Address         string
	CountChildren   int
	SpecialCares    string
	Status          string
	RecordStatus    string
	ScheduledStart  pgtype.Timestamptz
	OnMyWayAt       pgtype.Timestamptz
	StartedAt       pgtype.Timestamptz
	EndedAt         pgtype.Timestamptz
	DurationSeconds pgtype.Int8
	TotalCostCents  pgtype.Int8
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (r *ServiceReadStore) findRow(ctx context.Context, id uuid.UUID) (*serviceRow, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE id = $1 AND record_status = 'active'`

	var row serviceRow
	err := r.dbtx.QueryRow(ctx, query, id).Scan(
		&row.ID,
		&row.ClientID,
		&row.BabysitterID,
		&row.Date,
		&row.Shift,
		&row.Address,
		&row.CountChildren,
		&row.SpecialCares,
		&row.Status,
		&row.RecordStatus,
		&row.ScheduledStart,
		&row.OnMyWayAt,
		&row.StartedAt,
		&row.EndedAt,
		&row.DurationSeconds,
		&row.TotalCostCents,
		&row.CreatedAt,
		&row.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "service not found", err)
		}
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to find service", err)
	}
	return &row, nil
}

func (r *ServiceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ServiceView, error) {
	row, err := r.findRow(ctx, id)
	if err != nil {
		return nil, err
	}
	return toServiceView(row), nil
}

// EntityByID rehydrates the aggregate for a lifecycle command.
func (r *ServiceReadStore) EntityByID(ctx context.Context, id uuid.UUID) (*service.Service, error) {
	row, err := r.findRow(ctx, id)
	if err != nil {
		return nil, err
	}

	var duration *time.Duration
	if secs := pgconv.Int64PtrFromPgtype(row.DurationSeconds); secs != nil {
		d := time.Duration(*secs) * time.Second
		duration = &d
	}
	var totalCost *service.Money
	if cents := pgconv.Int64PtrFromPgtype(row.TotalCostCents); cents != nil {
		m := service.NewMoney(*cents)
		totalCost = &m
	}

	return service.ReconstructService(
		row.ID, row.ClientID, row.BabysitterID,
		pgconv.DateFromPgtype(row.Date),
		availability.Shift(row.Shift),
		row.Address,
		row.CountChildren,
		row.SpecialCares,
		service.Status(row.Status),
		service.RecordStatus(row.RecordStatus),
		pgconv.TimePtrFromPgtype(row.ScheduledStart),
		pgconv.TimePtrFromPgtype(row.OnMyWayAt),
		pgconv.TimePtrFromPgtype(row.StartedAt),
		pgconv.TimePtrFromPgtype(row.EndedAt),
		duration,
		totalCost,
		row.CreatedAt,
		row.UpdatedAt,
	), nil
}

// HasActiveBooking reports whether the babysitter has a live engagement
// for the date and shift. Completed and soft-deleted services do not block
// a new booking.
func (r *ServiceReadStore) HasActiveBooking(ctx context.Context, babysitterID uuid.UUID, date time.Time, shift availability.Shift) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM services
			WHERE babysitter_id = $1
			  AND date = $2
			  AND shift = $3
			  AND status <> 'completed'
			  AND record_status = 'active'
		)`

	var exists bool
	err := r.dbtx.QueryRow(ctx, query, babysitterID, pgconv.DateToPgtype(date), shift.String()).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to check booking conflict", err)
	}
	return exists, nil
}

const serviceListColumns = `
	s.id, s.date, s.shift, s.status,
	cu.first_name || ' ' || cu.last_name,
	bu.first_name || ' ' || bu.last_name,
	s.total_cost_cents, s.created_at`

func (r *ServiceReadStore) FindByParticipantFirstPage(ctx context.Context, participantID uuid.UUID, limit int32) ([]*queries.ServiceListItem, error) {
	query := `
		SELECT ` + serviceListColumns + `
		FROM services s
		JOIN users cu ON cu.id = s.client_id
		JOIN users bu ON bu.id = s.babysitter_id
		WHERE (s.client_id = $1 OR s.babysitter_id = $1)
		  AND s.record_status = 'active'
		ORDER BY s.created_at DESC, s.id DESC
		LIMIT $2`

	return r.scanListItems(ctx, query, participantID, limit)
}

func (r *ServiceReadStore) FindByParticipantKeyset(ctx context.Context, participantID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ServiceListItem, error) {
	query := `
		SELECT ` + serviceListColumns + `
		FROM services s
		JOIN users cu ON cu.id = s.client_id
		JOIN users bu ON bu.id = s.babysitter_id
		WHERE (s.client_id = $1 OR s.babysitter_id = $1)
		  AND s.record_status = 'active'
		  AND (s.created_at, s.id) < ($2, $3)
		ORDER BY s.created_at DESC, s.id DESC
		LIMIT $4`

	return r.scanListItems(ctx, query, participantID, pgconv.TimeToPgtype(lastCreatedAt), lastID, limit)
}

func (r *ServiceReadStore) scanListItems(ctx context.Context, query string, args ...any) ([]*queries.ServiceListItem, error) {
	rows, err := r.dbtx.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to list services", err)
	}
	defer rows.Close()

	var items []*queries.ServiceListItem
	for rows.Next() {
		var item queries.ServiceListItem
		var date pgtype.Date
		var totalCost pgtype.Int8
		if err := rows.Scan(
			&item.ID,
			&date,
			&item.Shift,
			&item.Status,
			&item.ClientName,
			&item.BabysitterName,
			&totalCost,
			&item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to scan service row", err)
		}
		item.Date = pgconv.DateFromPgtype(date)
		item.TotalCostCents = pgconv.Int64PtrFromPgtype(totalCost)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to read service rows", err)
	}
	return items, nil
}

func toServiceView(row *serviceRow) *queries.ServiceView {
	return &queries.ServiceView{
		ID:              row.ID,
		ClientID:        row.ClientID,
		BabysitterID:    row.BabysitterID,
		Date:            pgconv.DateFromPgtype(row.Date),
		Shift:           row.Shift,
		Address:         row.Address,
		CountChildren:   row.CountChildren,
		SpecialCares:    row.SpecialCares,
		Status:          row.Status,
		ScheduledStart:  pgconv.TimePtrFromPgtype(row.ScheduledStart),
		OnMyWayAt:       pgconv.TimePtrFromPgtype(row.OnMyWayAt),
		StartedAt:       pgconv.TimePtrFromPgtype(row.StartedAt),
		EndedAt:         pgconv.TimePtrFromPgtype(row.EndedAt),
		DurationSeconds: pgconv.Int64PtrFromPgtype(row.DurationSeconds),
		TotalCostCents:  pgconv.Int64PtrFromPgtype(row.TotalCostCents),
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
}
