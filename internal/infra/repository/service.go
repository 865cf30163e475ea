package repository

import (
	"context"
	"errors"
	"log/slog"

	"hisitter/internal/domain/service"
	"hisitter/internal/infra"
	"hisitter/internal/infra/db"
	"hisitter/internal/pkg/pgconv"
	"hisitter/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

type serviceRepository struct{}

func NewServiceRepository() shared.ServiceRepository {
	return &serviceRepository{}
}

func (r *serviceRepository) Create(ctx context.Context, tx db.DBTX, svc *service.Service) (uuid.UUID, error) {
	const query = `
		INSERT INTO services (
			id, client_id, babysitter_id, date, shift, address,
			count_children, special_cares, status, record_status, scheduled_start
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		svc.ID(),
		svc.ClientID(),
		svc.BabysitterID(),
		pgconv.DateToPgtype(svc.Date()),
		svc.Shift().String(),
		svc.Address(),
		svc.CountChildren(),
		svc.SpecialCares(),
		svc.Status().String(),
		svc.RecordStatus().String(),
		pgconv.TimePtrToPgtype(svc.ScheduledStart()),
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeForeignKeyViolation {
			return uuid.Nil, infra.WrapRepoErr(slog.Default(), infra.KindForeignKeyViolated, "client or babysitter does not exist", err)
		}
		return uuid.Nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to create service", err)
	}
	return id, nil
}

// UpdateTransition writes the post-transition state with the prior
// status in the WHERE clause. Zero rows affected means another request
// moved the service first; the caller reloads or reports the conflict.
func (r *serviceRepository) UpdateTransition(ctx context.Context, tx db.DBTX, svc *service.Service, priorStatus service.Status) error {
	const query = `
		UPDATE services
		SET status = $2,
		    on_my_way_at = $3,
		    started_at = $4,
		    ended_at = $5,
		    duration_seconds = $6,
		    total_cost_cents = $7,
		    updated_at = now()
		WHERE id = $1
		  AND status = $8
		  AND record_status = 'active'`

	var durationSeconds *int64
	if d := svc.Duration(); d != nil {
		secs := int64(d.Seconds())
		durationSeconds = &secs
	}
	var totalCostCents *int64
	if c := svc.TotalCost(); c != nil {
		cents := c.Cents()
		totalCostCents = &cents
	}

	tag, err := tx.Exec(ctx, query,
		svc.ID(),
		svc.Status().String(),
		pgconv.TimePtrToPgtype(svc.OnMyWayAt()),
		pgconv.TimePtrToPgtype(svc.StartedAt()),
		pgconv.TimePtrToPgtype(svc.EndedAt()),
		durationSeconds,
		totalCostCents,
		priorStatus.String(),
	)
	if err != nil {
		return infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to update service transition", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(slog.Default(), infra.KindConflict, "service was modified concurrently", nil)
	}
	return nil
}

func (r *serviceRepository) SoftDelete(ctx context.Context, tx db.DBTX, serviceID uuid.UUID) error {
	const query = `
		UPDATE services
		SET record_status = 'soft_deleted', updated_at = now()
		WHERE id = $1 AND record_status = 'active'`

	tag, err := tx.Exec(ctx, query, serviceID)
	if err != nil {
		return infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to soft delete service", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "service not found", nil)
	}
	return nil
}
