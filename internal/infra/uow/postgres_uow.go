package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"hisitter/internal/domain/availability"
	"hisitter/internal/domain/service"
	"hisitter/internal/infra/db"
	"hisitter/internal/infra/readstore"
	"hisitter/internal/infra/repository"
	"hisitter/internal/pkg/errs"
	"hisitter/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{pool: pool}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{dbtx: pgxTx}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	// Mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx db.DBTX

	// Lazy-initialized repositories
	userRepo       shared.UserRepository
	babysitterRepo shared.BabysitterRepository
	serviceRepo    shared.ServiceRepository
	reviewRepo     shared.ReviewRepository
	commandReads   shared.CommandReads
}

func (t *pgTx) DB() db.DBTX {
	return t.dbtx
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository()
	}
	return t.userRepo
}

func (t *pgTx) Babysitters() shared.BabysitterRepository {
	if t.babysitterRepo == nil {
		t.babysitterRepo = repository.NewBabysitterRepository()
	}
	return t.babysitterRepo
}

func (t *pgTx) Services() shared.ServiceRepository {
	if t.serviceRepo == nil {
		t.serviceRepo = repository.NewServiceRepository()
	}
	return t.serviceRepo
}

func (t *pgTx) Reviews() shared.ReviewRepository {
	if t.reviewRepo == nil {
		t.reviewRepo = repository.NewReviewRepository()
	}
	return t.reviewRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{dbtx: t.dbtx}
	}
	return t.commandReads
}

type commandReads struct {
	dbtx db.DBTX

	// Lazy-initialized readstores
	userStore       *readstore.UserReadStore
	babysitterStore *readstore.BabysitterReadStore
	serviceStore    *readstore.ServiceReadStore
	reviewStore     *readstore.ReviewReadStore
}

func (r *commandReads) users() *readstore.UserReadStore {
	if r.userStore == nil {
		r.userStore = readstore.NewUserReadStore(r.dbtx)
	}
	return r.userStore
}

func (r *commandReads) babysitters() *readstore.BabysitterReadStore {
	if r.babysitterStore == nil {
		r.babysitterStore = readstore.NewBabysitterReadStore(r.dbtx)
	}
	return r.babysitterStore
}

func (r *commandReads) services() *readstore.ServiceReadStore {
	if r.serviceStore == nil {
		r.serviceStore = readstore.NewServiceReadStore(r.dbtx)
	}
	return r.serviceStore
}

func (r *commandReads) reviews() *readstore.ReviewReadStore {
	if r.reviewStore == nil {
		r.reviewStore = readstore.NewReviewReadStore(r.dbtx)
	}
	return r.reviewStore
}

func (r *commandReads) UserByEmail(ctx context.Context, email string) (*shared.UserSnapshot, error) {
	return r.users().SnapshotByEmail(ctx, email)
}

func (r *commandReads) UserByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	return r.users().SnapshotByID(ctx, id)
}

func (r *commandReads) BabysitterByUserID(ctx context.Context, userID uuid.UUID) (*shared.BabysitterSnapshot, error) {
	return r.babysitters().SnapshotByUserID(ctx, userID)
}

func (r *commandReads) ScheduleForBabysitter(ctx context.Context, userID uuid.UUID) (availability.Schedule, error) {
	return r.babysitters().ScheduleByUserID(ctx, userID)
}

func (r *commandReads) HasActiveBooking(ctx context.Context, babysitterID uuid.UUID, date time.Time, shift availability.Shift) (bool, error) {
	return r.services().HasActiveBooking(ctx, babysitterID, date, shift)
}

func (r *commandReads) ServiceByID(ctx context.Context, id uuid.UUID) (*service.Service, error) {
	return r.services().EntityByID(ctx, id)
}

func (r *commandReads) ReviewExistsForService(ctx context.Context, serviceID uuid.UUID) (bool, error) {
	return r.reviews().ExistsForService(ctx, serviceID)
}

func (r *commandReads) RatingsForBabysitter(ctx context.Context, babysitterID uuid.UUID) ([]int, error) {
	return r.reviews().RatingsForBabysitter(ctx, babysitterID)
}
