package queries

import (
	"context"
	"time"

	"hisitter/internal/infra"
	"hisitter/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrReviewNotFound = errs.Mark(errs.New("review not found"), errs.ErrReviewNotFound)

type ReviewReadStore interface {
	FindByServiceID(ctx context.Context, serviceID uuid.UUID) (*ReviewView, error)
	FindByBabysitterFirstPage(ctx context.Context, babysitterID uuid.UUID, limit int32) ([]*ReviewView, error)
	FindByBabysitterKeyset(ctx context.Context, babysitterID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*ReviewView, error)
}

type ReviewQueries interface {
	GetByService(ctx context.Context, serviceID uuid.UUID) (*ReviewView, error)
	ListByBabysitter(ctx context.Context, babysitterID uuid.UUID, cursor *Cursor, limit int) ([]*ReviewView, *Cursor, error)
}

type reviewQueriesImpl struct {
	readStore ReviewReadStore
}

func NewReviewQueries(readStore ReviewReadStore) ReviewQueries {
	return &reviewQueriesImpl{readStore: readStore}
}

func (q *reviewQueriesImpl) GetByService(ctx context.Context, serviceID uuid.UUID) (*ReviewView, error) {
	view, err := q.readStore.FindByServiceID(ctx, serviceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *reviewQueriesImpl) ListByBabysitter(ctx context.Context, babysitterID uuid.UUID, cursor *Cursor, limit int) ([]*ReviewView, *Cursor, error) {
	limit = ValidateLimit(limit)

	var rows []*ReviewView
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.readStore.FindByBabysitterFirstPage(ctx, babysitterID, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.readStore.FindByBabysitterKeyset(ctx, babysitterID, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}
