package queries

import (
	"context"
	"time"

	"hisitter/internal/domain/availability"
	"hisitter/internal/infra"
	"hisitter/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBabysitterNotFound = errs.Mark(errs.New("babysitter not found"), errs.ErrBabysitterNotFound)

type BabysitterReadStore interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*BabysitterView, error)
	// Availability listings are reputation-ordered, best first, with
	// user_id as the tie breaker.
	FindAvailableFirstPage(ctx context.Context, weekday int, shift string, limit int32) ([]*BabysitterListItem, error)
	FindAvailableKeyset(ctx context.Context, weekday int, shift string, lastReputation float64, lastID uuid.UUID, limit int32) ([]*BabysitterListItem, error)
}

type BabysitterQueries interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*BabysitterView, error)
	// ListAvailable returns babysitters whose weekly schedule covers the
	// weekday of the given date and the given shift.
	ListAvailable(ctx context.Context, date time.Time, shift availability.Shift, cursor *Cursor, limit int) ([]*BabysitterListItem, *Cursor, error)
}

type babysitterQueriesImpl struct {
	readStore BabysitterReadStore
}

func NewBabysitterQueries(readStore BabysitterReadStore) BabysitterQueries {
	return &babysitterQueriesImpl{readStore: readStore}
}

func (q *babysitterQueriesImpl) GetByUserID(ctx context.Context, userID uuid.UUID) (*BabysitterView, error) {
	view, err := q.readStore.FindByUserID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBabysitterNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *babysitterQueriesImpl) ListAvailable(ctx context.Context, date time.Time, shift availability.Shift, cursor *Cursor, limit int) ([]*BabysitterListItem, *Cursor, error) {
	if !shift.IsValid() {
		return nil, nil, availability.ErrInvalidShift
	}
	limit = ValidateLimit(limit)
	weekday := int(date.Weekday())

	var rows []*BabysitterListItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.readStore.FindAvailableFirstPage(ctx, weekday, shift.String(), int32(limit+1))
	} else {
		lastReputation, lastID, derr := DecodeReputationCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.readStore.FindAvailableKeyset(ctx, weekday, shift.String(), lastReputation, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeReputationCursor(last.Reputation, last.UserID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}
