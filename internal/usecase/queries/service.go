package queries

import (
	"context"
	"time"

	"hisitter/internal/domain/user"
	"hisitter/internal/infra"
	"hisitter/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrServiceNotFound = errs.Mark(errs.New("service not found"), errs.ErrServiceNotFound)
	ErrServiceAccess   = errs.Mark(errs.New("service access denied"), errs.ErrPermissionDenied)
)

type ServiceReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ServiceView, error)
	FindByParticipantFirstPage(ctx context.Context, participantID uuid.UUID, limit int32) ([]*ServiceListItem, error)
	FindByParticipantKeyset(ctx context.Context, participantID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*ServiceListItem, error)
}

type ServiceQueries interface {
	// GetByID is participant-scoped: only the client or babysitter of
	// the engagement may see its detail.
	GetByID(ctx context.Context, id uuid.UUID, actor user.Actor) (*ServiceView, error)
	ListForActor(ctx context.Context, actor user.Actor, cursor *Cursor, limit int) ([]*ServiceListItem, *Cursor, error)
}

type serviceQueriesImpl struct {
	readStore ServiceReadStore
}

func NewServiceQueries(readStore ServiceReadStore) ServiceQueries {
	return &serviceQueriesImpl{readStore: readStore}
}

func (q *serviceQueriesImpl) GetByID(ctx context.Context, id uuid.UUID, actor user.Actor) (*ServiceView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	if view.ClientID != actor.ID && view.BabysitterID != actor.ID {
		return nil, ErrServiceAccess
	}
	return view, nil
}

func (q *serviceQueriesImpl) ListForActor(ctx context.Context, actor user.Actor, cursor *Cursor, limit int) ([]*ServiceListItem, *Cursor, error) {
	limit = ValidateLimit(limit)

	var rows []*ServiceListItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.readStore.FindByParticipantFirstPage(ctx, actor.ID, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.readStore.FindByParticipantKeyset(ctx, actor.ID, lastCreatedAt, lastID, int32(limit+1))
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
