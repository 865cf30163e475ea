package readstore

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"hisitter/internal/infra"
	"hisitter/internal/infra/db"
	"hisitter/internal/pkg/pgconv"
	"hisitter/internal/usecase/queries"
	"hisitter/internal/usecase/shared"
)

type UserReadStore struct {
	dbtx db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{dbtx: dbtx}
}

const userColumns = `
	id, email, username, password_hash, role,
	first_name, last_name, is_verified, last_login`

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	view, _, err := r.findOne(ctx, `WHERE id = $1`, id)
	return view, err
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	return r.findOne(ctx, `WHERE email = $1`, email)
}

func (r *UserReadStore) SnapshotByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	view, hash, err := r.findOne(ctx, `WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	return toUserSnapshot(view, hash), nil
}

func (r *UserReadStore) SnapshotByEmail(ctx context.Context, email string) (*shared.UserSnapshot, error) {
	view, hash, err := r.findOne(ctx, `WHERE email = $1`, email)
	if err != nil {
		return nil, err
	}
	return toUserSnapshot(view, hash), nil
}

func (r *UserReadStore) findOne(ctx context.Context, where string, arg any) (*queries.AuthorizedUserView, string, error) {
	query := `SELECT ` + userColumns + ` FROM users ` + where

	var view queries.AuthorizedUserView
	var passwordHash string
	var lastLogin pgtype.Timestamptz

	err := r.dbtx.QueryRow(ctx, query, arg).Scan(
		&view.ID,
		&view.Email,
		&view.Username,
		&passwordHash,
		&view.Role,
		&view.FirstName,
		&view.LastName,
		&view.IsVerified,
		&lastLogin,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "user not found", err)
		}
		return nil, "", infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to find user", err)
	}

	view.LastLogin = pgconv.TimePtrFromPgtype(lastLogin)
	return &view, passwordHash, nil
}

func toUserSnapshot(view *queries.AuthorizedUserView, passwordHash string) *shared.UserSnapshot {
	return &shared.UserSnapshot{
		ID:           view.ID,
		Email:        view.Email,
		Username:     view.Username,
		PasswordHash: passwordHash,
		Role:         view.Role,
		IsVerified:   view.IsVerified,
		LastLogin:    view.LastLogin,
	}
}
