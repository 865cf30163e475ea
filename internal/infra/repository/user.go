package repository

import (
	"context"
	"errors"
	"log/slog"

	"hisitter/internal/domain/user"
	"hisitter/internal/infra"
	"hisitter/internal/infra/db"
	"hisitter/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
)

type userRepository struct{}

func NewUserRepository() shared.UserRepository {
	return &userRepository{}
}

func (r *userRepository) Create(ctx context.Context, tx db.DBTX, u *user.User) (uuid.UUID, error) {
	const query = `
		INSERT INTO users (
			id, email, username, password_hash, role,
			first_name, last_name, phone_number, address, is_verified
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		u.ID(),
		u.Email().Value(),
		u.Username().Value(),
		u.PasswordHash(),
		u.Role().String(),
		u.FirstName(),
		u.LastName(),
		u.PhoneNumber().Value(),
		u.Address(),
		u.IsVerified(),
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation {
			return uuid.Nil, infra.WrapRepoErr(slog.Default(), infra.KindDuplicateKey, "email or username already taken", err)
		}
		return uuid.Nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to create user", err)
	}
	return id, nil
}

func (r *userRepository) MarkVerified(ctx context.Context, tx db.DBTX, userID uuid.UUID) error {
	const query = `
		UPDATE users
		SET is_verified = TRUE, updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query, userID)
	if err != nil {
		return infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to mark user verified", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "user not found", nil)
	}
	return nil
}

func (r *userRepository) UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error {
	const query = `
		UPDATE users
		SET last_login = now(), updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query, userID)
	if err != nil {
		return infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to update last login", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "user not found", nil)
	}
	return nil
}
