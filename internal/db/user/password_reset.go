package user

import (
	"accountd/internal/core/domain/user"
	"accountd/internal/db"
	"context"
	"errors"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
)

const resetTokenUserConstraintName = "password_reset_token_user_id_idx"

type PgxPasswordResetTokenRepository struct {
	db db.Querier
}

func NewPgxPasswordResetTokenRepository(db db.Querier) *PgxPasswordResetTokenRepository {
	if db == nil {
		panic("Argument db must not be nil.")
	}
	return &PgxPasswordResetTokenRepository{db: db}
}

func (r *PgxPasswordResetTokenRepository) Create(ctx context.Context, input user.CreatePasswordResetTokenInput) error {
	_, err := r.db.Exec(
		ctx,
		`INSERT INTO password_reset_token (user_id, token, created_at) VALUES ($1, $2, $3)`,
		int64(input.UserID),
		string(input.Token),
		input.CreatedAt,
	)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == db.UniqueConstraintErrCode && pgErr.ConstraintName == resetTokenUserConstraintName {
			return user.ErrPasswordResetTokenAlreadyExists
		}
	}
	return err
}

func (r *PgxPasswordResetTokenRepository) GetByUserID(
	ctx context.Context,
	userID user.ID,
) (token user.PasswordResetToken, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT token FROM password_reset_token WHERE user_id = $1`,
		int64(userID),
	)
	var rawToken string
	err = row.Scan(&rawToken)
	if errors.Is(err, pgx.ErrNoRows) {
		return token, user.ErrPasswordResetTokenDoesNotExist
	}
	if err != nil {
		return token, err
	}
	return user.PasswordResetToken(rawToken), nil
}

func (r *PgxPasswordResetTokenRepository) GetByToken(
	ctx context.Context,
	token user.PasswordResetToken,
) (userID user.ID, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT user_id FROM password_reset_token WHERE token = $1`,
		string(token),
	)
	var id int64
	err = row.Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return userID, user.ErrPasswordResetTokenDoesNotExist
	}
	if err != nil {
		return userID, err
	}
	return user.ID(id), nil
}

// Delete is the consumption step: reporting that the row is already gone
// lets concurrent resets with the same token resolve to a single success.
func (r *PgxPasswordResetTokenRepository) Delete(ctx context.Context, token user.PasswordResetToken) error {
	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM password_reset_token WHERE token = $1`,
		string(token),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrPasswordResetTokenDoesNotExist
	}
	return nil
}
