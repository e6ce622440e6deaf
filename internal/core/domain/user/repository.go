package user

import (
	c "accountd/internal/core/domain/common"
	"context"
	"time"
)

type CreateUserInput struct {
	Email        c.Email
	Name         string
	PasswordHash PasswordHash
	CreatedAt    time.Time
}

type UpdateUserInput struct {
	Email        c.Email
	Name         string
	PasswordHash PasswordHash
}

type UserRepository interface {
	Create(ctx context.Context, input CreateUserInput) (User, error)
	GetByID(ctx context.Context, id ID) (User, error)
	GetByEmail(ctx context.Context, email c.Email) (User, error)
	Update(ctx context.Context, input UpdateUserInput) (User, error)
	SetPassword(ctx context.Context, id ID, password PasswordHash) error
	Delete(ctx context.Context, email c.Email) (User, error)
	List(ctx context.Context) ([]User, error)
}

type CreateSessionInput struct {
	UserID    ID
	Token     SessionToken
	CreatedAt time.Time
}

type SessionRepository interface {
	Create(ctx context.Context, input CreateSessionInput) error
	GetUserByToken(ctx context.Context, token SessionToken) (User, error)
	Delete(ctx context.Context, token SessionToken) (userID ID, err error)
}

type CreatePasswordResetTokenInput struct {
	UserID    ID
	Token     PasswordResetToken
	CreatedAt time.Time
}

// PasswordResetTokenRepository persists at most one outstanding token per
// user; Create reports ErrPasswordResetTokenAlreadyExists when one exists.
// Delete is conditional: it reports ErrPasswordResetTokenDoesNotExist when
// the token has already been consumed, so concurrent consumers resolve to
// exactly one success.
type PasswordResetTokenRepository interface {
	Create(ctx context.Context, input CreatePasswordResetTokenInput) error
	GetByUserID(ctx context.Context, userID ID) (PasswordResetToken, error)
	GetByToken(ctx context.Context, token PasswordResetToken) (userID ID, err error)
	Delete(ctx context.Context, token PasswordResetToken) error
}
