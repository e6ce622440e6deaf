package user

import (
	c "accountd/internal/core/domain/common"
	"context"
	"crypto/md5"
	"fmt"
	"io"
	"strings"
	"sync"
)

type FakeUserRepository struct {
	Users       []User
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeUserRepository() *FakeUserRepository {
	return &FakeUserRepository{Users: make([]User, 0, 10)}
}

func (r *FakeUserRepository) Create(ctx context.Context, input CreateUserInput) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not create user %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	maxID := ID(0)
	for _, u := range r.Users {
		if u.Email == input.Email {
			return u, ErrEmailAlreadyExists
		}
		maxID = u.ID
	}
	u = User{
		ID:           maxID + 1,
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: input.PasswordHash,
		CreatedAt:    input.CreatedAt,
	}
	r.Users = append(r.Users, u)
	return u, nil
}

func (r *FakeUserRepository) GetByID(ctx context.Context, id ID) (u User, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, u := range r.Users {
		if u.ID == id {
			return u, nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) GetByEmail(ctx context.Context, email c.Email) (u User, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, u := range r.Users {
		if u.Email == email {
			return u, nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) Update(ctx context.Context, input UpdateUserInput) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not update user %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, u := range r.Users {
		if u.Email == input.Email {
			r.Users[ix].Name = input.Name
			r.Users[ix].PasswordHash = input.PasswordHash
			return r.Users[ix], nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) SetPassword(ctx context.Context, id ID, password PasswordHash) error {
	if r.ReturnError {
		return fmt.Errorf("could not set password for user %d", id)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, u := range r.Users {
		if u.ID == id {
			r.Users[ix].PasswordHash = password
			return nil
		}
	}
	return ErrUserDoesNotExist
}

func (r *FakeUserRepository) Delete(ctx context.Context, email c.Email) (u User, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, u := range r.Users {
		if u.Email == email {
			r.Users = append(r.Users[:ix], r.Users[ix+1:]...)
			return u, nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) List(ctx context.Context) ([]User, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	users := make([]User, len(r.Users))
	copy(users, r.Users)
	return users, nil
}

type FakeSessionRepository struct {
	Sessions    map[SessionToken]ID
	userRepo    *FakeUserRepository
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeSessionRepository(userRepo *FakeUserRepository) *FakeSessionRepository {
	return &FakeSessionRepository{
		Sessions: make(map[SessionToken]ID),
		userRepo: userRepo,
	}
}

func (r *FakeSessionRepository) Create(ctx context.Context, input CreateSessionInput) error {
	if r.ReturnError {
		return fmt.Errorf("could not create session for user %d", input.UserID)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.Sessions[input.Token] = input.UserID
	return nil
}

func (r *FakeSessionRepository) GetUserByToken(ctx context.Context, token SessionToken) (u User, err error) {
	r.lock.Lock()
	userID, ok := r.Sessions[token]
	r.lock.Unlock()
	if !ok {
		return u, ErrSessionDoesNotExist
	}
	return r.userRepo.GetByID(ctx, userID)
}

func (r *FakeSessionRepository) Delete(ctx context.Context, token SessionToken) (userID ID, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	userID, ok := r.Sessions[token]
	if !ok {
		return userID, ErrSessionDoesNotExist
	}
	delete(r.Sessions, token)
	return userID, nil
}

type FakePasswordResetTokenRepository struct {
	Tokens      map[PasswordResetToken]ID
	ReturnError bool
	lock        sync.Mutex
}

func NewFakePasswordResetTokenRepository() *FakePasswordResetTokenRepository {
	return &FakePasswordResetTokenRepository{Tokens: make(map[PasswordResetToken]ID)}
}

func (r *FakePasswordResetTokenRepository) Create(ctx context.Context, input CreatePasswordResetTokenInput) error {
	if r.ReturnError {
		return fmt.Errorf("could not create password reset token for user %d", input.UserID)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, userID := range r.Tokens {
		if userID == input.UserID {
			return ErrPasswordResetTokenAlreadyExists
		}
	}
	r.Tokens[input.Token] = input.UserID
	return nil
}

func (r *FakePasswordResetTokenRepository) GetByUserID(ctx context.Context, userID ID) (PasswordResetToken, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for token, id := range r.Tokens {
		if id == userID {
			return token, nil
		}
	}
	return "", ErrPasswordResetTokenDoesNotExist
}

func (r *FakePasswordResetTokenRepository) GetByToken(
	ctx context.Context,
	token PasswordResetToken,
) (userID ID, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	userID, ok := r.Tokens[token]
	if !ok {
		return userID, ErrPasswordResetTokenDoesNotExist
	}
	return userID, nil
}

func (r *FakePasswordResetTokenRepository) Delete(ctx context.Context, token PasswordResetToken) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	if _, ok := r.Tokens[token]; !ok {
		return ErrPasswordResetTokenDoesNotExist
	}
	delete(r.Tokens, token)
	return nil
}

type FakePasswordHasher struct{}

func NewFakePasswordHasher() *FakePasswordHasher {
	return &FakePasswordHasher{}
}

func (h *FakePasswordHasher) HashPassword(password RawPassword) (PasswordHash, error) {
	hash := md5.New()
	io.WriteString(hash, string(password))
	return PasswordHash(fmt.Sprintf("%x", hash.Sum(nil))), nil
}

func (h *FakePasswordHasher) ValidatePassword(password RawPassword, hash PasswordHash) bool {
	actualHash, err := h.HashPassword(password)
	if err != nil {
		return false
	}
	return actualHash == hash
}

type FakeSessionTokenGenerator struct {
	Token string
}

func NewFakeSessionTokenGenerator(token string) *FakeSessionTokenGenerator {
	return &FakeSessionTokenGenerator{Token: token}
}

func (g *FakeSessionTokenGenerator) GenerateSessionToken() SessionToken {
	return SessionToken(g.Token)
}

type FakePasswordResetTokenGenerator struct {
	Token string
}

func NewFakePasswordResetTokenGenerator(token string) *FakePasswordResetTokenGenerator {
	return &FakePasswordResetTokenGenerator{Token: token}
}

func (g *FakePasswordResetTokenGenerator) GeneratePasswordResetToken() PasswordResetToken {
	return PasswordResetToken(g.Token)
}

type FakeResetSentRecord struct {
	User  User
	Proof PasswordResetProof
}

type FakePasswordResetSender struct {
	Sent        []FakeResetSentRecord
	ReturnError bool
	lock        sync.Mutex
}

func NewFakePasswordResetSender() *FakePasswordResetSender {
	return &FakePasswordResetSender{}
}

func (s *FakePasswordResetSender) SendPasswordReset(ctx context.Context, u User, proof PasswordResetProof) error {
	if s.ReturnError {
		return fmt.Errorf("could not send password reset proof to user %d", u.ID)
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Sent = append(s.Sent, FakeResetSentRecord{User: u, Proof: proof})
	return nil
}

func (s *FakePasswordResetSender) SentCount() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return len(s.Sent)
}

func (s *FakePasswordResetSender) LastSent() FakeResetSentRecord {
	s.lock.Lock()
	defer s.lock.Unlock()
	l := len(s.Sent)
	if l == 0 {
		panic("sent count is 0")
	}
	return s.Sent[l-1]
}

// FakeProofCodec joins claims with "::", no signature. Tests that need real
// signing use the JWT implementation directly.
type FakeProofCodec struct{}

func NewFakeProofCodec() *FakeProofCodec {
	return &FakeProofCodec{}
}

func (fc *FakeProofCodec) Encode(claims PasswordResetClaims) (PasswordResetProof, error) {
	return PasswordResetProof(fmt.Sprintf("%s::%s", claims.Email, claims.Token)), nil
}

func (fc *FakeProofCodec) Decode(proof PasswordResetProof) (claims PasswordResetClaims, err error) {
	parts := strings.SplitN(string(proof), "::", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return claims, ErrInvalidPasswordResetProof
	}
	return PasswordResetClaims{
		Email: c.NewEmail(parts[0]),
		Token: PasswordResetToken(parts[1]),
	}, nil
}
