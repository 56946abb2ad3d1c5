package users

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"jobboard-backend/internal/notify"
	"jobboard-backend/internal/shared/auth"
	"jobboard-backend/internal/shared/util"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Service implements account and profile operations.
type Service struct {
	Repo          Repo
	Notifier      notify.Notifier
	TokenLifetime time.Duration
	ResetTokenTTL time.Duration
}

func NewService(repo Repo, notifier notify.Notifier) *Service {
	return &Service{
		Repo:          repo,
		Notifier:      notifier,
		TokenLifetime: 24 * time.Hour,
		ResetTokenTTL: time.Hour,
	}
}

// RegisterInput carries the registration payload.
type RegisterInput struct {
	Email          string
	Password       string
	FullName       string
	Role           string
	GraduationYear *int
	Company        string
}

// Register creates an account, emails a welcome message, and issues a JWT.
func (s *Service) Register(ctx context.Context, in RegisterInput) (User, string, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.FullName = strings.TrimSpace(in.FullName)
	in.Role = strings.ToLower(strings.TrimSpace(in.Role))

	if in.Email == "" || !strings.Contains(in.Email, "@") {
		return User{}, "", ErrInvalidInput
	}
	if in.FullName == "" {
		return User{}, "", ErrInvalidInput
	}
	if !SelfServiceRole(in.Role) {
		return User{}, "", ErrInvalidInput
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		if errors.Is(err, auth.ErrWeakPassword) {
			return User{}, "", ErrInvalidInput
		}
		return User{}, "", err
	}

	now := time.Now().UTC()
	user := User{
		ID:             uuid.NewString(),
		Email:          in.Email,
		PasswordHash:   hash,
		FullName:       in.FullName,
		Role:           in.Role,
		GraduationYear: in.GraduationYear,
		Company:        strings.TrimSpace(in.Company),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		return User{}, "", err
	}

	subject, body := notify.Welcome(user.FullName)
	notify.FireAndForget(s.Notifier, user.Email, subject, body)

	token, err := s.issueToken(user)
	if err != nil {
		return User{}, "", err
	}
	return user, token, nil
}

// Login verifies credentials and issues a JWT.
func (s *Service) Login(ctx context.Context, email, password string) (User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return User{}, "", ErrInvalidCredentials
	}
	user, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, "", ErrInvalidCredentials
		}
		return User{}, "", err
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return User{}, "", ErrInvalidCredentials
	}
	token, err := s.issueToken(user)
	if err != nil {
		return User{}, "", err
	}
	return user, token, nil
}

// GetProfile returns the user for the given ID.
func (s *Service) GetProfile(ctx context.Context, userID string) (User, error) {
	if strings.TrimSpace(userID) == "" {
		return User{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, userID)
}

// ProfileInput carries the mutable profile fields.
type ProfileInput struct {
	FullName       string
	GraduationYear *int
	Company        string
	Headline       string
}

// UpdateProfile applies the mutable fields and returns the fresh profile.
func (s *Service) UpdateProfile(ctx context.Context, userID string, in ProfileInput) (User, error) {
	in.FullName = strings.TrimSpace(in.FullName)
	if in.FullName == "" {
		return User{}, ErrInvalidInput
	}
	user := User{
		ID:             userID,
		FullName:       in.FullName,
		GraduationYear: in.GraduationYear,
		Company:        strings.TrimSpace(in.Company),
		Headline:       strings.TrimSpace(in.Headline),
	}
	if err := s.Repo.UpdateProfile(ctx, user); err != nil {
		return User{}, err
	}
	return s.Repo.GetByID(ctx, userID)
}

// RequestPasswordReset stores and emails a reset token when the email exists.
// It never reveals whether the account exists.
func (s *Service) RequestPasswordReset(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil
	}
	user, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return err
	}

	ttl := s.ResetTokenTTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	// Only the hash is stored; the plaintext goes out in the email.
	plain := randomToken()
	token := ResetToken{
		Token:     util.HashToken(plain),
		UserID:    user.ID,
		ExpiresAt: time.Now().UTC().Add(ttl),
	}
	if err := s.Repo.CreateResetToken(ctx, token); err != nil {
		return err
	}

	subject, body := notify.PasswordReset(plain)
	notify.FireAndForget(s.Notifier, user.Email, subject, body)
	return nil
}

// ConfirmPasswordReset consumes a token and sets the new password.
func (s *Service) ConfirmPasswordReset(ctx context.Context, token, newPassword string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrTokenInvalid
	}
	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		if errors.Is(err, auth.ErrWeakPassword) {
			return ErrInvalidInput
		}
		return err
	}
	userID, err := s.Repo.ConsumeResetToken(ctx, util.HashToken(token), time.Now().UTC())
	if err != nil {
		return err
	}
	return s.Repo.UpdatePassword(ctx, userID, hash)
}

func (s *Service) issueToken(user User) (string, error) {
	lifetime := s.TokenLifetime
	if lifetime <= 0 {
		lifetime = 24 * time.Hour
	}
	now := time.Now().UTC()
	return auth.SignJWT(auth.Claims{
		Sub:   user.ID,
		Email: user.Email,
		Role:  user.Role,
		Iat:   now.Unix(),
		Exp:   now.Add(lifetime).Unix(),
	})
}

func randomToken() string {
	var b [32]byte
	if _, err := rand.Read(b[:]); err != nil {
		return uuid.NewString()
	}
	return hex.EncodeToString(b[:])
}
