package users

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"jobboard-backend/internal/shared/util"
)

// mailCapture hands the reset email body to the test. Sends happen on a
// background goroutine, so delivery is awaited through the channel.
type mailCapture struct {
	bodies chan string
}

func newMailCapture() *mailCapture {
	return &mailCapture{bodies: make(chan string, 4)}
}

func (n *mailCapture) Send(ctx context.Context, to, subject, htmlBody string) error {
	n.bodies <- htmlBody
	return nil
}

var tokenPattern = regexp.MustCompile(`<code>([0-9a-f]+)</code>`)

func (n *mailCapture) waitForToken(t *testing.T) string {
	t.Helper()
	for {
		select {
		case body := <-n.bodies:
			if m := tokenPattern.FindStringSubmatch(body); m != nil {
				return m[1]
			}
		case <-time.After(time.Second):
			t.Fatalf("no reset email arrived")
		}
	}
}

func TestRegisterAndLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	svc := NewService(NewMemoryRepo(), nil)

	user, token, err := svc.Register(context.Background(), RegisterInput{
		Email:    "Ada@Example.com",
		Password: "correcthorse",
		FullName: "Ada Lovelace",
		Role:     RoleSeeker,
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a token")
	}
	if user.Email != "ada@example.com" {
		t.Fatalf("expected lowercased email, got %q", user.Email)
	}

	_, loginToken, err := svc.Login(context.Background(), "ada@example.com", "correcthorse")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if loginToken == "" {
		t.Fatalf("expected a login token")
	}

	if _, _, err := svc.Login(context.Background(), "ada@example.com", "wrongpass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "nobody@example.com", "correcthorse"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	svc := NewService(NewMemoryRepo(), nil)

	cases := []struct {
		name string
		in   RegisterInput
	}{
		{"bad email", RegisterInput{Email: "not-an-email", Password: "correcthorse", FullName: "A", Role: RoleSeeker}},
		{"short password", RegisterInput{Email: "a@b.test", Password: "short", FullName: "A", Role: RoleSeeker}},
		{"blank name", RegisterInput{Email: "a@b.test", Password: "correcthorse", FullName: " ", Role: RoleSeeker}},
		{"admin role", RegisterInput{Email: "a@b.test", Password: "correcthorse", FullName: "A", Role: RoleAdmin}},
		{"unknown role", RegisterInput{Email: "a@b.test", Password: "correcthorse", FullName: "A", Role: "wizard"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := svc.Register(context.Background(), tc.in); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	svc := NewService(NewMemoryRepo(), nil)

	in := RegisterInput{Email: "a@b.test", Password: "correcthorse", FullName: "A", Role: RolePoster}
	if _, _, err := svc.Register(context.Background(), in); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, _, err := svc.Register(context.Background(), in); !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestPasswordResetRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	repo := NewMemoryRepo()
	mail := newMailCapture()
	svc := NewService(repo, mail)
	svc.ResetTokenTTL = time.Minute

	if _, _, err := svc.Register(context.Background(), RegisterInput{
		Email: "a@b.test", Password: "correcthorse", FullName: "A", Role: RoleSeeker,
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if err := svc.RequestPasswordReset(context.Background(), "a@b.test"); err != nil {
		t.Fatalf("RequestPasswordReset: %v", err)
	}
	token := mail.waitForToken(t)

	// Only the hash is at rest; the emailed plaintext is never stored.
	repo.mu.RLock()
	_, plaintextStored := repo.tokens[token]
	_, hashStored := repo.tokens[util.HashToken(token)]
	repo.mu.RUnlock()
	if plaintextStored || !hashStored {
		t.Fatalf("expected only the token hash to be stored")
	}

	if err := svc.ConfirmPasswordReset(context.Background(), token, "newpassword1"); err != nil {
		t.Fatalf("ConfirmPasswordReset: %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "a@b.test", "newpassword1"); err != nil {
		t.Fatalf("Login with new password: %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "a@b.test", "correcthorse"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected old password rejected, got %v", err)
	}

	// Tokens are single use.
	if err := svc.ConfirmPasswordReset(context.Background(), token, "anotherpass1"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid on reuse, got %v", err)
	}
}

func TestRequestPasswordResetHidesUnknownEmail(t *testing.T) {
	svc := NewService(NewMemoryRepo(), nil)

	if err := svc.RequestPasswordReset(context.Background(), "nobody@example.com"); err != nil {
		t.Fatalf("expected silent success for unknown email, got %v", err)
	}
}

func TestConfirmPasswordResetExpiredToken(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo, nil)

	if _, _, err := svc.Register(context.Background(), RegisterInput{
		Email: "a@b.test", Password: "correcthorse", FullName: "A", Role: RoleSeeker,
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	user, err := repo.GetByEmail(context.Background(), "a@b.test")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if err := repo.CreateResetToken(context.Background(), ResetToken{
		Token:     util.HashToken("stale-token"),
		UserID:    user.ID,
		ExpiresAt: time.Now().UTC().Add(-time.Minute),
	}); err != nil {
		t.Fatalf("CreateResetToken: %v", err)
	}

	if err := svc.ConfirmPasswordReset(context.Background(), "stale-token", "newpassword1"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for expired token, got %v", err)
	}
}
