package service

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/gaiyadev/accounts/internal/accounts/domain"
	"github.com/gaiyadev/accounts/internal/accounts/store"
	"github.com/gaiyadev/accounts/pkg/cryptox"
	"github.com/gaiyadev/accounts/pkg/jwtx"
	"github.com/gaiyadev/accounts/pkg/slogx"
)

var (
	// ErrInvalidCredentials covers both unknown-email and wrong-password so
	// responses cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid_credentials")
)

// TokenService authenticates credentials and issues access tokens.
type TokenService struct {
	KeyManager *jwtx.KeyManager
	Store      store.Store
	Issuer     string
	AccessTTL  time.Duration
}

// Login verifies an email/password pair and, on success, signs a bearer
// token valid for AccessTTL. Both failure branches return the same
// ErrInvalidCredentials.
func (s *TokenService) Login(ctx context.Context, email, password string) (domain.IssuedToken, error) {
	l := slogx.FromContext(ctx)
	email = strings.TrimSpace(email)

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			l.Info("login rejected: unknown email")
			return domain.IssuedToken{}, ErrInvalidCredentials
		}
		return domain.IssuedToken{}, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrMismatch) {
			l.Info("login rejected: bad password", slog.Int64("user_id", user.ID))
			return domain.IssuedToken{}, ErrInvalidCredentials
		}
		return domain.IssuedToken{}, err
	}

	token, err := s.sign(user, time.Now())
	if err != nil {
		return domain.IssuedToken{}, err
	}

	return domain.IssuedToken{
		Token:     token,
		ExpiresIn: s.accessTTL(),
		User:      user,
	}, nil
}

func (s *TokenService) sign(user domain.User, now time.Time) (string, error) {
	claims := jwtx.NewAccessClaims(
		strconv.FormatInt(user.ID, 10),
		user.Email,
		s.accessTTL(),
		s.Issuer,
		now,
	)
	return s.KeyManager.GetSigner().Sign(claims)
}

func (s *TokenService) accessTTL() time.Duration {
	if s.AccessTTL > 0 {
		return s.AccessTTL
	}
	return jwtx.DefaultAccessTokenTTL
}
