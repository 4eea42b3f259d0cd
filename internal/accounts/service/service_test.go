package service_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/gaiyadev/accounts/internal/accounts/service"
	"github.com/gaiyadev/accounts/internal/accounts/store"
	"github.com/gaiyadev/accounts/internal/accounts/store/drivers/sqlite"
	"github.com/gaiyadev/accounts/internal/accounts/validate"
	"github.com/gaiyadev/accounts/pkg/cryptox"
	"github.com/gaiyadev/accounts/pkg/jwtx"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "accounts-service-test-*")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "accounts.db"))
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	return st
}

func newTestKeyManager(t *testing.T, issuer string) *jwtx.KeyManager {
	t.Helper()

	km, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{
		Issuer:  issuer,
		NumKeys: 1,
	})
	require.NoError(t, err)
	return km
}

func signUpRequest() validate.SignUpRequest {
	return validate.SignUpRequest{
		FirstName:       "Grace",
		LastName:        "Hopper",
		Email:           "grace@example.com",
		Password:        "s3cret",
		ConfirmPassword: "s3cret",
	}
}

func TestStoreIsEmptyTracksRegistrations(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	empty, err := st.Users().IsEmpty(ctx)
	require.NoError(t, err)
	assert.True(t, empty)

	svc := &service.UserService{Store: st}
	_, err = svc.SignUp(ctx, signUpRequest())
	require.NoError(t, err)

	empty, err = st.Users().IsEmpty(ctx)
	require.NoError(t, err)
	assert.False(t, empty)
}

func TestUserService_SignUp(t *testing.T) {
	svc := &service.UserService{Store: newTestStore(t)}

	user, err := svc.SignUp(context.Background(), signUpRequest())
	require.NoError(t, err)

	assert.Positive(t, user.ID)
	assert.Equal(t, "Grace", user.FirstName)
	assert.Equal(t, "Hopper", user.LastName)
	assert.Equal(t, "grace@example.com", user.Email)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "s3cret", user.PasswordHash)
	require.NoError(t, cryptox.VerifyPassword("s3cret", user.PasswordHash))
}

func TestUserService_SignUpRejectsInvalidPayload(t *testing.T) {
	svc := &service.UserService{Store: newTestStore(t)}

	req := signUpRequest()
	req.Email = "nope"

	_, err := svc.SignUp(context.Background(), req)

	var errs validate.FieldErrors
	require.ErrorAs(t, err, &errs)
	require.Len(t, errs, 1)
	assert.Equal(t, "email", errs[0].Field)
	assert.Equal(t, "email address must be valid", errs[0].Message)
}

func TestUserService_SignUpRejectsDuplicateEmail(t *testing.T) {
	svc := &service.UserService{Store: newTestStore(t)}
	ctx := context.Background()

	_, err := svc.SignUp(ctx, signUpRequest())
	require.NoError(t, err)

	_, err = svc.SignUp(ctx, signUpRequest())

	var errs validate.FieldErrors
	require.ErrorAs(t, err, &errs)
	require.Len(t, errs, 1)
	assert.Equal(t, "email", errs[0].Field)
	assert.Equal(t, "unique", errs[0].Rule)
	assert.Equal(t, "email already in use", errs[0].Message)
}

func TestTokenService_Login(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	users := &service.UserService{Store: st}
	_, err := users.SignUp(ctx, signUpRequest())
	require.NoError(t, err)

	tokens := &service.TokenService{
		KeyManager: newTestKeyManager(t, "https://accounts.test"),
		Store:      st,
		Issuer:     "https://accounts.test",
	}

	issued, err := tokens.Login(ctx, "grace@example.com", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, issued.Token)
	assert.Equal(t, jwtx.DefaultAccessTokenTTL, issued.ExpiresIn)
	assert.Equal(t, "grace@example.com", issued.User.Email)

	claims, err := tokens.KeyManager.Verifier.Verify(issued.Token)
	require.NoError(t, err)
	assert.Equal(t, "grace@example.com", claims.Email)
	assert.Equal(t, "https://accounts.test", claims.Issuer)
	assert.WithinDuration(t,
		claims.IssuedAt.Add(jwtx.DefaultAccessTokenTTL),
		claims.ExpiresAt.Time, 0)
}

func TestTokenService_LoginUnknownEmail(t *testing.T) {
	tokens := &service.TokenService{
		KeyManager: newTestKeyManager(t, "https://accounts.test"),
		Store:      newTestStore(t),
		Issuer:     "https://accounts.test",
	}

	_, err := tokens.Login(context.Background(), "nobody@example.com", "whatever")
	require.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestTokenService_LoginWrongPassword(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	users := &service.UserService{Store: st}
	_, err := users.SignUp(ctx, signUpRequest())
	require.NoError(t, err)

	tokens := &service.TokenService{
		KeyManager: newTestKeyManager(t, "https://accounts.test"),
		Store:      st,
		Issuer:     "https://accounts.test",
	}

	_, err = tokens.Login(ctx, "grace@example.com", "wrong")
	require.ErrorIs(t, err, service.ErrInvalidCredentials)
}
