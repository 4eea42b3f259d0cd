package jwtx

import (
	"testing"
	"time"

	"github.com/gaiyadev/accounts/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func newTestSigner(t *testing.T, kid string) Signer {
	t.Helper()

	pemBytes, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)

	signer, err := NewSignerEdDSA(kid, pemBytes)
	require.NoError(t, err)
	require.NoError(t, signer.Validate())
	return signer
}

func TestSignAndVerifyRoundTrip(t *testing.T) {
	signer := newTestSigner(t, "test-key-1")

	keys := NewKeySet()
	require.NoError(t, keys.AddSigner(signer))

	verifier := NewVerifierEdDSA(keys, "accounts-test")

	claims := NewAccessClaims("42", "jane@example.com", time.Hour, "accounts-test", time.Now())
	token, err := signer.Sign(claims)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "42", got.Subject)
	require.Equal(t, "jane@example.com", got.Email)
	require.Equal(t, "accounts-test", got.Issuer)
	require.NotEmpty(t, got.ID, "jti should be populated")
}

func TestVerifyRejectsWrongIssuer(t *testing.T) {
	signer := newTestSigner(t, "test-key-2")

	keys := NewKeySet()
	require.NoError(t, keys.AddSigner(signer))

	verifier := NewVerifierEdDSA(keys, "expected-issuer")

	claims := NewAccessClaims("1", "a@b.com", time.Hour, "other-issuer", time.Now())
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrIssuer)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	signer := newTestSigner(t, "test-key-3")

	keys := NewKeySet()
	require.NoError(t, keys.AddSigner(signer))

	verifier := NewVerifierEdDSA(keys, "accounts-test")

	claims := NewAccessClaims("1", "a@b.com", time.Minute, "accounts-test",
		time.Now().Add(-2*time.Minute))
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
}

func TestVerifyRejectsUnknownKid(t *testing.T) {
	signer := newTestSigner(t, "known-key")
	stranger := newTestSigner(t, "stranger-key")

	keys := NewKeySet()
	require.NoError(t, keys.AddSigner(signer))

	verifier := NewVerifierEdDSA(keys, "accounts-test")

	claims := NewAccessClaims("1", "a@b.com", time.Hour, "accounts-test", time.Now())
	token, err := stranger.Sign(claims)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
}

func TestEphemeralKeyManager(t *testing.T) {
	t.Run("requires issuer", func(t *testing.T) {
		_, err := NewEphemeralKeyManager(KeyManagerOptions{})
		require.Error(t, err)
	})

	t.Run("defaults to three keys", func(t *testing.T) {
		km, err := NewEphemeralKeyManager(KeyManagerOptions{Issuer: "accounts-test"})
		require.NoError(t, err)
		require.Equal(t, 3, km.NumSigners())
		require.True(t, km.IsReady())
		require.Len(t, km.KeySet.PublicJWKS().Keys, 3)
	})

	t.Run("tokens from any signer verify", func(t *testing.T) {
		km, err := NewEphemeralKeyManager(KeyManagerOptions{Issuer: "accounts-test", NumKeys: 2})
		require.NoError(t, err)

		claims := NewAccessClaims("7", "x@y.com", time.Hour, "accounts-test", time.Now())
		for range 10 {
			token, err := km.GetSigner().Sign(claims)
			require.NoError(t, err)

			got, err := km.Verifier.Verify(token)
			require.NoError(t, err)
			require.Equal(t, "7", got.Subject)
		}
	})
}

func TestClaimsValidateExpiryWithLeeway(t *testing.T) {
	c := NewAccessClaims("1", "a@b.com", -time.Second, "iss", time.Now())
	require.ErrorIs(t, c.ValidateExpiry(), ErrExpired)
	require.NoError(t, c.ValidateExpiryWithLeeway(time.Minute))
}
