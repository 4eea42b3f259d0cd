package accounts_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gaiyadev/accounts/pkg/accountsdk"

	"github.com/stretchr/testify/require"
)

// TestLoginRateLimit verifies the strict per-IP limit on the login endpoint
// starts rejecting requests once the burst is exhausted.
func TestLoginRateLimit(t *testing.T) {
	client := setupAccountsServer(t)

	limited := false
	for i := 0; i < 10; i++ {
		_, err := client.Login(t.Context(), "nobody@example.com", "wrong")
		require.Error(t, err)

		var apiErr *accountsdk.APIError
		require.ErrorAs(t, err, &apiErr)

		if apiErr.StatusCode == http.StatusTooManyRequests {
			require.Equal(t, "Too many requests. Please try again later.", apiErr.Message)
			limited = true
			break
		}
		require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	}

	require.True(t, limited, "expected a 429 within 10 rapid login attempts")
}

// TestMeRateLimit verifies the moderate per-user limit on the profile
// endpoint kicks in once its burst is exhausted.
func TestMeRateLimit(t *testing.T) {
	client := setupAccountsServer(t)
	signUpTestUser(t, client)

	login, err := client.Login(t.Context(), testEmail, testPassword)
	require.NoError(t, err)

	limited := false
	for i := 0; i < 30; i++ {
		_, err := client.Me(t.Context(), login.Token)
		if err == nil {
			continue
		}

		var apiErr *accountsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
		require.Equal(t, "Too many requests. Please try again later.", apiErr.Message)
		limited = true
		break
	}

	require.True(t, limited, "expected a 429 within 30 rapid profile requests")
}

// TestSignUpRateLimitDoesNotAffectOtherEndpoints exhausts the sign-up limit
// and checks the health probes stay available.
func TestSignUpRateLimitDoesNotAffectOtherEndpoints(t *testing.T) {
	client := setupAccountsServer(t)

	for i := 0; i < 10; i++ {
		_, err := client.SignUp(t.Context(), accountsdk.SignUpRequest{})
		require.Error(t, err)

		var apiErr *accountsdk.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusTooManyRequests {
			break
		}
	}

	health, err := client.GetLiveness(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", health.Status)
}
