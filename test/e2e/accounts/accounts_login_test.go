package accounts_test

import (
	"net/http"
	"testing"

	"github.com/gaiyadev/accounts/pkg/accountsdk"
	"github.com/gaiyadev/accounts/pkg/jwtx"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// TestLogin verifies a registered account can exchange its credentials for a
// bearer token.
func TestLogin(t *testing.T) {
	client := setupAccountsServer(t)
	userID := signUpTestUser(t, client)

	resp, err := client.Login(t.Context(), testEmail, testPassword)
	require.NoError(t, err)

	require.Equal(t, userID, resp.Data.ID)
	require.Equal(t, testEmail, resp.Data.Email)
	require.NotEmpty(t, resp.Token)
}

// TestLoginTokenHasOneDayExpiry decodes the issued token and checks the
// validity window is exactly one day.
func TestLoginTokenHasOneDayExpiry(t *testing.T) {
	client := setupAccountsServer(t)
	signUpTestUser(t, client)

	resp, err := client.Login(t.Context(), testEmail, testPassword)
	require.NoError(t, err)

	var claims jwtx.Claims
	_, _, err = jwt.NewParser().ParseUnverified(resp.Token, &claims)
	require.NoError(t, err)

	require.Equal(t, testIssuer, claims.Issuer)
	require.Equal(t, testEmail, claims.Email)
	require.NotNil(t, claims.IssuedAt)
	require.NotNil(t, claims.ExpiresAt)
	require.Equal(t,
		claims.IssuedAt.Add(jwtx.DefaultAccessTokenTTL),
		claims.ExpiresAt.Time,
	)
}

// TestLoginTwiceIssuesIndependentTokens verifies consecutive logins each get
// their own token and both stay usable.
func TestLoginTwiceIssuesIndependentTokens(t *testing.T) {
	client := setupAccountsServer(t)
	signUpTestUser(t, client)

	first, err := client.Login(t.Context(), testEmail, testPassword)
	require.NoError(t, err)
	second, err := client.Login(t.Context(), testEmail, testPassword)
	require.NoError(t, err)

	require.NotEqual(t, first.Token, second.Token)

	_, err = client.Me(t.Context(), first.Token)
	require.NoError(t, err)
	_, err = client.Me(t.Context(), second.Token)
	require.NoError(t, err)
}

// TestLoginUnknownEmail verifies an unregistered email is rejected with the
// generic credentials message.
func TestLoginUnknownEmail(t *testing.T) {
	client := setupAccountsServer(t)

	_, err := client.Login(t.Context(), "nobody@example.com", testPassword)

	var apiErr *accountsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	require.Equal(t, "Invalid credentials", apiErr.Message)
}

// TestLoginWrongPassword verifies a bad password gets a response identical
// to the unknown-email case, so accounts cannot be enumerated.
func TestLoginWrongPassword(t *testing.T) {
	client := setupAccountsServer(t)
	signUpTestUser(t, client)

	_, err := client.Login(t.Context(), testEmail, "wrong-password")

	var apiErr *accountsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	require.Equal(t, "Invalid credentials", apiErr.Message)

	// Same body as the unknown-email branch.
	_, err2 := client.Login(t.Context(), "nobody@example.com", testPassword)
	var apiErr2 *accountsdk.APIError
	require.ErrorAs(t, err2, &apiErr2)
	require.Equal(t, apiErr.StatusCode, apiErr2.StatusCode)
	require.Equal(t, apiErr.Message, apiErr2.Message)
}
