package accounts_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestMe verifies a logged-in account can fetch its full profile.
func TestMe(t *testing.T) {
	client := setupAccountsServer(t)
	userID := signUpTestUser(t, client)

	login, err := client.Login(t.Context(), testEmail, testPassword)
	require.NoError(t, err)

	me, err := client.Me(t.Context(), login.Token)
	require.NoError(t, err)

	require.Equal(t, userID, me.Data.ID)
	require.Equal(t, testFirstName, me.Data.FirstName)
	require.Equal(t, testLastName, me.Data.LastName)
	require.Equal(t, testEmail, me.Data.Email)
	require.NotEmpty(t, me.Data.CreatedAt)
}

// TestMeRequiresToken verifies the profile endpoint rejects requests without
// a bearer token.
func TestMeRequiresToken(t *testing.T) {
	client := setupAccountsServer(t)

	resp, err := client.HTTPClient.Get(client.BaseURL + "/v1/me")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Contains(t, resp.Header.Get("WWW-Authenticate"), "Bearer")
}

// TestMeRejectsGarbageToken verifies a token not signed by the service is
// rejected.
func TestMeRejectsGarbageToken(t *testing.T) {
	client := setupAccountsServer(t)

	_, err := client.Me(t.Context(), "not.a.token")
	require.Error(t, err)
}
