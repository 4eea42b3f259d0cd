package accounts_test

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestJWKSEndpoint verifies the published key set contains usable Ed25519
// verification keys.
func TestJWKSEndpoint(t *testing.T) {
	client := setupAccountsServer(t)

	jwks, err := client.GetJWKS(t.Context())
	require.NoError(t, err)
	require.NotNil(t, jwks)
	require.NotEmpty(t, jwks.Keys, "JWKS should contain at least one key")

	for _, key := range jwks.Keys {
		require.Equal(t, "OKP", key.Kty)
		require.Equal(t, "Ed25519", key.Crv)
		require.Equal(t, "EdDSA", key.Alg)
		require.NotEmpty(t, key.Kid)
		require.NotEmpty(t, key.X)
	}
}
