package app

import (
	"fmt"
	"log/slog"

	"github.com/gaiyadev/accounts/pkg/jwtx"
)

// InitKeys creates a new KeyManager with freshly generated Ed25519 keys.
//
// Keys are ephemeral: they exist only in memory, so all issued tokens become
// invalid when the service restarts. By default three signing keys are
// generated with random identifiers; use ACCOUNTS_NUM_KEYS to customize.
func InitKeys(cfg Config, logger *slog.Logger) (*jwtx.KeyManager, error) {
	keyManager, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{
		Issuer:  cfg.Issuer,
		NumKeys: cfg.NumKeys,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize ephemeral key manager: %w", err)
	}

	logger.Info("generated ephemeral signing keys",
		"num_keys", keyManager.NumSigners(),
		"issuer", cfg.Issuer,
	)
	logger.Warn("all existing tokens are now invalid due to key rotation on startup")

	return keyManager, nil
}
