package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"microfeed/pkg/cryptox"
)

// loadTokenSecret resolves the HMAC secret used to sign session tokens.
// Precedence: FEED_TOKEN_SECRET, then the secret file, then a freshly
// generated secret persisted to the file so tokens survive restarts.
func loadTokenSecret(cfg Config) (string, error) {
	if cfg.TokenSecret != "" {
		return cfg.TokenSecret, nil
	}

	file := filepath.Clean(cfg.TokenSecretFile)
	if err := os.MkdirAll(filepath.Dir(file), 0750); err != nil {
		return "", fmt.Errorf("creating secret directory: %w", err)
	}

	data, err := os.ReadFile(file)
	if err == nil {
		secret := strings.TrimSpace(string(data))
		if secret == "" {
			return "", fmt.Errorf("secret file %s is empty", file)
		}
		return secret, nil
	}
	if !os.IsNotExist(err) {
		return "", fmt.Errorf("reading secret file: %w", err)
	}

	secret, err := cryptox.GenerateSecret(cryptox.SecretSize512)
	if err != nil {
		return "", fmt.Errorf("generating token secret: %w", err)
	}
	if err := os.WriteFile(file, []byte(secret), 0600); err != nil {
		return "", fmt.Errorf("persisting token secret: %w", err)
	}

	return secret, nil
}
