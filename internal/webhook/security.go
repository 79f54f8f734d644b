package webhook

import (
	"crypto/subtle"

	"service-desk-bot/config"
)

// SecurityValidator authenticates inbound webhook requests.
type SecurityValidator struct {
	config SecurityConfig
}

func NewSecurityValidator(cfg SecurityConfig) *SecurityValidator {
	if cfg.Mode == "" {
		cfg.Mode = config.VerifyBoth
	}
	return &SecurityValidator{config: cfg}
}

// Verify checks the path token and the secret header according to the configured mode.
// The path token is checked first.
func (v *SecurityValidator) Verify(pathToken, secretHeader string) error {
	if v.checksPath() && !equal(pathToken, v.config.BotToken) {
		return ErrTokenMismatch
	}
	if v.checksSecret() && !equal(secretHeader, v.config.Secret) {
		return ErrSecretMismatch
	}
	return nil
}

func (v *SecurityValidator) checksPath() bool {
	return v.config.Mode == config.VerifyPathToken || v.config.Mode == config.VerifyBoth
}

func (v *SecurityValidator) checksSecret() bool {
	if v.config.Secret == "" {
		return false
	}
	return v.config.Mode == config.VerifyHeaderSecret || v.config.Mode == config.VerifyBoth
}

func equal(got, want string) bool {
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}
