package webhook

import "errors"

var (
	ErrTokenMismatch  = errors.New("webhook path token does not match bot token")
	ErrSecretMismatch = errors.New("webhook secret token header mismatch")
)
