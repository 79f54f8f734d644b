package support

import "errors"

// Domain-specific errors for the support package.
var (
	ErrNoChat = errors.New("message has no chat to reply to")
)
