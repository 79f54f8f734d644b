package support

import (
	"context"
)

// UseCase defines the business logic interface for the support desk domain.
type UseCase interface {
	// HandleMessage classifies one inbound text message and delivers the replies it produces.
	HandleMessage(ctx context.Context, input HandleMessageInput) (HandleMessageOutput, error)
}
