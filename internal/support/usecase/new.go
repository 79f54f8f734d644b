package usecase

import (
	"service-desk-bot/internal/messenger"
	"service-desk-bot/internal/reply"
	"service-desk-bot/internal/router"
	"service-desk-bot/internal/support"
	pkgLog "service-desk-bot/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	router   router.Router
	composer *reply.Composer
	msg      messenger.Messenger
}

var _ support.UseCase = (*implUseCase)(nil)

// New creates a new support UseCase instance.
func New(
	l pkgLog.Logger,
	router router.Router,
	composer *reply.Composer,
	msg messenger.Messenger,
) support.UseCase {
	return &implUseCase{
		l:        l,
		router:   router,
		composer: composer,
		msg:      msg,
	}
}
