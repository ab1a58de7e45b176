package ports

import (
	"context"

	"github.com/codewithemma/account-microservice/internal/core/domain"
)

// Notifier delivers one notification payload to the external notification
// service.
type Notifier interface {
	Post(ctx context.Context, req domain.EmailRequest) error
}

// NotificationDispatcher schedules notifications off the request path.
// Enqueue never blocks and never reports failure to the caller; delivery
// outcomes are observed only through logs and metrics.
type NotificationDispatcher interface {
	Enqueue(req domain.EmailRequest)
}
