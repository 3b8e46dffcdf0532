package ports

import "context"

// Notification is a message queued for out-of-band delivery (e.g. the
// welcome mail sent after signup).
type Notification struct {
	Recipient string
	Subject   string
	Body      string
}

// Notifier delivers a single notification. Implementations must be safe for
// concurrent use by multiple dispatcher workers.
type Notifier interface {
	Send(ctx context.Context, n Notification) error
}

// NotificationQueue accepts notifications for asynchronous delivery.
type NotificationQueue interface {
	Enqueue(n Notification)
}
