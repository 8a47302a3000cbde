package repository

import "context"

// NotificationRepository publishes a message to a notification topic.
type NotificationRepository interface {
	Publish(ctx context.Context, topicARN, subject, message string) (string, error)
}
