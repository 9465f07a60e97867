package usecase

import "parking-portal/internal/infra"

type NotificationType string

const (
	NotificationSuccess NotificationType = "success"
	NotificationError   NotificationType = "error"
	NotificationInfo    NotificationType = "info"
	NotificationWarning NotificationType = "warning"
)

// Notification is a transient, dismissible message for the initiating view.
type Notification struct {
	Type    NotificationType
	Message string
}

func errorNotification(err error) *Notification {
	return &Notification{Type: NotificationError, Message: infra.MessageOf(err)}
}
