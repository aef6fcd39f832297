package models

import (
	"time"

	"github.com/google/uuid"
)

// NotificationVariant selects how a notification is displayed
type NotificationVariant string

const (
	VariantDefault     NotificationVariant = "default"
	VariantDestructive NotificationVariant = "destructive"
)

// Notification is a one-shot user-visible message (a toast)
type Notification struct {
	ID          string              `json:"id"`
	Variant     NotificationVariant `json:"variant"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Time        time.Time           `json:"time"`
}

// NewNotification creates a notification stamped with a fresh id
func NewNotification(variant NotificationVariant, title, description string) Notification {
	return Notification{
		ID:          uuid.New().String(),
		Variant:     variant,
		Title:       title,
		Description: description,
		Time:        time.Now(),
	}
}
