package model

import "time"

// PushSubscription holds the information for a browser push subscription.
type PushSubscription struct {
	Endpoint  string    `gorm:"primaryKey"`
	P256DH    string    `gorm:"column:p256dh;not null"`
	Auth      string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`

	// Devices the subscriber wants to hear about when they become available.
	Devices []*Device `gorm:"many2many:subscription_devices;constraint:OnDelete:CASCADE"`
}
