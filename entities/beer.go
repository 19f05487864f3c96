package entities

import (
	"time"

	"github.com/google/uuid"
)

const (
	// ReminderLeadDays is how many days before expiry a beer becomes
	// eligible for reminders.
	ReminderLeadDays = 45

	// MaxReminderCount caps how many reminders are sent per beer.
	MaxReminderCount = 5
)

type Beer struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	BrandName     string    `json:"brand_name"`
	ProductName   string    `json:"product_name"`
	Type          string    `json:"type,omitempty"`
	ExpiryDate    time.Time `json:"expiry_date"`
	ReminderDate  time.Time `json:"reminder_date"`
	ImageURL      string    `json:"image_url,omitempty"`
	ReminderSent  bool      `json:"reminder_sent"`
	ReminderCount int       `json:"reminder_count"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}

// SetExpiryDate assigns the expiry date and derives the reminder date from it.
// The reminder date is never written anywhere else.
func (b *Beer) SetExpiryDate(expiryDate time.Time) {
	b.ExpiryDate = expiryDate
	b.ReminderDate = expiryDate.AddDate(0, 0, -ReminderLeadDays)
}
