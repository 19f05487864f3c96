package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Username    string    `gorm:"uniqueIndex" json:"username"`
	Email       string    `gorm:"uniqueIndex" json:"email"`
	Password    string    `json:"-"`
	DeviceToken string    `json:"device_token,omitempty"`

	Beers []*Beer `gorm:"foreignKey:UserID"`
	Timestamp
}
