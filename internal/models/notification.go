package models

import "time"

type Notification struct {
	ID          uint `gorm:"primaryKey" json:"id"`
	RecipientID uint `gorm:"index;not null" json:"recipient_id"`

	Message string `gorm:"size:255;not null" json:"message"`
	Link    string `gorm:"size:200" json:"link"`
	Read    bool   `gorm:"default:false" json:"read"`

	CreatedAt time.Time `json:"created_at"`
}
