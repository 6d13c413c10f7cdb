package models

import (
	"time"

	"gorm.io/gorm"
)

// RoomType holds the seeded room categories. There is no catalog management;
// rows are created once at startup.
type RoomType struct {
	ID uint `gorm:"primaryKey" json:"id"`

	TypeName    string `json:"typeName"`
	Description string `json:"description"`
	MaxGuests   uint   `json:"max_guests"`

	CreatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
