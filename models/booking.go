package models

import (
	"time"

	"gorm.io/gorm"
)

// Booking is one completed transaction: a customer holding one room for a number
// of nights. Once created it never goes away and the room never becomes available
// again within the run (no checkout/cancel path).
type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	ReferenceCode string `gorm:"column:reference_code;size:64" json:"reference_code,omitempty"`

	RoomID uint `gorm:"column:room_id;index" json:"roomId"`

	CustomerName string    `gorm:"column:customer_name" json:"customerName"`
	Nights       int       `gorm:"column:nights" json:"nights"`
	CheckInDate  time.Time `gorm:"column:check_in_date" json:"check_in_date"`

	Room Room `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
}

// CheckOutDate is derived, not stored: check-in plus the booked nights.
func (b Booking) CheckOutDate() time.Time {
	return b.CheckInDate.AddDate(0, 0, b.Nights)
}
