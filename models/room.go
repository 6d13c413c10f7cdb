package models

import (
	"gorm.io/gorm"
)

type Room struct {
	gorm.Model

	// RoomNumber is the operator-facing identity (101, 102, ...). Unique, never
	// reassigned during a run.
	RoomNumber int `json:"roomNumber" gorm:"column:room_number;uniqueIndex"`

	// Denormalized label kept alongside the FK so table displays don't need a join.
	Type       string `json:"type" gorm:"type:varchar(50)"`
	RoomTypeID *uint  `json:"roomTypeId,omitempty" gorm:"column:room_type_id"`

	PricePerNight float64 `json:"pricePerNight" gorm:"column:price_per_night"`
	Available     bool    `json:"available" gorm:"column:available"`

	RoomType RoomType `json:"-" gorm:"foreignKey:RoomTypeID"`
}

// StatusLabel returns the availability the way the rooms table displays it.
func (r Room) StatusLabel() string {
	if r.Available {
		return "Available"
	}
	return "Booked"
}
