package services

import (
	"room-booking/models"

	"gorm.io/gorm"
)

// RoomService เป็น wrapper รอบ *gorm.DB สำหรับ query ห้องพัก
type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

// GetAll returns the full inventory in seed order with live availability.
func (s *RoomService) GetAll() ([]models.Room, error) {
	var rooms []models.Room
	err := s.DB.Order("id ASC").Find(&rooms).Error
	return rooms, err
}

// GetAvailable returns only the rooms still open for booking, in seed order.
func (s *RoomService) GetAvailable() ([]models.Room, error) {
	var rooms []models.Room
	err := s.DB.Where("available = ?", true).Order("id ASC").Find(&rooms).Error
	return rooms, err
}

// HasAvailable reports whether at least one room can still be booked.
func (s *RoomService) HasAvailable() (bool, error) {
	var count int64
	err := s.DB.Model(&models.Room{}).Where("available = ?", true).Count(&count).Error
	return count > 0, err
}

// GetByNumber looks a room up by its operator-facing number.
func (s *RoomService) GetByNumber(roomNumber int) (models.Room, error) {
	var room models.Room
	err := s.DB.Where("room_number = ?", roomNumber).First(&room).Error
	return room, err
}
