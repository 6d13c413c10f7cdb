package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"room-booking/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrRoomUnavailable: no room with that number is open for booking (unknown
	// number, or already booked).
	ErrRoomUnavailable = errors.New("room not available or invalid room number")

	// ErrInvalidBookingIndex: bill lookup outside the range of completed bookings.
	ErrInvalidBookingIndex = errors.New("invalid booking index")

	ErrInvalidNights        = errors.New("nights must be at least 1")
	ErrCustomerNameRequired = errors.New("customer name is required")
)

// BookingSummary is one row of the operator's booking list.
type BookingSummary struct {
	Position      int    // 1-based, insertion order
	CustomerName  string
	ReferenceCode string
}

// BookingService เป็น wrapper รอบ *gorm.DB เพื่อแยก logic ของ booking
type BookingService struct {
	DB *gorm.DB

	// MaxBookings is the per-run cap consulted by CanAcceptBooking. BookRoom itself
	// does not enforce it; the shell decides whether to honor the policy.
	MaxBookings int
}

func NewBookingService(db *gorm.DB, maxBookings int) *BookingService {
	return &BookingService{DB: db, MaxBookings: maxBookings}
}

// BookRoom books the room with the given number for customerName, capturing the
// current date as check-in. The availability check and flip run in one
// transaction, so two simultaneous attempts can never claim the same room.
// Either the room is flipped and the booking saved, or nothing changes.
func (s *BookingService) BookRoom(roomNumber int, customerName string, nights int) (*models.Booking, error) {
	if nights < 1 {
		return nil, ErrInvalidNights
	}
	if strings.TrimSpace(customerName) == "" {
		return nil, ErrCustomerNameRequired
	}

	var booking models.Booking

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.Where("room_number = ? AND available = ?", roomNumber, true).First(&room).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomUnavailable
			}
			return fmt.Errorf("failed to find room: %w", err)
		}

		// Check-and-set in a single statement; RowsAffected guards against a
		// concurrent booking that claimed the room between the read and the write.
		res := tx.Model(&models.Room{}).
			Where("id = ? AND available = ?", room.ID, true).
			Update("available", false)
		if res.Error != nil {
			return fmt.Errorf("failed to flip room availability: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrRoomUnavailable
		}
		room.Available = false

		booking = models.Booking{
			ReferenceCode: uuid.NewString(),
			RoomID:        room.ID,
			CustomerName:  strings.TrimSpace(customerName),
			Nights:        nights,
			CheckInDate:   time.Now(),
			Room:          room,
		}
		if err := tx.Omit(clause.Associations).Create(&booking).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &booking, nil
}

// Count returns the number of completed bookings this run.
func (s *BookingService) Count() (int, error) {
	var count int64
	err := s.DB.Model(&models.Booking{}).Count(&count).Error
	return int(count), err
}

// CanAcceptBooking is the booking policy: at least one open room and fewer than
// MaxBookings completed bookings. Callers check it before BookRoom; bypassing it
// is allowed and BookRoom will still succeed.
func (s *BookingService) CanAcceptBooking() (bool, error) {
	count, err := s.Count()
	if err != nil {
		return false, err
	}
	if count >= s.MaxBookings {
		return false, nil
	}

	var available int64
	if err := s.DB.Model(&models.Room{}).Where("available = ?", true).Count(&available).Error; err != nil {
		return false, err
	}
	return available > 0, nil
}

// GetByIndex returns the index-th booking (0-based, insertion order) with its
// room loaded. Out-of-range indexes report ErrInvalidBookingIndex.
func (s *BookingService) GetByIndex(index int) (*models.Booking, error) {
	if index < 0 {
		return nil, ErrInvalidBookingIndex
	}

	var booking models.Booking
	err := s.DB.Preload("Room").Order("id ASC").Offset(index).First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidBookingIndex
		}
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}
	return &booking, nil
}

// Summaries lists every booking as (1-based position, customer name, reference
// code) for operator selection.
func (s *BookingService) Summaries() ([]BookingSummary, error) {
	var bookings []models.Booking
	if err := s.DB.Order("id ASC").Find(&bookings).Error; err != nil {
		return nil, err
	}

	out := make([]BookingSummary, 0, len(bookings))
	for i, b := range bookings {
		out = append(out, BookingSummary{
			Position:      i + 1,
			CustomerName:  b.CustomerName,
			ReferenceCode: b.ReferenceCode,
		})
	}
	return out, nil
}
