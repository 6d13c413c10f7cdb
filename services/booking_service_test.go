package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"room-booking/config"
)

func TestBookingService_BookRoom_Success(t *testing.T) {
	db := setupTestDB(t)
	bookings := NewBookingService(db, config.DefaultMaxBookings)
	rooms := NewRoomService(db)

	before := time.Now()
	booking, err := bookings.BookRoom(101, "Asha", 3)
	require.NoError(t, err)
	require.NotNil(t, booking)

	assert.Equal(t, "Asha", booking.CustomerName)
	assert.Equal(t, 3, booking.Nights)
	assert.Equal(t, 101, booking.Room.RoomNumber)
	assert.NotEmpty(t, booking.ReferenceCode)
	assert.False(t, booking.CheckInDate.Before(before.Add(-time.Second)))
	assert.False(t, booking.CheckInDate.After(time.Now().Add(time.Second)))

	room, err := rooms.GetByNumber(101)
	require.NoError(t, err)
	assert.False(t, room.Available, "booked room must be flagged unavailable")

	count, err := bookings.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestBookingService_BookRoom_AlreadyBooked(t *testing.T) {
	db := setupTestDB(t)
	bookings := NewBookingService(db, config.DefaultMaxBookings)
	rooms := NewRoomService(db)

	_, err := bookings.BookRoom(101, "Asha", 3)
	require.NoError(t, err)

	_, err = bookings.BookRoom(101, "Bob", 2)
	assert.ErrorIs(t, err, ErrRoomUnavailable)

	// Nothing changed: same count, room fields untouched.
	count, err := bookings.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	room, err := rooms.GetByNumber(101)
	require.NoError(t, err)
	assert.Equal(t, "Double bed", room.Type)
	assert.Equal(t, 1000.0, room.PricePerNight)
	assert.False(t, room.Available)
}

func TestBookingService_BookRoom_UnknownRoom(t *testing.T) {
	db := setupTestDB(t)
	bookings := NewBookingService(db, config.DefaultMaxBookings)

	_, err := bookings.BookRoom(999, "Carl", 1)
	assert.ErrorIs(t, err, ErrRoomUnavailable)

	count, err := bookings.Count()
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestBookingService_BookRoom_InputHardening(t *testing.T) {
	testCases := []struct {
		name         string
		customerName string
		nights       int
		wantErr      error
	}{
		{"zero nights", "Asha", 0, ErrInvalidNights},
		{"negative nights", "Asha", -3, ErrInvalidNights},
		{"blank name", "", 2, ErrCustomerNameRequired},
		{"whitespace name", "   ", 2, ErrCustomerNameRequired},
	}

	db := setupTestDB(t)
	bookings := NewBookingService(db, config.DefaultMaxBookings)

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := bookings.BookRoom(101, tt.customerName, tt.nights)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	count, err := bookings.Count()
	require.NoError(t, err)
	assert.Equal(t, 0, count, "rejected attempts must not create bookings")
}

// The cap is policy, not a ledger rule: BookRoom keeps accepting bookings past
// the cap, while CanAcceptBooking turns false exactly at it.
func TestBookingService_CapNotEnforcedByBookRoom(t *testing.T) {
	db := setupTestDB(t)
	bookings := NewBookingService(db, config.DefaultMaxBookings)

	for i := 0; i < 5; i++ {
		_, err := bookings.BookRoom(101+i, "Guest", 1)
		require.NoError(t, err)
	}

	ok, err := bookings.CanAcceptBooking()
	require.NoError(t, err)
	assert.False(t, ok, "policy refuses a sixth booking")

	// Raw ledger behavior: a caller bypassing the policy still succeeds.
	sixth, err := bookings.BookRoom(106, "Walk-in", 1)
	require.NoError(t, err)
	assert.Equal(t, 106, sixth.Room.RoomNumber)

	count, err := bookings.Count()
	require.NoError(t, err)
	assert.Equal(t, 6, count)
}

func TestBookingService_CanAcceptBooking(t *testing.T) {
	db := setupTestDB(t)
	bookings := NewBookingService(db, 20)

	ok, err := bookings.CanAcceptBooking()
	require.NoError(t, err)
	assert.True(t, ok)

	for number := 101; number <= 110; number++ {
		_, err := bookings.BookRoom(number, "Guest", 1)
		require.NoError(t, err)
	}

	// Cap not reached, but no rooms left either.
	ok, err = bookings.CanAcceptBooking()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBookingService_GetByIndex(t *testing.T) {
	db := setupTestDB(t)
	bookings := NewBookingService(db, config.DefaultMaxBookings)

	_, err := bookings.BookRoom(101, "Asha", 3)
	require.NoError(t, err)

	booking, err := bookings.GetByIndex(0)
	require.NoError(t, err)
	assert.Equal(t, "Asha", booking.CustomerName)
	assert.Equal(t, 101, booking.Room.RoomNumber, "room must be loaded for billing")

	for _, index := range []int{-1, 1, 5} {
		_, err := bookings.GetByIndex(index)
		assert.ErrorIs(t, err, ErrInvalidBookingIndex, "index %d", index)
	}
}

func TestBookingService_Summaries(t *testing.T) {
	db := setupTestDB(t)
	bookings := NewBookingService(db, config.DefaultMaxBookings)

	summaries, err := bookings.Summaries()
	require.NoError(t, err)
	assert.Empty(t, summaries)

	_, err = bookings.BookRoom(101, "Asha", 3)
	require.NoError(t, err)
	_, err = bookings.BookRoom(104, "Bob", 1)
	require.NoError(t, err)

	summaries, err = bookings.Summaries()
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.Equal(t, 1, summaries[0].Position)
	assert.Equal(t, "Asha", summaries[0].CustomerName)
	assert.Equal(t, 2, summaries[1].Position)
	assert.Equal(t, "Bob", summaries[1].CustomerName)
	assert.NotEmpty(t, summaries[0].ReferenceCode)
	assert.NotEqual(t, summaries[0].ReferenceCode, summaries[1].ReferenceCode)
}
