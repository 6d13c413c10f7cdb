package controllers

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"room-booking/services"
)

// ConsoleController is the interactive shell: a text menu that drives the room,
// booking and billing services. All state lives in the services; the controller
// only reads operator input and prints tables.
type ConsoleController struct {
	rooms    *services.RoomService
	bookings *services.BookingService
	billing  *services.BillingService

	in  *bufio.Scanner
	out io.Writer
}

func NewConsoleController(
	rooms *services.RoomService,
	bookings *services.BookingService,
	billing *services.BillingService,
	in io.Reader,
	out io.Writer,
) *ConsoleController {
	return &ConsoleController{
		rooms:    rooms,
		bookings: bookings,
		billing:  billing,
		in:       bufio.NewScanner(in),
		out:      out,
	}
}

// Run loops the main menu until the operator exits or input ends.
func (c *ConsoleController) Run() {
	for {
		c.printMenu()
		fmt.Fprint(c.out, "\n\nChoose an option: ")

		line, ok := c.readLine()
		if !ok {
			return
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(c.out, "Invalid option. Please try again.")
			continue
		}

		switch choice {
		case 1:
			c.displayAllRooms()
		case 2:
			c.makeBooking()
		case 3:
			c.viewExistingBills()
		case 4:
			fmt.Fprintln(c.out, "Thank you for using our booking system!")
			return
		default:
			fmt.Fprintln(c.out, "Invalid option. Please try again.")
		}
	}
}

func (c *ConsoleController) printMenu() {
	border := strings.Repeat("-", 69)
	fmt.Fprintln(c.out, border)
	fmt.Fprintln(c.out, "|                         Main Menu                                 |")
	fmt.Fprintln(c.out, border)
	fmt.Fprintln(c.out, "| 1. Display Rooms                                                  |")
	fmt.Fprintln(c.out, "| 2. Add Customer and Book Rooms                                    |")
	fmt.Fprintln(c.out, "| 3. Generate Bill for a Customer                                   |")
	fmt.Fprintln(c.out, "| 4. Exit                                                           |")
	fmt.Fprintln(c.out, border)
}

func (c *ConsoleController) displayAllRooms() {
	rooms, err := c.rooms.GetAll()
	if err != nil {
		log.Printf("❌ failed to list rooms: %v", err)
		fmt.Fprintln(c.out, "Could not load rooms.")
		return
	}

	border := strings.Repeat("-", 71)
	fmt.Fprintln(c.out, border)
	fmt.Fprintln(c.out, "| Room Number |    Room Type     |   Price per day   |   Availability |")
	fmt.Fprintln(c.out, border)
	for _, room := range rooms {
		fmt.Fprintf(c.out, "| %-12d | %-15s | %-17.2f | %-14s |\n",
			room.RoomNumber, room.Type, room.PricePerNight, room.StatusLabel())
	}
	fmt.Fprintln(c.out, border)
}

func (c *ConsoleController) displayAvailableRooms() {
	rooms, err := c.rooms.GetAvailable()
	if err != nil {
		log.Printf("❌ failed to list available rooms: %v", err)
		fmt.Fprintln(c.out, "Could not load rooms.")
		return
	}

	border := strings.Repeat("-", 54)
	fmt.Fprintln(c.out, border)
	fmt.Fprintln(c.out, "|              Available Rooms                       |")
	fmt.Fprintln(c.out, border)
	fmt.Fprintln(c.out, "| Room Number |    Room Type     |   Price per day   |")
	fmt.Fprintln(c.out, border)
	for _, room := range rooms {
		fmt.Fprintf(c.out, "| %-12d | %-15s | %-17.2f |\n",
			room.RoomNumber, room.Type, room.PricePerNight)
	}
	fmt.Fprintln(c.out, border)
}

// makeBooking runs the policy check first: the cap and the has-available check
// live here in the shell, not inside BookRoom.
func (c *ConsoleController) makeBooking() {
	ok, err := c.bookings.CanAcceptBooking()
	if err != nil {
		log.Printf("❌ booking policy check failed: %v", err)
		fmt.Fprintln(c.out, "Could not check booking availability.")
		return
	}
	if !ok {
		fmt.Fprintln(c.out, "No available rooms or maximum bookings reached.")
		return
	}

	c.displayAvailableRooms()

	fmt.Fprint(c.out, "\nEnter customer name: ")
	customerName, ok := c.readLine()
	if !ok {
		return
	}

	roomNumber, ok := c.readInt("Enter room number to book: ")
	if !ok {
		return
	}

	nights, ok := c.readInt("Enter number of nights: ")
	if !ok {
		return
	}

	booking, err := c.bookings.BookRoom(roomNumber, customerName, nights)
	switch {
	case errors.Is(err, services.ErrRoomUnavailable):
		fmt.Fprintln(c.out, "Booking failed. Room not available or invalid room number.")
		return
	case errors.Is(err, services.ErrInvalidNights), errors.Is(err, services.ErrCustomerNameRequired):
		fmt.Fprintf(c.out, "Booking failed. %v.\n", err)
		return
	case err != nil:
		log.Printf("❌ booking failed: %v", err)
		fmt.Fprintln(c.out, "Booking failed. Please try again.")
		return
	}

	fmt.Fprintf(c.out, "Booking confirmed. Reference: %s\n", booking.ReferenceCode)
	fmt.Fprint(c.out, services.FormatBill(booking, c.billing.Calculate(booking)))
}

func (c *ConsoleController) viewExistingBills() {
	summaries, err := c.bookings.Summaries()
	if err != nil {
		log.Printf("❌ failed to list bookings: %v", err)
		fmt.Fprintln(c.out, "Could not load bookings.")
		return
	}

	fmt.Fprintln(c.out, "\nAll Bookings:")
	for _, s := range summaries {
		fmt.Fprintf(c.out, "%d. %s\n", s.Position, s.CustomerName)
	}

	index, ok := c.readInt("Enter the number of the booking to view (0 to cancel): ")
	if !ok || index <= 0 {
		return
	}

	booking, err := c.bookings.GetByIndex(index - 1)
	if errors.Is(err, services.ErrInvalidBookingIndex) {
		fmt.Fprintln(c.out, "Invalid booking index.")
		return
	}
	if err != nil {
		log.Printf("❌ failed to load booking: %v", err)
		fmt.Fprintln(c.out, "Could not load booking.")
		return
	}

	fmt.Fprint(c.out, services.FormatBill(booking, c.billing.Calculate(booking)))
}

func (c *ConsoleController) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}

// readInt prompts and parses one integer. A non-numeric answer aborts the
// current flow with a message instead of crashing the loop.
func (c *ConsoleController) readInt(prompt string) (int, bool) {
	fmt.Fprint(c.out, prompt)

	line, ok := c.readLine()
	if !ok {
		return 0, false
	}

	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		fmt.Fprintln(c.out, "Invalid number. Please try again.")
		return 0, false
	}
	return n, true
}
