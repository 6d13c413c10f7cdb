package services

import (
	"fmt"
	"strings"

	"room-booking/models"
)

// Dates on bills are a fixed user-visible contract: day/month/year.
const billDateLayout = "02/01/2006"

const billBorder = "-----------------------------------------------------"

// FormatBill renders one booking's bill as a fixed-width bordered block.
// Amounts are rounded to 2 decimals here and nowhere else. The booking's Room
// must be loaded.
func FormatBill(b *models.Booking, bill BillBreakdown) string {
	var sb strings.Builder

	line := func(label, value string) {
		fmt.Fprintf(&sb, "| %-17s : %-30s|\n", label, value)
	}
	amount := func(label string, v float64) {
		line(label, fmt.Sprintf("%.2f", v))
	}

	sb.WriteString(billBorder + "\n")
	sb.WriteString("|                         BILL                      |\n")
	sb.WriteString(billBorder + "\n")
	line("Customer Name", b.CustomerName)
	line("Room Number", fmt.Sprintf("%d", b.Room.RoomNumber))
	line("Room Type", b.Room.Type)
	line("Check-in Date", b.CheckInDate.Format(billDateLayout))
	line("Check-out Date", b.CheckOutDate().Format(billDateLayout))
	sb.WriteString(billBorder + "\n")
	amount("Room Charges", bill.RoomCharges)
	amount("VAT (13%)", bill.VAT)
	amount("Tourism Fund (5%)", bill.TourismFund)
	sb.WriteString(billBorder + "\n")
	amount("Total Payment Due", bill.TotalPayment)
	sb.WriteString(billBorder + "\n")

	return sb.String()
}
