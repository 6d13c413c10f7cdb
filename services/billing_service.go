package services

import (
	"room-booking/models"
)

const (
	VATRate         = 0.13
	TourismFundRate = 0.05
)

// BillBreakdown carries every charge shown on a bill. TourismFund is displayed
// on the bill but is NOT part of TotalPayment; the fund is collected separately.
type BillBreakdown struct {
	RoomCharges  float64
	VAT          float64
	TourismFund  float64
	TotalPayment float64
}

// BillingService computes charges for a single booking. Pure arithmetic on
// float64; rounding happens only when the bill is rendered.
type BillingService struct{}

func NewBillingService() *BillingService {
	return &BillingService{}
}

func (s *BillingService) RoomCharges(b *models.Booking) float64 {
	return b.Room.PricePerNight * float64(b.Nights)
}

func (s *BillingService) VAT(b *models.Booking) float64 {
	return s.RoomCharges(b) * VATRate
}

func (s *BillingService) TourismFund(b *models.Booking) float64 {
	return s.RoomCharges(b) * TourismFundRate
}

// Calculate builds the full breakdown for one booking.
func (s *BillingService) Calculate(b *models.Booking) BillBreakdown {
	charges := s.RoomCharges(b)
	vat := s.VAT(b)

	return BillBreakdown{
		RoomCharges:  charges,
		VAT:          vat,
		TourismFund:  s.TourismFund(b),
		TotalPayment: charges + vat,
	}
}
