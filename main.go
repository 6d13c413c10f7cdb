package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"room-booking/config"
	"room-booking/controllers"
	"room-booking/services"
	"room-booking/utils"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	// In-memory by default: every run starts from the fixed seed inventory.
	dsn := utils.EnvOrDefault("DB_DSN", ":memory:")

	db, err := config.ConnectDatabase(dsn)
	if err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	log.Println("✅ Database ready, inventory seeded.")

	// Initialize services
	roomService := services.NewRoomService(db)
	bookingService := services.NewBookingService(db, config.MaxBookings())
	billingService := services.NewBillingService()

	console := controllers.NewConsoleController(
		roomService,
		bookingService,
		billingService,
		os.Stdin,
		os.Stdout,
	)
	console.Run()
}
