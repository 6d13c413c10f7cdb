package config

import (
	"log"
	"strconv"

	"room-booking/models"
	"room-booking/utils"

	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// DefaultMaxBookings caps how many bookings the operator may take per run.
const DefaultMaxBookings = 5

// MaxBookings reads MAX_BOOKINGS from the environment, falling back to the
// default cap of 5 when unset or unparsable.
func MaxBookings() int {
	raw := utils.EnvOrDefault("MAX_BOOKINGS", strconv.Itoa(DefaultMaxBookings))
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		log.Printf("warning: invalid MAX_BOOKINGS %q, using default %d", raw, DefaultMaxBookings)
		return DefaultMaxBookings
	}
	return n
}

// ConnectDatabase opens the booking store, migrates the schema and seeds the
// fixed inventory. The DSN defaults to ":memory:", so all state lives and dies
// with the process.
func ConnectDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
	if err != nil {
		return nil, err
	}

	// A fresh connection to an in-memory DSN would see an empty database, so the
	// pool must stay on a single connection.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.RoomType{},
		&models.Room{},
		&models.Booking{},
	); err != nil {
		return nil, err
	}

	if err := SeedDatabase(db); err != nil {
		return nil, err
	}

	return db, nil
}

// SeedDatabase loads the fixed inventory: two room categories and ten rooms,
// numbered 101-110, all available. Safe to call twice; it only seeds empty tables.
func SeedDatabase(db *gorm.DB) error {
	// ---------------- RoomTypes ----------------
	var rtCount int64
	db.Model(&models.RoomType{}).Count(&rtCount)

	if rtCount == 0 {
		roomTypes := []models.RoomType{
			{TypeName: "Double bed", Description: "Double bed room", MaxGuests: 2},
			{TypeName: "Triple bed", Description: "Triple bed room", MaxGuests: 3},
		}
		if err := db.Create(&roomTypes).Error; err != nil {
			return err
		}
		log.Println("RoomTypes seeded")
	}

	typeIDs := map[string]*uint{}
	var roomTypes []models.RoomType
	if err := db.Find(&roomTypes).Error; err != nil {
		return err
	}
	for i := range roomTypes {
		typeIDs[roomTypes[i].TypeName] = &roomTypes[i].ID
	}

	// ---------------- Rooms ----------------
	var roomCount int64
	db.Model(&models.Room{}).Count(&roomCount)

	if roomCount > 0 {
		log.Println("Rooms already seeded")
		return nil
	}

	rooms := []models.Room{
		{RoomNumber: 101, Type: "Double bed", PricePerNight: 1000, Available: true},
		{RoomNumber: 102, Type: "Triple bed", PricePerNight: 1500, Available: true},
		{RoomNumber: 103, Type: "Double bed", PricePerNight: 1200, Available: true},
		{RoomNumber: 104, Type: "Triple bed", PricePerNight: 1500, Available: true},
		{RoomNumber: 105, Type: "Double bed", PricePerNight: 1200, Available: true},
		{RoomNumber: 106, Type: "Triple bed", PricePerNight: 1700, Available: true},
		{RoomNumber: 107, Type: "Double bed", PricePerNight: 1100, Available: true},
		{RoomNumber: 108, Type: "Double bed", PricePerNight: 1300, Available: true},
		{RoomNumber: 109, Type: "Triple bed", PricePerNight: 1600, Available: true},
		{RoomNumber: 110, Type: "Double bed", PricePerNight: 1200, Available: true},
	}
	for i := range rooms {
		rooms[i].RoomTypeID = typeIDs[rooms[i].Type]
	}

	if err := db.Create(&rooms).Error; err != nil {
		return err
	}
	log.Println("Rooms seeded")

	return nil
}
