package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"room-booking/config"
)

// setupTestDB opens a fresh in-memory database with the seeded inventory:
// rooms 101-110, all available.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := config.ConnectDatabase(":memory:")
	require.NoError(t, err)

	return db
}
