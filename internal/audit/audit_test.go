package audit

import (
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/salonhub/booking-api/internal/models"
)

func testDB(t *testing.T) *gorm.DB {
	if runtime.GOOS == "windows" {
		t.Skip("skipping sqlite test on windows because CGO is disabled")
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}

	if err := db.AutoMigrate(&models.AuditLog{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return db
}

func TestLogger_WritesRowWithMetadata(t *testing.T) {
	db := testDB(t)

	userID := uint(7)
	entityID := uint(42)
	err := New(db).Log(&userID, "appointment_created", "appointment", &entityID, map[string]string{
		"status": "pending",
	})
	require.NoError(t, err)

	var entry models.AuditLog
	require.NoError(t, db.First(&entry).Error)

	assert.Equal(t, "appointment_created", entry.Action)
	assert.Equal(t, "appointment", entry.Entity)
	require.NotNil(t, entry.UserID)
	assert.Equal(t, uint(7), *entry.UserID)
	require.NotNil(t, entry.EntityID)
	assert.Equal(t, uint(42), *entry.EntityID)
	assert.JSONEq(t, `{"status":"pending"}`, entry.Metadata)
}

func TestDispatcher_DeliversEventToLogger(t *testing.T) {
	db := testDB(t)

	d := NewDispatcher(New(db))
	d.Dispatch(Event{Action: "appointment_deleted", Entity: "appointment"})

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		var n int64
		require.NoError(t, db.Model(&models.AuditLog{}).Count(&n).Error)
		if n == 1 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("dispatched event never reached the audit log")
}
