package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/selimacar/studiofoto-backend/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.Booking{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func createBooking(t *testing.T, repo *BookingRepository, status models.BookingStatus) *models.Booking {
	t.Helper()
	booking, err := repo.Create(&models.Booking{
		PackageID: 1,
		Date:      time.Now().UTC().AddDate(0, 0, 7),
		TimeSlot:  "10:00",
		Status:    status,
	})
	if err != nil {
		t.Fatalf("failed to create booking: %v", err)
	}
	return booking
}

func TestUpdateStatusFrom(t *testing.T) {
	repo := NewBookingRepository(newTestDB(t))
	booking := createBooking(t, repo, models.BookingPending)

	if err := repo.UpdateStatusFrom(booking.ID, models.BookingPending, models.BookingConfirmed); err != nil {
		t.Fatalf("UpdateStatusFrom failed: %v", err)
	}

	reloaded, err := repo.GetByID(booking.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if reloaded.Status != models.BookingConfirmed {
		t.Errorf("expected confirmed, got %s", reloaded.Status)
	}
}

// İkinci geçiş artık pending olmayan bir kaydı hedefler: yarışı kaybeden
// taraf ErrConflict alır ve kayıt değişmeden kalır.
func TestUpdateStatusFromLosesRace(t *testing.T) {
	repo := NewBookingRepository(newTestDB(t))
	booking := createBooking(t, repo, models.BookingPending)

	if err := repo.UpdateStatusFrom(booking.ID, models.BookingPending, models.BookingConfirmed); err != nil {
		t.Fatalf("first transition failed: %v", err)
	}

	err := repo.UpdateStatusFrom(booking.ID, models.BookingPending, models.BookingCancelled)
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	reloaded, err := repo.GetByID(booking.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if reloaded.Status != models.BookingConfirmed {
		t.Errorf("losing write must not change status, got %s", reloaded.Status)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	repo := NewBookingRepository(newTestDB(t))

	_, err := repo.GetByID(12345)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestClaimGuestBookingsMatchesExactEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookingRepository(db)

	for _, email := range []string{"Ayse@Example.com", "ayse@example.com", "other@example.com"} {
		if err := db.Create(&models.Booking{
			PackageID:  1,
			GuestEmail: email,
			Date:       time.Now().UTC().AddDate(0, 0, 7),
			TimeSlot:   "10:00",
			Status:     models.BookingPending,
		}).Error; err != nil {
			t.Fatalf("failed to seed booking: %v", err)
		}
	}

	claimed, err := repo.ClaimGuestBookings(42, "AYSE@example.COM")
	if err != nil {
		t.Fatalf("ClaimGuestBookings failed: %v", err)
	}
	if claimed != 2 {
		t.Fatalf("expected 2 claimed bookings, got %d", claimed)
	}

	var unclaimed int64
	if err := db.Model(&models.Booking{}).Where("user_id IS NULL").Count(&unclaimed).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if unclaimed != 1 {
		t.Errorf("expected 1 unclaimed booking, got %d", unclaimed)
	}
}
