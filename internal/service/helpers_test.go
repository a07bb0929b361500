package service

import (
	"fmt"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/selimacar/studiofoto-backend/internal/models"
	"github.com/selimacar/studiofoto-backend/internal/repository"
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

	err = db.AutoMigrate(
		&models.User{},
		&models.Package{},
		&models.Booking{},
		&models.Album{},
		&models.Photo{},
		&models.Favorite{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// fakeMailer, gönderilen bildirimleri sayar. Servisler mail'i goroutine
// içinden gönderdiği için mutex ile korunur.
type fakeMailer struct {
	mu    sync.Mutex
	sent  []string
	fail  bool
}

func (m *fakeMailer) record(kind string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, kind)
	if m.fail {
		return fmt.Errorf("smtp unavailable")
	}
	return nil
}

func (m *fakeMailer) SendWelcomeEmail(email, fullName string) error {
	return m.record("welcome")
}

func (m *fakeMailer) SendPasswordResetEmail(email, resetToken string) error {
	return m.record("reset")
}

func (m *fakeMailer) SendBookingReceived(email, name string, booking *models.Booking, packageName string) error {
	return m.record("received")
}

func (m *fakeMailer) SendBookingConfirmed(email, name string, booking *models.Booking, packageName string) error {
	return m.record("confirmed")
}

func (m *fakeMailer) SendBookingCancelled(email, name string, booking *models.Booking, packageName string) error {
	return m.record("cancelled")
}

// fakeStorage, yüklenen key'leri bellekte tutar
type fakeStorage struct {
	mu      sync.Mutex
	objects map[string]bool
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: make(map[string]bool)}
}

func (s *fakeStorage) Upload(key string, reader io.Reader) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = true
	return nil
}

func (s *fakeStorage) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	return nil
}

func (s *fakeStorage) PublicURL(key string) string {
	return "https://cdn.test/" + key
}

func seedUser(t *testing.T, db *gorm.DB, email string, role models.UserRole) *models.User {
	t.Helper()
	user := &models.User{
		FullName: "Test User",
		Email:    email,
		Password: "hashed",
		Role:     role,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func seedPackage(t *testing.T, db *gorm.DB, name, category string, tags []string) *models.Package {
	t.Helper()
	pkg := &models.Package{
		Name:     name,
		Category: category,
		Price:    249,
		Duration: "2 hours",
		Tags:     tags,
		IsActive: true,
	}
	if err := db.Create(pkg).Error; err != nil {
		t.Fatalf("failed to seed package: %v", err)
	}
	return pkg
}

func seedBooking(t *testing.T, db *gorm.DB, userID *uint, packageID uint, status models.BookingStatus, date time.Time) *models.Booking {
	t.Helper()
	booking := &models.Booking{
		UserID:    userID,
		PackageID: packageID,
		Date:      date,
		TimeSlot:  "10:00",
		Status:    status,
	}
	if err := db.Create(booking).Error; err != nil {
		t.Fatalf("failed to seed booking: %v", err)
	}
	return booking
}

func seedAlbum(t *testing.T, db *gorm.DB, userID *uint, shareURL string, published bool) *models.Album {
	t.Helper()
	album := &models.Album{
		UserID:      userID,
		Title:       "Test Album",
		ShareURL:    shareURL,
		IsPublished: published,
	}
	if err := db.Create(album).Error; err != nil {
		t.Fatalf("failed to seed album: %v", err)
	}
	return album
}

func seedPhoto(t *testing.T, db *gorm.DB, photoRepo *repository.PhotoRepository, albumID uint, key string) *models.Photo {
	t.Helper()
	photo := &models.Photo{
		AlbumID: albumID,
		URL:     "https://cdn.test/" + key,
		R2Key:   key,
	}
	if err := photoRepo.CreateWithCount(photo); err != nil {
		t.Fatalf("failed to seed photo: %v", err)
	}
	return photo
}

func futureDate() string {
	return time.Now().UTC().AddDate(0, 1, 0).Format("2006-01-02")
}
