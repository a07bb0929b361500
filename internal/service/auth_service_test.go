package service

import (
	"testing"
	"time"

	"github.com/selimacar/studiofoto-backend/internal/models"
	"github.com/selimacar/studiofoto-backend/internal/repository"
	"github.com/selimacar/studiofoto-backend/pkg/bcrypt"
	"gorm.io/gorm"
)

func newAuthService(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db)
	bookingService := NewBookingService(
		repository.NewBookingRepository(db),
		repository.NewPackageRepository(db),
		userRepo,
		&fakeMailer{},
	)
	return NewAuthService(userRepo, bookingService, &fakeMailer{}), db
}

func TestRegisterCreatesClient(t *testing.T) {
	svc, db := newAuthService(t)

	resp, err := svc.Register(models.RegisterRequest{
		FullName: "Ayşe Yılmaz",
		Email:    "ayse@example.com",
		Password: "supersecret",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if resp.Token == "" {
		t.Error("expected a token")
	}
	if resp.User.Role != models.RoleClient {
		t.Errorf("expected role client, got %s", resp.User.Role)
	}

	var stored models.User
	if err := db.First(&stored, resp.User.ID).Error; err != nil {
		t.Fatalf("failed to reload user: %v", err)
	}
	if stored.Password == "supersecret" {
		t.Error("password must be stored hashed")
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _ := newAuthService(t)

	req := models.RegisterRequest{FullName: "Ayşe", Email: "ayse@example.com", Password: "supersecret"}
	if _, err := svc.Register(req); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(req); err == nil {
		t.Fatal("expected duplicate email to be rejected")
	}
}

// Misafir olarak gönderilmiş talepler kayıt sırasında hesaba bağlanır
func TestRegisterClaimsGuestBookings(t *testing.T) {
	svc, db := newAuthService(t)
	pkg := seedPackage(t, db, "Mini Session", "portrait", nil)

	guest := &models.Booking{
		PackageID:  pkg.ID,
		GuestEmail: "Ayse@Example.com",
		Date:       time.Now().UTC().AddDate(0, 0, 7),
		TimeSlot:   "10:00",
		Status:     models.BookingPending,
	}
	if err := db.Create(guest).Error; err != nil {
		t.Fatalf("failed to seed guest booking: %v", err)
	}

	resp, err := svc.Register(models.RegisterRequest{
		FullName: "Ayşe Yılmaz",
		Email:    "ayse@example.com",
		Password: "supersecret",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	var reloaded models.Booking
	if err := db.First(&reloaded, guest.ID).Error; err != nil {
		t.Fatalf("failed to reload booking: %v", err)
	}
	if reloaded.UserID == nil || *reloaded.UserID != resp.User.ID {
		t.Error("guest booking should be linked to the new account")
	}
}

func TestLogin(t *testing.T) {
	svc, db := newAuthService(t)

	hashed, err := bcrypt.HashPassword("supersecret")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if err := db.Create(&models.User{
		FullName: "Ayşe", Email: "ayse@example.com", Password: hashed, Role: models.RoleClient,
	}).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	resp, err := svc.Login(models.LoginRequest{Email: "ayse@example.com", Password: "supersecret"})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected a token")
	}

	if _, err := svc.Login(models.LoginRequest{Email: "ayse@example.com", Password: "wrong"}); err == nil {
		t.Error("wrong password should be rejected")
	}
	if _, err := svc.Login(models.LoginRequest{Email: "yok@example.com", Password: "supersecret"}); err == nil {
		t.Error("unknown email should be rejected")
	}
}

func TestForgotPasswordHidesUnknownEmail(t *testing.T) {
	svc, _ := newAuthService(t)

	// Bilinmeyen email için de nil dönmeli
	if err := svc.ForgotPassword("yok@example.com"); err != nil {
		t.Fatalf("expected nil for unknown email, got %v", err)
	}
}
