package service

import (
	"errors"
	"testing"
	"time"

	"github.com/selimacar/studiofoto-backend/internal/models"
	"github.com/selimacar/studiofoto-backend/internal/repository"
	"gorm.io/gorm"
)

func newBookingService(t *testing.T) (*BookingService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewBookingService(
		repository.NewBookingRepository(db),
		repository.NewPackageRepository(db),
		repository.NewUserRepository(db),
		&fakeMailer{},
	)
	return svc, db
}

func TestSubmitRequestCreatesPendingBooking(t *testing.T) {
	svc, db := newBookingService(t)
	pkg := seedPackage(t, db, "Mini Session", "portrait", nil)
	user := seedUser(t, db, "ayse@example.com", models.RoleClient)

	booking, err := svc.SubmitRequest(models.BookingRequest{
		PackageID: pkg.ID,
		Date:      futureDate(),
		TimeSlot:  "10:00",
		Location:  "Moda sahili",
		Notes:     "Gün batımında olsun",
	}, &user.ID)
	if err != nil {
		t.Fatalf("SubmitRequest failed: %v", err)
	}

	if booking.Status != models.BookingPending {
		t.Errorf("expected status pending, got %s", booking.Status)
	}
	if booking.UserID == nil || *booking.UserID != user.ID {
		t.Errorf("expected booking owned by user %d", user.ID)
	}
}

func TestSubmitRequestGuest(t *testing.T) {
	svc, db := newBookingService(t)
	pkg := seedPackage(t, db, "Mini Session", "portrait", nil)

	booking, err := svc.SubmitRequest(models.BookingRequest{
		PackageID:  pkg.ID,
		Date:       futureDate(),
		TimeSlot:   "09:00",
		GuestName:  "Mehmet",
		GuestEmail: "mehmet@example.com",
	}, nil)
	if err != nil {
		t.Fatalf("SubmitRequest failed: %v", err)
	}

	if booking.UserID != nil {
		t.Errorf("guest booking should have nil user_id")
	}
	if booking.Status != models.BookingPending {
		t.Errorf("expected status pending, got %s", booking.Status)
	}
}

func TestSubmitRequestGuestWithoutEmail(t *testing.T) {
	svc, db := newBookingService(t)
	pkg := seedPackage(t, db, "Mini Session", "portrait", nil)

	_, err := svc.SubmitRequest(models.BookingRequest{
		PackageID: pkg.ID,
		Date:      futureDate(),
		TimeSlot:  "09:00",
	}, nil)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestSubmitRequestRejectsInvalidPackage(t *testing.T) {
	svc, db := newBookingService(t)
	user := seedUser(t, db, "ayse@example.com", models.RoleClient)

	_, err := svc.SubmitRequest(models.BookingRequest{
		PackageID: 999,
		Date:      futureDate(),
		TimeSlot:  "10:00",
	}, &user.ID)
	if !errors.Is(err, ErrInvalidPackage) {
		t.Fatalf("expected ErrInvalidPackage, got %v", err)
	}
}

func TestSubmitRequestRejectsInactivePackage(t *testing.T) {
	svc, db := newBookingService(t)
	user := seedUser(t, db, "ayse@example.com", models.RoleClient)
	pkg := seedPackage(t, db, "Retired", "portrait", nil)
	if err := db.Model(pkg).Update("is_active", false).Error; err != nil {
		t.Fatalf("failed to deactivate package: %v", err)
	}

	_, err := svc.SubmitRequest(models.BookingRequest{
		PackageID: pkg.ID,
		Date:      futureDate(),
		TimeSlot:  "10:00",
	}, &user.ID)
	if !errors.Is(err, ErrInvalidPackage) {
		t.Fatalf("expected ErrInvalidPackage, got %v", err)
	}
}

func TestSubmitRequestRejectsPastDate(t *testing.T) {
	svc, db := newBookingService(t)
	pkg := seedPackage(t, db, "Mini Session", "portrait", nil)
	user := seedUser(t, db, "ayse@example.com", models.RoleClient)

	yesterday := time.Now().UTC().AddDate(0, 0, -1).Format("2006-01-02")
	_, err := svc.SubmitRequest(models.BookingRequest{
		PackageID: pkg.ID,
		Date:      yesterday,
		TimeSlot:  "10:00",
	}, &user.ID)
	if !errors.Is(err, ErrInvalidSchedule) {
		t.Fatalf("expected ErrInvalidSchedule, got %v", err)
	}
}

func TestSubmitRequestRejectsUnofferedSlot(t *testing.T) {
	svc, db := newBookingService(t)
	pkg := seedPackage(t, db, "Mini Session", "portrait", nil)
	user := seedUser(t, db, "ayse@example.com", models.RoleClient)

	_, err := svc.SubmitRequest(models.BookingRequest{
		PackageID: pkg.ID,
		Date:      futureDate(),
		TimeSlot:  "03:30",
	}, &user.ID)
	if !errors.Is(err, ErrInvalidSchedule) {
		t.Fatalf("expected ErrInvalidSchedule, got %v", err)
	}
}

func TestSubmitRequestRejectsOversizedFields(t *testing.T) {
	svc, db := newBookingService(t)
	pkg := seedPackage(t, db, "Mini Session", "portrait", nil)
	user := seedUser(t, db, "ayse@example.com", models.RoleClient)

	longLocation := make([]byte, MaxLocationLength+1)
	for i := range longLocation {
		longLocation[i] = 'x'
	}
	_, err := svc.SubmitRequest(models.BookingRequest{
		PackageID: pkg.ID,
		Date:      futureDate(),
		TimeSlot:  "10:00",
		Location:  string(longLocation),
	}, &user.ID)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for long location, got %v", err)
	}

	longNotes := make([]byte, MaxNotesLength+1)
	for i := range longNotes {
		longNotes[i] = 'x'
	}
	_, err = svc.SubmitRequest(models.BookingRequest{
		PackageID: pkg.ID,
		Date:      futureDate(),
		TimeSlot:  "10:00",
		Notes:     string(longNotes),
	}, &user.ID)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for long notes, got %v", err)
	}
}

func TestTransitionMatrix(t *testing.T) {
	statuses := []models.BookingStatus{
		models.BookingPending, models.BookingConfirmed,
		models.BookingCompleted, models.BookingCancelled,
	}
	valid := map[models.BookingStatus][]models.BookingStatus{
		models.BookingPending:   {models.BookingConfirmed, models.BookingCancelled},
		models.BookingConfirmed: {models.BookingCompleted, models.BookingCancelled},
	}

	for _, from := range statuses {
		for _, to := range statuses {
			svc, db := newBookingService(t)
			pkg := seedPackage(t, db, "Mini Session", "portrait", nil)
			booking := seedBooking(t, db, nil, pkg.ID, from, time.Now().UTC().AddDate(0, 0, 7))
			admin := Actor{UserID: 1, Role: models.RoleAdmin}

			_, err := svc.Transition(booking.ID, to, admin)

			allowed := false
			for _, v := range valid[from] {
				if v == to {
					allowed = true
				}
			}

			if allowed && err != nil {
				t.Errorf("%s -> %s should succeed, got %v", from, to, err)
			}
			if !allowed && !errors.Is(err, ErrInvalidTransition) {
				t.Errorf("%s -> %s should fail with ErrInvalidTransition, got %v", from, to, err)
			}
		}
	}
}

func TestTransitionConfirmRequiresAdmin(t *testing.T) {
	svc, db := newBookingService(t)
	pkg := seedPackage(t, db, "Mini Session", "portrait", nil)
	user := seedUser(t, db, "ayse@example.com", models.RoleClient)
	booking := seedBooking(t, db, &user.ID, pkg.ID, models.BookingPending, time.Now().UTC().AddDate(0, 0, 7))

	owner := Actor{UserID: user.ID, Role: models.RoleClient}
	_, err := svc.Transition(booking.ID, models.BookingConfirmed, owner)
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("owner confirming own booking: expected ErrForbidden, got %v", err)
	}

	_, err = svc.Transition(booking.ID, models.BookingCompleted, owner)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("pending -> completed: expected ErrInvalidTransition, got %v", err)
	}
}

func TestTransitionCancelByOwner(t *testing.T) {
	svc, db := newBookingService(t)
	pkg := seedPackage(t, db, "Mini Session", "portrait", nil)
	user := seedUser(t, db, "ayse@example.com", models.RoleClient)
	other := seedUser(t, db, "baska@example.com", models.RoleClient)
	booking := seedBooking(t, db, &user.ID, pkg.ID, models.BookingConfirmed, time.Now().UTC().AddDate(0, 0, 7))

	// Başkasının rezervasyonunu iptal edemez
	_, err := svc.Transition(booking.ID, models.BookingCancelled, Actor{UserID: other.ID, Role: models.RoleClient})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("non-owner cancel: expected ErrForbidden, got %v", err)
	}

	updated, err := svc.Transition(booking.ID, models.BookingCancelled, Actor{UserID: user.ID, Role: models.RoleClient})
	if err != nil {
		t.Fatalf("owner cancel failed: %v", err)
	}
	if updated.Status != models.BookingCancelled {
		t.Errorf("expected status cancelled, got %s", updated.Status)
	}
}

// Sahibin onaylanmış rezervasyonu pending'e geri çekme denemesi yetki
// hatası değil geçersiz geçiş hatası almalı: yol kontrolü önce gelir.
func TestTransitionInvalidPathBeforePermission(t *testing.T) {
	svc, db := newBookingService(t)
	pkg := seedPackage(t, db, "Mini Session", "portrait", nil)
	user := seedUser(t, db, "ayse@example.com", models.RoleClient)
	booking := seedBooking(t, db, &user.ID, pkg.ID, models.BookingConfirmed, time.Now().UTC().AddDate(0, 0, 7))

	_, err := svc.Transition(booking.ID, models.BookingPending, Actor{UserID: user.ID, Role: models.RoleClient})
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestListForUserFilters(t *testing.T) {
	svc, db := newBookingService(t)
	pkg := seedPackage(t, db, "Mini Session", "portrait", nil)
	user := seedUser(t, db, "ayse@example.com", models.RoleClient)

	now := time.Now().UTC()
	nextWeek := seedBooking(t, db, &user.ID, pkg.ID, models.BookingConfirmed, now.AddDate(0, 0, 7))
	nextMonth := seedBooking(t, db, &user.ID, pkg.ID, models.BookingPending, now.AddDate(0, 1, 0))
	past := seedBooking(t, db, &user.ID, pkg.ID, models.BookingCompleted, now.AddDate(0, 0, -14))
	cancelled := seedBooking(t, db, &user.ID, pkg.ID, models.BookingCancelled, now.AddDate(0, 0, 3))

	upcoming, err := svc.ListForUser(user.ID, models.BookingFilterUpcoming)
	if err != nil {
		t.Fatalf("upcoming list failed: %v", err)
	}
	if len(upcoming) != 2 {
		t.Fatalf("expected 2 upcoming bookings, got %d", len(upcoming))
	}
	// Tarihe göre artan: önce yakın olan
	if upcoming[0].ID != nextWeek.ID || upcoming[1].ID != nextMonth.ID {
		t.Errorf("upcoming bookings out of order: got %d, %d", upcoming[0].ID, upcoming[1].ID)
	}

	pastList, err := svc.ListForUser(user.ID, models.BookingFilterPast)
	if err != nil {
		t.Fatalf("past list failed: %v", err)
	}
	if len(pastList) != 1 || pastList[0].ID != past.ID {
		t.Errorf("expected only past booking %d, got %v", past.ID, pastList)
	}

	cancelledList, err := svc.ListForUser(user.ID, models.BookingFilterCancelled)
	if err != nil {
		t.Fatalf("cancelled list failed: %v", err)
	}
	if len(cancelledList) != 1 || cancelledList[0].ID != cancelled.ID {
		t.Errorf("expected only cancelled booking %d", cancelled.ID)
	}

	all, err := svc.ListForUser(user.ID, models.BookingFilterAll)
	if err != nil {
		t.Fatalf("all list failed: %v", err)
	}
	if len(all) != 4 {
		t.Errorf("expected 4 bookings, got %d", len(all))
	}

	if _, err := svc.ListForUser(user.ID, "bogus"); !errors.Is(err, ErrValidation) {
		t.Errorf("unknown filter: expected ErrValidation, got %v", err)
	}
}

func TestListAllRequiresAdmin(t *testing.T) {
	svc, _ := newBookingService(t)

	if _, err := svc.ListAll(Actor{UserID: 1, Role: models.RoleClient}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestClaimGuestBookingsCaseInsensitive(t *testing.T) {
	svc, db := newBookingService(t)
	pkg := seedPackage(t, db, "Mini Session", "portrait", nil)

	guest := &models.Booking{
		PackageID:  pkg.ID,
		GuestEmail: "Mehmet@Example.COM",
		Date:       time.Now().UTC().AddDate(0, 0, 7),
		TimeSlot:   "10:00",
		Status:     models.BookingPending,
	}
	if err := db.Create(guest).Error; err != nil {
		t.Fatalf("failed to seed guest booking: %v", err)
	}

	user := seedUser(t, db, "mehmet@example.com", models.RoleClient)
	claimed, err := svc.ClaimGuestBookings(user.ID, "mehmet@example.com")
	if err != nil {
		t.Fatalf("ClaimGuestBookings failed: %v", err)
	}
	if claimed != 1 {
		t.Fatalf("expected 1 claimed booking, got %d", claimed)
	}

	var reloaded models.Booking
	if err := db.First(&reloaded, guest.ID).Error; err != nil {
		t.Fatalf("failed to reload booking: %v", err)
	}
	if reloaded.UserID == nil || *reloaded.UserID != user.ID {
		t.Errorf("booking not linked to user %d", user.ID)
	}
}

func TestClaimGuestBookingsSkipsOwned(t *testing.T) {
	svc, db := newBookingService(t)
	pkg := seedPackage(t, db, "Mini Session", "portrait", nil)
	owner := seedUser(t, db, "sahip@example.com", models.RoleClient)

	booking := seedBooking(t, db, &owner.ID, pkg.ID, models.BookingPending, time.Now().UTC().AddDate(0, 0, 7))
	if err := db.Model(booking).Update("guest_email", "mehmet@example.com").Error; err != nil {
		t.Fatalf("failed to set guest email: %v", err)
	}

	claimant := seedUser(t, db, "mehmet@example.com", models.RoleClient)
	claimed, err := svc.ClaimGuestBookings(claimant.ID, "mehmet@example.com")
	if err != nil {
		t.Fatalf("ClaimGuestBookings failed: %v", err)
	}
	if claimed != 0 {
		t.Fatalf("owned booking should not be claimed, got %d", claimed)
	}
}

func TestGetBookingAccessControl(t *testing.T) {
	svc, db := newBookingService(t)
	pkg := seedPackage(t, db, "Mini Session", "portrait", nil)
	user := seedUser(t, db, "ayse@example.com", models.RoleClient)
	other := seedUser(t, db, "baska@example.com", models.RoleClient)
	booking := seedBooking(t, db, &user.ID, pkg.ID, models.BookingPending, time.Now().UTC().AddDate(0, 0, 7))

	if _, err := svc.GetBooking(booking.ID, Actor{UserID: user.ID, Role: models.RoleClient}); err != nil {
		t.Errorf("owner should read own booking: %v", err)
	}
	if _, err := svc.GetBooking(booking.ID, Actor{UserID: 99, Role: models.RoleAdmin}); err != nil {
		t.Errorf("admin should read any booking: %v", err)
	}
	if _, err := svc.GetBooking(booking.ID, Actor{UserID: other.ID, Role: models.RoleClient}); !errors.Is(err, ErrForbidden) {
		t.Errorf("expected ErrForbidden for other client, got %v", err)
	}
}
