package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/selimacar/studiofoto-backend/internal/models"
	"github.com/selimacar/studiofoto-backend/internal/repository"
	"github.com/selimacar/studiofoto-backend/pkg/logger"
)

const (
	MaxLocationLength = 255
	MaxNotesLength    = 1000
)

// Stüdyonun sunduğu çekim saatleri
var OfferedTimeSlots = []string{
	"09:00", "10:00", "11:00", "13:00", "14:00", "15:00", "16:00", "17:00",
}

// Geçerli durum geçişleri: pending -> confirmed/cancelled,
// confirmed -> completed/cancelled. Terminal durumlardan çıkış yok.
var allowedTransitions = map[models.BookingStatus][]models.BookingStatus{
	models.BookingPending:   {models.BookingConfirmed, models.BookingCancelled},
	models.BookingConfirmed: {models.BookingCompleted, models.BookingCancelled},
}

type BookingService struct {
	bookingRepo *repository.BookingRepository
	packageRepo *repository.PackageRepository
	userRepo    *repository.UserRepository
	mailer      Mailer
}

func NewBookingService(
	bookingRepo *repository.BookingRepository,
	packageRepo *repository.PackageRepository,
	userRepo *repository.UserRepository,
	mailer Mailer,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		packageRepo: packageRepo,
		userRepo:    userRepo,
		mailer:      mailer,
	}
}

// SubmitRequest yeni bir rezervasyon talebi oluşturur. userID nil ise talep
// misafire aittir ve guest_email üzerinden daha sonra hesaba bağlanabilir.
func (s *BookingService) SubmitRequest(req models.BookingRequest, userID *uint) (*models.Booking, error) {
	// Paket kontrolü
	pkg, err := s.packageRepo.GetByID(req.PackageID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidPackage
		}
		return nil, fmt.Errorf("package lookup failed: %w", err)
	}
	if !pkg.IsActive {
		return nil, ErrInvalidPackage
	}

	// Tarih ve slot kontrolü
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be in YYYY-MM-DD format", ErrInvalidSchedule)
	}
	if date.Before(today()) {
		return nil, fmt.Errorf("%w: date is in the past", ErrInvalidSchedule)
	}
	if !isOfferedSlot(req.TimeSlot) {
		return nil, fmt.Errorf("%w: time slot %q is not offered", ErrInvalidSchedule, req.TimeSlot)
	}

	// Serbest metin alanları sınırı aşıyorsa kısaltmadan reddet
	if len(req.Location) > MaxLocationLength {
		return nil, fmt.Errorf("%w: location exceeds %d characters", ErrValidation, MaxLocationLength)
	}
	if len(req.Notes) > MaxNotesLength {
		return nil, fmt.Errorf("%w: notes exceed %d characters", ErrValidation, MaxNotesLength)
	}

	// Misafir talebinde iletişim bilgisi zorunlu
	if userID == nil && req.GuestEmail == "" {
		return nil, fmt.Errorf("%w: guest bookings require an email address", ErrValidation)
	}

	booking := &models.Booking{
		UserID:     userID,
		GuestName:  req.GuestName,
		GuestEmail: req.GuestEmail,
		PackageID:  req.PackageID,
		Date:       date,
		TimeSlot:   req.TimeSlot,
		Location:   req.Location,
		Notes:      req.Notes,
		Status:     models.BookingPending,
	}

	created, err := s.bookingRepo.Create(booking)
	if err != nil {
		return nil, fmt.Errorf("booking create failed: %w", err)
	}

	logger.L().Infow("booking submitted",
		"booking_id", created.ID, "package_id", created.PackageID, "date", req.Date)

	// Bildirim gönder (beklenmez, hatası mutasyonu etkilemez)
	email, name := s.contactForBooking(created)
	if email != "" {
		go func() {
			if err := s.mailer.SendBookingReceived(email, name, created, pkg.Name); err != nil {
				logger.L().Warnw("booking received email failed", "booking_id", created.ID, "error", err)
			}
		}()
	}

	return created, nil
}

// Transition, rezervasyonu hedef duruma geçirir. Geçiş koşullu UPDATE ile
// uygulanır: yarışan iki geçişten yalnız biri kazanır, kaybeden ErrConflict alır.
func (s *BookingService) Transition(bookingID uint, target models.BookingStatus, actor Actor) (*models.Booking, error) {
	booking, err := s.bookingRepo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}

	// Önce geçişin mevcut durumdan ulaşılabilir olduğunu kontrol et
	if !transitionAllowed(booking.Status, target) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, target)
	}

	// Sonra yetki: confirmed/completed sadece admin; cancelled sahibi veya admin
	switch target {
	case models.BookingConfirmed, models.BookingCompleted:
		if !actor.IsAdmin() {
			return nil, ErrForbidden
		}
	case models.BookingCancelled:
		isOwner := booking.UserID != nil && *booking.UserID == actor.UserID
		if !actor.IsAdmin() && !isOwner {
			return nil, ErrForbidden
		}
	default:
		return nil, fmt.Errorf("%w: %s is not a valid target", ErrInvalidTransition, target)
	}

	if err := s.bookingRepo.UpdateStatusFrom(bookingID, booking.Status, target); err != nil {
		return nil, err
	}
	booking.Status = target

	logger.L().Infow("booking transitioned",
		"booking_id", bookingID, "status", target, "actor_id", actor.UserID)

	// Onay ve iptal bildirimleri
	email, name := s.contactForBooking(booking)
	if email != "" {
		pkgName := ""
		if pkg, err := s.packageRepo.GetByID(booking.PackageID); err == nil {
			pkgName = pkg.Name
		}
		switch target {
		case models.BookingConfirmed:
			go func() {
				if err := s.mailer.SendBookingConfirmed(email, name, booking, pkgName); err != nil {
					logger.L().Warnw("booking confirmed email failed", "booking_id", bookingID, "error", err)
				}
			}()
		case models.BookingCancelled:
			go func() {
				if err := s.mailer.SendBookingCancelled(email, name, booking, pkgName); err != nil {
					logger.L().Warnw("booking cancelled email failed", "booking_id", bookingID, "error", err)
				}
			}()
		}
	}

	return booking, nil
}

// ListForUser, kullanıcının taleplerini filtreye göre döner.
// upcoming tarihe göre artan, diğerleri azalan sıralıdır.
func (s *BookingService) ListForUser(userID uint, filter models.BookingFilter) ([]models.Booking, error) {
	switch filter {
	case models.BookingFilterUpcoming:
		return s.bookingRepo.GetUpcomingForUser(userID, today())
	case models.BookingFilterPast:
		return s.bookingRepo.GetPastForUser(userID, today())
	case models.BookingFilterCancelled:
		return s.bookingRepo.GetCancelledForUser(userID)
	case models.BookingFilterAll, "":
		return s.bookingRepo.GetAllForUser(userID)
	default:
		return nil, fmt.Errorf("%w: unknown filter %q", ErrValidation, filter)
	}
}

// ListAll, admin paneli için tüm talepleri döner
func (s *BookingService) ListAll(actor Actor) ([]models.Booking, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	return s.bookingRepo.GetAll()
}

func (s *BookingService) GetBooking(bookingID uint, actor Actor) (*models.Booking, error) {
	booking, err := s.bookingRepo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	isOwner := booking.UserID != nil && *booking.UserID == actor.UserID
	if !actor.IsAdmin() && !isOwner {
		return nil, ErrForbidden
	}
	return booking, nil
}

// ClaimGuestBookings, kayıt sırasında aynı email ile gönderilmiş misafir
// taleplerini yeni hesaba bağlar. Eşleşme büyük/küçük harf duyarsız.
func (s *BookingService) ClaimGuestBookings(userID uint, email string) (int64, error) {
	claimed, err := s.bookingRepo.ClaimGuestBookings(userID, email)
	if err != nil {
		return 0, err
	}
	if claimed > 0 {
		logger.L().Infow("guest bookings claimed", "user_id", userID, "count", claimed)
	}
	return claimed, nil
}

func (s *BookingService) contactForBooking(booking *models.Booking) (email, name string) {
	if booking.UserID != nil {
		if user, err := s.userRepo.GetByID(*booking.UserID); err == nil {
			return user.Email, user.FullName
		}
		return "", ""
	}
	return booking.GuestEmail, booking.GuestName
}

func transitionAllowed(from, to models.BookingStatus) bool {
	for _, t := range allowedTransitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

func isOfferedSlot(slot string) bool {
	for _, s := range OfferedTimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// today, gün hassasiyetinde bugünü döner (UTC)
func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
