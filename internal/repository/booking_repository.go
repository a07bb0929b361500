package repository

import (
	"errors"
	"time"

	"github.com/selimacar/studiofoto-backend/internal/models"
	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(booking *models.Booking) (*models.Booking, error) {
	result := r.db.Create(booking)
	if result.Error != nil {
		return nil, result.Error
	}
	return booking, nil
}

func (r *BookingRepository) GetByID(id uint) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.First(&booking, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// UpdateStatusFrom durumu koşullu olarak günceller: kayıt hala `from`
// durumundaysa `to` durumuna geçirir. Satır etkilenmediyse başka bir yazma
// kazanmıştır ve ErrConflict döner; rezervasyon değişmeden kalır.
func (r *BookingRepository) UpdateStatusFrom(id uint, from, to models.BookingStatus) error {
	result := r.db.Model(&models.Booking{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrConflict
	}
	return nil
}

// GetUpcomingForUser: pending/confirmed ve günü gelmemiş talepler, tarihe göre artan
func (r *BookingRepository) GetUpcomingForUser(userID uint, today time.Time) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.Where("user_id = ? AND status IN ? AND date >= ?",
		userID, []models.BookingStatus{models.BookingPending, models.BookingConfirmed}, today).
		Order("date ASC").
		Find(&bookings).Error
	return bookings, err
}

// GetPastForUser: günü geçmiş veya tamamlanmış talepler, tarihe göre azalan
func (r *BookingRepository) GetPastForUser(userID uint, today time.Time) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.Where("user_id = ? AND (date < ? OR status = ?)",
		userID, today, models.BookingCompleted).
		Order("date DESC").
		Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepository) GetCancelledForUser(userID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.Where("user_id = ? AND status = ?", userID, models.BookingCancelled).
		Order("date DESC").
		Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepository) GetAllForUser(userID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.Where("user_id = ?", userID).
		Order("date DESC").
		Find(&bookings).Error
	return bookings, err
}

// GetAll, admin paneli için tüm talepleri döner
func (r *BookingRepository) GetAll() ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.Order("date DESC").Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepository) Update(booking *models.Booking) error {
	return r.db.Save(booking).Error
}

func (r *BookingRepository) GetByStripeSessionID(sessionID string) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.Where("stripe_session_id = ?", sessionID).First(&booking).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// ClaimGuestBookings, sahipsiz misafir taleplerini email eşleşmesiyle
// kullanıcıya bağlar. Eşleşme büyük/küçük harf duyarsız, tam eşleşmedir.
func (r *BookingRepository) ClaimGuestBookings(userID uint, email string) (int64, error) {
	result := r.db.Model(&models.Booking{}).
		Where("user_id IS NULL AND LOWER(guest_email) = LOWER(?)", email).
		Update("user_id", userID)
	return result.RowsAffected, result.Error
}
