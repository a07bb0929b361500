package models

import (
	"time"
)

// Rezervasyon durumları
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// Liste filtreleri
type BookingFilter string

const (
	BookingFilterUpcoming  BookingFilter = "upcoming"
	BookingFilterPast      BookingFilter = "past"
	BookingFilterCancelled BookingFilter = "cancelled"
	BookingFilterAll       BookingFilter = "all"
)

// Booking, bir müşterinin çekim talebini temsil eder.
// UserID nil ise talep misafir tarafından gönderilmiştir; misafir daha sonra
// aynı email ile kayıt olursa talep hesabına bağlanır.
type Booking struct {
	ID              uint          `json:"id" gorm:"primaryKey"`
	UserID          *uint         `json:"user_id" gorm:"index"`
	GuestName       string        `json:"guest_name,omitempty"`
	GuestEmail      string        `json:"guest_email,omitempty" gorm:"index"`
	PackageID       uint          `json:"package_id" gorm:"not null"`
	Date            time.Time     `json:"date" gorm:"not null"`      // Çekim günü (saat bilgisi yok)
	TimeSlot        string        `json:"time_slot" gorm:"not null"` // "15:04" formatında slot
	Location        string        `json:"location"`
	Notes           string        `json:"notes" gorm:"type:text"`
	Status          BookingStatus `json:"status" gorm:"not null;default:'pending'"`
	DepositPaid     bool          `json:"deposit_paid" gorm:"default:false"`
	StripeSessionID string        `json:"-"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

type BookingRequest struct {
	PackageID  uint   `json:"package_id" validate:"required"`
	Date       string `json:"date" validate:"required"` // "2006-01-02"
	TimeSlot   string `json:"time_slot" validate:"required"`
	Location   string `json:"location" validate:"max=255"`
	Notes      string `json:"notes" validate:"max=1000"`
	GuestName  string `json:"guest_name"`
	GuestEmail string `json:"guest_email" validate:"omitempty,email"`
	// Misafir gönderimleri için Turnstile tokeni
	CaptchaToken string `json:"captcha_token"`
}

type BookingStatusRequest struct {
	Status BookingStatus `json:"status" validate:"required,oneof=confirmed completed cancelled"`
}
