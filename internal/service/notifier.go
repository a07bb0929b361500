package service

import "github.com/selimacar/studiofoto-backend/internal/models"

// Mailer, email collaborator'ının servisler tarafından kullanılan yüzüdür.
// Gerçek implementasyon pkg/email'dedir; testler sahte bir Mailer geçirir.
// Rezervasyon bildirimleri fire-and-forget gönderilir, hataları domain
// mutasyonunu asla geri almaz.
type Mailer interface {
	SendWelcomeEmail(email, fullName string) error
	SendPasswordResetEmail(email, resetToken string) error
	SendBookingReceived(email, name string, booking *models.Booking, packageName string) error
	SendBookingConfirmed(email, name string, booking *models.Booking, packageName string) error
	SendBookingCancelled(email, name string, booking *models.Booking, packageName string) error
}
