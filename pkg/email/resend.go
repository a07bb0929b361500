package email

import (
	"bytes"
	"html/template"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/resendlabs/resend-go"
	"github.com/selimacar/studiofoto-backend/internal/models"
)

type EmailService struct {
	client       *resend.Client
	from         string
	fromName     string
	templatesDir string
	logger       *log.Logger
}

func NewEmailService() *EmailService {
	// Log dosyası oluştur
	logFile, err := os.OpenFile("logs/email.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		log.Printf("Error opening log file: %v", err)
		// Hata durumunda stdout'a log al
		return &EmailService{
			client:       resend.NewClient(os.Getenv("RESEND_API_KEY")),
			from:         os.Getenv("EMAIL_FROM_ADDRESS"),
			fromName:     os.Getenv("EMAIL_FROM_NAME"),
			templatesDir: "pkg/email/templates",
			logger:       log.New(os.Stdout, "EMAIL: ", log.LstdFlags),
		}
	}

	// Multi writer ile hem dosyaya hem stdout'a yaz
	multiWriter := io.MultiWriter(os.Stdout, logFile)

	return &EmailService{
		client:       resend.NewClient(os.Getenv("RESEND_API_KEY")),
		from:         os.Getenv("EMAIL_FROM_ADDRESS"),
		fromName:     os.Getenv("EMAIL_FROM_NAME"),
		templatesDir: "pkg/email/templates",
		logger:       log.New(multiWriter, "EMAIL: ", log.LstdFlags),
	}
}

func (s *EmailService) SendWelcomeEmail(email, fullName string) error {
	s.logger.Printf("Sending welcome email to: %s (%s)", email, fullName)

	templateData := map[string]interface{}{
		"FullName": fullName,
		"Email":    email,
		"Year":     time.Now().Year(),
	}

	html, err := s.parseTemplate("welcome.html", templateData)
	if err != nil {
		s.logger.Printf("Error parsing welcome template for %s: %v", email, err)
		return err
	}

	return s.send(email, "Welcome to StudioFoto!", html)
}

func (s *EmailService) SendPasswordResetEmail(email string, resetToken string) error {
	s.logger.Printf("Sending password reset email to: %s", email)

	resetLink := os.Getenv("FRONTEND_URL") + "/reset-password?token=" + resetToken

	templateData := map[string]interface{}{
		"ResetLink": resetLink,
		"Email":     email,
		"Year":      time.Now().Year(),
	}

	html, err := s.parseTemplate("reset-password.html", templateData)
	if err != nil {
		s.logger.Printf("Error parsing reset password template for %s: %v", email, err)
		return err
	}

	return s.send(email, "Reset Your Password - StudioFoto", html)
}

func (s *EmailService) SendBookingReceived(email, name string, booking *models.Booking, packageName string) error {
	s.logger.Printf("Sending booking received email to: %s (booking %d)", email, booking.ID)

	html, err := s.parseTemplate("booking-received.html", s.bookingData(name, booking, packageName))
	if err != nil {
		return err
	}

	return s.send(email, "We received your booking request - StudioFoto", html)
}

func (s *EmailService) SendBookingConfirmed(email, name string, booking *models.Booking, packageName string) error {
	s.logger.Printf("Sending booking confirmed email to: %s (booking %d)", email, booking.ID)

	html, err := s.parseTemplate("booking-confirmed.html", s.bookingData(name, booking, packageName))
	if err != nil {
		return err
	}

	return s.send(email, "Your session is confirmed - StudioFoto", html)
}

func (s *EmailService) SendBookingCancelled(email, name string, booking *models.Booking, packageName string) error {
	s.logger.Printf("Sending booking cancelled email to: %s (booking %d)", email, booking.ID)

	html, err := s.parseTemplate("booking-cancelled.html", s.bookingData(name, booking, packageName))
	if err != nil {
		return err
	}

	return s.send(email, "Your booking was cancelled - StudioFoto", html)
}

func (s *EmailService) bookingData(name string, booking *models.Booking, packageName string) map[string]interface{} {
	return map[string]interface{}{
		"Name":        name,
		"PackageName": packageName,
		"Date":        booking.Date.Format("January 2, 2006"),
		"TimeSlot":    booking.TimeSlot,
		"Location":    booking.Location,
		"Year":        time.Now().Year(),
	}
}

func (s *EmailService) send(to, subject, html string) error {
	params := &resend.SendEmailRequest{
		From:    s.fromName + " <" + s.from + ">",
		To:      []string{to},
		Subject: subject,
		Html:    html,
	}

	resp, err := s.client.Emails.Send(params)
	if err != nil {
		s.logger.Printf("Failed to send email to %s: %v", to, err)
		return err
	}

	s.logger.Printf("Successfully sent email to %s (ID: %s)", to, resp.Id)
	return nil
}

func (s *EmailService) parseTemplate(name string, data map[string]interface{}) (string, error) {
	tmpl, err := template.ParseFiles(filepath.Join(s.templatesDir, name))
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}
