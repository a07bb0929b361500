package service

import (
	"encoding/json"
	"fmt"

	"github.com/selimacar/studiofoto-backend/internal/models"
	"github.com/selimacar/studiofoto-backend/internal/repository"
	"github.com/selimacar/studiofoto-backend/pkg/logger"
	"github.com/selimacar/studiofoto-backend/pkg/payment"
	"github.com/stripe/stripe-go/v74"
)

// Onaylanmış rezervasyonlar için paket fiyatının %25'i kapora olarak alınır
const depositRate = 0.25

type PaymentService struct {
	stripeService *payment.StripeService
	bookingRepo   *repository.BookingRepository
	packageRepo   *repository.PackageRepository
	userRepo      *repository.UserRepository
}

func NewPaymentService(
	stripeService *payment.StripeService,
	bookingRepo *repository.BookingRepository,
	packageRepo *repository.PackageRepository,
	userRepo *repository.UserRepository,
) *PaymentService {
	return &PaymentService{
		stripeService: stripeService,
		bookingRepo:   bookingRepo,
		packageRepo:   packageRepo,
		userRepo:      userRepo,
	}
}

// CreateDepositCheckout, onaylanmış bir rezervasyon için kapora ödemesi
// başlatır. Sadece rezervasyon sahibi başlatabilir.
func (s *PaymentService) CreateDepositCheckout(bookingID uint, actor Actor) (*models.CheckoutSession, error) {
	booking, err := s.bookingRepo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}

	isOwner := booking.UserID != nil && *booking.UserID == actor.UserID
	if !isOwner {
		return nil, ErrForbidden
	}
	if booking.Status != models.BookingConfirmed {
		return nil, fmt.Errorf("%w: deposit requires a confirmed booking", ErrValidation)
	}
	if booking.DepositPaid {
		return nil, fmt.Errorf("%w: deposit already paid", ErrValidation)
	}

	pkg, err := s.packageRepo.GetByID(booking.PackageID)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(actor.UserID)
	if err != nil {
		return nil, err
	}

	depositCents := int64(pkg.Price * 100 * depositRate)
	session, err := s.stripeService.CreateDepositSession(
		user.Email,
		fmt.Sprintf("%s - deposit", pkg.Name),
		depositCents,
		map[string]string{
			"booking_id": fmt.Sprintf("%d", bookingID),
		},
	)
	if err != nil {
		return nil, fmt.Errorf("stripe session failed: %w", err)
	}

	// Session ID'yi rezervasyona bağla
	booking.StripeSessionID = session.ID
	if err := s.bookingRepo.Update(booking); err != nil {
		return nil, err
	}

	return &models.CheckoutSession{
		ID:  session.ID,
		URL: session.URL,
	}, nil
}

// Webhook handler for Stripe events
func (s *PaymentService) HandleStripeWebhook(event *stripe.Event) error {
	switch event.Type {
	case "checkout.session.completed":
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return err
		}

		booking, err := s.bookingRepo.GetByStripeSessionID(session.ID)
		if err != nil {
			return err
		}

		booking.DepositPaid = true
		if err := s.bookingRepo.Update(booking); err != nil {
			return err
		}

		logger.L().Infow("deposit paid", "booking_id", booking.ID, "session_id", session.ID)
		return nil

	case "checkout.session.expired":
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return err
		}

		// Süresi dolan session'ı rezervasyondan ayır, müşteri tekrar deneyebilir
		booking, err := s.bookingRepo.GetByStripeSessionID(session.ID)
		if err != nil {
			return nil // Bizim sistemimizle ilgisi yok
		}

		booking.StripeSessionID = ""
		return s.bookingRepo.Update(booking)
	}

	return nil
}
