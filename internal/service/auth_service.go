package service

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/selimacar/studiofoto-backend/internal/models"
	"github.com/selimacar/studiofoto-backend/internal/repository"
	"github.com/selimacar/studiofoto-backend/pkg/bcrypt"
	jwtPkg "github.com/selimacar/studiofoto-backend/pkg/jwt"
	"github.com/selimacar/studiofoto-backend/pkg/logger"
)

const (
	// Token süreleri
	TokenExpiryReset = 15 * time.Minute
)

type AuthService struct {
	userRepo       *repository.UserRepository
	bookingService *BookingService
	mailer         Mailer
	jwtSecret      []byte
}

func NewAuthService(userRepo *repository.UserRepository, bookingService *BookingService, mailer Mailer) *AuthService {
	return &AuthService{
		userRepo:       userRepo,
		bookingService: bookingService,
		mailer:         mailer,
		jwtSecret:      []byte(os.Getenv("JWT_SECRET")),
	}
}

func (s *AuthService) Register(req models.RegisterRequest) (*models.AuthResponse, error) {
	// Email kontrolü
	exists, err := s.userRepo.EmailExists(req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.New("email already exists")
	}

	// Şifreyi hashle
	hashedPassword, err := bcrypt.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		FullName: req.FullName,
		Email:    req.Email,
		Password: hashedPassword,
		Role:     models.RoleClient,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	// Aynı email ile gönderilmiş misafir rezervasyonlarını hesaba bağla
	if _, err := s.bookingService.ClaimGuestBookings(user.ID, user.Email); err != nil {
		logger.L().Warnw("guest booking claim failed", "user_id", user.ID, "error", err)
	}

	// JWT token oluştur
	token, err := jwtPkg.GenerateToken(user.Email, user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	// Welcome email gönder
	go s.mailer.SendWelcomeEmail(user.Email, user.FullName)

	return &models.AuthResponse{
		Token: token,
		User:  *user,
	}, nil
}

func (s *AuthService) Login(req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		return nil, errors.New("invalid email or password")
	}

	if err := bcrypt.ComparePassword(user.Password, req.Password); err != nil {
		return nil, errors.New("invalid email or password")
	}

	token, err := jwtPkg.GenerateToken(user.Email, user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token: token,
		User:  *user,
	}, nil
}

func (s *AuthService) ForgotPassword(email string) error {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil // Güvenlik için hata dönme
	}

	// Reset token oluştur
	claims := jwt.MapClaims{
		"sub": user.Email,
		"exp": time.Now().Add(TokenExpiryReset).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	resetToken, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return err
	}

	return s.mailer.SendPasswordResetEmail(user.Email, resetToken)
}

// Reset token ile şifre değiştirme
func (s *AuthService) ResetPassword(token string, newPassword string) error {
	claims := jwt.MapClaims{}
	parsedToken, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil || !parsedToken.Valid {
		return errors.New("invalid or expired token")
	}

	email, ok := claims["sub"].(string)
	if !ok {
		return errors.New("invalid token claims")
	}

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return err
	}

	hashedPassword, err := bcrypt.HashPassword(newPassword)
	if err != nil {
		return err
	}

	return s.userRepo.UpdatePassword(user.ID, hashedPassword)
}
