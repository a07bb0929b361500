package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/selimacar/studiofoto-backend/internal/models"
	"github.com/selimacar/studiofoto-backend/internal/service"
	"github.com/selimacar/studiofoto-backend/pkg/captcha"
	"github.com/selimacar/studiofoto-backend/pkg/utils"
)

type BookingHandler struct {
	bookingService *service.BookingService
	validator      *utils.Validator
}

func NewBookingHandler(bookingService *service.BookingService, validator *utils.Validator) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
		validator:      validator,
	}
}

// SubmitBooking hem misafir hem giriş yapmış kullanıcı taleplerini kabul
// eder. Misafir gönderimlerinde Turnstile doğrulaması yapılır.
func (h *BookingHandler) SubmitBooking(c *fiber.Ctx) error {
	var req models.BookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	// Kullanıcı varsa al, yoksa misafir
	var userID *uint
	if id, ok := c.Locals("userID").(uint); ok {
		userID = &id
	}

	// Misafir gönderimi için captcha kontrolü
	if userID == nil {
		ok, err := captcha.VerifyTurnstile(req.CaptchaToken)
		if err != nil || !ok {
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Captcha verification failed"))
		}
	}

	booking, err := h.bookingService.SubmitRequest(req, userID)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(booking, "Booking request submitted"))
}

func (h *BookingHandler) GetMyBookings(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	filter := models.BookingFilter(c.Query("filter", string(models.BookingFilterAll)))

	bookings, err := h.bookingService.ListForUser(userID, filter)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(models.SuccessResponse(bookings, "Bookings retrieved successfully"))
}

func (h *BookingHandler) GetBooking(c *fiber.Ctx) error {
	bookingID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid booking ID"))
	}

	booking, err := h.bookingService.GetBooking(uint(bookingID), actorFromCtx(c))
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(models.SuccessResponse(booking, "Booking retrieved successfully"))
}

// UpdateStatus, durum geçişini uygular. Yetki kuralları serviste:
// confirm/complete sadece admin, cancel sahibi veya admin.
func (h *BookingHandler) UpdateStatus(c *fiber.Ctx) error {
	bookingID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid booking ID"))
	}

	var req models.BookingStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	booking, err := h.bookingService.Transition(uint(bookingID), req.Status, actorFromCtx(c))
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(models.SuccessResponse(booking, "Booking status updated"))
}

// GetAllBookings, admin paneli listesi
func (h *BookingHandler) GetAllBookings(c *fiber.Ctx) error {
	bookings, err := h.bookingService.ListAll(actorFromCtx(c))
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(models.SuccessResponse(bookings, "Bookings retrieved successfully"))
}
