package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/selimacar/studiofoto-backend/internal/models"
	"github.com/selimacar/studiofoto-backend/internal/repository"
	"github.com/selimacar/studiofoto-backend/internal/service"
)

// Domain hatalarını HTTP durum kodlarına çevirir
func statusFromError(err error) int {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, repository.ErrConflict):
		return fiber.StatusConflict
	case errors.Is(err, service.ErrForbidden), errors.Is(err, service.ErrAccessDenied):
		return fiber.StatusForbidden
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrInvalidPackage),
		errors.Is(err, service.ErrInvalidSchedule),
		errors.Is(err, service.ErrInvalidTransition),
		errors.Is(err, service.ErrPhotoNotInAlbum):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func errorJSON(c *fiber.Ctx, err error) error {
	return c.Status(statusFromError(err)).JSON(models.ErrorResponse(err.Error()))
}

// Context'teki kimlikten Actor üretir; kimlik yoksa misafir (ID 0, client)
func actorFromCtx(c *fiber.Ctx) service.Actor {
	actor := service.Actor{Role: models.RoleClient}
	if id, ok := c.Locals("userID").(uint); ok {
		actor.UserID = id
	}
	if role, ok := c.Locals("userRole").(models.UserRole); ok {
		actor.Role = role
	}
	return actor
}
