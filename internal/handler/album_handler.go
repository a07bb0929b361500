package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/selimacar/studiofoto-backend/internal/models"
	"github.com/selimacar/studiofoto-backend/internal/service"
	"github.com/selimacar/studiofoto-backend/pkg/qrcode"
	"github.com/selimacar/studiofoto-backend/pkg/utils"
)

type AlbumHandler struct {
	galleryService *service.GalleryService
	qrService      *qrcode.QRService
	validator      *utils.Validator
}

func NewAlbumHandler(galleryService *service.GalleryService, qrService *qrcode.QRService, validator *utils.Validator) *AlbumHandler {
	return &AlbumHandler{
		galleryService: galleryService,
		qrService:      qrService,
		validator:      validator,
	}
}

func (h *AlbumHandler) CreateAlbum(c *fiber.Ctx) error {
	var req models.AlbumRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	album, err := h.galleryService.CreateAlbum(req, actorFromCtx(c))
	if err != nil {
		return errorJSON(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(album, "Album created successfully"))
}

func (h *AlbumHandler) UpdateAlbum(c *fiber.Ctx) error {
	albumID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid album ID"))
	}

	var req models.AlbumRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	album, err := h.galleryService.UpdateAlbum(uint(albumID), req, actorFromCtx(c))
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(models.SuccessResponse(album, "Album updated successfully"))
}

// GetMyAlbums, giriş yapmış kullanıcının albümlerini döner
func (h *AlbumHandler) GetMyAlbums(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	albums, err := h.galleryService.ListAlbumsForUser(userID)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(models.SuccessResponse(albums, "Albums retrieved successfully"))
}

func (h *AlbumHandler) GetAlbumPhotos(c *fiber.Ctx) error {
	albumID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid album ID"))
	}

	photos, err := h.galleryService.GetAlbumPhotos(uint(albumID), actorFromCtx(c))
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(models.SuccessResponse(photos, "Photos retrieved successfully"))
}

func (h *AlbumHandler) UploadPhotos(c *fiber.Ctx) error {
	albumID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid album ID"))
	}

	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid form data"))
	}

	files := form.File["photo"]
	if len(files) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("No files uploaded"))
	}

	added, err := h.galleryService.AddPhotos(uint(albumID), files, actorFromCtx(c))
	if err != nil {
		// Kısmi başarı: eklenenler sayaçla tutarlı şekilde kalıcıdır
		return c.Status(statusFromError(err)).JSON(models.Response{
			Success: false,
			Error:   err.Error(),
			Data:    added,
		})
	}

	return c.JSON(models.SuccessResponse(added, "Photos uploaded successfully"))
}

func (h *AlbumHandler) DeletePhotos(c *fiber.Ctx) error {
	albumID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid album ID"))
	}

	var req models.DeletePhotosRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	if err := h.galleryService.DeletePhotos(uint(albumID), req.PhotoIDs, actorFromCtx(c)); err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(models.SuccessResponse(nil, "Photos deleted successfully"))
}

func (h *AlbumHandler) SetCoverImage(c *fiber.Ctx) error {
	albumID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid album ID"))
	}

	var req models.SetCoverRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	if err := h.galleryService.SetCoverImage(uint(albumID), req.PhotoID, actorFromCtx(c)); err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(models.SuccessResponse(nil, "Cover image updated"))
}

func (h *AlbumHandler) ToggleFavorite(c *fiber.Ctx) error {
	albumID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid album ID"))
	}

	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	var req models.ToggleFavoriteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	state, err := h.galleryService.ToggleFavorite(userID, uint(albumID), req.PhotoID)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(models.SuccessResponse(models.ToggleFavoriteResponse{
		PhotoID: req.PhotoID,
		State:   state,
	}, "Favorite toggled"))
}

// GetPublicAlbum, paylaşım linkiyle yayındaki albümü döner (auth gerekmez)
func (h *AlbumHandler) GetPublicAlbum(c *fiber.Ctx) error {
	shareURL := c.Params("shareUrl")

	album, photos, err := h.galleryService.GetPublicAlbum(shareURL)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(models.SuccessResponse(fiber.Map{
		"album":  album,
		"photos": photos,
	}, "Album retrieved successfully"))
}

// GetAlbumQR, paylaşım linki için PNG QR kodu döner
func (h *AlbumHandler) GetAlbumQR(c *fiber.Ctx) error {
	shareURL := c.Params("shareUrl")

	// Sadece yayındaki albümler için QR üret
	if _, _, err := h.galleryService.GetPublicAlbum(shareURL); err != nil {
		return errorJSON(c, err)
	}

	png, err := h.qrService.GenerateQRCode(shareURL, 256)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}

	c.Set("Content-Type", "image/png")
	return c.Send(png)
}
