package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/selimacar/studiofoto-backend/internal/models"
	"github.com/selimacar/studiofoto-backend/internal/service"
	"github.com/selimacar/studiofoto-backend/pkg/utils"
)

const defaultRelatedLimit = 3

type PackageHandler struct {
	packageService *service.PackageService
	validator      *utils.Validator
}

func NewPackageHandler(packageService *service.PackageService, validator *utils.Validator) *PackageHandler {
	return &PackageHandler{
		packageService: packageService,
		validator:      validator,
	}
}

func (h *PackageHandler) GetAllPackages(c *fiber.Ctx) error {
	packages, err := h.packageService.GetAllPackages()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(packages, "Packages retrieved successfully"))
}

func (h *PackageHandler) GetPackageByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid package ID"))
	}

	pkg, err := h.packageService.GetPackageByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Package not found"))
	}

	return c.JSON(models.SuccessResponse(pkg, "Package retrieved successfully"))
}

// GetRelatedPackages, "buna benzer paketler" önerisi döner
func (h *PackageHandler) GetRelatedPackages(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid package ID"))
	}

	limit := c.QueryInt("limit", defaultRelatedLimit)

	related, err := h.packageService.GetRelatedPackages(uint(id), limit)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(models.SuccessResponse(related, "Related packages retrieved successfully"))
}

func (h *PackageHandler) CreatePackage(c *fiber.Ctx) error {
	var req models.PackageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	pkg, err := h.packageService.CreatePackage(req, actorFromCtx(c))
	if err != nil {
		return errorJSON(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(pkg, "Package created successfully"))
}

func (h *PackageHandler) UpdatePackage(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid package ID"))
	}

	var req models.PackageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	pkg, err := h.packageService.UpdatePackage(uint(id), req, actorFromCtx(c))
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(models.SuccessResponse(pkg, "Package updated successfully"))
}
