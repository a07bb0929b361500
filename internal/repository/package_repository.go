package repository

import (
	"errors"

	"github.com/selimacar/studiofoto-backend/internal/models"
	"gorm.io/gorm"
)

type PackageRepository struct {
	db *gorm.DB
}

func NewPackageRepository(db *gorm.DB) *PackageRepository {
	return &PackageRepository{db: db}
}

func (r *PackageRepository) GetByID(id uint) (*models.Package, error) {
	var pkg models.Package
	err := r.db.First(&pkg, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (r *PackageRepository) GetAll() ([]models.Package, error) {
	var packages []models.Package
	err := r.db.Where("is_active = ?", true).Order("price ASC").Find(&packages).Error
	return packages, err
}

func (r *PackageRepository) Create(pkg *models.Package) error {
	return r.db.Create(pkg).Error
}

func (r *PackageRepository) Update(pkg *models.Package) error {
	return r.db.Save(pkg).Error
}
