package service

import (
	"context"

	"github.com/selimacar/studiofoto-backend/internal/models"
	"github.com/selimacar/studiofoto-backend/internal/repository"
	"github.com/selimacar/studiofoto-backend/pkg/cache"
)

const packageCatalogKey = "packages:catalog"

// PackageService, paket kataloğunu yönetir. Katalog değişmez referans
// verisi olduğu için liste Redis'te cache'lenir; admin yazmaları cache'i
// temizler. Rezervasyonlar hiçbir zaman cache'lenmez.
type PackageService struct {
	packageRepo *repository.PackageRepository
	cache       *cache.Cache
}

func NewPackageService(packageRepo *repository.PackageRepository, cache *cache.Cache) *PackageService {
	return &PackageService{
		packageRepo: packageRepo,
		cache:       cache,
	}
}

func (s *PackageService) GetAllPackages() ([]models.Package, error) {
	ctx := context.Background()

	var cached []models.Package
	if s.cache.Get(ctx, packageCatalogKey, &cached) {
		return cached, nil
	}

	packages, err := s.packageRepo.GetAll()
	if err != nil {
		return nil, err
	}

	s.cache.Set(ctx, packageCatalogKey, packages)
	return packages, nil
}

func (s *PackageService) GetPackageByID(id uint) (*models.Package, error) {
	return s.packageRepo.GetByID(id)
}

// GetRelatedPackages, verilen pakete en çok benzeyen aktif paketleri döner.
// Benzerlik kategori, tag kesişimi ve başlık kelime kesişimiyle puanlanır.
func (s *PackageService) GetRelatedPackages(id uint, limit int) ([]models.Package, error) {
	reference, err := s.packageRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	packages, err := s.GetAllPackages()
	if err != nil {
		return nil, err
	}

	byID := make(map[uint]models.Package, len(packages))
	candidates := make([]models.RankItem, 0, len(packages))
	for _, pkg := range packages {
		byID[pkg.ID] = pkg
		candidates = append(candidates, pkg.RankItem())
	}

	ranked := Rank(candidates, reference.RankItem(), limit)

	related := make([]models.Package, 0, len(ranked))
	for _, item := range ranked {
		related = append(related, byID[item.ID])
	}
	return related, nil
}

func (s *PackageService) CreatePackage(req models.PackageRequest, actor Actor) (*models.Package, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	pkg := &models.Package{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Duration:    req.Duration,
		Features:    req.Features,
		Tags:        req.Tags,
		Popular:     req.Popular,
		IsActive:    true,
	}

	if err := s.packageRepo.Create(pkg); err != nil {
		return nil, err
	}

	s.cache.Delete(context.Background(), packageCatalogKey)
	return pkg, nil
}

func (s *PackageService) UpdatePackage(id uint, req models.PackageRequest, actor Actor) (*models.Package, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	pkg, err := s.packageRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	pkg.Name = req.Name
	pkg.Description = req.Description
	pkg.Category = req.Category
	pkg.Price = req.Price
	pkg.Duration = req.Duration
	pkg.Features = req.Features
	pkg.Tags = req.Tags
	pkg.Popular = req.Popular

	if err := s.packageRepo.Update(pkg); err != nil {
		return nil, err
	}

	s.cache.Delete(context.Background(), packageCatalogKey)
	return pkg, nil
}
