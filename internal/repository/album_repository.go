package repository

import (
	"errors"

	"github.com/selimacar/studiofoto-backend/internal/models"
	"gorm.io/gorm"
)

type AlbumRepository struct {
	db *gorm.DB
}

func NewAlbumRepository(db *gorm.DB) *AlbumRepository {
	return &AlbumRepository{db: db}
}

func (r *AlbumRepository) Create(album *models.Album) (*models.Album, error) {
	result := r.db.Create(album)
	if result.Error != nil {
		return nil, result.Error
	}
	return album, nil
}

func (r *AlbumRepository) GetByID(id uint) (*models.Album, error) {
	var album models.Album
	err := r.db.First(&album, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &album, nil
}

func (r *AlbumRepository) GetByShareURL(shareURL string) (*models.Album, error) {
	var album models.Album
	err := r.db.Where("share_url = ?", shareURL).First(&album).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &album, nil
}

func (r *AlbumRepository) GetByUserID(userID uint) ([]models.Album, error) {
	var albums []models.Album
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&albums).Error
	return albums, err
}

func (r *AlbumRepository) Update(album *models.Album) error {
	return r.db.Save(album).Error
}

func (r *AlbumRepository) SetCoverImage(albumID uint, coverURL string) error {
	return r.db.Model(&models.Album{}).Where("id = ?", albumID).
		Update("cover_image", coverURL).Error
}

func (r *AlbumRepository) ShareURLExists(shareURL string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Album{}).Where("share_url = ?", shareURL).Count(&count).Error
	return count > 0, err
}
