package repository

import (
	"errors"

	"github.com/selimacar/studiofoto-backend/internal/models"
	"gorm.io/gorm"
)

type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

func (r *FavoriteRepository) GetByUserAndPhoto(userID, photoID uint) (*models.Favorite, error) {
	var favorite models.Favorite
	err := r.db.Where("user_id = ? AND photo_id = ?", userID, photoID).First(&favorite).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &favorite, nil
}

func (r *FavoriteRepository) Create(favorite *models.Favorite) error {
	return r.db.Create(favorite).Error
}

func (r *FavoriteRepository) Delete(id uint) error {
	return r.db.Delete(&models.Favorite{}, id).Error
}

func (r *FavoriteRepository) GetByUserAndAlbum(userID, albumID uint) ([]models.Favorite, error) {
	var favorites []models.Favorite
	err := r.db.Where("user_id = ? AND album_id = ?", userID, albumID).Find(&favorites).Error
	return favorites, err
}
