package repository

import (
	"errors"

	"github.com/selimacar/studiofoto-backend/internal/models"
	"gorm.io/gorm"
)

type PhotoRepository struct {
	db *gorm.DB
}

func NewPhotoRepository(db *gorm.DB) *PhotoRepository {
	return &PhotoRepository{db: db}
}

// CreateWithCount, fotoğraf kaydını ve albümün photo_count artışını tek
// transaction içinde uygular. Böylece sayaç hiçbir zaman gerçek fotoğraf
// sayısından sapmaz; batch'in kalanı başarısız olsa bile bu öğe sayılmış olur.
func (r *PhotoRepository) CreateWithCount(photo *models.Photo) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(photo).Error; err != nil {
			return err
		}
		return tx.Model(&models.Album{}).
			Where("id = ?", photo.AlbumID).
			UpdateColumn("photo_count", gorm.Expr("photo_count + ?", 1)).Error
	})
}

// DeleteWithCount, fotoğrafı siler, sayaçtan düşer ve albümün kapağı bu
// fotoğrafa işaret ediyorsa kapağı temizler. Yerine yenisi seçilmez.
func (r *PhotoRepository) DeleteWithCount(photo *models.Photo) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Photo{}, photo.ID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		if err := tx.Model(&models.Album{}).
			Where("id = ?", photo.AlbumID).
			UpdateColumn("photo_count", gorm.Expr("photo_count - ?", 1)).Error; err != nil {
			return err
		}
		return tx.Model(&models.Album{}).
			Where("id = ? AND cover_image = ?", photo.AlbumID, photo.URL).
			UpdateColumn("cover_image", "").Error
	})
}

func (r *PhotoRepository) GetByID(id uint) (*models.Photo, error) {
	var photo models.Photo
	err := r.db.First(&photo, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &photo, nil
}

func (r *PhotoRepository) GetByAlbumID(albumID uint) ([]models.Photo, error) {
	var photos []models.Photo
	err := r.db.Where("album_id = ?", albumID).
		Order("created_at ASC").
		Find(&photos).Error
	return photos, err
}

func (r *PhotoRepository) CountByAlbumID(albumID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Photo{}).Where("album_id = ?", albumID).Count(&count).Error
	return count, err
}
