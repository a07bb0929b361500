package service

import (
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/selimacar/studiofoto-backend/internal/models"
	"github.com/selimacar/studiofoto-backend/internal/repository"
	"github.com/selimacar/studiofoto-backend/pkg/logger"
	"github.com/selimacar/studiofoto-backend/pkg/storage"
	"github.com/selimacar/studiofoto-backend/pkg/utils"
)

const maxPhotoSize = 20 * 1024 * 1024 // 20MB

type GalleryService struct {
	albumRepo    *repository.AlbumRepository
	photoRepo    *repository.PhotoRepository
	favoriteRepo *repository.FavoriteRepository
	blobStorage  storage.StorageService
}

func NewGalleryService(
	albumRepo *repository.AlbumRepository,
	photoRepo *repository.PhotoRepository,
	favoriteRepo *repository.FavoriteRepository,
	blobStorage storage.StorageService,
) *GalleryService {
	return &GalleryService{
		albumRepo:    albumRepo,
		photoRepo:    photoRepo,
		favoriteRepo: favoriteRepo,
		blobStorage:  blobStorage,
	}
}

// CreateAlbum yeni bir albüm oluşturur: sayaç 0, kapak boş, paylaşım için
// rastgele bir slug üretilir.
func (s *GalleryService) CreateAlbum(req models.AlbumRequest, actor Actor) (*models.Album, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	// Benzersiz paylaşım slug'ı üret
	shareURL := utils.GenerateRandomString(10)
	for {
		exists, err := s.albumRepo.ShareURLExists(shareURL)
		if err != nil {
			return nil, err
		}
		if !exists {
			break
		}
		shareURL = utils.GenerateRandomString(10)
	}

	album := &models.Album{
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
		ShareURL:    shareURL,
		IsPublished: req.IsPublished,
		PhotoCount:  0,
	}

	return s.albumRepo.Create(album)
}

// AddPhotos, dosyaları albüme tek tek ekler. Her fotoğraf kendi transaction'ı
// içinde kaydedilip sayılır: bir öğe başarısız olursa batch orada durur ama
// o ana kadar eklenenler sayaçla tutarlı kalır. Eklenen fotoğraflar hatayla
// birlikte döner.
func (s *GalleryService) AddPhotos(albumID uint, files []*multipart.FileHeader, actor Actor) ([]models.Photo, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	album, err := s.albumRepo.GetByID(albumID)
	if err != nil {
		return nil, err
	}

	var added []models.Photo
	for _, file := range files {
		photo, err := s.addPhoto(album, file)
		if err != nil {
			return added, fmt.Errorf("upload of %q failed: %w", file.Filename, err)
		}
		added = append(added, *photo)
	}

	logger.L().Infow("photos added", "album_id", albumID, "count", len(added))
	return added, nil
}

func (s *GalleryService) addPhoto(album *models.Album, file *multipart.FileHeader) (*models.Photo, error) {
	contentType := file.Header.Get("Content-Type")
	if !isValidImageType(contentType) {
		return nil, fmt.Errorf("%w: unsupported file type %q", ErrValidation, contentType)
	}
	if file.Size > maxPhotoSize {
		return nil, fmt.Errorf("%w: file exceeds %d bytes", ErrValidation, maxPhotoSize)
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	// R2'ye yükle
	key := fmt.Sprintf("albums/%d/%s%s", album.ID, uuid.NewString(), filepath.Ext(file.Filename))
	if err := s.blobStorage.Upload(key, src); err != nil {
		return nil, fmt.Errorf("storage upload failed: %w", err)
	}

	photo := &models.Photo{
		AlbumID:  album.ID,
		URL:      s.blobStorage.PublicURL(key),
		R2Key:    key,
		FileName: file.Filename,
		FileSize: file.Size,
		MimeType: contentType,
	}

	// Kayıt ve sayaç artışı tek transaction'da
	if err := s.photoRepo.CreateWithCount(photo); err != nil {
		// Cleanup
		_ = s.blobStorage.Delete(key)
		return nil, err
	}

	return photo, nil
}

// SetCoverImage, albümün kapağını verilen fotoğrafın URL'i yapar.
// Fotoğraf albüme ait değilse ErrPhotoNotInAlbum döner.
func (s *GalleryService) SetCoverImage(albumID, photoID uint, actor Actor) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}

	photo, err := s.photoRepo.GetByID(photoID)
	if err != nil {
		return err
	}
	if photo.AlbumID != albumID {
		return ErrPhotoNotInAlbum
	}

	return s.albumRepo.SetCoverImage(albumID, photo.URL)
}

// DeletePhotos, verilen fotoğrafları siler ve sayaçtan düşer. Silinen set
// mevcut kapağı içeriyorsa kapak temizlenir, yerine yenisi seçilmez.
func (s *GalleryService) DeletePhotos(albumID uint, photoIDs []uint, actor Actor) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}

	if _, err := s.albumRepo.GetByID(albumID); err != nil {
		return err
	}

	for _, photoID := range photoIDs {
		photo, err := s.photoRepo.GetByID(photoID)
		if err != nil {
			return err
		}
		if photo.AlbumID != albumID {
			return ErrPhotoNotInAlbum
		}

		// Önce storage'dan sil
		if err := s.blobStorage.Delete(photo.R2Key); err != nil {
			return fmt.Errorf("storage delete failed: %w", err)
		}

		if err := s.photoRepo.DeleteWithCount(photo); err != nil {
			return err
		}
	}

	logger.L().Infow("photos deleted", "album_id", albumID, "count", len(photoIDs))
	return nil
}

// ToggleFavorite idempotent bir toggle'dır: kayıt varsa kaldırır, yoksa
// ekler. Kullanıcı albümün sahibi değilse ve albüm yayında değilse
// ErrAccessDenied döner.
func (s *GalleryService) ToggleFavorite(userID, albumID, photoID uint) (models.FavoriteState, error) {
	album, err := s.albumRepo.GetByID(albumID)
	if err != nil {
		return "", err
	}

	isOwner := album.UserID != nil && *album.UserID == userID
	if !isOwner && !album.IsPublished {
		return "", ErrAccessDenied
	}

	photo, err := s.photoRepo.GetByID(photoID)
	if err != nil {
		return "", err
	}
	if photo.AlbumID != albumID {
		return "", ErrPhotoNotInAlbum
	}

	existing, err := s.favoriteRepo.GetByUserAndPhoto(userID, photoID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return "", err
	}

	if existing != nil {
		if err := s.favoriteRepo.Delete(existing.ID); err != nil {
			return "", err
		}
		return models.FavoriteRemoved, nil
	}

	favorite := &models.Favorite{
		UserID:  userID,
		AlbumID: albumID,
		PhotoID: photoID,
	}
	if err := s.favoriteRepo.Create(favorite); err != nil {
		return "", err
	}
	return models.FavoriteAdded, nil
}

// ListAlbumsForUser, kullanıcının albümlerini oluşturulma tarihine göre
// azalan sırada döner.
func (s *GalleryService) ListAlbumsForUser(userID uint) ([]models.Album, error) {
	return s.albumRepo.GetByUserID(userID)
}

// GetAlbumPhotos, erişim kontrolüyle albüm fotoğraflarını döner ve
// kullanıcının favori işaretlerini yanıta işler.
func (s *GalleryService) GetAlbumPhotos(albumID uint, actor Actor) ([]models.PhotoResponse, error) {
	album, err := s.albumRepo.GetByID(albumID)
	if err != nil {
		return nil, err
	}

	isOwner := album.UserID != nil && *album.UserID == actor.UserID
	if !actor.IsAdmin() && !isOwner && !album.IsPublished {
		return nil, ErrAccessDenied
	}

	photos, err := s.photoRepo.GetByAlbumID(albumID)
	if err != nil {
		return nil, err
	}

	favorited := make(map[uint]bool)
	if actor.UserID != 0 {
		favorites, err := s.favoriteRepo.GetByUserAndAlbum(actor.UserID, albumID)
		if err != nil {
			return nil, err
		}
		for _, f := range favorites {
			favorited[f.PhotoID] = true
		}
	}

	responses := make([]models.PhotoResponse, 0, len(photos))
	for _, photo := range photos {
		responses = append(responses, models.PhotoResponse{
			ID:        photo.ID,
			AlbumID:   photo.AlbumID,
			URL:       photo.URL,
			Caption:   photo.Caption,
			Favorited: favorited[photo.ID],
			CreatedAt: photo.CreatedAt,
		})
	}
	return responses, nil
}

// GetPublicAlbum, paylaşım URL'i üzerinden yayındaki albümü döner
func (s *GalleryService) GetPublicAlbum(shareURL string) (*models.Album, []models.Photo, error) {
	album, err := s.albumRepo.GetByShareURL(shareURL)
	if err != nil {
		return nil, nil, err
	}
	if !album.IsPublished {
		return nil, nil, ErrAccessDenied
	}

	photos, err := s.photoRepo.GetByAlbumID(album.ID)
	if err != nil {
		return nil, nil, err
	}
	return album, photos, nil
}

// UpdateAlbum, başlık/açıklama/sahip/yayın durumunu günceller
func (s *GalleryService) UpdateAlbum(albumID uint, req models.AlbumRequest, actor Actor) (*models.Album, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	album, err := s.albumRepo.GetByID(albumID)
	if err != nil {
		return nil, err
	}

	album.Title = req.Title
	album.Description = req.Description
	album.UserID = req.UserID
	album.IsPublished = req.IsPublished

	if err := s.albumRepo.Update(album); err != nil {
		return nil, err
	}
	return album, nil
}

func isValidImageType(contentType string) bool {
	validTypes := map[string]bool{
		"image/jpeg": true,
		"image/png":  true,
		"image/gif":  true,
		"image/webp": true,
	}
	return validTypes[contentType]
}
