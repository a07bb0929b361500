package models

import (
	"time"
)

// Favorite, bir kullanıcının belirli bir fotoğrafı işaretlemesi.
// (user_id, photo_id) ikilisi için en fazla bir kayıt bulunabilir.
type Favorite struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index;uniqueIndex:idx_user_photo"`
	AlbumID   uint      `json:"album_id" gorm:"not null;index"`
	PhotoID   uint      `json:"photo_id" gorm:"not null;uniqueIndex:idx_user_photo"`
	CreatedAt time.Time `json:"created_at"`
}

func (Favorite) TableName() string {
	return "favorites"
}

// Toggle sonuçları
type FavoriteState string

const (
	FavoriteAdded   FavoriteState = "added"
	FavoriteRemoved FavoriteState = "removed"
)

type ToggleFavoriteRequest struct {
	PhotoID uint `json:"photo_id" validate:"required"`
}

type ToggleFavoriteResponse struct {
	PhotoID uint          `json:"photo_id"`
	State   FavoriteState `json:"state"`
}
