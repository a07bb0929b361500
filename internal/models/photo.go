package models

import (
	"time"
)

type Photo struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	AlbumID   uint      `json:"album_id" gorm:"not null;index"`
	URL       string    `json:"url" gorm:"not null"`
	R2Key     string    `json:"-" gorm:"not null"`
	Caption   string    `json:"caption,omitempty"`
	FileName  string    `json:"file_name"`
	FileSize  int64     `json:"file_size"`
	MimeType  string    `json:"mime_type"`
	CreatedAt time.Time `json:"created_at"`
}

type PhotoResponse struct {
	ID        uint      `json:"id"`
	AlbumID   uint      `json:"album_id"`
	URL       string    `json:"url"`
	Caption   string    `json:"caption,omitempty"`
	Favorited bool      `json:"favorited"`
	CreatedAt time.Time `json:"created_at"`
}

type DeletePhotosRequest struct {
	PhotoIDs []uint `json:"photo_ids" validate:"required,min=1"`
}

type SetCoverRequest struct {
	PhotoID uint `json:"photo_id" validate:"required"`
}
