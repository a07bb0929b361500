package models

import (
	"time"
)

// Album, bir müşteriye atanmış (veya henüz atanmamış) fotoğraf koleksiyonu.
// PhotoCount her zaman albüme bağlı Photo kayıtlarının sayısına eşit tutulur;
// artırma/azaltma fotoğraf yazmalarıyla aynı transaction içinde yapılır.
type Album struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      *uint     `json:"user_id" gorm:"index"` // nil = henüz müşteriye atanmadı
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description"`
	CoverImage  string    `json:"cover_image"`
	ShareURL    string    `json:"share_url" gorm:"unique;not null"`
	IsPublished bool      `json:"is_published" gorm:"default:false"`
	PhotoCount  int       `json:"photo_count" gorm:"default:0"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type AlbumRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	UserID      *uint  `json:"user_id"`
	IsPublished bool   `json:"is_published"`
}
