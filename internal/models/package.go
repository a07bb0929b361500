package models

import "time"

// Package, stüdyonun satın alınabilir çekim paketlerini temsil eder.
// Sadece admin tarafından oluşturulur ve düzenlenir.
type Package struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description"`
	Category    string    `json:"category" gorm:"not null"`
	Price       float64   `json:"price" gorm:"not null"`
	Duration    string    `json:"duration" gorm:"not null"` // Çekim süresi (örn: "2 hours")
	Features    []string  `json:"features" gorm:"type:json;serializer:json"`
	Tags        []string  `json:"tags" gorm:"type:json;serializer:json"`
	Popular     bool      `json:"popular" gorm:"default:false"` // Sadece vitrin için, iş kuralı değil
	IsActive    bool      `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RankItem, ilgili paket önerileri için skorlama girdisi üretir
func (p Package) RankItem() RankItem {
	return RankItem{
		ID:       p.ID,
		Title:    p.Name,
		Category: p.Category,
		Tags:     p.Tags,
	}
}

type PackageRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Category    string   `json:"category" validate:"required"`
	Price       float64  `json:"price" validate:"required,gte=0"`
	Duration    string   `json:"duration" validate:"required"`
	Features    []string `json:"features"`
	Tags        []string `json:"tags"`
	Popular     bool     `json:"popular"`
}
