package qrcode

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// QRService, albüm paylaşım linkleri için QR kod üretir
type QRService struct {
	baseURL string // Temel URL (örn: "https://studiofoto.co/g/")
}

func NewQRService(baseURL string) *QRService {
	return &QRService{
		baseURL: baseURL,
	}
}

// GenerateQRCode, verilen paylaşım slug'ı için PNG formatında QR kod üretir
func (s *QRService) GenerateQRCode(shareURL string, size int) ([]byte, error) {
	fullURL := fmt.Sprintf("%s%s", s.baseURL, shareURL)

	png, err := qrcode.Encode(fullURL, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code PNG: %w", err)
	}

	return png, nil
}
