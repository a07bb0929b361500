package repository

import "errors"

// Repository katmanının ortak sentinel hataları. Üst katmanlar errors.Is
// ile ayırt eder; handler'lar HTTP 404/409'a çevirir.
var (
	// ErrNotFound, aranan kaydın bulunamadığını belirtir.
	ErrNotFound = errors.New("record not found")

	// ErrConflict, koşullu bir güncellemenin mevcut duruma uymadığını
	// (örn. aynı rezervasyon için yarışan iki geçiş) belirtir.
	ErrConflict = errors.New("conflict")
)
