package storage

import "io"

// StorageService, blob storage collaborator'ının yüzü. Dönen referanslar
// opak string'lerdir; domain katmanı içeriğini yorumlamaz.
type StorageService interface {
	Upload(key string, reader io.Reader) error
	Delete(key string) error
	PublicURL(key string) string
}
