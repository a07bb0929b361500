package service

import "errors"

// Domain hataları. Handler'lar errors.Is ile HTTP koduna çevirir:
// validasyon 400, yetki 403, geçersiz geçiş 400, yarış kaybı 409.
var (
	ErrValidation        = errors.New("validation failed")
	ErrInvalidPackage    = errors.New("package does not exist")
	ErrInvalidSchedule   = errors.New("invalid booking date or time slot")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrForbidden         = errors.New("forbidden")
	ErrPhotoNotInAlbum   = errors.New("photo does not belong to album")
	ErrAccessDenied      = errors.New("access denied")
)
