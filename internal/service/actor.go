package service

import "github.com/selimacar/studiofoto-backend/internal/models"

// Actor, işlemi yapan kimliği taşır. Global session durumu yerine her
// operasyona açıkça geçirilir; yetki kontrolleri bu değer üzerinden yapılır.
type Actor struct {
	UserID uint
	Role   models.UserRole
}

func (a Actor) IsAdmin() bool {
	return a.Role == models.RoleAdmin
}
