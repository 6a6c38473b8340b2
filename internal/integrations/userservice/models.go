package userservice

// Роли пользователей клуба
const (
	RoleAdmin   = "admin"
	RoleStaff   = "staff"
	RoleRegular = "regular"
)

// User модель пользователя из UserService
type User struct {
	ID         int64  `json:"id"`
	Email      string `json:"email"`
	Role       string `json:"role"` // admin / staff / regular
	IsActive   bool   `json:"is_active"`
	IsVerified bool   `json:"is_verified"`
}

// CanManageReservations возвращает true, если пользователь может
// просматривать и управлять чужими бронированиями
func (u *User) CanManageReservations() bool {
	return u.Role == RoleAdmin || u.Role == RoleStaff
}

// ErrorResponse модель ошибки от UserService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
