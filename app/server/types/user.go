package types

import (
	"contact-manager/app/server/models"
	"github.com/google/uuid"
	"time"
)

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email_syntax"`
	Password string `json:"password" validate:"required,password_policy"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email_syntax"`
	Password string `json:"password" validate:"required"`
}

// UserInfo 是用户的公开视图，不含密码哈希
type UserInfo struct {
	ID        uuid.UUID   `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Role      models.Role `json:"role"`
	IsBlocked bool        `json:"isBlocked"`
	CreatedAt time.Time   `json:"createdAt"`
}

func NewUserInfo(u *models.User) *UserInfo {
	return &UserInfo{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		IsBlocked: u.IsBlocked,
		CreatedAt: u.CreatedAt,
	}
}

type LoginToken struct {
	Token string    `json:"token"`
	User  *UserInfo `json:"user"`
}

type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}

type UserDeleteResponse struct {
	Result   DeleteResult  `json:"result"`
	Contacts []ContactInfo `json:"contacts"`
}
