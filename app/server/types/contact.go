package types

import (
	"contact-manager/app/server/models"
	"github.com/google/uuid"
	"time"
)

type ContactInfo struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	PostedBy  *UserInfo `json:"postedBy"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewContactInfo(c *models.Contact) ContactInfo {
	info := ContactInfo{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
	}
	if c.Creator != nil {
		info.PostedBy = NewUserInfo(c.Creator)
	}
	return info
}
