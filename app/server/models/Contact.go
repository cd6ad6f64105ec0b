package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"time"
)

type Contact struct {
	ID uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`

	Name  string `gorm:"column:name"`  // 联系人名称
	Email string `gorm:"column:email"` // 联系人邮箱
	Phone string `gorm:"column:phone"` // 联系人电话

	// 创建者
	PostedBy uuid.UUID `gorm:"column:posted_by;type:uuid;index"`
	Creator  *User     `gorm:"foreignKey:PostedBy;constraint:OnDelete:SET NULL"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c *Contact) BeforeCreate(*gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
