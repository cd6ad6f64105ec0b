package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"time"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	ID uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`

	// 基础信息
	Name      string `gorm:"column:name"`                // 显示名称
	Email     string `gorm:"column:email;uniqueIndex"`   // 邮箱，全部小写存储，全局唯一
	Role      Role   `gorm:"column:role;default:'user'"` // 角色：管理员可以查看、锁定、删除用户
	IsBlocked bool   `gorm:"column:is_blocked;index"`    // 是否被锁定：锁定后无法登录，已签发的 token 也会被拒绝

	// 登录认证相关
	Password string `gorm:"column:password" json:"-"` // 密码哈希，不会被序列化

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.Role == "" {
		u.Role = RoleUser
	}
	return nil
}
