package inits

import (
	"contact-manager/app/server/config"
	"contact-manager/app/server/models"
	"contact-manager/app/server/password"
	"contact-manager/app/server/validators"
	"fmt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func DB(conn string) (db *gorm.DB, err error) {
	// 打开连接
	if db, err = gorm.Open(postgres.Open(conn), &gorm.Config{
		TranslateError: true, // 唯一索引冲突转换为 gorm.ErrDuplicatedKey
	}); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// 迁移
	if err = Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// 返回
	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Contact{},
	)
}

// InitData 在没有任何用户时创建初始管理员
func InitData(db *gorm.DB, hasher *password.Hasher, cfg *config.Config) (created bool, err error) {
	if cfg.InitAdmin.Email == "" {
		// 没有配置初始管理员
		return false, nil
	}

	// 查询现有记录数量
	var counter int64
	if err = db.Model(&models.User{}).Count(&counter).Error; err != nil {
		return false, fmt.Errorf("failed to get user count: %w", err)
	} else if counter > 0 {
		return false, nil
	}

	// 创建密码
	var passwordHash string
	if passwordHash, err = hasher.Hash(cfg.InitAdmin.Password); err != nil {
		return false, fmt.Errorf("failed to generate password: %w", err)
	}

	// 插入记录
	if err = db.Create(&models.User{
		Name:     "Admin",
		Email:    validators.NormalizeEmail(cfg.InitAdmin.Email),
		Role:     models.RoleAdmin,
		Password: passwordHash,
	}).Error; err != nil {
		return false, fmt.Errorf("failed to create admin user: %w", err)
	}

	return true, nil
}
