package handlers

import (
	"contact-manager/app/server/cache"
	"contact-manager/app/server/jwt"
	"contact-manager/app/server/password"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	l      *zap.Logger      // 日志
	db     *gorm.DB         // 数据库
	uc     *cache.UserCache // 用户信息缓存（ Redis ，可为空）
	jwt    *jwt.JWT         // JWT ，用于无状态验证
	hasher *password.Hasher // 密码哈希
	isProd bool             // 生产环境下不向客户端返回内部错误详情
}

func NewApp(l *zap.Logger, db *gorm.DB, rdb *redis.Client, j *jwt.JWT, hasher *password.Hasher, isProd bool) *App {
	return &App{
		l:      l,
		db:     db,
		uc:     cache.NewUserCache(rdb, l),
		jwt:    j,
		hasher: hasher,
		isProd: isProd,
	}
}
