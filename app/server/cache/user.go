package cache

import (
	"contact-manager/app/server/constants"
	"contact-manager/app/server/models"
	"context"
	"encoding/json"
	"fmt"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// UserCache 缓存鉴权时需要的用户信息。 rdb 为 nil 时所有操作都直接跳过
//
// 每个用户有一个版本号，Del 会先递增版本号再删除缓存；
// Set 只有在版本号与读取数据库之前（Get 时）一致时才会写入，
// 因此锁定之前读到的用户不会在锁定之后被写回缓存。
type UserCache struct {
	rdb *redis.Client
	l   *zap.Logger
}

// KEYS[1] 版本号 KEYS[2] 用户信息
// ARGV[1] 期望的版本号 ARGV[2] 用户信息 ARGV[3] 过期时间（毫秒）
var setIfVersion = redis.NewScript(`
local current = redis.call("GET", KEYS[1]) or "0"
if current ~= ARGV[1] then
	return 0
end
redis.call("SET", KEYS[2], ARGV[2], "PX", ARGV[3])
return 1
`)

func NewUserCache(rdb *redis.Client, l *zap.Logger) *UserCache {
	return &UserCache{rdb: rdb, l: l}
}

func infoKey(id uuid.UUID) string {
	return fmt.Sprintf(constants.CacheKeyUserInfo, id.String())
}

func versionKey(id uuid.UUID) string {
	return fmt.Sprintf(constants.CacheKeyUserVersion, id.String())
}

// Get 返回缓存中的用户（未命中时为 nil ）以及当前版本号，
// 未命中时应在查询数据库后把版本号原样交给 Set
func (uc *UserCache) Get(ctx context.Context, id uuid.UUID) (*models.User, string) {
	if uc == nil || uc.rdb == nil {
		return nil, ""
	}

	values, err := uc.rdb.MGet(ctx, infoKey(id), versionKey(id)).Result()
	if err != nil {
		uc.l.Error("failed to query cache for user info", zap.String("id", id.String()), zap.Error(err))
		return nil, ""
	}

	version := "0"
	if v, ok := values[1].(string); ok {
		version = v
	}

	cacheStr, ok := values[0].(string)
	if !ok {
		// 未命中
		return nil, version
	}

	var user models.User
	if err = json.Unmarshal([]byte(cacheStr), &user); err != nil {
		uc.l.Error("failed to unmarshal user info", zap.String("id", id.String()), zap.String("cache", cacheStr), zap.Error(err))
		// 可能是无效的缓存，清理掉
		uc.rdb.Del(ctx, infoKey(id))
		return nil, version
	}

	return &user, version
}

// Set 写入缓存，version 是 Get 返回的版本号；版本号已经变化时放弃写入
func (uc *UserCache) Set(ctx context.Context, user *models.User, version string) {
	if uc == nil || uc.rdb == nil || version == "" {
		return
	}

	cacheBytes, err := json.Marshal(user)
	if err != nil {
		uc.l.Error("failed to marshal user info", zap.String("id", user.ID.String()), zap.Error(err))
		return
	}

	written, err := setIfVersion.Run(ctx, uc.rdb,
		[]string{versionKey(user.ID), infoKey(user.ID)},
		version, cacheBytes, constants.CacheExpireUserInfo.Milliseconds(),
	).Int()
	if err != nil {
		uc.l.Error("failed to cache user info", zap.String("id", user.ID.String()), zap.Error(err))
		return
	}
	if written == 0 {
		uc.l.Debug("user changed while loading, skip caching", zap.String("id", user.ID.String()))
	}
}

// Del 在用户被修改或删除（数据库已提交）后调用
func (uc *UserCache) Del(ctx context.Context, id uuid.UUID) {
	if uc == nil || uc.rdb == nil {
		return
	}

	if _, err := uc.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, versionKey(id))
		pipe.Expire(ctx, versionKey(id), constants.CacheExpireUserVersion)
		pipe.Del(ctx, infoKey(id))
		return nil
	}); err != nil {
		uc.l.Error("failed to evict user info", zap.String("id", id.String()), zap.Error(err))
	}
}
