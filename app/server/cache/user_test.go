package cache_test

import (
	"contact-manager/app/server/cache"
	"contact-manager/app/server/constants"
	"contact-manager/app/server/models"
	"context"
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newCache(t *testing.T) (*cache.UserCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return cache.NewUserCache(rdb, zap.NewNop()), mr
}

func infoKey(id uuid.UUID) string {
	return fmt.Sprintf(constants.CacheKeyUserInfo, id.String())
}

func TestUserCache_RoundTrip(t *testing.T) {
	uc, mr := newCache(t)
	ctx := context.Background()

	user := &models.User{
		ID:        uuid.New(),
		Name:      "Ann",
		Email:     "ann@x.com",
		Role:      models.RoleAdmin,
		IsBlocked: true,
		Password:  "$2a$10$hash",
	}

	got, version := uc.Get(ctx, user.ID)
	assert.Nil(t, got)
	assert.Equal(t, "0", version)

	uc.Set(ctx, user, version)
	key := infoKey(user.ID)
	require.True(t, mr.Exists(key))
	assert.Equal(t, constants.CacheExpireUserInfo, mr.TTL(key))

	// 密码哈希不会写入缓存
	raw, err := mr.Get(key)
	require.NoError(t, err)
	assert.NotContains(t, raw, "$2a$10$hash")

	got, _ = uc.Get(ctx, user.ID)
	require.NotNil(t, got)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, user.Email, got.Email)
	assert.Equal(t, user.Role, got.Role)
	assert.True(t, got.IsBlocked)
	assert.Empty(t, got.Password)

	uc.Del(ctx, user.ID)
	assert.False(t, mr.Exists(key))

	got, version = uc.Get(ctx, user.ID)
	assert.Nil(t, got)
	assert.Equal(t, "1", version)

	versionKey := fmt.Sprintf(constants.CacheKeyUserVersion, user.ID.String())
	assert.Equal(t, constants.CacheExpireUserVersion, mr.TTL(versionKey))
}

func TestUserCache_StaleFillAfterEviction(t *testing.T) {
	uc, mr := newCache(t)
	ctx := context.Background()

	id := uuid.New()

	// 请求 A：缓存未命中，记下版本号，从数据库读到未锁定的用户
	_, version := uc.Get(ctx, id)
	stale := &models.User{ID: id, Email: "ann@x.com"}

	// 同时管理员锁定了该用户并清理缓存
	uc.Del(ctx, id)

	// 请求 A 回填的旧数据不能进入缓存
	uc.Set(ctx, stale, version)
	assert.False(t, mr.Exists(infoKey(id)))

	// 之后的请求读到新版本号，可以正常回填
	_, version = uc.Get(ctx, id)
	uc.Set(ctx, &models.User{ID: id, Email: "ann@x.com", IsBlocked: true}, version)

	got, _ := uc.Get(ctx, id)
	require.NotNil(t, got)
	assert.True(t, got.IsBlocked)
}

func TestUserCache_FillBeforeEvictionIsRemoved(t *testing.T) {
	uc, mr := newCache(t)
	ctx := context.Background()

	id := uuid.New()

	// 回填发生在清理之前：清理会把它删掉
	_, version := uc.Get(ctx, id)
	uc.Set(ctx, &models.User{ID: id}, version)
	require.True(t, mr.Exists(infoKey(id)))

	uc.Del(ctx, id)
	assert.False(t, mr.Exists(infoKey(id)))
}

func TestUserCache_Expires(t *testing.T) {
	uc, mr := newCache(t)
	ctx := context.Background()

	user := &models.User{ID: uuid.New(), Email: "ann@x.com"}
	_, version := uc.Get(ctx, user.ID)
	uc.Set(ctx, user, version)

	mr.FastForward(constants.CacheExpireUserInfo)
	got, _ := uc.Get(ctx, user.ID)
	assert.Nil(t, got)
}

func TestUserCache_DropsInvalidEntry(t *testing.T) {
	uc, mr := newCache(t)
	ctx := context.Background()

	id := uuid.New()
	key := infoKey(id)
	require.NoError(t, mr.Set(key, "{not json"))

	got, _ := uc.Get(ctx, id)
	assert.Nil(t, got)
	assert.False(t, mr.Exists(key))
}

func TestUserCache_Disabled(t *testing.T) {
	ctx := context.Background()
	user := &models.User{ID: uuid.New()}

	for name, uc := range map[string]*cache.UserCache{
		"nil client": cache.NewUserCache(nil, zap.NewNop()),
		"nil cache":  nil,
	} {
		t.Run(name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				got, version := uc.Get(ctx, user.ID)
				assert.Nil(t, got)
				uc.Set(ctx, user, version)
				uc.Del(ctx, user.ID)
			})
		})
	}
}

func TestUserCache_ServerDown(t *testing.T) {
	uc, mr := newCache(t)
	ctx := context.Background()
	user := &models.User{ID: uuid.New()}

	mr.Close()

	// 缓存不可用时退化为未命中
	assert.NotPanics(t, func() {
		got, version := uc.Get(ctx, user.ID)
		assert.Nil(t, got)
		assert.Empty(t, version)
		uc.Set(ctx, user, "0")
		uc.Del(ctx, user.ID)
	})
}
