package constants

import "time"

const (
	CacheKeyUserInfo    = "cm:user:info:%s"    // %s -> user id
	CacheKeyUserVersion = "cm:user:version:%s" // %s -> user id ，每次失效时递增
)

const (
	CacheExpireUserInfo = 1 * time.Hour
	// 版本号必须比缓存活得更久，否则旧的写入可能在版本号过期后生效
	CacheExpireUserVersion = 2 * CacheExpireUserInfo
)
