package constants

import "time"

const (
	AuthTokenDuration = 24 * time.Hour // 登录 token 有效期：一天
)

// 存放在 echo context 中的键
const (
	ContextKeyJWTUser = "jwtUser"
	ContextKeyUser    = "user"
)
