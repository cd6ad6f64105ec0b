package config

type Config struct {
	System struct {
		IsProd                bool   // 是否为生产环境
		Listen                string // 监听地址
		DBConnectionString    string // Postgres 数据库的连接字符串
		RedisConnectionString string // Redis 连接字符串，留空则不启用用户信息缓存
	}
	Security struct {
		SignatureSecretKey string // 签名密钥，用于签发 JWT ，更新会导致旧有会话失效
		PasswordHash       string // 新密码使用的哈希算法： bcrypt 或 argon2id
	}
	InitAdmin struct {
		Email    string // 用户表为空时创建的初始管理员邮箱
		Password string // 初始管理员密码
	}
}
