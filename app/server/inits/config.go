package inits

import (
	"contact-manager/app/server/config"
	"contact-manager/app/server/password"
	"fmt"
	"os"
	"strings"
)

func Config() (*config.Config, error) {
	var cfg config.Config

	{
		mode, exist := os.LookupEnv("MODE")
		cfg.System.IsProd = exist && strings.HasPrefix(strings.ToLower(mode), "p")
	}

	if listen, exist := os.LookupEnv("LISTEN"); !exist {
		cfg.System.Listen = ":1323" // 默认监听地址
	} else {
		cfg.System.Listen = listen
	}

	if dbconn, exist := os.LookupEnv("DB_CONN"); !exist {
		return nil, fmt.Errorf("DB_CONN environment variable not set")
	} else {
		cfg.System.DBConnectionString = dbconn
	}

	// 可选：不设置时不使用缓存
	cfg.System.RedisConnectionString = os.Getenv("REDIS_CONN")

	if sigsk, exist := os.LookupEnv("SIGNATURE_SECRET_KEY"); !exist || sigsk == "" {
		return nil, fmt.Errorf("SIGNATURE_SECRET_KEY environment variable not set")
	} else {
		cfg.Security.SignatureSecretKey = sigsk
	}

	if algo, exist := os.LookupEnv("PASSWORD_HASH"); !exist {
		cfg.Security.PasswordHash = password.AlgoBcrypt
	} else {
		algo = strings.ToLower(algo)
		if algo != password.AlgoBcrypt && algo != password.AlgoArgon2id {
			return nil, fmt.Errorf("PASSWORD_HASH should be one of %s, %s", password.AlgoBcrypt, password.AlgoArgon2id)
		}
		cfg.Security.PasswordHash = algo
	}

	cfg.InitAdmin.Email = os.Getenv("INIT_ADMIN_EMAIL")
	cfg.InitAdmin.Password = os.Getenv("INIT_ADMIN_PASSWORD")
	if cfg.InitAdmin.Email != "" && cfg.InitAdmin.Password == "" {
		return nil, fmt.Errorf("INIT_ADMIN_PASSWORD is required when INIT_ADMIN_EMAIL is set")
	}

	return &cfg, nil
}
