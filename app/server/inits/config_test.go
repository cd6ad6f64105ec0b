package inits_test

import (
	"contact-manager/app/server/inits"
	"contact-manager/app/server/password"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnv = []string{
	"MODE",
	"LISTEN",
	"DB_CONN",
	"REDIS_CONN",
	"SIGNATURE_SECRET_KEY",
	"PASSWORD_HASH",
	"INIT_ADMIN_EMAIL",
	"INIT_ADMIN_PASSWORD",
}

// setEnv 清空所有配置变量后再设置 vars ，测试结束时自动恢复
func setEnv(t *testing.T, vars map[string]string) {
	t.Helper()

	for _, key := range configEnv {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	for key, value := range vars {
		t.Setenv(key, value)
	}
}

func TestConfig_Defaults(t *testing.T) {
	setEnv(t, map[string]string{
		"DB_CONN":              "host=localhost dbname=contacts",
		"SIGNATURE_SECRET_KEY": "secret",
	})

	cfg, err := inits.Config()
	require.NoError(t, err)

	assert.False(t, cfg.System.IsProd)
	assert.Equal(t, ":1323", cfg.System.Listen)
	assert.Equal(t, "host=localhost dbname=contacts", cfg.System.DBConnectionString)
	assert.Empty(t, cfg.System.RedisConnectionString)
	assert.Equal(t, "secret", cfg.Security.SignatureSecretKey)
	assert.Equal(t, password.AlgoBcrypt, cfg.Security.PasswordHash)
	assert.Empty(t, cfg.InitAdmin.Email)
}

func TestConfig_Overrides(t *testing.T) {
	setEnv(t, map[string]string{
		"MODE":                 "Production",
		"LISTEN":               "127.0.0.1:8080",
		"DB_CONN":              "postgres://localhost/contacts",
		"REDIS_CONN":           "redis://localhost:6379/0",
		"SIGNATURE_SECRET_KEY": "secret",
		"PASSWORD_HASH":        "Argon2id",
		"INIT_ADMIN_EMAIL":     "root@x.com",
		"INIT_ADMIN_PASSWORD":  "secret1",
	})

	cfg, err := inits.Config()
	require.NoError(t, err)

	assert.True(t, cfg.System.IsProd)
	assert.Equal(t, "127.0.0.1:8080", cfg.System.Listen)
	assert.Equal(t, "redis://localhost:6379/0", cfg.System.RedisConnectionString)
	assert.Equal(t, password.AlgoArgon2id, cfg.Security.PasswordHash)
	assert.Equal(t, "root@x.com", cfg.InitAdmin.Email)
	assert.Equal(t, "secret1", cfg.InitAdmin.Password)
}

func TestConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
	}{
		{
			name: "missing DB_CONN",
			vars: map[string]string{"SIGNATURE_SECRET_KEY": "secret"},
		},
		{
			name: "missing SIGNATURE_SECRET_KEY",
			vars: map[string]string{"DB_CONN": "db"},
		},
		{
			name: "empty SIGNATURE_SECRET_KEY",
			vars: map[string]string{"DB_CONN": "db", "SIGNATURE_SECRET_KEY": ""},
		},
		{
			name: "unknown PASSWORD_HASH",
			vars: map[string]string{"DB_CONN": "db", "SIGNATURE_SECRET_KEY": "secret", "PASSWORD_HASH": "md5"},
		},
		{
			name: "admin email without password",
			vars: map[string]string{"DB_CONN": "db", "SIGNATURE_SECRET_KEY": "secret", "INIT_ADMIN_EMAIL": "root@x.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnv(t, tt.vars)

			_, err := inits.Config()
			assert.Error(t, err)
		})
	}
}
