package validators

import (
	"strings"
	"unicode/utf8"
)

const (
	PasswordMinLength = 5
	// PasswordMaxBytes bcrypt 只使用前 72 个字节
	PasswordMaxBytes = 72
)

// IsPassword 密码策略：至少 5 个字符（不超过 72 字节），且至少包含一个数字 (0-9)
func IsPassword(password string) bool {
	return utf8.RuneCountInString(password) >= PasswordMinLength &&
		len(password) <= PasswordMaxBytes &&
		strings.ContainsAny(password, "0123456789")
}
