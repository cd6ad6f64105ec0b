package validators

import (
	"regexp"
	"strings"
)

// emailPattern 接受的邮箱语法：
//
//	address    = local "@" domain
//	local      = atom *("." atom) / quoted
//	atom       = 1*<任意字符，除 < > ( ) [ ] \ . , ; : 空白 @ ">
//	空白       = ASCII 空白、垂直制表符、Unicode 分隔符 (Z) 与 U+FEFF
//	quoted     = DQUOTE 1*<任意字符> DQUOTE
//	domain     = "[" ipv4 "]" / 1*(label ".") tld
//	ipv4       = 1*3DIGIT "." 1*3DIGIT "." 1*3DIGIT "." 1*3DIGIT
//	label      = 1*(ALPHA / DIGIT / "-")
//	tld        = 2*ALPHA
var emailPattern = regexp.MustCompile(`^(([^<>()\[\]\\.,;:\s\v\p{Z}\x{FEFF}@"]+(\.[^<>()\[\]\\.,;:\s\v\p{Z}\x{FEFF}@"]+)*)|(".+"))@((\[[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\])|(([a-zA-Z\-0-9]+\.)+[a-zA-Z]{2,}))$`)

// IsEmail 检查邮箱语法是否合法（大小写不敏感）
func IsEmail(email string) bool {
	return emailPattern.MatchString(strings.ToLower(email))
}

// NormalizeEmail 用于存储与查询，保证邮箱大小写不敏感地唯一
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
