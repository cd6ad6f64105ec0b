// Package password hashes and verifies user passwords.
//
// New hashes are produced with the configured algorithm; Check accepts both
// bcrypt and argon2id hashes regardless of that setting.
package password

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexedwards/argon2id"
	"golang.org/x/crypto/bcrypt"
)

const (
	AlgoBcrypt   = "bcrypt"
	AlgoArgon2id = "argon2id"
)

// BcryptCost 每次哈希都会生成随机盐
const BcryptCost = 10

// bcryptMaxBytes bcrypt 只使用输入的前 72 个字节
const bcryptMaxBytes = 72

var (
	ErrEmptyPassword   = errors.New("password is empty")
	ErrPasswordTooLong = errors.New("password is longer than 72 bytes")
)

type Hasher struct {
	algo string
}

func New(algo string) (*Hasher, error) {
	switch algo {
	case AlgoBcrypt, AlgoArgon2id:
		return &Hasher{algo: algo}, nil
	case "":
		return &Hasher{algo: AlgoBcrypt}, nil
	default:
		return nil, fmt.Errorf("unknown password hash algorithm: %s", algo)
	}
}

func (h *Hasher) Algo() string {
	return h.algo
}

func (h *Hasher) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	switch h.algo {
	case AlgoArgon2id:
		hash, err := argon2id.CreateHash(password, argon2id.DefaultParams)
		if err != nil {
			return "", fmt.Errorf("argon2id hash: %w", err)
		}
		return hash, nil
	default:
		if len(password) > bcryptMaxBytes {
			return "", ErrPasswordTooLong
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
		if err != nil {
			return "", fmt.Errorf("bcrypt hash: %w", err)
		}
		return string(hash), nil
	}
}

// Check reports whether password matches hash. A mismatch is not an error.
func (h *Hasher) Check(password string, hash string) (bool, error) {
	if strings.HasPrefix(hash, "$argon2id$") {
		match, _, err := argon2id.CheckHash(password, hash)
		if err != nil {
			return false, fmt.Errorf("argon2id check: %w", err)
		}
		return match, nil
	}

	// bcrypt 会截断超过 72 字节的输入，这样的密码不可能是注册时设置的
	if len(password) > bcryptMaxBytes {
		return false, nil
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return false, fmt.Errorf("bcrypt check: %w", err)
	}

	return true, nil
}
