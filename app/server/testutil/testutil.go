package testutil

import (
	"contact-manager/app/server/jwt"
	"contact-manager/app/server/models"
	"contact-manager/app/server/password"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenDB opens an in-memory SQLite database private to the test and migrates
// the models into it.
func OpenDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_", "#", "_").Replace(t.Name())
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "open test db")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// 内存库只在连接存活时存在
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Contact{}), "migrate test db")
	return db
}

// CreateUser stores a user whose password is hashed with bcrypt.
func CreateUser(t *testing.T, db *gorm.DB, name, email, plain string, role models.Role, blocked bool) *models.User {
	t.Helper()

	hasher, err := password.New(password.AlgoBcrypt)
	require.NoError(t, err)
	hash, err := hasher.Hash(plain)
	require.NoError(t, err)

	user := &models.User{
		Name:      name,
		Email:     email,
		Role:      role,
		IsBlocked: blocked,
		Password:  hash,
	}
	require.NoError(t, db.Create(user).Error, "create user %s", email)
	return user
}

// CreateContact stores a contact created by postedBy.
func CreateContact(t *testing.T, db *gorm.DB, name string, postedBy *models.User) *models.Contact {
	t.Helper()

	contact := &models.Contact{
		Name:     name,
		Email:    strings.ToLower(name) + "@contacts.test",
		Phone:    "+1 555 0100",
		PostedBy: postedBy.ID,
	}
	require.NoError(t, db.Create(contact).Error, "create contact %s", name)
	return contact
}

// Token signs a token for user valid for ttl (negative ttl yields an expired token).
func Token(t *testing.T, j *jwt.JWT, user *models.User, ttl time.Duration) string {
	t.Helper()

	now := time.Now()
	token, err := j.SignToken(&jwt.User{
		ID:       user.ID,
		IssuedAt: now.Unix(),
		Expires:  now.Add(ttl).Unix(),
	})
	require.NoError(t, err)
	return token
}
