package password_test

import (
	"contact-manager/app/server/password"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNew(t *testing.T) {
	tests := []struct {
		algo    string
		want    string
		wantErr bool
	}{
		{algo: "", want: password.AlgoBcrypt},
		{algo: password.AlgoBcrypt, want: password.AlgoBcrypt},
		{algo: password.AlgoArgon2id, want: password.AlgoArgon2id},
		{algo: "md5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("algo "+tt.algo, func(t *testing.T) {
			h, err := password.New(tt.algo)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, h.Algo())
		})
	}
}

func TestHash_Bcrypt(t *testing.T) {
	h, err := password.New(password.AlgoBcrypt)
	require.NoError(t, err)

	first, err := h.Hash("abcd1")
	require.NoError(t, err)
	second, err := h.Hash("abcd1")
	require.NoError(t, err)

	// 随机盐：同一密码两次哈希结果不同
	assert.NotEqual(t, first, second)
	assert.NotContains(t, first, "abcd1")

	cost, err := bcrypt.Cost([]byte(first))
	require.NoError(t, err)
	assert.Equal(t, password.BcryptCost, cost)

	for _, hash := range []string{first, second} {
		match, err := h.Check("abcd1", hash)
		require.NoError(t, err)
		assert.True(t, match)

		match, err = h.Check("abcd2", hash)
		require.NoError(t, err)
		assert.False(t, match)
	}
}

func TestHash_Argon2id(t *testing.T) {
	h, err := password.New(password.AlgoArgon2id)
	require.NoError(t, err)

	hash, err := h.Hash("abcd1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))

	match, err := h.Check("abcd1", hash)
	require.NoError(t, err)
	assert.True(t, match)

	match, err = h.Check("abcd2", hash)
	require.NoError(t, err)
	assert.False(t, match)
}

func TestCheck_AcceptsEitherAlgorithm(t *testing.T) {
	bh, err := password.New(password.AlgoBcrypt)
	require.NoError(t, err)
	ah, err := password.New(password.AlgoArgon2id)
	require.NoError(t, err)

	bcryptHash, err := bh.Hash("secret1")
	require.NoError(t, err)
	argonHash, err := ah.Hash("secret1")
	require.NoError(t, err)

	// 切换算法后旧哈希仍能验证
	match, err := ah.Check("secret1", bcryptHash)
	require.NoError(t, err)
	assert.True(t, match)

	match, err = bh.Check("secret1", argonHash)
	require.NoError(t, err)
	assert.True(t, match)
}

func TestHash_Empty(t *testing.T) {
	h, err := password.New(password.AlgoBcrypt)
	require.NoError(t, err)

	_, err = h.Hash("")
	assert.ErrorIs(t, err, password.ErrEmptyPassword)
}

func TestCheck_GarbageHash(t *testing.T) {
	h, err := password.New(password.AlgoBcrypt)
	require.NoError(t, err)

	match, err := h.Check("secret1", "not-a-hash")
	assert.Error(t, err)
	assert.False(t, match)
}

func TestBcrypt_LengthLimit(t *testing.T) {
	h, err := password.New(password.AlgoBcrypt)
	require.NoError(t, err)

	_, err = h.Hash(strings.Repeat("a", 80) + "1")
	assert.ErrorIs(t, err, password.ErrPasswordTooLong)

	longest := strings.Repeat("a", 71) + "1"
	hash, err := h.Hash(longest)
	require.NoError(t, err)

	match, err := h.Check(longest, hash)
	require.NoError(t, err)
	assert.True(t, match)

	match, err = h.Check(longest+"1", hash)
	require.NoError(t, err)
	assert.False(t, match)
}

func TestArgon2id_NoLengthLimit(t *testing.T) {
	h, err := password.New(password.AlgoArgon2id)
	require.NoError(t, err)

	long := strings.Repeat("a", 80) + "1"
	hash, err := h.Hash(long)
	require.NoError(t, err)

	match, err := h.Check(long, hash)
	require.NoError(t, err)
	assert.True(t, match)
}
