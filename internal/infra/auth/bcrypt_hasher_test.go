package auth

import (
	"testing"

	"contacts/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	hash, err := hasher.Hash("hunter2")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "hunter2", hash)

	assert.True(t, hasher.Check("hunter2", hash))
	assert.False(t, hasher.Check("hunter3", hash))
}

func TestBcryptHasher_FreshSaltPerHash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	first, err := hasher.Hash("same-password")
	require.NoError(t, err)
	second, err := hasher.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("same-password", first))
	assert.True(t, hasher.Check("same-password", second))
}

func TestBcryptHasher_MalformedDigest(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	assert.NotPanics(t, func() {
		assert.False(t, hasher.Check("password", ""))
		assert.False(t, hasher.Check("password", "not-a-bcrypt-hash"))
		assert.False(t, hasher.Check("password", "$2a$10$short"))
	})
}

func TestBcryptHasher_CostSelection(t *testing.T) {
	tests := []struct {
		name string
		cost int
		want int
	}{
		{"configured", bcrypt.MinCost, bcrypt.MinCost},
		{"unset", 0, bcrypt.DefaultCost},
		{"too high", bcrypt.MaxCost + 1, bcrypt.DefaultCost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasher, ok := NewBcryptHasherWithCost(tt.cost).(*bcryptHasher)
			require.True(t, ok)
			assert.Equal(t, tt.want, hasher.cost)
		})
	}

	hasher, ok := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 5}}).(*bcryptHasher)
	require.True(t, ok)
	assert.Equal(t, 5, hasher.cost)
}
