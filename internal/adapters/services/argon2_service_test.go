package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gopostboard/internal/adapters/services"
)

func TestArgon2HashAndVerify(t *testing.T) {
	ctx := context.Background()
	svc := services.NewArgon2()

	hash, err := svc.Hash(ctx, "secret123")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))

	assert.True(t, svc.Verify(ctx, "secret123", hash))
	assert.False(t, svc.Verify(ctx, "wrong-password", hash))
}

func TestArgon2HashesAreSalted(t *testing.T) {
	ctx := context.Background()
	svc := services.NewArgon2()

	first, err := svc.Hash(ctx, "secret123")
	require.NoError(t, err)
	second, err := svc.Hash(ctx, "secret123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, svc.Verify(ctx, "secret123", first))
	assert.True(t, svc.Verify(ctx, "secret123", second))
}

func TestArgon2VerifyMalformedHash(t *testing.T) {
	ctx := context.Background()
	svc := services.NewArgon2()

	tests := []struct {
		name string
		hash string
	}{
		{name: "empty string", hash: ""},
		{name: "plain text", hash: "not-a-hash"},
		{name: "wrong algorithm", hash: "$bcrypt$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA"},
		{name: "truncated", hash: "$argon2id$v=19$m=65536,t=1,p=4$c2FsdA"},
		{name: "invalid base64", hash: "$argon2id$v=19$m=65536,t=1,p=4$!!!$???"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, svc.Verify(ctx, "secret123", tt.hash))
		})
	}
}
