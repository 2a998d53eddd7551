// internals/features/users/auth/service/token_service_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeTokenHash(t *testing.T) {
	h1 := ComputeTokenHash("token-a", "rahasia")
	h2 := ComputeTokenHash("token-a", "rahasia")
	h3 := ComputeTokenHash("token-b", "rahasia")
	h4 := ComputeTokenHash("token-a", "rahasia-lain")

	// deterministik untuk pasangan (token, secret) yang sama
	assert.Equal(t, h1, h2)
	assert.Len(t, h1, 32)

	// token atau secret berbeda menghasilkan hash berbeda
	assert.NotEqual(t, h1, h3)
	assert.NotEqual(t, h1, h4)
}
