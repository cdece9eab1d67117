package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPasswordAsBcrypt(t *testing.T) {
	hash, err := HashPasswordAsBcrypt("s3cret")
	assert.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	assert.True(t, CheckPasswordHash(hash, "s3cret"))
	assert.False(t, CheckPasswordHash(hash, "wrong"))
	assert.False(t, CheckPasswordHash("not a hash", "s3cret"))
}
