package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sangkips/salgaderia-api/pkg/utils"
)

func TestPasswordHash(t *testing.T) {
	hash, err := utils.HashPassword("s3nha")
	require.NoError(t, err)
	assert.NotEqual(t, "s3nha", hash)
	assert.True(t, utils.CheckPasswordHash("s3nha", hash))
	assert.False(t, utils.CheckPasswordHash("senha", hash))
}
