package utils

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomString(t *testing.T) {
	code := RandomString(6)
	assert.Len(t, code, 6)
	for _, r := range code {
		assert.True(t, strings.ContainsRune(codeAlphabet, r), "unexpected character %q", r)
	}

	assert.NotEqual(t, RandomString(12), RandomString(12))
}

func TestGenerateQRCode(t *testing.T) {
	image, err := GenerateQRCode("TCK-7GK2QD", 128)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(image, []byte("\x89PNG")), "expected PNG output")
}
