package qr

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewCodeFormat(t *testing.T) {
	code, err := newCode()
	require.NoError(t, err)

	// 16 byte rastgelelik = 32 hex karakter
	require.Len(t, code, 32)
	_, err = hex.DecodeString(code)
	require.NoError(t, err)
}

func TestNewCodeUniqueness(t *testing.T) {
	seen := make(map[string]bool, 1000)
	for i := 0; i < 1000; i++ {
		code, err := newCode()
		require.NoError(t, err)
		require.False(t, seen[code], "kod tekrarı: %s", code)
		seen[code] = true
	}
}
