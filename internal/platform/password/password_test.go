package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerify(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	hashed, err := h.Hash("correct horse")
	require.NoError(t, err)
	require.NotEqual(t, "correct horse", hashed)
	require.True(t, h.Verify("correct horse", hashed))
	require.False(t, h.Verify("wrong horse", hashed))
	require.False(t, h.Verify("correct horse", ""))
}

func TestHashIsSalted(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)
	a, err := h.Hash("same")
	require.NoError(t, err)
	b, err := h.Hash("same")
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestLongPasswordsDifferPastBcryptWindow(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)
	prefix := strings.Repeat("x", 80)

	hashed, err := h.Hash(prefix + "A")
	require.NoError(t, err)
	require.False(t, h.Verify(prefix+"B", hashed))
}

func TestNewHasherClampsCost(t *testing.T) {
	require.Equal(t, bcrypt.DefaultCost, NewHasher(0).cost)
	require.Equal(t, bcrypt.DefaultCost, NewHasher(99).cost)
}
