package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateRoundTrip(t *testing.T) {
	id := Identity{
		Email: "guest@bistro.test",
		Name:  "Guest",
		Photo: "https://img.test/guest.png",
	}

	token, err := GenerateToken(id)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, id.Email, claims.Email)
	assert.Equal(t, id.Name, claims.Name)
	assert.Equal(t, id.Photo, claims.Photo)
}

func TestTokenCarriesFourHourExpiry(t *testing.T) {
	issued := time.Now()

	token, err := GenerateToken(Identity{Email: "guest@bistro.test"})
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)

	assert.WithinDuration(t, issued.Add(TokenTTL), claims.ExpiresAt.Time, 5*time.Second)
}

func TestExpiredTokenRejected(t *testing.T) {
	// Issued longer than the TTL ago, so it is already expired.
	token, err := generateTokenAt(Identity{Email: "guest@bistro.test"}, time.Now().Add(-TokenTTL-time.Minute))
	require.NoError(t, err)

	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestTamperedTokenRejected(t *testing.T) {
	token, err := GenerateToken(Identity{Email: "guest@bistro.test"})
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	// Swap the payload for a different one; the signature no longer matches.
	other, err := GenerateToken(Identity{Email: "admin@bistro.test"})
	require.NoError(t, err)
	otherParts := strings.Split(other, ".")

	forged := parts[0] + "." + otherParts[1] + "." + parts[2]
	_, err = ValidateToken(forged)
	assert.Error(t, err)
}

func TestGarbageTokenRejected(t *testing.T) {
	_, err := ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter22")
	require.NoError(t, err)
	require.NotEqual(t, "hunter22", hash)

	assert.True(t, CheckPassword(hash, "hunter22"))
	assert.False(t, CheckPassword(hash, "hunter23"))
}
