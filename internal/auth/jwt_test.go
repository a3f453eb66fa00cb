package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestJWTService_RoundTrip(t *testing.T) {
	t.Parallel()

	svc := NewJWTService("test-secret")
	token, err := svc.GenerateToken("alice", "alice", time.Hour)
	require.NoError(t, err)

	userID, err := svc.ExtractUserID(token)
	require.NoError(t, err)
	require.Equal(t, "alice", userID)
}

func TestJWTService_Rejects(t *testing.T) {
	t.Parallel()

	svc := NewJWTService("test-secret")

	expired := NewJWTService("test-secret")
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expiredToken, err := expired.GenerateToken("alice", "", time.Hour)
	require.NoError(t, err)

	foreignToken, err := NewJWTService("other-secret").GenerateToken("alice", "", time.Hour)
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "alice",
		Issuer:    issuer,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "expired", token: expiredToken},
		{name: "wrong_secret", token: foreignToken},
		{name: "unsigned", token: noneToken},
		{name: "garbage", token: "not-a-jwt"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := svc.ExtractUserID(tc.token)
			require.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestJWTService_EmptyUser(t *testing.T) {
	t.Parallel()

	_, err := NewJWTService("s").GenerateToken("", "", time.Hour)
	require.Error(t, err)
}
