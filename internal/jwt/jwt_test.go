package jwt

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tealedge/portal/internal/domain"
)

func TestJwt_RoundTrip(t *testing.T) {
	svc := New("secret", time.Hour)
	account := domain.Account{Id: uuid.New(), Name: "Alice", Email: "alice@x.com", Role: domain.RoleStudent}

	tokenString, err := svc.NewToken(account)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	token, err := svc.DecodeToken(tokenString)
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwtlib.MapClaims)
	require.True(t, ok)
	assert.Equal(t, account.Id.String(), claims["uid"])
	assert.Equal(t, "Alice", claims["name"])
	assert.Equal(t, "alice@x.com", claims["email"])
	assert.Equal(t, "student", claims["role"])
}

func TestJwt_DecodeFailures(t *testing.T) {
	svc := New("secret", time.Hour)

	t.Run("wrong key", func(t *testing.T) {
		other := New("other", time.Hour)
		tokenString, err := other.NewToken(domain.Account{Id: uuid.New(), Role: domain.RoleStudent})
		require.NoError(t, err)

		_, err = svc.DecodeToken(tokenString)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		expired := New("secret", -time.Minute)
		tokenString, err := expired.NewToken(domain.Account{Id: uuid.New(), Role: domain.RoleStudent})
		require.NoError(t, err)

		_, err = svc.DecodeToken(tokenString)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.DecodeToken("not-a-token")
		assert.Error(t, err)
	})
}
