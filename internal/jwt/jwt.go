package jwt

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tealedge/portal/internal/domain"
	internal_errors "github.com/tealedge/portal/internal/errors"
	"github.com/tealedge/portal/internal/logger"
)

type JwtService interface {
	NewToken(account domain.Account) (string, error)
	DecodeToken(jwtStr string) (*jwt.Token, error)
}

type Jwt struct {
	secretKey string
	ttl       time.Duration
}

func New(secretKey string, ttl time.Duration) JwtService {
	return &Jwt{secretKey, ttl}
}

func (j *Jwt) NewToken(account domain.Account) (string, error) {
	claims := jwt.MapClaims{}
	claims["uid"] = account.Id.String()
	claims["name"] = account.Name
	claims["email"] = account.Email
	claims["role"] = string(account.Role)
	claims["exp"] = time.Now().Add(j.ttl).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		logger.Log.Error("failed to sign token", "error", err)
		return "", errors.New("Can't create token")
	}

	return tokenString, nil
}

func (j *Jwt) DecodeToken(jwtStr string) (*jwt.Token, error) {
	token, err := jwt.Parse(jwtStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return nil, &statusError{"Invalid token signature", http.StatusUnauthorized}
	}

	if !token.Valid {
		return nil, &statusError{"Invalid access token", http.StatusUnauthorized}
	}

	return token, nil
}

// statusError keeps token failures out of the portal rejection taxonomy
// while still carrying a status code for the handlers.
type statusError struct {
	message    string
	statusCode int
}

func (e *statusError) Error() string   { return e.message }
func (e *statusError) StatusCode() int { return e.statusCode }

var _ internal_errors.StatusCoder = (*statusError)(nil)
