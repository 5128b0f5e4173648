package jwt

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Service mints and verifies the access tokens the API runs on. User
// management itself lives in the external directory; this service only
// carries identity and role claims.
type Service interface {
	GenerateAccessToken(userID string, employeeID string, isAdmin bool) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	secretKey           string
	accessTokenLifetime string
	tokenAuth           *jwtauth.JWTAuth
}

func NewJWTService(secretKey string, accessTokenLifetime string) Service {
	return &JWTService{
		secretKey:           secretKey,
		accessTokenLifetime: accessTokenLifetime,
		tokenAuth:           jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateAccessToken(userID string, employeeID string, isAdmin bool) (string, int64, error) {
	expDuration, err := time.ParseDuration(j.accessTokenLifetime)
	if err != nil {
		return "", 0, err
	}
	expiresAt := time.Now().Add(expDuration).Unix()

	claims := map[string]interface{}{
		"user_id":     userID,
		"employee_id": employeeID,
		"is_admin":    isAdmin,
		"type":        "access",
		"exp":         expiresAt,
	}

	_, token, err := j.tokenAuth.Encode(claims)
	if err != nil {
		return "", 0, err
	}
	return token, expiresAt, nil
}
