package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/VitorVA6/fullstack-part4/internal/api/models"
)

// Claims is the identity assertion carried by every issued token.
type Claims struct {
	UserID   string
	Username string
}

// TokenService issues and verifies signed identity tokens. The signing
// secret is injected at construction so tests can run with distinct keys.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a TokenService signing with secret. A zero ttl
// issues tokens without an expiry claim.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token binding the user's id and username.
func (s *TokenService) Issue(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub": user.ID,
		"un":  user.Username,
		"iat": time.Now().Unix(),
	}
	if s.ttl > 0 {
		claims["exp"] = time.Now().Add(s.ttl).Unix()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify parses and checks the token signature and returns the identity
// claims. A bad signature or unparsable token yields ErrInvalidToken;
// a valid token missing identity claims yields ErrMalformedToken.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrMalformedToken
	}
	userID, _ := mapClaims["sub"].(string)
	username, _ := mapClaims["un"].(string)
	if userID == "" || username == "" {
		return nil, ErrMalformedToken
	}

	return &Claims{UserID: userID, Username: username}, nil
}
