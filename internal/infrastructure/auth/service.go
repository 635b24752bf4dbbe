package auth

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrMissingSecret      = errors.New("JWT_SECRET is not set")
)

const defaultTokenTTL = 8 * time.Hour

// Service issues and validates the HS256 bearer tokens protecting the API.
// Credentials come from the environment: a single operator account defined
// by ADMIN_USERNAME and ADMIN_PASSWORD_HASH (bcrypt).
type Service struct {
	secret       []byte
	tokenTTL     time.Duration
	username     string
	passwordHash string
	now          func() time.Time
}

type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

func NewService() (*Service, error) {
	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		return nil, ErrMissingSecret
	}

	ttl := defaultTokenTTL
	if v := strings.TrimSpace(os.Getenv("JWT_EXPIRY")); v != "" {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("parse JWT_EXPIRY: %w", err)
		}
		ttl = parsed
	}

	return &Service{
		secret:       []byte(secret),
		tokenTTL:     ttl,
		username:     strings.TrimSpace(os.Getenv("ADMIN_USERNAME")),
		passwordHash: strings.TrimSpace(os.Getenv("ADMIN_PASSWORD_HASH")),
		now:          time.Now,
	}, nil
}

// Login checks the credentials against the configured account and returns a
// signed token plus its lifetime in seconds.
func (s *Service) Login(username, password string) (string, int64, error) {
	if s.username == "" || s.passwordHash == "" {
		return "", 0, ErrInvalidCredentials
	}
	if username != s.username {
		return "", 0, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		return "", 0, ErrInvalidCredentials
	}

	now := s.now()
	claims := Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", 0, err
	}
	return signed, int64(s.tokenTTL.Seconds()), nil
}

// Validate parses and verifies a bearer token, returning its claims.
func (s *Service) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
