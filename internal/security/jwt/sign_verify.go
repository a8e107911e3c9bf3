package jwtutil

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"os"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	cfg     Config
	cfgOnce sync.Once
)

// config loads the signing config on first use, after godotenv has run.
func config() Config {
	cfgOnce.Do(func() {
		cfg = LoadConfig()
	})
	return cfg
}

// SignAdmin returns (tokenString, jti) for the admin surface.
func SignAdmin(subject string, ttl time.Duration) (string, string, error) {
	jti, err := randJTI()
	if err != nil {
		return "", "", err
	}
	claims := NewAdminClaims(subject, jti, ttl)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString(config().Secret)
	return s, jti, err
}

// ParseAdmin verifies HS256 signature and leeway, returning claims.
func ParseAdmin(tokenStr string) (*AdminClaims, error) {
	c := config()
	parser := jwt.NewParser(jwt.WithLeeway(c.ClockSkew), jwt.WithValidMethods([]string{"HS256"}))
	token, err := parser.ParseWithClaims(tokenStr, &AdminClaims{}, func(t *jwt.Token) (interface{}, error) {
		return c.Secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*AdminClaims)
	if !ok || !token.Valid || claims.Role != "admin" {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

func randJTI() (string, error) {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	return hex.EncodeToString(b[:]), nil
}

// DefaultAdminTTL reads ADMIN_TOKEN_TTL (e.g. "30m"), defaulting sanely.
func DefaultAdminTTL() time.Duration {
	if v := parseDuration("ADMIN_TOKEN_TTL", "30m"); v > 0 {
		return v
	}
	return 30 * time.Minute
}

func parseDuration(key, def string) time.Duration {
	s := def
	if v := os.Getenv(key); v != "" {
		s = v
	}
	d, _ := time.ParseDuration(s)
	return d
}
