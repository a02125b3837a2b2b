package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the fixed validity window of a session token.
const TokenTTL = 24 * time.Hour

// Token errors. Neither ever leaves the authentication gate.
var (
	ErrTokenInvalid = errors.New("token invalid")
	ErrTokenExpired = errors.New("token expired")
)

// TokenService issues and verifies HS256 session tokens.
// The signing key is fixed for the lifetime of the instance.
type TokenService struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
	parser *jwt.Parser
}

// Option configures a TokenService.
type Option func(*TokenService)

// WithClock overrides the time source used for issuing and verifying.
func WithClock(now func() time.Time) Option {
	return func(s *TokenService) { s.now = now }
}

// NewTokenService creates a token service bound to one signing key.
// secret must be at least 32 characters for HS256 security.
func NewTokenService(secret string, issuer string, opts ...Option) *TokenService {
	s := &TokenService{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    TokenTTL,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.parser = jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	return s
}

// sessionClaims carries millisecond timestamps next to the registered
// second-precision ones. Expiry is decided on exp_ms; exp is exp_ms rounded
// up to the next whole second.
type sessionClaims struct {
	jwt.RegisteredClaims
	IssuedAtMs  int64 `json:"iat_ms"`
	ExpiresAtMs int64 `json:"exp_ms"`
}

// Issue creates a signed token whose subject is principalID. It expires
// exactly TokenTTL after the issue instant, at millisecond precision.
func (s *TokenService) Issue(principalID string) (string, error) {
	if principalID == "" {
		return "", fmt.Errorf("issue token: empty principal")
	}

	now := s.now()
	exp := now.Add(s.ttl)
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   principalID,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(ceilSecond(exp)),
		},
		IssuedAtMs:  now.UnixMilli(),
		ExpiresAtMs: exp.UnixMilli(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

func ceilSecond(t time.Time) time.Time {
	if c := t.Truncate(time.Second); c.Before(t) {
		return c.Add(time.Second)
	}
	return t
}

// Verify checks the signature and expiry of token and returns its subject.
// The token is expired at and after its millisecond expiry; no leeway is applied.
func (s *TokenService) Verify(tokenString string) (string, error) {
	if tokenString == "" {
		return "", fmt.Errorf("%w: empty token", ErrTokenInvalid)
	}

	var claims sessionClaims
	token, err := s.parser.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}
	if !token.Valid {
		return "", ErrTokenInvalid
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("%w: missing subject", ErrTokenInvalid)
	}
	if claims.ExpiresAtMs == 0 {
		return "", fmt.Errorf("%w: missing exp_ms", ErrTokenInvalid)
	}
	if s.now().UnixMilli() >= claims.ExpiresAtMs {
		return "", ErrTokenExpired
	}

	return claims.Subject, nil
}
