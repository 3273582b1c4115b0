package identity

import (
	"errors"
	"strconv"
	"time"

	"code.cloudfoundry.org/clock"
	"github.com/golang-jwt/jwt/v5"
	"github.com/taskboard/taskboard/pkg/taskboard"
)

const DefaultTokenTTL = 30 * 24 * time.Hour

var ErrSigningKeyRequired = errors.New("identity: token signing key is empty")

type Claims struct {
	Role taskboard.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer issues and verifies HS256 bearer tokens carrying the user id
// as subject and the user's role.
type TokenIssuer struct {
	key   []byte
	ttl   time.Duration
	clock clock.Clock
}

type TokenOption func(*TokenIssuer)

func WithTokenTTL(ttl time.Duration) TokenOption {
	return func(i *TokenIssuer) {
		if ttl > 0 {
			i.ttl = ttl
		}
	}
}

func WithTokenClock(c clock.Clock) TokenOption {
	return func(i *TokenIssuer) {
		i.clock = c
	}
}

func NewTokenIssuer(key []byte, opts ...TokenOption) (*TokenIssuer, error) {
	if len(key) == 0 {
		return nil, ErrSigningKeyRequired
	}

	i := &TokenIssuer{
		key:   key,
		ttl:   DefaultTokenTTL,
		clock: clock.NewClock(),
	}

	for _, opt := range opts {
		opt(i)
	}

	return i, nil
}

func (i *TokenIssuer) TTL() time.Duration {
	return i.ttl
}

// Issue signs a token for user and returns it with its expiry.
func (i *TokenIssuer) Issue(user *taskboard.User) (string, time.Time, error) {
	now := i.clock.Now()
	expiresAt := now.Add(i.ttl)

	claims := Claims{
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.key)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

// Verify returns the actor named by a valid token. Every failure is
// reported as taskboard.ErrUnauthenticated wrapping the cause.
func (i *TokenIssuer) Verify(raw string) (taskboard.Actor, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(i.clock.Now),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
	)

	var claims Claims
	_, err := parser.ParseWithClaims(raw, &claims, func(*jwt.Token) (interface{}, error) {
		return i.key, nil
	})
	if err != nil {
		return taskboard.Actor{}, unauthenticated(err)
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || id <= 0 {
		return taskboard.Actor{}, unauthenticated(errors.New("invalid subject"))
	}

	if !claims.Role.Valid() {
		return taskboard.Actor{}, unauthenticated(errors.New("invalid role"))
	}

	return taskboard.Actor{ID: id, Role: claims.Role}, nil
}
