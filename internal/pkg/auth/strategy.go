package auth

import (
	"errors"
	"time"
)

// DefaultTokenTTL applies when Options.TTL is not positive.
const DefaultTokenTTL = 24 * time.Hour

// Strategy names accepted by AUTH_STRATEGY.
const (
	StrategyHMAC = "hmac"
	StrategyJWT  = "jwt"
)

// ErrInvalidToken is returned for any admin token that fails verification.
var ErrInvalidToken = errors.New("invalid auth token")

// Strategy issues and verifies admin session tokens.
type Strategy interface {
	IssueToken(adminID int64) (string, error)
	ParseToken(token string) (int64, error)
	Name() string
}

type Options struct {
	TTL time.Duration
	// Now overrides the clock; nil means time.Now.
	Now func() time.Time
}

func (o Options) normalize() (time.Duration, func() time.Time) {
	ttl := o.TTL
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	now := o.Now
	if now == nil {
		now = time.Now
	}
	return ttl, now
}
