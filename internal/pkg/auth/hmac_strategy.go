package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const hmacTokenVersion = "v1"

// HMACStrategy issues "v1.<admin id>.<unix expiry>.<signature>" tokens. The
// signature is URL-safe base64 of HMAC-SHA256 over the first three segments.
type HMACStrategy struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewHMACStrategy builds HMACStrategy with provided secret and options.
func NewHMACStrategy(secret string, opts Options) *HMACStrategy {
	ttl, now := opts.normalize()
	return &HMACStrategy{secret: []byte(secret), ttl: ttl, now: now}
}

func (s *HMACStrategy) IssueToken(adminID int64) (string, error) {
	if adminID <= 0 {
		return "", fmt.Errorf("issue token: invalid admin id %d", adminID)
	}
	payload := strings.Join([]string{
		hmacTokenVersion,
		strconv.FormatInt(adminID, 10),
		strconv.FormatInt(s.now().Add(s.ttl).Unix(), 10),
	}, ".")
	return payload + "." + s.sign(payload), nil
}

func (s *HMACStrategy) ParseToken(token string) (int64, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 4 || parts[0] != hmacTokenVersion {
		return 0, ErrInvalidToken
	}

	payload := strings.Join(parts[:3], ".")
	if !hmac.Equal([]byte(s.sign(payload)), []byte(parts[3])) {
		return 0, ErrInvalidToken
	}

	adminID, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || adminID <= 0 {
		return 0, ErrInvalidToken
	}

	expires, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil || !s.now().Before(time.Unix(expires, 0)) {
		return 0, ErrInvalidToken
	}

	return adminID, nil
}

func (s *HMACStrategy) Name() string {
	return StrategyHMAC
}

func (s *HMACStrategy) sign(payload string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
