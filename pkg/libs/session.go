package libs

import (
	"errors"
	"time"

	"github.com/oarkflow/paseto/token"
	"github.com/oarkflow/xid/wuid"
)

var (
	ErrInvalidSession = errors.New("invalid session token")
	ErrSessionExpired = errors.New("session expired")
)

func NewSessionID() string {
	return wuid.New().String()
}

// IssueSessionToken encrypts sessionID into a paseto token valid for ttl.
func IssueSessionToken(sessionID string, ttl time.Duration, secret []byte) (string, error) {
	now := time.Now()
	claims := map[string]any{
		"sub": sessionID,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}
	t := token.CreateToken(ttl, token.AlgEncrypt)
	_ = token.RegisterClaims(t, claims)
	return token.EncryptToken(t, secret)
}

// ParseSessionToken returns the session id carried by tokenStr.
func ParseSessionToken(tokenStr string, secret []byte) (string, error) {
	if tokenStr == "" {
		return "", ErrInvalidSession
	}
	decTok, err := token.DecryptToken(tokenStr, secret)
	if err != nil {
		return "", ErrInvalidSession
	}
	exp, _ := decTok.Claims["exp"].(int64)
	if exp == 0 {
		if expf, ok := decTok.Claims["exp"].(float64); ok {
			exp = int64(expf)
		}
	}
	if exp != 0 && time.Now().Unix() > exp {
		return "", ErrSessionExpired
	}
	sid, _ := decTok.Claims["sub"].(string)
	if sid == "" {
		return "", ErrInvalidSession
	}
	return sid, nil
}
