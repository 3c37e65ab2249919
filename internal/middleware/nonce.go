package middleware

import (
	"crypto/hmac"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// The donation form carries a short-lived anti-forgery token, issued when the
// widget is rendered and checked before any field validation on ingest. It
// plays the role the plugin's nonce did: it defends against cross-site
// request forgery, not against a client lying about the amount.

var (
	errNonceFormat  = errors.New("malformed nonce")
	errNonceExpired = errors.New("nonce expired")
)

// SignNonce issues a donation nonce valid for ttl.
func SignNonce(secret string, ttl time.Duration) string {
	id := uuid.NewString()
	exp := strconv.FormatInt(time.Now().Add(ttl).Unix(), 10)
	data := id + "." + exp
	return data + "." + hmacSign(secret, data)
}

// VerifyNonce checks signature and expiry of a donation nonce.
func VerifyNonce(secret, token string) error {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return errNonceFormat
	}
	data := parts[0] + "." + parts[1]
	expected := hmacSign(secret, data)
	if !hmac.Equal([]byte(expected), []byte(parts[2])) {
		return errNonceFormat
	}
	exp, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return errNonceFormat
	}
	if time.Now().Unix() > exp {
		return errNonceExpired
	}
	return nil
}
