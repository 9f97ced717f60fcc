// Package internal provides small helpers shared across stocks-mcp packages.
package internal

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"
	"unicode"
)

const minAccessTokenLength = 8

// GenerateAccessToken generates a 256-bit random token suitable for MCP_ACCESS_TOKEN.
func GenerateAccessToken() (string, error) {
	const tokenLength = 32
	b := make([]byte, tokenLength)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate access token: %v", err)
	}
	return base64.URLEncoding.WithPadding(base64.NoPadding).EncodeToString(b), nil
}

// ValidateAccessToken checks that a user-supplied access token can be sent as a bearer token.
func ValidateAccessToken(token string) error {
	if len(token) < minAccessTokenLength {
		return fmt.Errorf("access token should be at least %d characters in length", minAccessTokenLength)
	}
	if strings.IndexFunc(token, unicode.IsSpace) >= 0 {
		return fmt.Errorf("access token should not contain whitespace characters")
	}
	return nil
}

// BearerTokenMatches reports whether an Authorization header carries the expected bearer token.
// The comparison runs in constant time.
func BearerTokenMatches(authHeader, expected string) bool {
	token, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok || token == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(expected)) == 1
}
