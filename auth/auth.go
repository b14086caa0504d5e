// Copyright (c) 2026 Tally Authors.
// MIT licensed; see LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"
)

var ErrInvalidResetToken = errors.New("invalid reset token")

// GenerateResetToken creates an HMAC-based confirmation token for clearing
// the given state slot. It is deterministic and verifiable, so resets can
// be confirmed without the server keeping per-request state.
func GenerateResetToken(stateKey, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte("reset:" + stateKey))
	sum := h.Sum(nil)
	// Use URL-safe base64 and trim padding for cleaner tokens
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// ValidateResetToken checks that the provided token confirms a reset of the
// given state slot.
func ValidateResetToken(stateKey, token, salt string) error {
	expected := GenerateResetToken(stateKey, salt)
	if !hmac.Equal([]byte(token), []byte(expected)) {
		return ErrInvalidResetToken
	}
	return nil
}
