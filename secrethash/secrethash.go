// Package secrethash computes the SECRET_HASH value that AWS Cognito
// requires on username-bearing API calls when the app client is
// configured with a client secret. The value proves knowledge of the
// secret without transmitting it.
//
// Formula: Base64(HMAC_SHA256(clientSecret, username + clientID))
package secrethash

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
)

// EncodedLen is the length of every successful Compute result: a 32-byte
// HMAC-SHA256 digest rendered as padded standard base64.
const EncodedLen = 44

// ErrInvalidKey is returned when the client secret encodes to zero bytes.
var ErrInvalidKey = errors.New("invalid key")

// Compute returns the secret hash for the given username and app client.
//
// The MAC key is the UTF-8 encoding of clientSecret; the message is the
// UTF-8 encoding of username immediately followed by clientID, with no
// separator. Inputs are never validated, normalized, or length-limited:
// empty username and clientID are fine, as are control characters and
// arbitrarily large values. The only precondition is a non-empty secret,
// since HMAC needs key material; a zero-length secret yields a wrapped
// ErrInvalidKey.
func Compute(username, clientID, clientSecret string) (string, error) {
	key := []byte(clientSecret)
	if len(key) == 0 {
		return "", fmt.Errorf("%w: client secret must encode to at least one byte", ErrInvalidKey)
	}

	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(username))
	mac.Write([]byte(clientID))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil)), nil
}
