package auth

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/gatekeeper/internal/randx"
)

// sessionTokenBytes is the number of random bytes drawn per token. 32 bytes
// gives 256 bits of entropy, so tokens cannot be guessed or enumerated and
// collisions are negligible without any uniqueness check.
const sessionTokenBytes = 32

// IssueSessionToken generates a new opaque session token and its absolute
// expiry, computed as now + ttl. The token carries no decodable payload.
func IssueSessionToken(ttl time.Duration) (string, time.Time, error) {
	token, err := randx.MakeRandHexString(sessionTokenBytes)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("error generating session token: %w", err)
	}

	return token, time.Now().Add(ttl), nil
}
