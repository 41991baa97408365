package shopee

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
)

// Sign computes the affiliate API request signature: the SHA-256 hex digest
// of appID || timestamp || body || secret concatenated with no delimiters.
// The body must be the exact bytes that will be sent on the wire, and the
// timestamp is Unix seconds in decimal form. Pure function.
func Sign(appID, secret string, timestamp int64, body []byte) string {
	h := sha256.New()
	h.Write([]byte(appID))
	h.Write([]byte(strconv.FormatInt(timestamp, 10)))
	h.Write(body)
	h.Write([]byte(secret))
	return hex.EncodeToString(h.Sum(nil))
}

// AuthHeader composes the Authorization header value the API expects.
func AuthHeader(appID string, timestamp int64, signature string) string {
	return fmt.Sprintf(
		"SHA256 Credential=%s, Timestamp=%d, Signature=%s",
		appID, timestamp, signature,
	)
}
