// Package totp turns the raw bytes pkg/oath returns into the decimal code
// a user types. This formatting step is explicitly the caller's
// responsibility, not the OATH client's: the client only returns the
// truncated (or full) response bytes and the declared digit count.
package totp

import (
	"encoding/binary"
	"fmt"
)

// pow10 is precomputed for the only digit counts this applet declares.
var pow10 = [...]uint32{1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000}

// Format renders the final numeric code. When truncate is true, bytes are
// the card's already-truncated 4-byte big-endian DT output with the high
// bit cleared; applying the 0x7FFFFFFF mask again would be a no-op but is
// explicitly forbidden by the spec to keep the two code paths distinct.
// When truncate is false, bytes are a full HMAC output and DynamicTruncate
// must be applied first.
func Format(bytesValue []byte, digits int, truncate bool) (string, error) {
	var value uint32

	if truncate {
		if len(bytesValue) != 4 {
			return "", fmt.Errorf("totp: truncated response must be 4 bytes, got %d", len(bytesValue))
		}
		value = binary.BigEndian.Uint32(bytesValue)
	} else {
		value = DynamicTruncate(bytesValue)
	}

	if digits < 0 || digits >= len(pow10) {
		return "", fmt.Errorf("totp: unsupported digit count %d", digits)
	}

	code := value % pow10[digits]
	return fmt.Sprintf("%0*d", digits, code), nil
}

// DynamicTruncate implements RFC 4226 §5.3 dynamic truncation over a full
// HMAC output, including the mandatory high-bit mask.
func DynamicTruncate(hmac []byte) uint32 {
	offset := hmac[len(hmac)-1] & 0x0F
	binCode := binary.BigEndian.Uint32(hmac[offset : offset+4])
	return binCode & 0x7FFFFFFF
}

// Challenge builds the TOTP challenge for the given Unix time and step
// period, per the wire convention `be64(unix_time_seconds / period)`.
func Challenge(unixSeconds int64, period int64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(unixSeconds/period))
	return buf
}
