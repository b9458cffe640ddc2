// Package tlv holds debug-only helpers for inspecting raw TLV payloads
// exchanged with the card. Nothing here sits on the protocol's hot path:
// pkg/apdu's cursor parses the strict single-byte tag/length grammar
// directly, since the applet's TLVs never nest and bertlv's BER-TLV
// decoder would otherwise have to be told that up front.
package tlv

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/moov-io/bertlv"
)

// Dump decodes data as a flat sequence of BER-TLV triples and renders one
// line per tag, for logging at debug verbosity. It tolerates payloads
// bertlv cannot fully decode by falling back to a raw hex dump.
func Dump(data []byte) string {
	packets, err := bertlv.Decode(data)
	if err != nil || len(packets) == 0 {
		return fmt.Sprintf("raw: %s", strings.ToUpper(hex.EncodeToString(data)))
	}

	var lines []string
	for _, p := range packets {
		lines = append(lines, fmt.Sprintf("  %s: %s (%q)",
			strings.ToUpper(p.Tag),
			strings.ToUpper(hex.EncodeToString(p.Value)),
			MakeSafeASCII(p.Value)))
	}
	return strings.Join(lines, "\n")
}

// MakeSafeASCII renders data as printable ASCII, substituting '.' for any
// byte outside the printable range so binary TLV values are safe to log.
func MakeSafeASCII(data []byte) string {
	out := make([]byte, len(data))
	for i, b := range data {
		if b >= 32 && b <= 126 {
			out[i] = b
		} else {
			out[i] = '.'
		}
	}
	return string(out)
}
