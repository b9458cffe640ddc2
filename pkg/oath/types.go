// Package oath implements the YKOATH applet's select/calculate/calculate_all
// operations on top of pkg/apdu's request builder and response cursor.
package oath

// AID is the 7-byte application identifier for the OATH applet.
var AID = []byte{0xA0, 0x00, 0x00, 0x05, 0x27, 0x21, 0x01}

// Instruction bytes this applet understands. GET-RESPONSE (0xA5) is handled
// internally by pkg/apdu and never issued directly by this package.
const (
	insSelect      byte = 0xA4
	insCalculate   byte = 0xA2
	insCalcAll     byte = 0xA4 // shares INS with select; P1 disambiguates
	insList        byte = 0xA1
	claStandard    byte = 0x00
	p1SelectTarget byte = 0x04
	p1CalcAll      byte = 0x00
)

// Response TLV tags.
const (
	tagName           byte = 0x71
	tagNameList       byte = 0x72
	tagChallenge      byte = 0x74
	tagFullResponse   byte = 0x75
	tagTruncResponse  byte = 0x76
	tagHOTP           byte = 0x77
	tagVersion        byte = 0x79
	tagAlgorithm      byte = 0x7B
	tagTouchRequired  byte = 0x7C
)

// maxBufferSize is the receive scratch buffer's starting capacity, sized
// from the driver's typical single-frame limit (see pkg/pcsc.MaxBufferSize).
// It grows automatically past this if a reply is larger.
const maxBufferSize = 264

// ResponseKind distinguishes the three shapes a calculate_all entry's
// response can take.
type ResponseKind int

const (
	// KindCode is a computed HOTP/TOTP value.
	KindCode ResponseKind = iota
	// KindHOTP marks an entry that requires counter-based calculation,
	// which this client does not perform (Non-goal: HOTP advancement).
	KindHOTP
	// KindTouch marks an entry that requires a physical touch before the
	// card will compute it.
	KindTouch
)

// Code is a computed HOTP/TOTP value before final decimal formatting.
type Code struct {
	Digits    byte
	Truncated []byte
}

// Entry is one credential as returned by CalculateAll.
type Entry struct {
	Name     []byte
	Kind     ResponseKind
	Code     Code // only meaningful when Kind == KindCode
}

// Auth describes a password-protected applet's challenge, when present.
type Auth struct {
	Challenge []byte
	Algorithm byte
}

// SelectResponse is the parsed reply to Select.
type SelectResponse struct {
	Version []byte
	Name    []byte
	Auth    *Auth // nil unless the applet is password-protected
}

// ListedCredential is one entry returned by List.
type ListedCredential struct {
	Algorithm byte
	Type      byte
	Name      []byte
}
