// Package apdu implements the ISO 7816 APDU framing, status-word
// classification, and TLV response cursor shared by every command the
// OATH applet understands.
package apdu

import (
	"fmt"

	"github.com/gregLibert/oathmfa/pkg/bits"
)

// StatusWord is the two-byte trailer (SW1|SW2) of every response APDU.
type StatusWord uint16

// NewStatusWord builds a StatusWord from its two wire bytes.
func NewStatusWord(sw1, sw2 byte) StatusWord {
	return StatusWord(uint16(sw1)<<8 | uint16(sw2))
}

// SW1 returns the high byte.
func (sw StatusWord) SW1() byte { return byte(sw >> 8) }

// SW2 returns the low byte.
func (sw StatusWord) SW2() byte { return byte(sw) }

// Status words this applet is specified to emit. Values mirror ISO 7816-4
// but only the subset the OATH applet actually returns is named.
const (
	SWSuccess      StatusWord = 0x9000
	SWNoSpace      StatusWord = 0x6A84
	SWNoSuchObject StatusWord = 0x6984
	SWAuthRequired StatusWord = 0x6982
	SWWrongSyntax  StatusWord = 0x6A80
	SWGenericError StatusWord = 0x6581
)

// Continuation is the outcome of classifying a status word.
type Continuation int

const (
	// Done means the exchange is over; the cursor's payload is final.
	Done Continuation = iota
	// More means a 61xx was received; the caller must GET-RESPONSE for sw2 bytes.
	More
)

// IsMoreData reports whether sw1 is 0x61 (bytes available via GET-RESPONSE).
func (sw StatusWord) IsMoreData() bool {
	return sw.SW1() == 0x61
}

// Classify maps a status word to a Continuation or a typed ErrorKind.
// It is a pure function: no I/O, no allocation, no retry logic of its own.
func Classify(sw StatusWord) (Continuation, error) {
	if sw == SWSuccess {
		return Done, nil
	}
	if sw.IsMoreData() {
		return More, nil
	}
	switch sw {
	case SWNoSpace:
		return Done, &Error{Kind: NoSpace}
	case SWNoSuchObject:
		return Done, &Error{Kind: NoSuchObject}
	case SWAuthRequired:
		return Done, &Error{Kind: AuthRequired}
	case SWWrongSyntax:
		return Done, &Error{Kind: WrongSyntax}
	case SWGenericError:
		return Done, &Error{Kind: GenericError}
	default:
		return Done, &Error{Kind: Unknown, Code: uint16(sw)}
	}
}

// String renders the status word the way a card trace log would.
func (sw StatusWord) String() string {
	return fmt.Sprintf("%02X%02X", sw.SW1(), sw.SW2())
}

// bytesAvailable returns the count of bytes the card reports waiting
// behind a 61xx status word. Panics are impossible: SW2 is always a byte.
func (sw StatusWord) bytesAvailable() byte {
	return bits.GetRange(sw.SW2(), 8, 1)
}
