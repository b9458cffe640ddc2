package apdu

import "fmt"

// ErrorKind enumerates the protocol-level failures the core can raise.
// Display strings are fixed; callers that need machine-readable handling
// should switch on Kind, not on Error().
type ErrorKind int

const (
	NoDevice ErrorKind = iota
	InsufficientData
	UnexpectedTag
	UnexpectedLength
	Unknown
	Transport
	NoSpace
	NoSuchObject
	AuthRequired
	WrongSyntax
	GenericError
)

// Error is the concrete error type returned by this package and by pkg/oath.
// Tag and Length carry extra context for UnexpectedTag/UnexpectedLength;
// Code carries the raw status word for Unknown; Cause wraps a transport error.
type Error struct {
	Kind   ErrorKind
	Tag    byte
	Length int
	Code   uint16
	Cause  error
}

func (e *Error) Error() string {
	switch e.Kind {
	case NoDevice:
		return "No Yubikey found"
	case InsufficientData:
		return "Received data does not have enough length"
	case UnexpectedTag:
		return fmt.Sprintf("Unexpected tag (0x%02X)", e.Tag)
	case UnexpectedLength:
		return fmt.Sprintf("Unexpected length (%d)", e.Length)
	case Unknown:
		return fmt.Sprintf("Unknown response code (0x%04X)", e.Code)
	case Transport:
		if e.Cause != nil {
			return e.Cause.Error()
		}
		return "transport error"
	case NoSpace:
		return "No space"
	case NoSuchObject:
		return "No such object"
	case AuthRequired:
		return "Auth required"
	case WrongSyntax:
		return "Wrong syntax"
	case GenericError:
		return "Generic error"
	default:
		return "unknown error"
	}
}

func (e *Error) Unwrap() error { return e.Cause }

// wrapTransport adapts a transport-layer failure (PC/SC, in this repository)
// into the core's error type without altering its message.
func wrapTransport(err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: Transport, Cause: err}
}
