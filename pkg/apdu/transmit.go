package apdu

// Transmitter abstracts the physical card connection. pkg/pcsc's Card
// satisfies this by wrapping github.com/ebfe/scard.
type Transmitter interface {
	Transmit(cmd []byte) ([]byte, error)
}

// getResponse is the fixed four-byte continuation command this applet
// always uses to fetch the next frame of a chained reply.
var getResponse = []byte{0x00, 0xA5, 0x00, 0x00}

// maxContinuationFrames bounds the GET-RESPONSE loop against a
// malfunctioning card that never returns a terminal status word.
const maxContinuationFrames = 16

// Transmit runs the send/receive loop described by the request builder:
// send the command, and for as long as the card answers 61xx, issue
// GET-RESPONSE and keep concatenating payload. The returned Response
// aliases the Request's shared buffer.
func (r *Request) Transmit(t Transmitter) (*Response, error) {
	cmd := r.bytes()

	raw, err := t.Transmit(cmd)
	if err != nil {
		return nil, wrapTransport(err)
	}

	// cmd is no longer needed once Transmit has read it; safe to reuse buf
	// as the accumulation area for the payload.
	*r.buf = (*r.buf)[:0]

	for frame := 0; ; frame++ {
		if len(raw) < 2 {
			return nil, &Error{Kind: InsufficientData}
		}

		sw := NewStatusWord(raw[len(raw)-2], raw[len(raw)-1])
		payload := raw[:len(raw)-2]
		*r.buf = append(*r.buf, payload...)

		cont, err := Classify(sw)
		if err != nil {
			return nil, err
		}

		if cont == Done {
			return NewResponse(*r.buf), nil
		}

		if frame >= maxContinuationFrames {
			return nil, &Error{Kind: Unknown, Code: uint16(sw)}
		}

		raw, err = t.Transmit(getResponse)
		if err != nil {
			return nil, wrapTransport(err)
		}
	}
}
