package oath

import (
	"github.com/gregLibert/oathmfa/pkg/apdu"
)

// Client drives the OATH applet's select/calculate/calculate_all/list
// operations. It owns the shared scratch buffer threaded through every
// exchange; callers must not retain slices returned by one call across a
// subsequent call on the same Client.
type Client struct {
	card apdu.Transmitter
	buf  []byte
}

// NewClient wraps an already-connected card session. The caller is
// responsible for having opened it in exclusive mode (see pkg/pcsc).
func NewClient(card apdu.Transmitter) *Client {
	return &Client{card: card, buf: make([]byte, 0, maxBufferSize)}
}

// Select opens the OATH application and parses its FCI reply.
func (c *Client) Select() (*SelectResponse, error) {
	req := apdu.NewRequest(&c.buf, claStandard, insSelect, p1SelectTarget, 0x00)
	req.PushAID(AID)

	resp, err := req.Transmit(c.card)
	if err != nil {
		return nil, err
	}

	version, err := resp.Pop(tagVersion)
	if err != nil {
		return nil, err
	}
	name, err := resp.Pop(tagName)
	if err != nil {
		return nil, err
	}

	sel := &SelectResponse{Version: version, Name: name}

	if !resp.IsEmpty() {
		challenge, err := resp.Pop(tagChallenge)
		if err != nil {
			return nil, err
		}
		algo, err := resp.Pop(tagAlgorithm)
		if err != nil {
			return nil, err
		}
		if len(algo) != 1 {
			return nil, &apdu.Error{Kind: apdu.UnexpectedLength, Length: len(algo)}
		}
		sel.Auth = &Auth{Challenge: challenge, Algorithm: algo[0]}
	}

	return sel, nil
}

// Calculate computes the code for a single named credential against the
// given challenge. When truncate is true the card has already applied
// RFC 4226 dynamic truncation and cleared the high bit; see pkg/totp.
func (c *Client) Calculate(truncate bool, name, challenge []byte) (*Code, error) {
	p2 := byte(0x00)
	if truncate {
		p2 = 0x01
	}

	req := apdu.NewRequest(&c.buf, claStandard, insCalculate, 0x00, p2)
	req.Push(tagName, name)
	req.Push(tagChallenge, challenge)

	resp, err := req.Transmit(c.card)
	if err != nil {
		return nil, err
	}

	tag := tagFullResponse
	if truncate {
		tag = tagTruncResponse
	}

	val, err := resp.Pop(tag)
	if err != nil {
		return nil, err
	}
	if len(val) < 1 {
		return nil, &apdu.Error{Kind: apdu.InsufficientData}
	}

	return &Code{Digits: val[0], Truncated: val[1:]}, nil
}
