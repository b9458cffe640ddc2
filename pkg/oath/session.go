package oath

import (
	"github.com/gregLibert/oathmfa/pkg/apdu"
	"github.com/gregLibert/oathmfa/pkg/pcsc"
)

// readerLister and connector narrow pcsc.Context down to what Connect
// needs, so tests can script reader enumeration without a real PC/SC stack.
type readerLister interface {
	Readers() ([]string, error)
}

type connector interface {
	ConnectExclusive(reader string) (*pcsc.Card, error)
}

// Connect enumerates readers on ctx, picks the one matching the hardware
// token's name, and opens an exclusive session to it. It fails with
// apdu.NoDevice if no reader matches.
func Connect(ctx interface {
	readerLister
	connector
}) (*Client, *pcsc.Card, error) {
	names, err := ctx.Readers()
	if err != nil {
		return nil, nil, &apdu.Error{Kind: apdu.Transport, Cause: err}
	}

	name, ok := pcsc.FindReader(names)
	if !ok {
		return nil, nil, &apdu.Error{Kind: apdu.NoDevice}
	}

	card, err := ctx.ConnectExclusive(name)
	if err != nil {
		return nil, nil, &apdu.Error{Kind: apdu.Transport, Cause: err}
	}

	return NewClient(card), card, nil
}
