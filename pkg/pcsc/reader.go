// Package pcsc wraps github.com/ebfe/scard with the reader-selection and
// exclusive-connect policy the OATH client needs: find the one reader
// whose name identifies the hardware token, open it exclusively, and
// expose it as an apdu.Transmitter.
package pcsc

import (
	"strings"

	"github.com/ebfe/scard"
)

// MaxBufferSize mirrors the PC/SC driver's typical single-frame limit.
// pkg/oath sizes its scratch buffer from this constant.
const MaxBufferSize = 264

// ReaderPrefix is the lowercased prefix a reader name must start with to be
// considered the hardware OATH token, per spec's connect().
const ReaderPrefix = "yubico yubikey"

// Context owns the PC/SC resource manager handle.
type Context struct {
	ctx *scard.Context
}

// Establish opens a connection to the system's PC/SC resource manager.
func Establish() (*Context, error) {
	ctx, err := scard.EstablishContext()
	if err != nil {
		return nil, err
	}
	return &Context{ctx: ctx}, nil
}

// Release closes the resource manager handle.
func (c *Context) Release() error {
	return c.ctx.Release()
}

// Readers lists the names of every connected PC/SC reader.
func (c *Context) Readers() ([]string, error) {
	return c.ctx.ListReaders()
}

// FindReader returns the first reader name whose lowercased form starts
// with ReaderPrefix, or ok=false if none match.
func FindReader(names []string) (name string, ok bool) {
	for _, n := range names {
		if strings.HasPrefix(strings.ToLower(n), ReaderPrefix) {
			return n, true
		}
	}
	return "", false
}

// Card is an exclusive connection to a single reader, satisfying
// apdu.Transmitter.
type Card struct {
	card *scard.Card
}

// ConnectExclusive opens reader in exclusive share mode with any protocol,
// matching the core's "single outstanding exchange at a time" invariant.
func (c *Context) ConnectExclusive(reader string) (*Card, error) {
	card, err := c.ctx.Connect(reader, scard.ShareExclusive, scard.ProtocolAny)
	if err != nil {
		return nil, err
	}
	return &Card{card: card}, nil
}

// Transmit sends cmd and returns the card's raw reply, including its
// trailing status word.
func (c *Card) Transmit(cmd []byte) ([]byte, error) {
	return c.card.Transmit(cmd)
}

// Disconnect releases the exclusive connection, resetting the card.
func (c *Card) Disconnect() error {
	return c.card.Disconnect(scard.ResetCard)
}
