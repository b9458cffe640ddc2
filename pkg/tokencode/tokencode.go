// Package tokencode resolves a TOTP code for a given issuer string,
// preferring the hardware OATH token and falling back to an interactive
// prompt when the hardware path is unavailable or fails.
package tokencode

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/gregLibert/oathmfa/pkg/apdu"
	"github.com/gregLibert/oathmfa/pkg/oath"
	"github.com/gregLibert/oathmfa/pkg/pcsc"
	"github.com/gregLibert/oathmfa/pkg/totp"
)

// totpPeriod is the step size the challenge is derived against.
const totpPeriod = 30

// Get resolves the token code for issuer. It tries the hardware path
// first; any failure there -- no device, auth required, a malformed
// reply -- is logged and followed by a prompt, never returned directly.
func Get(issuer string) (string, error) {
	code, err := fromHardware(issuer)
	if err == nil {
		return code, nil
	}

	logrus.WithError(err).Warn("hardware OATH token unavailable, falling back to prompt")
	return PromptFallback(os.Stdin, os.Stdout, issuer)
}

func fromHardware(issuer string) (string, error) {
	ctx, err := pcsc.Establish()
	if err != nil {
		return "", err
	}
	defer func() { _ = ctx.Release() }()

	client, card, err := oath.Connect(ctx)
	if err != nil {
		return "", err
	}
	defer func() { _ = card.Disconnect() }()

	sel, err := client.Select()
	if err != nil {
		return "", err
	}
	if sel.Auth != nil {
		// Non-goal: mutual authentication against a password-protected
		// applet. Detected and surfaced, never attempted.
		return "", &apdu.Error{Kind: apdu.AuthRequired}
	}

	challenge := totp.Challenge(time.Now().Unix(), totpPeriod)
	name := []byte(issuer)

	it, err := client.CalculateAll(true, challenge)
	if err != nil {
		return "", err
	}

	for {
		entry, ok, err := it.Next()
		if err != nil {
			return "", err
		}
		if !ok {
			return "", &apdu.Error{Kind: apdu.NoSuchObject}
		}
		if !bytesEqual(entry.Name, name) {
			continue
		}

		switch entry.Kind {
		case oath.KindCode:
			return totp.Format(entry.Code.Truncated, int(entry.Code.Digits), true)
		case oath.KindTouch:
			fmt.Fprintln(os.Stderr, "Touch your YubiKey...")
			code, err := client.Calculate(true, name, challenge)
			if err != nil {
				return "", err
			}
			return totp.Format(code.Truncated, int(code.Digits), true)
		case oath.KindHOTP:
			return "", fmt.Errorf("HOTP is not supported")
		}
	}
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
