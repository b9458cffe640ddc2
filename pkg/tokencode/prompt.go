package tokencode

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// PromptFallback reads a token code typed by a human from in, after
// writing a fixed prompt for issuer to out. When in is an interactive
// terminal the code is read with echo disabled, the same way a password
// would be; any other reader (a pipe, a test's strings.Reader) falls back
// to a plain line read.
func PromptFallback(in io.Reader, out io.Writer, issuer string) (string, error) {
	fmt.Fprintf(out, "Enter token code for '%s' > ", issuer)

	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		defer fmt.Fprintln(out)
		line, err := term.ReadPassword(int(f.Fd()))
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(line)), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
