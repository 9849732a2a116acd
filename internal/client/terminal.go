package client

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ErrNoTerminal is returned when a password is needed but stdin is not a
// terminal and QUIZ_ADMIN_PASSWORD is not set.
var ErrNoTerminal = errors.New("admin password required: set QUIZ_ADMIN_PASSWORD or run in a terminal")

// terminalPasswordReader prompts on out and reads from stdin without echo.
type terminalPasswordReader struct {
	in  *os.File
	out io.Writer
}

// NewTerminalPasswordReader returns a reader bound to the process stdin.
func NewTerminalPasswordReader(out io.Writer) PasswordReader {
	return &terminalPasswordReader{in: os.Stdin, out: out}
}

func (r *terminalPasswordReader) ReadPassword(prompt string) (string, error) {
	fd := int(r.in.Fd())
	if !term.IsTerminal(fd) {
		return "", ErrNoTerminal
	}

	fmt.Fprint(r.out, prompt)
	password, err := term.ReadPassword(fd)
	fmt.Fprintln(r.out)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(password), nil
}
