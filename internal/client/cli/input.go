package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

var (
	errEmptyPassword = errors.New("password must not be empty")
	errOutOfRange    = errors.New("value out of range")
)

// Prompt seams. Tests swap these to avoid touching stdin or the terminal.
var (
	readPassword  = term.ReadPassword
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

// GetSimpleText writes "prompt\n> " to w and returns the next line from
// reader without surrounding whitespace. A final line without a newline is
// accepted.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if errors.Is(err, io.EOF) && line != "" {
		err = nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword reads a password from the terminal without echo. The caller
// owns the returned slice and should wipe it.
func GetPassword(w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, "Enter password: "); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	if len(pw) == 0 {
		return nil, errEmptyPassword
	}
	return pw, nil
}

// GetIntInRange prompts once for an integer in [lo, hi].
func GetIntInRange(reader *bufio.Reader, prompt string, w io.Writer, lo, hi int) (int, error) {
	raw, err := getSimpleText(reader, fmt.Sprintf("%s (%d-%d)", prompt, lo, hi), w)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < lo || n > hi {
		return 0, fmt.Errorf("%w: %q", errOutOfRange, raw)
	}
	return n, nil
}
