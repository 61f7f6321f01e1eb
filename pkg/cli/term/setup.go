package term

import (
	"os"
)

// Setup sets up the terminal so that it is suitable for the Reader and Writer
// to use. It returns a function that can be used to restore the original
// terminal config, and any error that happened during setup.
func Setup(in, out *os.File) (func() error, error) {
	return setup(in, out)
}

const (
	enableBracketedPaste  = "\033[?2004h"
	disableBracketedPaste = "\033[?2004l"
)

func setupVT(out *os.File) error {
	_, err := out.WriteString(enableBracketedPaste)
	return err
}

func restoreVT(out *os.File) error {
	_, err := out.WriteString(disableBracketedPaste)
	return err
}
