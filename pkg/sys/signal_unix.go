//go:build unix

package sys

import (
	"os"
	"os/signal"
	"syscall"
)

const sigsChanBufferSize = 256

func notifySignals() chan os.Signal {
	// This catches every signal regardless of whether it is ignored.
	sigCh := make(chan os.Signal, sigsChanBufferSize)
	signal.Notify(sigCh)
	// Calling signal.Notify resets the ignore status of these signals, so they
	// have to be ignored again. Without this, resuming from a Ctrl-Z suspend
	// can stop the process as soon as it touches the terminal.
	signal.Ignore(syscall.SIGTTIN, syscall.SIGTTOU, syscall.SIGTSTP)
	return sigCh
}
