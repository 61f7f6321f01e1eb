//go:build unix

package progtest

import (
	"bytes"
	"os"
	"sync"
	"testing"

	"github.com/creack/pty"

	"mealog.dev/pkg/prog"
)

// InteractiveFixture runs a program with all three of its standard files
// connected to the replica side of a pseudo-terminal, so that a test can play
// the role of the user on the control side.
type InteractiveFixture struct {
	control *os.File
	exitCh  chan int

	mutex  sync.Mutex
	output bytes.Buffer
}

// SetupInteractive starts p on a new pseudo-terminal and returns a fixture
// for interacting with it. The fixture is cleaned up when the test finishes,
// but the test should normally quit the program and call WaitExit first.
func SetupInteractive(t *testing.T, p prog.Program, args ...string) *InteractiveFixture {
	t.Helper()
	control, replica, err := pty.Open()
	if err != nil {
		t.Skipf("cannot open pty: %v", err)
	}
	f := &InteractiveFixture{control: control, exitCh: make(chan int, 1)}
	go func() {
		buf := make([]byte, 4096)
		for {
			n, err := control.Read(buf)
			f.mutex.Lock()
			f.output.Write(buf[:n])
			f.mutex.Unlock()
			if err != nil {
				return
			}
		}
	}()
	go func() {
		exit := prog.Run(
			[3]*os.File{replica, replica, replica},
			append([]string{"mealog"}, args...), p)
		replica.Close()
		f.exitCh <- exit
	}()
	t.Cleanup(func() { control.Close() })
	return f
}

// Input writes s to the control side of the pseudo-terminal, as if the user
// had typed it.
func (f *InteractiveFixture) Input(s string) {
	f.control.Write([]byte(s))
}

// WaitExit waits for the program to exit, and returns its exit status.
func (f *InteractiveFixture) WaitExit() int {
	return <-f.exitCh
}

// Output returns everything the program has written to the terminal so far,
// including escape sequences.
func (f *InteractiveFixture) Output() string {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	return f.output.String()
}
