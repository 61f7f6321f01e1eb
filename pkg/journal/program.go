package journal

import (
	"fmt"
	"os"

	"mealog.dev/pkg/cli"
	"mealog.dev/pkg/prog"
	"mealog.dev/pkg/sys"
)

// Program is the subprogram that runs the journal UI.
type Program struct{}

// Run runs the journal UI on the terminal of fds[0] and fds[2], and prints a
// one-line session summary to fds[1] on exit.
func (Program) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	if len(args) > 0 {
		return prog.BadUsage("mealog accepts no arguments")
	}
	cfg, err := LoadConfig(f.Config)
	if err != nil {
		fmt.Fprintln(fds[2], err)
		return prog.Exit(1)
	}
	if !sys.IsATTY(fds[0].Fd()) || !sys.IsATTY(fds[1].Fd()) {
		fmt.Fprintln(fds[2], "mealog needs a terminal to run; check stdin and stdout")
		return prog.Exit(1)
	}

	j := New(cfg, cli.NewTTY(fds[0], fds[2]))
	if err := j.Run(); err != nil {
		return err
	}
	fmt.Fprintf(fds[1], "recorded %d meals\n", len(j.Records()))
	return nil
}
