// Mealog is a terminal meal journal: a form for logging meals, and a list of
// the meals logged so far. Records live in memory for the session only.
package main

import (
	"os"

	"mealog.dev/pkg/buildinfo"
	"mealog.dev/pkg/journal"
	"mealog.dev/pkg/prog"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(buildinfo.Program{}, journal.Program{})))
}
