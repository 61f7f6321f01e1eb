// Package progtest provides utilities for testing subprograms.
package progtest

import (
	"bytes"
	"io"
	"os"
	"strings"
	"sync"
	"testing"

	"mealog.dev/pkg/prog"
)

// Test runs test cases against a given program.
func Test(t *testing.T, p prog.Program, cases ...Case) {
	t.Helper()
	for _, c := range cases {
		t.Run(strings.Join(c.args[1:], " "), func(t *testing.T) {
			t.Helper()
			r := run(p, c.args, c.stdin)
			if r.exit != c.want.exit {
				t.Errorf("got exit code %v, want %v", r.exit, c.want.exit)
			}
			checkOutput(t, "stdout", r.stdout, c.want.stdout)
			checkOutput(t, "stderr", r.stderr, c.want.stderr)
		})
	}
}

func checkOutput(t *testing.T, name, got string, want output) {
	t.Helper()
	if want.partial {
		if !strings.Contains(got, want.content) {
			t.Errorf("got %v %q, want string containing %q", name, got, want.content)
		}
	} else if got != want.content {
		t.Errorf("got %v %q, want %q", name, got, want.content)
	}
}

// Case is a test case that can be used in Test.
type Case struct {
	args  []string
	stdin string
	want  want
}

type want struct {
	exit   int
	stdout output
	stderr output
}

type output struct {
	content string
	partial bool
}

type result struct {
	exit           int
	stdout, stderr string
}

// ThatMealog returns a new Case with the given CLI arguments.
func ThatMealog(args ...string) Case {
	return Case{args: append([]string{"mealog"}, args...)}
}

// WithStdin returns an altered Case that provides the given input to stdin of
// the program.
func (c Case) WithStdin(s string) Case {
	c.stdin = s
	return c
}

// DoesNothing returns c itself. It is useful to mark tests that otherwise
// don't have any expectations, making the test code more readable.
func (c Case) DoesNothing() Case {
	return c
}

// ExitsWith returns an altered Case that requires the program invocation to
// return with the given exit code.
func (c Case) ExitsWith(code int) Case {
	c.want.exit = code
	return c
}

// WritesStdout returns an altered Case that requires the program invocation
// to produce exactly the given text in stdout.
func (c Case) WritesStdout(s string) Case {
	c.want.stdout = output{content: s}
	return c
}

// WritesStdoutContaining returns an altered Case that requires the program
// invocation to produce output in stdout containing the given text.
func (c Case) WritesStdoutContaining(s string) Case {
	c.want.stdout = output{content: s, partial: true}
	return c
}

// WritesStderr returns an altered Case that requires the program invocation
// to produce exactly the given text in stderr.
func (c Case) WritesStderr(s string) Case {
	c.want.stderr = output{content: s}
	return c
}

// WritesStderrContaining returns an altered Case that requires the program
// invocation to produce output in stderr containing the given text.
func (c Case) WritesStderrContaining(s string) Case {
	c.want.stderr = output{content: s, partial: true}
	return c
}

func run(p prog.Program, args []string, stdin string) result {
	r0, w0 := mustPipe()
	r1, w1 := mustPipe()
	r2, w2 := mustPipe()

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		w0.WriteString(stdin)
		w0.Close()
	}()
	var stdout, stderr string
	go func() {
		defer wg.Done()
		stdout = readAll(r1)
	}()
	go func() {
		defer wg.Done()
		stderr = readAll(r2)
	}()

	exit := prog.Run([3]*os.File{r0, w1, w2}, args, p)
	r0.Close()
	w1.Close()
	w2.Close()
	wg.Wait()
	return result{exit, stdout, stderr}
}

func mustPipe() (*os.File, *os.File) {
	r, w, err := os.Pipe()
	if err != nil {
		panic(err)
	}
	return r, w
}

func readAll(r *os.File) string {
	var buf bytes.Buffer
	io.Copy(&buf, r)
	r.Close()
	return buf.String()
}
