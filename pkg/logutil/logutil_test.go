package logutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogger_DiscardsByDefault(t *testing.T) {
	restore := saveState()
	defer restore()

	logger := GetLogger("[test] ")
	// Should not panic or write anywhere.
	logger.Println("discarded")
}

func TestSetOutput(t *testing.T) {
	restore := saveState()
	defer restore()

	var sb strings.Builder
	logger := GetLogger("[test] ")
	SetOutput(&sb)
	logger.Println("hello")
	if !strings.Contains(sb.String(), "[test] ") ||
		!strings.Contains(sb.String(), "hello") {
		t.Errorf("got log %q, want it to contain prefix and message", sb.String())
	}

	// Registering after SetOutput also works.
	logger2 := GetLogger("[test2] ")
	logger2.Println("world")
	if !strings.Contains(sb.String(), "world") {
		t.Errorf("got log %q, want it to contain message from new logger", sb.String())
	}
}

func TestSetOutputFile(t *testing.T) {
	restore := saveState()
	defer restore()

	fname := filepath.Join(t.TempDir(), "log")
	logger := GetLogger("[test] ")
	if err := SetOutputFile(fname); err != nil {
		t.Fatalf("SetOutputFile(%q) -> %v, want nil", fname, err)
	}
	logger.Println("to file")
	if err := SetOutputFile(""); err != nil {
		t.Fatalf("SetOutputFile(\"\") -> %v, want nil", err)
	}
	logger.Println("discarded")

	content, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(content), "to file") {
		t.Errorf("got log file content %q, want it to contain %q", content, "to file")
	}
	if strings.Contains(string(content), "discarded") {
		t.Errorf("got log file content %q, want it to not contain %q", content, "discarded")
	}
}

func TestSetOutputFile_Error(t *testing.T) {
	restore := saveState()
	defer restore()

	fname := filepath.Join(t.TempDir(), "nonexistent", "log")
	if err := SetOutputFile(fname); err == nil {
		t.Errorf("SetOutputFile(%q) -> nil, want error", fname)
	}
}

func saveState() func() {
	mutex.Lock()
	defer mutex.Unlock()
	savedOut, savedOutFile, savedLoggers := out, outFile, loggers
	return func() {
		mutex.Lock()
		defer mutex.Unlock()
		out, outFile, loggers = savedOut, savedOutFile, savedLoggers
	}
}
