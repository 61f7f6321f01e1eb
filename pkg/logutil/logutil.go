// Package logutil provides a process-wide registry of loggers, whose output
// can be redirected as a group.
//
// Logging is off by default and can be turned on with SetOutput or
// SetOutputFile. This lets library code log unconditionally, with the cost of
// a discarded write when logging is off.
package logutil

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

var (
	mutex sync.Mutex
	// All the variables below are guarded by mutex.
	out     io.Writer = io.Discard
	outFile *os.File
	loggers []*log.Logger
)

// GetLogger gets a logger with a prefix, registering it so that later calls
// to SetOutput or SetOutputFile also apply to it.
func GetLogger(prefix string) *log.Logger {
	mutex.Lock()
	defer mutex.Unlock()
	logger := log.New(out, prefix, log.LstdFlags)
	loggers = append(loggers, logger)
	return logger
}

// SetOutput redirects the output of all loggers made with GetLogger to the
// given io.Writer.
func SetOutput(newOut io.Writer) {
	mutex.Lock()
	defer mutex.Unlock()
	closeOutFile()
	out = newOut
	outFile = nil
	applyOutput()
}

// SetOutputFile redirects the output of all loggers made with GetLogger to
// the named file, opened for appending. If the name is empty, logger output
// is discarded instead.
func SetOutputFile(fname string) error {
	mutex.Lock()
	defer mutex.Unlock()
	if fname == "" {
		closeOutFile()
		out = io.Discard
		outFile = nil
	} else {
		file, err := os.OpenFile(fname, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file %q: %v", fname, err)
		}
		closeOutFile()
		out = file
		outFile = file
	}
	applyOutput()
	return nil
}

func closeOutFile() {
	if outFile != nil {
		outFile.Close()
	}
}

func applyOutput() {
	for _, logger := range loggers {
		logger.SetOutput(out)
	}
}
