// Package logwriter wraps a io.Writer for philo diagnostics.
//
// Diagnostics never go to stdout, which carries the event log.
package logwriter // "github.com/nickng/philo/logwriter"

import (
	"bufio"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"

	"github.com/fatih/color"
)

// Prefix of every diagnostic line.
const Prefix = "philo: "

// Writer is a log writer and its configurations.
type Writer struct {
	io.Writer

	LogFile       string
	EnableLogging bool
	EnableColour  bool
	Cleanup       func()
}

// NewFile creates a new file writer. An empty logfile means stderr.
func NewFile(logfile string, enableLogging, enableColour bool) *Writer {
	return &Writer{
		LogFile:       logfile,
		EnableLogging: enableLogging,
		EnableColour:  enableColour,
	}
}

// New creates a new log writer.
func New(w io.Writer, enableLogging, enableColour bool) *Writer {
	return &Writer{
		Writer:        w,
		EnableLogging: enableLogging,
		EnableColour:  enableColour,
	}
}

// Create initialises a new writer.
func (w *Writer) Create() error {
	color.NoColor = color.NoColor || !w.EnableColour
	w.Cleanup = func() {}
	switch {
	case !w.EnableLogging:
		w.Writer = ioutil.Discard
	case w.Writer != nil:
	case w.LogFile != "":
		f, err := os.Create(w.LogFile)
		if err != nil {
			return fmt.Errorf("failed to create log file: %w", err)
		}
		bufWriter := bufio.NewWriter(f)
		w.Writer = bufWriter
		w.Cleanup = func() {
			if err := bufWriter.Flush(); err != nil {
				log.Printf("flush: %s", err)
			}
			if err := f.Close(); err != nil {
				log.Printf("close: %s", err)
			}
		}
	default:
		w.Writer = os.Stderr
	}
	return nil
}

// Logger returns a diagnostic logger writing to w. Create must be called
// first.
func (w *Writer) Logger() *log.Logger {
	return log.New(w, Prefix, log.LstdFlags|log.Lmicroseconds)
}
