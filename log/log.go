// Package log holds the process-wide loggers. Output goes to a file in the
// temp directory so it never corrupts the terminal UI.
package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// The loggers discard output until Initialize is called, so packages can log
// freely from tests.
var (
	InfoLog    = log.New(io.Discard, "", 0)
	WarningLog = log.New(io.Discard, "", 0)
	ErrorLog   = log.New(io.Discard, "", 0)
)

var logFileName = filepath.Join(os.TempDir(), "calcgrid.log")

var globalLogFile *os.File

// Initialize should be called once at the start of every command. defer Close()
// after calling it.
func Initialize() {
	f, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		panic(fmt.Sprintf("could not open log file: %s", err))
	}

	InfoLog = log.New(f, "INFO:", log.Ldate|log.Ltime|log.Lshortfile)
	WarningLog = log.New(f, "WARNING:", log.Ldate|log.Ltime|log.Lshortfile)
	ErrorLog = log.New(f, "ERROR:", log.Ldate|log.Ltime|log.Lshortfile)

	globalLogFile = f
}

// Close flushes the log file. Pass quiet to skip the "wrote logs" notice, which
// would pollute the output of non-interactive commands.
func Close(quiet bool) {
	if globalLogFile == nil {
		return
	}
	_ = globalLogFile.Close()
	globalLogFile = nil
	if !quiet {
		fmt.Fprintln(os.Stderr, "wrote logs to "+logFileName)
	}
}

// FileName returns the path of the log file.
func FileName() string {
	return logFileName
}
