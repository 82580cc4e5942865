// Package logger provides modifications to charmbracelet/log's default logger to be used in various files/packages.
// Everything goes to stderr: stdout belongs to the protocol.
package logger

import (
	"os"

	"github.com/charmbracelet/log"
)

func init() {
	log.SetOutput(os.Stderr)
	log.SetLevel(log.WarnLevel)
}

// SetDebug switches the default logger between debug and quiet operation.
func SetDebug(debug bool) {
	if debug {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}
}
