package errors

import (
	"fmt"
	"os"
)

// LogHandler is a Handler that logs errors to stderr.
type LogHandler struct {
	// Verbose enables detailed output including timestamps.
	Verbose bool
}

// HandleError logs an AnimError to stderr.
func (h *LogHandler) HandleError(err *AnimError) {
	if err == nil {
		return
	}
	if h.Verbose {
		fmt.Fprintf(os.Stderr, "[rtanim] %s %s [%s]: %v\n",
			err.Timestamp.Format("15:04:05.000"), err.Op, err.Kind, err.Err)
	} else {
		fmt.Fprintf(os.Stderr, "[rtanim] %s: %v\n", err.Op, err.Err)
	}
}
