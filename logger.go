package calloutmath

import (
	"log"
	"os"
)

// Logger is the package logger. Only degraded paths log.
var Logger = log.New(os.Stderr, "[calloutmath] ", log.LstdFlags)

// SetLogger replaces the package logger.
func SetLogger(logger *log.Logger) {
	Logger = logger
}
