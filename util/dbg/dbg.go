package dbg

import "github.com/sirupsen/logrus"

// DebugLogger is an interface that defines our debug logging functions.
// This allows us to have different implementations based on build tags.
type DebugLogger interface {
	Printf(format string, a ...interface{})
	Println(a ...interface{})
	WithFields(fields logrus.Fields, msg string)
	Enabled() bool
}

// Global variable for our debug logger instance.
// This will be initialized by either debug-log.go or nodebug-log.go depending on build tags.
var debugLog DebugLogger

func Printf(format string, a ...interface{}) {
	debugLog.Printf(format, a...)
}

func Println(a ...interface{}) {
	debugLog.Println(a...)
}

// WithFields logs msg with structured fields at debug level.
func WithFields(fields logrus.Fields, msg string) {
	debugLog.WithFields(fields, msg)
}

// Enabled reports whether debug output goes anywhere, so callers can skip
// building expensive dumps.
func Enabled() bool {
	return debugLog.Enabled()
}
