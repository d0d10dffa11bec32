//go:build debug
// +build debug

package dbg

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

type debugLoggerImpl struct {
	logger *logrus.Logger
}

// init function for the debug build.
// This will be called when the 'debug' tag is active.
func init() {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.DebugLevel)
	logger.SetReportCaller(true)
	debugLog = &debugLoggerImpl{logger: logger}
}

func (d *debugLoggerImpl) Printf(format string, a ...interface{}) {
	d.logger.Debug(strings.TrimRight(fmt.Sprintf(format, a...), "\n"))
}

func (d *debugLoggerImpl) Println(a ...interface{}) {
	d.logger.Debug(strings.TrimRight(fmt.Sprintln(a...), "\n"))
}

func (d *debugLoggerImpl) WithFields(fields logrus.Fields, msg string) {
	d.logger.WithFields(fields).Debug(msg)
}

func (d *debugLoggerImpl) Enabled() bool { return true }
