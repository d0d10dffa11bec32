//go:build !debug
// +build !debug

package dbg

import "github.com/sirupsen/logrus"

type noOpDebugLoggerImpl struct{}

// init function for the non-debug build.
// This will be called when the 'debug' tag is NOT active.
func init() {
	debugLog = &noOpDebugLoggerImpl{}
}

func (n *noOpDebugLoggerImpl) Printf(format string, a ...interface{}) {}

func (n *noOpDebugLoggerImpl) Println(a ...interface{}) {}

func (n *noOpDebugLoggerImpl) WithFields(fields logrus.Fields, msg string) {}

func (n *noOpDebugLoggerImpl) Enabled() bool { return false }
