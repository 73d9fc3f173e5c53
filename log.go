package filters

import (
	"io"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

var logger atomic.Pointer[logrus.Logger]

func init() {
	logger.Store(silentLogger())
}

// silentLogger discards everything below Warn and writes nowhere.
func silentLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.WarnLevel)
	return l
}

// SetLogger installs the logger used for diagnostic output. By default the
// package logs nothing. Passing nil restores the silent default.
func SetLogger(l *logrus.Logger) {
	if l == nil {
		l = silentLogger()
	}
	logger.Store(l)
}

// log returns an entry tagged with the calling function's name.
func log(function string) *logrus.Entry {
	return logger.Load().WithField("function", function)
}

// logInvalid records a rejected call and passes the error through.
func logInvalid(function string, err error) error {
	log(function).WithError(err).Debug("Parameter validation failed")
	return err
}
