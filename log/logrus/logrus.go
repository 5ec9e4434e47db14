package logrus

import (
	"github.com/sirupsen/logrus"

	"github.com/unkn0wn-root/chaincodec"
)

var _ chaincodec.Logger = LogrusLogger{}

type LogrusLogger struct{ E *logrus.Entry }

// New wraps l, tagging every entry with component=chaincodec.
func New(l *logrus.Logger) LogrusLogger {
	return LogrusLogger{E: l.WithField("component", "chaincodec")}
}

func (l LogrusLogger) Debug(msg string, f chaincodec.Fields) {
	l.E.WithFields(logrus.Fields(f)).Debug(msg)
}
func (l LogrusLogger) Info(msg string, f chaincodec.Fields) { l.E.WithFields(logrus.Fields(f)).Info(msg) }
func (l LogrusLogger) Warn(msg string, f chaincodec.Fields) { l.E.WithFields(logrus.Fields(f)).Warn(msg) }
func (l LogrusLogger) Error(msg string, f chaincodec.Fields) {
	l.E.WithFields(logrus.Fields(f)).Error(msg)
}
