package logrus

import (
	"github.com/sirupsen/logrus"

	"github.com/aligent/hybridstore"
)

type LogrusLogger struct{ E *logrus.Entry }

var _ hybridstore.Logger = LogrusLogger{}

func (l LogrusLogger) Debug(msg string, f hybridstore.Fields) {
	l.E.WithFields(logrus.Fields(f)).Debug(msg)
}
func (l LogrusLogger) Info(msg string, f hybridstore.Fields) {
	l.E.WithFields(logrus.Fields(f)).Info(msg)
}
func (l LogrusLogger) Warn(msg string, f hybridstore.Fields) {
	l.E.WithFields(logrus.Fields(f)).Warn(msg)
}
func (l LogrusLogger) Error(msg string, f hybridstore.Fields) {
	l.E.WithFields(logrus.Fields(f)).Error(msg)
}
