package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New собирает логгер платежного сервиса: JSON и Info-уровень для релизного режима.
func New(output io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(output)
	l.SetFormatter(new(logrus.JSONFormatter))
	l.SetLevel(logrus.InfoLevel)

	// вне release-режима gin читаемее текстовый вывод и подробный уровень
	if os.Getenv("GIN_MODE") != "release" {
		l.SetLevel(logrus.DebugLevel)
		l.SetFormatter(new(logrus.TextFormatter))
	}

	return l
}
