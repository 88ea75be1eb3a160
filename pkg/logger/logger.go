package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New создаёт JSON-логгер, пишущий в stderr: stdout занят итоговой строкой и SQL
func New(logLevel string) *logrus.Logger {
	return NewWithOutput(logLevel, os.Stderr)
}

// NewWithOutput создаёт JSON-логгер с заданным выводом
func NewWithOutput(logLevel string, out io.Writer) *logrus.Logger {
	log := logrus.New()

	log.SetFormatter(&logrus.JSONFormatter{})

	log.SetOutput(out)

	// Уровень логирования
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel // Уровень по умолчанию, если передан некорректный
	}
	log.SetLevel(level)
	return log
}
