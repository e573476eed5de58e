package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New создает JSON-логгер с уровнем из конфигурации
func New(logLevel string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.JSONFormatter{})

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		// Некорректный уровень не валит процесс
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}
