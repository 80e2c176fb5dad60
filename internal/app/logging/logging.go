package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Config struct {
	Level      string
	Format     string // text | json
	File       string // пустой: только stdout
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// Setup настраивает глобальный logrus. Файл, если задан, ротируется lumberjack
func Setup(cfg Config) error {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if cfg.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	logrus.SetOutput(Writer(cfg))
	return nil
}

// Writer возвращает приёмник логов для конфигурации
func Writer(cfg Config) io.Writer {
	if cfg.File == "" {
		return os.Stdout
	}
	rotator := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    orDefault(cfg.MaxSizeMB, 100),
		MaxBackups: orDefault(cfg.MaxBackups, 3),
		MaxAge:     orDefault(cfg.MaxAgeDays, 28),
		Compress:   true,
	}
	return io.MultiWriter(os.Stdout, rotator)
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
