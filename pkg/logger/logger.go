package logger

import (
	"log"

	"github.com/c14220110/clinic-portal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New membangun zap logger sesuai APP_ENV dan LOG_LEVEL.
func New(cfg *config.Config) *zap.Logger {
	return build(cfg, ParseLevel(cfg.LogLevel), "stdout")
}

// NewCLI logger untuk perintah terminal: hanya warn ke atas, ke stderr,
// agar stdout tetap berisi output perintah.
func NewCLI(cfg *config.Config) *zap.Logger {
	level := ParseLevel(cfg.LogLevel)
	if level < zap.WarnLevel {
		level = zap.WarnLevel
	}
	return build(cfg, level, "stderr")
}

// ParseLevel nilai LOG_LEVEL yang tidak dikenal dianggap info.
func ParseLevel(s string) zapcore.Level {
	switch s {
	case "debug":
		return zap.DebugLevel
	case "warn":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

func build(cfg *config.Config, level zapcore.Level, output string) *zap.Logger {
	encoding := "json"
	if cfg.IsDevelopment() {
		encoding = "console"
	}

	zcfg := zap.Config{
		Level:       zap.NewAtomicLevelAt(level),
		Development: cfg.IsDevelopment(),
		Encoding:    encoding,
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "time",
			LevelKey:       "level",
			NameKey:        "logger",
			CallerKey:      "caller",
			MessageKey:     "msg",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{"stderr"},
	}

	l, err := zcfg.Build()
	if err != nil {
		log.Fatalf("Gagal inisialisasi zap logger: %v", err)
	}
	return l
}
