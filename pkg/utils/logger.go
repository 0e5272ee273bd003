package utils

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// InitLogger builds the service logger: JSON (console in debug) to stdout and
// to a rotating "<APP_NAME>.log" under LogPath. Every entry carries the
// service name.
func InitLogger(app AppConfig) (*zap.Logger, error) {
	// Buat folder log jika belum ada
	if app.LogPath != "" {
		if err := os.MkdirAll(app.LogPath, 0755); err != nil {
			return nil, err
		}
	}

	name := app.Name
	if name == "" {
		name = "moviehub"
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	if app.Debug {
		encoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	encoderConfig.EncodeDuration = zapcore.MillisDurationEncoder

	encoder := zapcore.NewJSONEncoder(encoderConfig)
	level := zap.InfoLevel
	if app.Debug {
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
		level = zap.DebugLevel
	}

	// File sink dengan rotasi log
	fileWriter := zapcore.AddSync(&lumberjack.Logger{
		Filename:   filepath.Join(app.LogPath, name+".log"),
		MaxSize:    10, // MB
		MaxBackups: 7,
		MaxAge:     28, // days
		Compress:   true,
	})

	core := zapcore.NewTee(
		zapcore.NewCore(encoder, fileWriter, level),
		zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), level),
	)

	return zap.New(core,
		zap.AddCaller(),
		zap.AddStacktrace(zap.ErrorLevel),
		zap.Fields(zap.String("service", name)),
	), nil
}
