package config

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger builds the process logger and installs it as the zap global.
// With LOG_FILE set, JSON lines also go to a rotated file.
func NewLogger(c Config) (*zap.Logger, error) {
	var zc zap.Config
	if c.LogMode == "production" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}
	zc.OutputPaths = []string{"stdout"}

	var (
		logger *zap.Logger
		err    error
	)
	if c.LogFile != "" {
		rotate := &lumberjack.Logger{
			Filename:   c.LogFile,
			MaxSize:    64,
			MaxBackups: 7,
			MaxAge:     7,
		}
		core := zapcore.NewTee(
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(rotate),
				zc.Level,
			),
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
				zapcore.AddSync(os.Stdout),
				zc.Level,
			),
		)
		logger = zap.New(core, zap.AddCaller())
	} else {
		logger, err = zc.Build(zap.AddCaller())
		if err != nil {
			return nil, err
		}
	}
	zap.ReplaceGlobals(logger)
	return logger, nil
}
