package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/liveeditor/live-editor/internal/config"
)

// New builds the process logger: JSON production output by default,
// human-readable console output when LOG_FORMAT=console.
func New(cfg *config.Config) (*zap.Logger, error) {
	var zc zap.Config
	if cfg.LogFormat == "console" {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
		zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	zc.Level = zap.NewAtomicLevelAt(cfg.LogLevel)

	return zc.Build(zap.Fields(zap.String("service", "live-editor")))
}
