package log

import (
	"context"
	"fmt"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger Logger

type Logger interface {
	Info(ctx context.Context, message string, data ...interface{})
	Warn(ctx context.Context, message string, data ...interface{})
	Error(ctx context.Context, message string, data ...interface{})
}

type logImpl struct {
	log *otelzap.Logger
}

// Setup builds the otelzap logger handed to fiber handlers and middlewares.
func Setup() *otelzap.Logger {
	return SetupLogger()
}

func SetupLogger() *otelzap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapLogger, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(fmt.Sprintf("failed to build zap logger: %v", err))
	}
	return otelzap.New(zapLogger, otelzap.WithMinLevel(zapcore.InfoLevel))
}

func Init(l *otelzap.Logger) {
	logger = &logImpl{log: l}
}

func GetLogger() Logger {
	if logger == nil {
		Init(SetupLogger())
	}
	return logger
}

func (l *logImpl) Info(ctx context.Context, message string, data ...interface{}) {
	l.log.Ctx(ctx).Info(withData(message, data...))
}

func (l *logImpl) Warn(ctx context.Context, message string, data ...interface{}) {
	l.log.Ctx(ctx).Warn(withData(message, data...))
}

func (l *logImpl) Error(ctx context.Context, message string, data ...interface{}) {
	l.log.Ctx(ctx).Error(withData(message, data...))
}

func withData(message string, data ...interface{}) string {
	if len(data) == 0 {
		return message
	}
	return fmt.Sprintf("%s: %v", message, data)
}
