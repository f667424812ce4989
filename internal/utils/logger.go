package utils

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewApplicationLogger builds the console logger used for fatal error
// reporting. Every metadata key is stripped so only the message itself
// reaches the terminal next to the confirmation output.
func NewApplicationLogger() (*zap.Logger, error) {
	loggerConfiguration := zap.NewProductionConfig()
	loggerConfiguration.Encoding = "console"
	loggerConfiguration.DisableCaller = true
	loggerConfiguration.DisableStacktrace = true

	encoderConfiguration := &loggerConfiguration.EncoderConfig
	encoderConfiguration.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderConfiguration.MessageKey = "message"
	encoderConfiguration.TimeKey = ""
	encoderConfiguration.LevelKey = ""
	encoderConfiguration.NameKey = ""
	encoderConfiguration.CallerKey = ""
	encoderConfiguration.StacktraceKey = ""

	return loggerConfiguration.Build()
}
