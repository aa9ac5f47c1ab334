package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ServiceName tags every entry written by the dashboard processes.
const ServiceName = "route-insight"

var globalLogger *zap.SugaredLogger

// Init builds the global JSON logger. Production uses info level and
// sampling; every other environment logs at debug level.
func Init(appEnv string) error {
	logger, err := newConfig(appEnv).Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	globalLogger = logger.Sugar()
	return nil
}

func newConfig(appEnv string) zap.Config {
	config := zap.NewDevelopmentConfig()
	if appEnv == "production" {
		config = zap.NewProductionConfig()
	}
	config.Encoding = "json"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.InitialFields = map[string]interface{}{
		"service": ServiceName,
		"env":     appEnv,
	}
	return config
}

// GetLogger returns the global logger, falling back to a production logger
// when Init was never called.
func GetLogger() *zap.SugaredLogger {
	if globalLogger == nil {
		logger, _ := zap.NewProduction()
		globalLogger = logger.Sugar()
	}
	return globalLogger
}

// SetLogger replaces the global logger, mostly for tests.
func SetLogger(l *zap.SugaredLogger) {
	globalLogger = l
}

func Close() error {
	if globalLogger != nil {
		return globalLogger.Sync()
	}
	return nil
}

func Info(message string, fields ...interface{}) {
	GetLogger().Infow(message, fields...)
}

func Debug(message string, fields ...interface{}) {
	GetLogger().Debugw(message, fields...)
}

func Warn(message string, fields ...interface{}) {
	GetLogger().Warnw(message, fields...)
}

func Error(message string, fields ...interface{}) {
	GetLogger().Errorw(message, fields...)
}

// Fatal logs and exits with status 1.
func Fatal(message string, fields ...interface{}) {
	GetLogger().Fatalw(message, fields...)
	os.Exit(1)
}

// ForSession scopes entries to one dashboard session. An empty id is
// logged as "anonymous" so entries stay filterable.
func ForSession(sessionID string) *zap.SugaredLogger {
	if sessionID == "" {
		sessionID = "anonymous"
	}
	return GetLogger().With("session_id", sessionID)
}

// WithRequest adds the request id and route pattern to a session logger.
func WithRequest(requestID string, sessionID string, endpoint string) *zap.SugaredLogger {
	return ForSession(sessionID).With(
		"request_id", requestID,
		"endpoint", endpoint,
	)
}
