package logger

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger and Sugar are no-op loggers until InitLogger replaces them.
var (
	Logger *zap.Logger        = zap.NewNop()
	Sugar  *zap.SugaredLogger = Logger.Sugar()
)

// LogLevel represents available log levels
type LogLevel string

const (
	DEBUG LogLevel = "debug"
	INFO  LogLevel = "info"
	WARN  LogLevel = "warn"
	ERROR LogLevel = "error"
	PANIC LogLevel = "panic"
	FATAL LogLevel = "fatal"
)

// LogFormat represents output formats
type LogFormat string

const (
	JSON    LogFormat = "json"
	CONSOLE LogFormat = "console"
)

// Config holds logger configuration
type Config struct {
	Level      LogLevel  `json:"level"`
	Format     LogFormat `json:"format"`
	OutputPath string    `json:"output_path"`
	Caller     bool      `json:"caller"`
	Stacktrace bool      `json:"stacktrace"`
}

// DefaultConfig returns default logger configuration
func DefaultConfig() Config {
	return Config{
		Level:      INFO,
		Format:     CONSOLE,
		OutputPath: "stdout",
		Caller:     true,
		Stacktrace: true,
	}
}

// InitLogger initializes the global logger with configuration
func InitLogger(config Config) error {
	var level zapcore.Level
	switch config.Level {
	case DEBUG:
		level = zapcore.DebugLevel
	case INFO:
		level = zapcore.InfoLevel
	case WARN:
		level = zapcore.WarnLevel
	case ERROR:
		level = zapcore.ErrorLevel
	case PANIC:
		level = zapcore.PanicLevel
	case FATAL:
		level = zapcore.FatalLevel
	default:
		level = zapcore.InfoLevel
	}

	var encoderConfig zapcore.EncoderConfig
	var encoder zapcore.Encoder

	if config.Format == JSON {
		encoderConfig = zap.NewProductionEncoderConfig()
		encoderConfig.TimeKey = "timestamp"
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	} else {
		encoderConfig = zap.NewDevelopmentEncoderConfig()
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("2006/01/02 15:04:05")
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	var writeSyncer zapcore.WriteSyncer
	if config.OutputPath == "stdout" || config.OutputPath == "" {
		writeSyncer = zapcore.AddSync(os.Stdout)
	} else {
		file, err := os.OpenFile(config.OutputPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return err
		}
		writeSyncer = zapcore.AddSync(file)
	}

	core := zapcore.NewCore(encoder, writeSyncer, level)

	var options []zap.Option
	if config.Caller {
		options = append(options, zap.AddCaller())
		options = append(options, zap.AddCallerSkip(1))
	}
	if config.Stacktrace {
		options = append(options, zap.AddStacktrace(zapcore.ErrorLevel))
	}

	Logger = zap.New(core, options...)
	Sugar = Logger.Sugar()

	return nil
}

// InitFromEnv initializes the logger from HARDGATE_LOG_* environment
// variables, falling back to DefaultConfig for anything unset.
func InitFromEnv() error {
	config := DefaultConfig()

	if level := os.Getenv("HARDGATE_LOG_LEVEL"); level != "" {
		config.Level = LogLevel(strings.ToLower(level))
	}
	if format := os.Getenv("HARDGATE_LOG_FORMAT"); format != "" {
		config.Format = LogFormat(strings.ToLower(format))
	}
	if output := os.Getenv("HARDGATE_LOG_OUTPUT"); output != "" {
		config.OutputPath = output
	}
	if caller := os.Getenv("HARDGATE_LOG_CALLER"); caller == "false" {
		config.Caller = false
	}
	if stacktrace := os.Getenv("HARDGATE_LOG_STACKTRACE"); stacktrace == "false" {
		config.Stacktrace = false
	}

	return InitLogger(config)
}

// Sync flushes any buffered log entries
func Sync() {
	if Logger != nil {
		Logger.Sync()
	}
}

// WithComponent adds component context to logger
func WithComponent(component string) *zap.Logger {
	return Logger.With(zap.String("component", component))
}

// WithScan adds scan_id context to logger
func WithScan(scanID string) *zap.Logger {
	return Logger.With(zap.String("scan_id", scanID))
}

// WithGate adds gate and language context to logger
func WithGate(gate, language string) *zap.Logger {
	return Logger.With(
		zap.String("gate", gate),
		zap.String("language", language),
	)
}

// WithError adds error context to logger
func WithError(err error) *zap.Logger {
	return Logger.With(zap.Error(err))
}

// LogPerformance logs performance metrics
func LogPerformance(operation string, durationMs int64, success bool) {
	Logger.Info("performance metric",
		zap.String("operation", operation),
		zap.Int64("duration_ms", durationMs),
		zap.Bool("success", success),
	)
}

// LogScanMetrics logs the outcome of a completed scan
func LogScanMetrics(scanID string, totalFiles int, durationMs int64, overallScore float64, passed bool) {
	Logger.Info("scan completed",
		zap.String("scan_id", scanID),
		zap.Int("total_files", totalFiles),
		zap.Int64("duration_ms", durationMs),
		zap.Float64("overall_score", overallScore),
		zap.Bool("passed", passed),
	)
}

// LogError logs structured error information
func LogError(operation string, err error, context map[string]interface{}) {
	fields := []zap.Field{
		zap.String("operation", operation),
		zap.Error(err),
	}
	for key, value := range context {
		fields = append(fields, zap.Any(key, value))
	}
	Logger.Error("operation failed", fields...)
}

// LogCriticalError logs critical system errors
func LogCriticalError(operation string, err error, context map[string]interface{}) {
	fields := []zap.Field{
		zap.String("operation", operation),
		zap.Error(err),
		zap.String("severity", "critical"),
	}
	for key, value := range context {
		fields = append(fields, zap.Any(key, value))
	}
	Logger.Error("critical system error", fields...)
}
