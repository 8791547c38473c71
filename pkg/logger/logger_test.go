package logger_test

import (
	"context"
	"correcthorse/pkg/logger"
	"testing"

	"github.com/stretchr/testify/require"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		level       string
		wantErr     bool
		wantLevel   zapcore.Level
	}{
		{
			name:        "Development Environment",
			environment: logger.DevelopmentEnvironment,
			wantLevel:   zap.DebugLevel,
		},
		{
			name:        "Production Environment",
			environment: logger.ProductionEnvironment,
			wantLevel:   zap.InfoLevel,
		},
		{
			name:        "Explicit Level",
			environment: logger.DevelopmentEnvironment,
			level:       "warn",
			wantLevel:   zap.WarnLevel,
		},
		{
			name:        "Invalid Level",
			environment: logger.DevelopmentEnvironment,
			level:       "loud",
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := logger.Setup(tt.environment, tt.level)
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)

			l := logger.Get(context.Background())
			require.NotNil(t, l)
			require.Equal(t, tt.wantLevel, l.Level())
		})
	}
}

func TestGet(t *testing.T) {
	require.NoError(t, logger.Setup(logger.DevelopmentEnvironment, ""))

	ctx := context.Background()
	l := logger.Get(ctx)
	require.NotNil(t, l, "Should return default logger when context has no logger")

	customLogger, _ := zap.NewDevelopment()
	ctxWithLogger := logger.WithLogger(ctx, customLogger)
	require.Equal(t, customLogger, logger.Get(ctxWithLogger), "Should return logger from context")
}

func TestWithFields(t *testing.T) {
	require.NoError(t, logger.Setup(logger.DevelopmentEnvironment, ""))
	ctx := context.Background()

	ctxWithFields := logger.WithFields(ctx, zap.String("list", "english"), zap.Int("words", 4))

	// zap.Logger doesn't expose its fields, only check a distinct logger is attached
	l := logger.Get(ctxWithFields)
	require.NotNil(t, l)
	require.NotSame(t, logger.Get(ctx), l)
}

func TestIsDebug(t *testing.T) {
	require.NoError(t, logger.Setup(logger.DevelopmentEnvironment, ""))
	ctx := context.Background()

	require.True(t, logger.IsDebug(ctx), "Development logger should be at debug level")

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	infoLogger, _ := cfg.Build()

	require.False(t, logger.IsDebug(logger.WithLogger(ctx, infoLogger)))
}

func TestLoggingFunctions(t *testing.T) {
	require.NoError(t, logger.Setup(logger.DevelopmentEnvironment, ""))
	ctx := context.Background()

	require.NotPanics(t, func() {
		logger.Debug(ctx, "debug message", zap.String("key", "value"))
		logger.Info(ctx, "info message", zap.String("key", "value"))
		logger.Warn(ctx, "warn message", zap.String("key", "value"))
		logger.Error(ctx, "error message", zap.String("key", "value"))
		logger.Sync(ctx)
	})
}
