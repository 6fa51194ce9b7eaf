package cmd

import (
	"fmt"

	"github.com/kozaktomas/face-compare/internal/betaface"
	"github.com/kozaktomas/face-compare/internal/config"
	"github.com/kozaktomas/face-compare/internal/logging"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger builds the diagnostics logger. Info lines would break the
// progress bar, so it only shows warnings while the bar is on.
func newLogger() (*zap.Logger, error) {
	logger, err := logging.NewLogger(debug)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	if showProgress && !debug {
		logger = logger.WithOptions(zap.IncreaseLevel(zapcore.WarnLevel))
	}
	return logger, nil
}

// newClient creates a Betaface client from the loaded configuration.
func newClient(cfg *config.Config, logger *zap.Logger) (*betaface.Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if cfg.Betaface.Secret != "" {
		// TODO: wire the secret into request signing once the API documents a scheme for it.
		logger.Debug("BETAFACE_API_SECRET is set but no request uses it")
	}

	client, err := betaface.New(
		cfg.Betaface.URL,
		cfg.Betaface.APIKey,
		betaface.WithTimeout(cfg.Betaface.Timeout),
		betaface.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Betaface client: %w", err)
	}

	if err := client.SetCaptureDir(captureDir); err != nil {
		return nil, err
	}

	return client, nil
}

// warnUnknownFlags logs detection flags the API may not understand. They are still sent.
func warnUnknownFlags(logger *zap.Logger, cfg *config.Config, flags []string) {
	if unknown := cfg.Detection.UnknownFlags(flags); len(unknown) > 0 {
		logger.Warn("unknown detection flags, sending anyway", zap.Strings("flags", unknown))
	}
}
