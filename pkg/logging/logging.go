package logging

import (
	"go.uber.org/zap"
)

// Setup builds the process logger. Verbose selects the zap development
// config (debug level, console encoding); otherwise the production config
// is used. The returned logger is also installed as the zap global.
func Setup(verbose bool, appName, appVersion string) (*zap.Logger, error) {
	var cfg zap.Config

	if verbose {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	// Add default fields
	cfg.InitialFields = map[string]interface{}{
		"appName":    appName,
		"appVersion": appVersion,
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	zap.ReplaceGlobals(logger)
	return logger, nil
}
