package inits

import (
	"fmt"
	"go.uber.org/zap"
)

func Logger(debugMode bool) (*zap.Logger, error) {
	var cfg zap.Config
	if debugMode {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.DisableStacktrace = true
	}

	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	return l.With(zap.String("service", "contact-manager")), nil
}
