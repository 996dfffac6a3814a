package bootstrap

import "go.uber.org/zap"

// NewLogger: production memakai encoder JSON, selain itu development.
func NewLogger(production bool) (*zap.Logger, error) {
	if production {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
