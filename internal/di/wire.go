//go:build wireinject
// +build wireinject

package di

import (
	"MeanRev/pkg/config"
	"MeanRev/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideEngine,
		ProvideMemoizer,
		ProvideAnalyzer,
		ProvideHandler,
		ProvideApp,
	)
	return &server.App{}, nil
}
