//go:build wireinject
// +build wireinject

package di

import (
	"GoldView/pkg/config"
	"GoldView/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// Upstream client
		ProvideUpstreamClient,
		ProvideReportSource,

		// Use cases
		ProvideReportLoader,
		ProvideQuoteCache,
		ProvideLivePoller,

		// HTTP surface
		ProvideViewConfigs,
		ProvideViewHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
