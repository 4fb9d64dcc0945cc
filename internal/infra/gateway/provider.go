package gateway

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/service"

	"go.uber.org/fx"
)

// ClientParams holds dependencies for the gateway Client, injected by Fx
type ClientParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Tokens service.TokenInspector
	Logger *slog.Logger
}

// NewGatewayClient builds the shared backend client and drops idle connections on shutdown.
func NewGatewayClient(params ClientParams) (*Client, error) {
	client, err := NewClient(params.Config.Gateway, params.Tokens, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Gateway client initialized",
		slog.String("base_url", params.Config.Gateway.BaseURL),
		slog.Bool("chrome_tls", params.Config.Gateway.ChromeTLS),
		slog.Bool("breaker", params.Config.Gateway.Breaker.Enabled),
	)

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			client.httpClient.CloseIdleConnections()

			return nil
		},
	})

	return client, nil
}

// Module provides the gateway FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewGatewayClient,
		NewCartGateway,
		NewCatalogGateway,
		NewAuthGateway,
	),
)
