package delhivery

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/chowdhry/storefront/internal/config"
)

// Module exposes the courier client implementation to the fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	return NewHTTPClient(p.Config.DelhiveryBaseURL, p.Config.DelhiveryToken, p.Logger)
}
