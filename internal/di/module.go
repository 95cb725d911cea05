package di

import (
	"go.uber.org/fx"

	"github.com/chowdhry/storefront/internal/adapter/delhivery"
	"github.com/chowdhry/storefront/internal/adapter/geo"
	"github.com/chowdhry/storefront/internal/adapter/razorpay"
	"github.com/chowdhry/storefront/internal/app"
	"github.com/chowdhry/storefront/internal/config"
	"github.com/chowdhry/storefront/internal/logger"
	"github.com/chowdhry/storefront/internal/pkg/auth"
	"github.com/chowdhry/storefront/internal/server/http/handlers"
	"github.com/chowdhry/storefront/internal/server/http/router"
	"github.com/chowdhry/storefront/internal/storage/postgres"
	"github.com/chowdhry/storefront/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		delhivery.Module,
		razorpay.Module,
		geo.Module,
		usecase.Module,
		fx.Provide(
			func(client delhivery.Client) usecase.CourierGateway { return client },
			func(client razorpay.Client) usecase.PaymentGateway { return client },
			func(client razorpay.Client) usecase.SignatureVerifier { return client },
			func(client geo.Client) usecase.FeeEstimator { return client },
			func(facade *app.CommerceFacade) handlers.CommerceFacade { return facade },
		),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
