//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/vesting-cli/internal/adapters"
	"github.com/trebuchet-org/vesting-cli/internal/config"
	"github.com/trebuchet-org/vesting-cli/internal/logging"
	"github.com/trebuchet-org/vesting-cli/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper, sink usecase.ProgressSink) (*App, func(), error) {
	wire.Build(
		// Configuration
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewCheckVesting,
		usecase.NewDeployVesting,
		usecase.NewInspectVesting,
		usecase.NewReleaseVesting,
		usecase.NewListDeployments,
		usecase.NewShowDeployment,
		usecase.NewListNetworks,
		usecase.NewShowConfig,
		usecase.NewSetConfig,
		usecase.NewRemoveConfig,
		usecase.NewInitProject,
		usecase.NewManageAnvil,

		// App
		NewApp,
	)
	return nil, nil, nil
}
