package app

import (
	"github.com/trebuchet-org/vesting-cli/internal/domain/config"
	"github.com/trebuchet-org/vesting-cli/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig

	// Shared dependencies
	Selector usecase.DeploymentSelector

	// Use cases
	DeployVesting   *usecase.DeployVesting
	CheckVesting    *usecase.CheckVesting
	InspectVesting  *usecase.InspectVesting
	ReleaseVesting  *usecase.ReleaseVesting
	ListDeployments *usecase.ListDeployments
	ShowDeployment  *usecase.ShowDeployment
	ListNetworks    *usecase.ListNetworks
	ShowConfig      *usecase.ShowConfig
	SetConfig       *usecase.SetConfig
	RemoveConfig    *usecase.RemoveConfig
	InitProject     *usecase.InitProject
	ManageAnvil     *usecase.ManageAnvil
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	selector usecase.DeploymentSelector,
	deployVesting *usecase.DeployVesting,
	checkVesting *usecase.CheckVesting,
	inspectVesting *usecase.InspectVesting,
	releaseVesting *usecase.ReleaseVesting,
	listDeployments *usecase.ListDeployments,
	showDeployment *usecase.ShowDeployment,
	listNetworks *usecase.ListNetworks,
	showConfig *usecase.ShowConfig,
	setConfig *usecase.SetConfig,
	removeConfig *usecase.RemoveConfig,
	initProject *usecase.InitProject,
	manageAnvil *usecase.ManageAnvil,
) *App {
	return &App{
		Config:          cfg,
		Selector:        selector,
		DeployVesting:   deployVesting,
		CheckVesting:    checkVesting,
		InspectVesting:  inspectVesting,
		ReleaseVesting:  releaseVesting,
		ListDeployments: listDeployments,
		ShowDeployment:  showDeployment,
		ListNetworks:    listNetworks,
		ShowConfig:      showConfig,
		SetConfig:       setConfig,
		RemoveConfig:    removeConfig,
		InitProject:     initProject,
		ManageAnvil:     manageAnvil,
	}
}
