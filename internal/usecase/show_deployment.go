package usecase

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/vesting-cli/internal/domain"
	"github.com/trebuchet-org/vesting-cli/internal/domain/config"
)

// ShowDeploymentParams contains parameters for showing a deployment
type ShowDeploymentParams struct {
	// Ref is an address or registry ID; empty selects interactively
	Ref string
}

// ShowDeployment is the use case for showing a recorded deployment
type ShowDeployment struct {
	config   *config.RuntimeConfig
	repo     DeploymentRepository
	selector DeploymentSelector
	sink     ProgressSink
}

// NewShowDeployment creates a new ShowDeployment use case
func NewShowDeployment(cfg *config.RuntimeConfig, repo DeploymentRepository, selector DeploymentSelector, sink ProgressSink) *ShowDeployment {
	return &ShowDeployment{
		config:   cfg,
		repo:     repo,
		selector: selector,
		sink:     sink,
	}
}

// Run executes the show deployment use case
func (uc *ShowDeployment) Run(ctx context.Context, params ShowDeploymentParams) (*domain.Deployment, error) {
	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "loading",
		Message: "Loading deployment details",
		Spinner: true,
	})

	var filter domain.DeploymentFilter
	if uc.config.Network != nil {
		filter.ChainID = uc.config.Network.ChainID
	}

	var (
		deployment *domain.Deployment
		err        error
	)
	if params.Ref == "" {
		deployments, listErr := uc.repo.List(ctx, filter)
		if listErr != nil {
			return nil, listErr
		}
		deployment, err = uc.selector.SelectDeployment(ctx, deployments, "Select a deployment")
	} else if filter.ChainID != 0 && common.IsHexAddress(params.Ref) {
		deployment, err = uc.repo.GetByAddress(ctx, filter.ChainID, common.HexToAddress(params.Ref))
	} else {
		deployment, err = uc.repo.Get(ctx, params.Ref)
	}
	if err != nil {
		return nil, err
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "complete",
		Message: "Deployment loaded",
	})

	return deployment, nil
}
