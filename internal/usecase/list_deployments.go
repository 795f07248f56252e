package usecase

import (
	"context"

	"github.com/samber/lo"
	"github.com/trebuchet-org/vesting-cli/internal/domain"
	"github.com/trebuchet-org/vesting-cli/internal/domain/config"
)

// ListDeploymentsParams contains parameters for listing deployments
type ListDeploymentsParams struct {
	// All ignores the configured network
	All     bool
	ChainID uint64
}

// DeploymentSummary contains counts of recorded deployments
type DeploymentSummary struct {
	Total   int
	ByChain map[uint64]int
}

// DeploymentListResult contains the result of listing deployments
type DeploymentListResult struct {
	Deployments []*domain.Deployment
	Summary     DeploymentSummary
}

// ListDeployments is the use case for listing deployments
type ListDeployments struct {
	config *config.RuntimeConfig
	repo   DeploymentRepository
	sink   ProgressSink
}

// NewListDeployments creates a new ListDeployments use case
func NewListDeployments(cfg *config.RuntimeConfig, repo DeploymentRepository, sink ProgressSink) *ListDeployments {
	return &ListDeployments{
		config: cfg,
		repo:   repo,
		sink:   sink,
	}
}

// Run executes the list deployments use case
func (uc *ListDeployments) Run(ctx context.Context, params ListDeploymentsParams) (*DeploymentListResult, error) {
	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "loading",
		Message: "Loading deployments from registry",
		Spinner: true,
	})

	filter := domain.DeploymentFilter{ChainID: params.ChainID}
	if !params.All && filter.ChainID == 0 && uc.config.Network != nil {
		// chain IDs are only trusted when configured; otherwise match on the network name
		if uc.config.Network.ChainID != 0 {
			filter.ChainID = uc.config.Network.ChainID
		} else {
			filter.Network = uc.config.Network.Name
		}
	}

	deployments, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "complete",
		Message: "Deployments loaded",
	})

	return &DeploymentListResult{
		Deployments: deployments,
		Summary: DeploymentSummary{
			Total: len(deployments),
			ByChain: lo.CountValuesBy(deployments, func(d *domain.Deployment) uint64 {
				return d.ChainID
			}),
		},
	}, nil
}
