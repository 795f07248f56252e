package usecase

import (
	"context"
	"fmt"

	"github.com/trebuchet-org/vesting-cli/internal/domain"
)

// InspectVestingParams contains parameters for inspecting a wallet
type InspectVestingParams struct {
	Ref string
	// At is the timestamp passed to vestedAmount; zero means the latest block time
	At uint64
}

// InspectVestingResult contains the state of a wallet
type InspectVestingResult struct {
	ChainID    uint64
	State      *domain.VestingState
	Deployment *domain.Deployment // nil when the wallet is not in the registry
}

// InspectVesting reads every accessor of a deployed wallet
type InspectVesting struct {
	chain    ChainClient
	contract VestingContract
	wallets  walletResolver
	progress ProgressSink
}

// NewInspectVesting creates a new InspectVesting use case
func NewInspectVesting(chain ChainClient, contract VestingContract, repo DeploymentRepository, selector DeploymentSelector, progress ProgressSink) *InspectVesting {
	return &InspectVesting{
		chain:    chain,
		contract: contract,
		wallets:  walletResolver{repo: repo, selector: selector},
		progress: progress,
	}
}

// Run executes the use case
func (uc *InspectVesting) Run(ctx context.Context, params InspectVestingParams) (*InspectVestingResult, error) {
	chainID, err := uc.chain.ChainID(ctx)
	if err != nil {
		return nil, err
	}
	wallet, record, err := uc.wallets.resolve(ctx, chainID, params.Ref)
	if err != nil {
		return nil, err
	}

	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   "reading",
		Message: fmt.Sprintf("Reading %s", wallet.Hex()),
		Spinner: true,
	})

	at := params.At
	if at == 0 {
		if at, err = uc.chain.LatestBlockTime(ctx); err != nil {
			return nil, fmt.Errorf("failed to read chain time: %w", err)
		}
	}

	state := &domain.VestingState{Address: wallet, At: at}
	if state.Owner, err = uc.contract.Owner(ctx, wallet); err != nil {
		return nil, err
	}
	if state.Start, err = uc.contract.Start(ctx, wallet); err != nil {
		return nil, err
	}
	if state.Duration, err = uc.contract.Duration(ctx, wallet); err != nil {
		return nil, err
	}
	if state.Released, err = uc.contract.Released(ctx, wallet); err != nil {
		return nil, err
	}
	if state.VestedAmount, err = uc.contract.VestedAmount(ctx, wallet, at); err != nil {
		return nil, err
	}
	if state.Balance, err = uc.contract.Balance(ctx, wallet); err != nil {
		return nil, err
	}

	uc.progress.OnProgress(ctx, ProgressEvent{Stage: "complete", Message: "Wallet loaded"})

	return &InspectVestingResult{ChainID: chainID, State: state, Deployment: record}, nil
}
