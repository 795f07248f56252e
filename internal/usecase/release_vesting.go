package usecase

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/vesting-cli/internal/domain"
	"github.com/trebuchet-org/vesting-cli/internal/domain/config"
)

// ReleaseVestingParams contains parameters for releasing vested tokens
type ReleaseVestingParams struct {
	Ref string
	Yes bool
}

// ReleaseVestingResult contains the result of a release
type ReleaseVestingResult struct {
	Wallet common.Address
	Tx     *domain.ConfirmedTx
	// Amount is released() after the transaction minus released() before it
	Amount *big.Int
}

// ReleaseVesting sends release() to a wallet
type ReleaseVesting struct {
	config    *config.RuntimeConfig
	chain     ChainClient
	contract  VestingContract
	wallets   walletResolver
	confirmer Confirmer
	progress  ProgressSink
}

// NewReleaseVesting creates a new ReleaseVesting use case
func NewReleaseVesting(
	cfg *config.RuntimeConfig,
	chain ChainClient,
	contract VestingContract,
	repo DeploymentRepository,
	selector DeploymentSelector,
	confirmer Confirmer,
	progress ProgressSink,
) *ReleaseVesting {
	return &ReleaseVesting{
		config:    cfg,
		chain:     chain,
		contract:  contract,
		wallets:   walletResolver{repo: repo, selector: selector},
		confirmer: confirmer,
		progress:  progress,
	}
}

// Run executes the release. Reverts surface as *domain.RevertError; errors.Is(err,
// domain.ErrNoReleasableAmount) holds when nothing was due.
func (uc *ReleaseVesting) Run(ctx context.Context, params ReleaseVestingParams) (*ReleaseVestingResult, error) {
	chainID, err := uc.chain.ChainID(ctx)
	if err != nil {
		return nil, err
	}
	wallet, _, err := uc.wallets.resolve(ctx, chainID, params.Ref)
	if err != nil {
		return nil, err
	}

	before, err := uc.contract.Released(ctx, wallet)
	if err != nil {
		return nil, err
	}

	if !params.Yes && !uc.config.NonInteractive && (uc.config.Network == nil || !uc.config.Network.Local) {
		ok, err := uc.confirmer.Confirm(ctx, fmt.Sprintf("Send release() to %s", wallet.Hex()))
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, domain.ErrCancelled
		}
	}

	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   "releasing",
		Message: fmt.Sprintf("Releasing from %s", wallet.Hex()),
		Spinner: true,
	})
	tx, err := uc.contract.Release(ctx, wallet)
	if err != nil {
		return nil, err
	}

	after, err := uc.contract.Released(ctx, wallet)
	if err != nil {
		return nil, err
	}
	uc.progress.OnProgress(ctx, ProgressEvent{Stage: "complete", Message: "Released"})

	return &ReleaseVestingResult{
		Wallet: wallet,
		Tx:     tx,
		Amount: new(big.Int).Sub(after, before),
	}, nil
}
