package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/vesting-cli/internal/domain"
)

// walletResolver turns a user reference (address, registry ID or nothing) into a wallet address,
// along with its registry record when one exists.
type walletResolver struct {
	repo     DeploymentRepository
	selector DeploymentSelector
}

func (r walletResolver) resolve(ctx context.Context, chainID uint64, ref string) (common.Address, *domain.Deployment, error) {
	if ref == "" {
		deployments, err := r.repo.List(ctx, domain.DeploymentFilter{ChainID: chainID})
		if err != nil {
			return common.Address{}, nil, err
		}
		if len(deployments) == 0 {
			return common.Address{}, nil, fmt.Errorf("no recorded deployments on chain %d: pass an address", chainID)
		}
		d, err := r.selector.SelectDeployment(ctx, deployments, "Select a VestingWallet")
		if err != nil {
			return common.Address{}, nil, err
		}
		return d.Address, d, nil
	}

	if common.IsHexAddress(ref) {
		addr := common.HexToAddress(ref)
		d, err := r.repo.GetByAddress(ctx, chainID, addr)
		if errors.Is(err, domain.ErrNotFound) {
			return addr, nil, nil
		}
		if err != nil {
			return common.Address{}, nil, err
		}
		return addr, d, nil
	}

	d, err := r.repo.Get(ctx, ref)
	if err != nil {
		return common.Address{}, nil, fmt.Errorf("deployment %s: %w", ref, err)
	}
	if chainID != 0 && d.ChainID != chainID {
		return common.Address{}, nil, fmt.Errorf("%w: deployment %s is on chain %d, connected to chain %d",
			domain.ErrNetworkMismatch, d.ID, d.ChainID, chainID)
	}
	return d.Address, d, nil
}
