package blockchain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind/v2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/trebuchet-org/vesting-cli/internal/adapters/abi"
	"github.com/trebuchet-org/vesting-cli/internal/adapters/abi/bindings"
	"github.com/trebuchet-org/vesting-cli/internal/domain"
	"github.com/trebuchet-org/vesting-cli/internal/usecase"
)

// VestingContract reads and releases deployed VestingWallet instances
type VestingContract struct {
	client  *Client
	signer  Transactor
	binding *bindings.VestingWallet
	log     *slog.Logger
}

var _ usecase.VestingContract = (*VestingContract)(nil)

// NewVestingContract creates a new contract adapter
func NewVestingContract(client *Client, signer Transactor, log *slog.Logger) *VestingContract {
	return &VestingContract{
		client:  client,
		signer:  signer,
		binding: bindings.NewVestingWallet(),
		log:     log,
	}
}

func (v *VestingContract) instance(ctx context.Context, wallet common.Address) (*bind.BoundContract, error) {
	backend, err := v.client.Backend(ctx)
	if err != nil {
		return nil, err
	}
	return v.binding.Instance(backend, wallet), nil
}

func (v *VestingContract) callOpts(ctx context.Context) *bind.CallOpts {
	return &bind.CallOpts{Context: ctx}
}

func (v *VestingContract) Owner(ctx context.Context, wallet common.Address) (common.Address, error) {
	c, err := v.instance(ctx, wallet)
	if err != nil {
		return common.Address{}, err
	}
	owner, err := bind.Call(c, v.callOpts(ctx), v.binding.PackOwner(), v.binding.UnpackOwner)
	if err != nil {
		return common.Address{}, abi.DecodeRevert("owner", err)
	}
	return owner, nil
}

func (v *VestingContract) Start(ctx context.Context, wallet common.Address) (uint64, error) {
	c, err := v.instance(ctx, wallet)
	if err != nil {
		return 0, err
	}
	start, err := bind.Call(c, v.callOpts(ctx), v.binding.PackStart(), v.binding.UnpackStart)
	if err != nil {
		return 0, abi.DecodeRevert("start", err)
	}
	return toUint64("start", start)
}

func (v *VestingContract) Duration(ctx context.Context, wallet common.Address) (uint64, error) {
	c, err := v.instance(ctx, wallet)
	if err != nil {
		return 0, err
	}
	duration, err := bind.Call(c, v.callOpts(ctx), v.binding.PackDuration(), v.binding.UnpackDuration)
	if err != nil {
		return 0, abi.DecodeRevert("duration", err)
	}
	return toUint64("duration", duration)
}

func (v *VestingContract) Released(ctx context.Context, wallet common.Address) (*big.Int, error) {
	c, err := v.instance(ctx, wallet)
	if err != nil {
		return nil, err
	}
	released, err := bind.Call(c, v.callOpts(ctx), v.binding.PackReleased(), v.binding.UnpackReleased)
	if err != nil {
		return nil, abi.DecodeRevert("released", err)
	}
	return released, nil
}

func (v *VestingContract) VestedAmount(ctx context.Context, wallet common.Address, timestamp uint64) (*big.Int, error) {
	c, err := v.instance(ctx, wallet)
	if err != nil {
		return nil, err
	}
	amount, err := bind.Call(c, v.callOpts(ctx), v.binding.PackVestedAmount(timestamp), v.binding.UnpackVestedAmount)
	if err != nil {
		return nil, abi.DecodeRevert("vestedAmount", err)
	}
	return amount, nil
}

// Balance returns the ether held by the wallet.
func (v *VestingContract) Balance(ctx context.Context, wallet common.Address) (*big.Int, error) {
	return v.client.BalanceAt(ctx, wallet)
}

// SimulateRelease runs release() as an eth_call from the signer.
func (v *VestingContract) SimulateRelease(ctx context.Context, wallet common.Address) error {
	c, err := v.instance(ctx, wallet)
	if err != nil {
		return err
	}

	// without a configured signer the call runs from the zero address
	opts := v.callOpts(ctx)
	if v.signer != nil {
		txOpts, err := transactOpts(ctx, v.client, v.signer)
		switch {
		case err == nil:
			opts.From = txOpts.From
		case !errors.Is(err, domain.ErrSignerNotConfigured):
			return fmt.Errorf("failed to load signer for release simulation: %w", err)
		}
	}

	if _, err := c.CallRaw(opts, v.binding.PackRelease()); err != nil {
		return abi.DecodeRevert("release", err)
	}
	return nil
}

// Release sends release() and waits for the receipt.
func (v *VestingContract) Release(ctx context.Context, wallet common.Address) (*domain.ConfirmedTx, error) {
	if v.signer == nil {
		return nil, domain.ErrSignerNotConfigured
	}
	c, err := v.instance(ctx, wallet)
	if err != nil {
		return nil, err
	}
	opts, err := transactOpts(ctx, v.client, v.signer)
	if err != nil {
		return nil, err
	}

	tx, err := bind.Transact(c, opts, v.binding.PackRelease())
	if err != nil {
		return nil, abi.DecodeRevert("release", err)
	}
	v.log.Debug("release sent", "wallet", wallet.Hex(), "tx", tx.Hash().Hex())

	backend, err := v.client.Backend(ctx)
	if err != nil {
		return nil, err
	}
	receipt, err := bind.WaitMined(ctx, backend, tx.Hash())
	if err != nil {
		return nil, fmt.Errorf("failed waiting for release %s: %w", tx.Hash().Hex(), err)
	}
	if receipt.Status == types.ReceiptStatusFailed {
		return nil, fmt.Errorf("%w: release %s reverted", domain.ErrTransactionFailed, tx.Hash().Hex())
	}
	return confirmed(receipt), nil
}

func toUint64(field string, v *big.Int) (uint64, error) {
	if v == nil || !v.IsUint64() {
		return 0, fmt.Errorf("%s() returned %v, which does not fit in uint64", field, v)
	}
	return v.Uint64(), nil
}
