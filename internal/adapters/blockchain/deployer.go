package blockchain

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind/v2"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/trebuchet-org/vesting-cli/internal/adapters/abi"
	"github.com/trebuchet-org/vesting-cli/internal/adapters/abi/bindings"
	"github.com/trebuchet-org/vesting-cli/internal/domain"
	"github.com/trebuchet-org/vesting-cli/internal/usecase"
)

// Transactor builds signing options for a chain
type Transactor interface {
	TransactOpts(ctx context.Context, chainID *big.Int) (*bind.TransactOpts, error)
}

// Deployer creates VestingWallet instances from a compiled artifact
type Deployer struct {
	client  *Client
	signer  Transactor
	binding *bindings.VestingWallet
	log     *slog.Logger
}

var _ usecase.VestingDeployer = (*Deployer)(nil)

// NewDeployer creates a new deployer
func NewDeployer(client *Client, signer Transactor, log *slog.Logger) *Deployer {
	return &Deployer{
		client:  client,
		signer:  signer,
		binding: bindings.NewVestingWallet(),
		log:     log,
	}
}

// Deploy sends the creation transaction with params.Value attached. It does not wait for it to be mined.
func (d *Deployer) Deploy(ctx context.Context, artifact *domain.Artifact, params domain.DeploymentParams) (*domain.PendingDeployment, error) {
	backend, err := d.client.Backend(ctx)
	if err != nil {
		return nil, err
	}
	opts, err := transactOpts(ctx, d.client, d.signer)
	if err != nil {
		return nil, err
	}
	if params.Value != nil {
		opts.Value = new(big.Int).Set(params.Value)
	}

	input, err := d.binding.TryPackConstructor(
		params.Beneficiary,
		params.Start,
		params.Duration,
		params.TokenName,
		params.TokenSymbol,
		params.InitialSupply,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to encode constructor arguments: %w", err)
	}

	address, tx, err := bind.DeployContract(opts, artifact.Bytecode, backend, input)
	if err != nil {
		return nil, abi.DecodeRevert("constructor", fmt.Errorf("failed to send deployment: %w", err))
	}
	d.log.Debug("deployment sent", "tx", tx.Hash().Hex(), "address", address.Hex(), "nonce", tx.Nonce())

	return &domain.PendingDeployment{
		Address:  address,
		TxHash:   tx.Hash(),
		Nonce:    tx.Nonce(),
		Deployer: opts.From,
	}, nil
}

// WaitDeployed blocks until the deployment is mined and fails when it reverted or left no code.
func (d *Deployer) WaitDeployed(ctx context.Context, pending *domain.PendingDeployment) (*domain.ConfirmedTx, error) {
	backend, err := d.client.Backend(ctx)
	if err != nil {
		return nil, err
	}

	receipt, err := bind.WaitMined(ctx, backend, pending.TxHash)
	if err != nil {
		return nil, fmt.Errorf("failed waiting for deployment %s: %w", pending.TxHash.Hex(), err)
	}
	d.log.Debug("deployment mined", "tx", pending.TxHash.Hex(), "block", receipt.BlockNumber, "gas", receipt.GasUsed)

	if receipt.Status == types.ReceiptStatusFailed {
		return nil, fmt.Errorf("%w: deployment %s reverted in block %s", domain.ErrTransactionFailed, pending.TxHash.Hex(), receipt.BlockNumber)
	}

	code, err := backend.CodeAt(ctx, pending.Address, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to read code at %s: %w", pending.Address.Hex(), err)
	}
	if len(code) == 0 {
		return nil, fmt.Errorf("%w at %s", domain.ErrNoCodeAfterDeploy, pending.Address.Hex())
	}

	return confirmed(receipt), nil
}

func transactOpts(ctx context.Context, client *Client, signer Transactor) (*bind.TransactOpts, error) {
	chainID, err := client.ChainID(ctx)
	if err != nil {
		return nil, err
	}
	opts, err := signer.TransactOpts(ctx, new(big.Int).SetUint64(chainID))
	if err != nil {
		return nil, err
	}
	opts.Context = ctx
	return opts, nil
}

func confirmed(receipt *types.Receipt) *domain.ConfirmedTx {
	return &domain.ConfirmedTx{
		TxHash:      receipt.TxHash,
		BlockNumber: receipt.BlockNumber.Uint64(),
		GasUsed:     receipt.GasUsed,
	}
}
