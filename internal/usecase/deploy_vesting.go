package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jonboulle/clockwork"
	"github.com/trebuchet-org/vesting-cli/internal/domain"
	"github.com/trebuchet-org/vesting-cli/internal/domain/config"
)

// DeployVestingParams contains parameters for deploying a VestingWallet
type DeployVestingParams struct {
	// Overrides from flags; they win over the params file and vesting.toml
	Overrides    domain.RawParams
	ParamsFile   string
	ArtifactPath string
	DryRun       bool
	// Check runs the post-deployment checks against the new wallet
	Check bool
	// Yes skips the confirmation prompt on non-local networks
	Yes bool
}

// DeployVestingResult contains the result of a deployment
type DeployVestingResult struct {
	Deployer   common.Address
	Balance    *big.Int
	Network    *config.Network
	ChainID    uint64
	Params     domain.DeploymentParams
	Artifact   *domain.Artifact
	Address    common.Address
	Nonce      uint64
	DryRun     bool
	Tx         *domain.ConfirmedTx
	Deployment *domain.Deployment
	Check      *domain.CheckReport
}

// DeployVesting deploys a VestingWallet from the configured signer
type DeployVesting struct {
	config    *config.RuntimeConfig
	clock     clockwork.Clock
	signer    SignerProvider
	chain     ChainClient
	artifacts ArtifactLoader
	deployer  VestingDeployer
	repo      DeploymentRepository
	params    ParamsFileReader
	confirmer Confirmer
	checker   *CheckVesting
	progress  ProgressSink
	log       *slog.Logger
}

// NewDeployVesting creates a new DeployVesting use case
func NewDeployVesting(
	cfg *config.RuntimeConfig,
	clock clockwork.Clock,
	signer SignerProvider,
	chain ChainClient,
	artifacts ArtifactLoader,
	deployer VestingDeployer,
	repo DeploymentRepository,
	params ParamsFileReader,
	confirmer Confirmer,
	checker *CheckVesting,
	progress ProgressSink,
	log *slog.Logger,
) *DeployVesting {
	return &DeployVesting{
		config:    cfg,
		clock:     clock,
		signer:    signer,
		chain:     chain,
		artifacts: artifacts,
		deployer:  deployer,
		repo:      repo,
		params:    params,
		confirmer: confirmer,
		checker:   checker,
		progress:  progress,
		log:       log.With("component", "deploy"),
	}
}

// Run executes the deployment
func (uc *DeployVesting) Run(ctx context.Context, params DeployVestingParams) (*DeployVestingResult, error) {
	if uc.config.Network == nil {
		return nil, domain.ErrNetworkNotConfigured
	}

	deployer, err := uc.signer.Address(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load signer: %w", err)
	}
	uc.progress.Info(fmt.Sprintf("Deploying contracts with the account: %s", deployer.Hex()))

	chainID, err := uc.chain.ChainID(ctx)
	if err != nil {
		return nil, err
	}

	balance, err := uc.chain.BalanceAt(ctx, deployer)
	if err != nil {
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}
	uc.progress.Info(fmt.Sprintf("Account balance: %s", balance.String()))

	deployParams, err := uc.buildParams(ctx, deployer, params)
	if err != nil {
		return nil, err
	}
	if err := deployParams.Validate(); err != nil {
		return nil, err
	}
	if balance.Cmp(deployParams.Value) < 0 {
		return nil, fmt.Errorf("account balance %s wei does not cover the attached value %s wei", balance, deployParams.Value)
	}

	artifactPath := params.ArtifactPath
	if artifactPath == "" && uc.config.Project != nil {
		artifactPath = uc.config.Project.Deploy.Artifact
	}
	artifact, err := uc.artifacts.Load(ctx, artifactPath)
	if err != nil {
		return nil, err
	}

	result := &DeployVestingResult{
		Deployer: deployer,
		Balance:  balance,
		Network:  uc.config.Network,
		ChainID:  chainID,
		Params:   deployParams,
		Artifact: artifact,
		DryRun:   params.DryRun,
	}

	if params.DryRun {
		addr, nonce, err := uc.chain.PredictAddress(ctx, deployer)
		if err != nil {
			return nil, err
		}
		result.Address = addr
		result.Nonce = nonce
		return result, nil
	}

	if err := uc.confirm(ctx, params, deployParams); err != nil {
		return nil, err
	}

	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   "deploying",
		Message: fmt.Sprintf("Deploying %s to %s", artifact.Name, uc.config.Network.Name),
		Spinner: true,
	})
	pending, err := uc.deployer.Deploy(ctx, artifact, deployParams)
	if err != nil {
		return nil, fmt.Errorf("deployment failed: %w", err)
	}
	uc.log.Debug("deployment sent", "tx", pending.TxHash.Hex(), "address", pending.Address.Hex())

	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:    "confirming",
		Message:  fmt.Sprintf("Waiting for %s", pending.TxHash.Hex()),
		Spinner:  true,
		Metadata: pending,
	})
	tx, err := uc.deployer.WaitDeployed(ctx, pending)
	if err != nil {
		return nil, fmt.Errorf("deployment %s failed: %w", pending.TxHash.Hex(), err)
	}
	uc.progress.OnProgress(ctx, ProgressEvent{Stage: "deployed", Message: "Deployment confirmed"})

	result.Address = pending.Address
	result.Nonce = pending.Nonce
	result.Tx = tx
	result.Deployment = &domain.Deployment{
		ID:          domain.DeploymentID(chainID, pending.Address),
		Contract:    artifact.Name,
		Address:     pending.Address,
		ChainID:     chainID,
		Network:     uc.config.Network.Name,
		Deployer:    deployer,
		TxHash:      tx.TxHash,
		BlockNumber: tx.BlockNumber,
		GasUsed:     tx.GasUsed,
		Params:      deployParams,
		CreatedAt:   uc.clock.Now().UTC(),
	}
	if err := uc.repo.Save(ctx, result.Deployment); err != nil {
		return result, fmt.Errorf("deployed to %s but failed to record it: %w", pending.Address.Hex(), err)
	}

	if params.Check {
		report, err := uc.checker.Run(ctx, CheckVestingParams{
			Ref:      pending.Address.Hex(),
			Expected: &deployParams,
		})
		result.Check = report
		if err != nil {
			return result, err
		}
	}

	return result, nil
}

// buildParams layers defaults, [deploy] from vesting.toml, the params file and flags, in that order.
func (uc *DeployVesting) buildParams(ctx context.Context, deployer common.Address, params DeployVestingParams) (domain.DeploymentParams, error) {
	p := domain.DefaultDeploymentParams(deployer, uint64(uc.clock.Now().Unix()))

	layers := []domain.RawParams{}
	if uc.config.Project != nil {
		layers = append(layers, rawParamsFromConfig(uc.config.Project.Deploy))
	}
	if params.ParamsFile != "" {
		raw, err := uc.params.Read(ctx, params.ParamsFile)
		if err != nil {
			return p, err
		}
		layers = append(layers, raw)
	}
	layers = append(layers, params.Overrides)

	for _, raw := range layers {
		o, err := raw.Parse()
		if err != nil {
			return p, err
		}
		o.Apply(&p)
	}
	return p, nil
}

func (uc *DeployVesting) confirm(ctx context.Context, params DeployVestingParams, p domain.DeploymentParams) error {
	if params.Yes || uc.config.NonInteractive || uc.config.Network.Local {
		return nil
	}
	ok, err := uc.confirmer.Confirm(ctx, fmt.Sprintf(
		"Deploy VestingWallet to %s for %s with %s ether attached",
		uc.config.Network.Name, p.Beneficiary.Hex(), domain.FormatEther(p.Value),
	))
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrCancelled
	}
	return nil
}

func rawParamsFromConfig(d config.DeployConfig) domain.RawParams {
	raw := domain.RawParams{
		Beneficiary:   d.Beneficiary,
		TokenName:     d.TokenName,
		TokenSymbol:   d.TokenSymbol,
		InitialSupply: d.InitialSupply,
		Value:         d.Value,
	}
	if d.Duration != 0 {
		raw.Duration = strconv.FormatUint(d.Duration, 10)
	}
	return raw
}
