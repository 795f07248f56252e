package usecase

import (
	"context"
	"io"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/vesting-cli/internal/domain"
	"github.com/trebuchet-org/vesting-cli/internal/domain/config"
)

// SignerProvider resolves the account that signs deployments and releases
type SignerProvider interface {
	Address(ctx context.Context) (common.Address, error)
}

// ChainClient reads chain state from the configured RPC endpoint
type ChainClient interface {
	ChainID(ctx context.Context) (uint64, error)
	BalanceAt(ctx context.Context, account common.Address) (*big.Int, error)
	// LatestBlockTime is the timestamp of the latest block, used as "now" by checks
	LatestBlockTime(ctx context.Context) (uint64, error)
	// PredictAddress returns the CREATE address of the deployer's next transaction
	PredictAddress(ctx context.Context, deployer common.Address) (common.Address, uint64, error)
}

// ArtifactLoader locates the compiled VestingWallet artifact
type ArtifactLoader interface {
	Load(ctx context.Context, path string) (*domain.Artifact, error)
}

// VestingDeployer sends and confirms the deployment transaction
type VestingDeployer interface {
	Deploy(ctx context.Context, artifact *domain.Artifact, params domain.DeploymentParams) (*domain.PendingDeployment, error)
	WaitDeployed(ctx context.Context, pending *domain.PendingDeployment) (*domain.ConfirmedTx, error)
}

// VestingContract calls a deployed VestingWallet
type VestingContract interface {
	Owner(ctx context.Context, wallet common.Address) (common.Address, error)
	Start(ctx context.Context, wallet common.Address) (uint64, error)
	Duration(ctx context.Context, wallet common.Address) (uint64, error)
	Released(ctx context.Context, wallet common.Address) (*big.Int, error)
	VestedAmount(ctx context.Context, wallet common.Address, timestamp uint64) (*big.Int, error)
	Balance(ctx context.Context, wallet common.Address) (*big.Int, error)
	// SimulateRelease executes release() as a call; a revert is returned as *domain.RevertError
	SimulateRelease(ctx context.Context, wallet common.Address) error
	// Release sends release() and waits for the receipt
	Release(ctx context.Context, wallet common.Address) (*domain.ConfirmedTx, error)
}

// DeploymentRepository persists recorded deployments
type DeploymentRepository interface {
	Save(ctx context.Context, deployment *domain.Deployment) error
	Get(ctx context.Context, ref string) (*domain.Deployment, error)
	GetByAddress(ctx context.Context, chainID uint64, address common.Address) (*domain.Deployment, error)
	List(ctx context.Context, filter domain.DeploymentFilter) ([]*domain.Deployment, error)
}

// ParamsFileReader reads deployment parameters from a file
type ParamsFileReader interface {
	Read(ctx context.Context, path string) (domain.RawParams, error)
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage    string
	Message  string
	Spinner  bool
	Metadata interface{}
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}

// DeploymentSelector handles interactive selection of deployments
type DeploymentSelector interface {
	SelectDeployment(ctx context.Context, deployments []*domain.Deployment, prompt string) (*domain.Deployment, error)
}

// Confirmer asks the user a yes/no question
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// NetworkResolver handles network configuration resolution
type NetworkResolver interface {
	GetNetworks(ctx context.Context) []string
	ResolveNetwork(ctx context.Context, networkName string) (*config.Network, error)
}

// ChainIDProber dials an RPC endpoint and reports its chain ID
type ChainIDProber interface {
	ProbeChainID(ctx context.Context, rpcURL string) (uint64, error)
}

// ProjectWriter creates project files for init
type ProjectWriter interface {
	FileExists(ctx context.Context, path string) (bool, error)
	EnsureDirectory(ctx context.Context, path string) error
	WriteProjectConfig(ctx context.Context, path string, cfg *config.ProjectConfig) error
	WriteFile(ctx context.Context, path string, content string) error
}

// AnvilManager manages local anvil node instances
type AnvilManager interface {
	Start(ctx context.Context, instance *domain.AnvilInstance) error
	Stop(ctx context.Context, instance *domain.AnvilInstance) error
	GetStatus(ctx context.Context, instance *domain.AnvilInstance) (*domain.AnvilStatus, error)
	StreamLogs(ctx context.Context, instance *domain.AnvilInstance, writer io.Writer) error
}

// LocalConfigRepository persists per-checkout defaults
type LocalConfigRepository interface {
	Exists() bool
	Load(ctx context.Context) (*config.LocalConfig, error)
	Save(ctx context.Context, cfg *config.LocalConfig) error
	GetPath() string
}
