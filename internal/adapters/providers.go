package adapters

import (
	"log/slog"

	"github.com/google/wire"
	"github.com/jonboulle/clockwork"
	"github.com/trebuchet-org/vesting-cli/internal/adapters/anvil"
	"github.com/trebuchet-org/vesting-cli/internal/adapters/artifact"
	"github.com/trebuchet-org/vesting-cli/internal/adapters/blockchain"
	"github.com/trebuchet-org/vesting-cli/internal/adapters/fs"
	"github.com/trebuchet-org/vesting-cli/internal/adapters/interactive"
	"github.com/trebuchet-org/vesting-cli/internal/adapters/network"
	"github.com/trebuchet-org/vesting-cli/internal/adapters/parameters"
	"github.com/trebuchet-org/vesting-cli/internal/adapters/repository/deployments"
	"github.com/trebuchet-org/vesting-cli/internal/adapters/signer"
	"github.com/trebuchet-org/vesting-cli/internal/domain/config"
	"github.com/trebuchet-org/vesting-cli/internal/usecase"
)

// ProvideClient provides the lazily dialed RPC client; the cleanup closes its connection
func ProvideClient(cfg *config.RuntimeConfig, log *slog.Logger) (*blockchain.Client, func()) {
	client := blockchain.NewClient(cfg, log)
	return client, client.Close
}

// ProvideClock provides the wall clock used for default start times and registry timestamps
func ProvideClock() clockwork.Clock {
	return clockwork.NewRealClock()
}

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	deployments.ProvideFileRepository,
	wire.Bind(new(usecase.DeploymentRepository), new(*deployments.FileRepository)),

	fs.NewProjectWriter,
	wire.Bind(new(usecase.ProjectWriter), new(*fs.ProjectWriter)),

	fs.NewLocalConfigStoreAdapter,
	wire.Bind(new(usecase.LocalConfigRepository), new(*fs.LocalConfigStoreAdapter)),

	artifact.NewLoader,
	wire.Bind(new(usecase.ArtifactLoader), new(*artifact.Loader)),

	parameters.NewFileReader,
	wire.Bind(new(usecase.ParamsFileReader), new(*parameters.FileReader)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.DeploymentSelector), new(*interactive.SelectorAdapter)),
	wire.Bind(new(usecase.Confirmer), new(*interactive.SelectorAdapter)),
)

// ConfigSet provides configuration-based implementations
var ConfigSet = wire.NewSet(
	network.NewResolver,
	wire.Bind(new(usecase.NetworkResolver), new(*network.Resolver)),
)

// BlockchainSet provides go-ethereum backed implementations
var BlockchainSet = wire.NewSet(
	ProvideClient,
	wire.Bind(new(usecase.ChainClient), new(*blockchain.Client)),

	signer.NewSigner,
	wire.Bind(new(usecase.SignerProvider), new(*signer.Signer)),
	wire.Bind(new(blockchain.Transactor), new(*signer.Signer)),

	blockchain.NewDeployer,
	wire.Bind(new(usecase.VestingDeployer), new(*blockchain.Deployer)),

	blockchain.NewVestingContract,
	wire.Bind(new(usecase.VestingContract), new(*blockchain.VestingContract)),

	blockchain.NewProber,
	wire.Bind(new(usecase.ChainIDProber), new(blockchain.Prober)),
)

// AnvilSet provides local node management
var AnvilSet = wire.NewSet(
	anvil.NewManager,
	wire.Bind(new(usecase.AnvilManager), new(*anvil.Manager)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	ProvideClock,

	FSSet,
	InteractiveSet,
	ConfigSet,
	BlockchainSet,
	AnvilSet,
)
