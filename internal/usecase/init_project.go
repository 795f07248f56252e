package usecase

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/trebuchet-org/vesting-cli/internal/domain"
	"github.com/trebuchet-org/vesting-cli/internal/domain/config"
)

const (
	projectFile     = "vesting.toml"
	dataDir         = ".vesting"
	deploymentsFile = "deployments.json"
	envExampleFile  = ".env.example"
)

const envExample = `# Copy to .env and fill in. .env and .env.local are loaded automatically.
DEPLOYER_PRIVATE_KEY=
SEPOLIA_RPC_URL=
MAINNET_RPC_URL=
`

// InitProject handles project initialization
type InitProject struct {
	config     *config.RuntimeConfig
	fileWriter ProjectWriter
	progress   ProgressSink
}

// NewInitProject creates a new init project use case
func NewInitProject(cfg *config.RuntimeConfig, fileWriter ProjectWriter, progress ProgressSink) *InitProject {
	return &InitProject{
		config:     cfg,
		fileWriter: fileWriter,
		progress:   progress,
	}
}

// InitProjectResult contains the result of project initialization
type InitProjectResult struct {
	ProjectRoot        string
	AlreadyInitialized bool
	Steps              []InitStep
}

// InitStep represents a step in the initialization process
type InitStep struct {
	Name    string
	Success bool
	Message string
	Error   error
}

// DefaultProjectConfig is the vesting.toml written by init.
func DefaultProjectConfig() *config.ProjectConfig {
	return &config.ProjectConfig{
		DefaultNetwork: "anvil",
		Networks: map[string]config.NetworkConfig{
			"anvil":   {RPCURL: "http://localhost:8545", ChainID: 31337, Local: true},
			"sepolia": {RPCURL: "${SEPOLIA_RPC_URL}", ChainID: 11155111},
		},
		Signer: config.SignerConfig{
			Type:       config.SignerTypePrivateKey,
			PrivateKey: "${DEPLOYER_PRIVATE_KEY}",
		},
		Deploy: config.DeployConfig{
			Duration:      domain.DefaultDuration,
			TokenName:     domain.DefaultTokenName,
			TokenSymbol:   domain.DefaultTokenSymbol,
			InitialSupply: domain.DefaultInitialSupply.String(),
			Value:         "0.1ether",
		},
	}
}

// Execute initializes a project in the configured project root
func (i *InitProject) Execute(ctx context.Context) (*InitProjectResult, error) {
	result := &InitProjectResult{ProjectRoot: i.config.ProjectRoot}

	steps := []func(context.Context) InitStep{
		i.createRegistry,
		i.createProjectFile,
		i.createEnvExample,
	}
	for _, run := range steps {
		step := run(ctx)
		result.Steps = append(result.Steps, step)
		if step.Error != nil {
			return result, step.Error
		}
	}

	result.AlreadyInitialized = result.Steps[1].Message == projectFile+" already exists"
	return result, nil
}

func (i *InitProject) path(name ...string) string {
	return filepath.Join(append([]string{i.config.ProjectRoot}, name...)...)
}

func (i *InitProject) createRegistry(ctx context.Context) InitStep {
	const name = "Create Registry"
	if err := i.fileWriter.EnsureDirectory(ctx, i.path(dataDir)); err != nil {
		return InitStep{Name: name, Error: fmt.Errorf("failed to create %s directory: %w", dataDir, err)}
	}

	registry := i.path(dataDir, deploymentsFile)
	exists, err := i.fileWriter.FileExists(ctx, registry)
	if err != nil {
		return InitStep{Name: name, Error: fmt.Errorf("failed to check registry: %w", err)}
	}
	if exists {
		return InitStep{Name: name, Success: true, Message: "Registry already exists in " + dataDir + "/"}
	}

	if err := i.fileWriter.WriteFile(ctx, registry, "{}\n"); err != nil {
		return InitStep{Name: name, Error: fmt.Errorf("failed to create %s: %w", registry, err)}
	}
	return InitStep{Name: name, Success: true, Message: "Created " + dataDir + "/" + deploymentsFile}
}

func (i *InitProject) createProjectFile(ctx context.Context) InitStep {
	name := "Create " + projectFile
	exists, err := i.fileWriter.FileExists(ctx, i.path(projectFile))
	if err != nil {
		return InitStep{Name: name, Error: fmt.Errorf("failed to check %s: %w", projectFile, err)}
	}
	if exists {
		return InitStep{Name: name, Success: true, Message: projectFile + " already exists"}
	}

	if err := i.fileWriter.WriteProjectConfig(ctx, i.path(projectFile), DefaultProjectConfig()); err != nil {
		return InitStep{Name: name, Error: fmt.Errorf("failed to write %s: %w", projectFile, err)}
	}
	return InitStep{Name: name, Success: true, Message: "Created " + projectFile}
}

func (i *InitProject) createEnvExample(ctx context.Context) InitStep {
	name := "Create " + envExampleFile
	exists, err := i.fileWriter.FileExists(ctx, i.path(envExampleFile))
	if err != nil {
		return InitStep{Name: name, Error: err}
	}
	if exists {
		return InitStep{Name: name, Success: true, Message: envExampleFile + " already exists"}
	}
	if err := i.fileWriter.WriteFile(ctx, i.path(envExampleFile), envExample); err != nil {
		return InitStep{Name: name, Error: fmt.Errorf("failed to write %s: %w", envExampleFile, err)}
	}
	return InitStep{Name: name, Success: true, Message: "Created " + envExampleFile}
}
