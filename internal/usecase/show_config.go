package usecase

import (
	"context"
	"time"

	"github.com/trebuchet-org/vesting-cli/internal/domain/config"
)

// ShowConfigResult contains the resolved configuration with secrets removed
type ShowConfigResult struct {
	ProjectRoot    string              `json:"projectRoot"`
	ConfigFile     string              `json:"configFile,omitempty"`
	DataDir        string              `json:"dataDir"`
	Network        *config.Network     `json:"network,omitempty"`
	Signer         config.SignerConfig `json:"signer"`
	SignerAddress  string              `json:"signerAddress,omitempty"`
	SignerError    string              `json:"signerError,omitempty"`
	Deploy         config.DeployConfig `json:"deploy"`
	Timeout        time.Duration       `json:"timeout"`
	NonInteractive bool                `json:"nonInteractive"`
}

// ShowConfig is a use case for showing configuration
type ShowConfig struct {
	config *config.RuntimeConfig
	signer SignerProvider
}

// NewShowConfig creates a new ShowConfig use case
func NewShowConfig(cfg *config.RuntimeConfig, signer SignerProvider) *ShowConfig {
	return &ShowConfig{
		config: cfg,
		signer: signer,
	}
}

// Run executes the show config use case
func (uc *ShowConfig) Run(ctx context.Context) (*ShowConfigResult, error) {
	result := &ShowConfigResult{
		ProjectRoot:    uc.config.ProjectRoot,
		ConfigFile:     uc.config.ConfigFile,
		DataDir:        uc.config.DataDir,
		Network:        uc.config.Network,
		Signer:         uc.config.Signer,
		Timeout:        uc.config.Timeout,
		NonInteractive: uc.config.NonInteractive,
	}
	result.Signer.PrivateKey = ""
	if uc.config.Project != nil {
		result.Deploy = uc.config.Project.Deploy
	}

	addr, err := uc.signer.Address(ctx)
	if err != nil {
		result.SignerError = err.Error()
	} else {
		result.SignerAddress = addr.Hex()
	}

	return result, nil
}
