package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/vesting-cli/internal/domain/config"
)

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to find project root: %w", err)
		}
	}

	if err := LoadEnvFiles(projectRoot); err != nil {
		return nil, err
	}

	project, configFile, err := LoadProjectConfig(projectRoot)
	if err != nil {
		return nil, err
	}

	cfg := &config.RuntimeConfig{
		ProjectRoot:    projectRoot,
		DataDir:        filepath.Join(projectRoot, DataDirName),
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		JSON:           v.GetBool("json"),
		Timeout:        v.GetDuration("timeout"),
		ConfigFile:     configFile,
		Project:        project,
		Signer:         project.Signer,
	}

	network, err := resolveNetwork(v, project)
	if err != nil {
		return nil, err
	}
	cfg.Network = network

	// environment and flags take precedence over [signer]
	if key := v.GetString("private_key"); key != "" {
		cfg.Signer = config.SignerConfig{Type: config.SignerTypePrivateKey, PrivateKey: key}
	}
	if ks := v.GetString("keystore"); ks != "" {
		cfg.Signer = config.SignerConfig{Type: config.SignerTypeKeystore, Keystore: ks, PasswordEnv: project.Signer.PasswordEnv}
	}
	if t := v.GetString("signer"); t != "" {
		cfg.Signer.Type = config.SignerType(t)
	}

	return cfg, nil
}

// resolveNetwork applies --network (or default_network), then --rpc-url and --chain-id on top.
func resolveNetwork(v *viper.Viper, project *config.ProjectConfig) (*config.Network, error) {
	name := v.GetString("network")
	if name == "" {
		name = project.DefaultNetwork
	}
	rpcURL := v.GetString("rpc_url")
	chainID := v.GetUint64("chain_id")

	var network *config.Network
	if name != "" {
		n, err := NewNetworkResolver(project).Resolve(name)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve network %s: %w", name, err)
		}
		network = n
	}

	if rpcURL != "" {
		if network == nil {
			network = &config.Network{Name: "custom"}
		}
		network.RPCURL = rpcURL
	}
	if chainID != 0 {
		if network == nil {
			return nil, fmt.Errorf("--chain-id needs --network or --rpc-url")
		}
		network.ChainID = chainID
	}
	if network != nil && network.RPCURL == "" {
		return nil, fmt.Errorf("network %s has no RPC URL (set %s, [networks.%s] rpc_url or --rpc-url)",
			network.Name, GenerateEnvVarName(network.Name), network.Name)
	}
	return network, nil
}

// FindProjectRoot walks up from the current directory looking for vesting.toml and
// falls back to the current directory when none is found.
func FindProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	dir := cwd
	for {
		if _, err := os.Stat(filepath.Join(dir, ProjectFile)); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd, nil
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	// .vesting/config.local.json holds per-checkout overrides such as the network
	v.SetConfigName("config.local")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(projectRoot, DataDirName))

	v.SetEnvPrefix("VEST")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	v.SetDefault("timeout", "5m")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("project_root", projectRoot)

	_ = v.ReadInConfig()

	// only global flags feed the runtime config; command flags stay with their command
	cmd.Root().PersistentFlags().VisitAll(func(f *pflag.Flag) {
		if err := v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f); err != nil {
			panic(err)
		}
	})

	return v
}
