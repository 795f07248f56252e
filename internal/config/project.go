package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/trebuchet-org/vesting-cli/internal/domain/config"
)

const (
	ProjectFile = "vesting.toml"
	DataDirName = ".vesting"
)

// LoadEnvFiles loads .env.local then .env from projectRoot. Variables already set in the
// process environment win, and .env.local wins over .env.
func LoadEnvFiles(projectRoot string) error {
	for _, name := range []string{".env.local", ".env"} {
		path := filepath.Join(projectRoot, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
	}
	return nil
}

// LoadProjectConfig reads vesting.toml from projectRoot. A missing file yields an empty
// config and an empty path. ${VAR} references in URLs and deploy values are expanded;
// signer secrets are expanded only when the signer is used.
func LoadProjectConfig(projectRoot string) (*config.ProjectConfig, string, error) {
	path := filepath.Join(projectRoot, ProjectFile)
	cfg := &config.ProjectConfig{Networks: map[string]config.NetworkConfig{}}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, "", nil
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, "", fmt.Errorf("failed to parse %s: %w", ProjectFile, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, "", fmt.Errorf("unknown keys in %s: %s", ProjectFile, strings.Join(keys, ", "))
	}

	if cfg.Networks == nil {
		cfg.Networks = map[string]config.NetworkConfig{}
	}
	for name, n := range cfg.Networks {
		n.RPCURL = os.ExpandEnv(n.RPCURL)
		n.Explorer = os.ExpandEnv(n.Explorer)
		cfg.Networks[name] = n
	}

	d := &cfg.Deploy
	d.Artifact = os.ExpandEnv(d.Artifact)
	d.Beneficiary = os.ExpandEnv(d.Beneficiary)
	d.InitialSupply = os.ExpandEnv(d.InitialSupply)
	d.Value = os.ExpandEnv(d.Value)

	return cfg, path, nil
}
