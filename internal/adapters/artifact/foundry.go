package artifact

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const defaultFoundryOut = "out"

// foundryConfig holds the part of foundry.toml that locates build output
type foundryConfig struct {
	Profile map[string]struct {
		OutPath string `toml:"out,omitempty"`
	} `toml:"profile"`
}

// foundryOutDir returns the build output directory of the active Foundry profile
// (FOUNDRY_PROFILE, then "default"), or "out" when foundry.toml does not set one.
func foundryOutDir(projectRoot string) (string, error) {
	data, err := os.ReadFile(filepath.Join(projectRoot, "foundry.toml"))
	if os.IsNotExist(err) {
		return defaultFoundryOut, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read foundry.toml: %w", err)
	}

	var cfg foundryConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return "", fmt.Errorf("failed to parse foundry.toml: %w", err)
	}

	for _, name := range []string{os.Getenv("FOUNDRY_PROFILE"), "default"} {
		if p, ok := cfg.Profile[name]; ok && name != "" && p.OutPath != "" {
			return p.OutPath, nil
		}
	}
	return defaultFoundryOut, nil
}
