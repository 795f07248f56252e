package fs

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/trebuchet-org/vesting-cli/internal/domain/config"
	"github.com/trebuchet-org/vesting-cli/internal/usecase"
)

const projectHeader = `# vesting.toml
#
# [networks.<name>] entries override the built-in networks. rpc_url may reference
# environment variables (${SEPOLIA_RPC_URL}); .env and .env.local are loaded first.
# [signer] picks the deploying account: private_key, keystore or anvil.
# [deploy] sets the VestingWallet constructor defaults used by 'vest deploy'.

`

// ProjectWriter creates project files on disk
type ProjectWriter struct{}

var _ usecase.ProjectWriter = (*ProjectWriter)(nil)

// NewProjectWriter creates a new project writer
func NewProjectWriter() *ProjectWriter {
	return &ProjectWriter{}
}

// FileExists checks if a file exists
func (w *ProjectWriter) FileExists(ctx context.Context, path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// EnsureDirectory ensures a directory exists
func (w *ProjectWriter) EnsureDirectory(ctx context.Context, path string) error {
	return os.MkdirAll(path, 0755)
}

// WriteProjectConfig writes cfg as TOML with a short explanatory header
func (w *ProjectWriter) WriteProjectConfig(ctx context.Context, path string, cfg *config.ProjectConfig) error {
	var buf bytes.Buffer
	buf.WriteString(projectHeader)

	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode %s: %w", filepath.Base(path), err)
	}
	return w.WriteFile(ctx, path, buf.String())
}

// WriteFile writes content to a file, creating parent directories
func (w *ProjectWriter) WriteFile(ctx context.Context, path string, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0644)
}
