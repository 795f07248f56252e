package fs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/vesting-cli/internal/domain/config"
	"github.com/trebuchet-org/vesting-cli/internal/usecase"
)

func TestProjectWriter(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	w := NewProjectWriter()

	path := filepath.Join(dir, "nested", "vesting.toml")
	exists, err := w.FileExists(ctx, path)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, w.WriteProjectConfig(ctx, path, usecase.DefaultProjectConfig()))

	exists, err = w.FileExists(ctx, path)
	require.NoError(t, err)
	assert.True(t, exists)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# vesting.toml")
	assert.Contains(t, string(data), `private_key = '${DEPLOYER_PRIVATE_KEY}'`)

	// the written file must be readable by the loader's decoder
	var decoded config.ProjectConfig
	md, err := toml.Decode(string(data), &decoded)
	require.NoError(t, err)
	assert.Empty(t, md.Undecoded())
	assert.Equal(t, *usecase.DefaultProjectConfig(), decoded)
}

func TestLocalConfigStore(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), ".vesting")
	s := NewLocalConfigStoreAdapter(&config.RuntimeConfig{DataDir: dir})

	assert.False(t, s.Exists())
	cfg, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, cfg.Network)

	require.NoError(t, s.Save(ctx, &config.LocalConfig{Network: "sepolia"}))
	assert.True(t, s.Exists())
	assert.Equal(t, filepath.Join(dir, "config.local.json"), s.GetPath())

	cfg, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "sepolia", cfg.Network)

	require.NoError(t, os.WriteFile(s.GetPath(), []byte("{"), 0644))
	_, err = s.Load(ctx)
	assert.ErrorContains(t, err, "failed to parse config file")
}
