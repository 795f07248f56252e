package artifact

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/vesting-cli/internal/domain"
	"github.com/trebuchet-org/vesting-cli/internal/domain/config"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func copyFile(t *testing.T, src, dst string) {
	t.Helper()
	data, err := os.ReadFile(src)
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(dst), 0755))
	require.NoError(t, os.WriteFile(dst, data, 0644))
}

func TestReadFile(t *testing.T) {
	t.Run("foundry artifact", func(t *testing.T) {
		a, err := ReadFile(filepath.Join("testdata", "foundry", "VestingWallet.json"))
		require.NoError(t, err)
		assert.Equal(t, "VestingWallet", a.Name)
		assert.Equal(t, "0.8.24+commit.e11b9ed9", a.CompilerVersion)
		assert.Len(t, a.Bytecode, 22)
	})

	t.Run("hardhat artifact", func(t *testing.T) {
		a, err := ReadFile(filepath.Join("testdata", "hardhat", "VestingWallet.json"))
		require.NoError(t, err)
		assert.Equal(t, "VestingWallet", a.Name)
		assert.Empty(t, a.CompilerVersion)
		assert.Len(t, a.Bytecode, 22)
	})

	t.Run("abi without release", func(t *testing.T) {
		_, err := ReadFile(filepath.Join("testdata", "missing_release.json"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "release()")
	})

	t.Run("unlinked libraries", func(t *testing.T) {
		_, err := ReadFile(filepath.Join("testdata", "unlinked.json"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unlinked")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ReadFile(filepath.Join("testdata", "nope.json"))
		assert.Error(t, err)
	})
}

func TestLoaderLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("finds foundry output by default", func(t *testing.T) {
		root := t.TempDir()
		copyFile(t, filepath.Join("testdata", "foundry", "VestingWallet.json"),
			filepath.Join(root, "out", "VestingWallet.sol", "VestingWallet.json"))

		l := NewLoader(&config.RuntimeConfig{ProjectRoot: root}, discardLogger())
		a, err := l.Load(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, "out", "VestingWallet.sol", "VestingWallet.json"), a.Path)
	})

	t.Run("honours the foundry.toml out directory", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(root, "foundry.toml"),
			[]byte("[profile.default]\nsrc = \"src\"\nout = \"build/forge\"\n"), 0644))
		copyFile(t, filepath.Join("testdata", "foundry", "VestingWallet.json"),
			filepath.Join(root, "build", "forge", "VestingWallet.sol", "VestingWallet.json"))

		l := NewLoader(&config.RuntimeConfig{ProjectRoot: root}, discardLogger())
		a, err := l.Load(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, "build", "forge", "VestingWallet.sol", "VestingWallet.json"), a.Path)
	})

	t.Run("falls back to hardhat artifacts", func(t *testing.T) {
		root := t.TempDir()
		copyFile(t, filepath.Join("testdata", "hardhat", "VestingWallet.json"),
			filepath.Join(root, "artifacts", "contracts", "VestingWallet.sol", "VestingWallet.json"))

		l := NewLoader(&config.RuntimeConfig{ProjectRoot: root}, discardLogger())
		a, err := l.Load(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, "VestingWallet", a.Name)
	})

	t.Run("configured relative path", func(t *testing.T) {
		root := t.TempDir()
		copyFile(t, filepath.Join("testdata", "foundry", "VestingWallet.json"),
			filepath.Join(root, "build", "wallet.json"))

		cfg := &config.RuntimeConfig{
			ProjectRoot: root,
			Project:     &config.ProjectConfig{Deploy: config.DeployConfig{Artifact: "build/wallet.json"}},
		}
		a, err := NewLoader(cfg, discardLogger()).Load(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, "wallet", a.Name)
	})

	t.Run("not found", func(t *testing.T) {
		l := NewLoader(&config.RuntimeConfig{ProjectRoot: t.TempDir()}, discardLogger())
		_, err := l.Load(ctx, "")
		assert.ErrorIs(t, err, domain.ErrArtifactNotFound)
	})
}

func TestFoundryOutDir(t *testing.T) {
	write := func(t *testing.T, content string) string {
		root := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(root, "foundry.toml"), []byte(content), 0644))
		return root
	}

	t.Run("no foundry.toml", func(t *testing.T) {
		dir, err := foundryOutDir(t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, "out", dir)
	})

	t.Run("profile selected by FOUNDRY_PROFILE", func(t *testing.T) {
		t.Setenv("FOUNDRY_PROFILE", "ci")
		root := write(t, "[profile.default]\nout = \"out\"\n\n[profile.ci]\nout = \"ci-out\"\n")
		dir, err := foundryOutDir(root)
		require.NoError(t, err)
		assert.Equal(t, "ci-out", dir)
	})

	t.Run("default profile without out", func(t *testing.T) {
		root := write(t, "[profile.default]\nsrc = \"contracts\"\n")
		dir, err := foundryOutDir(root)
		require.NoError(t, err)
		assert.Equal(t, "out", dir)
	})

	t.Run("invalid toml", func(t *testing.T) {
		_, err := foundryOutDir(write(t, "[profile.default\n"))
		assert.ErrorContains(t, err, "failed to parse foundry.toml")
	})
}
