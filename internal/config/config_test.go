package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/vesting-cli/internal/domain/config"
)

const sampleProject = `
default_network = "devnet"

[networks.devnet]
rpc_url = "${TEST_DEVNET_RPC}"
chain_id = 1337
local = true

[networks.sepolia]
rpc_url = "https://sepolia.example/rpc"

[signer]
type = "private_key"
private_key = "${DEPLOYER_PRIVATE_KEY}"

[deploy]
artifact = "out/VestingWallet.sol/VestingWallet.json"
duration = 86400
token_symbol = "VEST"
value = "0.5ether"
`

func writeProject(t *testing.T, content string) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ProjectFile), []byte(content), 0644))
	return root
}

func newViper(root string) *viper.Viper {
	v := viper.New()
	v.Set("project_root", root)
	v.Set("timeout", "30s")
	return v
}

func TestLoadProjectConfig(t *testing.T) {
	t.Setenv("TEST_DEVNET_RPC", "http://127.0.0.1:9545")
	root := writeProject(t, sampleProject)

	cfg, path, err := LoadProjectConfig(root)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, ProjectFile), path)
	assert.Equal(t, "devnet", cfg.DefaultNetwork)
	assert.Equal(t, "http://127.0.0.1:9545", cfg.Networks["devnet"].RPCURL)
	assert.Equal(t, uint64(1337), cfg.Networks["devnet"].ChainID)
	assert.True(t, cfg.Networks["devnet"].Local)
	assert.Equal(t, config.SignerTypePrivateKey, cfg.Signer.Type)
	// secrets stay unexpanded until the signer is used
	assert.Equal(t, "${DEPLOYER_PRIVATE_KEY}", cfg.Signer.PrivateKey)
	assert.Equal(t, uint64(86400), cfg.Deploy.Duration)
	assert.Equal(t, "VEST", cfg.Deploy.TokenSymbol)
	assert.Equal(t, "0.5ether", cfg.Deploy.Value)
}

func TestLoadProjectConfigMissing(t *testing.T) {
	cfg, path, err := LoadProjectConfig(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.NotNil(t, cfg.Networks)
}

func TestLoadProjectConfigUnknownKeys(t *testing.T) {
	root := writeProject(t, "[deploy]\nsalt = \"0x01\"\n")
	_, _, err := LoadProjectConfig(root)
	assert.ErrorContains(t, err, "unknown keys in vesting.toml: deploy.salt")
}

func TestLoadEnvFiles(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ".env"), []byte("TEST_ENV_A=from-env\nTEST_ENV_B=from-env\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".env.local"), []byte("TEST_ENV_B=from-local\n"), 0644))
	t.Cleanup(func() {
		os.Unsetenv("TEST_ENV_A")
		os.Unsetenv("TEST_ENV_B")
	})

	require.NoError(t, LoadEnvFiles(root))
	assert.Equal(t, "from-env", os.Getenv("TEST_ENV_A"))
	assert.Equal(t, "from-local", os.Getenv("TEST_ENV_B"))
}

func TestNetworkResolver(t *testing.T) {
	t.Setenv("SEPOLIA_RPC_URL", "https://sepolia.env/rpc")
	t.Setenv("BASE_SEPOLIA_RPC_URL", "")

	r := NewNetworkResolver(&config.ProjectConfig{
		Networks: map[string]config.NetworkConfig{
			"Devnet":  {RPCURL: "http://127.0.0.1:9545", ChainID: 1337, Local: true},
			"mainnet": {RPCURL: "https://mainnet.project/rpc"},
		},
	})

	tests := []struct {
		input   string
		want    config.Network
		wantErr string
	}{
		{input: "devnet", want: config.Network{Name: "devnet", ChainID: 1337, RPCURL: "http://127.0.0.1:9545", Local: true}},
		{input: "mainnet", want: config.Network{Name: "mainnet", ChainID: 1, RPCURL: "https://mainnet.project/rpc", ExplorerURL: "https://etherscan.io"}},
		{input: "Sepolia", want: config.Network{Name: "sepolia", ChainID: 11155111, RPCURL: "https://sepolia.env/rpc", ExplorerURL: "https://sepolia.etherscan.io"}},
		{input: "anvil", want: config.Network{Name: "anvil", ChainID: 31337, RPCURL: "http://localhost:8545", Local: true}},
		{input: "31337", want: config.Network{Name: "anvil", ChainID: 31337, RPCURL: "http://localhost:8545", Local: true}},
		{input: "1337", want: config.Network{Name: "devnet", ChainID: 1337, RPCURL: "http://127.0.0.1:9545", Local: true}},
		{input: "https://rpc.example", want: config.Network{Name: "custom", RPCURL: "https://rpc.example"}},
		{input: "99999", wantErr: "no network with chain ID 99999"},
		{input: "nowhere", wantErr: "unknown network: nowhere"},
		{input: "", wantErr: "network not specified"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := r.Resolve(tt.input)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, *got)
		})
	}

	names := r.Names()
	assert.Contains(t, names, "devnet")
	assert.Contains(t, names, "anvil")
	assert.IsIncreasing(t, names)
}

func TestGenerateEnvVarName(t *testing.T) {
	assert.Equal(t, "SEPOLIA_RPC_URL", GenerateEnvVarName("sepolia"))
	assert.Equal(t, "BASE_SEPOLIA_RPC_URL", GenerateEnvVarName("base-sepolia"))
	assert.Equal(t, "MY_NET_RPC_URL", GenerateEnvVarName("my.net"))
}

func TestProvider(t *testing.T) {
	t.Setenv("TEST_DEVNET_RPC", "http://127.0.0.1:9545")
	root := writeProject(t, sampleProject)

	t.Run("default network from project", func(t *testing.T) {
		cfg, err := Provider(newViper(root))
		require.NoError(t, err)
		assert.Equal(t, root, cfg.ProjectRoot)
		assert.Equal(t, filepath.Join(root, ".vesting"), cfg.DataDir)
		assert.Equal(t, 30*time.Second, cfg.Timeout)
		require.NotNil(t, cfg.Network)
		assert.Equal(t, "devnet", cfg.Network.Name)
		assert.Equal(t, uint64(1337), cfg.Network.ChainID)
		assert.Equal(t, config.SignerTypePrivateKey, cfg.Signer.Type)
	})

	t.Run("rpc url and chain id flags override", func(t *testing.T) {
		v := newViper(root)
		v.Set("network", "sepolia")
		v.Set("rpc_url", "http://127.0.0.1:8545")
		v.Set("chain_id", 31337)

		cfg, err := Provider(v)
		require.NoError(t, err)
		assert.Equal(t, "sepolia", cfg.Network.Name)
		assert.Equal(t, "http://127.0.0.1:8545", cfg.Network.RPCURL)
		assert.Equal(t, uint64(31337), cfg.Network.ChainID)
	})

	t.Run("private key from environment wins", func(t *testing.T) {
		v := newViper(root)
		v.Set("private_key", "0xabc")
		cfg, err := Provider(v)
		require.NoError(t, err)
		assert.Equal(t, "0xabc", cfg.Signer.PrivateKey)
	})

	t.Run("network without rpc", func(t *testing.T) {
		t.Setenv("BASE_RPC_URL", "")
		v := newViper(root)
		v.Set("network", "base")
		_, err := Provider(v)
		assert.ErrorContains(t, err, "BASE_RPC_URL")
	})

	t.Run("no project file and no network", func(t *testing.T) {
		cfg, err := Provider(newViper(t.TempDir()))
		require.NoError(t, err)
		assert.Nil(t, cfg.Network)
		assert.Empty(t, cfg.ConfigFile)
	})

	t.Run("chain id alone", func(t *testing.T) {
		v := newViper(t.TempDir())
		v.Set("chain_id", 1)
		_, err := Provider(v)
		assert.ErrorContains(t, err, "--chain-id needs")
	})
}

func TestFindProjectRoot(t *testing.T) {
	root := writeProject(t, "")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))
	t.Chdir(nested)

	got, err := FindProjectRoot()
	require.NoError(t, err)
	want, _ := filepath.EvalSymlinks(root)
	gotResolved, _ := filepath.EvalSymlinks(got)
	assert.Equal(t, want, gotResolved)
}
