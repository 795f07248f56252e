package config

// ProjectConfig mirrors vesting.toml
type ProjectConfig struct {
	DefaultNetwork string                   `toml:"default_network,omitempty"`
	Networks       map[string]NetworkConfig `toml:"networks,omitempty"`
	Signer         SignerConfig             `toml:"signer,omitempty"`
	Deploy         DeployConfig             `toml:"deploy,omitempty"`
}

// NetworkConfig is a [networks.<name>] table
type NetworkConfig struct {
	RPCURL   string `toml:"rpc_url"`
	ChainID  uint64 `toml:"chain_id,omitempty"`
	Explorer string `toml:"explorer,omitempty"`
	Local    bool   `toml:"local,omitempty"`
}

type SignerType string

var (
	SignerTypePrivateKey SignerType = "private_key"
	SignerTypeKeystore   SignerType = "keystore"
	SignerTypeAnvil      SignerType = "anvil"
)

// SignerConfig is the [signer] table
type SignerConfig struct {
	Type              SignerType `toml:"type,omitempty" json:"type"`
	PrivateKey        string     `toml:"private_key,omitempty" json:"-"` //nolint:gosec // usually an env var reference
	Keystore          string     `toml:"keystore,omitempty" json:"keystore,omitempty"`
	PasswordEnv       string     `toml:"password_env,omitempty" json:"passwordEnv,omitempty"`
	AnvilAccountIndex int        `toml:"anvil_account,omitempty" json:"anvilAccount,omitempty"`
}

// DeployConfig is the [deploy] table. Empty values fall back to built-in defaults.
type DeployConfig struct {
	Artifact      string `toml:"artifact,omitempty"`
	Beneficiary   string `toml:"beneficiary,omitempty"`
	Duration      uint64 `toml:"duration,omitempty"`
	TokenName     string `toml:"token_name,omitempty"`
	TokenSymbol   string `toml:"token_symbol,omitempty"`
	InitialSupply string `toml:"initial_supply,omitempty"`
	Value         string `toml:"value,omitempty"` // e.g. "0.1ether", "1000gwei", "42"
}
