package config

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/trebuchet-org/vesting-cli/internal/domain/config"
)

// builtinNetworks are known without any configuration. RPC URLs of public networks come
// from <NAME>_RPC_URL environment variables.
var builtinNetworks = []config.Network{
	{ChainID: 1, Name: "mainnet", ExplorerURL: "https://etherscan.io"},
	{ChainID: 11155111, Name: "sepolia", ExplorerURL: "https://sepolia.etherscan.io"},
	{ChainID: 17000, Name: "holesky", ExplorerURL: "https://holesky.etherscan.io"},
	{ChainID: 10, Name: "optimism", ExplorerURL: "https://optimistic.etherscan.io"},
	{ChainID: 42161, Name: "arbitrum", ExplorerURL: "https://arbiscan.io"},
	{ChainID: 137, Name: "polygon", ExplorerURL: "https://polygonscan.com"},
	{ChainID: 8453, Name: "base", ExplorerURL: "https://basescan.org"},
	{ChainID: 84532, Name: "base-sepolia", ExplorerURL: "https://sepolia.basescan.org"},
	{ChainID: 31337, Name: "anvil", RPCURL: "http://localhost:8545", Local: true},
	{ChainID: 31337, Name: "localhost", RPCURL: "http://localhost:8545", Local: true},
}

// GenerateEnvVarName returns the conventional RPC URL variable for a network:
// sepolia -> SEPOLIA_RPC_URL, base-sepolia -> BASE_SEPOLIA_RPC_URL.
func GenerateEnvVarName(networkName string) string {
	name := strings.ToUpper(networkName)
	name = strings.NewReplacer("-", "_", ".", "_").Replace(name)
	return name + "_RPC_URL"
}

// NetworkResolver resolves network names against vesting.toml and the built-in table
type NetworkResolver struct {
	project map[string]config.NetworkConfig
	builtin map[string]config.Network
}

// NewNetworkResolver creates a resolver; project may be nil
func NewNetworkResolver(project *config.ProjectConfig) *NetworkResolver {
	r := &NetworkResolver{
		project: map[string]config.NetworkConfig{},
		builtin: map[string]config.Network{},
	}
	for _, n := range builtinNetworks {
		r.builtin[n.Name] = n
	}
	if project != nil {
		for name, n := range project.Networks {
			r.project[strings.ToLower(name)] = n
		}
	}
	return r
}

// Names returns every resolvable network name, sorted.
func (r *NetworkResolver) Names() []string {
	seen := map[string]bool{}
	var names []string
	for name := range r.project {
		seen[name] = true
		names = append(names, name)
	}
	for name := range r.builtin {
		if !seen[name] {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Resolve looks up a network by name, by chain ID, or accepts a raw RPC URL.
// Project entries override built-ins of the same name.
func (r *NetworkResolver) Resolve(input string) (*config.Network, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, fmt.Errorf("network not specified")
	}
	name := strings.ToLower(input)

	if n, ok := r.project[name]; ok {
		network := &config.Network{
			Name:        name,
			ChainID:     n.ChainID,
			RPCURL:      n.RPCURL,
			ExplorerURL: n.Explorer,
			Local:       n.Local,
		}
		if b, ok := r.builtin[name]; ok {
			if network.ChainID == 0 {
				network.ChainID = b.ChainID
			}
			if network.ExplorerURL == "" {
				network.ExplorerURL = b.ExplorerURL
			}
			network.Local = network.Local || b.Local
		}
		if network.RPCURL == "" {
			network.RPCURL = os.Getenv(GenerateEnvVarName(name))
		}
		return network, nil
	}

	if b, ok := r.builtin[name]; ok {
		network := b
		if url := os.Getenv(GenerateEnvVarName(name)); url != "" {
			network.RPCURL = url
		}
		return &network, nil
	}

	if chainID, err := strconv.ParseUint(input, 10, 64); err == nil {
		for _, candidate := range r.Names() {
			n, err := r.Resolve(candidate)
			if err == nil && n.ChainID == chainID {
				return n, nil
			}
		}
		return nil, fmt.Errorf("no network with chain ID %d is configured", chainID)
	}

	if isRPCURL(input) {
		return &config.Network{Name: "custom", RPCURL: input}, nil
	}

	return nil, fmt.Errorf("unknown network: %s", input)
}

func isRPCURL(s string) bool {
	for _, prefix := range []string{"http://", "https://", "ws://", "wss://"} {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}
