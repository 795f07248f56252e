package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/trebuchet-org/vesting-cli/internal/domain/config"
)

const probeTimeout = 5 * time.Second

// ListNetworksParams contains parameters for listing networks
type ListNetworksParams struct {
	// Probe dials every network with an RPC URL and reads its chain ID
	Probe bool
}

// ListNetworksResult contains the result of listing networks
type ListNetworksResult struct {
	Networks []NetworkStatus
	Current  string
}

// NetworkStatus represents the status of a network
type NetworkStatus struct {
	Name    string
	ChainID uint64
	RPCURL  string
	Local   bool
	// Reachable is set when the endpoint answered the probe
	Reachable bool
	Error     error
}

// ListNetworks is a use case for listing available networks
type ListNetworks struct {
	resolver NetworkResolver
	prober   ChainIDProber
	current  string
}

// NewListNetworks creates a new ListNetworks use case
func NewListNetworks(cfg *config.RuntimeConfig, resolver NetworkResolver, prober ChainIDProber) *ListNetworks {
	uc := &ListNetworks{
		resolver: resolver,
		prober:   prober,
	}
	if cfg.Network != nil {
		uc.current = cfg.Network.Name
	}
	return uc
}

// Run executes the use case
func (uc *ListNetworks) Run(ctx context.Context, params ListNetworksParams) (*ListNetworksResult, error) {
	networkNames := uc.resolver.GetNetworks(ctx)

	networks := make([]NetworkStatus, 0, len(networkNames))
	for _, name := range networkNames {
		status := NetworkStatus{Name: name}

		info, err := uc.resolver.ResolveNetwork(ctx, name)
		if err != nil {
			status.Error = err
			networks = append(networks, status)
			continue
		}
		status.ChainID = info.ChainID
		status.RPCURL = info.RPCURL
		status.Local = info.Local

		if params.Probe && info.RPCURL != "" {
			probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
			chainID, err := uc.prober.ProbeChainID(probeCtx, info.RPCURL)
			cancel()
			switch {
			case err != nil:
				status.Error = err
			case info.ChainID != 0 && chainID != info.ChainID:
				status.Reachable = true
				status.Error = fmt.Errorf("endpoint reports chain %d, configured %d", chainID, info.ChainID)
			default:
				status.Reachable = true
				status.ChainID = chainID
			}
		}

		networks = append(networks, status)
	}

	return &ListNetworksResult{
		Networks: networks,
		Current:  uc.current,
	}, nil
}
