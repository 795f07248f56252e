package network

import (
	"context"

	appconfig "github.com/trebuchet-org/vesting-cli/internal/config"
	"github.com/trebuchet-org/vesting-cli/internal/domain/config"
	"github.com/trebuchet-org/vesting-cli/internal/usecase"
)

// Resolver exposes the vesting.toml and built-in network table to use cases
type Resolver struct {
	resolver *appconfig.NetworkResolver
}

var _ usecase.NetworkResolver = (*Resolver)(nil)

// NewResolver creates a network resolver for the loaded project
func NewResolver(cfg *config.RuntimeConfig) *Resolver {
	return &Resolver{resolver: appconfig.NewNetworkResolver(cfg.Project)}
}

// GetNetworks returns all network names, sorted
func (r *Resolver) GetNetworks(ctx context.Context) []string {
	return r.resolver.Names()
}

// ResolveNetwork resolves a network by name, chain ID, or RPC URL
func (r *Resolver) ResolveNetwork(ctx context.Context, name string) (*config.Network, error) {
	return r.resolver.Resolve(name)
}
