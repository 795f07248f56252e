package blockchain

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi/bind/v2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/trebuchet-org/vesting-cli/internal/domain"
	"github.com/trebuchet-org/vesting-cli/internal/domain/config"
	"github.com/trebuchet-org/vesting-cli/internal/usecase"
)

// Backend is the part of an RPC client the adapters need.
// *ethclient.Client and the simulated backend's client both satisfy it.
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
	ChainID(ctx context.Context) (*big.Int, error)
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
}

// Client is a lazily dialed connection to the configured network
type Client struct {
	network *config.Network
	log     *slog.Logger

	mu      sync.Mutex
	backend Backend
	chainID uint64
	closeFn func()
}

var _ usecase.ChainClient = (*Client)(nil)

// NewClient creates a client for the runtime network. Nothing is dialed until first use.
func NewClient(cfg *config.RuntimeConfig, log *slog.Logger) *Client {
	return &Client{network: cfg.Network, log: log}
}

// NewClientWithBackend wraps an already connected backend.
func NewClientWithBackend(backend Backend, log *slog.Logger) *Client {
	return &Client{backend: backend, log: log}
}

// Backend returns the connected backend, dialing and verifying the chain ID on first call.
func (c *Client) Backend(ctx context.Context) (Backend, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.backend != nil {
		return c.backend, nil
	}
	if c.network == nil || c.network.RPCURL == "" {
		return nil, domain.ErrNetworkNotConfigured
	}

	c.log.Debug("dialing rpc", "network", c.network.Name, "url", c.network.RPCURL)
	client, err := ethclient.DialContext(ctx, c.network.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC: %w", err)
	}

	chainID, err := client.ChainID(ctx)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to get chain ID: %w", err)
	}
	if c.network.ChainID != 0 && chainID.Uint64() != c.network.ChainID {
		client.Close()
		return nil, fmt.Errorf("%w: %s expects chain ID %d, RPC reports %d",
			domain.ErrNetworkMismatch, c.network.Name, c.network.ChainID, chainID.Uint64())
	}

	c.backend = client
	c.chainID = chainID.Uint64()
	c.closeFn = client.Close
	return c.backend, nil
}

// Close releases the RPC connection if one was opened.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closeFn != nil {
		c.closeFn()
		c.closeFn = nil
	}
}

// ChainID returns the chain ID reported by the node.
func (c *Client) ChainID(ctx context.Context) (uint64, error) {
	backend, err := c.Backend(ctx)
	if err != nil {
		return 0, err
	}

	c.mu.Lock()
	cached := c.chainID
	c.mu.Unlock()
	if cached != 0 {
		return cached, nil
	}

	id, err := backend.ChainID(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get chain ID: %w", err)
	}
	c.mu.Lock()
	c.chainID = id.Uint64()
	c.mu.Unlock()
	return id.Uint64(), nil
}

// BalanceAt returns the latest balance of account in wei.
func (c *Client) BalanceAt(ctx context.Context, account common.Address) (*big.Int, error) {
	backend, err := c.Backend(ctx)
	if err != nil {
		return nil, err
	}
	balance, err := backend.BalanceAt(ctx, account, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get balance of %s: %w", account.Hex(), err)
	}
	return balance, nil
}

// LatestBlockTime returns the timestamp of the latest block.
func (c *Client) LatestBlockTime(ctx context.Context) (uint64, error) {
	backend, err := c.Backend(ctx)
	if err != nil {
		return 0, err
	}
	header, err := backend.HeaderByNumber(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to get latest block: %w", err)
	}
	return header.Time, nil
}

// PredictAddress returns the address the deployer's next contract creation will get.
func (c *Client) PredictAddress(ctx context.Context, deployer common.Address) (common.Address, uint64, error) {
	backend, err := c.Backend(ctx)
	if err != nil {
		return common.Address{}, 0, err
	}
	nonce, err := backend.PendingNonceAt(ctx, deployer)
	if err != nil {
		return common.Address{}, 0, fmt.Errorf("failed to get nonce of %s: %w", deployer.Hex(), err)
	}
	return crypto.CreateAddress(deployer, nonce), nonce, nil
}

// CodeAt returns the latest code at address.
func (c *Client) CodeAt(ctx context.Context, address common.Address) ([]byte, error) {
	backend, err := c.Backend(ctx)
	if err != nil {
		return nil, err
	}
	return backend.CodeAt(ctx, address, nil)
}

// ProbeChainID dials rpcURL just long enough to read its chain ID.
func ProbeChainID(ctx context.Context, rpcURL string) (uint64, error) {
	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return 0, fmt.Errorf("failed to connect to RPC: %w", err)
	}
	defer client.Close()

	id, err := client.ChainID(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get chain ID: %w", err)
	}
	return id.Uint64(), nil
}

// Prober adapts ProbeChainID to usecase.ChainIDProber
type Prober struct{}

var _ usecase.ChainIDProber = Prober{}

// NewProber creates a chain ID prober
func NewProber() Prober { return Prober{} }

func (Prober) ProbeChainID(ctx context.Context, rpcURL string) (uint64, error) {
	return ProbeChainID(ctx, rpcURL)
}
