package usecase

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/url"

	"github.com/trebuchet-org/vesting-cli/internal/domain"
	"github.com/trebuchet-org/vesting-cli/internal/domain/config"
)

// ManageAnvil runs the local node behind a vest dev network
type ManageAnvil struct {
	cfg      *config.RuntimeConfig
	networks NetworkResolver
	nodes    AnvilManager
	progress ProgressSink
}

// NewManageAnvil creates a new anvil management use case
func NewManageAnvil(cfg *config.RuntimeConfig, networks NetworkResolver, nodes AnvilManager, progress ProgressSink) *ManageAnvil {
	return &ManageAnvil{
		cfg:      cfg,
		networks: networks,
		nodes:    nodes,
		progress: progress,
	}
}

// ManageAnvilParams selects the operation. Port and ChainID default to the
// network the node backs: the active network when it is local, else the anvil preset.
type ManageAnvilParams struct {
	Operation string // start, stop, restart, status, logs
	Name      string
	Port      string
	ChainID   uint64
	LogWriter io.Writer
}

// ManageAnvilResult contains the result of anvil operations
type ManageAnvilResult struct {
	Operation string                `json:"operation"`
	Instance  *domain.AnvilInstance `json:"instance"`
	Status    *domain.AnvilStatus   `json:"status,omitempty"`
	Message   string                `json:"message,omitempty"`
	// Active is set when the current vest network points at this node
	Active  bool   `json:"active"`
	Warning string `json:"warning,omitempty"`
}

// Instance resolves the node descriptor for params without touching the process.
func (m *ManageAnvil) Instance(ctx context.Context, params ManageAnvilParams) (*domain.AnvilInstance, error) {
	name := domain.DefaultAnvilNetwork
	if m.cfg.Network != nil && m.cfg.Network.Local {
		name = m.cfg.Network.Name
	}
	network, err := m.networks.ResolveNetwork(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve network %s: %w", name, err)
	}

	inst := &domain.AnvilInstance{
		Name:    params.Name,
		Network: network.Name,
		Port:    params.Port,
		ChainID: params.ChainID,
	}
	if inst.Name == "" {
		inst.Name = network.Name
	}
	if inst.ChainID == 0 {
		inst.ChainID = network.ChainID
	}
	if inst.Port == "" {
		port, err := localPort(network.RPCURL)
		if err != nil {
			return nil, fmt.Errorf("network %s: %w (pass --port)", network.Name, err)
		}
		inst.Port = port
	}
	return inst, nil
}

// Execute performs the anvil management operation
func (m *ManageAnvil) Execute(ctx context.Context, params ManageAnvilParams) (*ManageAnvilResult, error) {
	inst, err := m.Instance(ctx, params)
	if err != nil {
		return nil, err
	}
	result := &ManageAnvilResult{Operation: params.Operation, Instance: inst, Active: m.isActive(inst)}

	switch params.Operation {
	case "start":
		if status, err := m.nodes.GetStatus(ctx, inst); err == nil && status.Running {
			return nil, fmt.Errorf("anvil '%s' is already running (PID %d)", inst.Name, status.PID)
		}
		err = m.launch(ctx, inst, result)
	case "restart":
		if status, err := m.nodes.GetStatus(ctx, inst); err == nil && status.Running {
			m.progress.Info(fmt.Sprintf("Stopping anvil '%s' (PID %d)...", inst.Name, status.PID))
			if err := m.nodes.Stop(ctx, inst); err != nil {
				return nil, fmt.Errorf("failed to stop anvil: %w", err)
			}
		}
		err = m.launch(ctx, inst, result)
	case "stop":
		err = m.stop(ctx, inst, result)
	case "status":
		result.Status, err = m.nodes.GetStatus(ctx, inst)
		if err != nil {
			return nil, fmt.Errorf("failed to get status: %w", err)
		}
		result.Warning = result.Status.ChainMismatch(inst)
	case "logs":
		if params.LogWriter == nil {
			return nil, fmt.Errorf("no log writer given")
		}
		err = m.nodes.StreamLogs(ctx, inst, params.LogWriter)
	default:
		return nil, fmt.Errorf("unknown operation: %s", params.Operation)
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (m *ManageAnvil) launch(ctx context.Context, inst *domain.AnvilInstance, result *ManageAnvilResult) error {
	m.progress.Info(fmt.Sprintf("Starting anvil '%s' for network %s on port %s (chain %d)...",
		inst.Name, inst.Network, inst.Port, inst.ChainID))

	if err := m.nodes.Start(ctx, inst); err != nil {
		return fmt.Errorf("failed to start anvil: %w", err)
	}
	status, err := m.nodes.GetStatus(ctx, inst)
	if err != nil {
		return fmt.Errorf("failed to get status after start: %w", err)
	}

	result.Status = status
	result.Warning = status.ChainMismatch(inst)
	result.Message = fmt.Sprintf("Anvil '%s' serving %s on %s (PID %d)", inst.Name, inst.Network, inst.RPCURL(), status.PID)
	return nil
}

func (m *ManageAnvil) stop(ctx context.Context, inst *domain.AnvilInstance, result *ManageAnvilResult) error {
	status, err := m.nodes.GetStatus(ctx, inst)
	if err != nil || !status.Running {
		result.Message = fmt.Sprintf("Anvil '%s' is not running", inst.Name)
		return nil
	}

	m.progress.Info(fmt.Sprintf("Stopping anvil '%s' (PID %d)...", inst.Name, status.PID))
	if err := m.nodes.Stop(ctx, inst); err != nil {
		return fmt.Errorf("failed to stop anvil: %w", err)
	}
	result.Message = fmt.Sprintf("Anvil '%s' stopped", inst.Name)
	return nil
}

// isActive reports whether the resolved vest network is this node's endpoint.
func (m *ManageAnvil) isActive(inst *domain.AnvilInstance) bool {
	if m.cfg.Network == nil {
		return false
	}
	port, err := localPort(m.cfg.Network.RPCURL)
	return err == nil && port == inst.Port
}

// localPort extracts the port of a loopback RPC URL.
func localPort(rpcURL string) (string, error) {
	u, err := url.Parse(rpcURL)
	if err != nil {
		return "", fmt.Errorf("invalid RPC URL %q: %w", rpcURL, err)
	}
	host := u.Hostname()
	if host != "localhost" {
		if ip := net.ParseIP(host); ip == nil || !ip.IsLoopback() {
			return "", fmt.Errorf("RPC URL %s is not a local endpoint", rpcURL)
		}
	}
	if port := u.Port(); port != "" {
		return port, nil
	}
	if u.Scheme == "https" {
		return "443", nil
	}
	return "80", nil
}
