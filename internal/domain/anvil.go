package domain

import "fmt"

// DefaultAnvilNetwork is the network preset a local node backs unless told otherwise.
const DefaultAnvilNetwork = "anvil"

// AnvilInstance is a background anvil process serving one vest network
type AnvilInstance struct {
	Name    string `json:"name"`
	Network string `json:"network"`
	Port    string `json:"port"`
	ChainID uint64 `json:"chainId"`
	PidFile string `json:"pidFile"`
	LogFile string `json:"logFile"`
}

// RPCURL is the endpoint the node listens on.
func (i *AnvilInstance) RPCURL() string {
	return "http://localhost:" + i.Port
}

// AnvilStatus is a point-in-time view of an instance
type AnvilStatus struct {
	Running     bool   `json:"running"`
	PID         int    `json:"pid,omitempty"`
	RPCURL      string `json:"rpcUrl,omitempty"`
	LogFile     string `json:"logFile"`
	RPCHealthy  bool   `json:"rpcHealthy"`
	ChainID     uint64 `json:"chainId,omitempty"`
	BlockNumber uint64 `json:"blockNumber,omitempty"`
	Error       string `json:"error,omitempty"`
}

// ChainMismatch describes a running node whose chain id differs from its network's,
// or returns "" when they agree or the node cannot be asked.
func (s *AnvilStatus) ChainMismatch(inst *AnvilInstance) string {
	if s == nil || !s.RPCHealthy || inst.ChainID == 0 || s.ChainID == inst.ChainID {
		return ""
	}
	return fmt.Sprintf("node on %s reports chain %d but network %s expects %d",
		s.RPCURL, s.ChainID, inst.Network, inst.ChainID)
}
