package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Deployment is a recorded VestingWallet deployment
type Deployment struct {
	ID          string           `json:"id"` // <chainID>/<address>
	Contract    string           `json:"contract"`
	Address     common.Address   `json:"address"`
	ChainID     uint64           `json:"chainId"`
	Network     string           `json:"network"`
	Deployer    common.Address   `json:"deployer"`
	TxHash      common.Hash      `json:"txHash"`
	BlockNumber uint64           `json:"blockNumber"`
	GasUsed     uint64           `json:"gasUsed"`
	Params      DeploymentParams `json:"params"`
	CreatedAt   time.Time        `json:"createdAt"`
}

// DeploymentID builds the registry key for a deployment.
func DeploymentID(chainID uint64, address common.Address) string {
	return fmt.Sprintf("%d/%s", chainID, address.Hex())
}

// MatchesRef reports whether ref names this deployment, by ID or address.
func (d *Deployment) MatchesRef(ref string) bool {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return false
	}
	if strings.EqualFold(d.ID, ref) {
		return true
	}
	return common.IsHexAddress(ref) && common.HexToAddress(ref) == d.Address
}

// DeploymentFilter narrows registry listings
type DeploymentFilter struct {
	ChainID uint64
	Network string
}

// Matches reports whether the deployment passes the filter.
func (f DeploymentFilter) Matches(d *Deployment) bool {
	if f.ChainID != 0 && d.ChainID != f.ChainID {
		return false
	}
	if f.Network != "" && !strings.EqualFold(d.Network, f.Network) {
		return false
	}
	return true
}
