package domain

import (
	"fmt"
	"math"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/params"
)

// Default constructor arguments used by the deploy command.
const (
	// DefaultDuration is one year in seconds (365.2422 days).
	DefaultDuration uint64 = 31556926
	DefaultTokenName       = "MyToken"
	DefaultTokenSymbol     = "MTK"
	DefaultContractName    = "VestingWallet"
)

var (
	// DefaultInitialSupply is the token allocation handed to the wallet.
	DefaultInitialSupply = big.NewInt(1_000_000)

	// DefaultValue is the ether attached to the deployment (0.1 ether).
	DefaultValue = new(big.Int).Div(big.NewInt(params.Ether), big.NewInt(10))
)

// DeploymentParams are the VestingWallet constructor arguments plus the attached value.
type DeploymentParams struct {
	Beneficiary   common.Address `json:"beneficiary"`
	Start         uint64         `json:"start"`
	Duration      uint64         `json:"duration"`
	TokenName     string         `json:"tokenName"`
	TokenSymbol   string         `json:"tokenSymbol"`
	InitialSupply *big.Int       `json:"initialSupply"`
	Value         *big.Int       `json:"value"`
}

// DefaultDeploymentParams returns the defaults for the given beneficiary and start.
func DefaultDeploymentParams(beneficiary common.Address, start uint64) DeploymentParams {
	return DeploymentParams{
		Beneficiary:   beneficiary,
		Start:         start,
		Duration:      DefaultDuration,
		TokenName:     DefaultTokenName,
		TokenSymbol:   DefaultTokenSymbol,
		InitialSupply: new(big.Int).Set(DefaultInitialSupply),
		Value:         new(big.Int).Set(DefaultValue),
	}
}

// End returns start + duration, saturating at the largest uint64 timestamp.
func (p DeploymentParams) End() uint64 {
	return addSaturating(p.Start, p.Duration)
}

// StartTime returns the start as a time.Time.
func (p DeploymentParams) StartTime() time.Time {
	return time.Unix(int64(p.Start), 0).UTC()
}

// Validate checks the parameters locally before anything is sent to the network.
func (p DeploymentParams) Validate() error {
	var problems []string
	if p.Beneficiary == (common.Address{}) {
		problems = append(problems, "beneficiary must not be the zero address")
	}
	if p.Duration == 0 {
		problems = append(problems, "duration must be greater than zero")
	}
	if p.Start > math.MaxUint64-p.Duration {
		problems = append(problems, "start + duration overflows a uint64 timestamp")
	}
	if p.TokenName == "" {
		problems = append(problems, "token name must not be empty")
	}
	if p.TokenSymbol == "" {
		problems = append(problems, "token symbol must not be empty")
	}
	if p.InitialSupply == nil || p.InitialSupply.Sign() <= 0 {
		problems = append(problems, "initial supply must be positive")
	}
	if p.Value != nil && p.Value.Sign() < 0 {
		problems = append(problems, "value must not be negative")
	}
	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

// PendingDeployment is a deployment transaction that has been sent but not yet confirmed.
type PendingDeployment struct {
	Address  common.Address
	TxHash   common.Hash
	Nonce    uint64
	Deployer common.Address
}

// ConfirmedTx describes a mined transaction.
type ConfirmedTx struct {
	TxHash      common.Hash
	BlockNumber uint64
	GasUsed     uint64
}

// VestingState is a snapshot of a deployed wallet's accessors at a given timestamp.
type VestingState struct {
	Address      common.Address
	Owner        common.Address
	Start        uint64
	Duration     uint64
	Released     *big.Int
	VestedAmount *big.Int
	At           uint64
	Balance      *big.Int
}

// End returns start + duration.
func (s *VestingState) End() uint64 {
	return addSaturating(s.Start, s.Duration)
}

func addSaturating(a, b uint64) uint64 {
	if a > math.MaxUint64-b {
		return math.MaxUint64
	}
	return a + b
}

// Releasable returns vestedAmount - released, floored at zero.
func (s *VestingState) Releasable() *big.Int {
	if s.VestedAmount == nil {
		return new(big.Int)
	}
	released := s.Released
	if released == nil {
		released = new(big.Int)
	}
	r := new(big.Int).Sub(s.VestedAmount, released)
	if r.Sign() < 0 {
		return new(big.Int)
	}
	return r
}

// Progress returns the elapsed share of the schedule at At, in [0, 1].
func (s *VestingState) Progress() float64 {
	switch {
	case s.Duration == 0 || s.At <= s.Start:
		return 0
	case s.At >= s.End():
		return 1
	default:
		return float64(s.At-s.Start) / float64(s.Duration)
	}
}

// FormatTimestamp renders a unix timestamp for display.
func FormatTimestamp(ts uint64) string {
	return fmt.Sprintf("%d (%s)", ts, time.Unix(int64(ts), 0).UTC().Format(time.RFC3339))
}
