package domain

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// RawParams holds deployment parameters as the user wrote them (flags, params files, vesting.toml).
// Empty fields mean "not set".
type RawParams struct {
	Beneficiary   string `json:"beneficiary,omitempty"`
	Start         string `json:"start,omitempty"`
	Duration      string `json:"duration,omitempty"`
	TokenName     string `json:"tokenName,omitempty"`
	TokenSymbol   string `json:"tokenSymbol,omitempty"`
	InitialSupply string `json:"initialSupply,omitempty"`
	Value         string `json:"value,omitempty"`
}

// ParamOverrides is a parsed, partial set of deployment parameters.
type ParamOverrides struct {
	Beneficiary   *common.Address
	Start         *uint64
	Duration      *uint64
	TokenName     *string
	TokenSymbol   *string
	InitialSupply *big.Int
	Value         *big.Int
}

// Parse converts the raw strings, collecting every problem into a ValidationError.
func (r RawParams) Parse() (ParamOverrides, error) {
	var (
		o        ParamOverrides
		problems []string
	)

	if s := strings.TrimSpace(r.Beneficiary); s != "" {
		if !common.IsHexAddress(s) {
			problems = append(problems, fmt.Sprintf("beneficiary %q is not an address", s))
		} else {
			addr := common.HexToAddress(s)
			o.Beneficiary = &addr
		}
	}
	if s := strings.TrimSpace(r.Start); s != "" {
		v, err := parseUint(s)
		if err != nil {
			problems = append(problems, fmt.Sprintf("start: %v", err))
		} else {
			o.Start = &v
		}
	}
	if s := strings.TrimSpace(r.Duration); s != "" {
		v, err := parseUint(s)
		if err != nil {
			problems = append(problems, fmt.Sprintf("duration: %v", err))
		} else {
			o.Duration = &v
		}
	}
	if s := strings.TrimSpace(r.TokenName); s != "" {
		o.TokenName = &s
	}
	if s := strings.TrimSpace(r.TokenSymbol); s != "" {
		o.TokenSymbol = &s
	}
	if s := strings.TrimSpace(r.InitialSupply); s != "" {
		v, err := ParseInteger(s)
		if err != nil {
			problems = append(problems, fmt.Sprintf("initial supply: %v", err))
		} else {
			o.InitialSupply = v
		}
	}
	if s := strings.TrimSpace(r.Value); s != "" {
		v, err := ParseAmount(s)
		if err != nil {
			problems = append(problems, fmt.Sprintf("value: %v", err))
		} else {
			o.Value = v
		}
	}

	if len(problems) > 0 {
		return ParamOverrides{}, &ValidationError{Problems: problems}
	}
	return o, nil
}

// Apply writes every set field onto p.
func (o ParamOverrides) Apply(p *DeploymentParams) {
	if o.Beneficiary != nil {
		p.Beneficiary = *o.Beneficiary
	}
	if o.Start != nil {
		p.Start = *o.Start
	}
	if o.Duration != nil {
		p.Duration = *o.Duration
	}
	if o.TokenName != nil {
		p.TokenName = *o.TokenName
	}
	if o.TokenSymbol != nil {
		p.TokenSymbol = *o.TokenSymbol
	}
	if o.InitialSupply != nil {
		p.InitialSupply = new(big.Int).Set(o.InitialSupply)
	}
	if o.Value != nil {
		p.Value = new(big.Int).Set(o.Value)
	}
}

func parseUint(s string) (uint64, error) {
	return strconv.ParseUint(strings.ReplaceAll(s, "_", ""), 10, 64)
}
