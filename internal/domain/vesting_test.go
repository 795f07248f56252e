package domain

import (
	"errors"
	"math"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDeploymentParams(t *testing.T) {
	owner := common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	p := DefaultDeploymentParams(owner, 1_700_000_000)

	assert.Equal(t, owner, p.Beneficiary)
	assert.Equal(t, uint64(31556926), p.Duration)
	assert.Equal(t, "MyToken", p.TokenName)
	assert.Equal(t, "MTK", p.TokenSymbol)
	assert.Equal(t, "1000000", p.InitialSupply.String())
	assert.Equal(t, "100000000000000000", p.Value.String())
	assert.Equal(t, uint64(1_700_000_000+31556926), p.End())
	require.NoError(t, p.Validate())

	// defaults are copies
	p.InitialSupply.SetInt64(1)
	assert.Equal(t, "1000000", DefaultInitialSupply.String())
}

func TestDeploymentParamsValidate(t *testing.T) {
	p := DeploymentParams{Value: big.NewInt(-1)}
	err := p.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidParams))

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Problems, 6)
}

func TestDeploymentParamsEndOverflow(t *testing.T) {
	p := DefaultDeploymentParams(common.HexToAddress("0x01"), math.MaxUint64-10)

	err := p.Validate()
	require.ErrorIs(t, err, ErrInvalidParams)
	assert.ErrorContains(t, err, "start + duration overflows")
	assert.Equal(t, uint64(math.MaxUint64), p.End())

	p.Start = math.MaxUint64 - p.Duration
	require.NoError(t, p.Validate())
	assert.Equal(t, uint64(math.MaxUint64), p.End())

	s := &VestingState{Start: math.MaxUint64, Duration: 5}
	assert.Equal(t, uint64(math.MaxUint64), s.End())
}

func TestVestingStateReleasable(t *testing.T) {
	s := &VestingState{
		Start:        100,
		Duration:     1000,
		Released:     big.NewInt(300),
		VestedAmount: big.NewInt(500),
		At:           600,
	}
	assert.Equal(t, "200", s.Releasable().String())
	assert.Equal(t, uint64(1100), s.End())
	assert.InDelta(t, 0.5, s.Progress(), 1e-9)

	s.Released = big.NewInt(900)
	assert.Equal(t, "0", s.Releasable().String())

	s.At = 50
	assert.Equal(t, float64(0), s.Progress())
	s.At = 5000
	assert.Equal(t, float64(1), s.Progress())
}

func TestRevertErrorIs(t *testing.T) {
	err := error(&RevertError{Method: "release", Reason: "No releasable amount"})
	assert.True(t, errors.Is(err, ErrNoReleasableAmount))
	assert.Equal(t, "release reverted: No releasable amount", err.Error())

	other := error(&RevertError{Reason: "Ownable: caller is not the owner"})
	assert.False(t, errors.Is(other, ErrNoReleasableAmount))
	assert.Equal(t, "execution reverted: Ownable: caller is not the owner", other.Error())
}

func TestDeploymentMatchesRef(t *testing.T) {
	addr := common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	d := &Deployment{ID: DeploymentID(31337, addr), ChainID: 31337, Address: addr}

	assert.Equal(t, "31337/0x5FbDB2315678afecb367f032d93F642f64180aa3", d.ID)
	assert.True(t, d.MatchesRef("0x5fbdb2315678afecb367f032d93f642f64180aa3"))
	assert.True(t, d.MatchesRef("31337/0x5FbDB2315678afecb367f032d93F642f64180aa3"))
	assert.False(t, d.MatchesRef("0x0000000000000000000000000000000000000001"))
	assert.False(t, d.MatchesRef(""))

	assert.True(t, DeploymentFilter{ChainID: 31337}.Matches(d))
	assert.False(t, DeploymentFilter{ChainID: 1}.Matches(d))
}
