package interactive

import (
	"context"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/vesting-cli/internal/domain"
	"github.com/trebuchet-org/vesting-cli/internal/domain/config"
)

func TestFuzzySearch(t *testing.T) {
	items := []string{
		"VestingWallet 0x5FbDB2315678afecb367f032d93F642f64180aa3 (anvil, 2025-01-01 00:00)",
		"VestingWallet 0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512 (sepolia, 2025-02-01 00:00)",
	}
	search := FuzzySearch(items)

	assert.True(t, search("", 0))
	assert.True(t, search("SEPOLIA", 1))
	assert.False(t, search("sepolia", 0))
	assert.True(t, search("vwsep", 1))
	assert.False(t, search("zzz", 0))
}

func TestFormatDeploymentOptions(t *testing.T) {
	color.NoColor = true
	options := FormatDeploymentOptions([]*domain.Deployment{{
		Contract:  "VestingWallet",
		Address:   common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3"),
		ChainID:   31337,
		CreatedAt: time.Date(2025, 1, 1, 12, 30, 0, 0, time.UTC),
	}})
	require.Len(t, options, 1)
	assert.Equal(t, "VestingWallet 0x5FbDB2315678afecb367f032d93F642f64180aa3 (chain 31337, 2025-01-01 12:30)", options[0])
}

func TestSelectorNonInteractive(t *testing.T) {
	ctx := context.Background()
	s := NewSelectorAdapter(&config.RuntimeConfig{NonInteractive: true})

	one := &domain.Deployment{ID: "1"}
	got, err := s.SelectDeployment(ctx, []*domain.Deployment{one}, "pick")
	require.NoError(t, err)
	assert.Same(t, one, got)

	_, err = s.SelectDeployment(ctx, []*domain.Deployment{one, {ID: "2"}}, "pick")
	assert.ErrorIs(t, err, ErrNonInteractive)

	_, err = s.SelectDeployment(ctx, nil, "pick")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = s.Confirm(ctx, "deploy?")
	assert.ErrorIs(t, err, ErrNonInteractive)
}
