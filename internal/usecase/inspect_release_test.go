package usecase_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/vesting-cli/internal/domain"
	"github.com/trebuchet-org/vesting-cli/internal/domain/config"
	"github.com/trebuchet-org/vesting-cli/internal/usecase"
)

func TestInspectVesting(t *testing.T) {
	ctx := context.Background()

	t.Run("at chain time", func(t *testing.T) {
		f := newCheckFixture()
		f.chain.now = testNow + domain.DefaultDuration/4
		uc := usecase.NewInspectVesting(f.chain, f.chain, f.repo, f.selector, f.progress)

		result, err := uc.Run(ctx, usecase.InspectVestingParams{Ref: walletAddr.Hex()})
		require.NoError(t, err)

		s := result.State
		assert.Equal(t, deployerAddr, s.Owner)
		assert.Equal(t, testNow, s.Start)
		assert.Equal(t, testNow+domain.DefaultDuration, s.End())
		assert.Equal(t, testNow+domain.DefaultDuration/4, s.At)
		assert.Equal(t, "249999", s.VestedAmount.String())
		assert.Equal(t, "249999", s.Releasable().String())
		assert.Equal(t, domain.DefaultValue.String(), s.Balance.String())
		require.NotNil(t, result.Deployment)
		assert.Equal(t, "anvil", result.Deployment.Network)
	})

	t.Run("at an explicit timestamp", func(t *testing.T) {
		f := newCheckFixture()
		uc := usecase.NewInspectVesting(f.chain, f.chain, f.repo, f.selector, f.progress)

		result, err := uc.Run(ctx, usecase.InspectVestingParams{Ref: walletAddr.Hex(), At: testNow + domain.DefaultDuration + 100})
		require.NoError(t, err)
		assert.Equal(t, "1000000", result.State.VestedAmount.String())
		assert.Equal(t, 1.0, result.State.Progress())
	})

	t.Run("unrecorded wallet", func(t *testing.T) {
		f := newCheckFixture()
		f.repo.deployments = nil
		uc := usecase.NewInspectVesting(f.chain, f.chain, f.repo, f.selector, f.progress)

		result, err := uc.Run(ctx, usecase.InspectVestingParams{Ref: walletAddr.Hex()})
		require.NoError(t, err)
		assert.Nil(t, result.Deployment)
	})
}

func TestReleaseVesting(t *testing.T) {
	ctx := context.Background()
	local := &config.RuntimeConfig{Network: anvilNetwork}

	t.Run("nothing releasable", func(t *testing.T) {
		f := newCheckFixture()
		uc := usecase.NewReleaseVesting(local, f.chain, f.chain, f.repo, f.selector, new(MockConfirmer), f.progress)

		_, err := uc.Run(ctx, usecase.ReleaseVestingParams{Ref: walletAddr.Hex()})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNoReleasableAmount)

		var revert *domain.RevertError
		require.ErrorAs(t, err, &revert)
		assert.Equal(t, "release", revert.Method)
	})

	t.Run("releases what is due", func(t *testing.T) {
		f := newCheckFixture()
		f.chain.now = testNow + domain.DefaultDuration/2
		uc := usecase.NewReleaseVesting(local, f.chain, f.chain, f.repo, f.selector, new(MockConfirmer), f.progress)

		result, err := uc.Run(ctx, usecase.ReleaseVestingParams{Ref: walletAddr.Hex()})
		require.NoError(t, err)
		assert.Equal(t, big.NewInt(500_000), result.Amount)
		assert.Equal(t, walletAddr, result.Wallet)
		assert.Equal(t, uint64(2), result.Tx.BlockNumber)
		assert.Equal(t, []string{"releasing", "complete"}, f.progress.stages())
	})

	t.Run("asks before releasing on a public network", func(t *testing.T) {
		f := newCheckFixture()
		f.chain.now = testNow + domain.DefaultDuration
		public := &config.RuntimeConfig{Network: &config.Network{Name: "sepolia", ChainID: 31337}}
		confirmer := new(MockConfirmer)
		confirmer.On("Confirm", mock.Anything, "Send release() to "+walletAddr.Hex()).Return(false, nil).Once()
		uc := usecase.NewReleaseVesting(public, f.chain, f.chain, f.repo, f.selector, confirmer, f.progress)

		_, err := uc.Run(ctx, usecase.ReleaseVestingParams{Ref: walletAddr.Hex()})
		assert.ErrorIs(t, err, domain.ErrCancelled)
		assert.Equal(t, "0", f.chain.wallets[walletAddr].released.String())

		result, err := uc.Run(ctx, usecase.ReleaseVestingParams{Ref: walletAddr.Hex(), Yes: true})
		require.NoError(t, err)
		assert.Equal(t, "1000000", result.Amount.String())
		confirmer.AssertExpectations(t)
	})
}
