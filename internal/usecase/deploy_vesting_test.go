package usecase_test

import (
	"context"
	"errors"
	"log/slog"
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/go-cmp/cmp"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/vesting-cli/internal/domain"
	"github.com/trebuchet-org/vesting-cli/internal/domain/config"
	"github.com/trebuchet-org/vesting-cli/internal/usecase"
)

const testNow uint64 = 1_760_000_000

var bigIntComparer = cmp.Comparer(func(a, b *big.Int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Cmp(b) == 0
})

var anvilNetwork = &config.Network{Name: "anvil", ChainID: 31337, RPCURL: "http://localhost:8545", Local: true}

type deployFixture struct {
	cfg       *config.RuntimeConfig
	chain     *fakeChain
	repo      *memRepo
	artifacts *MockArtifactLoader
	params    *MockParamsReader
	confirmer *MockConfirmer
	progress  *MockProgressSink
}

func newDeployFixture() *deployFixture {
	f := &deployFixture{
		cfg:       &config.RuntimeConfig{Network: anvilNetwork, Project: &config.ProjectConfig{}},
		chain:     newFakeChain(testNow),
		repo:      &memRepo{},
		artifacts: new(MockArtifactLoader),
		params:    new(MockParamsReader),
		confirmer: new(MockConfirmer),
		progress:  &MockProgressSink{},
	}
	f.artifacts.On("Load", mock.Anything, mock.Anything).
		Return(&domain.Artifact{Name: "VestingWallet", Bytecode: []byte{0x60}}, nil).Maybe()
	return f
}

func (f *deployFixture) useCase() *usecase.DeployVesting {
	clock := clockwork.NewFakeClockAt(time.Unix(int64(testNow), 0))
	signer := staticSigner{addr: deployerAddr}
	checker := usecase.NewCheckVesting(f.chain, f.chain, signer, f.repo, new(MockSelector), usecase.NopProgress{})
	return usecase.NewDeployVesting(
		f.cfg, clock, signer, f.chain, f.artifacts, f.chain, f.repo, f.params, f.confirmer, checker, f.progress,
		slog.New(slog.DiscardHandler),
	)
}

func TestDeployVesting(t *testing.T) {
	ctx := context.Background()

	t.Run("deploys with defaults on a local network", func(t *testing.T) {
		f := newDeployFixture()

		result, err := f.useCase().Run(ctx, usecase.DeployVestingParams{})
		require.NoError(t, err)

		want := domain.DefaultDeploymentParams(deployerAddr, testNow)
		if diff := cmp.Diff(want, result.Params, bigIntComparer); diff != "" {
			t.Errorf("params mismatch (-want +got):\n%s", diff)
		}

		expectedAddr := crypto.CreateAddress(deployerAddr, 0)
		assert.Equal(t, expectedAddr, result.Address)
		assert.Equal(t, uint64(31337), result.ChainID)
		assert.False(t, result.DryRun)
		require.NotNil(t, result.Tx)

		assert.Equal(t, []string{
			"Deploying contracts with the account: 0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266",
			"Account balance: 1000000000000000000",
		}, f.progress.infos)
		assert.Equal(t, []string{"deploying", "confirming", "deployed"}, f.progress.stages())

		require.Len(t, f.repo.deployments, 1)
		recorded := f.repo.deployments[0]
		assert.Equal(t, "31337/"+expectedAddr.Hex(), recorded.ID)
		assert.Equal(t, "anvil", recorded.Network)
		assert.Equal(t, time.Unix(int64(testNow), 0).UTC(), recorded.CreatedAt)

		wallet := f.chain.wallets[expectedAddr]
		require.NotNil(t, wallet)
		assert.Equal(t, domain.DefaultValue, wallet.balance)

		f.confirmer.AssertNotCalled(t, "Confirm", mock.Anything, mock.Anything)
	})

	t.Run("layers project config, params file and flags", func(t *testing.T) {
		f := newDeployFixture()
		f.cfg.Project.Deploy = config.DeployConfig{
			Artifact:  "build/VestingWallet.json",
			Duration:  100,
			TokenName: "FromConfig",
			Value:     "0.2ether",
		}
		f.params.On("Read", mock.Anything, "params.yaml").
			Return(domain.RawParams{TokenName: "FromFile", InitialSupply: "5"}, nil)

		result, err := f.useCase().Run(ctx, usecase.DeployVestingParams{
			ParamsFile: "params.yaml",
			Overrides:  domain.RawParams{InitialSupply: "7", Start: "1000", Beneficiary: otherAddr.Hex()},
		})
		require.NoError(t, err)

		want := domain.DeploymentParams{
			Beneficiary:   otherAddr,
			Start:         1000,
			Duration:      100,
			TokenName:     "FromFile",
			TokenSymbol:   domain.DefaultTokenSymbol,
			InitialSupply: big.NewInt(7),
			Value:         new(big.Int).Mul(domain.DefaultValue, big.NewInt(2)),
		}
		if diff := cmp.Diff(want, result.Params, bigIntComparer); diff != "" {
			t.Errorf("params mismatch (-want +got):\n%s", diff)
		}
		f.artifacts.AssertCalled(t, "Load", mock.Anything, "build/VestingWallet.json")
	})

	t.Run("dry run predicts the address without sending", func(t *testing.T) {
		f := newDeployFixture()
		f.chain.nonce = 3

		result, err := f.useCase().Run(ctx, usecase.DeployVestingParams{DryRun: true})
		require.NoError(t, err)

		assert.True(t, result.DryRun)
		assert.Equal(t, crypto.CreateAddress(deployerAddr, 3), result.Address)
		assert.Equal(t, uint64(3), result.Nonce)
		assert.Nil(t, result.Tx)
		assert.Empty(t, f.chain.wallets)
		assert.Empty(t, f.repo.deployments)
	})

	t.Run("invalid parameters", func(t *testing.T) {
		f := newDeployFixture()

		_, err := f.useCase().Run(ctx, usecase.DeployVestingParams{
			Overrides: domain.RawParams{Duration: "0", TokenSymbol: " "},
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidParams))
		assert.ErrorContains(t, err, "duration must be greater than zero")
		assert.Empty(t, f.chain.wallets)
	})

	t.Run("unparseable override", func(t *testing.T) {
		f := newDeployFixture()

		_, err := f.useCase().Run(ctx, usecase.DeployVestingParams{
			Overrides: domain.RawParams{Value: "lots"},
		})
		assert.ErrorIs(t, err, domain.ErrInvalidParams)
	})

	t.Run("declined confirmation on a public network", func(t *testing.T) {
		f := newDeployFixture()
		f.cfg.Network = &config.Network{Name: "sepolia", ChainID: 11155111, RPCURL: "https://rpc"}
		f.confirmer.On("Confirm", mock.Anything, mock.MatchedBy(func(p string) bool {
			return strings.Contains(p, "sepolia") && strings.Contains(p, "0.1 ether")
		})).Return(false, nil)

		_, err := f.useCase().Run(ctx, usecase.DeployVestingParams{})
		assert.ErrorIs(t, err, domain.ErrCancelled)
		assert.Empty(t, f.chain.wallets)
		f.confirmer.AssertExpectations(t)
	})

	t.Run("non-interactive sessions skip confirmation", func(t *testing.T) {
		f := newDeployFixture()
		f.cfg.Network = &config.Network{Name: "sepolia", ChainID: 11155111, RPCURL: "https://rpc"}
		f.cfg.NonInteractive = true

		_, err := f.useCase().Run(ctx, usecase.DeployVestingParams{})
		require.NoError(t, err)
		f.confirmer.AssertNotCalled(t, "Confirm", mock.Anything, mock.Anything)
	})

	t.Run("balance below attached value", func(t *testing.T) {
		f := newDeployFixture()
		f.chain.balances[deployerAddr] = big.NewInt(1)

		_, err := f.useCase().Run(ctx, usecase.DeployVestingParams{})
		assert.ErrorContains(t, err, "does not cover the attached value")
		assert.Equal(t, "Account balance: 1", f.progress.infos[1])
	})

	t.Run("no network", func(t *testing.T) {
		f := newDeployFixture()
		f.cfg.Network = nil

		_, err := f.useCase().Run(ctx, usecase.DeployVestingParams{})
		assert.ErrorIs(t, err, domain.ErrNetworkNotConfigured)
	})

	t.Run("missing artifact", func(t *testing.T) {
		f := newDeployFixture()
		f.artifacts = new(MockArtifactLoader)
		f.artifacts.On("Load", mock.Anything, "").Return(nil, domain.ErrArtifactNotFound)

		_, err := f.useCase().Run(ctx, usecase.DeployVestingParams{})
		assert.ErrorIs(t, err, domain.ErrArtifactNotFound)
	})

	t.Run("deploy and check", func(t *testing.T) {
		f := newDeployFixture()

		result, err := f.useCase().Run(ctx, usecase.DeployVestingParams{Check: true})
		require.NoError(t, err)
		require.NotNil(t, result.Check)
		assert.True(t, result.Check.Passed())
		assert.Len(t, result.Check.Outcomes, 7)
	})
}
