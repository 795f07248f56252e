package deployments_test

import (
	"context"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/vesting-cli/internal/adapters/repository/deployments"
	"github.com/trebuchet-org/vesting-cli/internal/domain"
)

var (
	walletAddr   = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	deployerAddr = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
)

func newDeployment(chainID uint64, network string, addr common.Address, createdAt time.Time) *domain.Deployment {
	return &domain.Deployment{
		Contract:  domain.DefaultContractName,
		Address:   addr,
		ChainID:   chainID,
		Network:   network,
		Deployer:  deployerAddr,
		TxHash:    common.HexToHash("0x01"),
		Params:    domain.DefaultDeploymentParams(deployerAddr, uint64(createdAt.Unix())),
		CreatedAt: createdAt,
	}
}

func TestFileRepository(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("save and reload", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), ".vesting")
		repo, err := deployments.NewFileRepository(dir)
		require.NoError(t, err)

		dep := newDeployment(31337, "anvil", walletAddr, now)
		require.NoError(t, repo.Save(ctx, dep))
		assert.Equal(t, "31337/0x5FbDB2315678afecb367f032d93F642f64180aa3", dep.ID)

		_, err = os.Stat(filepath.Join(dir, deployments.DeploymentsFile))
		require.NoError(t, err)

		reopened, err := deployments.NewFileRepository(dir)
		require.NoError(t, err)
		got, err := reopened.Get(ctx, dep.ID)
		require.NoError(t, err)
		assert.Equal(t, dep.Address, got.Address)
		assert.Equal(t, "1000000", got.Params.InitialSupply.String())
		assert.Equal(t, "100000000000000000", got.Params.Value.String())
		assert.True(t, now.Equal(got.CreatedAt))
	})

	t.Run("get by address ref", func(t *testing.T) {
		repo, err := deployments.NewFileRepository(t.TempDir())
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, newDeployment(31337, "anvil", walletAddr, now)))

		got, err := repo.Get(ctx, "0x5fbdb2315678afecb367f032d93f642f64180aa3")
		require.NoError(t, err)
		assert.Equal(t, uint64(31337), got.ChainID)

		got, err = repo.GetByAddress(ctx, 31337, walletAddr)
		require.NoError(t, err)
		assert.Equal(t, "anvil", got.Network)

		_, err = repo.GetByAddress(ctx, 1, walletAddr)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("ambiguous address", func(t *testing.T) {
		repo, err := deployments.NewFileRepository(t.TempDir())
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, newDeployment(31337, "anvil", walletAddr, now)))
		require.NoError(t, repo.Save(ctx, newDeployment(11155111, "sepolia", walletAddr, now)))

		_, err = repo.Get(ctx, walletAddr.Hex())
		assert.ErrorContains(t, err, "ambiguous")
	})

	t.Run("not found", func(t *testing.T) {
		repo, err := deployments.NewFileRepository(t.TempDir())
		require.NoError(t, err)
		_, err = repo.Get(ctx, "nope")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("list filters and orders by creation", func(t *testing.T) {
		repo, err := deployments.NewFileRepository(t.TempDir())
		require.NoError(t, err)

		second := common.HexToAddress("0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512")
		third := common.HexToAddress("0x9fE46736679d2D9a65F0992F2272dE9f3c7fa6e0")
		require.NoError(t, repo.Save(ctx, newDeployment(31337, "anvil", second, now.Add(time.Hour))))
		require.NoError(t, repo.Save(ctx, newDeployment(31337, "anvil", walletAddr, now)))
		require.NoError(t, repo.Save(ctx, newDeployment(11155111, "sepolia", third, now.Add(2*time.Hour))))

		all, err := repo.List(ctx, domain.DeploymentFilter{})
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, walletAddr, all[0].Address)
		assert.Equal(t, second, all[1].Address)
		assert.Equal(t, third, all[2].Address)

		local, err := repo.List(ctx, domain.DeploymentFilter{ChainID: 31337})
		require.NoError(t, err)
		assert.Len(t, local, 2)

		sepolia, err := repo.List(ctx, domain.DeploymentFilter{Network: "SEPOLIA"})
		require.NoError(t, err)
		require.Len(t, sepolia, 1)
		assert.Equal(t, third, sepolia[0].Address)
	})

	t.Run("returned values are copies", func(t *testing.T) {
		repo, err := deployments.NewFileRepository(t.TempDir())
		require.NoError(t, err)
		dep := newDeployment(31337, "anvil", walletAddr, now)
		require.NoError(t, repo.Save(ctx, dep))

		got, err := repo.Get(ctx, dep.ID)
		require.NoError(t, err)
		got.Params.InitialSupply.Set(big.NewInt(1))
		got.Network = "changed"

		again, err := repo.Get(ctx, dep.ID)
		require.NoError(t, err)
		assert.Equal(t, "1000000", again.Params.InitialSupply.String())
		assert.Equal(t, "anvil", again.Network)
	})

	t.Run("corrupt file", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, deployments.DeploymentsFile), []byte("{not json"), 0644))
		_, err := deployments.NewFileRepository(dir)
		assert.ErrorContains(t, err, "failed to load registry")
	})
}
