package usecase_test

import (
	"context"
	"io"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/mock"
	"github.com/trebuchet-org/vesting-cli/internal/domain"
	"github.com/trebuchet-org/vesting-cli/internal/domain/config"
	"github.com/trebuchet-org/vesting-cli/internal/usecase"
)

var (
	deployerAddr = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	otherAddr    = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
)

// fakeWallet is a deployed VestingWallet with a linear schedule
type fakeWallet struct {
	owner    common.Address
	start    uint64
	duration uint64
	supply   *big.Int
	released *big.Int
	balance  *big.Int
}

func (w *fakeWallet) vested(ts uint64) *big.Int {
	switch {
	case ts < w.start:
		return new(big.Int)
	case ts >= w.start+w.duration:
		return new(big.Int).Set(w.supply)
	default:
		v := new(big.Int).Mul(w.supply, new(big.Int).SetUint64(ts-w.start))
		return v.Div(v, new(big.Int).SetUint64(w.duration))
	}
}

// fakeChain implements both the chain client and the contract over an in-memory state
type fakeChain struct {
	chainID  uint64
	now      uint64
	nonce    uint64
	balances map[common.Address]*big.Int
	wallets  map[common.Address]*fakeWallet
}

var (
	_ usecase.ChainClient     = (*fakeChain)(nil)
	_ usecase.VestingContract = (*fakeChain)(nil)
	_ usecase.VestingDeployer = (*fakeChain)(nil)
)

func newFakeChain(now uint64) *fakeChain {
	return &fakeChain{
		chainID:  31337,
		now:      now,
		balances: map[common.Address]*big.Int{deployerAddr: big.NewInt(1e18)},
		wallets:  map[common.Address]*fakeWallet{},
	}
}

func (c *fakeChain) ChainID(context.Context) (uint64, error) { return c.chainID, nil }

func (c *fakeChain) BalanceAt(_ context.Context, a common.Address) (*big.Int, error) {
	if b, ok := c.balances[a]; ok {
		return new(big.Int).Set(b), nil
	}
	return new(big.Int), nil
}

func (c *fakeChain) LatestBlockTime(context.Context) (uint64, error) { return c.now, nil }

func (c *fakeChain) PredictAddress(_ context.Context, deployer common.Address) (common.Address, uint64, error) {
	return crypto.CreateAddress(deployer, c.nonce), c.nonce, nil
}

func (c *fakeChain) Deploy(ctx context.Context, _ *domain.Artifact, p domain.DeploymentParams) (*domain.PendingDeployment, error) {
	addr, nonce, _ := c.PredictAddress(ctx, deployerAddr)
	c.nonce++
	c.wallets[addr] = &fakeWallet{
		owner:    p.Beneficiary,
		start:    p.Start,
		duration: p.Duration,
		supply:   new(big.Int).Set(p.InitialSupply),
		released: new(big.Int),
		balance:  new(big.Int).Set(p.Value),
	}
	return &domain.PendingDeployment{
		Address:  addr,
		TxHash:   common.BigToHash(big.NewInt(int64(nonce + 1))),
		Nonce:    nonce,
		Deployer: deployerAddr,
	}, nil
}

func (c *fakeChain) WaitDeployed(_ context.Context, pending *domain.PendingDeployment) (*domain.ConfirmedTx, error) {
	return &domain.ConfirmedTx{TxHash: pending.TxHash, BlockNumber: 1, GasUsed: 21000}, nil
}

func (c *fakeChain) wallet(a common.Address) (*fakeWallet, error) {
	w, ok := c.wallets[a]
	if !ok {
		return nil, &domain.RevertError{Reason: ""}
	}
	return w, nil
}

func (c *fakeChain) Owner(_ context.Context, a common.Address) (common.Address, error) {
	w, err := c.wallet(a)
	if err != nil {
		return common.Address{}, err
	}
	return w.owner, nil
}

func (c *fakeChain) Start(_ context.Context, a common.Address) (uint64, error) {
	w, err := c.wallet(a)
	if err != nil {
		return 0, err
	}
	return w.start, nil
}

func (c *fakeChain) Duration(_ context.Context, a common.Address) (uint64, error) {
	w, err := c.wallet(a)
	if err != nil {
		return 0, err
	}
	return w.duration, nil
}

func (c *fakeChain) Released(_ context.Context, a common.Address) (*big.Int, error) {
	w, err := c.wallet(a)
	if err != nil {
		return nil, err
	}
	return new(big.Int).Set(w.released), nil
}

func (c *fakeChain) VestedAmount(_ context.Context, a common.Address, ts uint64) (*big.Int, error) {
	w, err := c.wallet(a)
	if err != nil {
		return nil, err
	}
	return w.vested(ts), nil
}

func (c *fakeChain) Balance(_ context.Context, a common.Address) (*big.Int, error) {
	w, err := c.wallet(a)
	if err != nil {
		return nil, err
	}
	return new(big.Int).Set(w.balance), nil
}

func (c *fakeChain) due(w *fakeWallet) *big.Int {
	return new(big.Int).Sub(w.vested(c.now), w.released)
}

func (c *fakeChain) SimulateRelease(_ context.Context, a common.Address) error {
	w, err := c.wallet(a)
	if err != nil {
		return err
	}
	if c.due(w).Sign() == 0 {
		return &domain.RevertError{Method: "release", Reason: domain.NoReleasableAmountReason}
	}
	return nil
}

func (c *fakeChain) Release(ctx context.Context, a common.Address) (*domain.ConfirmedTx, error) {
	if err := c.SimulateRelease(ctx, a); err != nil {
		return nil, err
	}
	w := c.wallets[a]
	w.released.Add(w.released, c.due(w))
	return &domain.ConfirmedTx{TxHash: common.HexToHash("0x01"), BlockNumber: 2, GasUsed: 50000}, nil
}

type staticSigner struct {
	addr common.Address
	err  error
}

func (s staticSigner) Address(context.Context) (common.Address, error) { return s.addr, s.err }

// memRepo is an in-memory DeploymentRepository
type memRepo struct {
	deployments []*domain.Deployment
}

func (r *memRepo) Save(_ context.Context, d *domain.Deployment) error {
	r.deployments = append(r.deployments, d)
	return nil
}

func (r *memRepo) Get(_ context.Context, ref string) (*domain.Deployment, error) {
	for _, d := range r.deployments {
		if d.MatchesRef(ref) {
			return d, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memRepo) GetByAddress(_ context.Context, chainID uint64, a common.Address) (*domain.Deployment, error) {
	for _, d := range r.deployments {
		if d.ChainID == chainID && d.Address == a {
			return d, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memRepo) List(_ context.Context, f domain.DeploymentFilter) ([]*domain.Deployment, error) {
	var out []*domain.Deployment
	for _, d := range r.deployments {
		if f.Matches(d) {
			out = append(out, d)
		}
	}
	return out, nil
}

// MockConfirmer is a mock implementation of Confirmer
type MockConfirmer struct {
	mock.Mock
}

func (m *MockConfirmer) Confirm(ctx context.Context, prompt string) (bool, error) {
	args := m.Called(ctx, prompt)
	return args.Bool(0), args.Error(1)
}

// MockSelector is a mock implementation of DeploymentSelector
type MockSelector struct {
	mock.Mock
}

func (m *MockSelector) SelectDeployment(ctx context.Context, deployments []*domain.Deployment, prompt string) (*domain.Deployment, error) {
	args := m.Called(ctx, deployments, prompt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Deployment), args.Error(1)
}

// MockArtifactLoader is a mock implementation of ArtifactLoader
type MockArtifactLoader struct {
	mock.Mock
}

func (m *MockArtifactLoader) Load(ctx context.Context, path string) (*domain.Artifact, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Artifact), args.Error(1)
}

// MockParamsReader is a mock implementation of ParamsFileReader
type MockParamsReader struct {
	mock.Mock
}

func (m *MockParamsReader) Read(ctx context.Context, path string) (domain.RawParams, error) {
	args := m.Called(ctx, path)
	return args.Get(0).(domain.RawParams), args.Error(1)
}

// MockNetworkResolver is a mock implementation of NetworkResolver
type MockNetworkResolver struct {
	mock.Mock
}

func (m *MockNetworkResolver) GetNetworks(ctx context.Context) []string {
	return m.Called(ctx).Get(0).([]string)
}

func (m *MockNetworkResolver) ResolveNetwork(ctx context.Context, name string) (*config.Network, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*config.Network), args.Error(1)
}

// MockProber is a mock implementation of ChainIDProber
type MockProber struct {
	mock.Mock
}

func (m *MockProber) ProbeChainID(ctx context.Context, rpcURL string) (uint64, error) {
	args := m.Called(ctx, rpcURL)
	return args.Get(0).(uint64), args.Error(1)
}

// MockAnvilManager is a mock implementation of AnvilManager
type MockAnvilManager struct {
	mock.Mock
}

func (m *MockAnvilManager) Start(ctx context.Context, inst *domain.AnvilInstance) error {
	return m.Called(ctx, inst).Error(0)
}

func (m *MockAnvilManager) Stop(ctx context.Context, inst *domain.AnvilInstance) error {
	return m.Called(ctx, inst).Error(0)
}

func (m *MockAnvilManager) GetStatus(ctx context.Context, inst *domain.AnvilInstance) (*domain.AnvilStatus, error) {
	args := m.Called(ctx, inst)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AnvilStatus), args.Error(1)
}

func (m *MockAnvilManager) StreamLogs(ctx context.Context, inst *domain.AnvilInstance, w io.Writer) error {
	return m.Called(ctx, inst, w).Error(0)
}

// MockProgressSink records progress events
type MockProgressSink struct {
	events []usecase.ProgressEvent
	infos  []string
}

func (m *MockProgressSink) OnProgress(_ context.Context, event usecase.ProgressEvent) {
	m.events = append(m.events, event)
}

func (m *MockProgressSink) Info(message string) { m.infos = append(m.infos, message) }

func (m *MockProgressSink) Error(string) {}

func (m *MockProgressSink) stages() []string {
	stages := make([]string, len(m.events))
	for i, e := range m.events {
		stages[i] = e.Stage
	}
	return stages
}
