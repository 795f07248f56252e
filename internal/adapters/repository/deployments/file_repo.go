package deployments

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/samber/lo"
	"github.com/trebuchet-org/vesting-cli/internal/domain"
	"github.com/trebuchet-org/vesting-cli/internal/domain/config"
	"github.com/trebuchet-org/vesting-cli/internal/usecase"
)

const (
	DataDir         = ".vesting"
	DeploymentsFile = "deployments.json"
)

// FileRepository stores recorded deployments in .vesting/deployments.json
type FileRepository struct {
	dataDir     string
	mu          sync.RWMutex
	deployments map[string]*domain.Deployment
}

var _ usecase.DeploymentRepository = (*FileRepository)(nil)

// NewFileRepository opens the registry under dataDir, creating nothing until the first save
func NewFileRepository(dataDir string) (*FileRepository, error) {
	r := &FileRepository{
		dataDir:     dataDir,
		deployments: make(map[string]*domain.Deployment),
	}
	if err := r.load(); err != nil {
		return nil, fmt.Errorf("failed to load registry: %w", err)
	}
	return r, nil
}

// ProvideFileRepository opens the registry in the runtime data directory
func ProvideFileRepository(cfg *config.RuntimeConfig) (*FileRepository, error) {
	dir := cfg.DataDir
	if dir == "" {
		dir = filepath.Join(cfg.ProjectRoot, DataDir)
	}
	return NewFileRepository(dir)
}

func (r *FileRepository) path() string {
	return filepath.Join(r.dataDir, DeploymentsFile)
}

func (r *FileRepository) load() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path())
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}
	return json.Unmarshal(data, &r.deployments)
}

// save writes the registry via a temp file and rename. Callers hold the write lock.
func (r *FileRepository) save() error {
	if err := os.MkdirAll(r.dataDir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", r.dataDir, err)
	}

	data, err := json.MarshalIndent(r.deployments, "", "  ")
	if err != nil {
		return err
	}

	tmpPath := r.path() + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmpPath, r.path())
}

// Save inserts or replaces a deployment, keyed by its ID.
func (r *FileRepository) Save(ctx context.Context, deployment *domain.Deployment) error {
	if deployment.ID == "" {
		deployment.ID = domain.DeploymentID(deployment.ChainID, deployment.Address)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	previous, existed := r.deployments[deployment.ID]
	r.deployments[deployment.ID] = clone(deployment)
	if err := r.save(); err != nil {
		if existed {
			r.deployments[deployment.ID] = previous
		} else {
			delete(r.deployments, deployment.ID)
		}
		return fmt.Errorf("failed to save deployment: %w", err)
	}
	return nil
}

// Get finds a deployment by ID or address. An address recorded on several chains is ambiguous.
func (r *FileRepository) Get(ctx context.Context, ref string) (*domain.Deployment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if dep, ok := r.deployments[ref]; ok {
		return clone(dep), nil
	}

	matches := lo.Filter(r.sorted(), func(d *domain.Deployment, _ int) bool {
		return d.MatchesRef(ref)
	})
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("deployment %q: %w", ref, domain.ErrNotFound)
	case 1:
		return clone(matches[0]), nil
	default:
		ids := lo.Map(matches, func(d *domain.Deployment, _ int) string { return d.ID })
		return nil, fmt.Errorf("deployment %q is ambiguous, use one of: %s", ref, strings.Join(ids, ", "))
	}
}

// GetByAddress finds the deployment at address on chainID.
func (r *FileRepository) GetByAddress(ctx context.Context, chainID uint64, address common.Address) (*domain.Deployment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	dep, ok := r.deployments[domain.DeploymentID(chainID, address)]
	if !ok {
		return nil, fmt.Errorf("deployment at address %s not found on chain %d: %w", address.Hex(), chainID, domain.ErrNotFound)
	}
	return clone(dep), nil
}

// List returns the deployments passing filter, oldest first.
func (r *FileRepository) List(ctx context.Context, filter domain.DeploymentFilter) ([]*domain.Deployment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return lo.FilterMap(r.sorted(), func(d *domain.Deployment, _ int) (*domain.Deployment, bool) {
		if !filter.Matches(d) {
			return nil, false
		}
		return clone(d), true
	}), nil
}

func (r *FileRepository) sorted() []*domain.Deployment {
	deps := lo.Values(r.deployments)
	slices.SortFunc(deps, func(a, b *domain.Deployment) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return deps
}

func clone(d *domain.Deployment) *domain.Deployment {
	c := *d
	if d.Params.InitialSupply != nil {
		c.Params.InitialSupply = new(big.Int).Set(d.Params.InitialSupply)
	}
	if d.Params.Value != nil {
		c.Params.Value = new(big.Int).Set(d.Params.Value)
	}
	return &c
}
