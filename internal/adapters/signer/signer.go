package signer

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"log/slog"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi/bind/v2"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/trebuchet-org/vesting-cli/internal/domain"
	"github.com/trebuchet-org/vesting-cli/internal/domain/config"
	"github.com/trebuchet-org/vesting-cli/internal/usecase"
)

// anvilKeys are the well-known development accounts of anvil's default mnemonic
var anvilKeys = []string{
	"ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80",
	"59c6995e998f97a5a0044966f0945389dc9e86dae88c7a8412f4603b6b78690d",
	"5de4111afa1a4b94908f83103eb1f1706367c2e68ca870fc3fb9a804cdab365a",
	"7c852118294e51e653712a81e05800f419141751be58f605c371e15141b007a6",
	"47e179ec197488593b187f80a00eb0da91f1b9d0b13f8733639f19c30a34926a",
}

// Signer holds the private key used to sign deployments. The key is loaded on first use.
type Signer struct {
	cfg     config.SignerConfig
	root    string
	network *config.Network
	log     *slog.Logger

	once sync.Once
	key  *ecdsa.PrivateKey
	err  error
}

var _ usecase.SignerProvider = (*Signer)(nil)

// NewSigner creates a signer from the runtime signer configuration
func NewSigner(cfg *config.RuntimeConfig, log *slog.Logger) *Signer {
	return &Signer{
		cfg:     cfg.Signer,
		root:    cfg.ProjectRoot,
		network: cfg.Network,
		log:     log,
	}
}

// NewKeySigner wraps an existing private key
func NewKeySigner(key *ecdsa.PrivateKey) *Signer {
	s := &Signer{key: key, log: slog.Default()}
	s.once.Do(func() {})
	return s
}

// Address returns the signer's account.
func (s *Signer) Address(ctx context.Context) (common.Address, error) {
	key, err := s.privateKey()
	if err != nil {
		return common.Address{}, err
	}
	return crypto.PubkeyToAddress(key.PublicKey), nil
}

// TransactOpts returns keyed transaction options for chainID.
func (s *Signer) TransactOpts(ctx context.Context, chainID *big.Int) (*bind.TransactOpts, error) {
	key, err := s.privateKey()
	if err != nil {
		return nil, err
	}
	opts := bind.NewKeyedTransactor(key, chainID)
	opts.Context = ctx
	return opts, nil
}

func (s *Signer) privateKey() (*ecdsa.PrivateKey, error) {
	s.once.Do(func() {
		s.key, s.err = s.load()
		if s.err == nil {
			s.log.Debug("signer loaded", "type", s.resolvedType(), "address", crypto.PubkeyToAddress(s.key.PublicKey).Hex())
		}
	})
	return s.key, s.err
}

// resolvedType infers the signer type when none was configured: an explicit key wins,
// then a keystore, then the anvil dev account on local networks.
func (s *Signer) resolvedType() config.SignerType {
	if s.cfg.Type != "" {
		return s.cfg.Type
	}
	switch {
	case s.cfg.PrivateKey != "":
		return config.SignerTypePrivateKey
	case s.cfg.Keystore != "":
		return config.SignerTypeKeystore
	case s.network != nil && s.network.Local:
		return config.SignerTypeAnvil
	}
	return ""
}

func (s *Signer) load() (*ecdsa.PrivateKey, error) {
	switch t := s.resolvedType(); t {
	case config.SignerTypePrivateKey:
		return ParsePrivateKey(os.ExpandEnv(s.cfg.PrivateKey))
	case config.SignerTypeKeystore:
		return s.loadKeystore()
	case config.SignerTypeAnvil:
		return AnvilKey(s.cfg.AnvilAccountIndex)
	case "":
		return nil, fmt.Errorf("%w: set [signer] in vesting.toml or VEST_PRIVATE_KEY", domain.ErrSignerNotConfigured)
	default:
		return nil, fmt.Errorf("unknown signer type %q (expected private_key, keystore or anvil)", t)
	}
}

func (s *Signer) loadKeystore() (*ecdsa.PrivateKey, error) {
	path := os.ExpandEnv(s.cfg.Keystore)
	if !filepath.IsAbs(path) && s.root != "" {
		path = filepath.Join(s.root, path)
	}
	data, err := os.ReadFile(path) //nolint:gosec // configured keystore path
	if err != nil {
		return nil, fmt.Errorf("failed to read keystore: %w", err)
	}

	passwordEnv := s.cfg.PasswordEnv
	if passwordEnv == "" {
		passwordEnv = "VEST_KEYSTORE_PASSWORD"
	}
	key, err := keystore.DecryptKey(data, os.Getenv(passwordEnv))
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt keystore %s (password from $%s): %w", path, passwordEnv, err)
	}
	return key.PrivateKey, nil
}

// ParsePrivateKey parses a hex private key with or without 0x prefix.
func ParsePrivateKey(raw string) (*ecdsa.PrivateKey, error) {
	raw = strings.TrimPrefix(strings.TrimSpace(raw), "0x")
	if raw == "" {
		return nil, fmt.Errorf("%w: private key is empty", domain.ErrSignerNotConfigured)
	}
	key, err := crypto.HexToECDSA(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}
	return key, nil
}

// AnvilKey returns the private key of anvil's default account at index.
func AnvilKey(index int) (*ecdsa.PrivateKey, error) {
	if index < 0 || index >= len(anvilKeys) {
		return nil, fmt.Errorf("anvil account index %d out of range [0, %d)", index, len(anvilKeys))
	}
	return crypto.HexToECDSA(anvilKeys[index])
}
