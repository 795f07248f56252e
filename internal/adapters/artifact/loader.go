package artifact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/trebuchet-org/vesting-cli/internal/adapters/abi/bindings"
	"github.com/trebuchet-org/vesting-cli/internal/domain"
	"github.com/trebuchet-org/vesting-cli/internal/domain/config"
)

// bytecodeField accepts both the Foundry object form and the Hardhat string form
type bytecodeField struct {
	Object string `json:"object"`
}

func (b *bytecodeField) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &b.Object)
	}
	type alias bytecodeField
	return json.Unmarshal(data, (*alias)(b))
}

// artifactFile covers the fields we need from Foundry out/ and Hardhat artifacts/ files
type artifactFile struct {
	ContractName string          `json:"contractName"` // hardhat only
	ABI          json.RawMessage `json:"abi"`
	Bytecode     bytecodeField   `json:"bytecode"`
	Metadata     struct {
		Compiler struct {
			Version string `json:"version"`
		} `json:"compiler"`
	} `json:"metadata"` // foundry only
}

// Loader locates and reads the compiled VestingWallet artifact
type Loader struct {
	projectRoot string
	configured  string
	log         *slog.Logger
}

// NewLoader creates a loader rooted at the project directory
func NewLoader(cfg *config.RuntimeConfig, log *slog.Logger) *Loader {
	l := &Loader{projectRoot: cfg.ProjectRoot, log: log}
	if cfg.Project != nil {
		l.configured = cfg.Project.Deploy.Artifact
	}
	return l
}

// CandidatePaths returns the locations searched when no artifact path is configured.
// outDir is the Foundry build directory, relative to projectRoot.
func CandidatePaths(projectRoot, outDir, contractName string) []string {
	return []string{
		filepath.Join(projectRoot, outDir, contractName+".sol", contractName+".json"),
		filepath.Join(projectRoot, "artifacts", "contracts", contractName+".sol", contractName+".json"),
	}
}

// Load reads the artifact from the configured path or the first candidate that exists.
func (l *Loader) Load(ctx context.Context, path string) (*domain.Artifact, error) {
	if path == "" {
		path = l.configured
	}

	var candidates []string
	if path != "" {
		if !filepath.IsAbs(path) {
			path = filepath.Join(l.projectRoot, path)
		}
		candidates = []string{path}
	} else {
		outDir, err := foundryOutDir(l.projectRoot)
		if err != nil {
			return nil, err
		}
		candidates = CandidatePaths(l.projectRoot, outDir, domain.DefaultContractName)
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err != nil {
			continue
		}
		l.log.Debug("loading artifact", "path", candidate)
		return ReadFile(candidate)
	}

	return nil, fmt.Errorf("%w: looked in %s", domain.ErrArtifactNotFound, strings.Join(candidates, ", "))
}

// ReadFile parses a single artifact file and checks it against the VestingWallet interface.
func ReadFile(path string) (*domain.Artifact, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user supplied artifact path
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact: %w", err)
	}

	var raw artifactFile
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse artifact %s: %w", path, err)
	}

	object := strings.TrimSpace(raw.Bytecode.Object)
	if object == "" || object == "0x" {
		return nil, fmt.Errorf("artifact %s has no creation bytecode (abstract contract or interface?)", path)
	}
	if strings.Contains(object, "__") {
		return nil, fmt.Errorf("artifact %s has unlinked library references", path)
	}
	if !strings.HasPrefix(object, "0x") {
		object = "0x" + object
	}
	bytecode, err := hexutil.Decode(object)
	if err != nil {
		return nil, fmt.Errorf("invalid bytecode in %s: %w", path, err)
	}

	if err := checkInterface(raw.ABI); err != nil {
		return nil, fmt.Errorf("artifact %s: %w", path, err)
	}

	name := raw.ContractName
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return &domain.Artifact{
		Name:            name,
		Path:            path,
		ABI:             raw.ABI,
		Bytecode:        bytecode,
		CompilerVersion: raw.Metadata.Compiler.Version,
	}, nil
}

// checkInterface verifies the artifact exposes the constructor and methods we bind to.
func checkInterface(rawABI json.RawMessage) error {
	if len(rawABI) == 0 {
		return fmt.Errorf("missing abi")
	}
	got, err := abi.JSON(bytes.NewReader(rawABI))
	if err != nil {
		return fmt.Errorf("invalid abi: %w", err)
	}
	want, err := bindings.VestingWalletMetaData.ParseABI()
	if err != nil {
		return err
	}

	if len(got.Constructor.Inputs) != len(want.Constructor.Inputs) {
		return fmt.Errorf("constructor takes %d arguments, expected %d", len(got.Constructor.Inputs), len(want.Constructor.Inputs))
	}
	for i, input := range want.Constructor.Inputs {
		if got.Constructor.Inputs[i].Type.String() != input.Type.String() {
			return fmt.Errorf("constructor argument %d is %s, expected %s", i, got.Constructor.Inputs[i].Type, input.Type)
		}
	}

	var missing []string
	for name, method := range want.Methods {
		m, ok := got.Methods[name]
		if !ok || m.Sig != method.Sig {
			missing = append(missing, method.Sig)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("abi is missing %s", strings.Join(missing, ", "))
	}
	return nil
}
