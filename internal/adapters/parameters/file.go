package parameters

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/trebuchet-org/vesting-cli/internal/domain"
	"github.com/trebuchet-org/vesting-cli/internal/domain/config"
	"github.com/trebuchet-org/vesting-cli/internal/usecase"
	"gopkg.in/yaml.v3"
)

// FileReader reads deployment parameter overrides from YAML files such as:
//
//	beneficiary: "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"
//	duration: 86400
//	value: 0.5ether
type FileReader struct {
	projectRoot string
}

var _ usecase.ParamsFileReader = (*FileReader)(nil)

// NewFileReader creates a reader resolving relative paths against the project root
func NewFileReader(cfg *config.RuntimeConfig) *FileReader {
	return &FileReader{projectRoot: cfg.ProjectRoot}
}

// Read parses the file at path.
func (r *FileReader) Read(ctx context.Context, path string) (domain.RawParams, error) {
	if !filepath.IsAbs(path) && r.projectRoot != "" {
		path = filepath.Join(r.projectRoot, path)
	}
	data, err := os.ReadFile(path) //nolint:gosec // user supplied params file
	if err != nil {
		return domain.RawParams{}, fmt.Errorf("failed to read params file: %w", err)
	}
	raw, err := Parse(data)
	if err != nil {
		return domain.RawParams{}, fmt.Errorf("%s: %w", path, err)
	}
	return raw, nil
}

// Parse decodes YAML parameter data. Scalars are kept verbatim so large integers and
// unit suffixes reach the domain parsers untouched.
func Parse(data []byte) (domain.RawParams, error) {
	var nodes map[string]yaml.Node
	if err := yaml.Unmarshal(data, &nodes); err != nil {
		return domain.RawParams{}, fmt.Errorf("failed to parse YAML: %w", err)
	}

	var (
		raw     domain.RawParams
		unknown []string
	)
	fields := map[string]*string{
		"beneficiary":   &raw.Beneficiary,
		"start":         &raw.Start,
		"duration":      &raw.Duration,
		"tokenName":     &raw.TokenName,
		"tokenSymbol":   &raw.TokenSymbol,
		"initialSupply": &raw.InitialSupply,
		"value":         &raw.Value,
	}
	for key, node := range nodes {
		dst, ok := fields[key]
		if !ok {
			unknown = append(unknown, key)
			continue
		}
		if node.Kind != yaml.ScalarNode {
			return domain.RawParams{}, fmt.Errorf("%s must be a scalar", key)
		}
		*dst = node.Value
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return domain.RawParams{}, fmt.Errorf("unknown keys: %s", strings.Join(unknown, ", "))
	}
	return raw, nil
}
