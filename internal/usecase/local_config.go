package usecase

import (
	"context"
	"fmt"
	"strings"
)

// LocalConfigResult describes a change to the local config
type LocalConfigResult struct {
	Key        string
	Value      string
	Previous   string
	ConfigPath string
}

// SetConfig sets a value in .vesting/config.local.json
type SetConfig struct {
	store    LocalConfigRepository
	networks NetworkResolver
}

// NewSetConfig creates a new SetConfig use case
func NewSetConfig(store LocalConfigRepository, networks NetworkResolver) *SetConfig {
	return &SetConfig{store: store, networks: networks}
}

// Run executes the use case
func (uc *SetConfig) Run(ctx context.Context, key, value string) (*LocalConfigResult, error) {
	cfg, err := uc.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	result := &LocalConfigResult{Key: normalizeKey(key), Value: value, ConfigPath: uc.store.GetPath()}
	switch result.Key {
	case "network":
		if _, err := uc.networks.ResolveNetwork(ctx, value); err != nil {
			return nil, err
		}
		result.Previous = cfg.Network
		cfg.Network = value
	default:
		return nil, unknownKey(key)
	}

	if err := uc.store.Save(ctx, cfg); err != nil {
		return nil, err
	}
	return result, nil
}

// RemoveConfig clears a value in .vesting/config.local.json
type RemoveConfig struct {
	store LocalConfigRepository
}

// NewRemoveConfig creates a new RemoveConfig use case
func NewRemoveConfig(store LocalConfigRepository) *RemoveConfig {
	return &RemoveConfig{store: store}
}

// Run executes the use case
func (uc *RemoveConfig) Run(ctx context.Context, key string) (*LocalConfigResult, error) {
	cfg, err := uc.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	result := &LocalConfigResult{Key: normalizeKey(key), ConfigPath: uc.store.GetPath()}
	switch result.Key {
	case "network":
		result.Previous = cfg.Network
		cfg.Network = ""
	default:
		return nil, unknownKey(key)
	}

	if err := uc.store.Save(ctx, cfg); err != nil {
		return nil, err
	}
	return result, nil
}

func normalizeKey(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "net" || key == "n" {
		return "network"
	}
	return key
}

func unknownKey(key string) error {
	return fmt.Errorf("unknown config key %q (available: network)", key)
}
