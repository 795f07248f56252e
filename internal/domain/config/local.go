package config

// LocalConfig is .vesting/config.local.json, per-checkout defaults that are not committed
type LocalConfig struct {
	Network string `json:"network,omitempty"`
}
