package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// Default returns the default configuration.
func Default() Config {
	return Config{
		Rules: RulesConfig{
			Size:       4,
			WinTarget:  2048,
			Spawn4Prob: 0.10,
		},
		Log: LogConfig{
			Level: "info",
		},
		UI: UIConfig{
			ShowHelp: true,
		},
	}
}
