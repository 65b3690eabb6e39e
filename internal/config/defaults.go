package config

import (
	_ "embed"
)

//go:embed defaults/slither.yaml
var defaultSlitherYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Width:  40,
			Height: 22,
		},
		Timing: TimingConfig{
			FrameTimeMs: 150,
			TickMs:      30,
		},
		Input: InputConfig{
			PollIntervalMs:      20,
			DirectionCooldownMs: 150,
			ButtonADebounceMs:   200,
			ButtonBDebounceMs:   100,
			QueueCapacity:       10,
		},
	}
}
