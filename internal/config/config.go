// Package config provides YAML-based configuration loading for the
// slither runtime: grid dimensions, frame pacing and input timings.
package config

import "fmt"

// Config contains all tunable parameters for a slither session.
type Config struct {
	Grid   GridConfig   `yaml:"grid"`
	Timing TimingConfig `yaml:"timing"`
	Input  InputConfig  `yaml:"input"`
}

// GridConfig defines the playfield dimensions in cells.
type GridConfig struct {
	Width  uint8 `yaml:"width"`
	Height uint8 `yaml:"height"`
}

// TimingConfig defines frame pacing for the two run loops.
type TimingConfig struct {
	// FrameTimeMs is the simulation step period of the basic engine loop.
	FrameTimeMs uint32 `yaml:"frame_time_ms"`
	// TickMs is the presentation tick period of the TUI loop.
	TickMs uint32 `yaml:"tick_ms"`
}

// InputConfig defines polling and debounce timings for line-sampled input.
type InputConfig struct {
	PollIntervalMs      uint32 `yaml:"poll_interval_ms"`
	DirectionCooldownMs uint32 `yaml:"direction_cooldown_ms"`
	ButtonADebounceMs   uint32 `yaml:"button_a_debounce_ms"`
	ButtonBDebounceMs   uint32 `yaml:"button_b_debounce_ms"`
	QueueCapacity       int    `yaml:"queue_capacity"`
}

// Validate checks that the configuration can drive a session.
func (c Config) Validate() error {
	if c.Grid.Width < 4 || c.Grid.Height < 4 {
		return fmt.Errorf("grid %dx%d is below the 4x4 minimum", c.Grid.Width, c.Grid.Height)
	}
	if c.Timing.FrameTimeMs == 0 {
		return fmt.Errorf("frame_time_ms must be positive")
	}
	if c.Timing.TickMs == 0 {
		return fmt.Errorf("tick_ms must be positive")
	}
	if c.Input.PollIntervalMs == 0 {
		return fmt.Errorf("poll_interval_ms must be positive")
	}
	if c.Input.QueueCapacity <= 0 {
		return fmt.Errorf("queue_capacity must be positive")
	}
	return nil
}
