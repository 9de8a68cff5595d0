// Package config loads application settings through viper: defaults, an optional
// TOML file and REORDER_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/viper"

	"github.com/lixenwraith/reorder/core"
	"github.com/lixenwraith/reorder/engine"
)

// EnvPrefix is prepended to every environment override, REORDER_ENGINE_OPACITY etc.
const EnvPrefix = "REORDER"

// Config is the root application configuration
type Config struct {
	Logger LoggerConfig `mapstructure:"logger"`
	Engine EngineConfig `mapstructure:"engine"`
	Audio  AudioConfig  `mapstructure:"audio"`
	Board  BoardConfig  `mapstructure:"board"`
	UI     UIConfig     `mapstructure:"ui"`
}

// LoggerConfig controls the zap logger and its rotated file output
type LoggerConfig struct {
	Level       string `mapstructure:"level"`
	Format      string `mapstructure:"format"`
	AddSource   bool   `mapstructure:"add_source"`
	ServiceName string `mapstructure:"service_name"`
	LogFile     string `mapstructure:"log_file"`
	MaxSize     int    `mapstructure:"max_size"`
	MaxBackups  int    `mapstructure:"max_backups"`
	MaxAge      int    `mapstructure:"max_age"`
	Compress    bool   `mapstructure:"compress"`
	// Console enables the stderr core, off by default since the TUI owns the terminal
	Console bool `mapstructure:"console"`
}

// EngineConfig mirrors engine.Config in file-friendly types
type EngineConfig struct {
	AnimationDuration time.Duration `mapstructure:"animation_duration"`
	Opacity           float64       `mapstructure:"opacity"`
	Scale             float64       `mapstructure:"scale"`
	ShadowColor       string        `mapstructure:"shadow_color"`
	ShadowOpacity     float64       `mapstructure:"shadow_opacity"`
	ShadowRadius      float64       `mapstructure:"shadow_radius"`
	ShadowOffsetX     float64       `mapstructure:"shadow_offset_x"`
	ShadowOffsetY     float64       `mapstructure:"shadow_offset_y"`
	AutoScroll        bool          `mapstructure:"auto_scroll"`
	MinPressDuration  time.Duration `mapstructure:"min_press_duration"`
	AllowableMovement float64       `mapstructure:"allowable_movement"`
	ScrollThreshold   float64       `mapstructure:"scroll_threshold"`
	ScrollMinVelocity float64       `mapstructure:"scroll_min_velocity"`
	ScrollMaxVelocity float64       `mapstructure:"scroll_max_velocity"`
}

// AudioConfig controls pick-up and drop cues
type AudioConfig struct {
	Enabled      bool          `mapstructure:"enabled"`
	Volume       float64       `mapstructure:"volume"`
	SampleRate   int           `mapstructure:"sample_rate"`
	PickupFreq   float64       `mapstructure:"pickup_freq"`
	DropFreq     float64       `mapstructure:"drop_freq"`
	TransferFreq float64       `mapstructure:"transfer_freq"`
	CueDuration  time.Duration `mapstructure:"cue_duration"`
}

// BoardConfig selects the demo board and its layout in terminal cells
type BoardConfig struct {
	File        string `mapstructure:"file"`
	ColumnWidth int    `mapstructure:"column_width"`
	ColumnGap   int    `mapstructure:"column_gap"`
	CardHeight  int    `mapstructure:"card_height"`
	CardSpacing int    `mapstructure:"card_spacing"`
	// Paged shows one column at a time in a horizontal pager instead of side by side
	Paged       bool `mapstructure:"paged"`
	PagePadding int  `mapstructure:"page_padding"`
}

// UIConfig controls the host frame loop
type UIConfig struct {
	FPS        int     `mapstructure:"fps"`
	RedrawRate float64 `mapstructure:"redraw_rate"`
	Mouse      bool    `mapstructure:"mouse"`
}

// SetDefaults registers every default value on v
func SetDefaults(v *viper.Viper) {
	// -- Logger --
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "reorder-board")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 7)
	v.SetDefault("logger.compress", false)
	v.SetDefault("logger.console", false)

	// -- Engine --
	d := engine.DefaultConfig()
	v.SetDefault("engine.animation_duration", d.AnimationDuration.String())
	v.SetDefault("engine.opacity", d.Opacity)
	v.SetDefault("engine.scale", d.Scale)
	v.SetDefault("engine.shadow_color", d.ShadowColor.Hex())
	v.SetDefault("engine.shadow_opacity", d.ShadowOpacity)
	v.SetDefault("engine.shadow_radius", d.ShadowRadius)
	v.SetDefault("engine.shadow_offset_x", d.ShadowOffset.X)
	v.SetDefault("engine.shadow_offset_y", d.ShadowOffset.Y)
	v.SetDefault("engine.auto_scroll", d.AutoScroll)
	v.SetDefault("engine.min_press_duration", d.MinPressDuration.String())
	v.SetDefault("engine.allowable_movement", d.AllowableMovement)
	v.SetDefault("engine.scroll_threshold", d.ScrollThreshold)
	v.SetDefault("engine.scroll_min_velocity", d.ScrollMinVelocity)
	v.SetDefault("engine.scroll_max_velocity", d.ScrollMaxVelocity)

	// -- Audio --
	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", 0.4)
	v.SetDefault("audio.sample_rate", 44100)
	v.SetDefault("audio.pickup_freq", 660.0)
	v.SetDefault("audio.drop_freq", 440.0)
	v.SetDefault("audio.transfer_freq", 880.0)
	v.SetDefault("audio.cue_duration", "60ms")

	// -- Board --
	v.SetDefault("board.file", "")
	v.SetDefault("board.column_width", 24)
	v.SetDefault("board.column_gap", 2)
	v.SetDefault("board.card_height", 3)
	v.SetDefault("board.card_spacing", 1)
	v.SetDefault("board.paged", false)
	v.SetDefault("board.page_padding", 20)

	// -- UI --
	v.SetDefault("ui.fps", 60)
	v.SetDefault("ui.redraw_rate", 60.0)
	v.SetDefault("ui.mouse", true)
}

// NewDefaultConfig returns the configuration built from defaults alone
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// NewViper creates a viper instance with defaults and environment binding
// A non-empty path is read as the config file, otherwise ./reorder.toml is tried
func NewViper(path string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("reorder")
		v.SetConfigType("toml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return v, nil
}

// NewConfigFromViper decodes and validates the configuration held by v
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Load is NewViper followed by NewConfigFromViper
func Load(path string) (*Config, error) {
	v, err := NewViper(path)
	if err != nil {
		return nil, err
	}
	return NewConfigFromViper(v)
}

// Validate checks every section for sane values
func (c *Config) Validate() error {
	if _, err := c.Engine.EngineConfig(); err != nil {
		return fmt.Errorf("engine configuration invalid: %w", err)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio.volume must be between 0.0 and 1.0")
	}
	if c.Audio.Enabled && c.Audio.SampleRate <= 0 {
		return fmt.Errorf("audio.sample_rate must be a positive integer")
	}
	if c.Audio.CueDuration < 0 {
		return fmt.Errorf("audio.cue_duration must not be negative")
	}
	if c.Board.ColumnWidth <= 0 || c.Board.CardHeight <= 0 {
		return fmt.Errorf("board.column_width and board.card_height must be positive integers")
	}
	if c.Board.CardSpacing < 0 || c.Board.ColumnGap < 0 || c.Board.PagePadding < 0 {
		return fmt.Errorf("board spacing values must not be negative")
	}
	if c.UI.FPS <= 0 {
		return fmt.Errorf("ui.fps must be a positive integer")
	}
	if c.UI.RedrawRate <= 0 {
		return fmt.Errorf("ui.redraw_rate must be positive")
	}
	return nil
}

// EngineConfig converts the file representation into a validated engine.Config
func (e EngineConfig) EngineConfig() (engine.Config, error) {
	shadow, err := colorful.Hex(e.ShadowColor)
	if err != nil {
		return engine.Config{}, fmt.Errorf("engine.shadow_color %q: %w", e.ShadowColor, err)
	}
	cfg := engine.Config{
		AnimationDuration: e.AnimationDuration,
		Opacity:           e.Opacity,
		Scale:             e.Scale,
		ShadowColor:       shadow,
		ShadowOpacity:     e.ShadowOpacity,
		ShadowRadius:      e.ShadowRadius,
		ShadowOffset:      core.Pt(e.ShadowOffsetX, e.ShadowOffsetY),
		AutoScroll:        e.AutoScroll,
		MinPressDuration:  e.MinPressDuration,
		AllowableMovement: e.AllowableMovement,
		ScrollThreshold:   e.ScrollThreshold,
		ScrollMinVelocity: e.ScrollMinVelocity,
		ScrollMaxVelocity: e.ScrollMaxVelocity,
	}
	if err := cfg.Validate(); err != nil {
		return engine.Config{}, err
	}
	return cfg, nil
}
