package simulation

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	golog "github.com/tochemey/goakt/v3/log"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a configuration passes the schema but
// breaks an invariant the schema can not express.
var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	// Colony
	NumAnts int `json:"numAnts" yaml:"numAnts"`

	// Evolution strategy
	Threads  int  `json:"threads" yaml:"threads"`
	Parallel bool `json:"parallel" yaml:"parallel"`

	// Framebuffer resolution, the unit square is mapped onto it
	GridWidth   int     `json:"gridWidth" yaml:"gridWidth"`
	GridHeight  int     `json:"gridHeight" yaml:"gridHeight"`
	WindowScale float64 `json:"windowScale" yaml:"windowScale"`

	// Driver
	TicksPerSecond int    `json:"ticksPerSecond" yaml:"ticksPerSecond"`
	LogLevel       string `json:"logLevel" yaml:"logLevel"`

	// Visualization
	ShowPanel   bool    `json:"showPanel" yaml:"showPanel"`
	PulsePeriod float64 `json:"pulsePeriod" yaml:"pulsePeriod"` // ticks, 0 disables ant pulsing
}

func DefaultConfig() *Config {
	return &Config{
		NumAnts:        256,
		Threads:        16,
		Parallel:       true,
		GridWidth:      256,
		GridHeight:     256,
		WindowScale:    3,
		TicksPerSecond: 60,
		LogLevel:       "info",
		ShowPanel:      true,
		PulsePeriod:    0,
	}
}

// Validate checks the invariants the engine relies on.
func (c *Config) Validate() error {
	switch {
	case c.NumAnts < 0:
		return fmt.Errorf("%w: numAnts must be >= 0, got %d", ErrInvalidConfig, c.NumAnts)
	case c.Threads < 1:
		return fmt.Errorf("%w: threads must be >= 1, got %d", ErrInvalidConfig, c.Threads)
	case c.GridWidth < 1 || c.GridHeight < 1:
		return fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", ErrInvalidConfig, c.GridWidth, c.GridHeight)
	case c.WindowScale <= 0:
		return fmt.Errorf("%w: windowScale must be > 0, got %v", ErrInvalidConfig, c.WindowScale)
	case c.TicksPerSecond < 1:
		return fmt.Errorf("%w: ticksPerSecond must be >= 1, got %d", ErrInvalidConfig, c.TicksPerSecond)
	case c.PulsePeriod < 0:
		return fmt.Errorf("%w: pulsePeriod must be >= 0, got %v", ErrInvalidConfig, c.PulsePeriod)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level translates LogLevel for the goakt logger.
func (c *Config) Level() (golog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "", "info":
		return golog.InfoLevel, nil
	case "debug":
		return golog.DebugLevel, nil
	case "error":
		return golog.ErrorLevel, nil
	default:
		return golog.InfoLevel, fmt.Errorf("%w: unknown logLevel %q", ErrInvalidConfig, c.LogLevel)
	}
}

// LoadConfig loads configuration from a JSON or YAML file and validates it
// against the JSON schema. Fields absent from the file keep their defaults.
func LoadConfig(configFile string, schemaFile string) (*Config, error) {
	// 1. Compile Schema
	sch, err := jsonschema.Compile(schemaFile)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	// 2. Read Config File, as JSON bytes whatever the source format
	raw, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	b, err := toJSON(configFile, raw)
	if err != nil {
		return nil, err
	}

	// 3. Validate
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("failed to decode config json: %w", err)
	}
	if err := sch.Validate(v); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// 4. Unmarshal into Struct, over the defaults
	cfg := DefaultConfig()
	if err := json.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// toJSON normalises YAML documents to JSON so a single schema covers both.
func toJSON(name string, raw []byte) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		var doc map[string]interface{}
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode config yaml: %w", err)
		}
		b, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to convert config yaml: %w", err)
		}
		return b, nil
	default:
		return raw, nil
	}
}
