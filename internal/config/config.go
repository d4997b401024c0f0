package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"evoschedule/internal/scheduler"
)

// InputConfig names the roster sources: either a single json File or the
// three csv files.
type InputConfig struct {
	File     string `json:"file"`
	Groups   string `json:"groups"`
	Rooms    string `json:"rooms"`
	Teachers string `json:"teachers"`
}

func (c InputConfig) Validate() error {
	if c.File != "" {
		return nil
	}
	if c.Groups == "" || c.Rooms == "" || c.Teachers == "" {
		return fmt.Errorf("input requires either a json file or groups, rooms and teachers csv paths")
	}
	return nil
}

type Config struct {
	Input     InputConfig      `json:"input"`
	Output    string           `json:"output"`
	Scheduler scheduler.Config `json:"scheduler"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.Output == "" {
		c.Output = "schedule.csv"
	}
}

// Load reads json or yaml configuration, chosen by file extension, with
// optional EVOSCHEDULE_-prefixed environment overrides. Scheduler settings
// absent from the file keep their defaults.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	if err := k.Load(env.Provider("EVOSCHEDULE_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "evoschedule_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}

	cfg := Config{Scheduler: scheduler.DefaultConfig()}
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Input.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Scheduler.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
