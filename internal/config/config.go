// Package config loads nanoalign settings from TOML.
package config

import (
	"fmt"
	"io"
	"math"
	"os"
	"runtime"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/nano-align/nanoalign-go/internal/alignment"
	"github.com/nano-align/nanoalign-go/internal/compare"
	"github.com/nano-align/nanoalign-go/internal/model"
)

// Scoring is the TOML form of an alignment scoring scheme.
type Scoring struct {
	GapOpen        float64 `toml:"gap_open"`
	GapExtend      float64 `toml:"gap_extend"`
	MatchScale     float64 `toml:"match_scale"`
	MatchThreshold float64 `toml:"match_threshold"`
}

// Scoring converts the settings into an alignment scoring scheme.
func (s Scoring) Scoring() (*alignment.Scoring, error) {
	if math.IsNaN(s.MatchScale) || math.IsNaN(s.MatchThreshold) {
		return nil, fmt.Errorf("match parameters must be numbers")
	}
	return alignment.NewScoring(s.GapOpen, s.GapExtend, alignment.LinearMatch(s.MatchScale, s.MatchThreshold))
}

// Server holds the HTTP listener settings.
type Server struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
	// MaxCells caps the dynamic programming cells (len1·len2) of one
	// alignment request.
	MaxCells int64 `toml:"max_cells"`
}

// Addr returns host:port.
func (s Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Config holds every tunable of the tools.
type Config struct {
	Window  int  `toml:"window"`
	Step    int  `toml:"step"`
	Cluster int  `toml:"cluster"`
	Flank   int  `toml:"flank"`
	Reverse bool `toml:"reverse"`
	// Workers bounds concurrent alignments. Zero uses one per CPU.
	Workers int `toml:"workers"`

	Trace  Scoring `toml:"trace"`
	Model  Scoring `toml:"model"`
	Server Server  `toml:"server"`

	// Volumes replaces or adds residue volumes, keyed by one-letter code.
	Volumes map[string]float64 `toml:"volumes,omitempty"`
}

// Default returns the settings used when no file is given.
func Default() *Config {
	return &Config{
		Window:  4,
		Step:    10,
		Cluster: 10,
		Flank:   50,
		Reverse: true,
		Workers: 0,
		Trace: Scoring{
			GapOpen:        -4,
			GapExtend:      -3,
			MatchScale:     100,
			MatchThreshold: 0.1,
		},
		Model: Scoring{
			GapOpen:        -2,
			GapExtend:      -1,
			MatchScale:     100,
			MatchThreshold: 0.1,
		},
		Server: Server{
			Host:     "localhost",
			Port:     8080,
			MaxCells: 4000000,
		},
	}
}

// Load reads a TOML document on top of the defaults. Unknown keys are
// rejected.
func Load(r io.Reader) (*Config, error) {
	conf := Default()

	md, err := toml.NewDecoder(r).Decode(conf)
	if err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}

	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

// LoadFile reads the config at path. An empty path returns the defaults.
func LoadFile(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()

	conf, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return conf, nil
}

// Write encodes the config as TOML.
func (c *Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// Validate checks the ranges of every setting.
func (c *Config) Validate() error {
	if c.Window < 1 {
		return fmt.Errorf("window must be at least 1, got %d", c.Window)
	}
	if c.Step < 1 {
		return fmt.Errorf("step must be at least 1, got %d", c.Step)
	}
	if c.Cluster < 1 {
		return fmt.Errorf("cluster must be at least 1, got %d", c.Cluster)
	}
	if c.Flank < 0 {
		return fmt.Errorf("flank must be non-negative, got %d", c.Flank)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be non-negative, got %d", c.Workers)
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if c.Server.MaxCells < 1 {
		return fmt.Errorf("server max_cells must be positive, got %d", c.Server.MaxCells)
	}
	if _, err := c.Trace.Scoring(); err != nil {
		return fmt.Errorf("trace: %w", err)
	}
	if _, err := c.Model.Scoring(); err != nil {
		return fmt.Errorf("model: %w", err)
	}
	if _, err := c.VolumeTable(); err != nil {
		return fmt.Errorf("volumes: %w", err)
	}
	return nil
}

func (c *Config) volumeOverrides() (map[rune]float64, error) {
	overrides := make(map[rune]float64, len(c.Volumes))
	for key, v := range c.Volumes {
		symbol, size := utf8.DecodeRuneInString(strings.ToUpper(key))
		if size == 0 || size != len(key) {
			return nil, fmt.Errorf("volume key %q must be a single residue", key)
		}
		overrides[symbol] = v
	}
	return overrides, nil
}

// VolumeTable returns the default volumes with the configured overrides
// applied.
func (c *Config) VolumeTable() (*model.VolumeTable, error) {
	overrides, err := c.volumeOverrides()
	if err != nil {
		return nil, err
	}
	if len(overrides) == 0 {
		return model.DefaultVolumes(), nil
	}
	return model.DefaultVolumes().WithOverrides(overrides)
}

// Options converts the config into pipeline options.
func (c *Config) Options() (compare.Options, error) {
	trace, err := c.Trace.Scoring()
	if err != nil {
		return compare.Options{}, fmt.Errorf("trace: %w", err)
	}
	modelScoring, err := c.Model.Scoring()
	if err != nil {
		return compare.Options{}, fmt.Errorf("model: %w", err)
	}

	workers := c.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}

	return compare.Options{
		TraceScoring: trace,
		ModelScoring: modelScoring,
		Step:         c.Step,
		Window:       c.Window,
		Workers:      workers,
	}, nil
}

// Pipeline builds a comparison pipeline from the config.
func (c *Config) Pipeline() (*compare.Pipeline, error) {
	opts, err := c.Options()
	if err != nil {
		return nil, err
	}
	volumes, err := c.VolumeTable()
	if err != nil {
		return nil, err
	}
	return compare.New(opts, model.NewBuilder(volumes))
}

// FlagMerge copies every setting of fileConf into c whose flag was
// not set on the command line. changed reports whether a flag was set.
func (c *Config) FlagMerge(fileConf *Config, changed func(name string) bool) *Config {
	if !changed("window") {
		c.Window = fileConf.Window
	}
	if !changed("step") {
		c.Step = fileConf.Step
	}
	if !changed("cluster") {
		c.Cluster = fileConf.Cluster
	}
	if !changed("flank") {
		c.Flank = fileConf.Flank
	}
	if !changed("reverse") {
		c.Reverse = fileConf.Reverse
	}
	if !changed("workers") {
		c.Workers = fileConf.Workers
	}
	if !changed("gap-open") {
		c.Trace.GapOpen = fileConf.Trace.GapOpen
	}
	if !changed("gap-extend") {
		c.Trace.GapExtend = fileConf.Trace.GapExtend
	}
	if !changed("host") {
		c.Server.Host = fileConf.Server.Host
	}
	if !changed("port") {
		c.Server.Port = fileConf.Server.Port
	}

	c.Trace.MatchScale = fileConf.Trace.MatchScale
	c.Trace.MatchThreshold = fileConf.Trace.MatchThreshold
	c.Model = fileConf.Model
	c.Server.MaxCells = fileConf.Server.MaxCells
	c.Volumes = fileConf.Volumes
	return c
}
