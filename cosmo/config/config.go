// Package config holds the explicit run configuration of graphmetrics.
//
// Sources, lowest precedence first: Default, a YAML file (LoadFile), the
// environment (ApplyEnv, optionally seeded from a .env file with
// LoadDotEnv), command-line flags (applied by the caller).
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlath/cosmo/keypath"
	"github.com/katalvlaran/lvlath/cosmo/metrics"
	"github.com/katalvlaran/lvlath/efficiency"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// EnvPrefix prefixes every environment variable read by ApplyEnv.
const EnvPrefix = "GRAPHMETRICS_"

// Config is one run's configuration.
type Config struct {
	GraphsRoot      string   `yaml:"graphs_root"`
	Output          string   `yaml:"output"`
	Snapshot        string   `yaml:"snapshot"`
	Snapshots       []string `yaml:"snapshots"`
	Workers         int      `yaml:"workers"`
	GraphExt        string   `yaml:"graph_ext"`
	WeightAttr      string   `yaml:"weight_attr"`
	LaplacianName   string   `yaml:"laplacian_name"`
	Cutoff          *float64 `yaml:"cutoff"`
	EfficiencyPairs string   `yaml:"efficiency_pairs"`
	LogMode         string   `yaml:"log_mode"`
	MetricsTextfile string   `yaml:"metrics_textfile"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		GraphsRoot:      "./quijote/grafos",
		Snapshot:        "000",
		Snapshots:       []string{"000", "001", "002", "003", "004"},
		Workers:         4,
		GraphExt:        ".xml",
		WeightAttr:      "distance",
		LaplacianName:   "laplacian_{snapshot}.npz",
		EfficiencyPairs: efficiency.PairsAll.String(),
		LogMode:         "dev",
	}
}

// LoadFile overlays the YAML document at path onto c. Keys absent from the
// file keep their current value; unknown keys are an error.
func (c *Config) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(c); err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}

	return nil
}

// LoadDotEnv loads .env style files into the process environment without
// overriding variables already set. Missing files are skipped.
func LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("config: %s: %w", p, err)
		}
	}

	return nil
}

// ApplyEnv overlays GRAPHMETRICS_* variables found by lookup (os.LookupEnv
// in production) onto c.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(EnvPrefix + name); ok {
			*dst = v
		}
	}
	str("ROOT", &c.GraphsRoot)
	str("OUTPUT", &c.Output)
	str("SNAPNUM", &c.Snapshot)
	str("GRAPH_EXT", &c.GraphExt)
	str("WEIGHT_ATTR", &c.WeightAttr)
	str("LAPLACIAN_NAME", &c.LaplacianName)
	str("PAIRS", &c.EfficiencyPairs)
	str("LOG_MODE", &c.LogMode)
	str("METRICS_TEXTFILE", &c.MetricsTextfile)

	if v, ok := lookup(EnvPrefix + "SNAPSHOTS"); ok {
		c.Snapshots = splitList(v)
	}
	if v, ok := lookup(EnvPrefix + "WORKERS"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %sWORKERS=%q", ErrInvalid, EnvPrefix, v)
		}
		c.Workers = n
	}
	if v, ok := lookup(EnvPrefix + "CUTOFF"); ok {
		if strings.TrimSpace(v) == "" {
			c.Cutoff = nil
		} else {
			f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				return fmt.Errorf("%w: %sCUTOFF=%q", ErrInvalid, EnvPrefix, v)
			}
			c.Cutoff = &f
		}
	}

	return nil
}

// OutputPath returns Output, or metrics_<snapshot>.json under GraphsRoot.
func (c Config) OutputPath() string {
	if c.Output != "" {
		return c.Output
	}

	return filepath.Join(c.GraphsRoot, "metrics_"+c.Snapshot+".json")
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.GraphsRoot == "":
		return fmt.Errorf("%w: graphs root is empty", ErrInvalid)
	case !keypath.IsIndex(c.Snapshot):
		return fmt.Errorf("%w: snapshot %q must be digits", ErrInvalid, c.Snapshot)
	case len(c.Snapshots) > 0 && !contains(c.Snapshots, c.Snapshot):
		return fmt.Errorf("%w: snapshot %q not in %v", ErrInvalid, c.Snapshot, c.Snapshots)
	case c.Workers < 1:
		return fmt.Errorf("%w: workers must be ≥ 1, got %d", ErrInvalid, c.Workers)
	case !strings.HasPrefix(c.GraphExt, "."):
		return fmt.Errorf("%w: graph extension %q must start with '.'", ErrInvalid, c.GraphExt)
	case c.Cutoff != nil && (*c.Cutoff < 0 || math.IsNaN(*c.Cutoff)):
		return fmt.Errorf("%w: cutoff must be non-negative, got %g", ErrInvalid, *c.Cutoff)
	}
	if _, err := efficiency.ParsePairPolicy(c.EfficiencyPairs); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

// MetricOptions converts the metric-related fields. Call Validate first.
func (c Config) MetricOptions() (metrics.Options, error) {
	opts := metrics.DefaultOptions()
	pairs, err := efficiency.ParsePairPolicy(c.EfficiencyPairs)
	if err != nil {
		return opts, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	opts.Pairs = pairs
	if c.Cutoff != nil {
		opts.Cutoff = *c.Cutoff
	}

	return opts, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}

	return out
}

func contains(xs []string, x string) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}

	return false
}
