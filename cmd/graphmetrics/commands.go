package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlath/cosmo/config"
	"github.com/katalvlaran/lvlath/cosmo/discovery"
)

// cliFlags mirrors the flag set; only flags the user set override config.
type cliFlags struct {
	configPath string
	envFile    string

	root            string
	snapshot        string
	workers         int
	output          string
	cutoff          float64
	pairs           string
	logMode         string
	metricsTextfile string
}

func newRootCmd(out io.Writer) *cobra.Command {
	var f cliFlags
	cmd := &cobra.Command{
		Use:           "graphmetrics",
		Short:         "Compute graph metrics for one snapshot and merge them into the results document",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, f)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg, out)
		},
	}
	cmd.SetOut(out)

	pf := cmd.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&f.envFile, "env-file", ".env", "dotenv file seeding GRAPHMETRICS_* variables")
	pf.StringVar(&f.root, "root", "", "root directory of the graph artifacts")
	pf.StringVar(&f.logMode, "log-mode", "", "dev or prod")

	fl := cmd.Flags()
	fl.StringVar(&f.snapshot, "snapnum", "", "snapshot to process, e.g. 000")
	fl.IntVarP(&f.workers, "workers", "w", 0, "number of concurrent workers")
	fl.StringVarP(&f.output, "output", "o", "", "results document (default <root>/metrics_<snapnum>.json)")
	fl.Float64Var(&f.cutoff, "cutoff", 0, "path length cutoff for closeness and betweenness")
	fl.StringVar(&f.pairs, "pairs", "", "global efficiency pair policy: all or reachable")
	fl.StringVar(&f.metricsTextfile, "metrics-textfile", "", "write run telemetry in Prometheus text format to this file")

	cmd.AddCommand(newSnapshotsCmd(&f))

	return cmd
}

func newSnapshotsCmd(f *cliFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "snapshots",
		Short: "List the snapshots present under the root directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, *f)
			if err != nil {
				return err
			}
			snaps, err := discovery.Snapshots(cfg.GraphsRoot, cfg.GraphExt)
			if err != nil {
				return err
			}
			for _, s := range snaps {
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
			return nil
		},
	}
}

// resolveConfig layers defaults, the YAML file, the environment and the
// flags the user actually set.
func resolveConfig(cmd *cobra.Command, f cliFlags) (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		if err := cfg.LoadFile(f.configPath); err != nil {
			return cfg, err
		}
	}
	if f.envFile != "" {
		if err := config.LoadDotEnv(f.envFile); err != nil {
			return cfg, err
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}

	changed := cmd.Flags().Changed
	if changed("root") {
		cfg.GraphsRoot = f.root
	}
	if changed("snapnum") {
		cfg.Snapshot = f.snapshot
	}
	if changed("workers") {
		cfg.Workers = f.workers
	}
	if changed("output") {
		cfg.Output = f.output
	}
	if changed("cutoff") {
		c := f.cutoff
		cfg.Cutoff = &c
	}
	if changed("pairs") {
		cfg.EfficiencyPairs = f.pairs
	}
	if changed("log-mode") {
		cfg.LogMode = f.logMode
	}
	if changed("metrics-textfile") {
		cfg.MetricsTextfile = f.metricsTextfile
	}

	return cfg, cfg.Validate()
}
