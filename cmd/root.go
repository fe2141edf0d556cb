package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pygrounds/adaptive/internal/config"
	"github.com/pygrounds/adaptive/internal/engine"
	"github.com/pygrounds/adaptive/internal/selection"
	"github.com/pygrounds/adaptive/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "adaptive",
	Short: "Adaptive learning core",
	Long:  "Adaptive — individualized mastery estimation and item selection for practice sessions.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PYGROUNDS_DB env var)")

	rootCmd.AddCommand(recalibrateCmd)
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then the config file, then PYGROUNDS_DB / the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.Database.Path != "" {
		return cfg.Database.Path, store.EnsureDir(cfg.Database.Path)
	}
	return store.DefaultDBPath()
}

func newLogger(cfg *config.Config) *logrus.Logger {
	log := logrus.New()
	if lvl, err := logrus.ParseLevel(cfg.Log.Level); err == nil {
		log.SetLevel(lvl)
	}
	if cfg.Log.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	}
	return log
}

func newPolicy(cfg *config.Config) (selection.Policy, error) {
	seed := cfg.Selection.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	switch cfg.Selection.Policy {
	case "", "eig":
		return selection.NewSampler(selection.DefaultConfig(), rng), nil
	case "goldilocks":
		return selection.NewGoldilocks(rng), nil
	default:
		return nil, fmt.Errorf("unknown selection policy %q", cfg.Selection.Policy)
	}
}

// openEngine loads config, opens the store, and wires the engine. The
// caller must Close the returned store.
func openEngine(cmd *cobra.Command) (*store.Store, *engine.Engine, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	policy, err := newPolicy(cfg)
	if err != nil {
		st.Close()
		return nil, nil, err
	}

	eng := engine.New(engine.Deps{
		Mastery:    st.Mastery(),
		LearnRates: st.LearnRates(),
		Abilities:  st.Abilities(),
		Rollups:    st.Rollups(),
		Hierarchy:  st.Hierarchy(),
		Items:      st.Items(),
		Events:     st.Events(),
	}, policy, newLogger(cfg))

	return st, eng, nil
}
