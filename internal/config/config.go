// Package config loads the settings a pruner adapter needs: the
// constructor parameters internal/pruner itself never reads from the
// environment (the core takes them as explicit arguments), plus the
// paths and modes its optional collaborators use.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the complete adapter configuration.
type Config struct {
	Pruner      PrunerConfig      `mapstructure:"pruner"`
	Persistence PersistenceConfig `mapstructure:"persistence"`
	Solver      SolverConfig      `mapstructure:"solver"`
}

// PrunerConfig holds the constructor arguments for the default pruner a
// CLI command builds.
type PrunerConfig struct {
	Dim         int     `mapstructure:"dim"`
	Sense       string  `mapstructure:"sense"` // "min" | "max" | "<=" | ">="
	MaxCuts     int     `mapstructure:"max_cuts"`
	Variant     string  `mapstructure:"variant"` // "average" | "decay" | "levelone"
	NewCutTrust float64 `mapstructure:"new_cut_trust"`
	MyCutBonus  float64 `mapstructure:"my_cut_bonus"`
	Lambda      float64 `mapstructure:"lambda"`
	Tolerance   float64 `mapstructure:"tolerance"`
}

// PersistenceConfig holds the SQLite path snapshots are written to.
type PersistenceConfig struct {
	DBPath string `mapstructure:"db_path"`
}

// SolverConfig selects the optional exact-pruning oracle.
type SolverConfig struct {
	Mode      string  `mapstructure:"mode"` // "null" | "heuristic"
	AngleTol  float64 `mapstructure:"angle_tol"`
	OffsetTol float64 `mapstructure:"offset_tol"`
}

// DefaultConfig returns a new configuration with the module's default
// values.
func DefaultConfig() *Config {
	return &Config{
		Pruner: PrunerConfig{
			Dim:         1,
			Sense:       "max",
			MaxCuts:     50,
			Variant:     "average",
			NewCutTrust: 0.5,
			MyCutBonus:  0.0,
			Lambda:      0.9,
			Tolerance:   1e-6,
		},
		Persistence: PersistenceConfig{
			DBPath: "cutpruner.db",
		},
		Solver: SolverConfig{
			Mode:      "null",
			AngleTol:  1e-9,
			OffsetTol: 1e-9,
		},
	}
}

// Load loads configuration from file, then environment variables, over
// DefaultConfig's values. configPath may be empty, in which case Load
// searches "." and "$HOME/.config/cutpruner" for a "config.yaml".
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("CUTPRUNER")
	v.AutomaticEnv()
	v.BindEnv("pruner.dim", "CUTPRUNER_DIM")
	v.BindEnv("pruner.sense", "CUTPRUNER_SENSE")
	v.BindEnv("pruner.max_cuts", "CUTPRUNER_MAX_CUTS")
	v.BindEnv("pruner.variant", "CUTPRUNER_VARIANT")
	v.BindEnv("persistence.db_path", "CUTPRUNER_DB_PATH")
	v.BindEnv("solver.mode", "CUTPRUNER_SOLVER_MODE")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/cutpruner")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Validate checks that the loaded configuration is usable by the
// constructors in internal/pruner.
func (c *Config) Validate() error {
	switch c.Pruner.Variant {
	case "average", "decay", "levelone":
	default:
		return fmt.Errorf("invalid pruner variant: %s (must be average, decay, or levelone)", c.Pruner.Variant)
	}
	switch c.Solver.Mode {
	case "null", "heuristic":
	default:
		return fmt.Errorf("invalid solver mode: %s (must be null or heuristic)", c.Solver.Mode)
	}
	if c.Pruner.Dim <= 0 {
		return fmt.Errorf("pruner dim must be positive, got %d", c.Pruner.Dim)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("pruner.dim", d.Pruner.Dim)
	v.SetDefault("pruner.sense", d.Pruner.Sense)
	v.SetDefault("pruner.max_cuts", d.Pruner.MaxCuts)
	v.SetDefault("pruner.variant", d.Pruner.Variant)
	v.SetDefault("pruner.new_cut_trust", d.Pruner.NewCutTrust)
	v.SetDefault("pruner.my_cut_bonus", d.Pruner.MyCutBonus)
	v.SetDefault("pruner.lambda", d.Pruner.Lambda)
	v.SetDefault("pruner.tolerance", d.Pruner.Tolerance)
	v.SetDefault("persistence.db_path", d.Persistence.DBPath)
	v.SetDefault("solver.mode", d.Solver.Mode)
	v.SetDefault("solver.angle_tol", d.Solver.AngleTol)
	v.SetDefault("solver.offset_tol", d.Solver.OffsetTol)
}
