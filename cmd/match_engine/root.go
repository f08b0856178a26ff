package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gsabatini/match-engine/internal/engine"
	"github.com/gsabatini/match-engine/internal/hierarchy"
	"github.com/gsabatini/match-engine/internal/logger"
	"github.com/gsabatini/match-engine/internal/schemas"
	"github.com/gsabatini/match-engine/internal/weights"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const app = "match_engine"

var (
	// Used for flags.
	cfgFile     string
	weightsFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "Adaptive multi-factor match scoring for candidates and positions",
		Long: `match_engine scores candidate/position pairs across twelve weighted
components, adapting the weight matrix to the candidate's listening reason and
penalizing hierarchical level gaps. It runs as a CLI for one-off evaluations
and rankings, or as a REST API server backed by PostgreSQL.`,
	}
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./match_engine.yaml or ~/.config/match_engine/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&weightsFile, "weights", "w", "", "path to a weight matrix override file")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	_ = viper.BindPFlag("weights.file", rootCmd.PersistentFlags().Lookup("weights"))

	_ = viper.BindEnv("database.url", "MATCH_ENGINE_DATABASE_URL", "DATABASE_URL")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", app))
		}
	}

	adjuster := hierarchy.DefaultAdjusterConfig()
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("database.url", "")
	viper.SetDefault("weights.file", "")
	viper.SetDefault("batch.limit", engine.DefaultBatchLimit)
	viper.SetDefault("hierarchy.overqualified_penalty", adjuster.OverqualifiedPenalty)
	viper.SetDefault("hierarchy.underqualified_penalty", adjuster.UnderqualifiedPenalty)
	viper.SetDefault("hierarchy.max_penalty", adjuster.MaxPenalty)
	viper.SetDefault("hierarchy.mismatch_threshold", adjuster.MismatchThreshold)

	viper.SetEnvPrefix("MATCH_ENGINE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func newLogger() (*zap.Logger, error) {
	return logger.New(viper.GetBool("json"), viper.GetBool("debug"))
}

// engineConfig builds the engine tuning from the resolved configuration.
func engineConfig() engine.Config {
	return engine.Config{
		Adjuster: hierarchy.AdjusterConfig{
			OverqualifiedPenalty:  viper.GetFloat64("hierarchy.overqualified_penalty"),
			UnderqualifiedPenalty: viper.GetFloat64("hierarchy.underqualified_penalty"),
			MaxPenalty:            viper.GetFloat64("hierarchy.max_penalty"),
			MismatchThreshold:     viper.GetInt("hierarchy.mismatch_threshold"),
		},
	}
}

// activeRegistry builds the weight registry the command should score with:
// the defaults, or a full replacement loaded from the configured override file.
func activeRegistry() (*weights.Registry, error) {
	path := viper.GetString("weights.file")
	if path == "" {
		return weights.NewRegistry(), nil
	}

	if schemaPath := schemas.ResolveSchemaPath(schemas.WeightsConfigSchema); schemaPath != "" {
		if err := schemas.ValidateFile(schemaPath, path); err != nil {
			return nil, fmt.Errorf("weights file %s failed schema validation: %w", path, err)
		}
	}

	registry, err := weights.LoadRegistry(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load weights file %s: %w", path, err)
	}
	return registry, nil
}
