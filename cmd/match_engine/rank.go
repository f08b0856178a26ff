package main

import (
	"fmt"
	"os"

	"github.com/gsabatini/match-engine/internal/engine"
	"github.com/gsabatini/match-engine/internal/explain"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank many positions for one candidate",
	Long:  "Evaluates a candidate against every position found in a JSON file or directory, printing the positions ranked by overall match score.",
	RunE:  runRank,
}

var (
	rankCandidate string
	rankPositions string
	rankOutput    string
	rankTop       int
	rankLimit     int
	rankVerbose   bool
)

func init() {
	rankCmd.Flags().StringVarP(&rankCandidate, "candidate", "c", "", "Path to input CandidateRecord JSON file (required)")
	rankCmd.Flags().StringVarP(&rankPositions, "positions", "p", "", "Path to a PositionRecord JSON file, array file, or directory of *.json files (required)")
	rankCmd.Flags().StringVarP(&rankOutput, "out", "o", "", "Path to output ranked MatchResult array JSON file")
	rankCmd.Flags().IntVarP(&rankTop, "top", "t", 0, "Keep only the N best matches (0 keeps all)")
	rankCmd.Flags().IntVar(&rankLimit, "limit", 0, "Max concurrent evaluations (0 uses the configured default)")
	rankCmd.Flags().BoolVarP(&rankVerbose, "verbose", "v", false, "Print the full breakdown for the best match")

	if err := rankCmd.MarkFlagRequired("candidate"); err != nil {
		panic(fmt.Sprintf("failed to mark candidate flag as required: %v", err))
	}
	if err := rankCmd.MarkFlagRequired("positions"); err != nil {
		panic(fmt.Sprintf("failed to mark positions flag as required: %v", err))
	}

	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, _ []string) error {
	// 1. Load CandidateRecord
	candidate, err := loadCandidateFile(rankCandidate)
	if err != nil {
		return err
	}

	// 2. Load PositionRecords
	positions, err := loadPositionsPath(rankPositions)
	if err != nil {
		return err
	}

	// 3. Build the engine with the active weight registry
	registry, err := activeRegistry()
	if err != nil {
		return err
	}

	eng, err := engine.NewWithConfig(registry, engineConfig())
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}

	// 4. Evaluate and rank
	limit := rankLimit
	if limit <= 0 {
		limit = viper.GetInt("batch.limit")
	}

	results, err := eng.EvaluateBatch(cmd.Context(), candidate, positions, limit)
	if err != nil {
		return fmt.Errorf("failed to evaluate positions: %w", err)
	}

	ranked := engine.Rank(results)
	if rankTop > 0 && rankTop < len(ranked) {
		ranked = ranked[:rankTop]
	}

	// 5. Emit the ranking
	printer := explain.NewPrinter(os.Stdout)
	printer.PrintRanking(ranked)
	if rankVerbose && len(ranked) > 0 {
		printer.PrintVerbose(&ranked[0])
	}

	if rankOutput != "" {
		if err := writeJSONFile(rankOutput, ranked); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stdout, "Successfully ranked %d positions to %s\n", len(ranked), rankOutput)
	}

	return nil
}
