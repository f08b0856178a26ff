package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gsabatini/match-engine/internal/engine"
	"github.com/gsabatini/match-engine/internal/explain"
	"github.com/spf13/cobra"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Score a single candidate/position pair",
	Long:  "Evaluates one candidate against one position, producing a MatchResult JSON with the overall score, tier, per-component breakdown, and hierarchical level analysis.",
	RunE:  runEvaluate,
}

var (
	evaluateCandidate string
	evaluatePosition  string
	evaluateOutput    string
	evaluateVerbose   bool
)

func init() {
	evaluateCmd.Flags().StringVarP(&evaluateCandidate, "candidate", "c", "", "Path to input CandidateRecord JSON file (required)")
	evaluateCmd.Flags().StringVarP(&evaluatePosition, "position", "p", "", "Path to input PositionRecord JSON file (required)")
	evaluateCmd.Flags().StringVarP(&evaluateOutput, "out", "o", "", "Path to output MatchResult JSON file (default: stdout)")
	evaluateCmd.Flags().BoolVarP(&evaluateVerbose, "verbose", "v", false, "Print a human-readable score breakdown")

	if err := evaluateCmd.MarkFlagRequired("candidate"); err != nil {
		panic(fmt.Sprintf("failed to mark candidate flag as required: %v", err))
	}
	if err := evaluateCmd.MarkFlagRequired("position"); err != nil {
		panic(fmt.Sprintf("failed to mark position flag as required: %v", err))
	}

	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(_ *cobra.Command, _ []string) error {
	// 1. Load CandidateRecord
	candidate, err := loadCandidateFile(evaluateCandidate)
	if err != nil {
		return err
	}

	// 2. Load PositionRecord
	position, err := loadPositionFile(evaluatePosition)
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

	// 4. Evaluate the pair
	result := eng.Evaluate(candidate, position)

	// 5. Emit the result
	if evaluateOutput != "" {
		if err := writeJSONFile(evaluateOutput, result); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stdout, "Successfully evaluated %s against %s: %.3f (%s), written to %s\n",
			result.CandidateID, result.PositionID, result.Overall, result.Tier, evaluateOutput)
	} else if !evaluateVerbose {
		jsonOutput, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal match result to JSON: %w", err)
		}
		fmt.Println(string(jsonOutput))
	}

	if evaluateVerbose {
		explain.NewPrinter(os.Stdout).PrintVerbose(&result)
	}

	return nil
}
