package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gsabatini/match-engine/internal/schemas"
	"github.com/gsabatini/match-engine/internal/types"
	"github.com/gsabatini/match-engine/internal/weights"
	"github.com/spf13/cobra"
)

var weightsCmd = &cobra.Command{
	Use:   "weights",
	Short: "Inspect and validate weight matrices",
}

var weightsShowReason string

var weightsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the active weight matrix",
	Long:  "Prints the weight matrix a candidate with the given listening reason would be scored with, including the boost of each component relative to the base matrix.",
	RunE:  runWeightsShow,
}

var weightsValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a weight matrix override file",
	Args:  cobra.ExactArgs(1),
	RunE:  runWeightsValidate,
}

func init() {
	weightsShowCmd.Flags().StringVarP(&weightsShowReason, "reason", "r", "", "Listening reason to show the matrix for (default: base matrix)")

	weightsCmd.AddCommand(weightsShowCmd)
	weightsCmd.AddCommand(weightsValidateCmd)
	rootCmd.AddCommand(weightsCmd)
}

func runWeightsShow(_ *cobra.Command, _ []string) error {
	reason, err := parseReasonArg(weightsShowReason)
	if err != nil {
		return err
	}

	registry, err := activeRegistry()
	if err != nil {
		return err
	}

	printMatrixTable(os.Stdout, registry, reason)
	return nil
}

func runWeightsValidate(_ *cobra.Command, args []string) error {
	path := args[0]

	if schemaPath := schemas.ResolveSchemaPath(schemas.WeightsConfigSchema); schemaPath != "" {
		if err := schemas.ValidateFile(schemaPath, path); err != nil {
			return fmt.Errorf("weights file %s failed schema validation: %w", path, err)
		}
	}

	registry, err := weights.LoadRegistry(path)
	if err != nil {
		return fmt.Errorf("weights file %s is invalid: %w", path, err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "OK: %s defines %d valid weight matrices\n", path, len(registry.Matrices()))
	return nil
}

// parseReasonArg maps a --reason flag value to a listening reason. Empty means
// the base matrix.
func parseReasonArg(raw string) (types.ListeningReason, error) {
	if raw == "" || raw == string(types.ReasonUnspecified) {
		return types.ReasonUnspecified, nil
	}
	valid := make([]string, 0, len(types.ListeningReasons()))
	for _, reason := range types.ListeningReasons() {
		if raw == string(reason) {
			return reason, nil
		}
		valid = append(valid, string(reason))
	}
	return "", fmt.Errorf("unknown listening reason %q (valid: %s)", raw, strings.Join(valid, ", "))
}

func printMatrixTable(out io.Writer, registry *weights.Registry, reason types.ListeningReason) {
	name := "base"
	if reason != types.ReasonUnspecified {
		name = string(reason)
	}
	matrix := registry.Matrix(reason)

	_, _ = fmt.Fprintf(out, "Weight matrix: %s\n\n", name)
	_, _ = fmt.Fprintf(out, "%-18s %6s  %s\n", "COMPONENT", "WEIGHT", "BOOST")
	for _, c := range weights.Components() {
		boost := ""
		if b := registry.Boost(c, reason); b != 0 {
			boost = fmt.Sprintf("%+.2f", b)
		}
		_, _ = fmt.Fprintf(out, "%-18s %6.2f  %s\n", c.String(), matrix.Weight(c), boost)
	}
	_, _ = fmt.Fprintf(out, "%-18s %6.2f\n", "TOTAL", matrix.Sum())
}
