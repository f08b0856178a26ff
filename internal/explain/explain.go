// Package explain provides formatted output utilities for verbose CLI mode.
package explain

import (
	"fmt"
	"io"
	"strings"

	"github.com/gsabatini/match-engine/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// barWidth is the width of component score bars
	barWidth = 10
	// maxItemsToShow is the default number of items to display in ranking lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// scoreBar renders a score in [0,1] as a fixed-width bar
func scoreBar(score float64) string {
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	filled := int(score*float64(barWidth) + 0.5)
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}

// PrintResult outputs the overall match outcome.
func (p *Printer) PrintResult(result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	if result.CandidateID != "" {
		sb.WriteString(fmt.Sprintf("Candidate: %s\n", result.CandidateID))
	}
	if result.PositionID != "" {
		sb.WriteString(fmt.Sprintf("Position:  %s\n", result.PositionID))
	}
	sb.WriteString(fmt.Sprintf("Reason:    %s\n", result.ListeningReason))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Overall:   %.3f (%s)\n", result.Overall, result.Tier))
	sb.WriteString(fmt.Sprintf("Raw score: %.3f\n", result.RawScore))
	if result.HierarchyPenalty > 0 {
		sb.WriteString(fmt.Sprintf("Penalty:   %.0f%% for level gap %+d\n",
			result.HierarchyPenalty*100, result.LevelGap))
	}

	p.printBox("MATCH RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintComponents outputs the per-component score breakdown with bars.
// Boosted components are marked with + or -, degraded ones with !.
func (p *Printer) PrintComponents(result *types.MatchResult) {
	if result == nil || len(result.Components) == 0 {
		return
	}

	var sb strings.Builder
	for i, c := range result.Components {
		marker := " "
		if c.Boost > 0 {
			marker = "+"
		} else if c.Boost < 0 {
			marker = "-"
		}

		degraded := ""
		if c.Details != nil {
			if _, ok := c.Details["degraded"]; ok {
				degraded = " !"
			}
		}

		sb.WriteString(fmt.Sprintf("%-16s %.2f %s\n", c.Component, c.Raw, scoreBar(c.Raw)))
		sb.WriteString(fmt.Sprintf("    weight %.2f%s  weighted %.3f%s", c.Weight, marker, c.Weighted, degraded))
		if i < len(result.Components)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("COMPONENT BREAKDOWN", sb.String())
}

// PrintHierarchy outputs the level compatibility panel.
func (p *Printer) PrintHierarchy(result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Candidate level: %s\n", result.CandidateLevel))
	sb.WriteString(fmt.Sprintf("Position level:  %s\n", result.PositionLevel))

	switch {
	case result.LevelGap > 0:
		sb.WriteString(fmt.Sprintf("Gap:             %+d (overqualified)\n", result.LevelGap))
	case result.LevelGap < 0:
		sb.WriteString(fmt.Sprintf("Gap:             %+d (underqualified)\n", result.LevelGap))
	default:
		sb.WriteString("Gap:             0 (aligned)\n")
	}
	sb.WriteString(fmt.Sprintf("Penalty:         %.0f%%", result.HierarchyPenalty*100))

	if result.LevelMismatch {
		sb.WriteString("\n\n⚠ LEVEL MISMATCH")
	}

	p.printBox("HIERARCHY", sb.String())
}

// PrintRanking outputs the top results of a ranked batch.
func (p *Printer) PrintRanking(results []types.MatchResult) {
	if len(results) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Positions ranked: %d\n\n", len(results)))

	count := min(len(results), maxItemsToShow)
	for i := 0; i < count; i++ {
		r := results[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, r.PositionID))
		sb.WriteString(fmt.Sprintf("    %.3f %s (%s)", r.Overall, scoreBar(r.Overall), r.Tier))
		if r.LevelMismatch {
			sb.WriteString(" ⚠")
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(results) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more positions", len(results)-maxItemsToShow))
	}

	p.printBox("TOP MATCHES", sb.String())
}

// PrintVerbose renders the full explainability report for one result.
func (p *Printer) PrintVerbose(result *types.MatchResult) {
	p.PrintResult(result)
	p.PrintComponents(result)
	p.PrintHierarchy(result)
}
