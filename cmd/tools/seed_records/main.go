// Command seed_records loads the sample candidate and position records into
// the database and smoke-tests the store round-trip. Safe to re-run: records
// carry fixed IDs and saving is an upsert.
//
// Usage:
//
//	go run cmd/tools/seed_records/main.go [data-dir]
//
// data-dir defaults to testdata/valid. Requires DATABASE_URL to be set.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/gsabatini/match-engine/internal/engine"
	"github.com/gsabatini/match-engine/internal/store"
	"github.com/gsabatini/match-engine/internal/types"
	"github.com/gsabatini/match-engine/internal/weights"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		fmt.Fprintln(os.Stderr, "ERROR: DATABASE_URL environment variable not set")
		os.Exit(1)
	}

	dataDir := "testdata/valid"
	if len(os.Args) > 1 {
		dataDir = os.Args[1]
	}

	ctx := context.Background()

	st, err := store.Connect(ctx, dsn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	if err := st.EnsureSchema(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to ensure schema: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("=== Seeding Sample Records ===")
	fmt.Println()

	// Step 1: Load and save the sample candidate
	fmt.Println("Step 1: Seeding candidate...")
	var candidate types.CandidateRecord
	if err := readJSON(filepath.Join(dataDir, "candidate.json"), &candidate); err != nil {
		fmt.Fprintf(os.Stderr, "FAIL: %v\n", err)
		os.Exit(1)
	}
	savedCandidate, err := st.SaveCandidate(ctx, &candidate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FAIL: SaveCandidate: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("  Saved candidate: %s (ID: %s)\n", savedCandidate.Record.FullName, savedCandidate.ID)

	// Step 2: Load and save the sample positions
	fmt.Println("\nStep 2: Seeding positions...")
	var positions []types.PositionRecord
	if err := readJSON(filepath.Join(dataDir, "positions.json"), &positions); err != nil {
		fmt.Fprintf(os.Stderr, "FAIL: %v\n", err)
		os.Exit(1)
	}
	for i := range positions {
		saved, err := st.SavePosition(ctx, &positions[i])
		if err != nil {
			fmt.Fprintf(os.Stderr, "FAIL: SavePosition %q: %v\n", positions[i].Title, err)
			os.Exit(1)
		}
		fmt.Printf("  Saved position: %s at %s (ID: %s)\n", saved.Record.Title, saved.Record.Company, saved.ID)
	}

	// Step 3: Verify the candidate round-trips
	fmt.Println("\nStep 3: Verifying candidate round-trip...")
	candidateID, err := uuid.Parse(savedCandidate.Record.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FAIL: saved candidate has invalid ID: %v\n", err)
		os.Exit(1)
	}
	fetched, err := st.GetCandidate(ctx, candidateID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FAIL: GetCandidate: %v\n", err)
		os.Exit(1)
	}
	if fetched.Record.FullName != candidate.FullName {
		fmt.Fprintf(os.Stderr, "FAIL: round-trip changed full_name: %q vs %q\n", fetched.Record.FullName, candidate.FullName)
		os.Exit(1)
	}
	fmt.Println("  Candidate round-trips correctly")

	// Step 4: Rank the stored positions for the candidate
	fmt.Println("\nStep 4: Ranking stored positions...")
	stored, err := st.ListPositions(ctx, store.PositionFilters{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "FAIL: ListPositions: %v\n", err)
		os.Exit(1)
	}
	records := make([]*types.PositionRecord, len(stored))
	for i := range stored {
		records[i] = &stored[i].Record
	}
	eng, err := engine.New(weights.NewRegistry())
	if err != nil {
		fmt.Fprintf(os.Stderr, "FAIL: engine.New: %v\n", err)
		os.Exit(1)
	}
	results, err := eng.EvaluateBatch(ctx, &fetched.Record, records, 0)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FAIL: EvaluateBatch: %v\n", err)
		os.Exit(1)
	}
	ranked := engine.Rank(results)
	for i, r := range ranked {
		fmt.Printf("  #%d  %.3f (%s)  position %s\n", i+1, r.Overall, r.Tier, r.PositionID)
	}

	fmt.Println("\n=== Seed Complete ===")
}

func readJSON(path string, v any) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(content, v); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", path, err)
	}
	return nil
}
