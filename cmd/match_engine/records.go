package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gsabatini/match-engine/internal/schemas"
	"github.com/gsabatini/match-engine/internal/types"
)

// loadCandidateFile reads and validates a candidate record from a JSON file.
func loadCandidateFile(path string) (*types.CandidateRecord, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read candidate file %s: %w", path, err)
	}

	warnIfSchemaInvalid(schemas.CandidateSchema, content, path)

	var record types.CandidateRecord
	if err := json.Unmarshal(content, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal candidate JSON: %w", err)
	}

	if err := validator.New().Struct(&record); err != nil {
		return nil, fmt.Errorf("invalid candidate record %s: %w", path, err)
	}

	return &record, nil
}

// loadPositionFile reads and validates a single position record from a JSON file.
func loadPositionFile(path string) (*types.PositionRecord, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read position file %s: %w", path, err)
	}

	warnIfSchemaInvalid(schemas.PositionSchema, content, path)

	var record types.PositionRecord
	if err := json.Unmarshal(content, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal position JSON: %w", err)
	}

	if err := validator.New().Struct(&record); err != nil {
		return nil, fmt.Errorf("invalid position record %s: %w", path, err)
	}

	return &record, nil
}

// loadPositionsPath loads position records from either a directory of *.json
// files or a single JSON file holding one record or an array of records.
func loadPositionsPath(path string) ([]*types.PositionRecord, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat positions path %s: %w", path, err)
	}

	if info.IsDir() {
		return loadPositionsDir(path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read positions file %s: %w", path, err)
	}

	// A file may hold a single record or an array of them.
	if bytes.HasPrefix(bytes.TrimLeft(content, " \t\r\n"), []byte("[")) {
		var records []*types.PositionRecord
		if err := json.Unmarshal(content, &records); err != nil {
			return nil, fmt.Errorf("failed to unmarshal positions JSON: %w", err)
		}
		if len(records) == 0 {
			return nil, fmt.Errorf("positions file %s holds an empty array", path)
		}
		validate := validator.New()
		for i, record := range records {
			if record == nil {
				return nil, fmt.Errorf("positions file %s holds a null entry at index %d", path, i)
			}
			if err := validate.Struct(record); err != nil {
				return nil, fmt.Errorf("invalid position record at index %d in %s: %w", i, path, err)
			}
		}
		return records, nil
	}

	record, err := loadPositionFile(path)
	if err != nil {
		return nil, err
	}
	return []*types.PositionRecord{record}, nil
}

func loadPositionsDir(dir string) ([]*types.PositionRecord, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read positions directory %s: %w", dir, err)
	}

	var records []*types.PositionRecord
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		record, err := loadPositionFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("no position JSON files found in %s", dir)
	}
	return records, nil
}

// writeJSONFile marshals v with indentation and writes it to path, creating
// parent directories as needed.
func writeJSONFile(path string, v any) error {
	jsonOutput, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output to JSON: %w", err)
	}

	// Ensure output directory exists
	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	if err := os.WriteFile(path, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}

	return nil
}

// warnIfSchemaInvalid checks a document against a shipped schema. Input schema
// checks are a safety net, not a gate, so failures only warn on stderr.
func warnIfSchemaInvalid(schemaRelPath string, document []byte, sourcePath string) {
	schemaPath := schemas.ResolveSchemaPath(schemaRelPath)
	if schemaPath == "" {
		return
	}
	if err := schemas.ValidateBytes(schemaPath, document); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: %s failed schema validation: %v\n", sourcePath, err)
	}
}
