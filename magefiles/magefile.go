//go:build mage

// Package main contains Mage build targets for match-engine developer tooling.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "match_engine"
	cmdPkg  = "./cmd/match_engine"
)

// Build compiles the CLI binary into bin/, stamping the version from git.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	version, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil || version == "" {
		version = "unknown"
	}
	out := filepath.Join(binDir, binName)
	ldflags := fmt.Sprintf("-X main.version=%s", version)
	if err := sh.RunV("go", "build", "-ldflags", ldflags, "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the unit test suite.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// TestIntegration runs the suite including the database integration tests.
// Requires TEST_DATABASE_URL pointing at a disposable PostgreSQL database.
func TestIntegration() error {
	if os.Getenv("TEST_DATABASE_URL") == "" {
		return fmt.Errorf("TEST_DATABASE_URL must be set for integration tests")
	}
	return sh.RunV("go", "test", "-tags", "integration", "./...")
}

// Cover runs the tests with coverage and prints the per-function summary.
func Cover() error {
	if err := sh.RunV("go", "test", "-coverprofile=coverage.out", "./..."); err != nil {
		return err
	}
	return sh.RunV("go", "tool", "cover", "-func=coverage.out")
}

// Lint vets the module.
func Lint() error {
	return sh.RunV("go", "vet", "./...")
}

// All lints, tests, and builds.
func All() {
	mg.SerialDeps(Lint, Test, Build)
}
