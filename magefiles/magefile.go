//go:build mage

// SPDX-License-Identifier: MIT

// Package main provides build targets for knots using Mage.
//
// Usage:
//
//	mage build        Compile the knots binary to bin/
//	mage test:all     Run all tests with -race
//	mage test:bench   Run benchmarks
//	mage lint         go vet and gofmt check
package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo      = "go"
	binaryName = "knots"
	binaryDir  = "bin"
	cmdDir     = "./cmd/knots"
)

// Default target when mage is run without arguments.
var Default = Build

// Build compiles the knots binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Clean removes build artifacts.
func Clean() error {
	return os.RemoveAll(binaryDir)
}

// Install builds and copies the binary to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output(binGo, "env", "GOPATH")
	if err != nil {
		return err
	}
	src := filepath.Join(binaryDir, binaryName)
	dst := filepath.Join(gopath, "bin", binaryName)
	return sh.Copy(dst, src)
}

// Test groups test targets.
type Test mg.Namespace

// All runs every package's tests with the race detector.
func (Test) All() error {
	return sh.RunV(binGo, "test", "-race", "./...")
}

// Bench runs the benchmarks without tests.
func (Test) Bench() error {
	return sh.RunV(binGo, "test", "-run", "^$", "-bench", ".", "-benchmem", "./...")
}

// Cover writes coverage.out and prints per-function totals.
func (Test) Cover() error {
	if err := sh.RunV(binGo, "test", "-coverprofile=coverage.out", "./..."); err != nil {
		return err
	}
	return sh.RunV(binGo, "tool", "cover", "-func=coverage.out")
}

// Lint runs go vet and checks formatting.
func Lint() error {
	if err := sh.RunV(binGo, "vet", "./..."); err != nil {
		return err
	}
	dirs, err := sh.Output(binGo, "list", "-f", "{{.Dir}}", "./...")
	if err != nil {
		return err
	}
	out, err := sh.Output("gofmt", append([]string{"-l"}, strings.Fields(dirs)...)...)
	if err != nil {
		return err
	}
	if out != "" {
		return mg.Fatalf(1, "gofmt needed:\n%s", out)
	}
	return nil
}
