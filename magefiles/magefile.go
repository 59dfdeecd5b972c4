//go:build mage

// Package main provides build targets for the madang project using Mage.
//
// Usage:
//
//	mage build     Compile the madang binary to bin/
//	mage test      Run all tests
//	mage cover     Run tests with a coverage profile in bin/
//	mage lint      Run golangci-lint
//	mage clean     Remove build artifacts
//	mage install   Install madang to GOPATH/bin
//	mage sample    Build, then create a database with the sample data in bin/
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo       = "go"
	binaryName  = "madang"
	binaryDir   = "bin"
	cmdDir      = "./cmd/madang"
	versionVar  = "github.com/mesh-intelligence/madang/internal/cli.Version"
	coverOutput = "coverage.out"
)

// ldflags stamps the version from MADANG_VERSION or git describe.
func ldflags() string {
	version := os.Getenv("MADANG_VERSION")
	if version == "" {
		out, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
		if err != nil {
			return ""
		}
		version = strings.TrimPrefix(strings.TrimSpace(out), "v")
	}
	return fmt.Sprintf("-X %s=%s", versionVar, version)
}

// Build compiles the madang binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	args := []string{"build", "-v", "-o", filepath.Join(binaryDir, binaryName)}
	if flags := ldflags(); flags != "" {
		args = append(args, "-ldflags", flags)
	}
	return sh.RunV(binGo, append(args, cmdDir)...)
}

// Test runs all tests.
func Test() error {
	return sh.RunV(binGo, "test", "./...")
}

// Cover runs all tests and writes a coverage profile to bin/.
func Cover() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	profile := filepath.Join(binaryDir, coverOutput)
	if err := sh.RunV(binGo, "test", "-coverprofile", profile, "./..."); err != nil {
		return err
	}
	return sh.RunV(binGo, "tool", "cover", "-func", profile)
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	return sh.RunV(binGo, "clean")
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

// Sample builds madang and initializes bin/ with the Madang sample data,
// using bin/config as the configuration directory.
func Sample() error {
	mg.Deps(Build)
	bin := filepath.Join(binaryDir, binaryName)
	return sh.RunV(bin,
		"--config-dir", filepath.Join(binaryDir, "config"),
		"--data-dir", binaryDir,
		"init", "--seed",
	)
}
