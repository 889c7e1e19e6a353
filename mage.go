//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	trackerBin = "./bin/tracker"
)

const (
	toolsDir     = "tools/"
	toolsModfile = toolsDir + "go.mod"
	toolsBinDir  = toolsDir + "bin/"
	lintTool     = toolsBinDir + "golangci-lint"
)

func goModDownload() error {
	return sh.Run("go", "mod", "download")
}

// Build builds tracker binary
func Build() error {
	mg.Deps(goModDownload)
	return sh.Run("go", "build", "-o", trackerBin, "./cmd")
}

// Run replays the embedded demo scenario
func Run() error {
	mg.Deps(Build)
	return sh.Run(trackerBin)
}

// Test runs unit tests with the race detector
func Test() error {
	mg.Deps(goModDownload)
	return sh.RunV("go", "test", "-race", "./...")
}

func Lint() error {
	mg.Deps(buildLintTool)
	return sh.Run(lintTool, "run", "./...")
}

func buildLintTool() error {
	return sh.Run(
		"go", "build",
		"-modfile", toolsModfile,
		"-o", lintTool,
		"github.com/golangci/golangci-lint/cmd/golangci-lint",
	)
}
