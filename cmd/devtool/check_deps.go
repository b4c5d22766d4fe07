package main

import (
	"fmt"
	"os/exec"
	"strings"
)

// tool describes an executable the workflow expects on PATH
type tool struct {
	name     string
	args     []string
	required bool
	install  string
	// field picks the version out of the first output line; negative counts from the end
	field int
}

var devTools = []tool{
	{name: "go", args: []string{"version"}, required: true, install: "https://go.dev/dl/", field: 2},
	{name: "make", args: []string{"--version"}, required: true, install: "sudo apt install make", field: 2},
	{name: "golangci-lint", args: []string{"--version"}, install: "go install github.com/golangci/golangci-lint/cmd/golangci-lint", field: 3},
	{name: "mockery", args: []string{"--version"}, install: "go install github.com/vektra/mockery/v2", field: -1},
	{name: "swag", args: []string{"--version"}, install: "go install github.com/swaggo/swag/cmd/swag", field: -1},
	{name: "benchstat", install: "go install golang.org/x/perf/cmd/benchstat"},
}

type CheckDepsCommand struct{}

func (c *CheckDepsCommand) Name() string {
	return "check-deps"
}

func (c *CheckDepsCommand) Description() string {
	return "Check for required development tools"
}

func (c *CheckDepsCommand) Run(args []string) error {
	PrintHeader("Checking dependencies...")

	missing := 0
	for _, t := range devTools {
		if _, err := exec.LookPath(t.name); err != nil {
			if t.required {
				PrintError("%s not found! Install: %s", t.name, t.install)
				missing++
			} else {
				PrintWarning("%s not found (optional). Install: %s", t.name, t.install)
			}
			continue
		}
		if len(t.args) == 0 {
			PrintSuccess("%s installed", t.name)
			continue
		}
		out, err := getCommandOutput(t.name, t.args...)
		if err != nil {
			PrintWarning("%s installed but version check failed: %v", t.name, err)
			continue
		}
		PrintSuccess("%s installed: %s", t.name, parseVersion(out, t.field))
	}

	if missing > 0 {
		return fmt.Errorf("%d required tool(s) missing", missing)
	}
	PrintSuccess("Environment check complete!")
	return nil
}

// parseVersion extracts a whitespace-separated field from the first line of
// a tool's version output, falling back to the whole line
func parseVersion(output string, field int) string {
	line, _, _ := strings.Cut(output, "\n")
	parts := strings.Fields(line)
	if field < 0 {
		field += len(parts)
	}
	if field < 0 || field >= len(parts) {
		return line
	}
	return strings.TrimPrefix(strings.TrimRight(parts[field], ","), "version:")
}
