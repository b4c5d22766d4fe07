package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	defaultCoverageFile      = "logs/coverage.out"
	defaultCoverageThreshold = 80
)

type CheckCoverageCommand struct{}

func (c *CheckCoverageCommand) Name() string {
	return "check-coverage"
}

func (c *CheckCoverageCommand) Description() string {
	return "Run tests with coverage and check against threshold"
}

// coverageConfig holds the parsed check-coverage arguments
type coverageConfig struct {
	file       string
	threshold  float64
	runTests   bool
	htmlReport bool
	smart      bool
	packages   []string
}

func (c *CheckCoverageCommand) Run(args []string) error {
	cfg, err := c.parseConfig(args)
	if err != nil {
		return err
	}

	packages, err := c.resolvePackages(cfg)
	if err != nil {
		return err
	}

	if len(packages) == 0 && cfg.smart {
		PrintInfo("Smart mode enabled but no packages selected. Skipping tests.")
		return nil
	}

	PrintHeader(fmt.Sprintf("Checking coverage threshold (%.1f%%)...", cfg.threshold))

	if err := c.ensureCoverage(cfg.file, cfg.runTests, packages); err != nil {
		return err
	}

	coverage, err := c.getCoveragePercent(cfg.file)
	if err != nil {
		return err
	}

	PrintInfo("Total Coverage: %.1f%%", coverage)

	if cfg.htmlReport {
		if err := c.generateHTMLReport(cfg.file); err != nil {
			PrintWarning("Failed to generate HTML report: %v", err)
		}
	}

	if coverage < cfg.threshold {
		PrintError("Coverage is below threshold.")
		return fmt.Errorf("coverage below threshold")
	}

	PrintSuccess("Coverage meets threshold.")
	return nil
}

func (c *CheckCoverageCommand) resolvePackages(cfg coverageConfig) ([]string, error) {
	packages := append([]string(nil), cfg.packages...)

	if cfg.smart {
		changed, err := getChangedPackages(false)
		if err != nil {
			return nil, fmt.Errorf("failed to get changed packages: %w", err)
		}
		if len(changed) == 0 {
			PrintInfo("Smart mode: No changes detected.")
		} else {
			PrintInfo("Smart mode: Testing changed packages: %v", changed)
			packages = append(packages, changed...)
		}
	}

	seen := make(map[string]bool, len(packages))
	deduped := packages[:0]
	for _, p := range packages {
		if !seen[p] {
			seen[p] = true
			deduped = append(deduped, p)
		}
	}
	return deduped, nil
}

// parseConfig accepts [flags] [coverage_file [threshold [packages...]]]
func (c *CheckCoverageCommand) parseConfig(args []string) (coverageConfig, error) {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	runTests := fs.Bool("run", false, "Run tests before checking coverage")
	htmlReport := fs.Bool("html", false, "Generate an HTML coverage report")
	smart := fs.Bool("smart", false, "Run tests only on changed packages")
	pkgs := fs.String("pkgs", "", "Comma-separated list of packages to test")

	if err := fs.Parse(args); err != nil {
		return coverageConfig{}, err
	}

	cfg := coverageConfig{
		file:       defaultCoverageFile,
		threshold:  defaultCoverageThreshold,
		runTests:   *runTests,
		htmlReport: *htmlReport,
		smart:      *smart,
	}

	positional := fs.Args()
	if len(positional) > 0 {
		cfg.file = filepath.Clean(positional[0])
	}
	if len(positional) > 1 {
		threshold, err := strconv.ParseFloat(positional[1], 64)
		if err != nil {
			return coverageConfig{}, fmt.Errorf("invalid threshold '%s'", positional[1])
		}
		cfg.threshold = threshold
		cfg.packages = append(cfg.packages, positional[2:]...)
	}

	for _, p := range strings.Split(*pkgs, ",") {
		if p = strings.TrimSpace(p); p != "" {
			cfg.packages = append(cfg.packages, p)
		}
	}

	// Keep the profile inside the project
	if strings.Contains(cfg.file, "..") || strings.HasPrefix(cfg.file, "/") {
		return coverageConfig{}, fmt.Errorf("invalid path '%s': must be relative and within project", cfg.file)
	}

	return cfg, nil
}

func (c *CheckCoverageCommand) ensureCoverage(file string, runTests bool, packages []string) error {
	// a saved profile may cover a different package set
	shouldRun := runTests || len(packages) > 0

	if _, err := os.Stat(file); os.IsNotExist(err) {
		PrintInfo("Coverage file '%s' not found. Running tests...", file)
		shouldRun = true
	}
	if !shouldRun {
		return nil
	}

	dir := filepath.Dir(file)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create coverage directory '%s': %w", dir, err)
	}

	if len(packages) == 0 {
		packages = []string{"./..."}
	}
	args := append([]string{"test"}, packages...)
	args = append(args, "-coverprofile="+file, "-covermode=atomic", "-race")

	PrintInfo("Running tests with coverage...")
	//nolint:forbidigo
	if err := runCommandVerbose("go", args...); err != nil {
		return fmt.Errorf("tests failed: %w", err)
	}
	PrintSuccess("Tests passed and coverage profile generated.")
	return nil
}

func (c *CheckCoverageCommand) getCoveragePercent(file string) (float64, error) {
	//nolint:forbidigo // file is validated in parseConfig
	out, err := getCommandOutput("go", "tool", "cover", "-func="+file)
	if err != nil {
		return 0, fmt.Errorf("error running go tool cover: %w", err)
	}
	return parseTotalCoverage(out)
}

// parseTotalCoverage reads the percentage from the "total:" line of
// go tool cover -func output
func parseTotalCoverage(out string) (float64, error) {
	for _, line := range strings.Split(out, "\n") {
		if !strings.HasPrefix(line, "total:") {
			continue
		}
		fields := strings.Fields(line)
		pct := strings.TrimSuffix(fields[len(fields)-1], "%")
		coverage, err := strconv.ParseFloat(pct, 64)
		if err != nil {
			return 0, fmt.Errorf("could not parse coverage percentage '%s'", pct)
		}
		return coverage, nil
	}
	return 0, fmt.Errorf("could not determine coverage from output")
}

func (c *CheckCoverageCommand) generateHTMLReport(file string) error {
	htmlFile := strings.TrimSuffix(file, filepath.Ext(file)) + ".html"

	PrintInfo("Generating HTML report: %s", htmlFile)
	//nolint:forbidigo // file is validated in parseConfig
	if err := runCommandVerbose("go", "tool", "cover", "-html="+file, "-o", htmlFile); err != nil {
		return err
	}
	PrintSuccess("HTML report generated: %s", htmlFile)
	return nil
}
