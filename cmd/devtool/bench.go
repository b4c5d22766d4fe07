package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

const (
	benchResultsDir  = "benchmarks/results"
	benchProfilesDir = "benchmarks/profiles"
	benchBaseline    = "baseline.txt"
	benchTime        = "2s"
)

// hotBenchmarks are the paths the report build and the API spend their time in
var hotBenchmarks = []struct {
	label, pkg, pattern string
}{
	{"Brewing: Enumerate", "./internal/brewing", "BenchmarkEnumerate"},
	{"Brewing: Brew", "./internal/brewing", "BenchmarkBrew"},
	{"Ranking: Recommended", "./internal/ranking", "BenchmarkRecommended"},
	{"Ranking: ValuablePotions", "./internal/ranking", "BenchmarkValuablePotions"},
}

type BenchCommand struct{}

func (c *BenchCommand) Name() string {
	return "bench"
}

func (c *BenchCommand) Description() string {
	return "Run benchmarks (run|hot|save|baseline|compare|profile)"
}

func (c *BenchCommand) Run(args []string) error {
	sub := "run"
	if len(args) > 0 {
		sub = args[0]
	}

	switch sub {
	case "run":
		PrintHeader("Running all benchmarks...")
		return goBench(os.Stdout, ".", "./...")
	case "hot":
		return c.runHot()
	case "save":
		return c.runAndSave(time.Now().Format("20060102-150405") + ".txt")
	case "baseline":
		return c.runAndSave(benchBaseline)
	case "compare":
		return c.compare()
	case "profile":
		return c.profile()
	default:
		return fmt.Errorf("unknown subcommand: %s", sub)
	}
}

// goBench runs the benchmarks matching pattern in pkgs, skipping unit tests
func goBench(w io.Writer, pattern string, pkgs ...string) error {
	args := append([]string{"test", "-run=^$", "-bench=" + pattern, "-benchmem", "-benchtime=" + benchTime}, pkgs...)
	if err := checkHostile(args...); err != nil {
		return err
	}
	// #nosec G204 - arguments checked above
	cmd := exec.Command("go", args...)
	cmd.Stdout = w
	cmd.Stderr = w
	return cmd.Run()
}

func (c *BenchCommand) runHot() error {
	PrintHeader("Running hot path benchmarks...")

	failed := 0
	for _, b := range hotBenchmarks {
		fmt.Printf("  → %s\n", b.label)
		if err := goBench(os.Stdout, b.pattern, b.pkg); err != nil {
			PrintWarning("%s failed: %v", b.pattern, err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d hot path benchmark(s) failed", failed)
	}
	return nil
}

func (c *BenchCommand) runAndSave(filename string) error {
	PrintHeader("Running benchmarks and saving results...")
	if err := os.MkdirAll(benchResultsDir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	path := filepath.Join(benchResultsDir, filename)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if err := goBench(io.MultiWriter(os.Stdout, f), ".", "./..."); err != nil {
		return fmt.Errorf("benchmark execution failed: %w", err)
	}

	PrintSuccess("Results saved to %s", path)
	return nil
}

func (c *BenchCommand) compare() error {
	baseline := filepath.Join(benchResultsDir, benchBaseline)
	if _, err := os.Stat(baseline); os.IsNotExist(err) {
		return fmt.Errorf("no baseline found. Run 'devtool bench baseline' first")
	}
	if _, err := exec.LookPath("benchstat"); err != nil {
		return fmt.Errorf("benchstat not installed. Install with: go install golang.org/x/perf/cmd/benchstat")
	}

	current := filepath.Join(benchResultsDir, "current.txt")
	if err := c.runAndSave(filepath.Base(current)); err != nil {
		PrintWarning("Some benchmarks failed, comparing what ran: %v", err)
	}

	PrintHeader("Comparing to baseline...")
	return runCommandVerbose("benchstat", baseline, current)
}

func (c *BenchCommand) profile() error {
	PrintHeader("Profiling sharded enumeration...")
	if err := os.MkdirAll(benchProfilesDir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	cpu := filepath.Join(benchProfilesDir, "cpu.prof")
	mem := filepath.Join(benchProfilesDir, "mem.prof")
	//nolint:forbidigo
	err := runCommandVerbose("go", "test", "-run=^$", "-bench=BenchmarkEnumerate_Sharded", "-benchmem",
		"-cpuprofile="+cpu, "-memprofile="+mem, "./internal/brewing")
	if err != nil {
		return fmt.Errorf("profiling failed: %w", err)
	}

	PrintSuccess("Profiles saved to %s", benchProfilesDir)
	fmt.Println("View with:")
	fmt.Printf("  go tool pprof -http=:8080 %s\n", cpu)
	fmt.Printf("  go tool pprof -http=:8080 %s\n", mem)
	return nil
}
