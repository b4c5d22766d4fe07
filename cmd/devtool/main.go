// Command devtool bundles the checks run by make targets and CI.
package main

import (
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	registry := newRegistry()

	if len(os.Args) < 2 {
		registry.PrintHelp()
		os.Exit(1)
	}

	cmd, ok := registry.Get(os.Args[1])
	if !ok {
		PrintError("Unknown command: %s", os.Args[1])
		registry.PrintHelp()
		os.Exit(1)
	}

	if err := cmd.Run(os.Args[2:]); err != nil {
		PrintError("%s: %v", cmd.Name(), err)
		os.Exit(1)
	}
}

func newRegistry() *Registry {
	r := NewRegistry()
	r.Register(&CheckDepsCommand{})
	r.Register(&CheckCoverageCommand{})
	r.Register(&ValidateDatasetCommand{})
	r.Register(&BenchCommand{})
	r.Register(&DoctorCommand{})
	return r
}
