package main

import "fmt"

type DoctorCommand struct{}

func (c *DoctorCommand) Name() string {
	return "doctor"
}

func (c *DoctorCommand) Description() string {
	return "Diagnose environment issues (deps + dataset)"
}

func (c *DoctorCommand) Run(args []string) error {
	PrintHeader("Running Doctor...")

	hasError := false

	depsCmd := &CheckDepsCommand{}
	if err := depsCmd.Run(nil); err != nil {
		PrintError("Dependencies check failed: %v", err)
		hasError = true
	} else {
		PrintSuccess("Dependencies OK")
	}

	datasetCmd := &ValidateDatasetCommand{}
	if err := datasetCmd.Run(nil); err != nil {
		PrintError("Dataset check failed: %v", err)
		hasError = true
	} else {
		PrintSuccess("Dataset OK")
	}

	if hasError {
		return fmt.Errorf("doctor found issues")
	}

	PrintSuccess("All systems operational!")
	return nil
}
