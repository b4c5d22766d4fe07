package main

import (
	"context"
	"flag"
	"os"

	"github.com/osse101/skyrim-alchemy/internal/dataset"
)

type ValidateDatasetCommand struct{}

func (c *ValidateDatasetCommand) Name() string {
	return "validate-dataset"
}

func (c *ValidateDatasetCommand) Description() string {
	return "Validate a dataset JSON file or CSV directory and build its store"
}

func (c *ValidateDatasetCommand) Run(args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	path := os.Getenv("DATASET_PATH")
	if fs.NArg() > 0 {
		path = fs.Arg(0)
	}

	label := path
	if label == "" {
		label = "embedded sample"
	}
	PrintHeader("Validating dataset (" + label + ")...")

	store, err := dataset.Open(context.Background(), dataset.NewLoader(), path)
	if err != nil {
		return err
	}

	info := store.Info()
	ingredients, effects, traits := store.Len()
	PrintInfo("Version: %s", info.Version)
	PrintInfo("Checksum: %s", info.Checksum)
	PrintSuccess("%d ingredients, %d effects, %d traits", ingredients, effects, traits)
	return nil
}
