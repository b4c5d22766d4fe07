package main

import (
	"fmt"
	"path"
	"sort"
	"strings"
)

// getChangedPackages lists the packages touched by uncommitted changes, or by
// staged changes only when stagedOnly is set
func getChangedPackages(stagedOnly bool) ([]string, error) {
	args := []string{"diff", "HEAD", "--name-only", "--diff-filter=ACMR"}
	if stagedOnly {
		args = []string{"diff", "--cached", "--name-only", "--diff-filter=ACMR"}
	}

	//nolint:forbidigo
	out, err := getCommandOutput("git", args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get changed files: %w", err)
	}
	return packagesForFiles(strings.Split(out, "\n")), nil
}

// packagesForFiles maps changed file paths to ./-prefixed package dirs.
// Dataset and schema edits test the packages that embed or parse them; a
// module file change tests everything.
func packagesForFiles(files []string) []string {
	set := make(map[string]bool)
	for _, file := range files {
		file = strings.TrimSpace(file)
		switch {
		case file == "":
			continue
		case file == "go.mod" || file == "go.sum":
			return []string{"./..."}
		case strings.HasPrefix(file, "configs/"):
			set["./configs"] = true
			set["./internal/dataset"] = true
		case strings.HasSuffix(file, ".go"):
			set["./"+path.Dir(file)] = true
		}
	}

	packages := make([]string, 0, len(set))
	for pkg := range set {
		packages = append(packages, strings.TrimSuffix(pkg, "/."))
	}
	sort.Strings(packages)
	return packages
}
