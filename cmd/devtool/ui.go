package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

const (
	colorGreen  = "\033[0;32m"
	colorRed    = "\033[0;31m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
	colorReset  = "\033[0m"
)

func printLine(color, symbol, format string, a ...interface{}) {
	fmt.Printf("%s%s %s%s\n", color, symbol, fmt.Sprintf(format, a...), colorReset)
}

func PrintInfo(format string, a ...interface{})    { printLine(colorBlue, "ℹ", format, a...) }
func PrintSuccess(format string, a ...interface{}) { printLine(colorGreen, "✓", format, a...) }
func PrintWarning(format string, a ...interface{}) { printLine(colorYellow, "⚠", format, a...) }
func PrintError(format string, a ...interface{})   { printLine(colorRed, "✗", format, a...) }

func PrintHeader(title string) {
	fmt.Printf("\n%s=== %s ===%s\n", colorYellow, title, colorReset)
}

// shellMeta are rejected in any argument handed to exec
var shellMeta = []string{"|", "`", "$(", "&&", "||", ">", "<", ";"}

// checkHostile rejects arguments carrying shell metacharacters
func checkHostile(inputs ...string) error {
	for _, s := range inputs {
		if strings.ContainsAny(s, "\n\r\x00") {
			return fmt.Errorf("hostile input detected: control character in %q", s)
		}
		for _, p := range shellMeta {
			if strings.Contains(s, p) {
				return fmt.Errorf("hostile input detected: pattern %q in %q", p, s)
			}
		}
	}
	return nil
}

func getCommandOutput(name string, args ...string) (string, error) {
	if err := checkHostile(append([]string{name}, args...)...); err != nil {
		return "", err
	}
	// #nosec G204 - arguments checked above
	out, err := exec.Command(name, args...).Output()
	return strings.TrimSpace(string(out)), err
}

// runCommandVerbose runs a command with output on stdout/stderr
func runCommandVerbose(name string, args ...string) error {
	if err := checkHostile(append([]string{name}, args...)...); err != nil {
		return err
	}
	// #nosec G204 - arguments checked above
	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
