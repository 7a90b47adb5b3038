package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	defaultCoverageFile      = "logs/coverage.out"
	defaultCoverageThreshold = 70.0
)

type CheckCoverageCommand struct{}

func (c *CheckCoverageCommand) Name() string {
	return "check-coverage"
}

func (c *CheckCoverageCommand) Description() string {
	return "Run tests with coverage and check against threshold"
}

func (c *CheckCoverageCommand) Run(args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	runTests := fs.Bool("run", false, "Run tests before checking coverage")
	htmlReport := fs.Bool("html", false, "Generate an HTML coverage report")
	threshold := fs.Float64("threshold", defaultCoverageThreshold, "Minimum total coverage percent")
	if err := fs.Parse(args); err != nil {
		return err
	}

	file := defaultCoverageFile
	packages := []string{"./..."}
	if rest := fs.Args(); len(rest) > 0 {
		file = filepath.Clean(rest[0])
		if len(rest) > 1 {
			packages = rest[1:]
		}
	}
	if strings.Contains(file, "..") || filepath.IsAbs(file) {
		return fmt.Errorf("invalid path '%s': must be relative and within project", file)
	}

	PrintHeader(fmt.Sprintf("Checking coverage threshold (%.1f%%)...", *threshold))

	if err := c.ensureCoverage(file, *runTests, packages); err != nil {
		return err
	}

	coverage, err := c.coveragePercent(file)
	if err != nil {
		return err
	}
	PrintInfo("Total Coverage: %.1f%%", coverage)

	if *htmlReport {
		if err := c.generateHTMLReport(file); err != nil {
			PrintWarning("Failed to generate HTML report: %v", err)
		}
	}

	if coverage < *threshold {
		PrintError("Coverage is below threshold.")
		return fmt.Errorf("coverage %.1f%% below threshold %.1f%%", coverage, *threshold)
	}
	PrintSuccess("Coverage meets threshold.")
	return nil
}

func (c *CheckCoverageCommand) ensureCoverage(file string, runTests bool, packages []string) error {
	if _, err := os.Stat(file); os.IsNotExist(err) {
		PrintInfo("Coverage file '%s' not found. Running tests...", file)
		runTests = true
	}
	if !runTests {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return fmt.Errorf("failed to create coverage directory: %w", err)
	}

	PrintInfo("Running tests with coverage...")
	testArgs := append([]string{"test"}, packages...)
	testArgs = append(testArgs, "-coverprofile="+file, "-covermode=atomic", "-race")

	// #nosec G204 - file is validated, packages come from the caller
	cmd := exec.Command("go", testArgs...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("tests failed: %w", err)
	}
	PrintSuccess("Tests passed and coverage profile generated.")
	return nil
}

func (c *CheckCoverageCommand) coveragePercent(file string) (float64, error) {
	// #nosec G204
	out, err := exec.Command("go", "tool", "cover", "-func="+file).Output()
	if err != nil {
		return 0, fmt.Errorf("error running go tool cover: %w", err)
	}
	return parseCoverageTotal(string(out))
}

// parseCoverageTotal extracts the percentage from the "total:" line of go tool cover -func output
func parseCoverageTotal(out string) (float64, error) {
	for _, line := range strings.Split(out, "\n") {
		if !strings.HasPrefix(line, "total:") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return 0, fmt.Errorf("unexpected output format")
		}
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
	htmlFile := strings.TrimSuffix(file, ".out") + ".html"
	PrintInfo("Generating HTML report: %s", htmlFile)
	// #nosec G204 - file is validated
	if err := exec.Command("go", "tool", "cover", "-html="+file, "-o", htmlFile).Run(); err != nil {
		return err
	}
	PrintSuccess("HTML report generated: %s", htmlFile)
	return nil
}
