// Package lcov parses LCOV-style line coverage reports.
//
// Only the SF: and DA: record kinds carry meaning here; every other record
// prefix is accepted and skipped so richer reports remain readable.
package lcov

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

const (
	sourceFilePrefix = "SF:"
	lineDataPrefix   = "DA:"
)

// Record holds the per-file line counts accumulated from DA: records.
type Record struct {
	// Total is the number of instrumented lines.
	Total int
	// Covered is the number of instrumented lines with a nonzero execution count.
	Covered int
}

// Table maps a source file path to its accumulated Record.
type Table map[string]Record

// getWorkingDirectory is swappable for tests that exercise path normalization.
var getWorkingDirectory = os.Getwd

// Parse reads the report at path and accumulates per-file line coverage.
// A missing or unreadable file returns an error wrapping the path; no partial
// table is returned in that case.
func Parse(fs afero.Fs, path string) (Table, error) {
	file, err := fs.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open coverage report %s", path)
	}
	defer func() {
		_ = file.Close() // #nosec G104 -- best-effort cleanup for read-only report input.
	}()

	table := make(Table)
	currentFile := ""

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		switch {
		case strings.HasPrefix(line, sourceFilePrefix):
			currentFile = normalizePath(line[len(sourceFilePrefix):])
			if _, exists := table[currentFile]; !exists {
				table[currentFile] = Record{}
			}
		case strings.HasPrefix(line, lineDataPrefix) && currentFile != "":
			record, ok := parseLineData(line[len(lineDataPrefix):])
			if !ok {
				continue
			}
			entry := table[currentFile]
			entry.Total++
			if record > 0 {
				entry.Covered++
			}
			table[currentFile] = entry
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "read coverage report %s", path)
	}

	return table, nil
}

// parseLineData extracts the execution count from a DA: payload of the form
// "<line_number>,<execution_count>[,...]". Records with fewer than two fields
// or a non-numeric count are skipped.
func parseLineData(payload string) (int, bool) {
	fields := strings.Split(payload, ",")
	if len(fields) < 2 {
		return 0, false
	}

	count, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return 0, false
	}

	return count, true
}

// normalizePath converts an absolute source path to one relative to the
// working directory. Conversion is best effort: when the working directory is
// unknown or the path sits on a different root, the original path is kept.
func normalizePath(path string) string {
	if !filepath.IsAbs(path) {
		return path
	}

	workingDirectory, err := getWorkingDirectory()
	if err != nil {
		return path
	}

	relative, err := filepath.Rel(workingDirectory, path)
	if err != nil {
		return path
	}

	return relative
}
