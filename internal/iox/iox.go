// Package iox reads batches of regular expressions from a text file,
// one per line, for the file-driven CLI mode.
package iox

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ReaderTXT reads path and returns its non-blank lines with surrounding
// whitespace trimmed, in file order. Blank lines are skipped rather
// than surfaced as empty regexes, since a text editor's trailing
// newline shouldn't turn into a parse error downstream.
func ReaderTXT(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("iox: opening %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("iox: reading %s: %w", path, err)
	}
	return lines, nil
}
