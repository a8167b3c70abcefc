package main

import (
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strings"
)

// defineRE matches a GLAD alias macro on a line of its own:
//
//	#define glBindBuffer glad_glBindBuffer
var defineRE = regexp.MustCompile(`^\s*#\s*define\s+(gl[A-Za-z0-9_]+)\s+(glad_gl[A-Za-z0-9_]+)\s*$`)

type rewriteStats struct {
	defines int
	blocks  int
}

// splitLines splits text on \n, \r\n or bare \r line terminators.
func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	lines := strings.Split(s, "\n")
	// A trailing terminator ends the last line, it does not open a new one.
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}

// findDocblockAbove locates a previously generated comment block immediately
// above the define at idx, returning its inclusive line range. "Immediately
// above" tolerates blank lines and contiguous comment-body lines; any other
// content breaks the search.
func findDocblockAbove(lines []string, idx int) (int, int, bool) {
	j := idx - 1
	for j >= 0 && strings.TrimSpace(lines[j]) == "" {
		j--
	}
	if j < 0 || !strings.Contains(lines[j], "*/") {
		return 0, 0, false
	}
	end := j
	for k := j; k >= 0; k-- {
		line := lines[k]
		if strings.Contains(line, "/**") {
			return k, end, true
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.Contains(line, "*/") ||
			strings.HasPrefix(trimmed, "*") || strings.HasPrefix(trimmed, "/*") {
			continue
		}
		break
	}
	return 0, 0, false
}

// rewriteHeader transforms the loader header at inPath: stale generated
// blocks above alias macros are dropped, fresh ones are inserted, everything
// else passes through untouched. The output always uses \n terminators and
// ends with a trailing newline, so re-running the tool on its own output is
// a no-op.
func rewriteHeader(inPath string, reg *Registry, refs *RefPages, logger *slog.Logger) ([]byte, rewriteStats, error) {
	raw, err := os.ReadFile(inPath)
	if err != nil {
		return nil, rewriteStats{}, fmt.Errorf("read %s: %w", inPath, err)
	}
	lines := splitLines(string(raw))

	// Pre-scan: mark every line of any existing block above a define.
	skip := make(map[int]bool)
	for i, line := range lines {
		if !defineRE.MatchString(line) {
			continue
		}
		if start, end, ok := findDocblockAbove(lines, i); ok {
			for t := start; t <= end; t++ {
				skip[t] = true
			}
		}
	}

	var stats rewriteStats
	out := make([]string, 0, len(lines))
	for i, line := range lines {
		if skip[i] {
			continue
		}
		if m := defineRE.FindStringSubmatch(line); m != nil {
			stats.defines++
			if doc, ok := buildDocblock(m[1], reg, refs); ok {
				out = append(out, doc...)
				stats.blocks++
			} else {
				logger.Debug("no signature information, skipping", "function", m[1])
			}
		}
		out = append(out, line)
	}

	return []byte(strings.Join(out, "\n") + "\n"), stats, nil
}

// processFile runs rewriteHeader and writes the result to outPath.
func processFile(inPath, outPath string, reg *Registry, refs *RefPages, logger *slog.Logger) (rewriteStats, error) {
	data, stats, err := rewriteHeader(inPath, reg, refs, logger)
	if err != nil {
		return rewriteStats{}, err
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return rewriteStats{}, fmt.Errorf("write %s: %w", outPath, err)
	}
	return stats, nil
}
