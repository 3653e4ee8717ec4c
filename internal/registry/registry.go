// Package registry implements the module-index reconciliation core of aocgen.
// An index file is a block of declaration lines of the form "mod <prefix><N>;"
// (the per-year mod.rs uses the "day" prefix, the top-level main.rs uses "y").
// The top-level index additionally carries a tail block - everything from the
// first blank line to end of file - which is never parsed and is reproduced
// verbatim on rewrite.
//
// Reconciliation is idempotent: merging a key that is already registered
// yields byte-identical output.
package registry

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// DayPrefix and YearPrefix are the declaration prefixes used by the two
// index file kinds.
const (
	DayPrefix  = "day"
	YearPrefix = "y"
)

// SplitLines splits file content into lines the way the reconcilers expect:
// a trailing newline does not produce a final empty line, and empty content
// produces no lines at all.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// parseDeclaration reports the key of a single declaration line, if the line
// (after trimming surrounding whitespace) has exactly the surface form
// "mod <prefix><int>;". Declaration-shaped lines whose middle is not an
// integer (e.g. "mod dayX;") are not declarations; callers skip them
// silently. That leniency is deliberate - index files get hand-edited.
func parseDeclaration(line, prefix string) (int, bool) {
	s := strings.TrimSpace(line)
	head := "mod " + prefix
	if !strings.HasPrefix(s, head) || !strings.HasSuffix(s, ";") {
		return 0, false
	}
	key, err := strconv.Atoi(s[len(head) : len(s)-1])
	if err != nil {
		return 0, false
	}
	return key, true
}

// ParseDeclarations extracts the set of declaration keys found anywhere in
// lines. Non-declaration lines are ignored.
func ParseDeclarations(lines []string, prefix string) map[int]struct{} {
	keys := make(map[int]struct{})
	for _, line := range lines {
		if key, ok := parseDeclaration(line, prefix); ok {
			keys[key] = struct{}{}
		}
	}
	return keys
}

// ParseDeclarationsUntilBlank extracts declaration keys from lines, stopping
// at the first line that is blank after trimming, and returns the index of
// that line (the start of the tail block). Declarations after a blank line
// are not recognized.
//
// If no blank line exists the boundary stays 0, so the caller treats the
// entire content as tail. ReconcileWithTail documents the resulting prepend
// behavior.
func ParseDeclarationsUntilBlank(lines []string, prefix string) (map[int]struct{}, int) {
	keys := make(map[int]struct{})
	boundary := 0
	for idx, line := range lines {
		if strings.TrimSpace(line) == "" {
			boundary = idx
			break
		}
		if key, ok := parseDeclaration(line, prefix); ok {
			keys[key] = struct{}{}
		}
	}
	return keys, boundary
}

// SortedKeys returns the keys in ascending numeric order.
func SortedKeys(keys map[int]struct{}) []int {
	out := make([]int, 0, len(keys))
	for k := range keys {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}

// RenderDeclarations renders the canonical declaration block: one line per
// key in ascending numeric order (so 10 sorts after 9, never between 1 and
// 2), with a trailing newline. An empty key set renders to the empty string.
func RenderDeclarations(keys map[int]struct{}, prefix string) string {
	var b strings.Builder
	for _, k := range SortedKeys(keys) {
		fmt.Fprintf(&b, "mod %s%d;\n", prefix, k)
	}
	return b.String()
}
