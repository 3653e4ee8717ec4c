package registry

import "strings"

// Reconcile merges key into the declaration block held in existing and
// returns the canonical new content for a tail-less index file (the per-year
// mod.rs). Pass "" when the file does not exist yet. The second return value
// is true when the key was newly added, false when it was already present.
//
// The output is always the canonical render of the merged key set, so
// malformed declaration-shaped lines present in the input are dropped on
// rewrite.
func Reconcile(existing string, key int, prefix string) (string, bool) {
	keys := ParseDeclarations(SplitLines(existing), prefix)
	_, present := keys[key]
	keys[key] = struct{}{}
	return RenderDeclarations(keys, prefix), !present
}

// ReconcileWithTail merges key into the declaration block of a top-level
// index file (main.rs) whose declarations end at the first blank line.
// Everything from that blank line onward is the tail block and is reproduced
// verbatim. When the key is already present the input is returned unchanged
// and no rewrite should happen.
//
// If the file has no blank line at all, the tail boundary falls back to 0:
// the whole original content is treated as tail and the new declaration
// block is prepended above it, old declarations included. Callers relying on
// a well-formed index must keep the blank separator in place.
func ReconcileWithTail(existing string, key int, prefix string) (string, bool) {
	lines := SplitLines(existing)
	keys, boundary := ParseDeclarationsUntilBlank(lines, prefix)
	if _, present := keys[key]; present {
		return existing, false
	}
	keys[key] = struct{}{}

	// The blank separator line is lines[boundary] itself, so joining the
	// tail slice as-is restores it.
	out := RenderDeclarations(keys, prefix) + strings.Join(lines[boundary:], "\n")
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out, true
}
