// Package wikitext implements a best-effort, fixed-vocabulary expander for
// wiki-style {{template|arg|...}} markup embedded in definition text.
//
// Expansion works innermost-first: the span regex refuses nested braces, so
// one pass resolves only the deepest templates, and the driver repeats passes
// until the text stops changing. Unrecognized templates and malformed
// invocations are left verbatim; expansion never fails a lookup.
package wikitext

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// maxPasses bounds the fixed-point iteration. A handler that reintroduced
// {{ markup would otherwise loop forever.
const maxPasses = 32

// ErrNoFixedPoint is returned when expansion is still changing the text
// after maxPasses. The last computed string is returned alongside it.
var ErrNoFixedPoint = errors.New("template expansion did not reach a fixed point")

// spanRe matches one innermost template span: {{content}} where content
// contains no opening brace. Nesting is handled by repeated passes, not by
// the grammar.
var spanRe = regexp.MustCompile(`(?s)\{\{([^{]*?)\}\}`)

// Expand rewrites all resolvable template spans in text and returns the
// result. On a non-terminating expansion it returns the last computed string
// together with ErrNoFixedPoint; callers may still use the string.
func Expand(text string) (string, error) {
	cur := text
	for pass := 0; pass < maxPasses; pass++ {
		next := spanRe.ReplaceAllStringFunc(cur, expandSpan)
		if next == cur {
			return cur, nil
		}
		cur = next
	}
	return cur, fmt.Errorf("expand after %d passes: %w", maxPasses, ErrNoFixedPoint)
}

// expandSpan resolves a single matched {{...}} span, falling back to the
// original span text when the dispatcher does not handle it.
func expandSpan(span string) string {
	content := span[2 : len(span)-2]
	args := strings.Split(content, "|")
	if out, ok := ExpandTemplate(args); ok {
		return out
	}
	return span
}
