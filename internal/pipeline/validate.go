package pipeline

import (
	"fmt"
	"strings"
)

// Validate scans text once and checks that start and end markers alternate:
// every start is closed before the next start, and every end closes an open
// start. It reports the first offending marker with its line number.
// Unlike Spans, interleaved or dangling markers are surfaced as errors instead
// of being silently dropped.
func Validate(text, start, end string) error {
	if start == "" || end == "" {
		return nil
	}

	open := -1
	for off := 0; off < len(text); {
		si := indexFrom(text, start, off)
		ei := indexFrom(text, end, off)

		switch {
		case si < 0 && ei < 0:
			off = len(text)
		case ei >= 0 && (si < 0 || ei <= si):
			if open < 0 {
				return fmt.Errorf("%w: %q without %q at line %d", ErrUnbalancedMarkers, end, start, lineAt(text, ei))
			}
			open = -1
			off = ei + len(end)
		default:
			if open >= 0 {
				return fmt.Errorf("%w: %q at line %d opened again at line %d", ErrNestedMarkers, start, lineAt(text, open), lineAt(text, si))
			}
			open = si
			off = si + len(start)
		}
	}

	if open >= 0 {
		return fmt.Errorf("%w: %q at line %d is never closed by %q", ErrUnbalancedMarkers, start, lineAt(text, open), end)
	}
	return nil
}

// indexFrom returns the absolute offset of marker in text at or after off, or -1.
func indexFrom(text, marker string, off int) int {
	i := strings.Index(text[off:], marker)
	if i < 0 {
		return -1
	}
	return off + i
}

// lineAt returns the 1-based line number of offset.
func lineAt(text string, offset int) int {
	return strings.Count(text[:offset], "\n") + 1
}
