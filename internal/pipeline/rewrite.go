package pipeline

import (
	"fmt"
	"strings"
)

// Policy selects how the body of a matched region is replaced.
type Policy int

const (
	// PolicyBlock wraps the rendered body in a <div> carrying a class.
	PolicyBlock Policy = iota
	// PolicyComment swaps both markers for literal strings and keeps the body verbatim.
	PolicyComment
)

// String returns the configuration name of the policy.
func (p Policy) String() string {
	switch p {
	case PolicyBlock:
		return "block"
	case PolicyComment:
		return "comment"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// TagRule is a start/end marker pair and what to do with the text between them.
type TagRule struct {
	Start  string
	End    string
	Policy Policy
	Class  string // PolicyBlock only
	Open   string // PolicyComment only, replaces Start
	Close  string // PolicyComment only, replaces End
}

// Span locates one paired region. Start is the offset of the start marker,
// End the offset of the end marker.
type Span struct {
	Start int
	End   int
}

// Spans pairs the k-th start marker occurrence with the k-th end marker
// occurrence, both found left to right without overlap. Pairing stops as soon
// as either list runs out; trailing markers of the longer list are ignored.
// No nesting is considered and a pair's end may precede its start.
func Spans(text, start, end string) []Span {
	starts := occurrences(text, start)
	ends := occurrences(text, end)

	n := min(len(starts), len(ends))
	if n == 0 {
		return nil
	}

	spans := make([]Span, n)
	for k := 0; k < n; k++ {
		spans[k] = Span{Start: starts[k], End: ends[k]}
	}
	return spans
}

// occurrences returns the offsets of every non-overlapping match of marker.
func occurrences(text, marker string) []int {
	if marker == "" {
		return nil
	}

	var offsets []int
	for off := 0; off <= len(text); {
		i := strings.Index(text[off:], marker)
		if i < 0 {
			break
		}
		offsets = append(offsets, off+i)
		off += i + len(marker)
	}
	return offsets
}

// Rewrite replaces every paired region of text according to rule.
// Text outside the regions is copied unchanged and in order; with no pairs
// the input is returned as is. Pairs that run backwards or start inside an
// already replaced region are left untouched.
// The renderer is only called for PolicyBlock rules, once per region.
func Rewrite(text string, rule TagRule, r Renderer) (string, error) {
	spans := Spans(text, rule.Start, rule.End)
	if len(spans) == 0 {
		return text, nil
	}

	var b strings.Builder
	b.Grow(len(text) + len(spans)*(len(rule.Class)+len(rule.Open)+len(rule.Close)+32))

	last := 0
	for _, sp := range spans {
		bodyStart := sp.Start + len(rule.Start)
		if sp.Start < last || sp.End < bodyStart {
			continue
		}

		b.WriteString(text[last:sp.Start])
		if err := writeRegion(&b, rule, text[bodyStart:sp.End], r); err != nil {
			return "", err
		}
		last = sp.End + len(rule.End)
	}
	b.WriteString(text[last:])

	return b.String(), nil
}

// writeRegion writes the replacement for one region body.
func writeRegion(b *strings.Builder, rule TagRule, body string, r Renderer) error {
	if rule.Policy == PolicyComment {
		b.WriteString(rule.Open)
		b.WriteString(body)
		b.WriteString(rule.Close)
		return nil
	}

	if r == nil {
		return ErrNilRenderer
	}
	html, err := r.Render(body)
	if err != nil {
		return fmt.Errorf("rendering %q block: %w", rule.Class, err)
	}

	b.WriteString(`<div class="`)
	b.WriteString(rule.Class)
	b.WriteString(`">`)
	// The renderer starts every block on a fresh line.
	if html != "" {
		b.WriteByte('\n')
		b.WriteString(html)
	}
	b.WriteString("</div>")
	return nil
}
