package presentation

import (
	"fmt"
	"strings"

	"github.com/alnah/mdbook-presentation/internal/pipeline"
)

// Policy selects how a tagged region is replaced.
type Policy string

// Replacement policies.
const (
	// PolicyBlock renders the region body as markdown inside <div class="...">.
	PolicyBlock Policy = "block"
	// PolicyComment swaps the markers for literal strings, body left verbatim.
	PolicyComment Policy = "comment"
)

// Built-in rule names and classes.
const (
	WebOnly           = "web-only"
	SlidesOnly        = "slides-only"
	Notes             = "notes"
	ArticleClass      = "article-content"
	PresentationClass = "presentation-only"
)

// Rule describes one tagged region kind: a start marker, an end marker and
// what replaces the region.
type Rule struct {
	Name   string
	Start  string // default "$Name$"
	End    string // default "$Name-end$"
	Policy Policy // default PolicyBlock
	Class  string // PolicyBlock: class of the wrapping div
	Open   string // PolicyComment: replaces the start marker
	Close  string // PolicyComment: replaces the end marker
}

// BlockRule returns a rule rendering $name$ ... $name-end$ into a div of class.
func BlockRule(name, class string) Rule {
	return Rule{Name: name, Policy: PolicyBlock, Class: class}
}

// CommentRule returns a rule replacing $name$ with open and $name-end$ with close.
func CommentRule(name, open, close string) Rule {
	return Rule{Name: name, Policy: PolicyComment, Open: open, Close: close}
}

// DefaultRules returns the built-in rules in application order.
// Block rules run first, so the notes rule sees their rendered HTML.
func DefaultRules() []Rule {
	return []Rule{
		BlockRule(WebOnly, ArticleClass),
		BlockRule(SlidesOnly, PresentationClass),
		CommentRule(Notes, "\n<!--notes", "-->"),
	}
}

// StartMarker returns the literal that opens a region.
func (r Rule) StartMarker() string {
	if r.Start != "" {
		return r.Start
	}
	return "$" + r.Name + "$"
}

// EndMarker returns the literal that closes a region.
func (r Rule) EndMarker() string {
	if r.End != "" {
		return r.End
	}
	return "$" + r.Name + "-end$"
}

// label names the rule in errors and logs.
func (r Rule) label() string {
	if r.Name != "" {
		return r.Name
	}
	return r.StartMarker()
}

// Validate checks that the rule can be applied unambiguously.
func (r Rule) Validate() error {
	if r.Name == "" && (r.Start == "" || r.End == "") {
		return fmt.Errorf("%w: name or both markers required", ErrInvalidRule)
	}

	start, end := r.StartMarker(), r.EndMarker()
	if strings.Contains(end, start) || strings.Contains(start, end) {
		return fmt.Errorf("%w: %q: markers %q and %q overlap", ErrInvalidRule, r.label(), start, end)
	}

	switch r.Policy {
	case "", PolicyBlock:
		if strings.ContainsAny(r.Class, "\"<>") {
			return fmt.Errorf("%w: %q: class %q contains markup characters", ErrInvalidRule, r.label(), r.Class)
		}
	case PolicyComment:
		// any literal is accepted
	default:
		return fmt.Errorf("%w: %q: unknown policy %q", ErrInvalidRule, r.label(), r.Policy)
	}

	return nil
}

// tagRule converts the rule to its pipeline form. The rule must be valid.
func (r Rule) tagRule() pipeline.TagRule {
	tr := pipeline.TagRule{
		Start: r.StartMarker(),
		End:   r.EndMarker(),
	}
	if r.Policy == PolicyComment {
		tr.Policy = pipeline.PolicyComment
		tr.Open = r.Open
		tr.Close = r.Close
	} else {
		tr.Policy = pipeline.PolicyBlock
		tr.Class = r.Class
	}
	return tr
}
