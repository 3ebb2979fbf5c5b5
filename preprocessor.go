package presentation

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/alnah/mdbook-presentation/internal/pipeline"
)

// Name is the preprocessor name, also the book.toml table key
// ([preprocessor.presentation]).
const Name = "presentation"

// SupportedRenderer is the only output format the generated markup targets.
const SupportedRenderer = "html"

// Preprocessor rewrites tagged regions of every chapter of a book.
// Create with New(); a Preprocessor is immutable and may be reused.
type Preprocessor struct {
	rules      []Rule
	tagRules   []pipeline.TagRule
	renderer   Renderer
	decoration *Decoration
	strict     bool
	logger     *slog.Logger

	highlightStyle string
	assetPath      string
	styleName      string
	scriptName     string
}

// New creates a Preprocessor with the built-in rules, goldmark rendering and
// the embedded decoration. Use options to customize behavior.
// Returns error if a rule is invalid or decoration assets cannot be loaded.
func New(opts ...Option) (*Preprocessor, error) {
	p := &Preprocessor{
		rules:  DefaultRules(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(p)
	}

	p.tagRules = make([]pipeline.TagRule, len(p.rules))
	for i, r := range p.rules {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
		p.tagRules[i] = r.tagRule()
	}

	if p.renderer == nil {
		p.renderer = pipeline.NewGoldmarkRenderer(pipeline.WithHighlighting(p.highlightStyle))
	}

	if p.decoration == nil {
		d, err := LoadDecoration(p.assetPath, p.styleName, p.scriptName)
		if err != nil {
			return nil, err
		}
		p.decoration = &d
	}

	return p, nil
}

// Name returns the preprocessor name.
func (p *Preprocessor) Name() string {
	return Name
}

// SupportsRenderer reports whether output for renderer can be produced.
// Only the exact name "html" is supported.
func (p *Preprocessor) SupportsRenderer(renderer string) bool {
	return renderer == SupportedRenderer
}

// Rules returns a copy of the rules in application order.
func (p *Preprocessor) Rules() []Rule {
	return append([]Rule(nil), p.rules...)
}

// Run rewrites every chapter of book in place.
// The first failure aborts the walk; chapters visited before it are already
// rewritten, so callers should discard the book on error.
func (p *Preprocessor) Run(book *Book) error {
	if book == nil {
		return nil
	}
	return p.ProcessItems(book.Items)
}

// ProcessItems rewrites every chapter in items and their sub-chapters, depth
// first. Non-chapter items are left untouched.
func (p *Preprocessor) ProcessItems(items []*Item) error {
	for _, item := range items {
		if item == nil || item.Chapter == nil {
			continue
		}
		if err := p.processChapter(item.Chapter); err != nil {
			return err
		}
	}
	return nil
}

func (p *Preprocessor) processChapter(ch *Chapter) error {
	p.logger.Debug("processing chapter", "chapter", ch.Name)

	content, err := p.Rewrite(ch.Content)
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrChapter, ch.Name, err)
	}
	ch.Content = p.decoration.Apply(content)

	return p.ProcessItems(ch.SubItems)
}

// Rewrite applies every rule to text in order, each rule reading the output of
// the previous one. No decoration is added.
func (p *Preprocessor) Rewrite(text string) (string, error) {
	for i, tr := range p.tagRules {
		rule := p.rules[i]

		if p.strict {
			if err := pipeline.Validate(text, tr.Start, tr.End); err != nil {
				return "", fmt.Errorf("rule %q: %w", rule.label(), err)
			}
		}

		if p.logger.Enabled(context.Background(), slog.LevelDebug) {
			p.logger.Debug("applying rule", "rule", rule.label(), "regions", len(pipeline.Spans(text, tr.Start, tr.End)))
		}

		var err error
		text, err = pipeline.Rewrite(text, tr, p.renderer)
		if err != nil {
			return "", fmt.Errorf("rule %q: %w", rule.label(), err)
		}
	}
	return text, nil
}
