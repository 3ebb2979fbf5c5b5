package presentation

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - Stub renderer and fixed decoration
// ---------------------------------------------------------------------------

// stubRenderer records invocations and wraps its input in <md>...</md>.
type stubRenderer struct {
	calls int
	err   error
}

func (s *stubRenderer) Render(markdown string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return "<md>" + strings.TrimSpace(markdown) + "</md>\n", nil
}

var testDecoration = Decoration{Header: "<H>", Footer: "<F>"}

func newTestPreprocessor(t *testing.T, opts ...Option) *Preprocessor {
	t.Helper()

	opts = append([]Option{WithDecoration(testDecoration)}, opts...)
	p, err := New(opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return p
}

func chapter(name, content string, sub ...*Item) *Item {
	return ChapterItem(&Chapter{Name: name, Content: content, SubItems: sub})
}

// ---------------------------------------------------------------------------
// TestRun - Tree walking
// ---------------------------------------------------------------------------

func TestRun_RewritesEveryDepth(t *testing.T) {
	t.Parallel()

	r := &stubRenderer{}
	p := newTestPreprocessor(t, WithRenderer(r))

	separator := &Item{Raw: "Separator"}
	book := &Book{Items: []*Item{
		chapter("intro", "$web-only$a$web-only-end$",
			chapter("intro.1", "$slides-only$b$slides-only-end$",
				chapter("intro.1.1", "$notes$c$notes-end$"),
			),
		),
		separator,
		chapter("plain", "no tags"),
	}}

	if err := p.Run(book); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := &Book{Items: []*Item{
		chapter("intro", `<H><div class="article-content">`+"\n<md>a</md>\n</div><F>",
			chapter("intro.1", `<H><div class="presentation-only">`+"\n<md>b</md>\n</div><F>",
				chapter("intro.1.1", "<H>\n<!--notesc--><F>"),
			),
		),
		{Raw: "Separator"},
		chapter("plain", "<H>no tags<F>"),
	}}

	if diff := cmp.Diff(want, book); diff != "" {
		t.Errorf("Run() mismatch (-want +got):\n%s", diff)
	}
	if book.Items[1] != separator {
		t.Error("non-chapter item was replaced")
	}
	if r.calls != 2 {
		t.Errorf("renderer calls = %d, want 2 (block rules only)", r.calls)
	}
}

func TestRun_DecoratesEachChapterOnce(t *testing.T) {
	t.Parallel()

	p := newTestPreprocessor(t, WithRenderer(&stubRenderer{}))
	book := &Book{Items: []*Item{
		chapter("a", "", chapter("b", "", chapter("c", ""))),
	}}

	if err := p.Run(book); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	for ch := book.Items[0].Chapter; ; ch = ch.SubItems[0].Chapter {
		if ch.Content != "<H><F>" {
			t.Errorf("chapter %q content = %q, want %q", ch.Name, ch.Content, "<H><F>")
		}
		if len(ch.SubItems) == 0 {
			break
		}
	}
}

func TestRun_NilInputs(t *testing.T) {
	t.Parallel()

	p := newTestPreprocessor(t)

	if err := p.Run(nil); err != nil {
		t.Errorf("Run(nil) = %v, want nil", err)
	}
	if err := p.ProcessItems([]*Item{nil, {Raw: 1}}); err != nil {
		t.Errorf("ProcessItems() = %v, want nil", err)
	}
}

func TestRun_PreservesExtraFields(t *testing.T) {
	t.Parallel()

	p := newTestPreprocessor(t)
	ch := &Chapter{Name: "x", Content: "text", Extra: map[string]any{"number": []int{1}}}

	if err := p.Run(&Book{Items: []*Item{ChapterItem(ch)}}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if diff := cmp.Diff(map[string]any{"number": []int{1}}, ch.Extra); diff != "" {
		t.Errorf("Extra changed (-want +got):\n%s", diff)
	}
}

// ---------------------------------------------------------------------------
// TestRun - Failures
// ---------------------------------------------------------------------------

func TestRun_RendererErrorAbortsWalk(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	p := newTestPreprocessor(t, WithRenderer(&stubRenderer{err: boom}))

	book := &Book{Items: []*Item{
		chapter("first", "plain"),
		chapter("second", "$web-only$x$web-only-end$"),
		chapter("third", "plain"),
	}}

	err := p.Run(book)
	if !errors.Is(err, boom) {
		t.Fatalf("Run() error = %v, want wrapping %v", err, boom)
	}
	if !errors.Is(err, ErrChapter) {
		t.Errorf("Run() error = %v, want ErrChapter", err)
	}
	if !strings.Contains(err.Error(), `"second"`) {
		t.Errorf("error %q should name the chapter", err.Error())
	}
	if got := book.Items[2].Chapter.Content; got != "plain" {
		t.Errorf("chapter after failure was processed: %q", got)
	}
}

func TestRun_Strict(t *testing.T) {
	t.Parallel()

	content := "$web-only$a$web-only-end$ $web-only$ dangling"

	lenient := newTestPreprocessor(t, WithRenderer(&stubRenderer{}))
	if err := lenient.Run(&Book{Items: []*Item{chapter("c", content)}}); err != nil {
		t.Fatalf("lenient Run() error = %v", err)
	}

	strict := newTestPreprocessor(t, WithRenderer(&stubRenderer{}), WithStrict(true))
	err := strict.Run(&Book{Items: []*Item{chapter("c", content)}})
	if !errors.Is(err, ErrUnbalancedMarkers) {
		t.Fatalf("strict Run() error = %v, want ErrUnbalancedMarkers", err)
	}
	if !strings.Contains(err.Error(), `rule "web-only"`) {
		t.Errorf("error %q should name the rule", err.Error())
	}
}

// ---------------------------------------------------------------------------
// TestRewrite - Rule pipeline
// ---------------------------------------------------------------------------

func TestRewrite_DefaultRules(t *testing.T) {
	t.Parallel()

	md := `
# Header
- list
- of
- items

$web-only$
# web only header
- web
- only
- list
$web-only-end$
$slides-only$
# presenting only header
- presenting
- only
- list
$slides-only-end$
`
	want := `
# Header
- list
- of
- items

<div class="article-content">
<h1>web only header</h1>
<ul>
<li>web</li>
<li>only</li>
<li>list</li>
</ul>
</div>
<div class="presentation-only">
<h1>presenting only header</h1>
<ul>
<li>presenting</li>
<li>only</li>
<li>list</li>
</ul>
</div>
`

	p := newTestPreprocessor(t)
	got, err := p.Rewrite(md)
	if err != nil {
		t.Fatalf("Rewrite() error = %v", err)
	}
	if got != want {
		t.Errorf("Rewrite() mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRewrite_NoMarkersIsIdentity(t *testing.T) {
	t.Parallel()

	text := "# Header\n- list\n- of\n- items\n"
	r := &stubRenderer{}
	p := newTestPreprocessor(t, WithRenderer(r))

	got, err := p.Rewrite(text)
	if err != nil {
		t.Fatalf("Rewrite() error = %v", err)
	}
	if got != text {
		t.Errorf("Rewrite() = %q, want input unchanged", got)
	}
	if r.calls != 0 {
		t.Errorf("renderer calls = %d, want 0", r.calls)
	}
}

func TestRewrite_LaterRuleSeesRenderedOutput(t *testing.T) {
	t.Parallel()

	p := newTestPreprocessor(t)
	got, err := p.Rewrite("$web-only$\n$notes$\nhidden\n$notes-end$\n$web-only-end$")
	if err != nil {
		t.Fatalf("Rewrite() error = %v", err)
	}

	want := "<div class=\"article-content\">\n<p>\n<!--notes\nhidden\n--></p>\n</div>"
	if got != want {
		t.Errorf("Rewrite() = %q, want %q", got, want)
	}
}

func TestRewrite_OrderMatters(t *testing.T) {
	t.Parallel()

	// Rule a emits rule b's markers.
	a := CommentRule("a", "$b$", "$b-end$")
	b := CommentRule("b", "[", "]")
	text := "$a$x$a-end$"

	ab := newTestPreprocessor(t, WithRules(a, b))
	ba := newTestPreprocessor(t, WithRules(b, a))

	gotAB, err := ab.Rewrite(text)
	if err != nil {
		t.Fatalf("Rewrite() error = %v", err)
	}
	gotBA, err := ba.Rewrite(text)
	if err != nil {
		t.Fatalf("Rewrite() error = %v", err)
	}

	if gotAB != "[x]" {
		t.Errorf("a then b = %q, want %q", gotAB, "[x]")
	}
	if gotBA != "$b$x$b-end$" {
		t.Errorf("b then a = %q, want %q", gotBA, "$b$x$b-end$")
	}
}

// ---------------------------------------------------------------------------
// TestNew - Construction
// ---------------------------------------------------------------------------

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	p, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if diff := cmp.Diff(DefaultRules(), p.Rules()); diff != "" {
		t.Errorf("Rules() mismatch (-want +got):\n%s", diff)
	}

	book := &Book{Items: []*Item{chapter("c", "body")}}
	if err := p.Run(book); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	got := book.Items[0].Chapter.Content
	if !strings.HasPrefix(got, "<style>") || !strings.HasSuffix(got, "</script>") {
		t.Errorf("content not decorated: %q", got)
	}
	if !strings.Contains(got, "</style>\n\nbody\n\n<script>") {
		t.Errorf("content not placed between style and script: %q", got)
	}
}

func TestNew_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opts    []Option
		wantErr error
	}{
		{
			name:    "invalid rule",
			opts:    []Option{WithRules(Rule{})},
			wantErr: ErrInvalidRule,
		},
		{
			name:    "missing asset path",
			opts:    []Option{WithAssetPath("/nonexistent/abc123xyz")},
			wantErr: ErrInvalidAssetPath,
		},
		{
			name:    "unknown style",
			opts:    []Option{WithStyle("no-such-style")},
			wantErr: ErrDecoration,
		},
		{
			name:    "unknown script",
			opts:    []Option{WithScript("no-such-script")},
			wantErr: ErrDecoration,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := New(tt.opts...)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("New() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestPreprocessor_SupportsRenderer(t *testing.T) {
	t.Parallel()

	p := newTestPreprocessor(t)

	tests := []struct {
		renderer string
		want     bool
	}{
		{"html", true},
		{"HTML", false},
		{"Html", false},
		{" html", false},
		{"epub", false},
		{"markdown", false},
		{"", false},
	}

	for _, tt := range tests {
		tt := tt
		if got := p.SupportsRenderer(tt.renderer); got != tt.want {
			t.Errorf("SupportsRenderer(%q) = %v, want %v", tt.renderer, got, tt.want)
		}
	}
	if p.Name() != Name {
		t.Errorf("Name() = %q, want %q", p.Name(), Name)
	}
}

func TestCountChapters(t *testing.T) {
	t.Parallel()

	items := []*Item{
		chapter("a", "", chapter("a.1", ""), chapter("a.2", "", chapter("a.2.1", ""))),
		{Raw: "Separator"},
		nil,
		chapter("b", ""),
	}
	if got := CountChapters(items); got != 5 {
		t.Errorf("CountChapters() = %d, want 5", got)
	}
}
