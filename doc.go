// Package presentation rewrites tagged regions of mdBook chapters so one book
// can serve both as an article-style website and as presentation slides.
//
// # Quick Start
//
// Create a preprocessor and run it over a book:
//
//	pre, err := presentation.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := pre.Run(book); err != nil {
//	    log.Fatal(err)
//	}
//
// Chapter text is rewritten in place. With the built-in rules,
//
//	$web-only$
//	# Shown on the website only
//	$web-only-end$
//
// becomes a <div class="article-content"> holding the rendered markdown,
// $slides-only$ regions become <div class="presentation-only"> blocks, and
// $notes$ regions become HTML comments the injected script prints to the
// browser console.
//
// # Rewriting Pipeline
//
// Each chapter goes through these stages:
//
//  1. Every rule, in declared order; each rule scans the output of the previous one
//  2. Decoration: the stylesheet is prepended and the script appended
//  3. The same procedure for every sub-chapter, at any depth
//
// Start and end markers are paired by position: the k-th start marker closes
// at the k-th end marker. Use WithStrict to reject unbalanced or nested
// markers instead.
//
// # Configuration
//
// Use functional options to customize the preprocessor:
//
//	pre, err := presentation.New(
//	    presentation.WithRules(
//	        presentation.BlockRule("web-only", "article-content"),
//	        presentation.CommentRule("notes", "\n<!--notes", "-->"),
//	    ),
//	    presentation.WithHighlighting("github"),
//	    presentation.WithAssetPath("theme/presentation"),
//	    presentation.WithStrict(true),
//	)
//
// # Host Integration
//
// This package knows nothing about mdBook's JSON protocol. The
// cmd/mdbook-presentation binary adapts stdin/stdout to Book values.
package presentation
