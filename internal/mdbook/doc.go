// Package mdbook adapts mdBook's preprocessor protocol to presentation.Book.
//
// mdBook runs a preprocessor twice per build:
//
//	mdbook-presentation supports html   # exit status 0 = supported
//	mdbook-presentation < [context, book] > book
//
// The second call receives a JSON array holding the preprocessor context and
// the book, and expects the (modified) book back on stdout. Fields this
// package does not understand are round-tripped untouched, so newer mdBook
// releases keep working.
package mdbook
