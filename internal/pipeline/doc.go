// Package pipeline implements the chapter rewriting stages.
//
// This package handles the text-level work done on every chapter:
//   - Locating tagged regions ($name$ ... $name-end$) by positional pairing
//   - Replacing each region according to its policy (rendered block or comment)
//   - Markdown to HTML rendering of block bodies via Goldmark
//   - Strict, nesting-aware validation of marker balance
//
// Tree traversal and decoration are handled by the root presentation package.
// This separation keeps the pipeline focused on a single text and a single
// rule, with no knowledge of books, chapters or the host tool.
package pipeline
