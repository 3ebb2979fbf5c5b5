package presentation

// Book is the ordered table of contents handed over by the host tool.
type Book struct {
	Items []*Item
}

// Item is one entry of a book. Only chapters carry text; any other entry
// (separators, part titles) is kept in Raw and passed through untouched.
type Item struct {
	Chapter *Chapter
	Raw     any
}

// Chapter is a page of the book together with its nested pages.
type Chapter struct {
	Name     string
	Content  string
	SubItems []*Item

	// Extra holds host fields the preprocessor does not interpret
	// (number, path, parent names, ...). Adapters round-trip it.
	Extra map[string]any
}

// ChapterItem wraps a chapter into an Item.
func ChapterItem(ch *Chapter) *Item {
	return &Item{Chapter: ch}
}

// CountChapters returns the number of chapters in items, at every depth.
func CountChapters(items []*Item) int {
	n := 0
	for _, item := range items {
		if item == nil || item.Chapter == nil {
			continue
		}
		n += 1 + CountChapters(item.Chapter.SubItems)
	}
	return n
}
