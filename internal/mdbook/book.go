package mdbook

import (
	"encoding/json"
	"fmt"

	presentation "github.com/alnah/mdbook-presentation"
)

// Book item keys used by mdBook's JSON encoding.
const (
	keyChapter  = "Chapter"
	keyName     = "name"
	keyContent  = "content"
	keySubItems = "sub_items"
)

// itemKeys lists the book fields holding the table of contents, newest first.
var itemKeys = []string{"items", "sections"}

// bookEnvelope keeps the book-level fields next to the decoded items.
type bookEnvelope struct {
	itemsKey string
	extra    map[string]json.RawMessage
}

func decodeBook(data []byte) (*presentation.Book, *bookEnvelope, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, nil, fmt.Errorf("%w: book: %v", ErrMalformedInput, err)
	}

	env := &bookEnvelope{extra: fields}
	for _, key := range itemKeys {
		if _, ok := fields[key]; ok {
			env.itemsKey = key
			break
		}
	}
	if env.itemsKey == "" {
		return nil, nil, fmt.Errorf("%w: book has neither %q nor %q", ErrMalformedInput, itemKeys[0], itemKeys[1])
	}

	items, err := decodeItems(fields[env.itemsKey])
	if err != nil {
		return nil, nil, err
	}
	delete(fields, env.itemsKey)

	return &presentation.Book{Items: items}, env, nil
}

func decodeItems(data json.RawMessage) ([]*presentation.Item, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("%w: items: %v", ErrMalformedInput, err)
	}

	items := make([]*presentation.Item, 0, len(raws))
	for _, raw := range raws {
		item, err := decodeItem(raw)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// decodeItem decodes {"Chapter": {...}}; anything else ("Separator",
// {"PartTitle": "..."}) is kept verbatim.
func decodeItem(raw json.RawMessage) (*presentation.Item, error) {
	var variant map[string]json.RawMessage
	if err := json.Unmarshal(raw, &variant); err != nil || len(variant) != 1 {
		return &presentation.Item{Raw: raw}, nil
	}
	chRaw, ok := variant[keyChapter]
	if !ok {
		return &presentation.Item{Raw: raw}, nil
	}

	ch, err := decodeChapter(chRaw)
	if err != nil {
		return nil, err
	}
	return presentation.ChapterItem(ch), nil
}

func decodeChapter(data json.RawMessage) (*presentation.Chapter, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("%w: chapter: %v", ErrMalformedInput, err)
	}

	ch := &presentation.Chapter{Extra: make(map[string]any, len(fields))}
	if err := decodeString(fields, keyName, &ch.Name); err != nil {
		return nil, err
	}
	if err := decodeString(fields, keyContent, &ch.Content); err != nil {
		return nil, fmt.Errorf("chapter %q: %w", ch.Name, err)
	}
	if raw, ok := fields[keySubItems]; ok && string(raw) != "null" {
		sub, err := decodeItems(raw)
		if err != nil {
			return nil, fmt.Errorf("chapter %q: %w", ch.Name, err)
		}
		ch.SubItems = sub
	}

	for k, v := range fields {
		switch k {
		case keyName, keyContent, keySubItems:
			continue
		}
		ch.Extra[k] = v
	}
	return ch, nil
}

func decodeString(fields map[string]json.RawMessage, key string, dst *string) error {
	raw, ok := fields[key]
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: field %q: %v", ErrMalformedInput, key, err)
	}
	return nil
}

func encodeBook(book *presentation.Book, env *bookEnvelope) map[string]any {
	out := make(map[string]any, len(env.extra)+1)
	for k, v := range env.extra {
		out[k] = v
	}
	out[env.itemsKey] = encodeItems(book.Items)
	return out
}

func encodeItems(items []*presentation.Item) []any {
	out := make([]any, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		if item.Chapter == nil {
			out = append(out, item.Raw)
			continue
		}
		out = append(out, map[string]any{keyChapter: encodeChapter(item.Chapter)})
	}
	return out
}

func encodeChapter(ch *presentation.Chapter) map[string]any {
	out := make(map[string]any, len(ch.Extra)+3)
	for k, v := range ch.Extra {
		out[k] = v
	}
	out[keyName] = ch.Name
	out[keyContent] = ch.Content
	out[keySubItems] = encodeItems(ch.SubItems)
	return out
}
