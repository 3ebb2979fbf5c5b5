package mdbook

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	presentation "github.com/alnah/mdbook-presentation"
)

// MaxInputSize limits stdin to prevent memory exhaustion (256MB).
var MaxInputSize int64 = 256 << 20

// Input is one decoded preprocessor request.
type Input struct {
	Context *Context
	Book    *presentation.Book

	envelope *bookEnvelope
}

// ReadInput decodes the [context, book] pair mdBook writes to stdin.
func ReadInput(r io.Reader) (*Input, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxInputSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: reading input: %v", ErrMalformedInput, err)
	}
	if int64(len(data)) > MaxInputSize {
		return nil, fmt.Errorf("%w: input exceeds %d bytes", ErrMalformedInput, MaxInputSize)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrMalformedInput)
	}

	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	if len(pair) != 2 {
		return nil, fmt.Errorf("%w: want [context, book], got %d elements", ErrMalformedInput, len(pair))
	}
	if !json.Valid(pair[0]) || bytes.TrimSpace(pair[0])[0] != '{' {
		return nil, fmt.Errorf("%w: context must be an object", ErrMalformedInput)
	}

	book, env, err := decodeBook(pair[1])
	if err != nil {
		return nil, err
	}

	return &Input{
		Context:  NewContext(pair[0]),
		Book:     book,
		envelope: env,
	}, nil
}

// WriteBook encodes the book, with every field received in ReadInput, to w.
func (in *Input) WriteBook(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(encodeBook(in.Book, in.envelope)); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteBook, err)
	}
	return nil
}
