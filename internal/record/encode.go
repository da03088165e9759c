// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package record

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdiddy/notesplit/internal/fsutil"
	"github.com/pdiddy/notesplit/pkg/types"
)

// OutputFileName is the document written by the build stage.
const OutputFileName = "output.json"

// Encode writes records as an indented JSON array. Non-ASCII text, including
// U+2028 and U+2029, is written as-is and an empty collection encodes as [].
func Encode(w io.Writer, records []types.Record) error {
	if records == nil {
		records = []types.Record{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encoding records: %w", err)
	}
	if _, err := w.Write(unescapeLineSeparators(buf.Bytes())); err != nil {
		return fmt.Errorf("encoding records: %w", err)
	}
	return nil
}

// unescapeLineSeparators turns the \u2028 and \u2029 escapes encoding/json
// always emits back into raw UTF-8. Other escapes, including an escaped
// backslash followed by the text "u2028", are copied unchanged.
func unescapeLineSeparators(data []byte) []byte {
	if !bytes.Contains(data, []byte(`\u202`)) {
		return data
	}
	out := make([]byte, 0, len(data))
	for i := 0; i < len(data); i++ {
		c := data[i]
		if c != '\\' || i+1 >= len(data) {
			out = append(out, c)
			continue
		}
		if rest := data[i+1:]; len(rest) >= 5 && rest[0] == 'u' && rest[1] == '2' && rest[2] == '0' && rest[3] == '2' && (rest[4] == '8' || rest[4] == '9') {
			if rest[4] == '8' {
				out = append(out, "\u2028"...)
			} else {
				out = append(out, "\u2029"...)
			}
			i += 5
			continue
		}
		out = append(out, c, data[i+1])
		i++
	}
	return out
}

// Decode parses a document produced by Encode.
func Decode(r io.Reader) ([]types.Record, error) {
	var records []types.Record
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("decoding records: %w", err)
	}
	return records, nil
}

// WriteFile creates dir if needed and atomically replaces dir/output.json
// with the encoded records. It returns the written path.
func WriteFile(dir string, records []types.Record) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &types.OpError{Op: "record.mkdir", Kind: types.KindIO, Path: dir, Err: err}
	}

	var buf bytes.Buffer
	if err := Encode(&buf, records); err != nil {
		return "", err
	}

	path := filepath.Join(dir, OutputFileName)
	if err := fsutil.WriteFileAtomic(path, buf.Bytes(), 0o644); err != nil {
		return "", &types.OpError{Op: "record.write", Kind: types.KindIO, Path: path, Err: err}
	}
	return path, nil
}
