// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package textenc decodes documents and section files into Go strings.
// UTF-8 input is validated strictly; other charsets go through the IANA
// registry of golang.org/x/text.
package textenc

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"

	"github.com/pdiddy/notesplit/pkg/types"
)

// Decode converts data in the named charset to a string. An empty charset
// means UTF-8. Invalid UTF-8 input yields an encoding-kind error; an unknown
// charset yields an invalid-config error.
func Decode(data []byte, charset string) (string, error) {
	name := strings.ToLower(strings.TrimSpace(charset))
	if name == "" || name == "utf-8" || name == "utf8" {
		if !utf8.Valid(data) {
			return "", &types.OpError{
				Op:   "textenc.decode",
				Kind: types.KindEncoding,
				Err:  fmt.Errorf("invalid UTF-8 at byte %d", invalidOffset(data)),
			}
		}
		return string(data), nil
	}

	enc, err := lookup(name)
	if err != nil {
		return "", err
	}
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", &types.OpError{Op: "textenc.decode", Kind: types.KindEncoding, Err: err}
	}
	return string(out), nil
}

// Supported reports whether charset can be decoded.
func Supported(charset string) bool {
	name := strings.ToLower(strings.TrimSpace(charset))
	if name == "" || name == "utf-8" || name == "utf8" {
		return true
	}
	_, err := lookup(name)
	return err == nil
}

func lookup(name string) (encoding.Encoding, error) {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		if err == nil {
			err = fmt.Errorf("charset %q has no decoder", name)
		}
		return nil, &types.OpError{Op: "textenc.lookup", Kind: types.KindInvalidConfig, Err: err}
	}
	return enc, nil
}

func invalidOffset(data []byte) int {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return len(data)
}

var newlineReplacer = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// UniversalNewlines rewrites "\r\n" and lone "\r" terminators as "\n".
func UniversalNewlines(s string) string {
	if !strings.ContainsRune(s, '\r') {
		return s
	}
	return newlineReplacer.Replace(s)
}
