package extract

import (
	"bytes"
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DecodeText converts text-format source bytes to UTF-8, honoring a UTF-8 or
// UTF-16 byte order mark. Bytes that are neither valid UTF-8 nor BOM-marked
// UTF-16 are a transport-level error: the caller rejects the whole request
// without consulting the schema core.
func DecodeText(data []byte) ([]byte, error) {
	switch {
	case bytes.HasPrefix(data, utf8BOM):
		return data[len(utf8BOM):], nil
	case bytes.HasPrefix(data, []byte{0xFF, 0xFE}), bytes.HasPrefix(data, []byte{0xFE, 0xFF}):
		dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		out, _, err := transform.Bytes(dec, data)
		if err != nil {
			return nil, fmt.Errorf("decode utf-16: %w", err)
		}
		return out, nil
	}
	if !utf8.Valid(data) {
		return nil, errors.New("input is not valid utf-8")
	}
	return data, nil
}
