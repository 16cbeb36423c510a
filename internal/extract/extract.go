// Package extract pulls ordered column-name lists out of raw source bytes.
// It is the boundary between format-specific parsing and the schema core:
// whatever the format, the core only ever sees an ordered []string of raw
// names. Malformed content is reported as an error; callers decide whether
// to fail or degrade to an empty schema.
package extract

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"sort"
)

// FieldNames extracts the ordered column names from data in the given
// format:
//
//   - csv: the fields of the first record
//   - json: the keys of the first object (first element when the root is a
//     non-empty array), in document order
//   - xlsx: the first row of the first sheet
//   - xml: the unique child-element names directly under the document root,
//     sorted lexicographically
func FieldNames(data []byte, format Format) ([]string, error) {
	switch format {
	case FormatCSV:
		return csvFields(data)
	case FormatJSON:
		return jsonFields(data)
	case FormatXLSX:
		return xlsxFields(data)
	case FormatXML:
		return xmlFields(data)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

func csvFields(data []byte) ([]string, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	return header, nil
}

func jsonFields(data []byte) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		return nil, errors.New("json root is not an object or array")
	}

	switch delim {
	case '{':
	case '[':
		if !dec.More() {
			return nil, errors.New("json array is empty")
		}
		tok, err = dec.Token()
		if err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
		if d, ok := tok.(json.Delim); !ok || d != '{' {
			return nil, errors.New("json array element is not an object")
		}
	default:
		return nil, errors.New("json root is not an object or array")
	}

	// The decoder is now positioned inside the first object; walk its keys
	// in document order, skipping the values.
	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected json token %v", tok)
		}
		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return nil, fmt.Errorf("decode json value for %q: %w", key, err)
		}
		keys = append(keys, key)
	}
	return keys, nil
}

func xmlFields(data []byte) ([]string, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	var (
		names   []string
		seen    = make(map[string]struct{})
		depth   int
		sawRoot bool
	)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode xml: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			sawRoot = true
			if depth == 2 {
				if _, ok := seen[t.Name.Local]; !ok {
					seen[t.Name.Local] = struct{}{}
					names = append(names, t.Name.Local)
				}
			}
		case xml.EndElement:
			depth--
		}
	}
	if !sawRoot {
		return nil, errors.New("xml document has no root element")
	}

	sort.Strings(names)
	return names, nil
}
