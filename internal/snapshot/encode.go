package snapshot

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
)

var errNotJSON = errors.New("invalid JSON document")

// reencode rewrites body as compact JSON in its original key order. Numbers
// keep their literal text, and strings are re-escaped without \uXXXX for
// non-ASCII runes, HTML characters or "/".
func reencode(body []byte) ([]byte, error) {
	if !json.Valid(body) {
		return nil, errNotJSON
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var out, scratch bytes.Buffer
	enc := json.NewEncoder(&scratch)
	enc.SetEscapeHTML(false)

	// One entry per open container: whether it is an object, and how many
	// tokens (keys and values) it has seen so far.
	type frame struct {
		object bool
		n      int
	}
	var stack []frame

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if d, ok := tok.(json.Delim); ok && (d == '}' || d == ']') {
			stack = stack[:len(stack)-1]
			out.WriteByte(byte(d))
			continue
		}

		if len(stack) > 0 {
			top := &stack[len(stack)-1]
			switch {
			case top.object && top.n%2 == 1:
				out.WriteByte(':')
			case top.n > 0:
				out.WriteByte(',')
			}
			top.n++
		}

		switch v := tok.(type) {
		case json.Delim:
			out.WriteByte(byte(v))
			stack = append(stack, frame{object: v == '{'})
		case json.Number:
			out.WriteString(v.String())
		default:
			scratch.Reset()
			if err := enc.Encode(v); err != nil {
				return nil, err
			}
			out.Write(bytes.TrimRight(scratch.Bytes(), "\n"))
		}
	}
	return out.Bytes(), nil
}
