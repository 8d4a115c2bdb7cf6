// Package jsonbridge converts values to and from their textual JSON form.
//
// Deserialization follows the pattern of parsing into a typed struct that
// carries the desired methods, so parsed data and behavior are combined
// without touching the parsed representation itself.
package jsonbridge

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// A ParseError reports input text that could not be decoded as JSON.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unable to parse json: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Serialize produces the canonical textual JSON encoding of v. Html
// characters are not escaped, see the comments in the output package for
// why the default encoder behavior is not what we want.
func Serialize(v any) (string, error) {
	buffer := &bytes.Buffer{}
	encoder := json.NewEncoder(buffer)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(v); err != nil {
		return "", err
	}
	// Encode terminates the value with a newline
	return strings.TrimSuffix(buffer.String(), "\n"), nil
}

// Deserialize parses text into out. Passing a pointer to a typed struct
// attaches that type's method set to the parsed data. Malformed input
// fails with a *ParseError.
func Deserialize(text string, out any) error {
	if err := json.Unmarshal([]byte(text), out); err != nil {
		return &ParseError{Err: err}
	}
	return nil
}
