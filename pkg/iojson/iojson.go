// Package iojson reads and writes the JSON documents behind the --json and
// --format json command variants.
package iojson

import (
	"encoding/json"
	"fmt"
	"io"
)

// Error is written to the error stream when a value cannot be encoded, so
// scripted callers still receive a JSON document.
type Error struct {
	Message string `json:"message"`
	Cause   string `json:"cause"`
}

// Encode writes obj as two-space indented JSON followed by a newline.
func Encode(w io.Writer, obj any) error {
	bits, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(bits))
	return err
}

// WriteWith encodes obj to w. If obj cannot be marshaled, an Error document
// goes to ew instead and the returned error reports the failure.
func WriteWith(w io.Writer, ew io.Writer, obj any) error {
	bits, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		if werr := Encode(ew, Error{Message: "encode output", Cause: err.Error()}); werr != nil {
			return werr
		}
		return fmt.Errorf("encode output: %w", err)
	}

	_, err = fmt.Fprintln(w, string(bits))
	return err
}
