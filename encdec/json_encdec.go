package encdec

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
)

// JSONEncoderDecoder writes values as indented JSON and reads them back
// strictly: unknown fields and trailing data are rejected.
type JSONEncoderDecoder struct {
	// Compact disables indentation.
	Compact bool
}

var _ EncoderDecoder = JSONEncoderDecoder{}

// Encode encodes the given value into JSON format and writes it to the writer.
func (d JSONEncoderDecoder) Encode(w io.Writer, value any) error {
	if w == nil {
		return errors.New("writer cannot be nil")
	}

	encoder := json.NewEncoder(w)
	if !d.Compact {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(value); err != nil {
		return fmt.Errorf("failed to encode value: %w", err)
	}
	return nil
}

// Decode decodes JSON data from the reader into the given value.
func (d JSONEncoderDecoder) Decode(r io.Reader, value any) error {
	if r == nil {
		return errors.New("reader cannot be nil")
	}
	if err := requireNonNilPointer(value, "value"); err != nil {
		return err
	}

	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(value); err != nil {
		return fmt.Errorf("failed to decode JSON: %w", err)
	}
	// Reject trailing data after the first value.
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return errors.New("unexpected trailing data after JSON value")
		}
		return fmt.Errorf("trailing data validation: %w", err)
	}
	return nil
}

func requireNonNilPointer(p any, name string) error {
	if p == nil {
		return fmt.Errorf("%s cannot be nil", name)
	}
	rv := reflect.ValueOf(p)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("%s must be a non-nil pointer", name)
	}
	return nil
}
