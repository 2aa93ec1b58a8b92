// Package render holds alternate payload renderers for the block detail view.
package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/iho/blockview/internal/domain"
)

// Supported payload formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// New returns the payload formatter for format.
func New(format string) (domain.PayloadFormatter, error) {
	switch format {
	case "", FormatJSON:
		return domain.IndentedJSONFormatter{}, nil
	case FormatYAML:
		return YAMLFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown payload format %q", format)
	}
}

// normalize turns any payload into plain maps, slices and scalars by
// round-tripping it through JSON. Raw JSON from storage is decoded as-is.
// Numbers stay json.Number so no digits are lost.
func normalize(payload any) (any, error) {
	if payload == nil {
		return nil, domain.ErrEmptyPayload
	}

	var data []byte
	switch p := payload.(type) {
	case json.RawMessage:
		data = p
	case []byte:
		data = p
	default:
		var err error
		data, err = json.Marshal(p)
		if err != nil {
			return nil, fmt.Errorf("failed to encode payload: %w", err)
		}
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode payload: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("failed to decode payload: trailing data")
	}
	return out, nil
}
