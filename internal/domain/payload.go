package domain

import (
	"bytes"
	"encoding/json"
	"errors"
)

// PayloadPlaceholder is shown in place of a payload that cannot be rendered.
const PayloadPlaceholder = "{}"

// ErrEmptyPayload is returned by formatters for a nil payload.
var ErrEmptyPayload = errors.New("payload is empty")

// PayloadFormatter renders a block payload for the detail view.
type PayloadFormatter interface {
	FormatPayload(payload any) (string, error)
}

// IndentedJSONFormatter renders payloads as JSON indented by four spaces.
// HTML characters are left unescaped so the text reads as written.
type IndentedJSONFormatter struct{}

// FormatPayload implements PayloadFormatter.
func (IndentedJSONFormatter) FormatPayload(payload any) (string, error) {
	if payload == nil {
		return "", ErrEmptyPayload
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(payload); err != nil {
		return "", err
	}
	return string(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}
