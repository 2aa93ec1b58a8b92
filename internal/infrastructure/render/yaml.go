package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLFormatter renders payloads as YAML indented by four spaces.
type YAMLFormatter struct{}

// FormatPayload implements domain.PayloadFormatter.
func (YAMLFormatter) FormatPayload(payload any) (string, error) {
	value, err := normalize(payload)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(4)

	if err := enc.Encode(numbersAsNodes(value)); err != nil {
		return "", fmt.Errorf("failed to encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("failed to flush yaml: %w", err)
	}

	return strings.TrimRight(buf.String(), "\n"), nil
}

// numbersAsNodes replaces json.Number values with scalar nodes carrying the
// original digits. yaml.v3 would otherwise round them through float64.
func numbersAsNodes(v any) any {
	switch val := v.(type) {
	case json.Number:
		tag := "!!int"
		if strings.ContainsAny(val.String(), ".eE") {
			tag = "!!float"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: val.String()}
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = numbersAsNodes(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = numbersAsNodes(item)
		}
		return out
	default:
		return v
	}
}
