package render

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"github.com/itchyny/gojq"

	"github.com/iho/blockview/internal/domain"
)

// JQFormatter narrows a payload with a jq filter before handing it to the
// next formatter. A filter yielding several values renders them as a list.
type JQFormatter struct {
	code *gojq.Code
	next domain.PayloadFormatter
}

// NewJQFormatter compiles filter. next defaults to indented JSON.
func NewJQFormatter(filter string, next domain.PayloadFormatter) (*JQFormatter, error) {
	query, err := gojq.Parse(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to parse jq filter %q: %w", filter, err)
	}

	code, err := gojq.Compile(query)
	if err != nil {
		return nil, fmt.Errorf("failed to compile jq filter %q: %w", filter, err)
	}

	if next == nil {
		next = domain.IndentedJSONFormatter{}
	}

	return &JQFormatter{code: code, next: next}, nil
}

// FormatPayload implements domain.PayloadFormatter.
func (f *JQFormatter) FormatPayload(payload any) (string, error) {
	value, err := normalize(payload)
	if err != nil {
		return "", err
	}

	var results []any
	iter := f.code.Run(jqNumbers(value))
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, isErr := v.(error); isErr {
			return "", fmt.Errorf("jq filter failed: %w", err)
		}
		results = append(results, v)
	}

	switch len(results) {
	case 0:
		return "", domain.ErrEmptyPayload
	case 1:
		if results[0] == nil {
			return "", domain.ErrEmptyPayload
		}
		return f.next.FormatPayload(results[0])
	default:
		return f.next.FormatPayload(results)
	}
}

// jqNumbers converts json.Number values into the int, *big.Int and float64
// values gojq operates on. Integers keep every digit.
func jqNumbers(v any) any {
	switch val := v.(type) {
	case json.Number:
		if !strings.ContainsAny(val.String(), ".eE") {
			if i, err := val.Int64(); err == nil && int64(int(i)) == i {
				return int(i)
			}
			if bi, ok := new(big.Int).SetString(val.String(), 10); ok {
				return bi
			}
		}
		if f, err := val.Float64(); err == nil {
			return f
		}
		return val.String()
	case map[string]any:
		for k, item := range val {
			val[k] = jqNumbers(item)
		}
		return val
	case []any:
		for i, item := range val {
			val[i] = jqNumbers(item)
		}
		return val
	default:
		return v
	}
}
