package gateway

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/DanielPopoola/ficmart-payment-adapters/internal/domain"
)

// ParseBody decodes a provider reply. Empty or whitespace-only bodies yield
// an empty map; anything that is not a JSON object is a MalformedResponse.
// Numbers are kept as json.Number so ids and amounts keep their digits.
func ParseBody(body []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return map[string]any{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, domain.NewMalformedResponseError(err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, domain.NewMalformedResponseError(errors.New("unexpected data after JSON object"))
	}
	if raw == nil {
		return nil, domain.NewMalformedResponseError(fmt.Errorf("expected a JSON object, got %s", bytes.TrimSpace(body)))
	}
	return raw, nil
}

// Object returns the nested object under key, or nil.
func Object(raw map[string]any, key string) map[string]any {
	if raw == nil {
		return nil
	}
	obj, _ := raw[key].(map[string]any)
	return obj
}

// String follows path through nested objects and returns the string found
// there. Numbers and booleans are rendered; anything else yields "".
func String(raw map[string]any, path ...string) string {
	if len(path) == 0 {
		return ""
	}
	for _, key := range path[:len(path)-1] {
		raw = Object(raw, key)
	}
	if raw == nil {
		return ""
	}

	switch v := raw[path[len(path)-1]].(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	}
	return ""
}
