package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/roach88/clientq/internal/value"
)

// Pair is a single key-value entry of an ordered mapping.
type Pair struct {
	Key   string
	Value value.Value
}

// Pairs is an ordered key-value mapping. JSON encoding and text rendering
// both preserve order.
type Pairs []Pair

// MarshalJSON implements json.Marshaler, emitting keys in order.
func (p Pairs) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, pair := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyBytes, err := json.Marshal(pair.Key)
		if err != nil {
			return nil, fmt.Errorf("marshal key %q: %w", pair.Key, err)
		}
		buf.Write(keyBytes)
		buf.WriteByte(':')

		valBytes, err := value.Marshal(pair.Value)
		if err != nil {
			return nil, fmt.Errorf("marshal value for key %q: %w", pair.Key, err)
		}
		buf.Write(valBytes)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// String renders the pairs as {key: value, ...}.
func (p Pairs) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, pair := range p {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(pair.Key)
		sb.WriteString(": ")
		sb.WriteString(value.Format(pair.Value))
	}
	sb.WriteByte('}')
	return sb.String()
}
