package store

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

// jsonAPI decodes numbers as json.Number so ids keep full int64 precision.
var jsonAPI = jsoniter.Config{
	EscapeHTML:             true,
	UseNumber:              true,
	ValidateJsonRawMessage: true,
}.Froze()

// decodeJSON parses a JSON list of client objects.
func decodeJSON(path string, data []byte) ([]map[string]any, error) {
	var raw any
	if err := jsonAPI.Unmarshal(data, &raw); err != nil {
		return nil, malformedError(path, FormatJSON, err)
	}
	return toRecords(path, raw)
}

// decodeYAML parses a YAML sequence of client mappings.
func decodeYAML(path string, data []byte) ([]map[string]any, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, malformedError(path, FormatYAML, err)
	}
	return toRecords(path, raw)
}

// decodeCUE evaluates a CUE file and exports its client list as JSON.
// The list is read from a top-level "clients" field if present, otherwise
// the file itself must evaluate to a list.
func decodeCUE(path string, data []byte) ([]map[string]any, error) {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(data, cue.Filename(path))
	if err := v.Err(); err != nil {
		return nil, malformedError(path, FormatCUE, err)
	}

	if list := v.LookupPath(cue.ParsePath("clients")); list.Exists() {
		v = list
	}
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, malformedError(path, FormatCUE, err)
	}

	exported, err := v.MarshalJSON()
	if err != nil {
		return nil, malformedError(path, FormatCUE, err)
	}
	return decodeJSON(path, exported)
}

// toRecords checks that raw is a list of objects.
func toRecords(path string, raw any) ([]map[string]any, error) {
	list, ok := raw.([]any)
	if !ok {
		return nil, shapeError(path, fmt.Sprintf("top level is %s", describe(raw)))
	}

	records := make([]map[string]any, len(list))
	for i, item := range list {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, shapeError(path, fmt.Sprintf("item %d is %s", i+1, describe(item)))
		}
		records[i] = obj
	}
	return records, nil
}

// describe names the JSON kind of a decoded value for error messages.
func describe(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "an object"
	case []any:
		return "a list"
	case string:
		return "a string"
	case bool:
		return "a boolean"
	default:
		return "a number"
	}
}
