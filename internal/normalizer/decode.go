package normalizer

import (
	"encoding/json"
	"strings"
)

// ListShape tags which historical encoding a list-like field used.
type ListShape int

// Recognized encodings for list-like fields.
const (
	ShapeEmpty ListShape = iota
	ShapeNativeArray
	ShapeJSONArrayString
	ShapeNewlineString
	ShapeSingleScalar
)

// String returns the shape name for diagnostics.
func (s ListShape) String() string {
	switch s {
	case ShapeNativeArray:
		return "nativeArray"
	case ShapeJSONArrayString:
		return "jsonArrayString"
	case ShapeNewlineString:
		return "newlineString"
	case ShapeSingleScalar:
		return "singleScalar"
	default:
		return "empty"
	}
}

// DecodeListField materializes a list-like raw field into a string slice.
// Historical rows stored these fields as native arrays, JSON-array-encoded
// text (detected by a leading '['), newline-joined text, or a bare scalar.
// Anything unrecognized degrades to an empty list, never an error.
func DecodeListField(raw any) ([]string, ListShape) {
	switch v := raw.(type) {
	case nil:
		return []string{}, ShapeEmpty

	case []string:
		return append([]string{}, v...), ShapeNativeArray

	case []any:
		out := make([]string, 0, len(v))

		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}

		return out, ShapeNativeArray

	case string:
		return decodeListString(v)

	default:
		return []string{}, ShapeEmpty
	}
}

func decodeListString(s string) ([]string, ListShape) {
	if strings.TrimSpace(s) == "" {
		return []string{}, ShapeEmpty
	}

	if strings.HasPrefix(s, "[") {
		var decoded []string
		if err := json.Unmarshal([]byte(s), &decoded); err == nil {
			return decoded, ShapeJSONArrayString
		}
		// Malformed JSON falls through and is treated as a scalar.
	}

	if strings.Contains(s, "\n") {
		parts := strings.Split(s, "\n")
		out := make([]string, 0, len(parts))

		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				out = append(out, trimmed)
			}
		}

		return out, ShapeNewlineString
	}

	return []string{s}, ShapeSingleScalar
}

// decodeExplicitList returns the pre-parsed list field only when it really
// is a native array; legacy scalar junk in these columns is ignored so the
// caller can fall back to the legacy field.
func decodeExplicitList(raw any) ([]string, bool) {
	list, shape := DecodeListField(raw)
	if shape == ShapeNativeArray || shape == ShapeJSONArrayString {
		return list, true
	}

	return nil, false
}
