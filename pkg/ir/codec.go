package ir

import (
	"encoding/json"
	"fmt"
	"strings"
)

// MalformedIRError reports an IR document that fails structural decoding.
// Semantic problems (dangling navigation) are Validate's concern, not the
// codec's.
type MalformedIRError struct {
	Reason string
	Err    error
}

func (e *MalformedIRError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ir: malformed document: %s: %v", e.Reason, e.Err)
	}
	return "ir: malformed document: " + e.Reason
}

func (e *MalformedIRError) Unwrap() error { return e.Err }

// requiredDocumentKeys are the top-level keys every IR document carries.
var requiredDocumentKeys = []string{"name", "style", "screens"}

// Encode serializes a template into the canonical IR document: UTF-8 JSON,
// two-space indent, object keys sorted by encoding/json. Encode and Decode
// are inverse operations for every valid template.
func Encode(t *Template) ([]byte, error) {
	if t == nil {
		return nil, &MalformedIRError{Reason: "template is nil"}
	}
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("ir: encode template: %w", err)
	}
	return append(data, '\n'), nil
}

// Decode parses an IR document. Anything other than a JSON object with the
// required top-level keys and well-formed node objects is a MalformedIRError.
func Decode(data []byte) (*Template, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, &MalformedIRError{Reason: "document is not a JSON object", Err: err}
	}
	for _, key := range requiredDocumentKeys {
		if _, ok := probe[key]; !ok {
			return nil, &MalformedIRError{Reason: fmt.Sprintf("missing required key %q", key)}
		}
	}

	var t Template
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, &MalformedIRError{Reason: "document structure does not match the IR schema", Err: err}
	}
	if strings.TrimSpace(t.Name) == "" {
		return nil, &MalformedIRError{Reason: "name is empty"}
	}
	if t.Screens == nil {
		t.Screens = make(map[string]*Node)
	}
	return &t, nil
}
