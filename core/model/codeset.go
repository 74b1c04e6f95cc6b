package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Option is one valid code of a segment
type Option struct {
	Code        string `json:"code" yaml:"code" validate:"required"`
	Description string `json:"description" yaml:"description" validate:"required"`
}

// CodeSet is an ordered code -> description vocabulary.
// It serializes as a JSON object / YAML mapping in declaration order.
type CodeSet []Option

// Lookup finds code (exact, case-sensitive)
func (s CodeSet) Lookup(code string) (Option, bool) {
	for _, opt := range s {
		if opt.Code == code {
			return opt, true
		}
	}
	return Option{}, false
}

// Contains reports whether code is valid
func (s CodeSet) Contains(code string) bool {
	_, ok := s.Lookup(code)
	return ok
}

// Codes returns the codes in declaration order
func (s CodeSet) Codes() []string {
	codes := make([]string, len(s))
	for i, opt := range s {
		codes[i] = opt.Code
	}
	return codes
}

// Map returns the vocabulary as a plain map
func (s CodeSet) Map() map[string]string {
	m := make(map[string]string, len(s))
	for _, opt := range s {
		m[opt.Code] = opt.Description
	}
	return m
}

// String renders "A, B, C"
func (s CodeSet) String() string {
	return strings.Join(s.Codes(), ", ")
}

// Clone returns a copy of the set
func (s CodeSet) Clone() CodeSet {
	if s == nil {
		return nil
	}
	out := make(CodeSet, len(s))
	copy(out, s)
	return out
}

// MarshalJSON writes {"A": "...", "B": "..."} keeping declaration order
func (s CodeSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, opt := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(opt.Code)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(opt.Description)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads an object, keeping the key order of the document
func (s *CodeSet) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*s = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("code set: expected object, got %v", tok)
	}

	out := CodeSet{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("code set: expected string key, got %v", keyTok)
		}
		var desc string
		if err := dec.Decode(&desc); err != nil {
			return fmt.Errorf("code set: value for %q: %w", key, err)
		}
		out = append(out, Option{Code: key, Description: desc})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*s = out
	return nil
}

// MarshalYAML emits an ordered mapping node
func (s CodeSet) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, opt := range s {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: opt.Code},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: opt.Description},
		)
	}
	return node, nil
}
