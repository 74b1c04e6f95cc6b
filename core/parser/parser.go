// Package parser splits raw part numbers into tokens aligned with a model's
// segments.
package parser

import (
	"strings"

	"quotepilot/core/model"
)

// Token is the raw token supplied for one segment
type Token struct {
	Segment *model.Segment
	Value   string
}

// Assignment is the ordered segment -> token alignment for one part number
type Assignment struct {
	Definition *model.Definition
	Tokens     []Token
}

// Values returns the raw token values in segment order
func (a *Assignment) Values() []string {
	values := make([]string, len(a.Tokens))
	for i, tok := range a.Tokens {
		values[i] = tok.Value
	}
	return values
}

// Get returns the token supplied for the named segment
func (a *Assignment) Get(segment string) (string, bool) {
	for _, tok := range a.Tokens {
		if tok.Segment.Name == segment {
			return tok.Value, true
		}
	}
	return "", false
}

// Tokenize splits raw on the delimiter and trims each token.
// An all-blank input yields no tokens.
func Tokenize(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, model.Delimiter)
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// StripPrefix removes a leading model-name token, compared ignoring case.
// Model names containing the delimiter span several tokens.
func StripPrefix(tokens []string, modelName string) []string {
	nameTokens := strings.Split(modelName, model.Delimiter)
	if len(tokens) < len(nameTokens) {
		return tokens
	}
	for i, nt := range nameTokens {
		if !strings.EqualFold(tokens[i], nt) {
			return tokens
		}
	}
	return tokens[len(nameTokens):]
}

// Parse aligns raw against def's segments. A token-count mismatch or a
// foreign model prefix is reported as a *model.ValidationError.
//
// The model prefix is optional. When it is absent and exactly the prefix's
// worth of extra tokens is present, the leading tokens are taken to be a
// prefix naming another model.
func Parse(def *model.Definition, raw string) (*Assignment, error) {
	all := Tokenize(raw)
	tokens := StripPrefix(all, def.Name)
	stripped := len(tokens) < len(all)

	want := def.SegmentCount()
	switch {
	case len(tokens) < want:
		missing := &def.Segments[len(tokens)]
		return nil, model.NewCountMismatchError(def, len(tokens), missing)
	case len(tokens) > want:
		prefixLen := len(strings.Split(def.Name, model.Delimiter))
		if !stripped && len(tokens) == want+prefixLen {
			prefix := strings.Join(tokens[:prefixLen], model.Delimiter)
			return nil, model.NewPrefixMismatchError(def, prefix)
		}
		return nil, model.NewSurplusTokensError(def, len(tokens), tokens[want:])
	}

	assignment := &Assignment{
		Definition: def,
		Tokens:     make([]Token, want),
	}
	for i := range def.Segments {
		assignment.Tokens[i] = Token{Segment: &def.Segments[i], Value: tokens[i]}
	}
	return assignment, nil
}
