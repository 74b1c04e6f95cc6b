package model

import (
	"fmt"
	"strings"
)

// PrefixSegment is the segment name reported when the model prefix is wrong
const PrefixSegment = "model"

// ValidationError is the single, first failure found while checking a part
// number against a definition. A token-count mismatch uses the same shape so
// callers have one error contract.
type ValidationError struct {
	// Message is a human-readable summary
	Message string `json:"error" yaml:"error"`

	// Segment is the name of the failing segment
	Segment string `json:"segment" yaml:"segment"`

	// Key is the machine key of the failing segment
	Key string `json:"key" yaml:"key"`

	// Position is the 0-based index of the failing segment
	Position int `json:"position" yaml:"position"`

	// InvalidCode is the offending raw token ("" when the token is missing)
	InvalidCode string `json:"invalid_code" yaml:"invalid_code"`

	// ValidCodes is the complete vocabulary of the failing segment
	ValidCodes CodeSet `json:"valid_codes" yaml:"valid_codes"`

	// Unexpected lists tokens supplied beyond the last segment
	Unexpected []string `json:"unexpected_tokens,omitempty" yaml:"unexpected_tokens,omitempty"`
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return e.Message
}

// NewInvalidCodeError reports a token that is not in seg's vocabulary
func NewInvalidCodeError(seg *Segment, code string) *ValidationError {
	return &ValidationError{
		Message: fmt.Sprintf("Invalid code [%s] for segment [%s]. Valid options are: %s",
			code, seg.Name, seg.Codes.String()),
		Segment:     seg.Name,
		Key:         seg.Key,
		Position:    seg.Position,
		InvalidCode: code,
		ValidCodes:  seg.Codes.Clone(),
	}
}

// NewCountMismatchError reports a part number with too few segment tokens.
// seg is the first segment without a token.
func NewCountMismatchError(def *Definition, got int, seg *Segment) *ValidationError {
	return &ValidationError{
		Message: fmt.Sprintf("Expected %d segments for model %s but got %d",
			def.SegmentCount(), def.Name, got),
		Segment:    seg.Name,
		Key:        seg.Key,
		Position:   seg.Position,
		ValidCodes: seg.Codes.Clone(),
	}
}

// NewSurplusTokensError reports tokens left over after the last segment.
// The surplus is listed separately; InvalidCode stays empty because every
// segment received a token.
func NewSurplusTokensError(def *Definition, got int, surplus []string) *ValidationError {
	last := &def.Segments[len(def.Segments)-1]
	return &ValidationError{
		Message: fmt.Sprintf("Expected %d segments for model %s but got %d; unexpected tokens: %s",
			def.SegmentCount(), def.Name, got, strings.Join(surplus, Delimiter)),
		Segment:    last.Name,
		Key:        last.Key,
		Position:   last.Position,
		ValidCodes: last.Codes.Clone(),
		Unexpected: append([]string(nil), surplus...),
	}
}

// NewPrefixMismatchError reports a leading model prefix naming another model.
// Position is -1 since the prefix precedes every segment.
func NewPrefixMismatchError(def *Definition, prefix string) *ValidationError {
	desc := def.Description
	if desc == "" {
		desc = def.Name
	}
	return &ValidationError{
		Message:     fmt.Sprintf("Model prefix '%s' does not match model '%s'", prefix, def.Name),
		Segment:     PrefixSegment,
		Key:         PrefixSegment,
		Position:    -1,
		InvalidCode: prefix,
		ValidCodes:  CodeSet{{Code: def.Name, Description: desc}},
	}
}
