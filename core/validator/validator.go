// Package validator checks parsed tokens against segment vocabularies.
package validator

import (
	"quotepilot/core/model"
	"quotepilot/core/parser"
)

// Selection is a validated segment choice
type Selection struct {
	Segment     *model.Segment
	Code        string
	Description string
}

// Validate checks every token in segment order and stops at the first code
// that is not in its segment's vocabulary.
func Validate(a *parser.Assignment) ([]Selection, error) {
	selections := make([]Selection, 0, len(a.Tokens))
	for _, tok := range a.Tokens {
		opt, ok := tok.Segment.Codes.Lookup(tok.Value)
		if !ok {
			return nil, model.NewInvalidCodeError(tok.Segment, tok.Value)
		}
		selections = append(selections, Selection{
			Segment:     tok.Segment,
			Code:        opt.Code,
			Description: opt.Description,
		})
	}
	return selections, nil
}
