// Package pricing computes itemized prices for validated configurations.
// Amounts are carried at full precision; rounding belongs to presentation.
package pricing

import (
	"github.com/shopspring/decimal"

	"quotepilot/core/model"
	"quotepilot/core/validator"
)

// Line is one itemized breakdown entry
type Line struct {
	Position    int             `json:"position" yaml:"position"`
	Key         string          `json:"key" yaml:"key"`
	Segment     string          `json:"segment" yaml:"segment"`
	Code        string          `json:"code" yaml:"code"`
	Description string          `json:"description" yaml:"description"`
	Adder       decimal.Decimal `json:"adder" yaml:"adder"`
}

// Breakdown is the priced configuration
type Breakdown struct {
	Lines       []Line
	BasePrice   decimal.Decimal
	AddersTotal decimal.Decimal
	Total       decimal.Decimal
	Currency    string
}

// Price adds each selection's adder to the definition's base price
func Price(def *model.Definition, selections []validator.Selection) *Breakdown {
	b := &Breakdown{
		Lines:       make([]Line, 0, len(selections)),
		BasePrice:   def.BasePrice,
		AddersTotal: decimal.Zero,
		Currency:    def.CurrencyCode(),
	}

	for _, sel := range selections {
		adder := sel.Segment.Adder(sel.Code)
		b.Lines = append(b.Lines, Line{
			Position:    sel.Segment.Position,
			Key:         sel.Segment.Key,
			Segment:     sel.Segment.Name,
			Code:        sel.Code,
			Description: sel.Description,
			Adder:       adder,
		})
		b.AddersTotal = b.AddersTotal.Add(adder)
	}

	b.Total = b.BasePrice.Add(b.AddersTotal)
	return b
}
