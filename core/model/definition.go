// Package model provides the static part-number model: segment and model
// definitions, their code vocabularies and price adders.
//
// Definitions are plain data. Every product model is described by a
// Definition value and priced by the same shared algorithm; nothing here is
// specific to one product.
package model

import (
	"github.com/shopspring/decimal"
)

// Delimiter separates segments in a part number
const Delimiter = "-"

// DefaultCurrency is used when a definition does not name one
const DefaultCurrency = "USD"

// Segment describes one positional field of a part number
type Segment struct {
	// Name is the human-readable segment name, unique within a model
	Name string `json:"name" yaml:"name" validate:"required"`

	// Key is the machine key (snake_case), unique within a model
	Key string `json:"key" yaml:"key" validate:"required"`

	// Position is the 0-based token index after the model prefix
	Position int `json:"position" yaml:"position" validate:"gte=0"`

	// Codes is the ordered vocabulary of valid codes
	Codes CodeSet `json:"codes" yaml:"codes" validate:"required,min=1,dive"`

	// Adders maps a code to its price delta; absent codes add zero
	Adders map[string]decimal.Decimal `json:"adders,omitempty" yaml:"adders,omitempty"`
}

// Adder returns the price delta for code, zero when none is declared
func (s *Segment) Adder(code string) decimal.Decimal {
	if adder, ok := s.Adders[code]; ok {
		return adder
	}
	return decimal.Zero
}

// Definition describes one product model
type Definition struct {
	// Name is the model name and registry key (e.g. "QPSAH200S")
	Name string `json:"name" yaml:"name" validate:"required"`

	// Description is a short product family description
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Segments in part-number order
	Segments []Segment `json:"segments" yaml:"segments" validate:"required,min=1,dive"`

	// BasePrice is the price before adders
	BasePrice decimal.Decimal `json:"base_price" yaml:"base_price"`

	// DefaultPartNumber is the baseline configuration, optional
	DefaultPartNumber string `json:"default_part_number,omitempty" yaml:"default_part_number,omitempty"`

	// Currency is an ISO 4217 code; empty means DefaultCurrency
	Currency string `json:"currency,omitempty" yaml:"currency,omitempty"`
}

// CurrencyCode returns the definition currency or DefaultCurrency
func (d *Definition) CurrencyCode() string {
	if d.Currency == "" {
		return DefaultCurrency
	}
	return d.Currency
}

// SegmentCount returns the number of segments
func (d *Definition) SegmentCount() int {
	return len(d.Segments)
}

// Segment returns the segment with the given name
func (d *Definition) Segment(name string) (*Segment, bool) {
	for i := range d.Segments {
		if d.Segments[i].Name == name {
			return &d.Segments[i], true
		}
	}
	return nil, false
}

// Clone returns a deep copy so callers cannot reach registry-owned state
func (d *Definition) Clone() *Definition {
	out := *d
	out.Segments = make([]Segment, len(d.Segments))
	for i, seg := range d.Segments {
		cp := seg
		cp.Codes = seg.Codes.Clone()
		if seg.Adders != nil {
			cp.Adders = make(map[string]decimal.Decimal, len(seg.Adders))
			for code, adder := range seg.Adders {
				cp.Adders[code] = adder
			}
		}
		out.Segments[i] = cp
	}
	return &out
}

// WholeAdders converts whole-currency adders to decimals
func WholeAdders(adders map[string]int64) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(adders))
	for code, amount := range adders {
		out[code] = decimal.NewFromInt(amount)
	}
	return out
}
