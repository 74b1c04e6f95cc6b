// Package batch quotes many part numbers read from an HCL file.
package batch

import (
	"fmt"
	"math/big"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"quotepilot/internal/errors"
)

// Line is one requested quote
type Line struct {
	Label      string `json:"label" yaml:"label"`
	Model      string `json:"model,omitempty" yaml:"model,omitempty"`
	PartNumber string `json:"part_number" yaml:"part_number"`
	Quantity   int64  `json:"quantity" yaml:"quantity"`
}

// hclBatchFile is the top-level structure of a batch file
type hclBatchFile struct {
	Quotes []*hclQuote `hcl:"quote,block"`
}

type hclQuote struct {
	Label      string     `hcl:"label,label"`
	Model      *string    `hcl:"model,optional"`
	PartNumber string     `hcl:"part_number"`
	Quantity   *cty.Value `hcl:"quantity,optional"`
}

// LoadFile parses the batch file at path
func LoadFile(path string) ([]Line, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, errors.Parsing(fmt.Sprintf("failed to parse batch file %s", path), diags).
			WithContext("path", path)
	}
	return decode(file, path)
}

// Parse parses batch file source; filename is used in diagnostics
func Parse(src []byte, filename string) ([]Line, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Parsing(fmt.Sprintf("failed to parse batch file %s", filename), diags).
			WithContext("path", filename)
	}
	return decode(file, filename)
}

func decode(file *hcl.File, filename string) ([]Line, error) {
	var parsed hclBatchFile
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return nil, errors.Parsing(fmt.Sprintf("failed to decode batch file %s", filename), diags).
			WithContext("path", filename)
	}

	lines := make([]Line, 0, len(parsed.Quotes))
	seen := make(map[string]bool, len(parsed.Quotes))
	for _, q := range parsed.Quotes {
		if seen[q.Label] {
			return nil, errors.Parsing(fmt.Sprintf("duplicate quote %q in %s", q.Label, filename), nil).
				WithContext("label", q.Label)
		}
		seen[q.Label] = true

		quantity, err := decodeQuantity(q.Quantity)
		if err != nil {
			return nil, errors.Parsing(fmt.Sprintf("quote %q in %s: invalid quantity", q.Label, filename), err).
				WithContext("label", q.Label)
		}

		line := Line{
			Label:      q.Label,
			PartNumber: q.PartNumber,
			Quantity:   quantity,
		}
		if q.Model != nil {
			line.Model = *q.Model
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// decodeQuantity accepts whole numbers >= 1; nil means 1
func decodeQuantity(v *cty.Value) (int64, error) {
	if v == nil || v.IsNull() {
		return 1, nil
	}
	if !v.IsWhollyKnown() {
		return 0, fmt.Errorf("quantity must be a known value")
	}

	num, err := convert.Convert(*v, cty.Number)
	if err != nil {
		return 0, fmt.Errorf("quantity must be a number: %w", err)
	}

	bf := num.AsBigFloat()
	if !bf.IsInt() {
		return 0, fmt.Errorf("quantity %s is not a whole number", bf.Text('f', -1))
	}
	if bf.Cmp(big.NewFloat(1)) < 0 {
		return 0, fmt.Errorf("quantity %s must be at least 1", bf.Text('f', -1))
	}

	var quantity int64
	if err := gocty.FromCtyValue(num, &quantity); err != nil {
		return 0, fmt.Errorf("quantity out of range: %w", err)
	}
	return quantity, nil
}
