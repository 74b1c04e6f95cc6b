package model

import (
	stderrors "errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/currency"

	"quotepilot/internal/errors"
)

// Rule is a definition invariant check
type Rule func(*Definition) error

// DefaultRules returns the invariants every registered definition must hold
func DefaultRules() []Rule {
	return []Rule{
		validateContiguousPositions,
		validateUniqueSegmentNames,
		validateUniqueSegmentKeys,
		validateUniqueCodes,
		validateAddersDeclared,
		validateBasePrice,
		validateCurrency,
	}
}

var (
	structValidator     *validator.Validate
	structValidatorOnce sync.Once
)

func getValidator() *validator.Validate {
	structValidatorOnce.Do(func() {
		structValidator = validator.New(validator.WithRequiredStructEnabled())
	})
	return structValidator
}

// Validate checks the struct tags and then every rule, returning all
// violations joined. Delimiters inside codes are rejected by the rules since
// such codes could never be parsed back.
func Validate(def *Definition, rules ...Rule) error {
	if def == nil {
		return errors.Definition("", "definition is nil")
	}
	if len(rules) == 0 {
		rules = DefaultRules()
	}

	if err := getValidator().Struct(def); err != nil {
		var fieldErrs validator.ValidationErrors
		if stderrors.As(err, &fieldErrs) {
			msgs := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
			}
			return errors.Definition(def.Name, "invalid definition: "+strings.Join(msgs, "; "))
		}
		return errors.Wrap(errors.TypeDefinition, "invalid definition", err).WithContext("model", def.Name)
	}

	var errs []error
	for _, rule := range rules {
		if err := rule(def); err != nil {
			errs = append(errs, err)
		}
	}
	return stderrors.Join(errs...)
}

// validateContiguousPositions ensures positions run 0..n-1 in slice order
func validateContiguousPositions(d *Definition) error {
	for i, seg := range d.Segments {
		if seg.Position != i {
			return errors.Definition(d.Name, fmt.Sprintf("segment %q has position %d, expected %d", seg.Name, seg.Position, i)).
				WithContext("segment", seg.Name)
		}
	}
	return nil
}

// validateUniqueSegmentNames ensures no two segments share a name
func validateUniqueSegmentNames(d *Definition) error {
	seen := make(map[string]bool, len(d.Segments))
	for _, seg := range d.Segments {
		if seen[seg.Name] {
			return errors.Definition(d.Name, fmt.Sprintf("duplicate segment name %q", seg.Name)).
				WithContext("segment", seg.Name)
		}
		seen[seg.Name] = true
	}
	return nil
}

// validateUniqueSegmentKeys ensures no two segments share a key
func validateUniqueSegmentKeys(d *Definition) error {
	seen := make(map[string]bool, len(d.Segments))
	for _, seg := range d.Segments {
		if seen[seg.Key] {
			return errors.Definition(d.Name, fmt.Sprintf("duplicate segment key %q", seg.Key)).
				WithContext("segment", seg.Name)
		}
		seen[seg.Key] = true
	}
	return nil
}

// validateUniqueCodes ensures codes are unique per segment and parseable
func validateUniqueCodes(d *Definition) error {
	for _, seg := range d.Segments {
		seen := make(map[string]bool, len(seg.Codes))
		for _, opt := range seg.Codes {
			if seen[opt.Code] {
				return errors.Definition(d.Name, fmt.Sprintf("duplicate code %q in segment %q", opt.Code, seg.Name)).
					WithContext("segment", seg.Name).
					WithContext("code", opt.Code)
			}
			if strings.Contains(opt.Code, Delimiter) || strings.TrimSpace(opt.Code) != opt.Code {
				return errors.Definition(d.Name, fmt.Sprintf("code %q in segment %q cannot appear in a part number", opt.Code, seg.Name)).
					WithContext("segment", seg.Name).
					WithContext("code", opt.Code)
			}
			seen[opt.Code] = true
		}
	}
	return nil
}

// validateAddersDeclared ensures every adder refers to a declared code
func validateAddersDeclared(d *Definition) error {
	for _, seg := range d.Segments {
		for code := range seg.Adders {
			if !seg.Codes.Contains(code) {
				return errors.Definition(d.Name, fmt.Sprintf("adder for undeclared code %q in segment %q", code, seg.Name)).
					WithContext("segment", seg.Name).
					WithContext("code", code)
			}
		}
	}
	return nil
}

// validateBasePrice ensures the base price is not negative
func validateBasePrice(d *Definition) error {
	if d.BasePrice.IsNegative() {
		return errors.Definition(d.Name, fmt.Sprintf("base price %s is negative", d.BasePrice.String()))
	}
	return nil
}

// validateCurrency ensures the currency is a known ISO 4217 code
func validateCurrency(d *Definition) error {
	if _, err := currency.ParseISO(d.CurrencyCode()); err != nil {
		return errors.Wrapf(errors.TypeDefinition, err, "unknown currency %q", d.CurrencyCode()).
			WithContext("model", d.Name)
	}
	return nil
}
