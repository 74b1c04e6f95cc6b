// Package qpsah200s defines the QPSAH200S differential pressure transmitter.
package qpsah200s

import (
	"github.com/shopspring/decimal"

	"quotepilot/core/model"
	"quotepilot/core/registry"
)

// ModelName is the registry key and part-number prefix
const ModelName = "QPSAH200S"

// DefaultPartNumber is the baseline configuration
const DefaultPartNumber = "QPSAH200S-A-M-G-3-C-3-1-1-C-1-02"

// Definition returns a fresh QPSAH200S definition
func Definition() *model.Definition {
	return &model.Definition{
		Name:              ModelName,
		Description:       "Differential pressure transmitter",
		BasePrice:         decimal.NewFromInt(1000),
		DefaultPartNumber: DefaultPartNumber,
		Currency:          "USD",
		Segments: []model.Segment{
			{
				Name: "Output signal type", Key: "output_type", Position: 0,
				Codes: model.CodeSet{
					{Code: "A", Description: "Hart communication with four to twenty milliamp analog signal"},
					{Code: "B", Description: "Fieldbus digital communication"},
					{Code: "C", Description: "Profibus digital communication"},
				},
				Adders: model.WholeAdders(map[string]int64{"A": 0, "B": 150, "C": 150}),
			},
			{
				Name: "Span range", Key: "span_range", Position: 1,
				Codes: model.CodeSet{
					{Code: "D", Description: "Two to twenty inches of water column"},
					{Code: "F", Description: "Twenty to two thousand inches of water column"},
					{Code: "L", Description: "Two to forty inches of water column"},
					{Code: "M", Description: "Four to four hundred inches of water column"},
				},
				Adders: model.WholeAdders(map[string]int64{"D": 150, "F": 200, "L": 100, "M": 0}),
			},
			{
				Name: "Wetted parts material", Key: "wetted_material", Position: 2,
				Codes: model.CodeSet{
					{Code: "A", Description: "Hastelloy wetted parts"},
					{Code: "B", Description: "Cover flange material wetted parts"},
					{Code: "D", Description: "Titanium wetted parts"},
					{Code: "G", Description: "Three sixteen stainless steel wetted parts"},
				},
				Adders: model.WholeAdders(map[string]int64{"A": 200, "B": 50, "D": 300, "G": 0}),
			},
			{
				Name: "Process connection", Key: "process_connection", Position: 3,
				Codes: model.CodeSet{
					{Code: "1", Description: "No process connection"},
					{Code: "2", Description: "Quarter inch NPT female process connection"},
					{Code: "3", Description: "Half inch NPT female process connection"},
				},
			},
			{
				Name: "Housing material", Key: "housing_material", Position: 4,
				Codes: model.CodeSet{
					{Code: "A", Description: "Cast aluminum housing"},
					{Code: "B", Description: "Cast aluminum alloy with corrosion resistance"},
					{Code: "C", Description: "Three sixteen stainless steel housing"},
				},
				Adders: model.WholeAdders(map[string]int64{"B": 100}),
			},
			{
				Name: "Installation orientation", Key: "installation", Position: 5,
				Codes: model.CodeSet{
					{Code: "1", Description: "Horizontal installation"},
					{Code: "2", Description: "Vertical installation"},
					{Code: "3", Description: "Universal flange installation"},
					{Code: "4", Description: "Vertical installation with left side high pressure"},
				},
				Adders: model.WholeAdders(map[string]int64{"4": 50}),
			},
			{
				Name: "Electrical connection", Key: "electrical_connection", Position: 6,
				Codes: model.CodeSet{
					{Code: "1", Description: "One half inch NPT female electrical connection"},
					{Code: "2", Description: "G one half inch female electrical connection"},
					{Code: "3", Description: "One quarter inch NPT female electrical connection"},
				},
				Adders: model.WholeAdders(map[string]int64{"2": 50}),
			},
			{
				Name: "Display", Key: "display", Position: 7,
				Codes: model.CodeSet{
					{Code: "1", Description: "With display"},
					{Code: "0", Description: "Without display"},
				},
			},
			{
				Name: "Mounting bracket", Key: "mounting_bracket", Position: 8,
				Codes: model.CodeSet{
					{Code: "A", Description: "Three zero four mounting bracket"},
					{Code: "B", Description: "Three one six mounting bracket"},
					{Code: "C", Description: "Universal mounting bracket"},
				},
				Adders: model.WholeAdders(map[string]int64{"B": 50}),
			},
			{
				Name: "Area classification", Key: "area_class", Position: 9,
				Codes: model.CodeSet{
					{Code: "1", Description: "General purpose area classification"},
					{Code: "2", Description: "Explosion proof area classification"},
					{Code: "3", Description: "Class one division two area classification"},
					{Code: "4", Description: "Canadian specifications area classification"},
				},
				Adders: model.WholeAdders(map[string]int64{"2": 200, "3": 150, "4": 100}),
			},
			{
				Name: "Optional features", Key: "optional_features", Position: 10,
				Codes: model.CodeSet{
					{Code: "01", Description: "Signal cable"},
					{Code: "02", Description: "Memory card"},
					{Code: "03", Description: "High corrosion resistance coating"},
					{Code: "04", Description: "Unlimited software updates"},
				},
				Adders: model.WholeAdders(map[string]int64{"01": 50, "03": 150, "04": 200}),
			},
		},
	}
}

// Register adds QPSAH200S to b
func Register(b *registry.Builder) error {
	return b.Register(Definition())
}
