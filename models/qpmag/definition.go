// Package qpmag defines the QPMAG magnetic flowmeter.
//
// Some liners are cheaper than the PTFE baseline, so adders may be negative.
package qpmag

import (
	"github.com/shopspring/decimal"

	"quotepilot/core/model"
	"quotepilot/core/registry"
)

// ModelName is the registry key and part-number prefix
const ModelName = "QPMAG"

// DefaultPartNumber is the baseline configuration
const DefaultPartNumber = "QPMAG-04-PT-SS-F1-C-1-1-C-00"

// Definition returns a fresh QPMAG definition
func Definition() *model.Definition {
	return &model.Definition{
		Name:              ModelName,
		Description:       "Magnetic flowmeter",
		BasePrice:         decimal.NewFromInt(1800),
		DefaultPartNumber: DefaultPartNumber,
		Currency:          "USD",
		Segments: []model.Segment{
			{
				Name: "Line size", Key: "line_size", Position: 0,
				Codes: model.CodeSet{
					{Code: "04", Description: `1" (DN25)`},
					{Code: "06", Description: `1.5" (DN40)`},
					{Code: "08", Description: `2" (DN50)`},
					{Code: "10", Description: `3" (DN80)`},
					{Code: "12", Description: `4" (DN100)`},
				},
				Adders: model.WholeAdders(map[string]int64{"06": 50, "08": 100, "10": 150, "12": 250}),
			},
			{
				Name: "Liner material", Key: "liner_material", Position: 1,
				Codes: model.CodeSet{
					{Code: "PT", Description: "PTFE liner"},
					{Code: "HR", Description: "Hard rubber liner"},
					{Code: "PU", Description: "Polyurethane liner"},
					{Code: "PP", Description: "Polypropylene liner"},
				},
				Adders: model.WholeAdders(map[string]int64{"HR": -50, "PU": -25, "PP": -25}),
			},
			{
				Name: "Electrode material", Key: "electrode_material", Position: 2,
				Codes: model.CodeSet{
					{Code: "SS", Description: "316 stainless steel electrodes"},
					{Code: "HC", Description: "Hastelloy C electrodes"},
					{Code: "TI", Description: "Titanium electrodes"},
				},
				Adders: model.WholeAdders(map[string]int64{"HC": 150, "TI": 200}),
			},
			{
				Name: "Process connection", Key: "process_connection", Position: 3,
				Codes: model.CodeSet{
					{Code: "F1", Description: "Wafer style, 150 class"},
					{Code: "F2", Description: "Flanged, 150 class"},
					{Code: "F3", Description: "Flanged, 300 class"},
				},
				Adders: model.WholeAdders(map[string]int64{"F2": 150, "F3": 250}),
			},
			{
				Name: "Transmitter housing material", Key: "housing_material", Position: 4,
				Codes: model.CodeSet{
					{Code: "C", Description: "Coated aluminum housing"},
					{Code: "S", Description: "Stainless steel housing"},
				},
				Adders: model.WholeAdders(map[string]int64{"S": 200}),
			},
			{
				Name: "Output signal", Key: "output_signal", Position: 5,
				Codes: model.CodeSet{
					{Code: "1", Description: "4–20 mA with HART"},
					{Code: "2", Description: "4–20 mA with HART + pulse output"},
					{Code: "3", Description: "Digital (Modbus/fieldbus style) output"},
				},
				Adders: model.WholeAdders(map[string]int64{"2": 75, "3": 100}),
			},
			{
				Name: "Power supply", Key: "power_supply", Position: 6,
				Codes: model.CodeSet{
					{Code: "1", Description: "24 VDC power"},
					{Code: "2", Description: "Universal AC power (85–264 VAC)"},
				},
				Adders: model.WholeAdders(map[string]int64{"2": 75}),
			},
			{
				Name: "Area classification / approvals", Key: "area_classification", Position: 7,
				Codes: model.CodeSet{
					{Code: "C", Description: "General purpose (non-hazardous)"},
					{Code: "D", Description: "Division 2 / Zone 2 approvals"},
					{Code: "E", Description: "Explosion-proof / flameproof approvals"},
				},
				Adders: model.WholeAdders(map[string]int64{"D": 125, "E": 250}),
			},
			{
				Name: "Options", Key: "options", Position: 8,
				Codes: model.CodeSet{
					{Code: "00", Description: "No extra options"},
					{Code: "01", Description: "Grounding rings"},
					{Code: "02", Description: "Grounding electrodes"},
					{Code: "03", Description: "Grounding rings + grounding electrodes"},
				},
				Adders: model.WholeAdders(map[string]int64{"01": 80, "02": 100, "03": 150}),
			},
		},
	}
}

// Register adds QPMAG to b
func Register(b *registry.Builder) error {
	return b.Register(Definition())
}
