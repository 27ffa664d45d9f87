// Package config loads table rules from HCL files.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Rules represents a table-rules configuration file
type Rules struct {
	Table TableRules `hcl:"table,block"`
}

// TableRules defines the stakes the simulator deals hands at
type TableRules struct {
	Name       string `hcl:"name,label"`
	Seats      int    `hcl:"seats,optional"`
	SmallBlind int64  `hcl:"small_blind"`
	BigBlind   int64  `hcl:"big_blind"`
	BuyInMin   int64  `hcl:"buy_in_min,optional"`
	BuyInMax   int64  `hcl:"buy_in_max,optional"`
}

// Default returns the default table rules used when no config file exists
func Default() *Rules {
	return &Rules{
		Table: TableRules{
			Name:       "main",
			Seats:      6,
			SmallBlind: 1,
			BigBlind:   2,
			BuyInMin:   100,
			BuyInMax:   1000,
		},
	}
}

// Load loads table rules from an HCL file, falling back to defaults when the
// file does not exist.
func Load(filename string) (*Rules, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var rules Rules
	diags = gohcl.DecodeBody(file.Body, nil, &rules)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	if rules.Table.Seats == 0 {
		rules.Table.Seats = 6
	}
	if rules.Table.BuyInMin == 0 {
		rules.Table.BuyInMin = rules.Table.BigBlind * 50
	}
	if rules.Table.BuyInMax == 0 {
		rules.Table.BuyInMax = rules.Table.BigBlind * 500
	}

	if err := rules.Validate(); err != nil {
		return nil, err
	}
	return &rules, nil
}

// Validate checks the rules for internal consistency
func (r *Rules) Validate() error {
	t := r.Table
	if t.Seats < 2 || t.Seats > 10 {
		return fmt.Errorf("table %q: seats must be 2-10, got %d", t.Name, t.Seats)
	}
	if t.SmallBlind <= 0 || t.BigBlind <= 0 {
		return fmt.Errorf("table %q: blinds must be positive", t.Name)
	}
	if t.SmallBlind > t.BigBlind {
		return fmt.Errorf("table %q: small blind %d exceeds big blind %d", t.Name, t.SmallBlind, t.BigBlind)
	}
	if t.BuyInMin < t.BigBlind {
		return fmt.Errorf("table %q: buy_in_min %d is below the big blind %d", t.Name, t.BuyInMin, t.BigBlind)
	}
	if t.BuyInMin > t.BuyInMax {
		return fmt.Errorf("table %q: buy_in_min %d exceeds buy_in_max %d", t.Name, t.BuyInMin, t.BuyInMax)
	}
	return nil
}
