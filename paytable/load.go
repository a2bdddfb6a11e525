package paytable

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileFormat is the YAML shape of a tier table override:
//
//	mines:
//	  3: [500, 1000, 2000, 4000]
//	  5: [900, 1750, 3500, 7000]
type fileFormat struct {
	Mines map[int][]int64 `yaml:"mines"`
}

// LoadFile reads a mines tier table from a YAML file. Every entry must carry
// exactly four bracket rates; mine counts replace the defaults wholesale.
func LoadFile(path string) (MinesTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read paytable: %w", err)
	}
	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse paytable: %w", err)
	}
	if len(f.Mines) == 0 {
		return nil, fmt.Errorf("paytable %s: no mines entries", path)
	}
	table := make(MinesTable, len(f.Mines))
	for count, rates := range f.Mines {
		if count <= 0 || count >= 25 {
			return nil, fmt.Errorf("paytable %s: mine count %d out of range", path, count)
		}
		if len(rates) != 4 {
			return nil, fmt.Errorf("paytable %s: mine count %d needs 4 bracket rates, got %d", path, count, len(rates))
		}
		var row [4]int64
		for i, r := range rates {
			if r <= 0 {
				return nil, fmt.Errorf("paytable %s: mine count %d has non-positive rate", path, count)
			}
			row[i] = r
		}
		table[count] = row
	}
	return table, nil
}
