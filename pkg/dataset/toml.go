package dataset

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
)

// tomlManifest is the TOML dataset format:
//
//	name = "techgear-orders"
//	description = "online store orders, Q3"
//
//	[[baskets]]
//	items = ["laptop", "mouse", "cable"]
//
//	[[baskets]]
//	items = ["mouse", "keyboard"]
type tomlManifest struct {
	Name        string       `toml:"name"`
	Description string       `toml:"description"`
	Baskets     []tomlBasket `toml:"baskets"`
}

type tomlBasket struct {
	Items []string `toml:"items"`
}

// ReadTOML parses a TOML dataset manifest.
func ReadTOML(r io.Reader) (*Dataset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read toml: %w", err)
	}

	var m tomlManifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode toml: %w", err)
	}
	if len(m.Baskets) == 0 {
		return nil, ErrEmptyDataset
	}

	transactions := make([][]string, len(m.Baskets))
	for i, b := range m.Baskets {
		transactions[i] = b.Items
	}
	return &Dataset{
		Name:         m.Name,
		Description:  m.Description,
		Transactions: transactions,
	}, nil
}
