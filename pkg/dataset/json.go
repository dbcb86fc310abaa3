package dataset

import (
	"encoding/json"
	"fmt"
	"io"
)

// jsonManifest is the object form of a JSON dataset.
type jsonManifest struct {
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Transactions [][]string `json:"transactions"`
}

// ReadJSON parses a JSON dataset. Two shapes are accepted: a bare array of
// string arrays, or an object with name/description/transactions fields.
func ReadJSON(r io.Reader) (*Dataset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read json: %w", err)
	}

	// Try the bare-array shape first; it is the common one.
	var transactions [][]string
	if err := json.Unmarshal(data, &transactions); err == nil {
		if len(transactions) == 0 {
			return nil, ErrEmptyDataset
		}
		return &Dataset{Transactions: transactions}, nil
	}

	var m jsonManifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	if len(m.Transactions) == 0 {
		return nil, ErrEmptyDataset
	}
	return &Dataset{
		Name:         m.Name,
		Description:  m.Description,
		Transactions: m.Transactions,
	}, nil
}
