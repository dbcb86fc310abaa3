package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// ReadCSV parses a CSV basket file: one basket per line, items as fields.
// Lines may have differing field counts. Surrounding whitespace is trimmed
// and empty fields are dropped; a line with no items is skipped entirely.
func ReadCSV(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var transactions [][]string
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}

		var basket []string
		for _, field := range record {
			if item := strings.TrimSpace(field); item != "" {
				basket = append(basket, item)
			}
		}
		if len(basket) > 0 {
			transactions = append(transactions, basket)
		}
	}
	if len(transactions) == 0 {
		return nil, ErrEmptyDataset
	}
	return &Dataset{Transactions: transactions}, nil
}
