package dataset

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/statlearn/modelselect/pkg/errors"
)

// ReadCSV loads a dataset from CSV. The first row names the fields; each
// cell that parses as a float becomes a numeric value, anything else a
// categorical label. The response column must be present in the header.
func ReadCSV(r io.Reader, response string) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, errors.Wrap(err, "dataset: reading CSV header")
	}

	hasResponse := false
	for _, name := range header {
		if name == response {
			hasResponse = true
			break
		}
	}
	if !hasResponse {
		return nil, errors.Newf("dataset: response field %q not in CSV header %v", response, header)
	}

	var records []Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "dataset: reading CSV row")
		}
		rec := make(Record, len(header))
		for j, cell := range row {
			if f, perr := strconv.ParseFloat(cell, 64); perr == nil {
				rec[header[j]] = Num(f)
			} else {
				rec[header[j]] = Cat(cell)
			}
		}
		records = append(records, rec)
	}
	return New(records, response)
}
