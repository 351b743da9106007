package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/tsiemens/ratio/ratio"
)

// ParseEntriesCsv reads "label,value" records, where value is in the n/d form
// accepted by ratio.Parse. A leading "label,value" header row is skipped.
// desc names the source in errors.
func ParseEntriesCsv[T constraints.Integer](r io.Reader, desc string) ([]Entry[T], error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 2
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	var entries []Entry[T]
	for first := true; ; first = false {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", desc, err)
		}
		if first && strings.EqualFold(record[0], "label") && strings.EqualFold(record[1], "value") {
			continue
		}
		v, err := ratio.Parse[T](record[1])
		if err != nil {
			line, _ := reader.FieldPos(1)
			return nil, fmt.Errorf("%s: line %d: %w", desc, line, err)
		}
		entries = append(entries, Entry[T]{Label: strings.TrimSpace(record[0]), Value: v})
	}
	return entries, nil
}
