// Package report compiles a tab-separated expense report into a single
// balanced transaction: one debit line per expense row plus one synthetic
// credit to the reimbursement-payable account.
package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Row is one expense line as it appears in the source TSV.
type Row struct {
	Date        string `csv:"Date"`
	Vendor      string `csv:"Vendor"`
	Description string `csv:"Description"`
	Amount      string `csv:"Expense Total"`
}

// requiredColumns are the TSV headers the reader insists on.
var requiredColumns = []string{"Date", "Vendor", "Description", "Expense Total"}

// ReadFile reads an expense report TSV from disk.
func ReadFile(path string) ([]Row, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading expense report: %w", err)
	}
	return Read(data)
}

// Read parses expense report TSV content. Leading blank lines before the
// header are skipped, as are rows whose fields are all empty.
func Read(data []byte) ([]Row, error) {
	lines := strings.Split(string(data), "\n")
	start := 0
	for start < len(lines) && isBlankLine(lines[start]) {
		start++
	}
	if start == len(lines) {
		return nil, fmt.Errorf("no data rows found")
	}

	if err := checkHeader(lines[start]); err != nil {
		return nil, err
	}

	content := strings.Join(lines[start:], "\n")
	reader := csv.NewReader(bytes.NewReader([]byte(content)))
	reader.Comma = '\t'
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	var rows []Row
	if err := gocsv.UnmarshalCSV(reader, &rows); err != nil {
		return nil, fmt.Errorf("error parsing expense report: %w", err)
	}

	kept := rows[:0]
	for _, r := range rows {
		if isBlankRow(r) {
			continue
		}
		kept = append(kept, r)
	}
	if len(kept) == 0 {
		return nil, fmt.Errorf("no data rows found")
	}

	log.Debugf("Read %d expense rows", len(kept))
	return kept, nil
}

func checkHeader(headerLine string) error {
	have := make(map[string]bool)
	for _, h := range strings.Split(headerLine, "\t") {
		have[strings.TrimSpace(h)] = true
	}
	var missing []string
	for _, col := range requiredColumns {
		if !have[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}
	return nil
}

func isBlankLine(line string) bool {
	return strings.TrimSpace(strings.ReplaceAll(line, "\t", "")) == ""
}

func isBlankRow(r Row) bool {
	return strings.TrimSpace(r.Date) == "" &&
		strings.TrimSpace(r.Vendor) == "" &&
		strings.TrimSpace(r.Description) == "" &&
		strings.TrimSpace(r.Amount) == ""
}
