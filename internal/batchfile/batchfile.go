// Package batchfile reads batch geocoding input files. Records are
// ID, Street, City, State, ZIP with no header row; CSV, TXT/DAT
// (comma-delimited), and XLSX formats are supported. Latin-1 encoded text
// files are transcoded transparently.
package batchfile

import (
	"bytes"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
	"golang.org/x/text/encoding/charmap"
)

// MaxRecords is the geocoding service's per-upload ceiling.
const MaxRecords = 10000

// Sentinel errors for batch file validation.
var (
	ErrNoFile            = eris.New("batchfile: file not found")
	ErrTooLarge          = eris.New("batchfile: exceeds 10,000 records")
	ErrMalformed         = eris.New("batchfile: malformed record")
	ErrUnsupportedFormat = eris.New("batchfile: unsupported file format")
)

// Record is one batch address row.
type Record struct {
	ID     string `json:"id"`
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
}

// Read loads and validates a batch file. Records missing an ID get one
// assigned. Files over MaxRecords are rejected; ReadUnbounded skips that
// check for callers that chunk.
func Read(path string) ([]Record, error) {
	records, err := ReadUnbounded(path)
	if err != nil {
		return nil, err
	}
	if len(records) > MaxRecords {
		return nil, eris.Wrapf(ErrTooLarge, "%d records", len(records))
	}
	return records, nil
}

// ReadUnbounded loads and validates a batch file without enforcing the
// record ceiling.
func ReadUnbounded(path string) ([]Record, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, eris.Wrapf(ErrNoFile, "%s", path)
	}

	var rows [][]string
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt", ".dat":
		rows, err = readDelimited(path)
	case ".xlsx":
		rows, err = readXLSX(path)
	default:
		return nil, eris.Wrapf(ErrUnsupportedFormat, "%s", filepath.Ext(path))
	}
	if err != nil {
		return nil, err
	}

	return Normalize(rows)
}

// Normalize validates row shapes and converts them to records, assigning
// IDs where missing. Rows must have two to five fields: an ID (possibly
// empty) plus at least one address component.
func Normalize(rows [][]string) ([]Record, error) {
	records := make([]Record, 0, len(rows))
	for i, row := range rows {
		if isBlankRow(row) {
			continue
		}
		if len(row) < 2 || len(row) > 5 {
			return nil, eris.Wrapf(ErrMalformed, "row %d has %d fields", i+1, len(row))
		}

		padded := make([]string, 5)
		for j, f := range row {
			padded[j] = strings.TrimSpace(f)
		}

		rec := Record{
			ID:     padded[0],
			Street: padded[1],
			City:   padded[2],
			State:  padded[3],
			Zip:    padded[4],
		}
		if rec.Street == "" && rec.City == "" && rec.State == "" && rec.Zip == "" {
			return nil, eris.Wrapf(ErrMalformed, "row %d has no address components", i+1)
		}
		if rec.ID == "" {
			rec.ID = uuid.New().String()
		}
		records = append(records, rec)
	}
	return records, nil
}

// readDelimited reads a comma-delimited text file, transcoding from Latin-1
// when the content is not valid UTF-8.
func readDelimited(path string) ([][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(ErrNoFile, "%s", path)
	}

	if !utf8.Valid(data) {
		data, err = io.ReadAll(charmap.ISO8859_1.NewDecoder().Reader(bytes.NewReader(data)))
		if err != nil {
			return nil, eris.Wrap(err, "batchfile: transcode latin-1")
		}
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, eris.Wrap(ErrMalformed, err.Error())
	}
	return rows, nil
}

// readXLSX reads the first sheet of an XLSX workbook.
func readXLSX(path string) ([][]string, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrap(ErrMalformed, err.Error())
	}
	if len(f.Sheets) == 0 {
		return nil, eris.Wrap(ErrMalformed, "workbook has no sheets")
	}

	sheet := f.Sheets[0]
	rows := make([][]string, 0, len(sheet.Rows))
	for _, row := range sheet.Rows {
		cells := make([]string, len(row.Cells))
		for j, cell := range row.Cells {
			cells[j] = cell.String()
		}
		rows = append(rows, cells)
	}
	return rows, nil
}

// ToCSV renders records in the service's upload format.
func ToCSV(records []Record) []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	for _, rec := range records {
		// Write never fails on a bytes.Buffer.
		_ = w.Write([]string{rec.ID, rec.Street, rec.City, rec.State, rec.Zip})
	}
	w.Flush()
	return buf.Bytes()
}

func isBlankRow(row []string) bool {
	for _, f := range row {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
