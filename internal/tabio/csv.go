package tabio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/sheetfuse/sheetfuse/pkg/constants"
	"github.com/sheetfuse/sheetfuse/pkg/errors"
	"github.com/sheetfuse/sheetfuse/pkg/tabular"
)

// CSVOptions controls how CSV files are read and written. The encoding is
// always declared by the caller; file contents are never sniffed to guess it.
type CSVOptions struct {
	// Delimiter separates fields. Defaults to a comma.
	Delimiter rune

	// Encoding names the character encoding: utf-8, utf-8-sig, latin-1,
	// or cp1252.
	Encoding string
}

// DefaultCSVOptions returns comma-delimited UTF-8 options.
func DefaultCSVOptions() CSVOptions {
	return CSVOptions{
		Delimiter: constants.DefaultCSVDelimiter,
		Encoding:  constants.DefaultCSVEncoding,
	}
}

// codec resolves the declared encoding name. UTF-8 with a BOM ("utf-8-sig")
// matches the pandas name for the variant Excel writes.
func (o CSVOptions) codec() (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(o.Encoding)) {
	case "", "utf-8", "utf8":
		return unicode.UTF8, nil
	case "utf-8-sig", "utf8-sig":
		return unicode.UTF8BOM, nil
	case "latin-1", "latin1", "iso-8859-1":
		return charmap.ISO8859_1, nil
	case "cp1252", "windows-1252":
		return charmap.Windows1252, nil
	default:
		return nil, fmt.Errorf("%w: %q", errors.ErrUnsupportedEncoding, o.Encoding)
	}
}

func (o CSVOptions) delimiter() rune {
	if o.Delimiter == 0 {
		return constants.DefaultCSVDelimiter
	}
	return o.Delimiter
}

// ParseDelimiter converts a user-supplied delimiter string into a rune.
// Exactly one character is accepted, multi-byte characters included.
func ParseDelimiter(s string) (rune, error) {
	if s == "" {
		return 0, errors.NewValidationError("delimiter", s, "must not be empty")
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size == 1 {
		return 0, errors.NewValidationError("delimiter", s, "is not valid UTF-8")
	}
	if size != len(s) {
		return 0, errors.NewValidationError("delimiter", s, "must be a single character")
	}
	return r, nil
}

// ReadCSV loads a CSV file into a dataset. The first record is the header;
// header cells are trimmed of surrounding whitespace. Data cells are parsed
// into typed values, with empty cells becoming missing. Short records are
// padded with missing values, long records are truncated to the header width.
func ReadCSV(path string, opts CSVOptions) (*tabular.Dataset, error) {
	codec, err := opts.codec()
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer f.Close()

	return decodeCSV(transform.NewReader(f, codec.NewDecoder()), path, opts)
}

func decodeCSV(r io.Reader, path string, opts CSVOptions) (*tabular.Dataset, error) {
	reader := csv.NewReader(r)
	reader.Comma = opts.delimiter()
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: %s", errors.ErrEmptyFile, path)
	}
	if err != nil {
		return nil, errors.WrapParse("csv", path, err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	ds, err := tabular.New(header...)
	if err != nil {
		return nil, err
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.WrapParse("csv", path, err)
		}
		row := make([]tabular.Value, len(header))
		for i := range row {
			if i < len(record) {
				row[i] = tabular.Parse(record[i])
			} else {
				row[i] = tabular.Missing()
			}
		}
		if err := ds.AppendRow(row...); err != nil {
			return nil, err
		}
	}
	return ds, nil
}

// WriteCSV saves a dataset to path in the declared encoding. Missing values
// are written as empty fields.
func WriteCSV(path string, ds *tabular.Dataset, opts CSVOptions) error {
	codec, err := opts.codec()
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, constants.FilePermissions)
	if err != nil {
		return errors.WrapIO("create", path, err)
	}
	defer f.Close()

	w := transform.NewWriter(f, codec.NewEncoder())
	writer := csv.NewWriter(w)
	writer.Comma = opts.delimiter()

	if err := writer.Write(ds.Columns()); err != nil {
		return errors.WrapIO("write", path, err)
	}
	record := make([]string, ds.NumColumns())
	for i := 0; i < ds.NumRows(); i++ {
		row := ds.Row(i)
		for j, v := range row {
			record[j] = v.String()
		}
		if err := writer.Write(record); err != nil {
			return errors.WrapIO("write", path, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.WrapIO("write", path, err)
	}
	if err := w.Close(); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return f.Close()
}
